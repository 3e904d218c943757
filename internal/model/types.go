// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package model

type TypeKind string

const (
	KindPrimitive     TypeKind = "primitive"
	KindLiteral       TypeKind = "literal"
	KindReference     TypeKind = "reference"
	KindObject        TypeKind = "object"
	KindUnion         TypeKind = "union"
	KindIntersection  TypeKind = "intersection"
	KindConditional   TypeKind = "conditional"
	KindIndexedAccess TypeKind = "indexed"
	KindEnumLiteral   TypeKind = "enumLiteral"
)

var typeKinds = map[TypeKind]struct{}{
	KindPrimitive:     {},
	KindLiteral:       {},
	KindReference:     {},
	KindObject:        {},
	KindUnion:         {},
	KindIntersection:  {},
	KindConditional:   {},
	KindIndexedAccess: {},
	KindEnumLiteral:   {},
}

// Valid сообщает, входит ли вид в закрытый набор.
func (k TypeKind) Valid() (ok bool) {

	_, ok = typeKinds[k]
	return
}

// TypeID стабильный идентификатор выражения типа в рамках одного графа.
type TypeID string

// AliasRef ссылка на псевдоним, через который выражение было получено.
type AliasRef struct {
	Symbol *Symbol
	Args   []*TypeExpression
}

// TypeExpression неизменяемое выражение типа.
// Набор заполненных полей определяется Kind:
//
//	primitive      Name
//	literal        Literal (string, float64, bool)
//	reference      Symbol, TypeArgs
//	object         Symbol (placeholder с таблицей членов)
//	union          Types
//	intersection   Types
//	conditional    Check, Extends, True, False
//	indexed        Object, Index
//	enumLiteral    Symbol (член перечисления, Parent - само перечисление)
type TypeExpression struct {
	ID       TypeID
	Kind     TypeKind
	Name     string
	Literal  any
	Symbol   *Symbol
	TypeArgs []*TypeExpression
	Types    []*TypeExpression

	Check   *TypeExpression
	Extends *TypeExpression
	True    *TypeExpression
	False   *TypeExpression

	Object *TypeExpression
	Index  *TypeExpression

	Alias *AliasRef
	// Text печатное представление, если его предоставил источник графа.
	Text string
}

// AliasSymbol возвращает символ псевдонима или nil.
func (t *TypeExpression) AliasSymbol() *Symbol {

	if t == nil || t.Alias == nil {
		return nil
	}
	return t.Alias.Symbol
}

// AliasArgs возвращает аргументы псевдонима.
func (t *TypeExpression) AliasArgs() []*TypeExpression {

	if t == nil || t.Alias == nil {
		return nil
	}
	return t.Alias.Args
}

// IsReferenceTo сообщает, является ли выражение ссылкой на символ с именем name.
func (t *TypeExpression) IsReferenceTo(name string) bool {

	return t != nil && t.Kind == KindReference && t.Symbol != nil && t.Symbol.Name == name
}
