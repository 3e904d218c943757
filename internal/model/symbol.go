// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package model

// SymbolID стабильный идентификатор символа, привязанный к месту объявления.
type SymbolID string

type SymbolFlags uint8

const (
	// SymbolPlaceholder внутренний анонимный символ (__type, __object).
	SymbolPlaceholder SymbolFlags = 1 << iota
	SymbolEnum
	SymbolEnumMember
)

// Symbol именованное место объявления. Сравнение всегда по ID, не по имени.
type Symbol struct {
	ID           SymbolID
	Name         string
	Flags        SymbolFlags
	Parent       *Symbol
	Declarations []*Declaration
	Members      []Member
}

func (s *Symbol) Is(flag SymbolFlags) bool {

	return s != nil && s.Flags&flag != 0
}

// Member элемент таблицы членов символа.
type Member struct {
	Name     string
	Type     *TypeExpression
	Optional bool
}

type DeclKind string

const (
	DeclClass       DeclKind = "class"
	DeclInterface   DeclKind = "interface"
	DeclEnum        DeclKind = "enum"
	DeclTypeAlias   DeclKind = "typeAlias"
	DeclVariable    DeclKind = "variable"
	DeclTypeLiteral DeclKind = "typeLiteral"
	DeclEnumMember  DeclKind = "enumMember"
	DeclMethod      DeclKind = "method"
	DeclProperty    DeclKind = "property"
	DeclParameter   DeclKind = "parameter"
	DeclFunction    DeclKind = "function"
	DeclModule      DeclKind = "module"
)

// Emittable сообщает, может ли объявление такого вида попасть в сгенерированный файл.
func (k DeclKind) Emittable() bool {

	switch k {
	case DeclClass, DeclInterface, DeclEnum, DeclTypeAlias, DeclVariable:
		return true
	default:
		return false
	}
}

// Declaration узел объявления символа.
type Declaration struct {
	Kind DeclKind
	// File абсолютный путь исходного файла.
	File string
	Pos  int
	// Text отформатированный исходный текст объявления.
	Text    string
	Comment string
	// AliasOf правая часть псевдонима типа, если это именованная ссылка.
	AliasOf *TypeExpression
}
