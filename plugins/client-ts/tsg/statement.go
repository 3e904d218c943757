// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package tsg

import (
	"fmt"
	"strconv"
	"strings"

	"sdkgen/internal/model"
)

const indentUnit = "    "

// IsIdentifier сообщает, можно ли использовать имя как идентификатор без кавычек.
func IsIdentifier(name string) bool {
	return model.IsIdentifier(name)
}

// PropertyName имя свойства объекта, в кавычках, если это не идентификатор.
func PropertyName(name string) string {
	return model.PropertyName(name)
}

type Statement struct {
	code   strings.Builder
	export bool
}

func NewStatement() *Statement {
	return &Statement{}
}

// Id начинает новый statement с идентификатора.
func Id(name string) *Statement {
	return NewStatement().Id(name)
}

// TypeFromString statement из готового текста типа.
func TypeFromString(typeStr string) *Statement {
	return NewStatement().Id(typeStr)
}

func (s *Statement) String() string {

	if s.export {
		return "export " + s.code.String()
	}
	return s.code.String()
}

func (s *Statement) Add(other *Statement) *Statement {

	if other != nil {
		s.code.WriteString(other.String())
	}
	return s
}

func (s *Statement) Id(name string) *Statement {

	s.code.WriteString(name)
	return s
}

func (s *Statement) Lit(value any) *Statement {

	var str string
	switch v := value.(type) {
	case string:
		str = model.QuoteString(v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		str = fmt.Sprintf("%d", v)
	case float32, float64:
		str = fmt.Sprintf("%g", v)
	case bool:
		str = strconv.FormatBool(v)
	case nil:
		str = "null"
	default:
		str = fmt.Sprintf("%v", v)
	}
	s.code.WriteString(str)
	return s
}

func (s *Statement) Op(operator string) *Statement {

	s.code.WriteString(" " + operator + " ")
	return s
}

func (s *Statement) Dot(property string) *Statement {

	s.code.WriteString("." + property)
	return s
}

func (s *Statement) Colon() *Statement {

	s.code.WriteString(": ")
	return s
}

func (s *Statement) Semicolon() *Statement {

	s.code.WriteString(";")
	return s
}

func (s *Statement) Comma() *Statement {

	s.code.WriteString(",")
	return s
}

func (s *Statement) Call(args ...*Statement) *Statement {

	s.code.WriteString("(")
	s.join(args, ", ")
	s.code.WriteString(")")
	return s
}

// Params список параметров функции.
func (s *Statement) Params(params ...*Statement) *Statement {
	return s.Call(params...)
}

// Parens оборачивает выражение в скобки.
func (s *Statement) Parens(expr *Statement) *Statement {
	return s.Call(expr)
}

func (s *Statement) Generic(params ...*Statement) *Statement {

	s.code.WriteString("<")
	s.join(params, ", ")
	s.code.WriteString(">")
	return s
}

func (s *Statement) Promise(typeParam *Statement) *Statement {
	return s.Id("Promise").Generic(typeParam)
}

func (s *Statement) Async() *Statement {

	s.code.WriteString("async ")
	return s
}

func (s *Statement) Await(expr *Statement) *Statement {

	s.code.WriteString("await ")
	return s.Add(expr)
}

// Arrow стрелка между сигнатурой и телом функции.
func (s *Statement) Arrow() *Statement {

	s.code.WriteString(" => ")
	return s
}

func (s *Statement) Spread(expr *Statement) *Statement {

	s.code.WriteString("...")
	return s.Add(expr)
}

// Field поле объекта `name: value`.
func (s *Statement) Field(name string, value *Statement) *Statement {

	s.code.WriteString(PropertyName(name) + ": ")
	return s.Add(value)
}

// OptionalField поле типа объекта `name?: value`.
func (s *Statement) OptionalField(name string, value *Statement) *Statement {

	s.code.WriteString(PropertyName(name) + "?: ")
	return s.Add(value)
}

// Values однострочный литерал объекта `{ a, b }`; без полей - `{}`.
func (s *Statement) Values(fields ...*Statement) *Statement {
	return s.inlineObject(fields, ", ")
}

// ObjectType однострочный тип объекта `{ a: T; b?: U }`.
func (s *Statement) ObjectType(fields ...*Statement) *Statement {
	return s.inlineObject(fields, "; ")
}

func (s *Statement) inlineObject(fields []*Statement, sep string) *Statement {

	if len(fields) == 0 {
		s.code.WriteString("{}")
		return s
	}
	s.code.WriteString("{ ")
	s.join(fields, sep)
	s.code.WriteString(" }")
	return s
}

// Comment однострочные комментарии, по одному на строку текста.
func (s *Statement) Comment(text string) *Statement {

	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			s.code.WriteString("//\n")
			continue
		}
		s.code.WriteString("// " + line + "\n")
	}
	return s
}

func (s *Statement) Line() *Statement {

	s.code.WriteString("\n")
	return s
}

func (s *Statement) Export() *Statement {

	s.export = true
	return s
}

func (s *Statement) Const(name string) *Statement {
	return s.Id("const " + name)
}

func (s *Statement) Func(name string) *Statement {
	return s.Id("function " + name)
}

func (s *Statement) Type(name string) *Statement {
	return s.Id("type " + name + " = ")
}

func (s *Statement) Interface(name string, fn func(*Group)) *Statement {
	return s.Id("interface " + name + " ").Block(fn)
}

func (s *Statement) Return(value ...*Statement) *Statement {

	s.code.WriteString("return")
	if len(value) > 0 {
		s.code.WriteString(" ")
		s.join(value, ", ")
	}
	return s
}

// Block многострочный блок `{ ... }`; строки вложенных statements получают отступ.
func (s *Statement) Block(fn func(*Group)) *Statement {
	return s.block(fn, "")
}

// ObjectLiteral многострочный литерал объекта; каждое поле завершается запятой.
func (s *Statement) ObjectLiteral(fn func(*Group)) *Statement {
	return s.block(fn, ",")
}

func (s *Statement) block(fn func(*Group), terminator string) *Statement {

	g := &Group{}
	if fn != nil {
		fn(g)
	}
	s.code.WriteString("{\n")
	for _, item := range g.items {
		text := item.String() + terminator
		for _, line := range strings.Split(text, "\n") {
			if line != "" {
				s.code.WriteString(indentUnit + line)
			}
			s.code.WriteString("\n")
		}
	}
	s.code.WriteString("}")
	return s
}

func (s *Statement) join(items []*Statement, sep string) {

	first := true
	for _, item := range items {
		if item == nil {
			continue
		}
		if !first {
			s.code.WriteString(sep)
		}
		first = false
		s.code.WriteString(item.String())
	}
}

// Group содержимое блока.
type Group struct {
	items []*Statement
}

func (g *Group) Add(stmt *Statement) *Statement {

	if stmt == nil {
		stmt = NewStatement()
	}
	g.items = append(g.items, stmt)
	return stmt
}

// Id добавляет в группу новый statement, начинающийся с идентификатора.
func (g *Group) Id(name string) *Statement {
	return g.Add(Id(name))
}

func (g *Group) Return(value ...*Statement) *Statement {
	return g.Add(NewStatement().Return(value...))
}

func (g *Group) Len() int {
	return len(g.items)
}
