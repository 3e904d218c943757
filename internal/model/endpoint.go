// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package model

import (
	"strings"
)

const DefaultVerb = "post"

type BindingKind string

const (
	BindPath      BindingKind = "path"
	BindQuery     BindingKind = "query"
	BindBody      BindingKind = "body"
	BindBodyField BindingKind = "body-field"
)

func (k BindingKind) Valid() bool {

	switch k {
	case BindPath, BindQuery, BindBody, BindBodyField:
		return true
	default:
		return false
	}
}

// ParamBinding привязка параметра метода к части HTTP-запроса.
type ParamBinding struct {
	Name string
	Kind BindingKind
	// Index позиция параметра в сигнатуре метода.
	Index    int
	Optional bool
	// ExplicitType явно указанный тип (String, Number, Boolean, Object, Date).
	ExplicitType string
	IsArray      bool
}

type EndpointMethod struct {
	Name     string
	Verb     string
	Route    string
	Bindings []*ParamBinding
}

// HTTPVerb возвращает HTTP-метод в нижнем регистре. Пустой метод считается DefaultVerb.
func (m *EndpointMethod) HTTPVerb() (verb string) {

	if verb = strings.ToLower(strings.TrimSpace(m.Verb)); verb == "" {
		verb = DefaultVerb
	}
	return
}

// BindingsOf возвращает привязки заданных видов в порядке объявления.
func (m *EndpointMethod) BindingsOf(kinds ...BindingKind) (out []*ParamBinding) {

	for _, b := range m.Bindings {
		for _, k := range kinds {
			if b.Kind == k {
				out = append(out, b)
				break
			}
		}
	}
	return
}

type EndpointClass struct {
	Name    string
	Route   string
	File    string
	Methods []*EndpointMethod
}

// FullRoute шаблон маршрута метода с префиксом класса.
func (c *EndpointClass) FullRoute(method *EndpointMethod) string {

	return c.Route + method.Route
}

// Signature сигнатура вызова метода.
type Signature struct {
	Parameters  []*Parameter
	Return      *TypeExpression
	Declaration *Declaration
}

type Parameter struct {
	Name     string
	Type     *TypeExpression
	Optional bool
}

// Parameter возвращает параметр по индексу или nil.
func (s *Signature) Parameter(index int) *Parameter {

	if s == nil || index < 0 || index >= len(s.Parameters) {
		return nil
	}
	return s.Parameters[index]
}
