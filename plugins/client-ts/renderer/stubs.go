// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"sdkgen/internal/introspect"
	"sdkgen/internal/model"
	"sdkgen/internal/validate"
	"sdkgen/plugins/client-ts/tsg"
)

const (
	typeAny     = "any"
	typeVoid    = "void"
	typePromise = "Promise"
)

// StubArg аргумент заглушки в порядке привязок.
type StubArg struct {
	Name     string
	Kind     model.BindingKind
	Type     string
	Optional bool
}

// Stub отрисованная заглушка метода.
type Stub struct {
	Name    string
	Verb    string
	Route   string
	Args    []StubArg
	Return  string
	Comment string
	code    *tsg.Statement
}

// Code элемент литерала группы: комментарий и `name: async (...) => ...`.
func (s *Stub) Code() *tsg.Statement {
	return s.code
}

// RenderStub строит заглушку метода. Все типы параметров и результата проходят через сборщик.
func (r *ClientRenderer) RenderStub(class *model.EndpointClass, method *model.EndpointMethod) (stub *Stub, err error) {

	if err = validate.ValidateMethod(class, method); err != nil {
		return nil, err
	}

	var sig *model.Signature
	if sig, err = r.service.Signature(class.Name, method.Name); err != nil {
		return nil, fmt.Errorf("signature of %s.%s: %w", class.Name, method.Name, err)
	}

	var ret *model.TypeExpression
	if ret, err = r.service.TypeOf(introspect.ReturnPosition(class.Name, method.Name)); err != nil {
		return nil, fmt.Errorf("return type of %s.%s: %w", class.Name, method.Name, err)
	}
	if ret != nil {
		if err = r.collector.CollectRoot(ret); err != nil {
			return nil, fmt.Errorf("%s.%s: return type: %w", class.Name, method.Name, err)
		}
	}
	for i, param := range sig.Parameters {
		if param.Type == nil {
			continue
		}
		if err = r.collector.CollectRoot(param.Type); err != nil {
			return nil, fmt.Errorf("%s.%s: parameter #%d %q: %w", class.Name, method.Name, i, param.Name, err)
		}
	}

	stub = &Stub{
		Name:   method.Name,
		Verb:   method.HTTPVerb(),
		Route:  class.FullRoute(method),
		Return: r.returnType(ret),
	}
	if stub.Args, err = r.stubArgs(class, method); err != nil {
		return nil, err
	}
	if comment, ok := r.service.LeadingComment(sig.Declaration); ok {
		stub.Comment = formatComment(comment)
	}

	code := tsg.NewStatement()
	if stub.Comment != "" {
		code.Id(stub.Comment).Line()
	}
	code.Id(tsg.PropertyName(stub.Name)).Colon().
		Async().Params(stubParams(stub.Args)...).Colon().Id(stub.Return).Arrow().
		Parens(tsg.NewStatement().Await(tsg.Id("client").Call(requestDescriptor(method, stub)))).
		Dot("data")
	stub.code = code
	return stub, nil
}

func (r *ClientRenderer) stubArgs(class *model.EndpointClass, method *model.EndpointMethod) (args []StubArg, err error) {

	locals := make(map[string]string)
	for _, binding := range method.Bindings {
		arg := StubArg{Name: binding.Name, Kind: binding.Kind, Optional: binding.Optional}
		if arg.Type, err = r.bindingType(class, method, binding); err != nil {
			return nil, err
		}
		if binding.Kind == model.BindBody {
			arg.Name = validate.BodyArgName
			arg.Optional = false
		} else {
			local := tsLocalVar(binding.Name)
			if other, found := locals[local]; found {
				return nil, fmt.Errorf("%s.%s: %w: %s, %s", class.Name, method.Name, ErrDuplicateParams, other, binding.Name)
			}
			locals[local] = binding.Name
		}
		args = append(args, arg)
	}
	return args, nil
}

// bindingType тип из сигнатуры метода; явный тип привязки используется, только если позиции нет
// или у параметра нет типа.
func (r *ClientRenderer) bindingType(class *model.EndpointClass, method *model.EndpointMethod, binding *model.ParamBinding) (string, error) {

	pos := introspect.Position{Class: class.Name, Method: method.Name, Param: binding.Index}
	if binding.Index >= 0 {
		expr, err := r.service.TypeOf(pos)
		switch {
		case err == nil && expr != nil:
			return r.service.TypeText(expr), nil
		case err == nil:
			return explicitType(binding), nil
		case !errors.Is(err, introspect.ErrPositionNotFound):
			return "", fmt.Errorf("%s: %w", pos, err)
		}
	}
	if binding.ExplicitType == "" {
		return "", fmt.Errorf("%s.%s: %w: %q", class.Name, method.Name, ErrParamNotFound, binding.Name)
	}
	return explicitType(binding), nil
}

func explicitType(binding *model.ParamBinding) (typ string) {

	switch binding.ExplicitType {
	case "String", "string":
		typ = "string"
	case "Number", "number":
		typ = "number"
	case "Boolean", "boolean":
		typ = "boolean"
	case "Object", "object":
		typ = "object"
	case "Date":
		typ = "Date"
	default:
		typ = typeAny
	}
	if binding.IsArray {
		typ += "[]"
	}
	return
}

// returnType оборачивает результат в Promise, если он ещё не обёрнут.
func (r *ClientRenderer) returnType(ret *model.TypeExpression) string {

	inner := ret
	if ret.IsReferenceTo(typePromise) {
		inner = nil
		if len(ret.TypeArgs) > 0 {
			inner = ret.TypeArgs[0]
		}
	}
	if r.isVoid(inner) {
		return typePromise + "<" + typeVoid + ">"
	}
	if ret.IsReferenceTo(typePromise) {
		return r.service.TypeText(ret)
	}
	return typePromise + "<" + r.service.TypeText(ret) + ">"
}

func (r *ClientRenderer) isVoid(expr *model.TypeExpression) bool {

	if expr == nil {
		return true
	}
	if expr.Kind == model.KindPrimitive && expr.Name == typeVoid {
		return true
	}
	names := []string{r.service.TypeText(expr)}
	if expr.Symbol != nil {
		names = append(names, expr.Symbol.Name)
	}
	if alias := expr.AliasSymbol(); alias != nil {
		names = append(names, alias.Name)
	}
	for _, name := range names {
		if _, found := r.voidTypes[name]; found {
			return true
		}
	}
	return false
}

// stubParams позиционный аргумент тела и объект параметров `{ a, b }: { a: T; b?: U }`.
func stubParams(args []StubArg) (params []*tsg.Statement) {

	var names, fields []*tsg.Statement
	for _, arg := range args {
		if arg.Kind == model.BindBody {
			params = append(params, tsg.Id(arg.Name).Colon().Id(arg.Type))
			continue
		}
		names = append(names, tsg.Id(tsBinding(arg.Name)))
		if arg.Optional {
			fields = append(fields, tsg.NewStatement().OptionalField(arg.Name, tsg.Id(arg.Type)))
		} else {
			fields = append(fields, tsg.NewStatement().Field(arg.Name, tsg.Id(arg.Type)))
		}
	}
	if len(names) > 0 {
		params = append(params, tsg.NewStatement().Values(names...).Colon().ObjectType(fields...))
	}
	return params
}

// requestDescriptor `{ method, url, data, params }` для вызова client.
func requestDescriptor(method *model.EndpointMethod, stub *Stub) *tsg.Statement {

	// Длинные имена первыми: replace меняет только первое вхождение, `:id` не должен попасть в `:idx`.
	paths := method.BindingsOf(model.BindPath)
	slices.SortStableFunc(paths, func(a, b *model.ParamBinding) int {
		return len(b.Name) - len(a.Name)
	})
	url := tsg.NewStatement().Lit(stub.Route)
	for _, binding := range paths {
		url.Dot("replace").Call(tsg.NewStatement().Lit(":"+binding.Name), tsg.Id("String").Call(tsg.Id(tsLocalVar(binding.Name))))
	}

	var data, params []*tsg.Statement
	for _, binding := range method.BindingsOf(model.BindBodyField) {
		data = append(data, tsg.Id(tsBinding(binding.Name)))
	}
	if len(method.BindingsOf(model.BindBody)) > 0 {
		data = append(data, tsg.NewStatement().Spread(tsg.Id(validate.BodyArgName)))
	}
	for _, binding := range method.BindingsOf(model.BindQuery) {
		params = append(params, tsg.Id(tsBinding(binding.Name)))
	}

	return tsg.NewStatement().Values(
		tsg.NewStatement().Field("method", tsg.NewStatement().Lit(stub.Verb)),
		tsg.NewStatement().Field("url", url),
		tsg.NewStatement().Field("data", tsg.NewStatement().Values(data...)),
		tsg.NewStatement().Field("params", tsg.NewStatement().Values(params...)),
	)
}

// formatComment обрезает строки комментария; строки JSDoc `*` выравниваются под `/**`.
func formatComment(comment string) string {

	lines := strings.Split(strings.ReplaceAll(strings.TrimSpace(comment), "\r\n", "\n"), "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "*") {
			line = " " + line
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
