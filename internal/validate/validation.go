// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"sdkgen/internal/model"
)

var (
	ErrMultipleBodies  = errors.New("only one body binding is allowed")
	ErrDuplicateParams = errors.New("duplicate params")
	ErrPathParam       = errors.New("path parameter mismatch")
	ErrBindingKind     = errors.New("unknown binding kind")
	ErrBindingName     = errors.New("binding has no name")
	ErrEmptyName       = errors.New("empty name")
	ErrDuplicateClass  = errors.New("duplicate endpoint class")
)

// BodyArgName имя позиционного аргумента тела запроса в заглушке.
const BodyArgName = "body"

var pathTokenRe = regexp.MustCompile(`:([A-Za-z_$][A-Za-z0-9_$]*)`)

// PathTokens имена параметров `:name` в шаблоне маршрута в порядке появления.
func PathTokens(route string) (tokens []string) {

	for _, match := range pathTokenRe.FindAllStringSubmatch(route, -1) {
		if !slices.Contains(tokens, match[1]) {
			tokens = append(tokens, match[1])
		}
	}
	return
}

func ValidateClasses(classes []*model.EndpointClass) error {

	seen := make(map[string]struct{}, len(classes))
	for i, class := range classes {
		if class == nil || class.Name == "" {
			return fmt.Errorf("endpoint class #%d: %w", i+1, ErrEmptyName)
		}
		if _, found := seen[class.Name]; found {
			return fmt.Errorf("%w: %q", ErrDuplicateClass, class.Name)
		}
		seen[class.Name] = struct{}{}
		for j, method := range class.Methods {
			if method == nil || method.Name == "" {
				return fmt.Errorf("endpoint class %q: method #%d: %w", class.Name, j+1, ErrEmptyName)
			}
		}
	}
	return nil
}

// ValidateMethod проверяет привязки параметров метода: не больше одного тела,
// уникальные имена в объекте параметров и соответствие `:name` маршрута path-привязкам.
func ValidateMethod(class *model.EndpointClass, method *model.EndpointMethod) (err error) {

	var bodies int
	for i, binding := range method.Bindings {
		if !binding.Kind.Valid() {
			return fmt.Errorf("%s.%s: binding #%d: %w: %q", class.Name, method.Name, i+1, ErrBindingKind, binding.Kind)
		}
		if binding.Kind == model.BindBody {
			bodies++
			continue
		}
		if binding.Name == "" {
			return fmt.Errorf("%s.%s: binding #%d: %w", class.Name, method.Name, i+1, ErrBindingName)
		}
	}
	if bodies > 1 {
		return fmt.Errorf("%s.%s: %w", class.Name, method.Name, ErrMultipleBodies)
	}

	if dups := DuplicateNames(method); len(dups) > 0 {
		return fmt.Errorf("%s.%s: %w: %s", class.Name, method.Name, ErrDuplicateParams, strings.Join(dups, ", "))
	}
	return validatePath(class, method)
}

// DuplicateNames имена, которые встречаются в объекте параметров больше одного раза.
// При наличии тела имя body занято позиционным аргументом.
func DuplicateNames(method *model.EndpointMethod) (dups []string) {

	counts := make(map[string]int)
	if len(method.BindingsOf(model.BindBody)) > 0 {
		counts[BodyArgName] = 1
	}
	for _, binding := range method.BindingsOf(model.BindPath, model.BindQuery, model.BindBodyField) {
		if counts[binding.Name]++; counts[binding.Name] == 2 {
			dups = append(dups, binding.Name)
		}
	}
	return
}

func validatePath(class *model.EndpointClass, method *model.EndpointMethod) error {

	route := class.FullRoute(method)
	tokens := PathTokens(route)

	var bound []string
	for _, binding := range method.BindingsOf(model.BindPath) {
		if !slices.Contains(tokens, binding.Name) {
			return fmt.Errorf("%s.%s: %w: %q is not in route %q", class.Name, method.Name, ErrPathParam, binding.Name, route)
		}
		bound = append(bound, binding.Name)
	}
	for _, token := range tokens {
		if !slices.Contains(bound, token) {
			return fmt.Errorf("%s.%s: %w: route %q token :%s has no path binding", class.Name, method.Name, ErrPathParam, route, token)
		}
	}
	return nil
}
