// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package model

import (
	"strconv"
	"strings"
)

// Format печатает выражение типа в синтаксисе TypeScript.
// Используется, когда источник графа не предоставил Text.
func Format(t *TypeExpression) string {

	var buf strings.Builder
	formatInto(&buf, t, make(map[TypeID]bool), false)
	return buf.String()
}

func formatInto(buf *strings.Builder, t *TypeExpression, seen map[TypeID]bool, nested bool) {

	if t == nil {
		buf.WriteString("any")
		return
	}
	if t.Text != "" {
		if nested && needsParens(t) {
			buf.WriteString("(" + t.Text + ")")
			return
		}
		buf.WriteString(t.Text)
		return
	}
	if alias := t.AliasSymbol(); alias != nil && !alias.Is(SymbolPlaceholder) {
		buf.WriteString(alias.Name)
		formatArgs(buf, t.AliasArgs(), seen)
		return
	}
	if t.ID != "" {
		if seen[t.ID] {
			buf.WriteString("any")
			return
		}
		seen[t.ID] = true
		defer delete(seen, t.ID)
	}

	switch t.Kind {
	case KindPrimitive:
		buf.WriteString(t.Name)
	case KindLiteral:
		buf.WriteString(formatLiteral(t.Literal))
	case KindReference:
		if t.Symbol == nil {
			buf.WriteString("any")
			return
		}
		if t.Symbol.Name == "Array" && len(t.TypeArgs) == 1 {
			formatInto(buf, t.TypeArgs[0], seen, true)
			buf.WriteString("[]")
			return
		}
		buf.WriteString(t.Symbol.Name)
		formatArgs(buf, t.TypeArgs, seen)
	case KindObject:
		if t.Symbol == nil || len(t.Symbol.Members) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{ ")
		for i, m := range t.Symbol.Members {
			if i > 0 {
				buf.WriteString("; ")
			}
			buf.WriteString(PropertyName(m.Name))
			if m.Optional {
				buf.WriteString("?")
			}
			buf.WriteString(": ")
			formatInto(buf, m.Type, seen, false)
		}
		buf.WriteString(" }")
	case KindUnion, KindIntersection:
		if nested {
			buf.WriteString("(")
		}
		sep := " | "
		if t.Kind == KindIntersection {
			sep = " & "
		}
		for i, sub := range t.Types {
			if i > 0 {
				buf.WriteString(sep)
			}
			formatInto(buf, sub, seen, true)
		}
		if nested {
			buf.WriteString(")")
		}
	case KindConditional:
		if nested {
			buf.WriteString("(")
		}
		formatInto(buf, t.Check, seen, true)
		buf.WriteString(" extends ")
		formatInto(buf, t.Extends, seen, true)
		buf.WriteString(" ? ")
		formatInto(buf, t.True, seen, false)
		buf.WriteString(" : ")
		formatInto(buf, t.False, seen, false)
		if nested {
			buf.WriteString(")")
		}
	case KindIndexedAccess:
		formatInto(buf, t.Object, seen, true)
		buf.WriteString("[")
		formatInto(buf, t.Index, seen, false)
		buf.WriteString("]")
	case KindEnumLiteral:
		if t.Symbol == nil {
			buf.WriteString("any")
			return
		}
		if t.Symbol.Parent != nil {
			buf.WriteString(t.Symbol.Parent.Name + ".")
		}
		buf.WriteString(t.Symbol.Name)
	default:
		buf.WriteString("any")
	}
}

func formatArgs(buf *strings.Builder, args []*TypeExpression, seen map[TypeID]bool) {

	if len(args) == 0 {
		return
	}
	buf.WriteString("<")
	for i, arg := range args {
		if i > 0 {
			buf.WriteString(", ")
		}
		formatInto(buf, arg, seen, false)
	}
	buf.WriteString(">")
}

func formatLiteral(v any) string {

	switch lit := v.(type) {
	case string:
		return QuoteString(lit)
	case bool:
		return strconv.FormatBool(lit)
	case float64:
		return strconv.FormatFloat(lit, 'f', -1, 64)
	case int:
		return strconv.Itoa(lit)
	case int64:
		return strconv.FormatInt(lit, 10)
	case nil:
		return "null"
	default:
		return "any"
	}
}

func needsParens(t *TypeExpression) bool {

	switch t.Kind {
	case KindUnion, KindIntersection, KindConditional:
		return t.Alias == nil
	default:
		return false
	}
}
