// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package model

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// IsIdentifier сообщает, можно ли использовать имя как идентификатор без кавычек.
func IsIdentifier(name string) bool {
	return identifierRe.MatchString(name)
}

// PropertyName имя свойства объекта, в кавычках, если это не идентификатор.
func PropertyName(name string) string {

	if IsIdentifier(name) {
		return name
	}
	return QuoteString(name)
}

// QuoteString строковый литерал TypeScript в двойных кавычках.
// Некорректные байты UTF-8 заменяются на U+FFFD.
func QuoteString(s string) string {

	var buf strings.Builder
	buf.Grow(len(s) + 2)
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\v':
			buf.WriteString(`\v`)
		case '\u2028', '\u2029', utf8.RuneError:
			fmt.Fprintf(&buf, `\u%04x`, r)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&buf, `\u%04x`, r)
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}
