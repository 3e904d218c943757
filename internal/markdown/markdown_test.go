// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestMarkdownBuild(t *testing.T) {

	t.Parallel()

	var buf bytes.Buffer
	err := NewMarkdown(&buf).
		H1("SDK").
		PlainTextf("%d groups", 2).
		BulletList("a", "b").
		CodeBlocks(SyntaxHighlightTypeScript, "const a = 1").
		HorizontalRule().
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := "# SDK\n2 groups\n- a\n- b\n```typescript\nconst a = 1\n```\n---"
	if got := buf.String(); got != want {
		t.Errorf("Build() =\n%q\nwant\n%q", got, want)
	}
}

func TestTable(t *testing.T) {

	t.Parallel()

	md := NewMarkdown(nil).Table(TableSet{
		Header:    []string{"Name", "Type"},
		Rows:      [][]string{{"id", "string | number"}},
		Alignment: []TableAlignment{AlignLeft},
	})
	want := "| Name | Type |\n|:--------|---------|\n| id | string \\| number |\n"
	if got := md.String(); got != want {
		t.Errorf("Table() =\n%q\nwant\n%q", got, want)
	}
}

func TestCustomTable(t *testing.T) {

	t.Parallel()

	md := NewMarkdown(nil).CustomTable(TableSet{
		Header: []string{"Method", "URL"},
		Rows:   [][]string{{"get", "/blog/:id"}, {"post", "/blog"}},
	}, TableOptions{})
	if err := md.Error(); err != nil {
		t.Fatalf("CustomTable() error = %v", err)
	}
	got := md.String()
	for _, part := range []string{"Method", "/blog/:id", "post", "|"} {
		if !strings.Contains(got, part) {
			t.Errorf("CustomTable() output misses %q:\n%s", part, got)
		}
	}
}

func TestTableMismatch(t *testing.T) {

	t.Parallel()

	md := NewMarkdown(nil).
		Table(TableSet{Header: []string{"a"}, Rows: [][]string{{"1", "2"}}}).
		CustomTable(TableSet{Header: []string{"a", "b"}, Rows: [][]string{{"1"}}}, TableOptions{})
	if !errors.Is(md.Error(), ErrMismatchColumn) {
		t.Errorf("Error() = %v, want %v", md.Error(), ErrMismatchColumn)
	}
	if md.String() != "" {
		t.Errorf("String() = %q, want empty", md.String())
	}
}
