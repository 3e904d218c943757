// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package tsg

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestStatement(t *testing.T) {

	t.Parallel()

	tests := []struct {
		name string
		stmt *Statement
		want string
	}{
		{name: "empty values", stmt: NewStatement().Values(), want: "{}"},
		{name: "values", stmt: NewStatement().Values(Id("a"), Id("b"), nil), want: "{ a, b }"},
		{name: "object type", stmt: NewStatement().ObjectType(
			NewStatement().Field("a", Id("string")),
			NewStatement().OptionalField("x-trace", Id("number")),
		), want: `{ a: string; "x-trace"?: number }`},
		{name: "call chain", stmt: Lit("/a/:id").Dot("replace").Call(NewStatement().Lit(":id"), Id("String").Call(Id("id"))), want: `"/a/:id".replace(":id", String(id))`},
		{name: "arrow", stmt: NewStatement().Async().Params(Id("body: T")).Colon().Promise(Id("R")).Arrow().Parens(NewStatement().Await(Id("x"))).Dot("data"), want: "async (body: T): Promise<R> => (await x).data"},
		{name: "spread", stmt: NewStatement().Values(Id("a"), NewStatement().Spread(Id("body"))), want: "{ a, ...body }"},
		{name: "export const", stmt: NewStatement().Const("x").Op("=").Lit(1).Export(), want: "export const x = 1"},
		{name: "type alias", stmt: NewStatement().Type("Fn").Id("() => void"), want: "type Fn = () => void"},
		{name: "comment", stmt: NewStatement().Comment("one\n\ntwo"), want: "// one\n//\n// two\n"},
		{name: "literals", stmt: NewStatement().Lit(true).Lit(nil).Lit(2.5).Lit(`"q"`), want: `truenull2.5"\"q\""`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.stmt.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Lit(v any) *Statement {
	return NewStatement().Lit(v)
}

func TestBlocks(t *testing.T) {

	t.Parallel()

	stmt := NewStatement().Func("makeSdk").Params(Id("o")).Id(" ").Block(func(g *Group) {
		g.Return(NewStatement().ObjectLiteral(func(g *Group) {
			g.Add(NewStatement().Id("Blog: ").ObjectLiteral(func(g *Group) {
				g.Add(NewStatement().Comment("doc").Id("get: 1"))
			}))
		}).Id(" as const"))
	})

	want := `function makeSdk(o) {
    return {
        Blog: {
            // doc
            get: 1,
        },
    } as const
}`
	if got := stmt.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestIdentifiers(t *testing.T) {

	t.Parallel()

	for name, want := range map[string]bool{"id": true, "_x$1": true, "x-y": false, "1a": false, "": false} {
		if got := IsIdentifier(name); got != want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", name, got, want)
		}
	}
	if got := PropertyName("x-y"); got != `"x-y"` {
		t.Errorf("PropertyName() = %s", got)
	}
}

func TestFileSave(t *testing.T) {

	t.Parallel()

	filename := filepath.Join(t.TempDir(), "nested", "sdk.ts")
	file := NewFile().Comment("/* banner */\n").Add(NewStatement().Const("a").Op("=").Lit(1)).Line()

	changed, err := file.Save(filename)
	if err != nil || !changed {
		t.Fatalf("first Save() = %v, %v; want true, nil", changed, err)
	}
	if changed, err = file.Save(filename); err != nil || changed {
		t.Fatalf("second Save() = %v, %v; want false, nil", changed, err)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "/* banner */\nconst a = 1\n" {
		t.Errorf("file content = %q", data)
	}
}

func ExampleStatement_Values() {

	fmt.Println(NewStatement().Id("params: ").Values(Id("title"), Id("max")))
	// Output: params: { title, max }
}
