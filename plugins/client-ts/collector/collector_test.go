// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package collector

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"sdkgen/internal/model"
)

const root = "/proj"

type fieldSource struct{}

func (fieldSource) Declarations(sym *model.Symbol) []*model.Declaration { return sym.Declarations }
func (fieldSource) Members(sym *model.Symbol) []model.Member            { return sym.Members }
func (fieldSource) OriginOf(decl *model.Declaration) string             { return decl.File }

type graph struct {
	next int
}

func (g *graph) id() model.TypeID {

	g.next++
	return model.TypeID(fmt.Sprintf("t%d", g.next))
}

func (g *graph) symbol(name string, kind model.DeclKind, file string) *model.Symbol {

	return &model.Symbol{
		ID:           model.SymbolID(file + "#" + name),
		Name:         name,
		Declarations: []*model.Declaration{{Kind: kind, File: file, Text: name}},
	}
}

func (g *graph) ref(sym *model.Symbol, args ...*model.TypeExpression) *model.TypeExpression {
	return &model.TypeExpression{ID: g.id(), Kind: model.KindReference, Symbol: sym, TypeArgs: args}
}

func (g *graph) prim(name string) *model.TypeExpression {
	return &model.TypeExpression{ID: g.id(), Kind: model.KindPrimitive, Name: name}
}

func (g *graph) union(types ...*model.TypeExpression) *model.TypeExpression {
	return &model.TypeExpression{ID: g.id(), Kind: model.KindUnion, Types: types}
}

func (g *graph) object(alias *model.Symbol, members ...model.Member) *model.TypeExpression {

	placeholder := &model.Symbol{
		ID:      model.SymbolID(fmt.Sprintf("__type#%d", g.next)),
		Name:    "__type",
		Flags:   model.SymbolPlaceholder,
		Members: members,
	}
	expr := &model.TypeExpression{ID: g.id(), Kind: model.KindObject, Symbol: placeholder}
	if alias != nil {
		expr.Alias = &model.AliasRef{Symbol: alias}
	}
	return expr
}

func names(set *CollectedSet) (out []string) {

	for _, sym := range set.Symbols() {
		out = append(out, sym.Name)
	}
	return
}

func collectAll(t *testing.T, opts Options, roots ...*model.TypeExpression) (*Collector, []string) {

	t.Helper()
	c := New(fieldSource{}, NewCollectedSet(), opts)
	for _, r := range roots {
		if err := c.CollectRoot(r); err != nil {
			t.Fatalf("CollectRoot() error = %v", err)
		}
	}
	return c, names(c.Set())
}

func TestCollectPreOrder(t *testing.T) {

	t.Parallel()

	g := &graph{}
	bar := g.symbol("Bar", model.DeclInterface, root+"/bar.ts")
	baz := g.symbol("Baz", model.DeclEnum, root+"/baz.ts")
	foo := g.symbol("Foo", model.DeclClass, root+"/foo.ts")
	foo.Members = []model.Member{
		{Name: "bar", Type: g.ref(bar)},
		{Name: "baz", Type: g.ref(baz)},
		{Name: "id", Type: g.prim("string")},
	}

	_, got := collectAll(t, Options{ProjectRoot: root}, g.ref(foo))
	if diff := cmp.Diff([]string{"Foo", "Bar", "Baz"}, got); diff != "" {
		t.Errorf("collected mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectDeterministic(t *testing.T) {

	t.Parallel()

	build := func() []*model.TypeExpression {
		g := &graph{}
		a := g.symbol("A", model.DeclInterface, root+"/a.ts")
		b := g.symbol("B", model.DeclInterface, root+"/b.ts")
		c := g.symbol("C", model.DeclTypeAlias, root+"/c.ts")
		a.Members = []model.Member{{Name: "b", Type: g.ref(b)}, {Name: "c", Type: g.ref(c)}}
		b.Members = []model.Member{{Name: "a", Type: g.ref(a)}}
		return []*model.TypeExpression{g.ref(b), g.ref(a)}
	}

	_, first := collectAll(t, Options{}, build()...)
	_, second := collectAll(t, Options{}, build()...)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("runs differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"B", "A", "C"}, first); diff != "" {
		t.Errorf("collected mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectSharedDependencyOnce(t *testing.T) {

	t.Parallel()

	g := &graph{}
	shared := g.symbol("Shared", model.DeclInterface, root+"/shared.ts")
	first := g.symbol("CreateBody", model.DeclInterface, root+"/a.ts")
	second := g.symbol("UpdateBody", model.DeclInterface, root+"/b.ts")
	first.Members = []model.Member{{Name: "s", Type: g.ref(shared)}}
	second.Members = []model.Member{{Name: "s", Type: g.ref(shared)}}

	c, got := collectAll(t, Options{}, g.ref(first), g.ref(second), g.ref(shared))
	if diff := cmp.Diff([]string{"CreateBody", "Shared", "UpdateBody"}, got); diff != "" {
		t.Errorf("collected mismatch (-want +got):\n%s", diff)
	}
	if err := c.CollectRoot(g.ref(first)); err != nil {
		t.Fatalf("repeated CollectRoot() error = %v", err)
	}
	if c.Set().Len() != 3 {
		t.Errorf("repeated collection changed the set: %v", names(c.Set()))
	}
}

func TestCollectNilGuard(t *testing.T) {

	t.Parallel()

	g := &graph{}
	inner := g.symbol("Inner", model.DeclInterface, root+"/inner.ts")
	outer := g.symbol("Outer", model.DeclInterface, root+"/outer.ts")
	outer.Members = []model.Member{{Name: "inner", Type: g.ref(inner)}}

	c := New(fieldSource{}, NewCollectedSet(), Options{})
	if err := c.Collect(g.ref(outer), nil); err != nil {
		t.Fatalf("Collect(nil guard) error = %v", err)
	}
	if diff := cmp.Diff([]string{"Outer", "Inner"}, names(c.Set())); diff != "" {
		t.Errorf("collected mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectCycles(t *testing.T) {

	t.Parallel()

	g := &graph{}
	array := g.symbol("Array", model.DeclInterface, "/usr/lib/lib.es5.d.ts")

	tree := g.symbol("Tree", model.DeclTypeAlias, root+"/tree.ts")
	treeExpr := g.object(tree)
	treeExpr.Symbol.Members = []model.Member{{Name: "children", Type: g.ref(array, treeExpr)}}

	node := g.symbol("Node", model.DeclInterface, root+"/node.ts")
	node.Members = []model.Member{{Name: "next", Type: g.ref(node)}}

	wrapper := g.symbol("Wrapper", model.DeclInterface, root+"/wrapper.ts")
	wrapped := g.ref(wrapper)
	wrapped.TypeArgs = []*model.TypeExpression{wrapped}

	_, got := collectAll(t, Options{ProjectRoot: root}, treeExpr, g.ref(node), wrapped)
	if diff := cmp.Diff([]string{"Tree", "Node", "Wrapper"}, got); diff != "" {
		t.Errorf("collected mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectAdmissibilityIndependence(t *testing.T) {

	t.Parallel()

	tests := []struct {
		name         string
		allowed      []string
		want         []string
		wantExcluded []string
	}{
		{name: "vendor excluded", want: []string{"Dep"}, wantExcluded: []string{"Vendor"}},
		{name: "vendor allowed", allowed: []string{"@acme/vendor"}, want: []string{"Vendor", "Dep"}},
		{name: "prefix is not a module", allowed: []string{"@acme/vend"}, want: []string{"Dep"}, wantExcluded: []string{"Vendor"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := &graph{}
			dep := g.symbol("Dep", model.DeclInterface, root+"/dep.ts")
			vendor := g.symbol("Vendor", model.DeclInterface, root+"/node_modules/@acme/vendor/index.d.ts")
			vendor.Members = []model.Member{{Name: "dep", Type: g.ref(dep)}}

			c, got := collectAll(t, Options{ProjectRoot: root, AllowedModules: tt.allowed}, g.ref(vendor))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("collected mismatch (-want +got):\n%s", diff)
			}
			var excluded []string
			for _, ex := range c.Excluded() {
				excluded = append(excluded, ex.Symbol.Name)
				if ex.Reason != ExcludedOrigin {
					t.Errorf("%s excluded by %s, want %s", ex.Symbol.Name, ex.Reason, ExcludedOrigin)
				}
			}
			if diff := cmp.Diff(tt.wantExcluded, excluded); diff != "" {
				t.Errorf("excluded mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollectOutsideProjectRoot(t *testing.T) {

	t.Parallel()

	g := &graph{}
	outside := g.symbol("Outside", model.DeclInterface, "/elsewhere/outside.ts")
	relative := g.symbol("Relative", model.DeclInterface, "src/relative.ts")

	_, got := collectAll(t, Options{ProjectRoot: root}, g.ref(outside), g.ref(relative))
	if diff := cmp.Diff([]string{"Relative"}, got); diff != "" {
		t.Errorf("collected mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectDeclarationKind(t *testing.T) {

	t.Parallel()

	g := &graph{}
	fn := g.symbol("helper", model.DeclFunction, root+"/helper.ts")
	ret := g.symbol("HelperResult", model.DeclInterface, root+"/helper.ts")
	fn.Members = []model.Member{{Name: "result", Type: g.ref(ret)}}
	merged := g.symbol("Merged", model.DeclModule, root+"/merged.ts")
	merged.Declarations = append(merged.Declarations, &model.Declaration{Kind: model.DeclInterface, File: root + "/merged.ts"})

	c, got := collectAll(t, Options{ProjectRoot: root}, g.ref(fn), g.ref(merged))
	if diff := cmp.Diff([]string{"HelperResult", "Merged"}, got); diff != "" {
		t.Errorf("collected mismatch (-want +got):\n%s", diff)
	}
	excluded := c.Excluded()
	if len(excluded) != 1 || excluded[0].Symbol != fn || excluded[0].Reason != ExcludedKind {
		t.Errorf("Excluded() = %+v, want helper by kind", excluded)
	}
}

func TestCollectEnumWidening(t *testing.T) {

	t.Parallel()

	tests := []struct {
		name  string
		widen bool
		want  []string
	}{
		{name: "widened", widen: true, want: []string{"Holder", "Status"}},
		{name: "bare literal", widen: false, want: []string{"Holder"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := &graph{}
			status := g.symbol("Status", model.DeclEnum, root+"/status.ts")
			status.Flags = model.SymbolEnum
			active := &model.Symbol{
				ID:           "status.ts#Status.Active",
				Name:         "Active",
				Flags:        model.SymbolEnumMember,
				Parent:       status,
				Declarations: []*model.Declaration{{Kind: model.DeclEnumMember, File: root + "/status.ts"}},
			}
			holder := g.symbol("Holder", model.DeclInterface, root+"/holder.ts")
			holder.Members = []model.Member{{
				Name: "status",
				Type: g.union(&model.TypeExpression{ID: g.id(), Kind: model.KindEnumLiteral, Symbol: active}, g.prim("null")),
			}}

			_, got := collectAll(t, Options{WidenEnumMembers: tt.widen}, g.ref(holder))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("collected mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollectAliasOfAlias(t *testing.T) {

	t.Parallel()

	g := &graph{}
	target := g.symbol("Target", model.DeclInterface, root+"/target.ts")
	middle := g.symbol("Middle", model.DeclTypeAlias, root+"/middle.ts")
	middle.Declarations[0].AliasOf = g.ref(target)
	top := g.symbol("Top", model.DeclTypeAlias, root+"/top.ts")
	top.Declarations[0].AliasOf = g.ref(middle)

	_, got := collectAll(t, Options{}, g.ref(top))
	if diff := cmp.Diff([]string{"Top", "Middle", "Target"}, got); diff != "" {
		t.Errorf("collected mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectStructuralForms(t *testing.T) {

	t.Parallel()

	g := &graph{}
	promise := g.symbol("Promise", model.DeclInterface, root+"/node_modules/typescript/lib/lib.es5.d.ts")
	foo := g.symbol("Foo", model.DeclInterface, root+"/foo.ts")
	bar := g.symbol("Bar", model.DeclInterface, root+"/bar.ts")
	check := g.symbol("Check", model.DeclInterface, root+"/check.ts")
	ext := g.symbol("Extends", model.DeclInterface, root+"/extends.ts")
	yes := g.symbol("Yes", model.DeclInterface, root+"/yes.ts")
	no := g.symbol("No", model.DeclInterface, root+"/no.ts")
	obj := g.symbol("Obj", model.DeclInterface, root+"/obj.ts")
	key := g.symbol("Key", model.DeclTypeAlias, root+"/key.ts")
	inter := g.symbol("Inter", model.DeclInterface, root+"/inter.ts")
	aliasArg := g.symbol("AliasArg", model.DeclInterface, root+"/arg.ts")
	alias := g.symbol("Alias", model.DeclTypeAlias, root+"/alias.ts")

	payload := g.object(nil,
		model.Member{Name: "a", Type: g.ref(promise, g.ref(foo))},
		model.Member{Name: "b", Type: g.ref(promise, g.ref(bar))},
		model.Member{Name: "c", Type: &model.TypeExpression{
			ID: g.id(), Kind: model.KindConditional,
			Check: g.ref(check), Extends: g.ref(ext), True: g.ref(yes), False: g.ref(no),
		}},
		model.Member{Name: "d", Type: &model.TypeExpression{
			ID: g.id(), Kind: model.KindIndexedAccess, Object: g.ref(obj), Index: g.ref(key),
		}},
		model.Member{Name: "e", Type: &model.TypeExpression{
			ID: g.id(), Kind: model.KindIntersection, Types: []*model.TypeExpression{g.ref(inter), g.prim("object")},
		}},
		model.Member{Name: "f", Type: &model.TypeExpression{
			ID: g.id(), Kind: model.KindUnion, Types: []*model.TypeExpression{g.prim("string"), g.prim("number")},
			Alias: &model.AliasRef{Symbol: alias, Args: []*model.TypeExpression{g.ref(aliasArg)}},
		}},
		model.Member{Name: "g", Type: &model.TypeExpression{ID: g.id(), Kind: model.KindLiteral, Literal: "x"}},
	)

	_, got := collectAll(t, Options{ProjectRoot: root}, payload)
	want := []string{"Foo", "Bar", "Check", "Extends", "Yes", "No", "Obj", "Key", "Inter", "Alias", "AliasArg"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("collected mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectAliasedObjectLiteral(t *testing.T) {

	t.Parallel()

	g := &graph{}
	bar := g.symbol("Bar", model.DeclInterface, root+"/bar.ts")
	foo := g.symbol("Foo", model.DeclTypeAlias, root+"/foo.ts")

	_, got := collectAll(t, Options{}, g.object(foo, model.Member{Name: "a", Type: g.ref(bar)}))
	if diff := cmp.Diff([]string{"Foo", "Bar"}, got); diff != "" {
		t.Errorf("collected mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectErrors(t *testing.T) {

	t.Parallel()

	g := &graph{}
	empty := &model.Symbol{ID: "x#Empty", Name: "Empty"}
	holder := g.symbol("Holder", model.DeclInterface, root+"/holder.ts")
	holder.Members = []model.Member{{Name: "empty", Type: g.ref(empty)}}

	tests := []struct {
		name string
		expr *model.TypeExpression
		want error
	}{
		{name: "no declarations", expr: g.ref(holder), want: ErrNoDeclarations},
		{name: "unknown kind", expr: &model.TypeExpression{ID: g.id(), Kind: "mapped"}, want: ErrUnknownKind},
		{name: "nested unknown kind", expr: g.union(g.prim("string"), &model.TypeExpression{Kind: "tuple"}), want: ErrUnknownKind},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := New(fieldSource{}, NewCollectedSet(), Options{})
			if err := c.CollectRoot(tt.expr); !errors.Is(err, tt.want) {
				t.Errorf("CollectRoot() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCollectedSetAdd(t *testing.T) {

	t.Parallel()

	set := NewCollectedSet()
	first := &model.Symbol{ID: "a.ts#Foo", Name: "Foo"}
	second := &model.Symbol{ID: "b.ts#Foo", Name: "Foo"}

	if !set.Add(first) || !set.Add(second) {
		t.Fatal("symbols with the same name but different ids must both be added")
	}
	if set.Add(&model.Symbol{ID: "a.ts#Foo", Name: "Other"}) {
		t.Error("symbol with a known id must not be added twice")
	}
	if set.Add(nil) {
		t.Error("nil symbol must be ignored")
	}
	if diff := cmp.Diff([]string{"Foo", "Foo"}, names(set)); diff != "" {
		t.Errorf("Symbols() mismatch (-want +got):\n%s", diff)
	}
}
