// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package document

import (
	"fmt"
	"path"
	"strings"

	"sdkgen/internal/introspect"
	"sdkgen/internal/model"
)

var (
	_ introspect.Service  = (*Graph)(nil)
	_ introspect.Registry = (*Graph)(nil)
)

type methodEntry struct {
	signature *model.Signature
}

// Graph связанный граф типов. После загрузки не изменяется.
type Graph struct {
	root       string
	symbols    map[model.SymbolID]*model.Symbol
	types      map[model.TypeID]*model.TypeExpression
	classes    []*model.EndpointClass
	signatures map[string]map[string]*methodEntry
}

func (g *Graph) ProjectRoot() string {
	return g.root
}

func (g *Graph) Symbol(id model.SymbolID) (sym *model.Symbol, err error) {

	var found bool
	if sym, found = g.symbols[id]; !found {
		return nil, fmt.Errorf("%w: %s", introspect.ErrSymbolNotFound, id)
	}
	return sym, nil
}

func (g *Graph) Type(id model.TypeID) (expr *model.TypeExpression, err error) {

	var found bool
	if expr, found = g.types[id]; !found {
		return nil, fmt.Errorf("%w: %s", introspect.ErrTypeNotFound, id)
	}
	return expr, nil
}

// ListEndpoints классы эндпоинтов в порядке документа.
func (g *Graph) ListEndpoints() ([]*model.EndpointClass, error) {

	out := make([]*model.EndpointClass, len(g.classes))
	copy(out, g.classes)
	return out, nil
}

func (g *Graph) Signature(class, method string) (sig *model.Signature, err error) {

	methods, found := g.signatures[class]
	if !found {
		return nil, fmt.Errorf("%w: %s", introspect.ErrClassNotFound, class)
	}
	entry, found := methods[method]
	if !found {
		return nil, fmt.Errorf("%w: %s.%s", introspect.ErrMethodNotFound, class, method)
	}
	if entry.signature == nil {
		return nil, fmt.Errorf("%w: %s.%s", introspect.ErrNoCallSignature, class, method)
	}
	return entry.signature, nil
}

func (g *Graph) TypeOf(pos introspect.Position) (expr *model.TypeExpression, err error) {

	var sig *model.Signature
	if sig, err = g.Signature(pos.Class, pos.Method); err != nil {
		return nil, err
	}
	if pos.Param < 0 {
		return sig.Return, nil
	}
	param := sig.Parameter(pos.Param)
	if param == nil {
		return nil, fmt.Errorf("%w: %s", introspect.ErrPositionNotFound, pos)
	}
	return param.Type, nil
}

func (g *Graph) Declarations(sym *model.Symbol) []*model.Declaration {

	if sym == nil {
		return nil
	}
	return sym.Declarations
}

func (g *Graph) Members(sym *model.Symbol) []model.Member {

	if sym == nil {
		return nil
	}
	return sym.Members
}

func (g *Graph) LeadingComment(decl *model.Declaration) (comment string, ok bool) {

	if decl == nil || strings.TrimSpace(decl.Comment) == "" {
		return "", false
	}
	return decl.Comment, true
}

// OriginOf путь исходного файла объявления. Относительные пути считаются от корня проекта.
func (g *Graph) OriginOf(decl *model.Declaration) string {

	if decl == nil {
		return ""
	}
	file := strings.ReplaceAll(decl.File, "\\", "/")
	if g.root == "" || file == "" || path.IsAbs(file) {
		return file
	}
	return path.Join(g.root, file)
}

func (g *Graph) TypeText(expr *model.TypeExpression) string {
	return model.Format(expr)
}
