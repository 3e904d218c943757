// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package collector

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"sdkgen/internal/introspect"
	"sdkgen/internal/model"
)

var (
	ErrUnknownKind = errors.New("unknown type expression kind")
	// ErrNoDeclarations источник графа нарушил контракт: у символа нет объявлений.
	ErrNoDeclarations = introspect.ErrNoDeclarations
)

const nodeModules = "node_modules"

// SymbolSource часть сервиса интроспекции, нужная для обхода.
type SymbolSource interface {
	Declarations(sym *model.Symbol) []*model.Declaration
	Members(sym *model.Symbol) []model.Member
	OriginOf(decl *model.Declaration) string
}

type Options struct {
	// ProjectRoot корень проекта; пустое значение отключает проверку корня.
	ProjectRoot string
	// AllowedModules внешние модули из node_modules, чьи объявления допускаются к выводу.
	AllowedModules []string
	// WidenEnumMembers заменяет член перечисления в объединении на само перечисление.
	WidenEnumMembers bool
}

type ExclusionReason string

const (
	ExcludedOrigin ExclusionReason = "origin"
	ExcludedKind   ExclusionReason = "kind"
)

// Exclusion символ, достигнутый при обходе, но не допущенный к выводу.
type Exclusion struct {
	Symbol *model.Symbol
	Reason ExclusionReason
	Origin string
}

type Collector struct {
	source   SymbolSource
	set      *CollectedSet
	opts     Options
	root     string
	excluded []Exclusion
	seen     map[model.SymbolID]struct{}
}

func New(source SymbolSource, set *CollectedSet, opts Options) *Collector {

	c := &Collector{
		source: source,
		set:    set,
		opts:   opts,
		seen:   make(map[model.SymbolID]struct{}),
	}
	if opts.ProjectRoot != "" {
		c.root = strings.TrimSuffix(filepath.ToSlash(filepath.Clean(opts.ProjectRoot)), "/")
	}
	return c
}

func (c *Collector) Set() *CollectedSet {
	return c.set
}

// Excluded символы, отклонённые фильтром допустимости, в порядке первого обнаружения.
func (c *Collector) Excluded() []Exclusion {

	out := make([]Exclusion, len(c.excluded))
	copy(out, c.excluded)
	return out
}

// CollectRoot обходит корневое выражение со свежим VisitedGuard.
func (c *Collector) CollectRoot(expr *model.TypeExpression) error {
	return c.Collect(expr, NewVisitedGuard())
}

// Collect обходит expr и всё достижимое из него, добавляя допустимые символы в CollectedSet.
// Повторный вызов для уже собранного графа ничего не меняет. Nil guard равносилен CollectRoot.
func (c *Collector) Collect(expr *model.TypeExpression, guard *VisitedGuard) (err error) {

	if expr == nil {
		return nil
	}
	if guard == nil {
		guard = NewVisitedGuard()
	}
	if !expr.Kind.Valid() {
		return fmt.Errorf("%w: %q (type %s)", ErrUnknownKind, expr.Kind, expr.ID)
	}
	if !guard.enterType(expr.ID) {
		return nil
	}

	switch expr.Kind {
	case model.KindLiteral, model.KindPrimitive:
		return nil
	}

	if sym := canonicalSymbol(expr); sym != nil {
		if err = c.expand(sym, guard); err != nil {
			return err
		}
	}
	return c.visitStructure(expr, guard)
}

// canonicalSymbol символ псевдонима, если собственный символ выражения анонимный,
// иначе собственный символ с откатом на символ псевдонима.
func canonicalSymbol(expr *model.TypeExpression) *model.Symbol {

	own := expr.Symbol
	alias := expr.AliasSymbol()
	if own == nil || (own.Is(model.SymbolPlaceholder) && alias != nil) {
		return alias
	}
	return own
}

// expand раскрывает символ: объявления, цепочку псевдонимов и таблицу членов.
func (c *Collector) expand(sym *model.Symbol, guard *VisitedGuard) (err error) {

	if c.set.Has(sym.ID) || !guard.enterSymbol(sym.ID) {
		return nil
	}

	decls := c.source.Declarations(sym)
	if len(decls) == 0 && !sym.Is(model.SymbolPlaceholder) {
		return fmt.Errorf("%w: %s (%s)", ErrNoDeclarations, sym.Name, sym.ID)
	}

	c.admit(sym, decls)

	if len(decls) == 1 && decls[0].Kind == model.DeclTypeAlias && decls[0].AliasOf != nil {
		if err = c.Collect(decls[0].AliasOf, guard); err != nil {
			return fmt.Errorf("alias %s: %w", sym.Name, err)
		}
	}

	for _, member := range c.source.Members(sym) {
		if err = c.Collect(member.Type, guard); err != nil {
			return fmt.Errorf("%s.%s: %w", sym.Name, member.Name, err)
		}
	}
	return nil
}

// visitStructure обходит структурных потомков выражения.
func (c *Collector) visitStructure(expr *model.TypeExpression, guard *VisitedGuard) (err error) {

	for _, arg := range expr.TypeArgs {
		if err = c.Collect(arg, guard); err != nil {
			return err
		}
	}
	for _, arg := range expr.AliasArgs() {
		if err = c.Collect(arg, guard); err != nil {
			return err
		}
	}

	switch expr.Kind {
	case model.KindReference, model.KindEnumLiteral:
	case model.KindObject:
		// Члены анонимного объекта, даже если каноническим стал символ псевдонима.
		if expr.Symbol != nil && expr.Symbol != canonicalSymbol(expr) {
			for _, member := range c.source.Members(expr.Symbol) {
				if err = c.Collect(member.Type, guard); err != nil {
					return fmt.Errorf("%s: %w", member.Name, err)
				}
			}
		}
	case model.KindUnion, model.KindIntersection:
		for _, sub := range expr.Types {
			if c.opts.WidenEnumMembers && sub != nil && sub.Kind == model.KindEnumLiteral && sub.Symbol != nil && sub.Symbol.Parent != nil {
				if err = c.expand(sub.Symbol.Parent, guard); err != nil {
					return err
				}
				continue
			}
			if err = c.Collect(sub, guard); err != nil {
				return err
			}
		}
	case model.KindConditional:
		for _, branch := range []*model.TypeExpression{expr.Check, expr.Extends, expr.True, expr.False} {
			if err = c.Collect(branch, guard); err != nil {
				return err
			}
		}
	case model.KindIndexedAccess:
		if err = c.Collect(expr.Object, guard); err != nil {
			return err
		}
		if err = c.Collect(expr.Index, guard); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q (type %s)", ErrUnknownKind, expr.Kind, expr.ID)
	}
	return nil
}

// admit добавляет символ в CollectedSet, если хотя бы одно его объявление
// допустимого вида происходит из проекта или разрешённого модуля.
func (c *Collector) admit(sym *model.Symbol, decls []*model.Declaration) {

	reason := ExcludedKind
	var origin string
	for _, decl := range decls {
		if origin == "" {
			origin = c.source.OriginOf(decl)
		}
		if !decl.Kind.Emittable() {
			continue
		}
		declOrigin := c.source.OriginOf(decl)
		if !c.allowedOrigin(declOrigin) {
			reason, origin = ExcludedOrigin, declOrigin
			continue
		}
		c.set.Add(sym)
		return
	}

	if sym.Is(model.SymbolPlaceholder) {
		return
	}
	if _, found := c.seen[sym.ID]; found {
		return
	}
	c.seen[sym.ID] = struct{}{}
	c.excluded = append(c.excluded, Exclusion{Symbol: sym, Reason: reason, Origin: origin})
	slog.Debug("symbol excluded from emission",
		slog.String("symbol", sym.Name),
		slog.String("reason", string(reason)),
		slog.String("origin", origin),
	)
}

func (c *Collector) allowedOrigin(origin string) bool {

	path := filepath.ToSlash(origin)
	segments := strings.Split(path, "/")
	var vendored bool
	for i, segment := range segments {
		if segment != nodeModules {
			continue
		}
		vendored = true
		rest := strings.Join(segments[i+1:], "/")
		for _, module := range c.opts.AllowedModules {
			module = strings.Trim(module, "/")
			if module != "" && (rest == module || strings.HasPrefix(rest, module+"/")) {
				return true
			}
		}
	}
	if vendored {
		return false
	}
	if c.root == "" || !filepath.IsAbs(origin) {
		return true
	}
	return path == c.root || strings.HasPrefix(path, c.root+"/")
}
