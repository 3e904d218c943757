// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package document

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"sdkgen/internal/model"
)

// SupportedMajor мажорная версия формата документа, которую понимает загрузчик.
const SupportedMajor = "v1"

var (
	ErrInvalidDocument    = errors.New("invalid type graph document")
	ErrUnsupportedVersion = errors.New("unsupported type graph document version")
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf определяет формат документа по расширению файла.
func FormatOf(path string) Format {

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

type Options struct {
	// ProjectRoot переопределяет корень проекта из документа.
	ProjectRoot string
	// EndpointFilter отбирает классы эндпоинтов по имени; nil - все классы.
	EndpointFilter func(className string) bool
	// SkipFile исключает файлы с классами из обнаружения (например, сгенерированные).
	SkipFile func(path string) bool
}

// Load читает и связывает документ графа типов.
func Load(path string, opts Options) (graph *Graph, err error) {

	var data []byte
	if data, err = os.ReadFile(path); err != nil {
		return nil, errors.Wrapf(err, "read type graph document %s", path)
	}
	if graph, err = Parse(data, FormatOf(path), opts); err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	slog.Debug("type graph document loaded",
		slog.String("path", path),
		slog.Int("symbols", len(graph.symbols)),
		slog.Int("types", len(graph.types)),
		slog.Int("classes", len(graph.classes)),
	)
	return graph, nil
}

// Parse декодирует документ и связывает его в неизменяемый граф.
func Parse(data []byte, format Format, opts Options) (graph *Graph, err error) {

	var doc Document
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidDocument, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err = checkVersion(doc.Version); err != nil {
		return nil, err
	}
	return link(&doc, opts)
}

func checkVersion(version string) error {

	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("%w: %s, supported %s.x", ErrUnsupportedVersion, version, SupportedMajor)
	}
	return nil
}

var symbolFlags = map[string]model.SymbolFlags{
	"placeholder": model.SymbolPlaceholder,
	"enum":        model.SymbolEnum,
	"enumMember":  model.SymbolEnumMember,
}

var declKinds = map[string]model.DeclKind{}

func init() {
	for _, k := range []model.DeclKind{
		model.DeclClass, model.DeclInterface, model.DeclEnum, model.DeclTypeAlias, model.DeclVariable,
		model.DeclTypeLiteral, model.DeclEnumMember, model.DeclMethod, model.DeclProperty,
		model.DeclParameter, model.DeclFunction, model.DeclModule,
	} {
		declKinds[string(k)] = k
	}
}

// linker связывает записи документа в два прохода: сначала создаются все узлы,
// затем заполняются ссылки, поэтому циклические ссылки допустимы.
type linker struct {
	graph *Graph
}

func link(doc *Document, opts Options) (graph *Graph, err error) {

	root := doc.ProjectRoot
	if opts.ProjectRoot != "" {
		root = opts.ProjectRoot
	}
	graph = &Graph{
		symbols:    make(map[model.SymbolID]*model.Symbol, len(doc.Symbols)),
		types:      make(map[model.TypeID]*model.TypeExpression, len(doc.Types)),
		signatures: make(map[string]map[string]*methodEntry),
	}
	if root != "" {
		graph.root = filepath.ToSlash(filepath.Clean(root))
	}
	l := &linker{graph: graph}

	for _, rec := range doc.Symbols {
		if rec.ID == "" {
			return nil, fmt.Errorf("%w: symbol %q without id", ErrInvalidDocument, rec.Name)
		}
		id := model.SymbolID(rec.ID)
		if _, found := graph.symbols[id]; found {
			return nil, fmt.Errorf("%w: duplicate symbol id %s", ErrInvalidDocument, rec.ID)
		}
		graph.symbols[id] = &model.Symbol{ID: id, Name: rec.Name}
	}
	for _, rec := range doc.Types {
		if rec.ID == "" {
			return nil, fmt.Errorf("%w: type without id", ErrInvalidDocument)
		}
		id := model.TypeID(rec.ID)
		if _, found := graph.types[id]; found {
			return nil, fmt.Errorf("%w: duplicate type id %s", ErrInvalidDocument, rec.ID)
		}
		kind := model.TypeKind(rec.Kind)
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: type %s has unknown kind %q", ErrInvalidDocument, rec.ID, rec.Kind)
		}
		graph.types[id] = &model.TypeExpression{ID: id, Kind: kind}
	}

	for _, rec := range doc.Symbols {
		if err = l.fillSymbol(rec); err != nil {
			return nil, err
		}
	}
	for _, rec := range doc.Types {
		if err = l.fillType(rec); err != nil {
			return nil, err
		}
	}
	for _, rec := range doc.Classes {
		if err = l.addClass(rec, opts); err != nil {
			return nil, err
		}
	}
	return graph, nil
}

func (l *linker) symbol(id string) (sym *model.Symbol, err error) {

	if id == "" {
		return nil, nil
	}
	var found bool
	if sym, found = l.graph.symbols[model.SymbolID(id)]; !found {
		return nil, fmt.Errorf("%w: unknown symbol %s", ErrInvalidDocument, id)
	}
	return sym, nil
}

func (l *linker) typ(id string) (expr *model.TypeExpression, err error) {

	if id == "" {
		return nil, nil
	}
	var found bool
	if expr, found = l.graph.types[model.TypeID(id)]; !found {
		return nil, fmt.Errorf("%w: unknown type %s", ErrInvalidDocument, id)
	}
	return expr, nil
}

func (l *linker) types(ids []string) (out []*model.TypeExpression, err error) {

	for _, id := range ids {
		var expr *model.TypeExpression
		if expr, err = l.typ(id); err != nil {
			return nil, err
		}
		if expr != nil {
			out = append(out, expr)
		}
	}
	return out, nil
}

func (l *linker) fillSymbol(rec SymbolRecord) (err error) {

	sym := l.graph.symbols[model.SymbolID(rec.ID)]
	for _, flag := range rec.Flags {
		value, found := symbolFlags[flag]
		if !found {
			return fmt.Errorf("%w: symbol %s has unknown flag %q", ErrInvalidDocument, rec.ID, flag)
		}
		sym.Flags |= value
	}
	if sym.Parent, err = l.symbol(rec.Parent); err != nil {
		return err
	}
	for _, d := range rec.Declarations {
		kind, found := declKinds[d.Kind]
		if !found {
			return fmt.Errorf("%w: symbol %s has declaration of unknown kind %q", ErrInvalidDocument, rec.ID, d.Kind)
		}
		decl := &model.Declaration{Kind: kind, File: d.File, Pos: d.Pos, Text: d.Text, Comment: d.Comment}
		if decl.AliasOf, err = l.typ(d.AliasOf); err != nil {
			return err
		}
		sym.Declarations = append(sym.Declarations, decl)
	}
	for _, m := range rec.Members {
		member := model.Member{Name: m.Name, Optional: m.Optional}
		if member.Type, err = l.typ(m.Type); err != nil {
			return fmt.Errorf("%s.%s: %w", rec.Name, m.Name, err)
		}
		sym.Members = append(sym.Members, member)
	}
	return nil
}

func (l *linker) fillType(rec TypeRecord) (err error) {

	expr := l.graph.types[model.TypeID(rec.ID)]
	expr.Name = rec.Name
	expr.Text = rec.Text
	expr.Literal = normalizeLiteral(rec.Literal)
	if expr.Symbol, err = l.symbol(rec.Symbol); err != nil {
		return err
	}
	if expr.TypeArgs, err = l.types(rec.TypeArgs); err != nil {
		return err
	}
	if expr.Types, err = l.types(rec.Types); err != nil {
		return err
	}
	for _, branch := range []struct {
		dst **model.TypeExpression
		id  string
	}{
		{&expr.Check, rec.Check},
		{&expr.Extends, rec.Extends},
		{&expr.True, rec.True},
		{&expr.False, rec.False},
		{&expr.Object, rec.Object},
		{&expr.Index, rec.Index},
	} {
		if *branch.dst, err = l.typ(branch.id); err != nil {
			return err
		}
	}
	if rec.Alias != nil {
		alias := &model.AliasRef{}
		if alias.Symbol, err = l.symbol(rec.Alias.Symbol); err != nil {
			return err
		}
		if alias.Args, err = l.types(rec.Alias.Args); err != nil {
			return err
		}
		expr.Alias = alias
	}
	return nil
}

func (l *linker) addClass(rec ClassRecord, opts Options) (err error) {

	if rec.Name == "" {
		return fmt.Errorf("%w: endpoint class without name", ErrInvalidDocument)
	}
	if _, found := l.graph.signatures[rec.Name]; found {
		return fmt.Errorf("%w: duplicate endpoint class %s", ErrInvalidDocument, rec.Name)
	}
	methods := make(map[string]*methodEntry, len(rec.Methods))
	l.graph.signatures[rec.Name] = methods

	class := &model.EndpointClass{Name: rec.Name, Route: rec.Route, File: rec.File}
	for _, m := range rec.Methods {
		if _, found := methods[m.Name]; found {
			return fmt.Errorf("%w: duplicate method %s.%s", ErrInvalidDocument, rec.Name, m.Name)
		}
		entry := &methodEntry{}
		if m.Signature != nil {
			if entry.signature, err = l.signature(rec, m); err != nil {
				return fmt.Errorf("%s.%s: %w", rec.Name, m.Name, err)
			}
		}
		methods[m.Name] = entry

		method := &model.EndpointMethod{Name: m.Name, Verb: m.Verb, Route: m.Route}
		for _, b := range m.Bindings {
			kind := model.BindingKind(b.Kind)
			if !kind.Valid() {
				return fmt.Errorf("%w: %s.%s: binding %s has unknown kind %q", ErrInvalidDocument, rec.Name, m.Name, b.Name, b.Kind)
			}
			binding := &model.ParamBinding{
				Name:         b.Name,
				Kind:         kind,
				Index:        -1,
				Optional:     b.Optional,
				ExplicitType: b.ExplicitType,
				IsArray:      b.IsArray,
			}
			if b.Index != nil {
				binding.Index = *b.Index
			} else if entry.signature != nil {
				for i, p := range entry.signature.Parameters {
					if p.Name == b.Name {
						binding.Index = i
						break
					}
				}
			}
			method.Bindings = append(method.Bindings, binding)
		}
		class.Methods = append(class.Methods, method)
	}

	if opts.SkipFile != nil && rec.File != "" && opts.SkipFile(rec.File) {
		slog.Debug("endpoint class skipped by file", slog.String("class", rec.Name), slog.String("file", rec.File))
		return nil
	}
	if opts.EndpointFilter != nil && !opts.EndpointFilter(rec.Name) {
		slog.Debug("endpoint class filtered out", slog.String("class", rec.Name))
		return nil
	}
	l.graph.classes = append(l.graph.classes, class)
	return nil
}

func (l *linker) signature(class ClassRecord, m MethodRecord) (sig *model.Signature, err error) {

	sig = &model.Signature{
		Declaration: &model.Declaration{
			Kind:    model.DeclMethod,
			File:    class.File,
			Pos:     m.Pos,
			Comment: m.Comment,
		},
	}
	for _, p := range m.Signature.Params {
		param := &model.Parameter{Name: p.Name, Optional: p.Optional}
		if param.Type, err = l.typ(p.Type); err != nil {
			return nil, fmt.Errorf("param %s: %w", p.Name, err)
		}
		sig.Parameters = append(sig.Parameters, param)
	}
	if sig.Return, err = l.typ(m.Signature.Return); err != nil {
		return nil, fmt.Errorf("return: %w", err)
	}
	return sig, nil
}

// normalizeLiteral приводит числовые литералы к float64 независимо от формата документа.
func normalizeLiteral(v any) any {

	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	default:
		return v
	}
}
