// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"sdkgen/internal/introspect"
	"sdkgen/internal/model"
	"sdkgen/internal/telemetry"
	"sdkgen/internal/validate"
	"sdkgen/plugins/client-ts/collector"
	"sdkgen/plugins/client-ts/renderer"
	"sdkgen/plugins/client-ts/tsg"
)

var (
	ErrDuplicateGroup = errors.New("duplicate group name")
	ErrEmptyGroup     = errors.New("empty group name")
)

type DocOptions struct {
	Enabled  bool   // Генерировать ли справочник по клиенту
	FilePath string // Путь к файлу справочника
}

type Options struct {
	ProjectRoot      string
	AllowedModules   []string
	VoidTypes        []string
	WidenEnumMembers bool
	// NameFormatter ключ группы в makeSdk по имени класса; nil оставляет имя класса.
	NameFormatter func(className string) string
	Docs          DocOptions
	// Tracer и Meter по умолчанию берутся из глобальных провайдеров.
	Tracer trace.Tracer
	Meter  metric.Meter
}

// Result результат одного прогона. Пока Generate не вернул ошибку, на диск ничего не пишется.
type Result struct {
	Code         []byte
	Docs         []byte
	Groups       []*renderer.Group
	Declarations *renderer.DeclarationBlock
	Excluded     []renderer.ExcludedSymbol
}

// Generate строит клиент: классы в порядке реестра, методы в порядке объявления.
// Любая ошибка прерывает прогон.
func Generate(ctx context.Context, service introspect.Service, registry introspect.Registry, opts Options) (result *Result, err error) {

	tracer := opts.Tracer
	if tracer == nil {
		tracer = telemetry.Tracer()
	}
	ctx, span := tracer.Start(ctx, "sdkgen.generate")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	slog.Debug("generating TypeScript client", slog.String("projectRoot", opts.ProjectRoot))

	gen := &generator{
		ctx:    ctx,
		tracer: tracer,
		opts:   opts,
		set:    collector.NewCollectedSet(),
	}
	gen.collector = collector.New(service, gen.set, collector.Options{
		ProjectRoot:      opts.ProjectRoot,
		AllowedModules:   opts.AllowedModules,
		WidenEnumMembers: opts.WidenEnumMembers,
	})
	gen.renderer = renderer.NewClientRenderer(service, gen.collector, renderer.Options{VoidTypes: opts.VoidTypes})

	if result, err = gen.generate(registry, service); err != nil {
		slog.Error("failed to generate TypeScript client", slog.String("error", err.Error()))
		return nil, err
	}

	gen.record(ctx, result)
	span.SetAttributes(
		attribute.Int("sdkgen.groups", len(result.Groups)),
		attribute.Int("sdkgen.declarations", len(result.Declarations.Entries)),
		attribute.Int("sdkgen.excluded", len(result.Excluded)),
	)
	slog.Debug("TypeScript client generated successfully",
		slog.Int("groups", len(result.Groups)),
		slog.Int("declarations", len(result.Declarations.Entries)),
	)
	return result, nil
}

type generator struct {
	ctx       context.Context
	tracer    trace.Tracer
	opts      Options
	set       *collector.CollectedSet
	collector *collector.Collector
	renderer  *renderer.ClientRenderer
}

func (g *generator) generate(registry introspect.Registry, source renderer.DeclarationSource) (result *Result, err error) {

	classes, err := registry.ListEndpoints()
	if err != nil {
		return nil, fmt.Errorf("list endpoints: %w", err)
	}
	if err = validate.ValidateClasses(classes); err != nil {
		return nil, err
	}

	result = &Result{}
	names := make(map[string]string, len(classes))
	for _, class := range classes {
		if err = g.ctx.Err(); err != nil {
			return nil, err
		}
		group := &renderer.Group{Name: g.groupName(class.Name), Class: class}
		if group.Name == "" {
			return nil, fmt.Errorf("%w: class %s", ErrEmptyGroup, class.Name)
		}
		if other, found := names[group.Name]; found {
			return nil, fmt.Errorf("%w: %q for classes %s and %s", ErrDuplicateGroup, group.Name, other, class.Name)
		}
		names[group.Name] = class.Name

		if group.Stubs, err = g.renderClass(class); err != nil {
			return nil, err
		}
		result.Groups = append(result.Groups, group)
	}

	if result.Declarations, err = renderer.EmitDeclarations(g.set, source, g.opts.ProjectRoot); err != nil {
		return nil, fmt.Errorf("emit declarations: %w", err)
	}
	result.Code = renderer.RenderFile(result.Groups, result.Declarations).Bytes()

	result.Excluded = renderer.ExcludedReport(g.collector.Excluded(), g.opts.ProjectRoot)
	for _, excluded := range result.Excluded {
		slog.Warn("referenced type is not emitted",
			slog.String("symbol", excluded.Name),
			slog.String("reason", string(excluded.Reason)),
			slog.String("source", excluded.Source),
		)
	}

	if g.opts.Docs.Enabled {
		if result.Docs, err = renderer.RenderReadme(result.Groups, result.Declarations); err != nil {
			return nil, fmt.Errorf("render docs: %w", err)
		}
	}
	return result, nil
}

func (g *generator) renderClass(class *model.EndpointClass) (stubs []*renderer.Stub, err error) {

	_, span := g.tracer.Start(g.ctx, "sdkgen.endpoint", trace.WithAttributes(
		attribute.String("sdkgen.class", class.Name),
		attribute.Int("sdkgen.methods", len(class.Methods)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	for _, method := range class.Methods {
		var stub *renderer.Stub
		if stub, err = g.renderer.RenderStub(class, method); err != nil {
			return nil, err
		}
		stubs = append(stubs, stub)
	}
	slog.Debug("endpoint class rendered", slog.String("class", class.Name), slog.Int("methods", len(stubs)))
	return stubs, nil
}

// record счётчики прогона: заглушки, объявления и исключённые символы.
func (g *generator) record(ctx context.Context, result *Result) {

	meter := g.opts.Meter
	if meter == nil {
		meter = telemetry.Meter()
	}
	var stubs int
	for _, group := range result.Groups {
		stubs += len(group.Stubs)
	}
	for _, counter := range []struct {
		name  string
		desc  string
		value int
	}{
		{"sdkgen.stubs", "Generated method stubs", stubs},
		{"sdkgen.declarations", "Emitted type declarations", len(result.Declarations.Entries)},
		{"sdkgen.excluded", "Referenced symbols left out of the output", len(result.Excluded)},
	} {
		instrument, err := meter.Int64Counter(counter.name, metric.WithDescription(counter.desc))
		if err != nil {
			slog.Debug("failed to create counter", slog.String("name", counter.name), slog.String("error", err.Error()))
			continue
		}
		instrument.Add(ctx, int64(counter.value))
	}
}

func (g *generator) groupName(className string) string {

	if g.opts.NameFormatter == nil {
		return className
	}
	return g.opts.NameFormatter(className)
}

// WriteClient записывает клиент и справочник; файлы с тем же содержимым не трогаются.
func WriteClient(result *Result, outFile string, docs DocOptions) (changed bool, err error) {

	if changed, err = tsg.WriteIfChanged(outFile, result.Code); err != nil {
		return false, fmt.Errorf("write %s: %w", outFile, err)
	}
	slog.Debug("client file", slog.String("path", outFile), slog.Bool("changed", changed))

	if docs.Enabled && docs.FilePath != "" && result.Docs != nil {
		var docsChanged bool
		if docsChanged, err = tsg.WriteIfChanged(docs.FilePath, result.Docs); err != nil {
			return false, fmt.Errorf("write %s: %w", docs.FilePath, err)
		}
		changed = changed || docsChanged
	}
	return changed, nil
}

// Check сравнивает результат с файлами на диске. Отсутствующий файл считается устаревшим.
func Check(result *Result, outFile string, docs DocOptions) (stale []string, err error) {

	type output struct {
		path string
		data []byte
	}
	files := []output{{path: outFile, data: result.Code}}
	if docs.Enabled && docs.FilePath != "" && result.Docs != nil {
		files = append(files, output{path: docs.FilePath, data: result.Docs})
	}

	for _, file := range files {
		current, readErr := os.ReadFile(file.path)
		switch {
		case errors.Is(readErr, fs.ErrNotExist):
			stale = append(stale, file.path)
		case readErr != nil:
			return nil, fmt.Errorf("read %s: %w", file.path, readErr)
		case !bytes.Equal(current, file.data):
			stale = append(stale, file.path)
		}
	}
	return stale, nil
}
