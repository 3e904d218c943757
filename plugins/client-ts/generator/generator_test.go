// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"sdkgen/internal/introspect/document"
	"sdkgen/plugins/client-ts/collector"
	"sdkgen/plugins/client-ts/renderer"
)

const wantBlogSDK = `/* eslint-disable */
// Eslint is disabled for performance. This generated file may be large and change a lot.
export function makeSdk({ client }: { client: HttpClientFn }) {
    return {
        Blog: {
            getPost: async ({ id }: { id: string }): Promise<Post> => (await client({ method: "get", url: "/blog/posts/:id".replace(":id", String(id)), data: {}, params: {} })).data,
            publish: async ({ id, note }: { id: string; note?: string }): Promise<void> => (await client({ method: "post", url: "/blog/posts/:id/publish".replace(":id", String(id)), data: { note }, params: {} })).data,
        },
        Comment: {
            list: async ({ post }: { post: string }): Promise<Comment[]> => (await client({ method: "get", url: "/comments", data: {}, params: { post } })).data,
            add: async (body: Comment): Promise<Comment> => (await client({ method: "post", url: "/comments", data: { ...body }, params: {} })).data,
        },
    } as const
}

interface HttpCallOptions {
    url: string,
    method: string,
    /* params = query vars */
    params: Record<string, unknown>,
    data: Record<string, unknown>,
}
type HttpClientFn = (o: HttpCallOptions) => Promise<{ data: any }>

/* eslint-enable */
// Source: src/post.ts
export interface Post {
    id: string;
    status: Status.Draft | null;
}

// Source: src/post.ts
export enum Status {
    Draft = "draft",
    Published = "published"
}

// Source: src/comment.ts
export interface Comment {
    post: Post;
    text: string;
}

`

func loadBlog(t *testing.T) *document.Graph {

	t.Helper()
	graph, err := document.Load("testdata/blog.yaml", document.Options{
		SkipFile: func(file string) bool { return strings.HasSuffix(file, ".gen.ts") },
	})
	require.NoError(t, err)
	return graph
}

func blogOptions(graph *document.Graph) Options {

	return Options{
		ProjectRoot:      graph.ProjectRoot(),
		WidenEnumMembers: true,
		NameFormatter:    func(name string) string { return strings.TrimSuffix(name, "Controller") },
	}
}

func TestGenerate(t *testing.T) {

	t.Parallel()

	graph := loadBlog(t)
	result, err := Generate(context.Background(), graph, graph, blogOptions(graph))
	require.NoError(t, err)

	if diff := cmp.Diff(wantBlogSDK, string(result.Code)); diff != "" {
		t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, result.Groups, 2)
	assert.Equal(t, "Blog", result.Groups[0].Name)
	assert.Equal(t, "Comment", result.Groups[1].Name)
	assert.Empty(t, result.Excluded, "lib declarations are not reported")
	assert.Nil(t, result.Docs, "docs are disabled")
}

func TestGenerateDeterministic(t *testing.T) {

	t.Parallel()

	graph := loadBlog(t)
	first, err := Generate(context.Background(), graph, graph, blogOptions(graph))
	require.NoError(t, err)
	second, err := Generate(context.Background(), graph, graph, blogOptions(graph))
	require.NoError(t, err)
	assert.Equal(t, string(first.Code), string(second.Code))
}

func TestGenerateSharedTypeOnce(t *testing.T) {

	t.Parallel()

	graph := loadBlog(t)
	result, err := Generate(context.Background(), graph, graph, blogOptions(graph))
	require.NoError(t, err)

	code := string(result.Code)
	assert.Equal(t, 1, strings.Count(code, "export interface Post {"))
	assert.Equal(t, 1, strings.Count(code, "export interface Comment {"))
	assert.Less(t, strings.Index(code, "export interface Post {"), strings.Index(code, "export interface Comment {"),
		"declarations follow first discovery order")
}

func TestGenerateEnumWideningOff(t *testing.T) {

	t.Parallel()

	graph := loadBlog(t)
	opts := blogOptions(graph)
	opts.WidenEnumMembers = false
	result, err := Generate(context.Background(), graph, graph, opts)
	require.NoError(t, err)

	assert.NotContains(t, string(result.Code), "export enum Status")
	require.Len(t, result.Excluded, 1)
	assert.Equal(t, renderer.ExcludedSymbol{Name: "Draft", Reason: collector.ExcludedKind, Source: "src/post.ts"}, result.Excluded[0])
}

func TestGenerateDocs(t *testing.T) {

	t.Parallel()

	graph := loadBlog(t)
	opts := blogOptions(graph)
	opts.Docs = DocOptions{Enabled: true, FilePath: "sdk.md"}
	result, err := Generate(context.Background(), graph, graph, opts)
	require.NoError(t, err)
	require.NotNil(t, result.Docs)
	assert.Contains(t, string(result.Docs), "### Comment.add")
	assert.Contains(t, string(result.Docs), "| `Status` | enum | src/post.ts |")
}

func TestGenerateCancelled(t *testing.T) {

	t.Parallel()

	graph := loadBlog(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := Generate(ctx, graph, graph, blogOptions(graph))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestGenerateErrors(t *testing.T) {

	t.Parallel()

	const doc = `
version: 1.0.0
types:
  - {id: t.string, kind: primitive, name: string}
classes:
  - name: PostController
    methods:
      - name: create
        signature:
          params:
            - {name: a, type: t.string}
            - {name: b, type: t.string}
        bindings:
          - {name: a, kind: body}
          - {name: b, kind: body}
`
	graph, err := document.Parse([]byte(doc), document.FormatYAML, document.Options{})
	require.NoError(t, err)

	_, err = Generate(context.Background(), graph, graph, Options{})
	assert.ErrorIs(t, err, renderer.ErrMultipleBodies)
	assert.Contains(t, err.Error(), "PostController.create")

	_, err = Generate(context.Background(), graph, graph, Options{
		NameFormatter: func(string) string { return "" },
	})
	assert.ErrorIs(t, err, ErrEmptyGroup)
}

func TestGenerateDuplicateGroup(t *testing.T) {

	t.Parallel()

	const doc = `
version: 1.0.0
classes:
  - name: PostController
  - name: PostsController
`
	graph, err := document.Parse([]byte(doc), document.FormatYAML, document.Options{})
	require.NoError(t, err)

	trim := func(name string) string { return strings.TrimSuffix(strings.TrimSuffix(name, "Controller"), "s") }
	result, err := Generate(context.Background(), graph, graph, Options{NameFormatter: trim})
	assert.ErrorIs(t, err, ErrDuplicateGroup)
	assert.Contains(t, err.Error(), `"Post" for classes PostController and PostsController`)
	assert.Nil(t, result)
}

func TestGenerateSpans(t *testing.T) {

	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	graph := loadBlog(t)
	opts := blogOptions(graph)
	opts.Tracer = provider.Tracer("test")
	_, err := Generate(context.Background(), graph, graph, opts)
	require.NoError(t, err)

	var names []string
	for _, span := range recorder.Ended() {
		names = append(names, span.Name())
	}
	assert.Equal(t, []string{"sdkgen.endpoint", "sdkgen.endpoint", "sdkgen.generate"}, names)

	root := recorder.Ended()[2]
	for _, child := range recorder.Ended()[:2] {
		assert.Equal(t, root.SpanContext().SpanID(), child.Parent().SpanID())
	}
}

func TestGenerateCounters(t *testing.T) {

	t.Parallel()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	graph := loadBlog(t)
	opts := blogOptions(graph)
	opts.Meter = provider.Meter("test")
	_, err := Generate(context.Background(), graph, graph, opts)
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	values := make(map[string]int64)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, point := range sum.DataPoints {
					values[m.Name] += point.Value
				}
			}
		}
	}
	assert.Equal(t, int64(4), values["sdkgen.stubs"])
	assert.Equal(t, int64(3), values["sdkgen.declarations"])
}

func TestWriteAndCheck(t *testing.T) {

	t.Parallel()

	graph := loadBlog(t)
	opts := blogOptions(graph)
	dir := t.TempDir()
	opts.Docs = DocOptions{Enabled: true, FilePath: filepath.Join(dir, "docs", "sdk.md")}
	result, err := Generate(context.Background(), graph, graph, opts)
	require.NoError(t, err)

	outFile := filepath.Join(dir, "src", "sdk.gen.ts")
	stale, err := Check(result, outFile, opts.Docs)
	require.NoError(t, err)
	assert.Equal(t, []string{outFile, opts.Docs.FilePath}, stale)

	changed, err := WriteClient(result, outFile, opts.Docs)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = WriteClient(result, outFile, opts.Docs)
	require.NoError(t, err)
	assert.False(t, changed, "unchanged content is not rewritten")

	stale, err = Check(result, outFile, opts.Docs)
	require.NoError(t, err)
	assert.Empty(t, stale)

	require.NoError(t, os.WriteFile(outFile, []byte("// edited\n"), 0600))
	stale, err = Check(result, outFile, opts.Docs)
	require.NoError(t, err)
	assert.Equal(t, []string{outFile}, stale)
}

func TestCheckReadError(t *testing.T) {

	t.Parallel()

	// Каталог вместо файла.
	_, err := Check(&Result{}, t.TempDir(), DocOptions{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, os.ErrNotExist))
}
