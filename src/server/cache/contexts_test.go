package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/uri"

	"script-bridge/src/config"
	"script-bridge/src/internal/types"
	"script-bridge/src/server/documents"
)

type nopEngine struct{}

func (nopEngine) SyntacticDiagnostics(string) ([]types.EngineDiagnostic, error) { return nil, nil }
func (nopEngine) SemanticDiagnostics(string) ([]types.EngineDiagnostic, error)  { return nil, nil }
func (nopEngine) QuickInfoAt(string, int) (*types.QuickInfo, error)             { return nil, nil }
func (nopEngine) NavigationTree(string) (*types.NavigationTree, error)          { return nil, nil }
func (nopEngine) CompletionsAt(string, int, types.CompletionOptions) (*types.CompletionList, error) {
	return nil, nil
}

type fixture struct {
	store     *documents.Store
	cache     *ContextCache
	built     int
	fileNames []string
}

func newFixture() *fixture {
	f := &fixture{store: documents.NewStore(config.GetDefaultConfig().Script)}
	f.cache = New(f.store, func(fileName string, doc types.Document) (types.Engine, error) {
		f.built++
		f.fileNames = append(f.fileNames, fileName)
		return nopEngine{}, nil
	})
	return f
}

func (f *fixture) openScript(t *testing.T, path, text string, kind types.ScriptKind) types.Document {
	t.Helper()
	doc, err := f.store.OpenDocument(types.OpenDocumentParams{
		URI:  uri.File(path),
		Text: text,
		Attributes: types.Attributes{
			ContentType: types.ContentTypeScript,
			ScriptKind:  kind,
		},
	})
	require.NoError(t, err)
	return doc
}

func TestGetOrCreate_MemoizesPerVersion(t *testing.T) {
	f := newFixture()
	doc := f.openScript(t, "/project/page.mk", "let x = 1", types.ScriptKindTyped)

	first, err := f.cache.GetOrCreate(doc)
	require.NoError(t, err)
	second, err := f.cache.GetOrCreate(doc)
	require.NoError(t, err)

	assert.Same(t, first, second, "unchanged version must return the identical context instance")
	assert.Equal(t, 1, f.built, "engine must be built exactly once for an unchanged document")
}

func TestGetOrCreate_RebuildsOnVersionChange(t *testing.T) {
	f := newFixture()
	doc := f.openScript(t, "/project/page.mk", "let x = 1", types.ScriptKindTyped)

	stale, err := f.cache.GetOrCreate(doc)
	require.NoError(t, err)

	require.NoError(t, f.store.UpdateDocument(doc.URI(), "let x = 2"))

	fresh, err := f.cache.GetOrCreate(doc)
	require.NoError(t, err)

	assert.NotSame(t, stale, fresh, "changed version must produce a new context")
	assert.Equal(t, 2, f.built)

	// The stale context is never served again.
	again, err := f.cache.GetOrCreate(doc)
	require.NoError(t, err)
	assert.Same(t, fresh, again)
	assert.NotSame(t, stale, again)
}

func TestGetOrCreate_SyntheticFileNamePerScriptKind(t *testing.T) {
	f := newFixture()

	typed := f.openScript(t, "/project/typed.mk", "let x = 1", types.ScriptKindTyped)
	untyped := f.openScript(t, "/project/untyped.mk", "var y = 2", types.ScriptKindUntyped)

	typedCtx, err := f.cache.GetOrCreate(typed)
	require.NoError(t, err)
	untypedCtx, err := f.cache.GetOrCreate(untyped)
	require.NoError(t, err)

	assert.Equal(t, "/project/typed.mk.ts", typedCtx.FileName())
	assert.Equal(t, "/project/untyped.mk.js", untypedCtx.FileName())
	assert.Equal(t, []string{"/project/typed.mk.ts", "/project/untyped.mk.js"}, f.fileNames)
}

func TestGetOrCreate_RefreshesVirtualContentOnRebuild(t *testing.T) {
	f := newFixture()
	doc := f.openScript(t, "/project/page.mk", "let x = 1", types.ScriptKindTyped)

	ctx, err := f.cache.GetOrCreate(doc)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1", ctx.Virtual().Text())

	require.NoError(t, f.store.UpdateDocument(doc.URI(), "let x = 2"))

	rebuilt, err := f.cache.GetOrCreate(doc)
	require.NoError(t, err)
	assert.Equal(t, "let x = 2", rebuilt.Virtual().Text())
}

func TestGetOrCreate_IndependentDocuments(t *testing.T) {
	f := newFixture()

	a := f.openScript(t, "/project/a.mk", "let a = 1", types.ScriptKindTyped)
	b := f.openScript(t, "/project/b.mk", "let b = 2", types.ScriptKindTyped)

	ctxA, err := f.cache.GetOrCreate(a)
	require.NoError(t, err)
	ctxB, err := f.cache.GetOrCreate(b)
	require.NoError(t, err)

	assert.NotSame(t, ctxA, ctxB)
	assert.Equal(t, 2, f.built)
}

func TestAnalysisContext_RunSerializesEngineAccess(t *testing.T) {
	f := newFixture()
	doc := f.openScript(t, "/project/page.mk", "let x = 1", types.ScriptKindTyped)

	ctx, err := f.cache.GetOrCreate(doc)
	require.NoError(t, err)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			_ = ctx.Run(func(types.Engine) error { return nil })
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
