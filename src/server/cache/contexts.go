// Package cache memoizes engine analysis contexts per script document.
package cache

import (
	"fmt"
	"sync"

	"script-bridge/src/internal/common"
	"script-bridge/src/internal/types"
	"script-bridge/src/server/documents"
)

// AnalysisContext is the engine-side compiled state bound to one virtual
// document. All capability queries against the same document share one
// instance; engine access is serialized through Run because the engine is
// not guaranteed reentrant.
type AnalysisContext struct {
	fileName string
	virtual  types.Document
	engine   types.Engine

	mu sync.Mutex
}

// FileName returns the synthetic file name the engine knows this
// fragment by.
func (c *AnalysisContext) FileName() string {
	return c.fileName
}

// Virtual returns the locked virtual document backing this context.
func (c *AnalysisContext) Virtual() types.Document {
	return c.virtual
}

// Run executes f against the engine while holding the context's lock.
func (c *AnalysisContext) Run(f func(engine types.Engine) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return f(c.engine)
}

type entry struct {
	version int32
	ctx     *AnalysisContext
}

// ContextCache lazily builds and memoizes analysis contexts keyed by
// document identity. An entry is valid only for the document version it
// was built against; a version mismatch rebuilds the context, so stale
// analysis is never served after an edit.
type ContextCache struct {
	host      types.Host
	newEngine types.EngineFactory

	mu      sync.Mutex
	entries map[string]entry
}

// New creates a context cache bound to a host and an engine factory.
func New(host types.Host, newEngine types.EngineFactory) *ContextCache {
	return &ContextCache{
		host:      host,
		newEngine: newEngine,
		entries:   make(map[string]entry),
	}
}

// GetOrCreate returns the memoized analysis context for the document, or
// builds a fresh one when none exists or the document changed since the
// last build.
func (cc *ContextCache) GetOrCreate(doc types.Document) (*AnalysisContext, error) {
	path, err := doc.FilePath()
	if err != nil {
		return nil, fmt.Errorf("document has no file path: %w", err)
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()

	version := doc.Version()
	if e, exists := cc.entries[path]; exists && e.version == version {
		return e.ctx, nil
	}

	fileName := path + doc.Attributes().ScriptKind.Extension()
	virtual, err := documents.EnsureVirtual(cc.host, fileName, doc.Text())
	if err != nil {
		return nil, err
	}

	engine, err := cc.newEngine(fileName, virtual)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine for %s: %w", fileName, err)
	}

	ctx := &AnalysisContext{
		fileName: fileName,
		virtual:  virtual,
		engine:   engine,
	}
	cc.entries[path] = entry{version: version, ctx: ctx}

	common.BridgeLogger.Debug("built analysis context for %s (version %d)", path, version)
	return ctx, nil
}
