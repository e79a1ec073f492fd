// Package provider implements the embedded-script capability provider: a
// facade over the analysis engine that answers diagnostics, hover,
// document symbol, and completion queries for script fragments embedded
// in host documents.
package provider

import (
	"fmt"

	"script-bridge/src/config"
	"script-bridge/src/internal/common"
	"script-bridge/src/internal/types"
	"script-bridge/src/server/cache"
)

// ScriptProvider is the provider surface registered with the host. It
// implements types.DiagnosticsProvider, types.HoverProvider,
// types.DocumentSymbolsProvider and types.CompletionsProvider.
type ScriptProvider struct {
	host     types.Host
	cfg      *config.ScriptConfig
	contexts *cache.ContextCache
}

// New creates an unregistered provider. Register must be called before
// any query is served.
func New() *ScriptProvider {
	return &ScriptProvider{}
}

// Register binds the provider to a host session: configuration access,
// document creation, and the per-session context cache. It is invoked
// once per host session before any query.
func (p *ScriptProvider) Register(host types.Host, newEngine types.EngineFactory) error {
	if host == nil {
		return fmt.Errorf("cannot register provider without host")
	}
	if newEngine == nil {
		return fmt.Errorf("cannot register provider without engine factory")
	}

	p.host = host
	p.cfg = host.Config()
	p.contexts = cache.New(host, newEngine)

	common.BridgeLogger.Info("script provider registered")
	return nil
}

// MatchFragment reports whether this provider applies to a fragment: true
// iff the fragment's attributes tag it as script content.
func (p *ScriptProvider) MatchFragment(frag types.Fragment) bool {
	return frag.Attributes.ContentType == types.ContentTypeScript
}

// context resolves the analysis context for a document through the cache;
// no operation bypasses it.
func (p *ScriptProvider) context(doc types.Document) (*cache.AnalysisContext, error) {
	if p.contexts == nil {
		return nil, fmt.Errorf("provider is not registered")
	}
	return p.contexts.GetOrCreate(doc)
}
