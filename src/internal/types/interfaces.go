package types

import (
	"go.lsp.dev/protocol"

	"script-bridge/src/config"
)

// Document is a host-tracked text document. All positions handed to and
// returned from a Document are in its own coordinate space.
type Document interface {
	URI() protocol.DocumentURI
	// FilePath returns the document's file system path. Documents handed
	// to the bridge must be file-backed; a missing path is an integration
	// defect, not a recoverable condition.
	FilePath() (string, error)
	Text() string
	Version() int32
	Attributes() Attributes
	// OffsetAt converts a position to a character offset. Positions
	// outside the document are rejected.
	OffsetAt(pos protocol.Position) (int, error)
	// PositionAt converts a character offset in [0, len] to a position.
	// Offsets outside that range are rejected.
	PositionAt(offset int) (protocol.Position, error)
}

// OpenDocumentParams describes a document to materialize in the host's
// document store.
type OpenDocumentParams struct {
	URI        protocol.DocumentURI
	Text       string
	Version    int32
	LanguageID string
	Attributes Attributes
}

// Host is the runtime that owns document storage and configuration. The
// bridge binds to exactly one Host at registration time.
type Host interface {
	Config() *config.ScriptConfig
	// OpenDocument creates a tracked document, or returns the existing
	// one when the URI is already tracked.
	OpenDocument(params OpenDocumentParams) (Document, error)
	// LockDocument pins a tracked document against eviction.
	LockDocument(uri protocol.DocumentURI) error
}

// Engine is the external language-analysis engine, addressed per virtual
// document by its synthetic file name. Engine state is not assumed to be
// reentrant; callers serialize access per analysis context.
type Engine interface {
	SyntacticDiagnostics(fileName string) ([]EngineDiagnostic, error)
	SemanticDiagnostics(fileName string) ([]EngineDiagnostic, error)
	// QuickInfoAt returns nil when the engine has nothing to say about
	// the offset.
	QuickInfoAt(fileName string, offset int) (*QuickInfo, error)
	NavigationTree(fileName string) (*NavigationTree, error)
	// CompletionsAt may return nil when the position yields no
	// completions.
	CompletionsAt(fileName string, offset int, opts CompletionOptions) (*CompletionList, error)
}

// EngineFactory binds a fresh engine language service to a minimal
// project consisting of the single given virtual document.
type EngineFactory func(fileName string, doc Document) (Engine, error)

// DiagnosticsProvider produces diagnostics for a script document.
type DiagnosticsProvider interface {
	Diagnostics(doc Document) ([]protocol.Diagnostic, error)
}

// HoverProvider produces hover information for a position.
type HoverProvider interface {
	Hover(doc Document, pos protocol.Position) (*protocol.Hover, error)
}

// DocumentSymbolsProvider returns the flat symbol list for a document.
type DocumentSymbolsProvider interface {
	DocumentSymbols(doc Document) ([]protocol.SymbolInformation, error)
}

// CompletionsProvider produces completion items for a position.
type CompletionsProvider interface {
	Completions(doc Document, pos protocol.Position, triggerCharacter string) ([]protocol.CompletionItem, error)
}
