package types

// ScriptKind distinguishes plain scripts from statically-typed scripts.
// The kind is carried as a fragment attribute by the host and decides the
// synthetic file extension, the diagnostic source tag, and whether the
// semantic analysis pass runs.
type ScriptKind int

const (
	ScriptKindUntyped ScriptKind = iota
	ScriptKindTyped
)

// Extension returns the synthetic file extension used when a fragment of
// this kind is materialized as a standalone virtual document.
func (k ScriptKind) Extension() string {
	if k == ScriptKindTyped {
		return ".ts"
	}
	return ".js"
}

// Source returns the diagnostic source tag for this kind.
func (k ScriptKind) Source() string {
	if k == ScriptKindTyped {
		return "typed"
	}
	return "untyped"
}

// LanguageID returns the markup language tag used when rendering hover
// content for this kind.
func (k ScriptKind) LanguageID() string {
	if k == ScriptKindTyped {
		return "typescript"
	}
	return "javascript"
}

// ContentTypeScript marks a fragment as embedded script content.
const ContentTypeScript = "script"

// Attributes is the attribute set the host attaches to a document or
// fragment region.
type Attributes struct {
	ContentType string
	ScriptKind  ScriptKind
}

// Fragment is a tagged sub-region of a host document representing embedded
// content of a different kind than its surrounding document.
type Fragment struct {
	Document   Document
	Attributes Attributes
}

// TextSpan is an engine-native half-open character span.
type TextSpan struct {
	Start  int
	Length int
}

// End returns the exclusive end offset of the span.
func (s TextSpan) End() int {
	return s.Start + s.Length
}

// EngineDiagnostic is a raw diagnostic reported by the analysis engine,
// positioned in engine (virtual document) space.
type EngineDiagnostic struct {
	Span    TextSpan
	Message string
}

// QuickInfo is the engine's hover payload for an offset.
type QuickInfo struct {
	Span        TextSpan
	DisplayText string
}

// NavigationTree is the engine's hierarchical symbol structure for a file.
// A node may cover multiple non-contiguous spans; nodes without spans are
// structural only but still carry children.
type NavigationTree struct {
	Text     string
	Kind     string
	Spans    []TextSpan
	Children []*NavigationTree
}

// CompletionEntry is a raw completion record from the engine.
type CompletionEntry struct {
	Name          string
	Kind          string
	SortText      string
	IsRecommended bool
}

// CompletionList is the engine's response to a completions query.
type CompletionList struct {
	Entries []CompletionEntry
}

// CompletionOptions parameterizes a completions query.
type CompletionOptions struct {
	IncludeExternalModuleExports bool
	TriggerCharacter             string
}
