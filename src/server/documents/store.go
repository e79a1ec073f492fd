// Package documents provides the in-memory host document store and the
// virtual-document factory used to host script fragments as standalone
// files.
package documents

import (
	"fmt"
	"sort"
	"sync"

	"go.lsp.dev/protocol"

	"script-bridge/src/config"
	"script-bridge/src/internal/common"
	"script-bridge/src/internal/types"
)

// Store is an in-memory document store keyed by URI. It implements
// types.Host so the bridge can be embedded and tested without a full
// editor runtime.
type Store struct {
	cfg *config.ScriptConfig

	mu   sync.RWMutex
	docs map[protocol.DocumentURI]*Document
}

// NewStore creates a document store bound to the given provider
// configuration.
func NewStore(cfg *config.ScriptConfig) *Store {
	return &Store{
		cfg:  cfg,
		docs: make(map[protocol.DocumentURI]*Document),
	}
}

// Config returns the provider feature flags.
func (s *Store) Config() *config.ScriptConfig {
	return s.cfg
}

// OpenDocument creates a tracked document, or returns the already-tracked
// document when the URI is known. Deduplication by URI is the store's
// responsibility, not the caller's; reopening with different text
// refreshes the tracked document in place.
func (s *Store) OpenDocument(params types.OpenDocumentParams) (types.Document, error) {
	if params.URI == "" {
		return nil, fmt.Errorf("cannot open document without URI")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if doc, exists := s.docs[params.URI]; exists {
		if doc.Text() != params.Text {
			doc.setText(params.Text)
		}
		return doc, nil
	}

	doc := newDocument(params)
	s.docs[params.URI] = doc
	return doc, nil
}

// LockDocument pins a tracked document against eviction. Locked documents
// survive CloseDocument until the process ends.
func (s *Store) LockDocument(uri protocol.DocumentURI) error {
	s.mu.RLock()
	doc, exists := s.docs[uri]
	s.mu.RUnlock()

	if !exists {
		return fmt.Errorf("cannot lock unknown document: %s", uri)
	}

	doc.setLocked(true)
	return nil
}

// GetDocument returns the tracked document for a URI.
func (s *Store) GetDocument(uri protocol.DocumentURI) (types.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, exists := s.docs[uri]
	return doc, exists
}

// CloseDocument evicts a tracked document. Locked documents are shared,
// long-lived resources and cannot be closed.
func (s *Store) CloseDocument(uri protocol.DocumentURI) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, exists := s.docs[uri]
	if !exists {
		return fmt.Errorf("document not found: %s", uri)
	}
	if doc.isLocked() {
		return fmt.Errorf("document is locked: %s", uri)
	}

	delete(s.docs, uri)
	return nil
}

// UpdateDocument replaces a tracked document's text and bumps its
// version, as the host does on an edit.
func (s *Store) UpdateDocument(uri protocol.DocumentURI, text string) error {
	s.mu.RLock()
	doc, exists := s.docs[uri]
	s.mu.RUnlock()

	if !exists {
		return fmt.Errorf("document not found: %s", uri)
	}

	doc.setText(text)
	return nil
}

// Document is a tracked text document with offset/position mapping over
// its own content.
type Document struct {
	uri        protocol.DocumentURI
	languageID string
	attrs      types.Attributes

	mu         sync.RWMutex
	text       string
	version    int32
	locked     bool
	lineStarts []int
}

func newDocument(params types.OpenDocumentParams) *Document {
	return &Document{
		uri:        params.URI,
		languageID: params.LanguageID,
		attrs:      params.Attributes,
		text:       params.Text,
		version:    params.Version,
		lineStarts: computeLineStarts(params.Text),
	}
}

func (d *Document) URI() protocol.DocumentURI {
	return d.uri
}

// FilePath derives the file system path from the document URI. Documents
// reaching the bridge must be file-backed.
func (d *Document) FilePath() (string, error) {
	return common.URIToFilePath(string(d.uri))
}

func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text
}

func (d *Document) Version() int32 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}

func (d *Document) LanguageID() string {
	return d.languageID
}

func (d *Document) Attributes() types.Attributes {
	return d.attrs
}

// OffsetAt converts a position to a character offset. Positions outside
// the document indicate a caller defect and are rejected.
func (d *Document) OffsetAt(pos protocol.Position) (int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	line := int(pos.Line)
	if line >= len(d.lineStarts) {
		return 0, fmt.Errorf("line %d out of range (document has %d lines)", line, len(d.lineStarts))
	}

	start := d.lineStarts[line]
	end := len(d.text)
	if line+1 < len(d.lineStarts) {
		// Up to and including the trailing newline position.
		end = d.lineStarts[line+1] - 1
	}

	offset := start + int(pos.Character)
	if offset > end {
		return 0, fmt.Errorf("character %d out of range on line %d", pos.Character, line)
	}
	return offset, nil
}

// PositionAt converts a character offset in [0, len] to a position.
func (d *Document) PositionAt(offset int) (protocol.Position, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if offset < 0 || offset > len(d.text) {
		return protocol.Position{}, fmt.Errorf("offset %d out of range [0, %d]", offset, len(d.text))
	}

	// First line whose start is beyond the offset; the offset belongs to
	// the line before it.
	line := sort.SearchInts(d.lineStarts, offset+1) - 1
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(offset - d.lineStarts[line]),
	}, nil
}

func (d *Document) setText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.text = text
	d.version++
	d.lineStarts = computeLineStarts(text)
}

func (d *Document) setLocked(locked bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.locked = locked
}

func (d *Document) isLocked() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.locked
}

func computeLineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
