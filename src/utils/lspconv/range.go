// Package lspconv converts engine-native span shapes into host ranges.
// It is the single point where engine coordinates become host coordinates;
// no other package performs this translation.
package lspconv

import (
	"go.lsp.dev/protocol"

	"script-bridge/src/internal/types"
)

// PositionMapper is the slice of the document contract the translator
// needs: offset/position conversion in the document's own space.
type PositionMapper interface {
	OffsetAt(pos protocol.Position) (int, error)
	PositionAt(offset int) (protocol.Position, error)
}

// ToHostRange converts an engine {start, length} span into a host range
// using the document's own offset-to-position mapping. Spans outside the
// document are a caller contract violation and surface as errors.
func ToHostRange(doc PositionMapper, span types.TextSpan) (protocol.Range, error) {
	return ToHostRangeBounds(doc, span.Start, span.End())
}

// ToHostRangeBounds converts a half-open {start, end} offset pair into a
// host range.
func ToHostRangeBounds(doc PositionMapper, start, end int) (protocol.Range, error) {
	startPos, err := doc.PositionAt(start)
	if err != nil {
		return protocol.Range{}, err
	}
	endPos, err := doc.PositionAt(end)
	if err != nil {
		return protocol.Range{}, err
	}
	return protocol.Range{Start: startPos, End: endPos}, nil
}

// ToOffset converts a host position into an engine character offset.
func ToOffset(doc PositionMapper, pos protocol.Position) (int, error) {
	return doc.OffsetAt(pos)
}
