package documents

import (
	"fmt"

	"go.lsp.dev/uri"

	"script-bridge/src/internal/types"
)

// EnsureVirtual materializes a fragment's text as a standalone document
// under a synthetic file name and pins it in the host's store. The host
// dedups by URI, so calling again for the same file name returns the
// already-tracked document. The virtual document is never released by the
// bridge; locked documents live until the host closes them.
func EnsureVirtual(host types.Host, fileName, content string) (types.Document, error) {
	docURI := uri.File(fileName)

	doc, err := host.OpenDocument(types.OpenDocumentParams{
		URI:     docURI,
		Text:    content,
		Version: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open virtual document %s: %w", fileName, err)
	}

	if err := host.LockDocument(docURI); err != nil {
		return nil, fmt.Errorf("failed to lock virtual document %s: %w", fileName, err)
	}

	return doc, nil
}
