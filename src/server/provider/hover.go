package provider

import (
	"fmt"

	"go.lsp.dev/protocol"

	"script-bridge/src/internal/types"
	"script-bridge/src/utils/lspconv"
)

// Hover returns the engine's quick-info for a position, or nil when the
// engine has nothing to report there.
func (p *ScriptProvider) Hover(doc types.Document, pos protocol.Position) (*protocol.Hover, error) {
	if p.cfg == nil || !p.cfg.Hover {
		return nil, nil
	}

	ac, err := p.context(doc)
	if err != nil {
		return nil, err
	}

	offset, err := lspconv.ToOffset(doc, pos)
	if err != nil {
		return nil, err
	}

	var info *types.QuickInfo
	err = ac.Run(func(engine types.Engine) error {
		var err error
		info, err = engine.QuickInfoAt(ac.FileName(), offset)
		return err
	})
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, nil
	}

	rng, err := lspconv.ToHostRange(doc, info.Span)
	if err != nil {
		return nil, err
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind: protocol.Markdown,
			Value: fmt.Sprintf("```%s\n%s\n```",
				doc.Attributes().ScriptKind.LanguageID(), info.DisplayText),
		},
		Range: &rng,
	}, nil
}
