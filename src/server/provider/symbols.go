package provider

import (
	"go.lsp.dev/protocol"

	"script-bridge/src/internal/types"
	"script-bridge/src/server/symbols"
)

// DocumentSymbols returns the flat symbol list for a script document,
// derived from the engine's navigation tree.
func (p *ScriptProvider) DocumentSymbols(doc types.Document) ([]protocol.SymbolInformation, error) {
	if p.cfg == nil || !p.cfg.Symbols {
		return nil, nil
	}

	ac, err := p.context(doc)
	if err != nil {
		return nil, err
	}

	var tree *types.NavigationTree
	err = ac.Run(func(engine types.Engine) error {
		var err error
		tree, err = engine.NavigationTree(ac.FileName())
		return err
	})
	if err != nil {
		return nil, err
	}

	return symbols.Flatten(doc, tree)
}
