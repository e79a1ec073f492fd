package provider

import (
	"go.lsp.dev/protocol"

	"script-bridge/src/internal/types"
	"script-bridge/src/utils/lspconv"
)

// Diagnostics reports the engine's findings for a script document. The
// syntactic pass always runs; the semantic pass runs only for
// statically-typed script kinds. Engine emission order is preserved, with
// syntactic diagnostics first.
func (p *ScriptProvider) Diagnostics(doc types.Document) ([]protocol.Diagnostic, error) {
	if p.cfg == nil || !p.cfg.Diagnostics {
		return nil, nil
	}

	ac, err := p.context(doc)
	if err != nil {
		return nil, err
	}

	kind := doc.Attributes().ScriptKind

	var raw []types.EngineDiagnostic
	err = ac.Run(func(engine types.Engine) error {
		syntactic, err := engine.SyntacticDiagnostics(ac.FileName())
		if err != nil {
			return err
		}
		raw = append(raw, syntactic...)

		if kind == types.ScriptKindTyped {
			semantic, err := engine.SemanticDiagnostics(ac.FileName())
			if err != nil {
				return err
			}
			raw = append(raw, semantic...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	diagnostics := make([]protocol.Diagnostic, 0, len(raw))
	for _, d := range raw {
		rng, err := lspconv.ToHostRange(doc, d.Span)
		if err != nil {
			return nil, err
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    rng,
			Severity: protocol.DiagnosticSeverityError,
			Source:   kind.Source(),
			Message:  d.Message,
		})
	}
	return diagnostics, nil
}
