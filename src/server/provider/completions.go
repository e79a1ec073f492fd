package provider

import (
	"go.lsp.dev/protocol"

	"script-bridge/src/internal/types"
	"script-bridge/src/utils/lspconv"
)

// Completions returns completion items for a position. Module-export
// suggestions are always requested and the trigger character is forwarded
// verbatim. An absent engine result maps to an empty sequence.
func (p *ScriptProvider) Completions(doc types.Document, pos protocol.Position, triggerCharacter string) ([]protocol.CompletionItem, error) {
	if p.cfg == nil || !p.cfg.Completions {
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

	var list *types.CompletionList
	err = ac.Run(func(engine types.Engine) error {
		var err error
		list, err = engine.CompletionsAt(ac.FileName(), offset, types.CompletionOptions{
			IncludeExternalModuleExports: true,
			TriggerCharacter:             triggerCharacter,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, nil
	}

	items := make([]protocol.CompletionItem, 0, len(list.Entries))
	for _, entry := range list.Entries {
		items = append(items, protocol.CompletionItem{
			Label:            entry.Name,
			Kind:             completionKind(entry.Kind),
			SortText:         entry.SortText,
			CommitCharacters: commitCharacters(entry.Kind),
			Preselect:        entry.IsRecommended,
		})
	}
	return items, nil
}

// completionKind maps the engine's element kind tags onto host completion
// item kinds.
func completionKind(kind string) protocol.CompletionItemKind {
	switch kind {
	case "primitive type", "keyword":
		return protocol.CompletionItemKindKeyword
	case "var", "let", "local var", "alias", "parameter":
		return protocol.CompletionItemKindVariable
	case "property", "getter", "setter":
		return protocol.CompletionItemKindField
	case "function", "local function":
		return protocol.CompletionItemKindFunction
	case "method", "construct", "call", "index":
		return protocol.CompletionItemKindMethod
	case "enum":
		return protocol.CompletionItemKindEnum
	case "module", "external module name":
		return protocol.CompletionItemKindModule
	case "class", "type":
		return protocol.CompletionItemKindClass
	case "interface":
		return protocol.CompletionItemKindInterface
	case "warning":
		return protocol.CompletionItemKindText
	case "script":
		return protocol.CompletionItemKindFile
	case "directory":
		return protocol.CompletionItemKindFolder
	default:
		return protocol.CompletionItemKindProperty
	}
}

// commitCharacters returns the fixed commit-trigger character set for an
// engine kind. Callable kinds additionally commit on the call paren.
func commitCharacters(kind string) []string {
	switch kind {
	case "function", "local function", "method", "construct", "call", "index", "constructor":
		return []string{".", ",", "("}
	default:
		return []string{".", ",", ";"}
	}
}
