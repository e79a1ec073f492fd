// Package symbols flattens the engine's navigation tree into the host's
// flat symbol records.
package symbols

import (
	"go.lsp.dev/protocol"

	"script-bridge/src/internal/types"
	"script-bridge/src/utils/lspconv"
)

// TopLevelContainer is the container label given to symbols declared at
// the top level of a script fragment. The engine names the tree root
// after the synthetic virtual file, which means nothing to the host, so
// records parented on the root are rewritten to this label instead.
const TopLevelContainer = "<top-level>"

// Flatten walks the navigation tree in pre-order and emits one record per
// span-bearing node. A node covering several disjoint spans (a declaration
// merged across regions) is reported as one record spanning from the
// start of its first span to the end of its last. Span-less nodes emit
// nothing but still pass their name to their children as container.
func Flatten(doc types.Document, root *types.NavigationTree) ([]protocol.SymbolInformation, error) {
	if root == nil {
		return nil, nil
	}

	var out []protocol.SymbolInformation

	var walk func(node *types.NavigationTree, container string) error
	walk = func(node *types.NavigationTree, container string) error {
		if len(node.Spans) > 0 {
			first := node.Spans[0]
			last := node.Spans[len(node.Spans)-1]
			rng, err := lspconv.ToHostRangeBounds(doc, first.Start, last.End())
			if err != nil {
				return err
			}
			out = append(out, protocol.SymbolInformation{
				Name: node.Text,
				Kind: symbolKind(node.Kind),
				Location: protocol.Location{
					URI:   doc.URI(),
					Range: rng,
				},
				ContainerName: container,
			})
		}
		for _, child := range node.Children {
			if err := walk(child, node.Text); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root, ""); err != nil {
		return nil, err
	}

	// Records parented directly on the root carry the synthetic file's
	// name as container; rewrite them to the generic top-level label.
	for i := range out {
		if out[i].ContainerName == root.Text {
			out[i].ContainerName = TopLevelContainer
		}
	}

	return out, nil
}

// symbolKind maps the engine's element kind tags onto host symbol kinds.
func symbolKind(kind string) protocol.SymbolKind {
	switch kind {
	case "module", "external module name":
		return protocol.SymbolKindModule
	case "class", "local class":
		return protocol.SymbolKindClass
	case "interface":
		return protocol.SymbolKindInterface
	case "enum":
		return protocol.SymbolKindEnum
	case "enum member":
		return protocol.SymbolKindEnumMember
	case "method", "construct", "call", "index":
		return protocol.SymbolKindMethod
	case "function", "local function":
		return protocol.SymbolKindFunction
	case "constructor":
		return protocol.SymbolKindConstructor
	case "var", "let", "local var", "alias", "parameter":
		return protocol.SymbolKindVariable
	case "const":
		return protocol.SymbolKindConstant
	case "property", "getter", "setter":
		return protocol.SymbolKindProperty
	case "script":
		return protocol.SymbolKindFile
	default:
		return protocol.SymbolKindVariable
	}
}
