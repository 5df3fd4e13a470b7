// Package yamlnode lets optics traverse decoded YAML documents by
// providing a hook entry for *yaml.Node. Sequence nodes decompose to
// their items, mapping nodes to their values (keys preserved), and
// document nodes to their content. Rebuilds allocate fresh nodes and
// share every untouched child by pointer; the package never parses or
// serializes anything itself.
package yamlnode

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/auth-platform/optics/hook"
)

var nodeType = reflect.TypeOf((*yaml.Node)(nil))

// Register installs the *yaml.Node hook into reg, or into the
// process-wide default registry when reg is nil. Call it once during
// initialization.
func Register(reg *hook.Registry) {
	if reg == nil {
		reg = hook.Default()
	}
	reg.Register(nodeType, hook.Entry{Decompose: decompose, Recompose: recompose})
}

func decompose(state any) ([]any, error) {
	n := state.(*yaml.Node)
	if n == nil {
		return nil, fmt.Errorf("yamlnode: cannot decompose a nil node")
	}
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		elems := make([]any, len(n.Content))
		for i, child := range n.Content {
			elems[i] = child
		}
		return elems, nil
	case yaml.MappingNode:
		// Content alternates key, value; the values are the elements.
		elems := make([]any, 0, len(n.Content)/2)
		for i := 1; i < len(n.Content); i += 2 {
			elems = append(elems, n.Content[i])
		}
		return elems, nil
	}
	return nil, fmt.Errorf("yamlnode: cannot decompose a %s node", kindName(n.Kind))
}

func recompose(state any, elems []any) (any, error) {
	n := state.(*yaml.Node)
	if n == nil {
		return nil, fmt.Errorf("yamlnode: cannot recompose a nil node")
	}
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		if len(elems) != len(n.Content) {
			return nil, fmt.Errorf("yamlnode: %d replacements for %d items", len(elems), len(n.Content))
		}
		content, err := asNodes(elems)
		if err != nil {
			return nil, err
		}
		out := *n
		out.Content = content
		return &out, nil
	case yaml.MappingNode:
		if len(elems) != len(n.Content)/2 {
			return nil, fmt.Errorf("yamlnode: %d replacements for %d values", len(elems), len(n.Content)/2)
		}
		values, err := asNodes(elems)
		if err != nil {
			return nil, err
		}
		content := make([]*yaml.Node, len(n.Content))
		for i := 0; i < len(n.Content); i += 2 {
			content[i] = n.Content[i]
			content[i+1] = values[i/2]
		}
		out := *n
		out.Content = content
		return &out, nil
	}
	return nil, fmt.Errorf("yamlnode: cannot recompose a %s node", kindName(n.Kind))
}

func asNodes(elems []any) ([]*yaml.Node, error) {
	nodes := make([]*yaml.Node, len(elems))
	for i, elem := range elems {
		node, ok := elem.(*yaml.Node)
		if !ok {
			return nil, fmt.Errorf("yamlnode: replacement %d is %T, want *yaml.Node", i, elem)
		}
		nodes[i] = node
	}
	return nodes, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return fmt.Sprintf("kind(%d)", k)
}
