package config

import (
	"strings"

	"go.trai.ch/prosa/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// configurationRoot is the element name of every converted configuration tree.
const configurationRoot = "configuration"

// toolConfig converts a plugin configuration node. Strings are kept as raw text for the
// configuration parser; mappings are converted into a tree in document order.
func toolConfig(node *yaml.Node) (raw string, tree *domain.ConfigNode) {
	node = resolve(node)
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Value, nil
	case yaml.MappingNode:
		root := domain.NewConfigNode(configurationRoot)
		appendMapping(root, node)
		return "", root
	default:
		return "", nil
	}
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		return resolve(node.Content[0])
	}
	return node
}

func appendMapping(parent *domain.ConfigNode, mapping *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		value := resolve(mapping.Content[i+1])
		if value.Kind == yaml.SequenceNode {
			list := domain.NewConfigNode(key)
			appendSequence(list, itemName(key), value)
			parent.Children = append(parent.Children, list)
			continue
		}
		parent.Children = append(parent.Children, convert(key, value))
	}
}

func appendSequence(parent *domain.ConfigNode, name string, seq *yaml.Node) {
	for _, item := range seq.Content {
		item = resolve(item)
		if item.Kind == yaml.SequenceNode {
			nested := domain.NewConfigNode(name)
			appendSequence(nested, itemName(name), item)
			parent.Children = append(parent.Children, nested)
			continue
		}
		parent.Children = append(parent.Children, convert(name, item))
	}
}

func convert(name string, node *yaml.Node) *domain.ConfigNode {
	switch node.Kind {
	case yaml.MappingNode:
		n := domain.NewConfigNode(name)
		appendMapping(n, node)
		return n
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return domain.NewConfigLeaf(name, "")
		}
		return domain.NewConfigLeaf(name, strings.TrimSpace(node.Value))
	default:
		return domain.NewConfigNode(name)
	}
}

// itemName names the repeated children of a list element after its singular form.
func itemName(name string) string {
	if singular := domain.Singular(name); singular != "" {
		return singular
	}
	return name
}
