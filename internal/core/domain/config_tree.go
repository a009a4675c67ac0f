package domain

import "strings"

// ConfigNode is one element of an ordered configuration tree.
// Text holds the concatenated character and CDATA content directly under the element.
type ConfigNode struct {
	Name     string
	Text     string
	Children []*ConfigNode
}

// NewConfigNode creates a node with the given children.
func NewConfigNode(name string, children ...*ConfigNode) *ConfigNode {
	return &ConfigNode{Name: name, Children: children}
}

// NewConfigLeaf creates a node holding only text.
func NewConfigLeaf(name, text string) *ConfigNode {
	return &ConfigNode{Name: name, Text: text}
}

// HasElementChildren reports whether the node contains nested elements rather than just text.
func (n *ConfigNode) HasElementChildren() bool {
	return len(n.Children) > 0
}

// Find locates the first node, in document order, matching a path relative to n.
// Segments are separated by "/"; an empty segment ("a//b") makes the next segment match
// any descendant instead of a direct child.
func (n *ConfigNode) Find(path string) *ConfigNode {
	if n == nil || path == "" {
		return nil
	}
	segments := strings.Split(strings.Trim(path, " "), "/")

	current := []*ConfigNode{n}
	descendant := false
	for _, seg := range segments {
		if seg == "" {
			descendant = true
			continue
		}
		var next []*ConfigNode
		for _, c := range current {
			if descendant {
				next = c.appendDescendants(next, seg)
			} else {
				for _, child := range c.Children {
					if child.Name == seg {
						next = append(next, child)
					}
				}
			}
		}
		if len(next) == 0 {
			return nil
		}
		current = next
		descendant = false
	}
	return current[0]
}

func (n *ConfigNode) appendDescendants(dst []*ConfigNode, name string) []*ConfigNode {
	for _, child := range n.Children {
		if child.Name == name {
			dst = append(dst, child)
		}
		dst = child.appendDescendants(dst, name)
	}
	return dst
}

// Singular returns the singular form of a plural element name, or "" when name is not
// recognized as a plural.
func Singular(name string) string {
	switch {
	case strings.HasSuffix(name, "ies"):
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(name, "ches"):
		return name[:len(name)-2]
	case strings.HasSuffix(name, "s") && len(name) > 1:
		return name[:len(name)-1]
	default:
		return ""
	}
}
