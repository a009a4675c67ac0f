package options

import "go.trai.ch/prosa/internal/core/domain"

// IsList reports whether a node holds a list of items: either a child is named like
// the child just before it, or the last child is named after the singular of the
// node's own name.
func IsList(node *domain.ConfigNode) bool {
	if node == nil || len(node.Children) == 0 {
		return false
	}
	for i := 1; i < len(node.Children); i++ {
		if node.Children[i].Name == node.Children[i-1].Name {
			return true
		}
	}
	singular := domain.Singular(node.Name)
	return singular != "" && node.Children[len(node.Children)-1].Name == singular
}

// Classify turns a located node into a value. A nil node is Absent.
func Classify(node *domain.ConfigNode) domain.ConfigValue {
	switch {
	case node == nil:
		return domain.Absent()
	case IsList(node):
		items := make([]domain.Record, 0, len(node.Children))
		for _, c := range node.Children {
			var item domain.Record
			if c.HasElementChildren() {
				item.SetNested(c.Name, fieldsOf(c))
			} else {
				item.SetText(c.Name, c.Text)
			}
			items = append(items, item)
		}
		return domain.ListValue(items)
	case node.HasElementChildren():
		return domain.RecordValue(fieldsOf(node))
	default:
		return domain.Scalar(node.Text)
	}
}

// fieldsOf maps each child of node to its text, one level deep.
func fieldsOf(node *domain.ConfigNode) domain.Record {
	var r domain.Record
	for _, c := range node.Children {
		r.SetText(c.Name, c.Text)
	}
	return r
}
