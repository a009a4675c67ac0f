// Package xmlconfig parses XML tool configuration blocks into configuration trees.
package xmlconfig

import (
	"strings"

	"github.com/beevik/etree"
	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parser implements ports.ConfigParser using etree.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a single configuration element. Element order is kept and
// character data, CDATA included, is joined and trimmed.
func (p *Parser) Parse(raw string) (*domain.ConfigNode, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParse.Error())
	}
	root := doc.Root()
	if root == nil {
		return nil, zerr.With(domain.ErrConfigParse, "reason", "no root element")
	}
	return convert(root), nil
}

func convert(el *etree.Element) *domain.ConfigNode {
	node := &domain.ConfigNode{Name: el.Tag}
	var text strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			node.Children = append(node.Children, convert(t))
		case *etree.CharData:
			text.WriteString(t.Data)
		}
	}
	node.Text = strings.TrimSpace(text.String())
	return node
}
