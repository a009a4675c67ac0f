package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func (c *CLI) newOptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options <tool> <option-path> [dir]",
		Short: "Print the value an option of a tool resolves to",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 3 {
				dir = args[2]
			}
			def, _ := cmd.Flags().GetString("default")

			value, err := c.app.Option(dir, args[0], args[1], def)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(valueNode(value)); err != nil {
				return zerr.Wrap(err, "failed to print option")
			}
			return enc.Close()
		},
	}
	cmd.Flags().String("default", "", "Value used when the option is not configured")
	return cmd
}

// valueNode renders a resolved value as an ordered YAML document.
func valueNode(v domain.ConfigValue) *yaml.Node {
	doc := mapping()
	add(doc, "kind", scalar(v.Kind().String()))
	switch v.Kind() {
	case domain.KindScalar:
		add(doc, "value", scalar(v.Text()))
	case domain.KindRecord:
		add(doc, "value", recordNode(v.Record()))
	case domain.KindList:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range v.List() {
			seq.Content = append(seq.Content, recordNode(item))
		}
		add(doc, "value", seq)
	case domain.KindAbsent:
	}
	return doc
}

func recordNode(r domain.Record) *yaml.Node {
	n := mapping()
	for _, key := range r.Keys() {
		if text, ok := r.Text(key); ok {
			add(n, key, scalar(text))
			continue
		}
		if nested, ok := r.Nested(key); ok {
			add(n, key, recordNode(nested))
		}
	}
	return n
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func scalar(text string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: text}
}

func add(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar(key), value)
}
