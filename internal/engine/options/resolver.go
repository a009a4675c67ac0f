// Package options resolves typed option values out of tool configuration trees.
package options

import (
	"sync"

	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/prosa/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver looks options up in the tool configurations of a descriptor.
type Resolver struct {
	parser ports.ConfigParser

	mu    sync.Mutex
	trees map[string]*domain.ConfigNode
}

// NewResolver creates a new Resolver.
func NewResolver(parser ports.ConfigParser) *Resolver {
	return &Resolver{
		parser: parser,
		trees:  make(map[string]*domain.ConfigNode),
	}
}

// Resolve returns the value of optionPath in the configuration of toolName.
// Configurations are searched reporting first, then build, then build management;
// the first one holding the option wins. An option found nowhere resolves to
// Scalar(def), or Absent when def is empty.
func (r *Resolver) Resolve(d *domain.ProjectDescriptor, toolName, optionPath, def string) (domain.ConfigValue, error) {
	for _, tool := range d.ToolsInSearchOrder() {
		if !tool.Matches(toolName) || tool.IsEmpty() {
			continue
		}
		root, err := r.tree(tool)
		if err != nil {
			return domain.Absent(), zerr.With(zerr.With(err, "tool", toolName), "option", optionPath)
		}
		if node := root.Find(optionPath); node != nil {
			return Classify(node), nil
		}
	}
	if def == "" {
		return domain.Absent(), nil
	}
	return domain.Scalar(def), nil
}

func (r *Resolver) tree(tool domain.ToolConfig) (*domain.ConfigNode, error) {
	if tool.Tree != nil {
		return tool.Tree, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if root, ok := r.trees[tool.Raw]; ok {
		return root, nil
	}
	root, err := r.parser.Parse(tool.Raw)
	if err != nil {
		return nil, err
	}
	r.trees[tool.Raw] = root
	return root, nil
}

// Tool returns a reader bound to one tool of one descriptor.
func (r *Resolver) Tool(d *domain.ProjectDescriptor, toolName string) *Reader {
	return &Reader{resolver: r, descriptor: d, tool: toolName}
}

// Reader resolves several options of one tool and keeps the first error.
// Once an error occurred every further lookup returns the zero value.
type Reader struct {
	resolver   *Resolver
	descriptor *domain.ProjectDescriptor
	tool       string
	err        error
}

// Value resolves an option.
func (rd *Reader) Value(optionPath, def string) domain.ConfigValue {
	if rd.err != nil {
		return domain.Absent()
	}
	v, err := rd.resolver.Resolve(rd.descriptor, rd.tool, optionPath, def)
	if err != nil {
		rd.err = err
		return domain.Absent()
	}
	return v
}

// Text resolves an option as text. Non-scalar values read as "".
func (rd *Reader) Text(optionPath, def string) string {
	return rd.Value(optionPath, def).Text()
}

// List resolves an option as a list of records. A single record reads as a one-item list.
func (rd *Reader) List(optionPath string) []domain.Record {
	v := rd.Value(optionPath, "")
	switch v.Kind() {
	case domain.KindList:
		return v.List()
	case domain.KindRecord:
		return []domain.Record{v.Record()}
	case domain.KindAbsent, domain.KindScalar:
		return nil
	default:
		return nil
	}
}

// Record resolves an option as a record.
func (rd *Reader) Record(optionPath string) (domain.Record, bool) {
	v := rd.Value(optionPath, "")
	if v.Kind() != domain.KindRecord {
		return domain.Record{}, false
	}
	return v.Record(), true
}

// Has reports whether the option is configured at all.
func (rd *Reader) Has(optionPath string) bool {
	return !rd.Value(optionPath, "").IsAbsent()
}

// Err returns the first error met by the reader.
func (rd *Reader) Err() error {
	return rd.err
}
