package domain

import "iter"

// ScriptHeader is the version comment written at the top of every build script.
const ScriptHeader = "Ant build file (http://ant.apache.org/) for Ant 1.6.2 or above."

// Script is the generated build script before it is rendered.
type Script struct {
	Name       string
	Default    string
	BaseDir    string
	Header     string
	Properties []PropertyDecl
	Paths      []PathDef

	graph *TargetGraph
}

// NewScript creates an empty script for the named project.
func NewScript(name string) *Script {
	return &Script{
		Name:    name,
		Default: "package",
		BaseDir: ".",
		Header:  ScriptHeader,
		graph:   NewTargetGraph(),
	}
}

// PropertyDecl declares one property, or loads a property file when File is set.
// Comment, when set, opens a new group of declarations.
type PropertyDecl struct {
	Comment string
	Name    string
	Value   Expr
	File    string
}

// PathDef is a named classpath definition.
type PathDef struct {
	ID       string
	FileSets []FileSet
	Elements []Expr
}

// AddTarget appends a target, rejecting duplicate names.
func (s *Script) AddTarget(t *Target) error {
	return s.graph.AddTarget(t)
}

// Target returns the named target.
func (s *Script) Target(name string) (*Target, bool) {
	return s.graph.Get(name)
}

// Targets iterates the targets in the order they were added.
func (s *Script) Targets() iter.Seq[*Target] {
	return s.graph.Targets()
}

// TargetNames lists the target names in the order they were added.
func (s *Script) TargetNames() []string {
	names := make([]string, 0, s.graph.Len())
	for t := range s.graph.Targets() {
		names = append(names, t.Name.String())
	}
	return names
}

// Validate checks the target graph for missing dependencies and cycles.
func (s *Script) Validate() error {
	return s.graph.Validate()
}

// Property returns the value of the named property declaration.
func (s *Script) Property(name string) (Expr, bool) {
	for _, p := range s.Properties {
		if p.File == "" && p.Name == name {
			return p.Value, true
		}
	}
	return Expr{}, false
}
