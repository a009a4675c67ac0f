// Package domain contains the core domain models for build script generation.
package domain

import (
	"path/filepath"
	"strings"
)

// ConfigSource identifies where a tool configuration block was declared.
type ConfigSource int

const (
	// SourceReporting is a tool declared in the reporting section.
	SourceReporting ConfigSource = iota
	// SourceBuild is a tool declared in the build section.
	SourceBuild
	// SourceManagement is a tool declared in the build management section.
	SourceManagement
)

// DefaultToolGroup is the group every tool name without an explicit group belongs to.
const DefaultToolGroup = "org.apache.maven.plugins"

// ProjectDescriptor describes a buildable module.
// All directory fields hold absolute paths.
type ProjectDescriptor struct {
	Name          string
	GroupID       string
	Version       string
	PackagingName string
	Packaging     Packaging

	// BaseDir is the directory holding the descriptor file.
	BaseDir string
	Parent  *ParentRef

	// Modules lists child module paths relative to BaseDir, in declared order.
	Modules  []string
	Children []*ProjectDescriptor

	Build     BuildLayout
	Reporting ReportingLayout

	Dependencies []Dependency
	Properties   map[string]string
	Tools        []ToolConfig
}

// ParentRef points at the aggregate a module belongs to.
type ParentRef struct {
	Name      string
	FinalName string
	BaseDir   string
}

// BuildLayout holds the build section of a descriptor.
type BuildLayout struct {
	Directory           string
	FinalName           string
	OutputDirectory     string
	TestOutputDirectory string
	SourceRoots         []string
	TestSourceRoots     []string
	Resources           []Resource
	TestResources       []Resource
}

// ReportingLayout holds the reporting section of a descriptor.
type ReportingLayout struct {
	OutputDirectory string
}

// Resource is a directory copied verbatim into an output directory.
type Resource struct {
	Directory  string
	TargetPath string
	Includes   []string
	Excludes   []string
}

// Dependency is a classpath entry of the module.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Version    string
	Scope      string
	Type       string
	SystemPath string
}

// Coordinate returns the group:artifact:version form of the dependency.
func (d Dependency) Coordinate() string {
	return d.GroupID + ":" + d.ArtifactID + ":" + d.Version
}

// ToolConfig is the configuration block attached to one tool declaration.
// Raw holds unparsed configuration text; Tree holds configuration that arrived already structured.
type ToolConfig struct {
	Group  string
	Name   string
	Source ConfigSource
	Raw    string
	Tree   *ConfigNode
}

// IsEmpty reports whether the tool carries no configuration at all.
func (t ToolConfig) IsEmpty() bool {
	return t.Tree == nil && strings.TrimSpace(t.Raw) == ""
}

// Matches reports whether the tool is the one named by toolName.
// The name may be qualified as "group:name"; an unqualified name matches the default group.
func (t ToolConfig) Matches(toolName string) bool {
	group, name, qualified := strings.Cut(toolName, ":")
	if !qualified {
		group, name = DefaultToolGroup, toolName
	}
	own := t.Group
	if own == "" {
		own = DefaultToolGroup
	}
	return own == group && t.Name == name
}

// IsRoot reports whether the descriptor has no parent.
func (d *ProjectDescriptor) IsRoot() bool {
	return d.Parent == nil
}

// IsAggregate reports whether the descriptor only groups child modules.
func (d *ProjectDescriptor) IsAggregate() bool {
	return d.Packaging == PackagingAggregate
}

// ModuleDirName is the name of the directory holding the descriptor.
func (d *ProjectDescriptor) ModuleDirName() string {
	return filepath.Base(d.BaseDir)
}

// ParentFinalName is the final name of the parent, or the module's own when it is a root.
func (d *ProjectDescriptor) ParentFinalName() string {
	if d.Parent != nil && d.Parent.FinalName != "" {
		return d.Parent.FinalName
	}
	return d.Build.FinalName
}

// ToolsInSearchOrder returns the tool configurations ordered reporting, build, then management,
// keeping the declared order within each source.
func (d *ProjectDescriptor) ToolsInSearchOrder() []ToolConfig {
	ordered := make([]ToolConfig, 0, len(d.Tools))
	for _, src := range []ConfigSource{SourceReporting, SourceBuild, SourceManagement} {
		for _, t := range d.Tools {
			if t.Source == src {
				ordered = append(ordered, t)
			}
		}
	}
	return ordered
}

// Walk yields the descriptor and every descendant, parents before children.
func (d *ProjectDescriptor) Walk(yield func(*ProjectDescriptor) bool) {
	d.walk(yield)
}

func (d *ProjectDescriptor) walk(yield func(*ProjectDescriptor) bool) bool {
	if !yield(d) {
		return false
	}
	for _, c := range d.Children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}
