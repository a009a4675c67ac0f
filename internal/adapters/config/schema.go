package config

import "gopkg.in/yaml.v3"

// Descriptor represents the structure of the prosa.yaml project descriptor.
type Descriptor struct {
	Name         string            `yaml:"name"`
	GroupID      string            `yaml:"groupId"`
	Version      string            `yaml:"version"`
	Packaging    string            `yaml:"packaging"`
	Parent       string            `yaml:"parent"`
	Modules      []string          `yaml:"modules"`
	Build        BuildDTO          `yaml:"build"`
	Reporting    ReportingDTO      `yaml:"reporting"`
	Dependencies []DependencyDTO   `yaml:"dependencies"`
	Properties   map[string]string `yaml:"properties"`
}

// BuildDTO represents the build section.
// Nil lists fall back to the conventional layout; an explicit empty list disables it.
type BuildDTO struct {
	Directory           string        `yaml:"directory"`
	FinalName           string        `yaml:"finalName"`
	OutputDirectory     string        `yaml:"outputDirectory"`
	TestOutputDirectory string        `yaml:"testOutputDirectory"`
	SourceRoots         []string      `yaml:"sourceRoots"`
	TestSourceRoots     []string      `yaml:"testSourceRoots"`
	Resources           []ResourceDTO `yaml:"resources"`
	TestResources       []ResourceDTO `yaml:"testResources"`
	Plugins             []PluginDTO   `yaml:"plugins"`
	PluginManagement    []PluginDTO   `yaml:"pluginManagement"`
}

// ReportingDTO represents the reporting section.
type ReportingDTO struct {
	OutputDirectory string      `yaml:"outputDirectory"`
	Plugins         []PluginDTO `yaml:"plugins"`
}

// ResourceDTO represents a resource directory.
type ResourceDTO struct {
	Directory  string   `yaml:"directory"`
	TargetPath string   `yaml:"targetPath"`
	Includes   []string `yaml:"includes"`
	Excludes   []string `yaml:"excludes"`
}

// PluginDTO represents a tool declaration. Configuration is either a string holding
// a <configuration> element or a mapping.
type PluginDTO struct {
	GroupID       string    `yaml:"groupId"`
	ArtifactID    string    `yaml:"artifactId"`
	Configuration yaml.Node `yaml:"configuration"`
}

// DependencyDTO represents a dependency declaration.
type DependencyDTO struct {
	GroupID    string `yaml:"groupId"`
	ArtifactID string `yaml:"artifactId"`
	Version    string `yaml:"version"`
	Scope      string `yaml:"scope"`
	Type       string `yaml:"type"`
	SystemPath string `yaml:"systemPath"`
}
