// Package config loads prosa.yaml project descriptors.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/prosa/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	defaultPackaging          = "jar"
	defaultAggregatePackaging = "pom"
	defaultBuildDirectory     = "target"
	defaultSourceRoot         = "src/main/java"
	defaultTestSourceRoot     = "src/test/java"
	defaultResourceDir        = "src/main/resources"
	defaultTestResourceDir    = "src/test/resources"
)

// Loader implements ports.DescriptorLoader using YAML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the descriptor in dir. Aggregates have their modules loaded recursively,
// each child pointing back at the aggregate that declared it.
func (l *Loader) Load(dir string) (*domain.ProjectDescriptor, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDescriptorLoad.Error()), "path", dir)
	}

	d, dto, err := l.loadModule(abs)
	if err != nil {
		return nil, err
	}

	if dto.Parent != "" {
		parentDir := resolvePath(abs, dto.Parent)
		parent, _, err := l.loadModule(parentDir)
		if err != nil {
			return nil, zerr.With(err, "module", d.Name)
		}
		d.Parent = parentRef(parent)
	}

	if err := l.loadChildren(d, map[string]bool{abs: true}); err != nil {
		return nil, err
	}
	return d, nil
}

func (l *Loader) loadChildren(d *domain.ProjectDescriptor, visiting map[string]bool) error {
	// Outputs of child modules are placed by directory name.
	dirNames := make(map[string]string, len(d.Modules))
	for _, module := range d.Modules {
		childDir := resolvePath(d.BaseDir, module)
		if visiting[childDir] {
			err := zerr.With(domain.ErrInvalidDescriptor, "reason", "module cycle")
			return zerr.With(zerr.With(err, "module", module), "path", childDir)
		}
		name := filepath.Base(childDir)
		if other, dup := dirNames[name]; dup {
			err := zerr.With(domain.ErrInvalidDescriptor, "reason", "duplicate module directory")
			return zerr.With(zerr.With(err, "module", module), "conflicts", other)
		}
		dirNames[name] = module

		child, dto, err := l.loadModule(childDir)
		if err != nil {
			return zerr.With(err, "module", module)
		}
		if dto.Parent != "" && resolvePath(childDir, dto.Parent) != d.BaseDir {
			l.Logger.Warn(fmt.Sprintf("'parent' declared in %s is ignored, module is loaded through %s", childDir, d.BaseDir))
		}
		child.Parent = parentRef(d)

		visiting[childDir] = true
		if err := l.loadChildren(child, visiting); err != nil {
			return err
		}
		delete(visiting, childDir)

		d.Children = append(d.Children, child)
	}
	return nil
}

func parentRef(d *domain.ProjectDescriptor) *domain.ParentRef {
	return &domain.ParentRef{
		Name:      d.Name,
		FinalName: d.Build.FinalName,
		BaseDir:   d.BaseDir,
	}
}

// loadModule reads and converts the descriptor of one module without its children.
func (l *Loader) loadModule(dir string) (*domain.ProjectDescriptor, *Descriptor, error) {
	path := filepath.Join(dir, domain.DescriptorFileName)
	var dto Descriptor
	if err := readAndUnmarshalYAML(path, &dto); err != nil {
		return nil, nil, err
	}
	if err := validate(&dto); err != nil {
		return nil, nil, zerr.With(err, "path", path)
	}

	d, err := buildDescriptor(dir, &dto)
	if err != nil {
		return nil, nil, zerr.With(err, "path", path)
	}
	if d.Packaging == domain.PackagingOther {
		l.Logger.Warn(fmt.Sprintf("packaging %q of %s has no archive support", d.PackagingName, d.Name))
	}
	return d, &dto, nil
}

func validate(dto *Descriptor) error {
	if strings.TrimSpace(dto.Name) == "" {
		return zerr.With(domain.ErrInvalidDescriptor, "reason", "missing name")
	}
	if len(dto.Modules) > 0 && dto.Packaging != "" && domain.ParsePackaging(dto.Packaging) != domain.PackagingAggregate {
		err := zerr.With(domain.ErrInvalidDescriptor, "reason", "modules require pom packaging")
		return zerr.With(err, "packaging", dto.Packaging)
	}
	for i, dep := range dto.Dependencies {
		if dep.GroupID == "" || dep.ArtifactID == "" {
			err := zerr.With(domain.ErrInvalidDescriptor, "reason", "dependency without coordinates")
			return zerr.With(err, "dependency", i)
		}
	}
	return nil
}

func buildDescriptor(dir string, dto *Descriptor) (*domain.ProjectDescriptor, error) {
	packaging := dto.Packaging
	if packaging == "" {
		packaging = defaultPackaging
		if len(dto.Modules) > 0 {
			packaging = defaultAggregatePackaging
		}
	}

	d := &domain.ProjectDescriptor{
		Name:          dto.Name,
		GroupID:       dto.GroupID,
		Version:       dto.Version,
		PackagingName: packaging,
		Packaging:     domain.ParsePackaging(packaging),
		BaseDir:       dir,
		Modules:       slices.Clone(dto.Modules),
		Properties:    dto.Properties,
	}

	d.Build = buildLayout(dir, dto)
	d.Reporting.OutputDirectory = resolvePath(dir, orDefault(dto.Reporting.OutputDirectory, filepath.Join(d.Build.Directory, "site")))

	for _, dep := range dto.Dependencies {
		systemPath := dep.SystemPath
		if systemPath != "" {
			systemPath = resolvePath(dir, systemPath)
		}
		d.Dependencies = append(d.Dependencies, domain.Dependency{
			GroupID:    dep.GroupID,
			ArtifactID: dep.ArtifactID,
			Version:    dep.Version,
			Scope:      dep.Scope,
			Type:       dep.Type,
			SystemPath: systemPath,
		})
	}

	for _, section := range []struct {
		source  domain.ConfigSource
		plugins []PluginDTO
	}{
		{domain.SourceReporting, dto.Reporting.Plugins},
		{domain.SourceBuild, dto.Build.Plugins},
		{domain.SourceManagement, dto.Build.PluginManagement},
	} {
		for i := range section.plugins {
			tool, err := toolFromPlugin(&section.plugins[i], section.source)
			if err != nil {
				return nil, err
			}
			d.Tools = append(d.Tools, tool)
		}
	}
	return d, nil
}

func toolFromPlugin(p *PluginDTO, source domain.ConfigSource) (domain.ToolConfig, error) {
	if p.ArtifactID == "" {
		return domain.ToolConfig{}, zerr.With(domain.ErrInvalidDescriptor, "reason", "plugin without artifactId")
	}
	raw, tree := toolConfig(&p.Configuration)
	return domain.ToolConfig{
		Group:  p.GroupID,
		Name:   p.ArtifactID,
		Source: source,
		Raw:    raw,
		Tree:   tree,
	}, nil
}

func buildLayout(dir string, dto *Descriptor) domain.BuildLayout {
	b := dto.Build
	finalName := b.FinalName
	if finalName == "" {
		finalName = dto.Name
		if dto.Version != "" {
			finalName += "-" + dto.Version
		}
	}

	directory := resolvePath(dir, orDefault(b.Directory, defaultBuildDirectory))
	return domain.BuildLayout{
		Directory:           directory,
		FinalName:           finalName,
		OutputDirectory:     resolvePath(dir, orDefault(b.OutputDirectory, filepath.Join(directory, "classes"))),
		TestOutputDirectory: resolvePath(dir, orDefault(b.TestOutputDirectory, filepath.Join(directory, "test-classes"))),
		SourceRoots:         resolvePaths(dir, orDefaultList(b.SourceRoots, defaultSourceRoot)),
		TestSourceRoots:     resolvePaths(dir, orDefaultList(b.TestSourceRoots, defaultTestSourceRoot)),
		Resources:           resources(dir, b.Resources, defaultResourceDir),
		TestResources:       resources(dir, b.TestResources, defaultTestResourceDir),
	}
}

func resources(dir string, dtos []ResourceDTO, def string) []domain.Resource {
	if dtos == nil {
		return []domain.Resource{{Directory: resolvePath(dir, def)}}
	}
	out := make([]domain.Resource, 0, len(dtos))
	for _, r := range dtos {
		out = append(out, domain.Resource{
			Directory:  resolvePath(dir, r.Directory),
			TargetPath: r.TargetPath,
			Includes:   r.Includes,
			Excludes:   r.Excludes,
		})
	}
	return out
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func orDefaultList(values []string, def string) []string {
	if values == nil {
		return []string{def}
	}
	return values
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}

func resolvePaths(base string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = resolvePath(base, p)
	}
	return out
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is built from the module directory
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDescriptorLoad.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDescriptorLoad.Error()), "path", path)
	}
	return nil
}
