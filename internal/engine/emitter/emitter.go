// Package emitter assembles the build script and property file of a project descriptor.
package emitter

import (
	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/prosa/internal/core/ports"
	"go.trai.ch/prosa/internal/engine/layout"
	"go.trai.ch/prosa/internal/engine/options"
	"go.trai.ch/prosa/internal/engine/packaging"
	"go.trai.ch/zerr"
)

// Emitter builds scripts from descriptors.
type Emitter struct {
	resolver *options.Resolver
	probe    ports.PathProbe
	repos    ports.RepositoryOpener
	logger   ports.Logger
}

// New creates a new Emitter.
func New(
	resolver *options.Resolver,
	probe ports.PathProbe,
	repos ports.RepositoryOpener,
	logger ports.Logger,
) *Emitter {
	return &Emitter{
		resolver: resolver,
		probe:    probe,
		repos:    repos,
		logger:   logger,
	}
}

// Result holds the generated outputs of one module.
type Result struct {
	Script *domain.Script
	// Properties is nil for aggregates, which get no property file.
	Properties *domain.PropertyFile
}

// generation is the state of one Emit call.
type generation struct {
	*Emitter
	d        *domain.ProjectDescriptor
	settings domain.Settings
	ind      layout.Indirection
	script   *domain.Script
}

// Emit builds the script and property file of a single module.
func (e *Emitter) Emit(d *domain.ProjectDescriptor, settings domain.Settings) (*Result, error) {
	g := &generation{
		Emitter:  e,
		d:        d,
		settings: settings,
		ind:      layout.Compute(d, settings.LibDirectory),
		script:   domain.NewScript(d.Name),
	}

	g.writeProperties()
	if !d.IsAggregate() {
		g.writeClasspaths()
	}

	builders := []func() ([]*domain.Target, error){
		g.cleanTarget,
		g.setupTarget,
		g.compileTarget,
		g.compileTestsTarget,
		g.testTargets,
		g.javadocTarget,
		g.packageTargets,
	}
	for _, build := range builders {
		targets, err := build()
		if err != nil {
			return nil, zerr.With(err, "module", d.Name)
		}
		for _, t := range targets {
			if err := g.script.AddTarget(t); err != nil {
				return nil, zerr.With(err, "module", d.Name)
			}
		}
	}

	if err := g.script.Validate(); err != nil {
		return nil, zerr.With(err, "module", d.Name)
	}

	result := &Result{Script: g.script}
	if !d.IsAggregate() {
		result.Properties = g.propertyFile()
	}
	return result, nil
}

func (g *generation) forward(t *domain.Target) *domain.Target {
	return t.Add(packaging.InvokeModules(g.d, t.Name.String())...)
}

func (g *generation) cleanTarget() ([]*domain.Target, error) {
	t := domain.NewTarget("clean")
	t.Description = "Clean the output directory"
	t.Comment = "Cleaning up target"
	if g.d.IsAggregate() {
		return []*domain.Target{g.forward(t)}, nil
	}
	t.Add(domain.DeleteStep{Dir: domain.Ref(layout.PropBuildDir)})
	return []*domain.Target{t}, nil
}

func (g *generation) packageTargets() ([]*domain.Target, error) {
	pkg, alias, err := packaging.For(g.d.Packaging).Package(packaging.Input{
		Descriptor: g.d,
		Settings:   g.settings,
		Resolver:   g.resolver,
	})
	if err != nil {
		return nil, err
	}
	if alias == nil {
		return []*domain.Target{pkg}, nil
	}
	return []*domain.Target{pkg, alias}, nil
}
