// Package app implements the application layer for prosa.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/prosa/internal/core/ports"
	"go.trai.ch/prosa/internal/engine/emitter"
	"go.trai.ch/prosa/internal/engine/layout"
	"go.trai.ch/prosa/internal/engine/options"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader    ports.DescriptorLoader
	emitter   *emitter.Emitter
	resolver  *options.Resolver
	scripts   ports.ScriptRenderer
	props     ports.PropertiesRenderer
	hasher    ports.Hasher
	writer    ports.OutputWriter
	stores    ports.StoreOpener
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.DescriptorLoader,
	em *emitter.Emitter,
	resolver *options.Resolver,
	scripts ports.ScriptRenderer,
	props ports.PropertiesRenderer,
	hasher ports.Hasher,
	writer ports.OutputWriter,
	stores ports.StoreOpener,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		loader:    loader,
		emitter:   em,
		resolver:  resolver,
		scripts:   scripts,
		props:     props,
		hasher:    hasher,
		writer:    writer,
		stores:    stores,
		telemetry: telemetry,
		logger:    log,
	}
}

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	// Dir is the directory of the module to generate for.
	Dir      string
	Settings domain.Settings
	// Jobs bounds the number of modules generated concurrently. Zero means one per CPU.
	Jobs int
}

// Report lists the outputs of a Generate run.
type Report struct {
	mu        sync.Mutex
	Written   []string
	Unchanged []string
}

func (r *Report) add(o *output, written bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if written {
		r.Written = append(r.Written, o.path)
	} else {
		r.Unchanged = append(r.Unchanged, o.path)
	}
}

func (r *Report) sort() {
	slices.Sort(r.Written)
	slices.Sort(r.Unchanged)
}

// Generate writes the build script and property file of the module in opts.Dir and,
// for aggregates, of every descendant module.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) (*Report, error) {
	root, err := a.loader.Load(opts.Dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project")
	}

	statePath := filepath.Join(root.BaseDir, opts.Settings.RootDirectory, domain.StateFileName)
	store, err := a.stores.Open(statePath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open generation state")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	report := &Report{}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for module := range root.Walk {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return a.generateModule(ctx, module, opts.Settings, store, report)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.sort()
	return report, nil
}

// output is one planned file of a module.
type output struct {
	path string
	data []byte
	hash string
	// unchanged is set when the file on disk already holds data.
	unchanged bool
}

func (a *App) generateModule(
	ctx context.Context,
	d *domain.ProjectDescriptor,
	settings domain.Settings,
	store ports.GenerationStore,
	report *Report,
) (err error) {
	_, vertex := a.telemetry.Record(ctx, d.Name)
	defer func() {
		vertex.Complete(err)
	}()

	outputs, err := a.render(d, settings)
	if err != nil {
		return err
	}
	if err := a.plan(outputs, settings.Overwrite, store); err != nil {
		return zerr.With(err, "module", d.Name)
	}

	changed := false
	for _, o := range outputs {
		if o.unchanged {
			a.logger.Info(fmt.Sprintf("unchanged %s", o.path))
			report.add(o, false)
			continue
		}
		if err := a.writer.WriteFile(o.path, o.data); err != nil {
			return zerr.With(err, "module", d.Name)
		}
		if err := store.Put(domain.GenerationRecord{Path: o.path, Module: d.Name, Hash: o.hash}); err != nil {
			return zerr.With(err, "module", d.Name)
		}
		a.logger.Info(fmt.Sprintf("wrote %s", o.path))
		vertex.Log("wrote " + o.path)
		report.add(o, true)
		changed = true
	}
	if !changed {
		vertex.Cached()
	}
	return nil
}

// render emits the module and serializes its outputs.
func (a *App) render(d *domain.ProjectDescriptor, settings domain.Settings) ([]*output, error) {
	result, err := a.emitter.Emit(d, settings)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to generate build script")
	}

	dir := layout.OutputDir(d, settings.RootDirectory)
	script, err := a.scripts.RenderScript(result.Script)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to render build script"), "module", d.Name)
	}
	outputs := []*output{{path: filepath.Join(dir, layout.ScriptFileName), data: script}}

	if result.Properties != nil {
		props, err := a.props.RenderProperties(result.Properties)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to render property file"), "module", d.Name)
		}
		outputs = append(outputs, &output{path: filepath.Join(dir, layout.PropertiesFileName), data: props})
	}

	for _, o := range outputs {
		o.hash = a.hasher.HashBytes(o.data)
	}
	return outputs, nil
}

// plan decides for every output whether it is written. A hand-edited output aborts
// the module before any of its files is touched unless overwrite is set.
func (a *App) plan(outputs []*output, overwrite bool, store ports.GenerationStore) error {
	var errs error
	for _, o := range outputs {
		onDisk, exists, err := a.hasher.HashFile(o.path)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}
		if onDisk == o.hash {
			o.unchanged = true
			continue
		}
		if overwrite {
			continue
		}
		record, err := store.Get(o.path)
		if err != nil {
			return err
		}
		if record != nil && record.Hash != onDisk {
			errs = errors.Join(errs, zerr.With(domain.ErrOutputModified, "path", o.path))
		}
	}
	return errs
}

// Option resolves one option of a tool for the module in dir.
func (a *App) Option(dir, tool, optionPath, def string) (domain.ConfigValue, error) {
	d, err := a.loader.Load(dir)
	if err != nil {
		return domain.Absent(), zerr.Wrap(err, "failed to load project")
	}
	return a.resolver.Resolve(d, tool, optionPath, def)
}

// Close flushes the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}
