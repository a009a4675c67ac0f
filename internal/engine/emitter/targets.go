package emitter

import (
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/prosa/internal/engine/layout"
	"go.trai.ch/prosa/internal/engine/options"
	"go.trai.ch/prosa/internal/engine/packaging"
	"go.trai.ch/zerr"
)

const nothingToSetup = "Nothing to setup."

func (g *generation) setupTarget() ([]*domain.Target, error) {
	t := domain.NewTarget("setup")
	t.Description = "Setup file system."
	t.Comment = "Setup target"

	staging := packaging.StagingDir()
	for _, m := range g.settings.FileMappings {
		if !m.NeedsRestore() {
			continue
		}
		t.Add(g.restoreStep(m, staging.Append("/"+filepath.ToSlash(m.Source))))
	}

	if g.d.IsAggregate() {
		for _, module := range g.d.Modules {
			name := path.Base(layout.ModuleRelativeDir(g.d, module))
			from := layout.ConfigFilesDirName + "/" + name + "/"
			to := packaging.ModuleStagingDir(g.d, module).Append("/")
			for _, file := range []string{layout.ScriptFileName, layout.PropertiesFileName} {
				t.Add(domain.CopyStep{File: domain.Lit(from + file), ToFile: to.Append(file)})
			}
		}
	}

	if len(t.Steps) == 0 {
		t.Add(domain.DiagnosticStep{Message: nothingToSetup})
	}
	return []*domain.Target{t}, nil
}

// restoreStep copies a relocated file back to where the build expects it.
func (g *generation) restoreStep(m domain.FileMapping, dest domain.Expr) domain.Step {
	scaffold := filepath.Join(g.d.BaseDir, g.settings.RootDirectory, m.Destination)
	origin := filepath.Join(g.d.BaseDir, m.Source)
	destination := filepath.ToSlash(m.Destination)

	switch {
	case g.probe.IsDir(scaffold) && g.probe.IsDir(origin):
		return domain.CopyStep{
			ToDir:     dest,
			Overwrite: m.ConfigFile,
			FileSets:  []domain.FileSet{{Dir: domain.Lit(destination), Include: []string{"**"}}},
		}
	case g.probe.IsDir(scaffold) && g.probe.IsFile(origin):
		return domain.CopyStep{
			File:      domain.Lit(destination + "/" + filepath.Base(origin)),
			ToFile:    dest,
			Overwrite: true,
		}
	case g.probe.IsFile(scaffold) && g.probe.IsFile(origin):
		return domain.CopyStep{File: domain.Lit(destination), ToFile: dest, Overwrite: true}
	default:
		msg := "Cannot restore " + m.Source + " from " + m.Destination + ": no such file or directory."
		g.logger.Warn(msg)
		return domain.DiagnosticStep{Message: msg}
	}
}

func (g *generation) compileTarget() ([]*domain.Target, error) {
	t := domain.NewTarget("compile")
	t.Description = "Compile the code"
	t.Comment = "Compilation target"
	if g.d.IsAggregate() {
		return []*domain.Target{g.forward(t)}, nil
	}

	err := g.compileSteps(t, compilation{
		outputDir:    domain.Ref(layout.PropOutputDir),
		roots:        g.d.Build.SourceRoots,
		rootFamily:   layout.PropSrcDir,
		resources:    g.d.Build.Resources,
		resFamily:    layout.PropResourceDir,
		classpathRef: layout.ClasspathID,
	})
	if err != nil {
		return nil, err
	}
	return []*domain.Target{t}, nil
}

func (g *generation) compileTestsTarget() ([]*domain.Target, error) {
	t := domain.NewTarget("compile-tests", "compile")
	t.Description = "Compile the test code"
	t.Comment = "Test-compilation target"
	if g.d.IsAggregate() {
		return []*domain.Target{g.forward(t)}, nil
	}
	t.Unless = layout.PropTestSkip

	err := g.compileSteps(t, compilation{
		outputDir:    domain.Ref(layout.PropTestOutputDir),
		roots:        g.d.Build.TestSourceRoots,
		rootFamily:   layout.PropTestDir,
		resources:    g.d.Build.TestResources,
		resFamily:    layout.PropTestResourceDir,
		classpathRef: layout.TestClasspathID,
		extra:        []domain.Expr{domain.Ref(layout.PropOutputDir)},
	})
	if err != nil {
		return nil, err
	}
	return []*domain.Target{t}, nil
}

type compilation struct {
	outputDir    domain.Expr
	roots        []string
	rootFamily   string
	resources    []domain.Resource
	resFamily    string
	classpathRef string
	extra        []domain.Expr
}

// existing returns the indexed properties of the roots found on disk.
// Indices follow declaration order, so a missing root leaves a gap.
func (g *generation) existing(roots []string, family string) []domain.Expr {
	var out []domain.Expr
	for i, root := range roots {
		if g.probe.Exists(root) {
			out = append(out, domain.Ref(layout.Indexed(family, i)))
		}
	}
	return out
}

func (g *generation) compileSteps(t *domain.Target, c compilation) error {
	t.Add(domain.EnsureDirStep{Dir: c.outputDir})

	if sources := g.existing(c.roots, c.rootFamily); len(sources) > 0 {
		opts, err := g.compilerOptions(c.outputDir)
		if err != nil {
			return err
		}
		t.Add(domain.CompileStep{
			DestDir:        c.outputDir,
			Options:        opts,
			Sources:        sources,
			ClasspathRef:   c.classpathRef,
			ExtraClasspath: c.extra,
		})
	}

	for i, r := range c.resources {
		if !g.probe.Exists(r.Directory) {
			continue
		}
		toDir := c.outputDir
		if r.TargetPath != "" {
			toDir = toDir.Append("/" + filepath.ToSlash(r.TargetPath))
			t.Add(domain.EnsureDirStep{Dir: toDir})
		}
		t.Add(domain.CopyStep{
			ToDir: toDir,
			FileSets: []domain.FileSet{{
				Dir:     domain.Ref(layout.Indexed(c.resFamily, i)),
				Include: r.Includes,
				Exclude: r.Excludes,
			}},
		})
	}
	return nil
}

func (g *generation) compilerOptions(outputDir domain.Expr) (domain.Attrs, error) {
	opts := g.resolver.Tool(g.d, options.ToolCompiler)

	var a domain.Attrs
	a.Add("destdir", outputDir)
	a.AddText("includes", strings.Join(options.SelectorList(opts.List("includes")), ","))
	a.AddText("excludes", strings.Join(options.SelectorList(opts.List("excludes")), ","))
	a.AddText("encoding", opts.Text("encoding", ""))
	a.AddText("nowarn", negate(opts.Text("showWarnings", "true")))
	a.AddText("debug", opts.Text("debug", "true"))
	a.AddText("optimize", opts.Text("optimize", "false"))
	a.AddText("deprecation", opts.Text("showDeprecation", "true"))
	a.AddText("target", opts.Text("target", "1.1"))
	a.AddText("verbose", opts.Text("verbose", "false"))
	a.AddText("fork", opts.Text("fork", "false"))
	a.AddText("memoryMaximumSize", opts.Text("maxmem", ""))
	a.AddText("memoryInitialSize", opts.Text("meminitial", ""))
	a.AddText("source", opts.Text("source", "1.3"))
	if err := opts.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve compiler options"), "tool", options.ToolCompiler)
	}
	return a, nil
}

func negate(flag string) string {
	switch strings.TrimSpace(flag) {
	case "true":
		return "false"
	case "false":
		return "true"
	default:
		return ""
	}
}
