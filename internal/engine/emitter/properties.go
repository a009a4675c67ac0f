package emitter

import (
	"maps"
	"slices"
	"strconv"

	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/prosa/internal/engine/layout"
)

// underBase places a descriptor path below the module's base.dir.
func (g *generation) underBase(path string) domain.Expr {
	return domain.Ref(layout.PropBaseDir).Append("/" + layout.RelativeTo(g.d.BaseDir, path))
}

func (g *generation) declare(name string, value domain.Expr) {
	g.script.Properties = append(g.script.Properties, domain.PropertyDecl{Name: name, Value: value})
}

func (g *generation) writeProperties() {
	g.script.Properties = append(g.script.Properties, domain.PropertyDecl{
		Comment: "Build environment properties",
		Name:    layout.PropFinalName,
		Value:   domain.Lit(g.d.Build.FinalName),
	})
	g.declare(layout.PropBuildDir, domain.Lit(layout.BuildDirName))
	if g.d.IsAggregate() {
		return
	}

	g.declare(layout.PropParentName, domain.Lit(g.d.ParentFinalName()))
	g.script.Properties = append(g.script.Properties, domain.PropertyDecl{File: layout.PropertiesFileName})

	b := g.d.Build
	g.declare(layout.PropParentDir, g.ind.ParentDir)
	g.declare(layout.PropModuleDir, g.ind.ModuleDir)
	g.declare(layout.PropBaseDir, g.ind.BaseDir)
	g.declare(layout.PropOutputDir, g.underBase(b.OutputDirectory))
	for i, root := range b.SourceRoots {
		g.declare(layout.Indexed(layout.PropSrcDir, i), g.underBase(root))
	}
	for i, r := range b.Resources {
		g.declare(layout.Indexed(layout.PropResourceDir, i), g.underBase(r.Directory))
	}
	g.declare(layout.PropTestOutputDir, g.underBase(b.TestOutputDirectory))
	for i, root := range b.TestSourceRoots {
		g.declare(layout.Indexed(layout.PropTestDir, i), g.underBase(root))
	}
	for i, r := range b.TestResources {
		g.declare(layout.Indexed(layout.PropTestResourceDir, i), g.underBase(r.Directory))
	}

	docsRoot := domain.Concat(domain.Ref(layout.PropParentDir), domain.Lit(layout.DocsDirName), domain.Ref(layout.PropModuleDir))
	g.declare(layout.PropTestReports, docsRoot.Append("/test-reports"))
	g.declare(layout.PropJavadocDir, docsRoot.Append("/javadoc"))
	g.declare(layout.PropReportingOutput, g.reportingDir())
	g.declare(layout.PropClasspathDir, g.ind.ClasspathDir)
	g.declare(layout.PropOffline, domain.Lit(strconv.FormatBool(g.settings.Offline)))
	g.declare(layout.PropInteractiveMode, domain.Lit(strconv.FormatBool(g.settings.Interactive)))
}

// reportingDir keeps the reporting directory's position relative to the build directory.
func (g *generation) reportingDir() domain.Expr {
	rel := layout.RelativeTo(g.d.Build.Directory, g.d.Reporting.OutputDirectory)
	sep := "/"
	if g.d.IsRoot() {
		// parent.dir already ends with a separator and build.module.dir is empty.
		sep = ""
	}
	return domain.Concat(domain.Ref(layout.PropParentDir), domain.Ref(layout.PropModuleDir), domain.Lit(sep+rel))
}

func (g *generation) writeClasspaths() {
	jars := domain.FileSet{Dir: domain.Ref(layout.PropClasspathDir), Include: []string{"*.jar"}}

	var system []domain.Expr
	for _, dep := range g.d.Dependencies {
		if dep.Scope == "system" && dep.SystemPath != "" {
			system = append(system, domain.Lit(layout.Relativize(g.d.BaseDir, dep.SystemPath)))
		}
	}

	g.script.Paths = []domain.PathDef{
		{ID: layout.ClasspathID, FileSets: []domain.FileSet{jars}, Elements: system},
		{ID: layout.TestClasspathID, FileSets: []domain.FileSet{jars}, Elements: system},
	}
}

// propertyFile mirrors the script's property declarations, then adds descriptor
// properties and execution properties, each sorted by key.
func (g *generation) propertyFile() *domain.PropertyFile {
	f := domain.NewPropertyFile()
	for _, p := range g.script.Properties {
		if p.File != "" {
			continue
		}
		f.Set(p.Name, p.Value.String())
	}
	for _, k := range slices.Sorted(maps.Keys(g.d.Properties)) {
		f.Set(k, g.d.Properties[k])
	}
	for _, k := range slices.Sorted(maps.Keys(g.settings.ExecutionProperties)) {
		f.Set(k, g.settings.ExecutionProperties[k])
	}
	return f
}
