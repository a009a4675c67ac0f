package layout

import (
	"path/filepath"
	"strconv"

	"go.trai.ch/prosa/internal/core/domain"
)

// Property names shared by the script and the property file.
const (
	PropFinalName       = "build.finalName"
	PropBuildDir        = "build.dir"
	PropParentName      = "build.parentName"
	PropParentDir       = "parent.dir"
	PropModuleDir       = "build.module.dir"
	PropBaseDir         = "base.dir"
	PropOutputDir       = "build.outputDir"
	PropSrcDir          = "build.srcDir"
	PropResourceDir     = "build.resourceDir"
	PropTestOutputDir   = "build.testOutputDir"
	PropTestDir         = "build.testDir"
	PropTestResourceDir = "build.testResourceDir"
	PropTestReports     = "test.reports"
	PropJavadocDir      = "javadoc.dir"
	PropReportingOutput = "reporting.outputDirectory"
	PropClasspathDir    = "build.classpath.dir"
	PropOffline         = "settings.offline"
	PropInteractiveMode = "settings.interactiveMode"
	PropTestSkip        = "test.skip"
	PropSingleTest      = "test"
	PropLocalRepository = "maven.repo.local"
	PropScriptBaseDir   = "basedir"
	BuildDirName        = "build"
	DistDirName         = "dist"
	DocsDirName         = "javadocs"
	ConfigFilesDirName  = "configFiles"
	ScriptFileName      = "build.xml"
	PropertiesFileName  = "build.properties"
	ClasspathID         = "build.classpath"
	TestClasspathID     = "build.test.classpath"
)

const (
	rootParentDir = "./"
	// Fixed depth from <rootDirectory>/build/<parent>/<module> back to <rootDirectory>.
	childParentDirAscent = "../../../"
)

// Indexed returns the name of the i-th entry of an indexed property family.
func Indexed(family string, i int) string {
	return family + "." + strconv.Itoa(i)
}

// Indirection is the chain of property expressions that places a module relative to
// its parent. None of it is resolved here; the script engine evaluates it at run time.
type Indirection struct {
	ParentDir    domain.Expr
	ModuleDir    domain.Expr
	BaseDir      domain.Expr
	ClasspathDir domain.Expr
}

// Compute returns the indirection chain of a module.
func Compute(d *domain.ProjectDescriptor, libDirectory string) Indirection {
	ind := Indirection{ParentDir: domain.Lit(rootParentDir)}
	if !d.IsRoot() {
		ind.ParentDir = domain.Lit(childParentDirAscent)
		ind.ModuleDir = domain.Lit("/" + d.ModuleDirName())
	}
	ind.BaseDir = domain.Concat(
		domain.Ref(PropParentDir),
		domain.Ref(PropBuildDir),
		domain.Lit("/"),
		domain.Ref(PropParentName),
		domain.Ref(PropModuleDir),
	)
	ind.ClasspathDir = domain.Concat(
		domain.Ref(PropParentDir),
		domain.Lit(libDirectory),
		domain.Ref(PropModuleDir),
	)
	return ind
}

// OutputDir returns the directory the script and property file of a module are written to:
// <basedir>/<rootDirectory> for a root module and
// <parent basedir>/<rootDirectory>/configFiles/<module dir> for a child.
func OutputDir(d *domain.ProjectDescriptor, rootDirectory string) string {
	if d.IsRoot() {
		return filepath.Join(d.BaseDir, rootDirectory)
	}
	return filepath.Join(d.Parent.BaseDir, rootDirectory, ConfigFilesDirName, d.ModuleDirName())
}

// ModuleRelativeDir is the path of a child module relative to its aggregate, in "/" form.
func ModuleRelativeDir(aggregate *domain.ProjectDescriptor, module string) string {
	if filepath.IsAbs(module) {
		return Relativize(aggregate.BaseDir, module)
	}
	return filepath.ToSlash(filepath.Clean(module))
}
