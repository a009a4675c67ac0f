package emitter_test

import (
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prosa/internal/adapters/logger"
	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/prosa/internal/core/ports/mocks"
	"go.trai.ch/prosa/internal/engine/emitter"
	"go.trai.ch/prosa/internal/engine/options"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// disk is a fake filesystem: paths map to true for directories and false for files.
type disk map[string]bool

func (fs disk) probe(ctrl *gomock.Controller) *mocks.MockPathProbe {
	probe := mocks.NewMockPathProbe(ctrl)
	probe.EXPECT().Exists(gomock.Any()).DoAndReturn(func(p string) bool {
		_, ok := fs[p]
		return ok
	}).AnyTimes()
	probe.EXPECT().IsDir(gomock.Any()).DoAndReturn(func(p string) bool {
		isDir, ok := fs[p]
		return ok && isDir
	}).AnyTimes()
	probe.EXPECT().IsFile(gomock.Any()).DoAndReturn(func(p string) bool {
		isDir, ok := fs[p]
		return ok && !isDir
	}).AnyTimes()
	return probe
}

func newEmitter(t *testing.T, fs disk) (*emitter.Emitter, *mocks.MockRepositoryOpener) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repos := mocks.NewMockRepositoryOpener(ctrl)
	return emitter.New(options.NewResolver(nil), fs.probe(ctrl), repos, logger.NewNop()), repos
}

// metadata merges the zerr metadata of every error in the chain.
func metadata(err error) map[string]any {
	out := make(map[string]any)
	for err != nil {
		if z, ok := err.(*zerr.Error); ok {
			maps.Copy(out, z.Metadata())
		}
		err = errors.Unwrap(err)
	}
	return out
}

func library(base string) *domain.ProjectDescriptor {
	return &domain.ProjectDescriptor{
		Name:      "app",
		BaseDir:   base,
		Packaging: domain.PackagingLibrary,
		Build: domain.BuildLayout{
			Directory:           base + "/target",
			FinalName:           "app-1.0",
			OutputDirectory:     base + "/target/classes",
			TestOutputDirectory: base + "/target/test-classes",
			SourceRoots:         []string{base + "/src/main/java"},
			Resources:           []domain.Resource{{Directory: base + "/src/main/resources"}},
		},
		Reporting: domain.ReportingLayout{OutputDirectory: base + "/target/site"},
	}
}

func TestEmit_LibraryScenario(t *testing.T) {
	d := library("/work/app")
	e, _ := newEmitter(t, disk{"/work/app/src/main/java": true, "/work/app/src/main/resources": true})

	res, err := e.Emit(d, domain.DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"clean", "setup", "compile", "compile-tests", "test",
		"test-junit-present", "test-junit-status", "junit-missing",
		"javadoc", "package", "jar",
	}, res.Script.TargetNames())

	require.NotNil(t, res.Properties)
	for _, key := range []string{"build.finalName", "build.dir", "build.outputDir", "build.srcDir.0", "build.resourceDir.0"} {
		_, ok := res.Properties.Get(key)
		assert.True(t, ok, "missing %s", key)
	}
	for _, key := range res.Properties.Keys() {
		assert.False(t, strings.HasPrefix(key, "build.testDir."), "unexpected %s", key)
	}

	finalName, _ := res.Properties.Get("build.finalName")
	assert.Equal(t, "app-1.0", finalName)
	outputDir, _ := res.Properties.Get("build.outputDir")
	assert.Equal(t, "${base.dir}/target/classes", outputDir)
	parentDir, _ := res.Properties.Get("parent.dir")
	assert.Equal(t, "./", parentDir)
	reporting, _ := res.Properties.Get("reporting.outputDirectory")
	assert.Equal(t, "${parent.dir}${build.module.dir}site", reporting)
	assert.Equal(t, domain.PropertyFileHeader, res.Properties.Header)
}

func TestEmit_TargetGraphInvariants(t *testing.T) {
	e, _ := newEmitter(t, disk{"/work/app/src/main/java": true})

	res, err := e.Emit(library("/work/app"), domain.DefaultSettings())
	require.NoError(t, err)
	require.NoError(t, res.Script.Validate())

	compileTests, ok := res.Script.Target("compile-tests")
	require.True(t, ok)
	assert.True(t, compileTests.DependsOn("compile"))
	assert.Equal(t, "test.skip", compileTests.Unless)

	test, ok := res.Script.Target("test")
	require.True(t, ok)
	assert.True(t, test.DependsOn("compile-tests"))
	assert.True(t, test.DependsOn("junit-missing"))
	assert.Equal(t, "junit.skipped", test.Unless)

	pkg, ok := res.Script.Target("package")
	require.True(t, ok)
	assert.True(t, pkg.DependsOn("compile"))
	assert.True(t, pkg.DependsOn("setup"))

	status, _ := res.Script.Target("test-junit-status")
	assert.True(t, status.DependsOn("test-junit-present"))
	missing, _ := res.Script.Target("junit-missing")
	assert.True(t, missing.DependsOn("test-junit-status"))
	assert.Equal(t, "junit.missing", missing.If)
}

func TestEmit_GateConditions(t *testing.T) {
	e, _ := newEmitter(t, disk{})

	res, err := e.Emit(library("/work/app"), domain.DefaultSettings())
	require.NoError(t, err)

	status, _ := res.Script.Target("test-junit-status")
	require.Len(t, status.Steps, 2)

	missing := status.Steps[0].(domain.ConditionStep)
	assert.Equal(t, "junit.missing", missing.Property)
	assert.Equal(t, "and", missing.Operator)
	assert.False(t, missing.Terms[0].IsTrue)
	assert.False(t, missing.Terms[1].IsTrue)

	skipped := status.Steps[1].(domain.ConditionStep)
	assert.Equal(t, "junit.skipped", skipped.Property)
	assert.Equal(t, "or", skipped.Operator)
	assert.False(t, skipped.Terms[0].IsTrue)
	assert.True(t, skipped.Terms[1].IsTrue)
	assert.Equal(t, "${test.skip}", skipped.Terms[1].Value.String())

	present, _ := res.Script.Target("test-junit-present")
	probe := present.Steps[0].(domain.ProbeStep)
	assert.Equal(t, "junit.framework.Test", probe.ClassName)
}

func TestEmit_CompileStepsFollowDeclarationOrder(t *testing.T) {
	d := library("/work/app")
	d.Build.SourceRoots = []string{"/work/app/src/a", "/work/app/src/gone", "/work/app/src/c"}
	d.Build.Resources = []domain.Resource{
		{Directory: "/work/app/res/one"},
		{Directory: "/work/app/res/two", TargetPath: "META-INF", Includes: []string{"*.xml"}},
		{Directory: "/work/app/res/missing"},
	}
	e, _ := newEmitter(t, disk{
		"/work/app/src/a": true, "/work/app/src/c": true,
		"/work/app/res/one": true, "/work/app/res/two": true,
	})

	res, err := e.Emit(d, domain.DefaultSettings())
	require.NoError(t, err)

	compile, _ := res.Script.Target("compile")
	assert.Equal(t, []domain.StepKind{
		domain.StepEnsureDir, domain.StepCompile, domain.StepCopy, domain.StepEnsureDir, domain.StepCopy,
	}, compile.StepKinds())

	javac := compile.Steps[1].(domain.CompileStep)
	require.Len(t, javac.Sources, 2)
	assert.Equal(t, "${build.srcDir.0}", javac.Sources[0].String())
	assert.Equal(t, "${build.srcDir.2}", javac.Sources[1].String())
	assert.Equal(t, "build.classpath", javac.ClasspathRef)
	assert.Empty(t, javac.ExtraClasspath)

	first := compile.Steps[2].(domain.CopyStep)
	assert.Equal(t, "${build.resourceDir.0}", first.FileSets[0].Dir.String())
	assert.Equal(t, "${build.outputDir}", first.ToDir.String())

	second := compile.Steps[4].(domain.CopyStep)
	assert.Equal(t, "${build.resourceDir.1}", second.FileSets[0].Dir.String())
	assert.Equal(t, "${build.outputDir}/META-INF", second.ToDir.String())
	assert.Equal(t, []string{"*.xml"}, second.FileSets[0].Include)
}

func TestEmit_CompilerDefaults(t *testing.T) {
	e, _ := newEmitter(t, disk{"/work/app/src/main/java": true})

	res, err := e.Emit(library("/work/app"), domain.DefaultSettings())
	require.NoError(t, err)

	compile, _ := res.Script.Target("compile")
	javac := compile.Steps[1].(domain.CompileStep)

	want := map[string]string{
		"destdir":     "${build.outputDir}",
		"nowarn":      "false",
		"debug":       "true",
		"optimize":    "false",
		"deprecation": "true",
		"target":      "1.1",
		"verbose":     "false",
		"fork":        "false",
		"source":      "1.3",
	}
	for name, value := range want {
		got, ok := javac.Options.Get(name)
		if assert.True(t, ok, "missing %s", name) {
			assert.Equal(t, value, got.String(), name)
		}
	}
	for _, name := range []string{"includes", "excludes", "encoding", "memoryMaximumSize", "memoryInitialSize"} {
		_, ok := javac.Options.Get(name)
		assert.False(t, ok, "unexpected %s", name)
	}
}

func TestEmit_ConfiguredCompiler(t *testing.T) {
	d := library("/work/app")
	d.Tools = []domain.ToolConfig{{
		Name: options.ToolCompiler, Source: domain.SourceBuild,
		Tree: domain.NewConfigNode("configuration",
			domain.NewConfigLeaf("showWarnings", "false"),
			domain.NewConfigLeaf("meminitial", "128m"),
			domain.NewConfigLeaf("maxmem", "512m"),
			domain.NewConfigLeaf("source", "17"),
			domain.NewConfigNode("includes",
				domain.NewConfigLeaf("include", "**/*.java"),
				domain.NewConfigLeaf("include", "**/*.groovy"),
			),
		),
	}}
	e, _ := newEmitter(t, disk{"/work/app/src/main/java": true})

	res, err := e.Emit(d, domain.DefaultSettings())
	require.NoError(t, err)

	compile, _ := res.Script.Target("compile")
	javac := compile.Steps[1].(domain.CompileStep)

	get := func(name string) string {
		v, _ := javac.Options.Get(name)
		return v.String()
	}
	assert.Equal(t, "true", get("nowarn"))
	assert.Equal(t, "128m", get("memoryInitialSize"))
	assert.Equal(t, "512m", get("memoryMaximumSize"))
	assert.Equal(t, "17", get("source"))
	assert.Equal(t, "**/*.java,**/*.groovy", get("includes"))
}

func TestEmit_CompileTestsUsesMainOutput(t *testing.T) {
	d := library("/work/app")
	d.Build.TestSourceRoots = []string{"/work/app/src/test/java"}
	e, _ := newEmitter(t, disk{"/work/app/src/test/java": true})

	res, err := e.Emit(d, domain.DefaultSettings())
	require.NoError(t, err)

	compileTests, _ := res.Script.Target("compile-tests")
	javac := compileTests.Steps[1].(domain.CompileStep)
	assert.Equal(t, "build.test.classpath", javac.ClasspathRef)
	require.Len(t, javac.ExtraClasspath, 1)
	assert.Equal(t, "${build.outputDir}", javac.ExtraClasspath[0].String())
	assert.Equal(t, "${build.testDir.0}", javac.Sources[0].String())

	testDir, ok := res.Properties.Get("build.testDir.0")
	require.True(t, ok)
	assert.Equal(t, "${base.dir}/src/test/java", testDir)
}

func TestEmit_TestBatches(t *testing.T) {
	d := library("/work/app")
	d.Build.TestSourceRoots = []string{"/work/app/src/test/java"}
	e, _ := newEmitter(t, disk{"/work/app/src/test/java": true})

	res, err := e.Emit(d, domain.DefaultSettings())
	require.NoError(t, err)

	test, _ := res.Script.Target("test")
	assert.Equal(t, []domain.StepKind{domain.StepEnsureDir, domain.StepRunTests}, test.StepKinds())

	run := test.Steps[1].(domain.RunTestsStep)
	require.Len(t, run.Batches, 2)

	all := run.Batches[0]
	assert.Equal(t, "test", all.Unless)
	assert.Equal(t, []string{"**/Test*.java", "**/*Test.java", "**/*TestCase.java"}, all.FileSets[0].Include)
	assert.Equal(t, []string{"**/*Abstract*Test.java"}, all.FileSets[0].Exclude)

	single := run.Batches[1]
	assert.Equal(t, "test", single.If)
	assert.Equal(t, []string{"**/${test}.java"}, single.FileSets[0].Include)
	assert.Equal(t, "${test.reports}", single.ToDir.String())
}

func TestEmit_ConfiguredTestSelectors(t *testing.T) {
	d := library("/work/app")
	d.Build.TestSourceRoots = []string{"/work/app/src/test/java"}
	d.Tools = []domain.ToolConfig{{
		Name: options.ToolSurefire, Source: domain.SourceBuild,
		Tree: domain.NewConfigNode("configuration",
			domain.NewConfigNode("includes", domain.NewConfigLeaf("include", "**/*Spec.java")),
		),
	}}
	e, _ := newEmitter(t, disk{"/work/app/src/test/java": true})

	res, err := e.Emit(d, domain.DefaultSettings())
	require.NoError(t, err)

	test, _ := res.Script.Target("test")
	run := test.Steps[1].(domain.RunTestsStep)
	assert.Equal(t, []string{"**/*Spec.java"}, run.Batches[0].FileSets[0].Include)
	assert.Equal(t, []string{"**/*Abstract*Test.java"}, run.Batches[0].FileSets[0].Exclude)
}

func TestEmit_SetupWithoutMappings(t *testing.T) {
	e, _ := newEmitter(t, disk{})

	res, err := e.Emit(library("/work/app"), domain.DefaultSettings())
	require.NoError(t, err)

	setup, ok := res.Script.Target("setup")
	require.True(t, ok)
	require.Len(t, setup.Steps, 1)
	assert.Equal(t, "Nothing to setup.", setup.Steps[0].(domain.DiagnosticStep).Message)
}

func TestEmit_SetupRestoresMappings(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.FileMappings = []domain.FileMapping{
		{Source: "conf", Destination: "saved/conf", Restorable: true},
		{Source: "web.xml", Destination: "saved", Restorable: true, ConfigFile: true},
		{Source: "app.properties", Destination: "saved/app.properties", Restorable: true},
		{Source: "gone", Destination: "saved/gone", Restorable: true},
		{Source: "ignored", Destination: "saved/ignored"},
	}
	e, _ := newEmitter(t, disk{
		"/work/app/conf": true, "/work/app/ant/saved/conf": true,
		"/work/app/web.xml": false, "/work/app/ant/saved": true,
		"/work/app/app.properties": false, "/work/app/ant/saved/app.properties": false,
	})

	res, err := e.Emit(library("/work/app"), settings)
	require.NoError(t, err)

	setup, _ := res.Script.Target("setup")
	require.Len(t, setup.Steps, 4)

	tree := setup.Steps[0].(domain.CopyStep)
	assert.Equal(t, "${build.dir}/${build.finalName}/conf", tree.ToDir.String())
	assert.Equal(t, "saved/conf", tree.FileSets[0].Dir.String())
	assert.Equal(t, []string{"**"}, tree.FileSets[0].Include)
	assert.False(t, tree.Overwrite)

	into := setup.Steps[1].(domain.CopyStep)
	assert.Equal(t, "saved/web.xml", into.File.String())
	assert.Equal(t, "${build.dir}/${build.finalName}/web.xml", into.ToFile.String())
	assert.True(t, into.Overwrite)

	file := setup.Steps[2].(domain.CopyStep)
	assert.Equal(t, "saved/app.properties", file.File.String())
	assert.True(t, file.Overwrite)

	warning := setup.Steps[3].(domain.DiagnosticStep)
	assert.Contains(t, warning.Message, "gone")
}

func aggregate(base string, modules ...string) *domain.ProjectDescriptor {
	return &domain.ProjectDescriptor{
		Name:      "parent",
		BaseDir:   base,
		Packaging: domain.PackagingAggregate,
		Modules:   modules,
		Build:     domain.BuildLayout{Directory: base + "/target", FinalName: "parent-1.0"},
	}
}

func TestEmit_AggregateForwardsEveryTarget(t *testing.T) {
	d := aggregate("/work/parent", "core", "web")
	e, _ := newEmitter(t, disk{})

	res, err := e.Emit(d, domain.DefaultSettings())
	require.NoError(t, err)
	assert.Nil(t, res.Properties)

	for _, name := range []string{"clean", "compile", "compile-tests", "test", "javadoc", "package"} {
		target, ok := res.Script.Target(name)
		require.True(t, ok, name)
		require.Len(t, target.Steps, 2, name)
		for i, module := range d.Modules {
			step, ok := target.Steps[i].(domain.InvokeModuleStep)
			require.True(t, ok, "%s step %d is %T", name, i, target.Steps[i])
			assert.Equal(t, module, step.Module)
			assert.Equal(t, name, step.Target)
		}
		assert.NotContains(t, target.StepKinds(), domain.StepAssembleArchive)
		assert.NotContains(t, target.StepKinds(), domain.StepCompile)
	}

	_, hasAlias := res.Script.Target("jar")
	assert.False(t, hasAlias)

	names := make([]string, 0, len(res.Script.Properties))
	for _, p := range res.Script.Properties {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"build.finalName", "build.dir"}, names)
	assert.Empty(t, res.Script.Paths)
}

func TestEmit_AggregateSetupCopiesModuleScripts(t *testing.T) {
	e, _ := newEmitter(t, disk{})

	res, err := e.Emit(aggregate("/work/parent", "core"), domain.DefaultSettings())
	require.NoError(t, err)

	setup, _ := res.Script.Target("setup")
	require.Len(t, setup.Steps, 2)

	script := setup.Steps[0].(domain.CopyStep)
	assert.Equal(t, "configFiles/core/build.xml", script.File.String())
	assert.Equal(t, "${build.dir}/${build.finalName}/core/build.xml", script.ToFile.String())

	props := setup.Steps[1].(domain.CopyStep)
	assert.Equal(t, "configFiles/core/build.properties", props.File.String())
}

func TestEmit_JavadocSkippedWithoutSources(t *testing.T) {
	e, _ := newEmitter(t, disk{})

	res, err := e.Emit(library("/work/app"), domain.DefaultSettings())
	require.NoError(t, err)

	javadoc, ok := res.Script.Target("javadoc")
	require.True(t, ok)
	assert.Empty(t, javadoc.Steps)

	compile, _ := res.Script.Target("compile")
	assert.Equal(t, []domain.StepKind{domain.StepEnsureDir}, compile.StepKinds())
}

func TestEmit_JavadocDefaults(t *testing.T) {
	d := library("/work/app")
	d.Build.SourceRoots = []string{"/work/app/src/a", "/work/app/src/b"}
	e, _ := newEmitter(t, disk{"/work/app/src/a": true, "/work/app/src/b": true})

	res, err := e.Emit(d, domain.DefaultSettings())
	require.NoError(t, err)

	javadoc, _ := res.Script.Target("javadoc")
	step := javadoc.Steps[0].(domain.GenerateDocsStep)

	get := func(name string) string {
		v, _ := step.Options.Get(name)
		return v.String()
	}
	assert.Equal(t, "${build.srcDir.0}:${build.srcDir.1}", get("sourcepath"))
	assert.Equal(t, "*", get("packagenames"))
	assert.Equal(t, "${javadoc.dir}", get("destdir"))
	assert.Equal(t, "protected", get("access"))
	assert.Equal(t, "ISO-8859-1", get("charset"))
	assert.Equal(t, "true", get("author"))
	assert.Empty(t, step.Texts)
	assert.Nil(t, step.Doclet)
}

func TestEmit_JavadocConfigured(t *testing.T) {
	d := library("/work/app")
	d.Tools = []domain.ToolConfig{{
		Name: options.ToolJavadoc, Source: domain.SourceReporting,
		Tree: domain.NewConfigNode("configuration",
			domain.NewConfigLeaf("doctitle", "<h1>App</h1>"),
			domain.NewConfigNode("links", domain.NewConfigLeaf("link", "https://docs.example.com/api")),
			domain.NewConfigNode("groups",
				domain.NewConfigNode("group",
					domain.NewConfigLeaf("title", "Core"),
					domain.NewConfigLeaf("packages", "app.core*"),
				),
			),
			domain.NewConfigLeaf("doclet", "app.Doclet"),
			domain.NewConfigNode("docletArtifact",
				domain.NewConfigLeaf("groupId", "org.app"),
				domain.NewConfigLeaf("artifactId", "doclet"),
				domain.NewConfigLeaf("version", "2.0"),
			),
		),
	}}
	e, repos := newEmitter(t, disk{"/work/app/src/main/java": true})

	repo := mocks.NewMockArtifactResolver(gomock.NewController(t))
	repos.EXPECT().Open("/home/dev/.m2/repository").Return(repo)
	repo.EXPECT().ResolveAbsolutePath("org.app", "doclet", "2.0").
		Return("/home/dev/.m2/repository/org/app/doclet/2.0/doclet-2.0.jar", nil)
	repo.EXPECT().BaseDir().Return("/home/dev/.m2/repository")

	settings := domain.DefaultSettings()
	settings.LocalRepository = "/home/dev/.m2/repository"
	res, err := e.Emit(d, settings)
	require.NoError(t, err)

	javadoc, _ := res.Script.Target("javadoc")
	step := javadoc.Steps[0].(domain.GenerateDocsStep)

	assert.Equal(t, []domain.DocText{{Name: "doctitle", Text: "<h1>App</h1>"}}, step.Texts)
	assert.Equal(t, []domain.DocLink{{Href: "https://docs.example.com/api"}}, step.Links)
	assert.Equal(t, []domain.DocGroup{{Title: "Core", Packages: "app.core*"}}, step.Groups)
	require.NotNil(t, step.Doclet)
	assert.Equal(t, "app.Doclet", step.Doclet.Name)
	assert.Equal(t, "${maven.repo.local}/org/app/doclet/2.0/doclet-2.0.jar", step.Doclet.Path.String())
}

func TestEmit_JavadocArtifactFailure(t *testing.T) {
	d := library("/work/app")
	d.Tools = []domain.ToolConfig{{
		Name: options.ToolJavadoc, Source: domain.SourceBuild,
		Tree: domain.NewConfigNode("configuration",
			domain.NewConfigLeaf("taglet", "app.Taglet"),
			domain.NewConfigNode("tagletArtifact",
				domain.NewConfigLeaf("groupId", "org.app"),
				domain.NewConfigLeaf("artifactId", "taglet"),
				domain.NewConfigLeaf("version", "1.0"),
			),
		),
	}}
	e, repos := newEmitter(t, disk{"/work/app/src/main/java": true})

	repo := mocks.NewMockArtifactResolver(gomock.NewController(t))
	repos.EXPECT().Open(gomock.Any()).Return(repo)
	repo.EXPECT().ResolveAbsolutePath("org.app", "taglet", "1.0").
		Return("", zerr.With(domain.ErrArtifactNotFound, "coordinate", "org.app:taglet:1.0"))

	_, err := e.Emit(d, domain.DefaultSettings())
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrArtifactNotFound.Error())
	meta := metadata(err)
	assert.Equal(t, "org.app:taglet:1.0", meta["coordinate"])
	assert.Equal(t, "app.Taglet", meta["taglet"])
	assert.Equal(t, options.ToolJavadoc, meta["tool"])
	assert.Equal(t, "app", meta["module"])
}

func TestEmit_ChildModuleIndirection(t *testing.T) {
	d := library("/work/parent/core")
	d.Parent = &domain.ParentRef{Name: "parent", FinalName: "parent-1.0", BaseDir: "/work/parent"}
	e, _ := newEmitter(t, disk{})

	res, err := e.Emit(d, domain.DefaultSettings())
	require.NoError(t, err)

	get := func(key string) string {
		v, _ := res.Properties.Get(key)
		return v
	}
	assert.Equal(t, "../../../", get("parent.dir"))
	assert.Equal(t, "/core", get("build.module.dir"))
	assert.Equal(t, "parent-1.0", get("build.parentName"))
	assert.Equal(t, "${parent.dir}webapp/WEB-INF/lib${build.module.dir}", get("build.classpath.dir"))
	assert.Equal(t, "${parent.dir}javadocs${build.module.dir}/test-reports", get("test.reports"))
	assert.Equal(t, "${parent.dir}${build.module.dir}/site", get("reporting.outputDirectory"))
}

func TestEmit_PropertyFileOrderAndOverrides(t *testing.T) {
	d := library("/work/app")
	d.Properties = map[string]string{"zeta": "z", "alpha": "a", "shared": "descriptor"}
	settings := domain.DefaultSettings()
	settings.ExecutionProperties = map[string]string{"shared": "cli", "beta": "b"}
	e, _ := newEmitter(t, disk{})

	res, err := e.Emit(d, settings)
	require.NoError(t, err)

	keys := res.Properties.Keys()
	tail := keys[len(keys)-4:]
	assert.Equal(t, []string{"alpha", "shared", "zeta", "beta"}, tail)

	shared, _ := res.Properties.Get("shared")
	assert.Equal(t, "cli", shared)
	offline, _ := res.Properties.Get("settings.offline")
	assert.Equal(t, "false", offline)
	interactive, _ := res.Properties.Get("settings.interactiveMode")
	assert.Equal(t, "true", interactive)
}

func TestEmit_SystemDependenciesJoinClasspaths(t *testing.T) {
	d := library("/work/app")
	d.Dependencies = []domain.Dependency{
		{GroupID: "com.sun", ArtifactID: "tools", Version: "1.8", Scope: "system", SystemPath: "/work/app/lib/tools.jar"},
		{GroupID: "junit", ArtifactID: "junit", Version: "4.13", Scope: "test"},
	}
	e, _ := newEmitter(t, disk{})

	res, err := e.Emit(d, domain.DefaultSettings())
	require.NoError(t, err)

	require.Len(t, res.Script.Paths, 2)
	assert.Equal(t, "build.classpath", res.Script.Paths[0].ID)
	assert.Equal(t, "build.test.classpath", res.Script.Paths[1].ID)
	for _, p := range res.Script.Paths {
		assert.Equal(t, "${build.classpath.dir}", p.FileSets[0].Dir.String())
		assert.Equal(t, []string{"*.jar"}, p.FileSets[0].Include)
		require.Len(t, p.Elements, 1)
		assert.Equal(t, "lib/tools.jar", p.Elements[0].String())
	}
}

func TestEmit_Reproducible(t *testing.T) {
	fs := disk{"/work/app/src/main/java": true, "/work/app/src/main/resources": true}
	d := library("/work/app")
	d.Properties = map[string]string{"b": "2", "a": "1", "c": "3"}

	e, _ := newEmitter(t, fs)
	first, err := e.Emit(d, domain.DefaultSettings())
	require.NoError(t, err)
	second, err := e.Emit(d, domain.DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, first.Script.TargetNames(), second.Script.TargetNames())
	assert.Equal(t, first.Script.Properties, second.Script.Properties)
	assert.Equal(t, first.Properties.Entries(), second.Properties.Entries())
	for target := range first.Script.Targets() {
		other, ok := second.Script.Target(target.Name.String())
		require.True(t, ok)
		assert.Equal(t, target.Steps, other.Steps)
	}
}

func TestEmit_OtherPackagingDiagnostic(t *testing.T) {
	d := library("/work/app")
	d.Packaging = domain.PackagingOther
	d.PackagingName = "rar"
	e, _ := newEmitter(t, disk{})

	res, err := e.Emit(d, domain.DefaultSettings())
	require.NoError(t, err)

	pkg, _ := res.Script.Target("package")
	assert.Equal(t, []domain.StepKind{domain.StepDiagnostic}, pkg.StepKinds())
	_, hasAlias := res.Script.Target("rar")
	assert.False(t, hasAlias)
}

func TestEmit_MalformedToolConfigurationAborts(t *testing.T) {
	d := library("/work/app")
	raw := "<configuration><source>1.8</configuration>"
	d.Tools = []domain.ToolConfig{{Name: options.ToolCompiler, Source: domain.SourceBuild, Raw: raw}}

	ctrl := gomock.NewController(t)
	parser := mocks.NewMockConfigParser(ctrl)
	parser.EXPECT().Parse(raw).
		Return(nil, zerr.Wrap(domain.ErrConfigParse, "element <source> closed by </configuration>")).
		MinTimes(1)
	repos := mocks.NewMockRepositoryOpener(ctrl)
	fs := disk{"/work/app/src/main/java": true}
	e := emitter.New(options.NewResolver(parser), fs.probe(ctrl), repos, logger.NewNop())

	res, err := e.Emit(d, domain.DefaultSettings())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorContains(t, err, domain.ErrConfigParse.Error())
	meta := metadata(err)
	assert.Equal(t, options.ToolCompiler, meta["tool"])
	assert.Equal(t, "app", meta["module"])
}
