package antxml_test

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prosa/internal/adapters/antxml"
	"go.trai.ch/prosa/internal/core/domain"
)

func sampleScript(t *testing.T) *domain.Script {
	t.Helper()
	s := domain.NewScript("app")
	s.Properties = []domain.PropertyDecl{
		{Comment: "Build environment properties", Name: "build.finalName", Value: domain.Lit("app-1.0")},
		{Name: "build.dir", Value: domain.Lit("build")},
		{File: "build.properties"},
		{Name: "build.outputDir", Value: domain.Ref("base.dir").Append("/target/classes")},
	}
	s.Paths = []domain.PathDef{{
		ID:       "build.classpath",
		FileSets: []domain.FileSet{{Dir: domain.Ref("build.classpath.dir"), Include: []string{"*.jar"}}},
		Elements: []domain.Expr{domain.Lit("lib/tools.jar")},
	}}

	clean := domain.NewTarget("clean").Add(domain.DeleteStep{Dir: domain.Ref("build.dir")})
	clean.Comment = "Cleaning up target"
	clean.Description = "Clean the output directory"

	var opts domain.Attrs
	opts.Add("destdir", domain.Ref("build.outputDir"))
	opts.AddText("debug", "true")
	compile := domain.NewTarget("compile").Add(
		domain.EnsureDirStep{Dir: domain.Ref("build.outputDir")},
		domain.CompileStep{
			DestDir:        domain.Ref("build.outputDir"),
			Options:        opts,
			Sources:        []domain.Expr{domain.Ref("build.srcDir.0")},
			ClasspathRef:   "build.classpath",
			ExtraClasspath: []domain.Expr{domain.Ref("build.outputDir")},
		},
	)

	var docOpts domain.Attrs
	docOpts.AddText("access", "protected")
	javadoc := domain.NewTarget("javadoc").Add(domain.GenerateDocsStep{
		Options: docOpts,
		Texts:   []domain.DocText{{Name: "bottom", Text: "<b>Copyright & co</b>"}},
		Links:   []domain.DocLink{{Href: "https://example.com/api", Offline: true, Location: "lists"}},
	})

	gate := domain.NewTarget("test-junit-status", "compile").Add(domain.ConditionStep{
		Property: "junit.skipped",
		Operator: "or",
		Terms: []domain.ConditionTerm{
			{Value: domain.Ref("junit.present")},
			{IsTrue: true, Value: domain.Ref("test.skip")},
		},
	})
	gate.Unless = "test.skip"

	for _, target := range []*domain.Target{clean, compile, javadoc, gate} {
		require.NoError(t, s.AddTarget(target))
	}
	return s
}

func render(t *testing.T, s *domain.Script) (*etree.Element, string) {
	t.Helper()
	out, err := antxml.NewRenderer().RenderScript(s)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	return doc.Root(), string(out)
}

func TestRenderScript_Project(t *testing.T) {
	root, out := render(t, sampleScript(t))

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, domain.ScriptHeader)
	assert.Contains(t, out, "Build environment properties")

	assert.Equal(t, "project", root.Tag)
	assert.Equal(t, "app", root.SelectAttrValue("name", ""))
	assert.Equal(t, "package", root.SelectAttrValue("default", ""))
	assert.Equal(t, ".", root.SelectAttrValue("basedir", ""))
}

func TestRenderScript_PropertiesAndPaths(t *testing.T) {
	root, _ := render(t, sampleScript(t))

	props := root.SelectElements("property")
	require.Len(t, props, 4)
	assert.Equal(t, "build.finalName", props[0].SelectAttrValue("name", ""))
	assert.Equal(t, "app-1.0", props[0].SelectAttrValue("value", ""))
	assert.Equal(t, "build.properties", props[2].SelectAttrValue("file", ""))
	assert.Nil(t, props[2].SelectAttr("name"))
	assert.Equal(t, "${base.dir}/target/classes", props[3].SelectAttrValue("value", ""))

	path := root.SelectElement("path")
	require.NotNil(t, path)
	assert.Equal(t, "build.classpath", path.SelectAttrValue("id", ""))
	fileset := path.SelectElement("fileset")
	assert.Equal(t, "${build.classpath.dir}", fileset.SelectAttrValue("dir", ""))
	assert.Equal(t, "*.jar", fileset.SelectElement("include").SelectAttrValue("name", ""))
	assert.Equal(t, "lib/tools.jar", path.SelectElement("pathelement").SelectAttrValue("location", ""))
}

func TestRenderScript_TargetsInOrder(t *testing.T) {
	root, _ := render(t, sampleScript(t))

	targets := root.SelectElements("target")
	names := make([]string, len(targets))
	for i, el := range targets {
		names[i] = el.SelectAttrValue("name", "")
	}
	assert.Equal(t, []string{"clean", "compile", "javadoc", "test-junit-status"}, names)

	assert.Equal(t, "Clean the output directory", targets[0].SelectAttrValue("description", ""))
	assert.Equal(t, "${build.dir}", targets[0].SelectElement("delete").SelectAttrValue("dir", ""))
	assert.Equal(t, "compile", targets[3].SelectAttrValue("depends", ""))
	assert.Equal(t, "test.skip", targets[3].SelectAttrValue("unless", ""))
}

func TestRenderScript_Compile(t *testing.T) {
	root, _ := render(t, sampleScript(t))

	javac := root.FindElement("./target[@name='compile']/javac")
	require.NotNil(t, javac)
	assert.Equal(t, "${build.outputDir}", javac.SelectAttrValue("destdir", ""))
	assert.Equal(t, "true", javac.SelectAttrValue("debug", ""))

	src := javac.FindElement("./src/pathelement")
	require.NotNil(t, src)
	assert.Equal(t, "${build.srcDir.0}", src.SelectAttrValue("location", ""))

	classpath := javac.SelectElement("classpath")
	assert.Nil(t, classpath.SelectAttr("refid"))
	assert.Equal(t, "build.classpath", classpath.SelectElement("path").SelectAttrValue("refid", ""))
	assert.Equal(t, "${build.outputDir}", classpath.SelectElement("pathelement").SelectAttrValue("location", ""))
}

func TestRenderScript_DocsUseCData(t *testing.T) {
	root, out := render(t, sampleScript(t))

	assert.Contains(t, out, "<![CDATA[<b>Copyright & co</b>]]>")

	javadoc := root.FindElement("./target[@name='javadoc']/javadoc")
	require.NotNil(t, javadoc)
	assert.Equal(t, "<b>Copyright & co</b>", javadoc.SelectElement("bottom").Text())

	link := javadoc.SelectElement("link")
	assert.Equal(t, "https://example.com/api", link.SelectAttrValue("href", ""))
	assert.Equal(t, "true", link.SelectAttrValue("offline", ""))
	assert.Equal(t, "lists", link.SelectAttrValue("packagelistloc", ""))
}

func TestRenderScript_Condition(t *testing.T) {
	root, _ := render(t, sampleScript(t))

	condition := root.FindElement("./target[@name='test-junit-status']/condition")
	require.NotNil(t, condition)
	assert.Equal(t, "junit.skipped", condition.SelectAttrValue("property", ""))

	or := condition.SelectElement("or")
	require.NotNil(t, or)
	terms := or.ChildElements()
	require.Len(t, terms, 2)
	assert.Equal(t, "isfalse", terms[0].Tag)
	assert.Equal(t, "${junit.present}", terms[0].SelectAttrValue("value", ""))
	assert.Equal(t, "istrue", terms[1].Tag)
}

func TestRenderScript_ModuleInvocation(t *testing.T) {
	s := domain.NewScript("parent")
	require.NoError(t, s.AddTarget(domain.NewTarget("package").Add(domain.InvokeModuleStep{
		Module:     "core",
		ScriptFile: "build.xml",
		Dir:        domain.Ref("build.dir").Append("/core"),
		Target:     "package",
	})))

	root, _ := render(t, s)
	ant := root.FindElement("./target/ant")
	require.NotNil(t, ant)
	assert.Equal(t, "build.xml", ant.SelectAttrValue("antfile", ""))
	assert.Equal(t, "${build.dir}/core", ant.SelectAttrValue("dir", ""))
	assert.Equal(t, "package", ant.SelectAttrValue("target", ""))
	assert.Nil(t, root.SelectElement("path"))
}

func TestRenderScript_Stable(t *testing.T) {
	r := antxml.NewRenderer()
	first, err := r.RenderScript(sampleScript(t))
	require.NoError(t, err)
	second, err := r.RenderScript(sampleScript(t))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

type unknownStep struct{}

func (unknownStep) Kind() domain.StepKind { return domain.StepKind(-1) }

func TestRenderScript_UnsupportedStep(t *testing.T) {
	s := domain.NewScript("app")
	require.NoError(t, s.AddTarget(domain.NewTarget("odd").Add(unknownStep{})))

	_, err := antxml.NewRenderer().RenderScript(s)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported step")
}
