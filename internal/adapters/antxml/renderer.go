// Package antxml renders build scripts as Ant project documents.
package antxml

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	indentSize   = 2
	commentWidth = 80
)

// errUnsupportedStep is returned for step types the renderer has no element for.
var errUnsupportedStep = zerr.New("unsupported step")

// Renderer implements ports.ScriptRenderer using etree.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderScript serializes the script. Output is stable for equal scripts.
func (r *Renderer) RenderScript(s *domain.Script) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	if s.Header != "" {
		boxComment(&doc.Element, s.Header)
	}

	project := doc.CreateElement("project")
	project.CreateAttr("name", s.Name)
	project.CreateAttr("default", s.Default)
	project.CreateAttr("basedir", s.BaseDir)

	writeProperties(project, s.Properties)
	writePaths(project, s.Paths)

	for t := range s.Targets() {
		if err := writeTarget(project, t); err != nil {
			return nil, zerr.With(err, "target", t.Name.String())
		}
	}

	doc.Indent(indentSize)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to serialize build script")
	}
	return out, nil
}

// boxComment writes text framed by two rules of '=' the way section headers are marked.
func boxComment(parent *etree.Element, text string) {
	width := commentWidth - len("<!--  -->")
	rule := strings.Repeat("=", width)
	parent.CreateComment(" " + rule + " ")
	if pad := width - len(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	parent.CreateComment(" " + text + " ")
	parent.CreateComment(" " + rule + " ")
}

func attr(el *etree.Element, name string, value domain.Expr) {
	if !value.IsZero() {
		el.CreateAttr(name, value.String())
	}
}

func textAttr(el *etree.Element, name, value string) {
	if value != "" {
		el.CreateAttr(name, value)
	}
}

func attrs(el *etree.Element, list domain.Attrs) {
	for _, a := range list {
		attr(el, a.Name, a.Value)
	}
}

func writeProperties(project *etree.Element, decls []domain.PropertyDecl) {
	for _, p := range decls {
		if p.Comment != "" {
			boxComment(project, p.Comment)
		}
		el := project.CreateElement("property")
		if p.File != "" {
			el.CreateAttr("file", p.File)
			continue
		}
		el.CreateAttr("name", p.Name)
		el.CreateAttr("value", p.Value.String())
	}
}

func writePaths(project *etree.Element, paths []domain.PathDef) {
	if len(paths) == 0 {
		return
	}
	boxComment(project, "Defining classpaths")
	for _, p := range paths {
		el := project.CreateElement("path")
		el.CreateAttr("id", p.ID)
		for _, fs := range p.FileSets {
			writeFileSet(el, "fileset", fs)
		}
		for _, loc := range p.Elements {
			el.CreateElement("pathelement").CreateAttr("location", loc.String())
		}
	}
}

func writeFileSet(parent *etree.Element, tag string, fs domain.FileSet) {
	el := parent.CreateElement(tag)
	attr(el, "dir", fs.Dir)
	textAttr(el, "includes", fs.IncludePattern)
	textAttr(el, "excludes", fs.ExcludePattern)
	for _, name := range fs.Include {
		el.CreateElement("include").CreateAttr("name", name)
	}
	for _, name := range fs.Exclude {
		el.CreateElement("exclude").CreateAttr("name", name)
	}
}

func writeTarget(project *etree.Element, t *domain.Target) error {
	if t.Comment != "" {
		boxComment(project, t.Comment)
	}
	el := project.CreateElement("target")
	el.CreateAttr("name", t.Name.String())
	if len(t.Depends) > 0 {
		names := make([]string, len(t.Depends))
		for i, d := range t.Depends {
			names[i] = d.String()
		}
		el.CreateAttr("depends", strings.Join(names, ", "))
	}
	textAttr(el, "if", t.If)
	textAttr(el, "unless", t.Unless)
	textAttr(el, "description", t.Description)

	for _, step := range t.Steps {
		if err := writeStep(el, step); err != nil {
			return err
		}
	}
	return nil
}

func writeStep(target *etree.Element, step domain.Step) error {
	switch s := step.(type) {
	case domain.EnsureDirStep:
		attr(target.CreateElement("mkdir"), "dir", s.Dir)
	case domain.DeleteStep:
		attr(target.CreateElement("delete"), "dir", s.Dir)
	case domain.CopyStep:
		writeCopy(target, s)
	case domain.CompileStep:
		writeCompile(target, s)
	case domain.InvokeModuleStep:
		el := target.CreateElement("ant")
		el.CreateAttr("antfile", s.ScriptFile)
		attr(el, "dir", s.Dir)
		el.CreateAttr("target", s.Target)
	case domain.ArchiveStep:
		writeArchive(target, s)
	case domain.DiagnosticStep:
		target.CreateElement("echo").SetText(s.Message)
	case domain.RunTestsStep:
		writeTests(target, s)
	case domain.GenerateDocsStep:
		writeDocs(target, s)
	case domain.ProbeStep:
		el := target.CreateElement("available")
		el.CreateAttr("classname", s.ClassName)
		el.CreateAttr("property", s.Property)
	case domain.ConditionStep:
		writeCondition(target, s)
	default:
		return zerr.With(errUnsupportedStep, "step", fmt.Sprintf("%T", step))
	}
	return nil
}

func writeCopy(target *etree.Element, s domain.CopyStep) {
	el := target.CreateElement("copy")
	attr(el, "todir", s.ToDir)
	attr(el, "file", s.File)
	attr(el, "tofile", s.ToFile)
	if s.Overwrite {
		el.CreateAttr("overwrite", "true")
	}
	for _, fs := range s.FileSets {
		writeFileSet(el, "fileset", fs)
	}
}

func writeClasspath(parent *etree.Element, ref string, extra []domain.Expr) {
	cp := parent.CreateElement("classpath")
	if len(extra) == 0 {
		cp.CreateAttr("refid", ref)
		return
	}
	cp.CreateElement("path").CreateAttr("refid", ref)
	for _, loc := range extra {
		attr(cp.CreateElement("pathelement"), "location", loc)
	}
}

func writeCompile(target *etree.Element, s domain.CompileStep) {
	el := target.CreateElement("javac")
	if _, ok := s.Options.Get("destdir"); !ok {
		attr(el, "destdir", s.DestDir)
	}
	attrs(el, s.Options)
	for _, src := range s.Sources {
		attr(el.CreateElement("src").CreateElement("pathelement"), "location", src)
	}
	writeClasspath(el, s.ClasspathRef, s.ExtraClasspath)
}

func writeArchive(target *etree.Element, s domain.ArchiveStep) {
	el := target.CreateElement(s.Format)
	attr(el, "destfile", s.DestFile)
	attrs(el, s.Options)
	if len(s.Manifest) > 0 {
		manifest := el.CreateElement("manifest")
		for _, a := range s.Manifest {
			entry := manifest.CreateElement("attribute")
			entry.CreateAttr("name", a.Name)
			attr(entry, "value", a.Value)
		}
	}
	for _, dir := range s.LibDirs {
		attr(el.CreateElement("lib"), "dir", dir)
	}
	for _, dir := range s.ClassesDirs {
		attr(el.CreateElement("classes"), "dir", dir)
	}
	for _, fs := range s.FileSets {
		writeFileSet(el, "fileset", fs)
	}
}

func writeTests(target *etree.Element, s domain.RunTestsStep) {
	el := target.CreateElement("junit")
	attrs(el, s.Options)
	for _, p := range s.SysProperties {
		prop := el.CreateElement("sysproperty")
		prop.CreateAttr("key", p.Name)
		attr(prop, "value", p.Value)
	}
	for _, f := range s.Formatters {
		formatter := el.CreateElement("formatter")
		formatter.CreateAttr("type", f.Type)
		if !f.UseFile {
			formatter.CreateAttr("usefile", "false")
		}
	}
	writeClasspath(el, s.ClasspathRef, s.ClassDirs)
	for _, b := range s.Batches {
		batch := el.CreateElement("batchtest")
		attr(batch, "todir", b.ToDir)
		textAttr(batch, "if", b.If)
		textAttr(batch, "unless", b.Unless)
		for _, fs := range b.FileSets {
			writeFileSet(batch, "fileset", fs)
		}
	}
}

func writeDocs(target *etree.Element, s domain.GenerateDocsStep) {
	el := target.CreateElement("javadoc")
	attrs(el, s.Options)
	for _, text := range s.Texts {
		el.CreateElement(text.Name).CreateCData(text.Text)
	}
	for _, link := range s.Links {
		l := el.CreateElement("link")
		l.CreateAttr("href", link.Href)
		if link.Offline {
			l.CreateAttr("offline", "true")
		}
		textAttr(l, "packagelistloc", link.Location)
	}
	for _, g := range s.Groups {
		group := el.CreateElement("group")
		group.CreateAttr("title", g.Title)
		textAttr(group, "packages", g.Packages)
	}
	for _, ext := range []struct {
		tag string
		ext *domain.DocExtension
	}{{"doclet", s.Doclet}, {"taglet", s.Taglet}} {
		if ext.ext == nil {
			continue
		}
		e := el.CreateElement(ext.tag)
		e.CreateAttr("name", ext.ext.Name)
		attr(e, "path", ext.ext.Path)
	}
	for _, tag := range s.Tags {
		t := el.CreateElement("tag")
		t.CreateAttr("name", tag.Name)
		textAttr(t, "scope", tag.Scope)
		textAttr(t, "description", tag.Description)
	}
}

func writeCondition(target *etree.Element, s domain.ConditionStep) {
	el := target.CreateElement("condition")
	el.CreateAttr("property", s.Property)
	op := el.CreateElement(s.Operator)
	for _, term := range s.Terms {
		name := "isfalse"
		if term.IsTrue {
			name = "istrue"
		}
		attr(op.CreateElement(name), "value", term.Value)
	}
}
