package emitter

import (
	"strings"

	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/prosa/internal/engine/layout"
	"go.trai.ch/prosa/internal/engine/options"
	"go.trai.ch/zerr"
)

// docOptions maps documentation attributes to their tool option and default.
var docOptions = []struct {
	attr, option, def string
}{
	{"extdirs", "extdirs", ""},
	{"overview", "overview", ""},
	{"access", "show", "protected"},
	{"old", "old", "false"},
	{"verbose", "verbose", "false"},
	{"locale", "locale", ""},
	{"encoding", "encoding", ""},
	{"version", "version", "true"},
	{"use", "use", "true"},
	{"author", "author", "true"},
	{"splitindex", "splitindex", "false"},
	{"windowtitle", "windowtitle", ""},
	{"nodeprecated", "nodeprecated", "false"},
	{"nodeprecatedlist", "nodeprecatedlist", "false"},
	{"notree", "notree", "false"},
	{"noindex", "noindex", "false"},
	{"nohelp", "nohelp", "false"},
	{"nonavbar", "nonavbar", "false"},
	{"serialwarn", "serialwarn", "false"},
	{"helpfile", "helpfile", ""},
	{"stylesheetfile", "stylesheetfile", ""},
	{"charset", "charset", "ISO-8859-1"},
	{"docencoding", "docencoding", ""},
	{"excludepackagenames", "excludepackagenames", ""},
	{"source", "source", ""},
	{"linksource", "linksource", "false"},
	{"breakiterator", "breakiterator", "false"},
	{"noqualifier", "noqualifier", ""},
	{"maxmemory", "maxmemory", ""},
	{"additionalparam", "additionalparam", ""},
}

var docTexts = []string{"doctitle", "header", "footer", "bottom"}

func (g *generation) javadocTarget() ([]*domain.Target, error) {
	t := domain.NewTarget("javadoc")
	t.Description = "Generates the Javadoc of the application"
	t.Comment = "Javadoc target"
	if g.d.IsAggregate() {
		return []*domain.Target{g.forward(t)}, nil
	}

	sources := g.existing(g.d.Build.SourceRoots, layout.PropSrcDir)
	if len(sources) == 0 {
		return []*domain.Target{t}, nil
	}

	step, err := g.docsStep(sources)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve documentation options"), "tool", options.ToolJavadoc)
	}
	t.Add(step)
	return []*domain.Target{t}, nil
}

func (g *generation) docsStep(sources []domain.Expr) (domain.GenerateDocsStep, error) {
	opts := g.resolver.Tool(g.d, options.ToolJavadoc)
	var step domain.GenerateDocsStep

	if sourcepath := opts.Text("sourcepath", ""); sourcepath != "" {
		step.Options.AddText("sourcepath", sourcepath)
	} else {
		var joined domain.Expr
		for i, src := range sources {
			if i > 0 {
				joined = joined.Append(":")
			}
			joined = domain.Concat(joined, src)
		}
		step.Options.Add("sourcepath", joined)
		step.Options.AddText("packagenames", "*")
	}

	if destdir := opts.Text("destDir", ""); destdir != "" {
		step.Options.AddText("destdir", destdir)
	} else {
		step.Options.Add("destdir", domain.Ref(layout.PropJavadocDir))
	}
	for _, o := range docOptions {
		step.Options.AddText(o.attr, opts.Text(o.option, o.def))
	}

	for _, name := range docTexts {
		if text := opts.Text(name, ""); text != "" {
			step.Texts = append(step.Texts, domain.DocText{Name: name, Text: text})
		}
	}

	for _, link := range opts.List("links") {
		for _, href := range link.Values() {
			step.Links = append(step.Links, domain.DocLink{Href: href})
		}
	}
	for _, link := range opts.List("offlineLinks") {
		step.Links = append(step.Links, domain.DocLink{
			Href:     link.Lookup("url"),
			Offline:  true,
			Location: link.Lookup("location"),
		})
	}
	for _, group := range opts.List("groups") {
		packages := group.Lookup("packages")
		if packages == "" {
			packages = group.Lookup("package")
		}
		step.Groups = append(step.Groups, domain.DocGroup{Title: group.Lookup("title"), Packages: packages})
	}
	for _, tag := range opts.List("tags") {
		step.Tags = append(step.Tags, domain.DocTag{
			Name:        tag.Lookup("name"),
			Scope:       tag.Lookup("placement"),
			Description: tag.Lookup("head"),
		})
	}

	doclet, err := g.docExtension(opts, "doclet")
	if err != nil {
		return step, err
	}
	taglet, err := g.docExtension(opts, "taglet")
	if err != nil {
		return step, err
	}
	step.Doclet, step.Taglet = doclet, taglet
	return step, opts.Err()
}

// docExtension reads a doclet or taglet. Its path is either given literally or
// resolved from the <kind>Artifact coordinates, relative to the local repository.
func (g *generation) docExtension(opts *options.Reader, kind string) (*domain.DocExtension, error) {
	name := opts.Text(kind, "")
	if name == "" {
		return nil, nil
	}
	ext := &domain.DocExtension{Name: name}
	if p := opts.Text(kind+"path", ""); p != "" {
		ext.Path = domain.Lit(p)
		return ext, nil
	}

	artifact, ok := opts.Record(kind + "Artifact")
	if !ok {
		return ext, nil
	}
	dep := domain.Dependency{
		GroupID:    artifact.Lookup("groupId"),
		ArtifactID: artifact.Lookup("artifactId"),
		Version:    artifact.Lookup("version"),
	}
	repo := g.repos.Open(g.settings.LocalRepository)
	abs, err := repo.ResolveAbsolutePath(dep.GroupID, dep.ArtifactID, dep.Version)
	if err != nil {
		return nil, zerr.With(err, kind, name)
	}
	ext.Path = repositoryRelative(repo.BaseDir(), abs)
	return ext, nil
}

func repositoryRelative(base, abs string) domain.Expr {
	rest, ok := strings.CutPrefix(abs, base)
	if !ok || base == "" {
		return domain.Lit(abs)
	}
	return domain.Ref(layout.PropLocalRepository).Append(rest)
}
