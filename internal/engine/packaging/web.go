package packaging

import (
	"path"
	"strings"

	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/prosa/internal/engine/layout"
	"go.trai.ch/prosa/internal/engine/options"
)

const (
	webDescriptorPath   = "WEB-INF/web.xml"
	scriptBaseDirPrefix = "${" + layout.PropScriptBaseDir + "}/"
)

type webArchive struct{}

func (webArchive) Kind() domain.Packaging { return domain.PackagingWebArchive }

func (w webArchive) Package(in Input) (*domain.Target, *domain.Target, error) {
	opts := in.Resolver.Tool(in.Descriptor, options.ToolWar)
	webappDir := domain.Ref(layout.PropBaseDir).Append("/" + strings.Trim(path.Clean(in.Settings.WebappDirectory), "/"))

	webXML := webappDir.Append("/" + webDescriptorPath)
	overridden := false
	if configured := opts.Text("webXml", ""); configured != "" {
		webXML = domain.Lit(strings.TrimPrefix(configured, scriptBaseDirPrefix))
		overridden = true
	}
	needDescriptor := opts.Text("failOnMissingWebXml", "true")

	war := domain.ArchiveStep{Format: "war", DestFile: distFile("war")}
	war.Options.AddText("compress", opts.Text("archive//compress", "true"))
	war.Options.AddText("needxmlfile", needDescriptor)
	if needDescriptor == "true" {
		war.Options.Add("webxml", webXML)
	}
	war.Options.AddText("manifest", opts.Text("manifestFile", ""))
	if err := opts.Err(); err != nil {
		return nil, nil, wrapOptionsErr(err, options.ToolWar)
	}

	war.LibDirs = []domain.Expr{domain.Ref(layout.PropClasspathDir)}
	war.ClassesDirs = []domain.Expr{domain.Ref(layout.PropOutputDir)}
	content := domain.FileSet{Dir: webappDir}
	if needDescriptor == "true" && !overridden {
		content.ExcludePattern = webDescriptorPath
	}
	war.FileSets = []domain.FileSet{content}

	t := newPackageTarget()
	t.Add(war)
	return t, aliasTarget(w.Kind()), nil
}
