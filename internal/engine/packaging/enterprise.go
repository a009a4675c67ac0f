package packaging

import (
	"path"
	"strings"

	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/prosa/internal/engine/layout"
	"go.trai.ch/prosa/internal/engine/options"
)

const defaultEarSourceDirectory = "src/main/application"

type enterpriseArchive struct{}

func (enterpriseArchive) Kind() domain.Packaging { return domain.PackagingEnterpriseArchive }

func (e enterpriseArchive) Package(in Input) (*domain.Target, *domain.Target, error) {
	opts := in.Resolver.Tool(in.Descriptor, options.ToolEar)
	outputDir := domain.Ref(layout.PropOutputDir)
	modulesDir := domain.Ref(layout.PropParentDir).Append(layout.DistDirName)

	sourceDir := opts.Text("earSourceDirectory", defaultEarSourceDirectory)
	sourceDir = strings.Trim(path.Clean(layout.Relativize(in.Descriptor.BaseDir, sourceDir)), "/")
	appDir := domain.Ref(layout.PropBaseDir).Append("/" + sourceDir)

	ear := domain.ArchiveStep{Format: "ear", DestFile: distFile("ear")}
	ear.Options.Add("basedir", outputDir)
	ear.Options.AddText("compress", opts.Text("archive//compress", "true"))
	ear.Options.AddText("includes", opts.Text("includes", ""))
	ear.Options.AddText("excludes", opts.Text("excludes", ""))
	if appXML := opts.Text("applicationXml", ""); appXML != "" {
		ear.Options.AddText("appxml", appXML)
	} else {
		ear.Options.Add("appxml", appDir.Append("/META-INF/application.xml"))
	}
	ear.Options.AddText("manifest", opts.Text("manifestFile", ""))
	if err := opts.Err(); err != nil {
		return nil, nil, wrapOptionsErr(err, options.ToolEar)
	}

	t := newPackageTarget()
	t.Add(
		domain.EnsureDirStep{Dir: outputDir},
		domain.CopyStep{
			ToDir:    outputDir,
			FileSets: []domain.FileSet{{Dir: modulesDir}, {Dir: appDir}},
		},
		copyLib(outputDir.Append("/lib")),
		ear,
	)
	return t, aliasTarget(e.Kind()), nil
}
