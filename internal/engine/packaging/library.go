package packaging

import (
	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/prosa/internal/engine/layout"
	"go.trai.ch/prosa/internal/engine/options"
)

type library struct{}

func (library) Kind() domain.Packaging { return domain.PackagingLibrary }

func (l library) Package(in Input) (*domain.Target, *domain.Target, error) {
	opts := in.Resolver.Tool(in.Descriptor, options.ToolJar)
	outputDir := domain.Ref(layout.PropOutputDir)

	jar := domain.ArchiveStep{Format: "jar", DestFile: distFile("jar")}
	jar.Options.AddText("compress", opts.Text("archive//compress", "true"))
	jar.Options.AddText("index", opts.Text("archive//index", "false"))
	jar.Options.AddText("manifest", opts.Text("archive//manifestFile", ""))
	jar.Options.Add("basedir", outputDir)
	jar.Options.AddText("excludes", "**/package.html")
	if opts.Has("archive//manifest") {
		jar.Manifest.AddText("Main-Class", opts.Text("archive//manifest//mainClass", ""))
	}
	if err := opts.Err(); err != nil {
		return nil, nil, wrapOptionsErr(err, options.ToolJar)
	}

	t := newPackageTarget()
	t.Add(
		domain.EnsureDirStep{Dir: outputDir},
		copyLib(outputDir),
		jar,
	)
	return t, aliasTarget(l.Kind()), nil
}
