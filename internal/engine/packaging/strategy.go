// Package packaging selects the package target for each packaging kind.
package packaging

import (
	"path"

	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/prosa/internal/engine/layout"
	"go.trai.ch/prosa/internal/engine/options"
	"go.trai.ch/zerr"
)

// PackageTarget is the name of the target every strategy produces.
const PackageTarget = "package"

// Input carries what a strategy needs to build the package target.
type Input struct {
	Descriptor *domain.ProjectDescriptor
	Settings   domain.Settings
	Resolver   *options.Resolver
}

// Strategy builds the package target for one packaging kind.
type Strategy interface {
	Kind() domain.Packaging
	// Package returns the package target and, for archive kinds, the alias target
	// named after the archive type.
	Package(in Input) (pkg *domain.Target, alias *domain.Target, err error)
}

// For returns the strategy of a packaging kind.
func For(kind domain.Packaging) Strategy {
	switch kind {
	case domain.PackagingAggregate:
		return aggregate{}
	case domain.PackagingLibrary:
		return library{}
	case domain.PackagingWebArchive:
		return webArchive{}
	case domain.PackagingEnterpriseArchive:
		return enterpriseArchive{}
	case domain.PackagingOther:
		return other{}
	default:
		return other{}
	}
}

// InvokeModules returns one step per child module running target in that module's script,
// in declared module order.
func InvokeModules(d *domain.ProjectDescriptor, target string) []domain.Step {
	steps := make([]domain.Step, 0, len(d.Modules))
	for _, module := range d.Modules {
		steps = append(steps, domain.InvokeModuleStep{
			Module:     layout.ModuleRelativeDir(d, module),
			ScriptFile: layout.ScriptFileName,
			Dir:        ModuleStagingDir(d, module),
			Target:     target,
		})
	}
	return steps
}

// ModuleStagingDir is where a child module's script runs inside the aggregate's build area.
// Modules are addressed by directory name, matching the fixed depth of the parent.dir ascent.
func ModuleStagingDir(d *domain.ProjectDescriptor, module string) domain.Expr {
	return StagingDir().Append("/" + path.Base(layout.ModuleRelativeDir(d, module)))
}

// StagingDir is the isolated build area of the project: ${build.dir}/${build.finalName}.
func StagingDir() domain.Expr {
	return domain.Concat(domain.Ref(layout.PropBuildDir), domain.Lit("/"), domain.Ref(layout.PropFinalName))
}

func distFile(ext string) domain.Expr {
	return domain.Concat(
		domain.Ref(layout.PropParentDir),
		domain.Lit(layout.DistDirName+"/"),
		domain.Ref(layout.PropFinalName),
		domain.Lit("."+ext),
	)
}

func newPackageTarget() *domain.Target {
	t := domain.NewTarget(PackageTarget, "compile", "setup")
	t.Description = "Package the application"
	t.Comment = "Package target"
	return t
}

func aliasTarget(kind domain.Packaging) *domain.Target {
	t := domain.NewTarget(kind.ArchiveType(), PackageTarget)
	t.Description = "Builds the " + kind.ArchiveType() + " for the application"
	t.Comment = "A dummy target for the package named after the type it creates"
	return t
}

func copyLib(toDir domain.Expr) domain.CopyStep {
	return domain.CopyStep{
		ToDir: toDir,
		FileSets: []domain.FileSet{{
			Dir:            domain.Ref(layout.PropClasspathDir),
			IncludePattern: "**",
		}},
	}
}

func wrapOptionsErr(err error, tool string) error {
	return zerr.With(zerr.Wrap(err, "failed to resolve packaging options"), "tool", tool)
}

type aggregate struct{}

func (aggregate) Kind() domain.Packaging { return domain.PackagingAggregate }

func (aggregate) Package(in Input) (*domain.Target, *domain.Target, error) {
	t := domain.NewTarget(PackageTarget)
	t.Description = "Package the application"
	t.Comment = "Package target"
	t.Add(InvokeModules(in.Descriptor, PackageTarget)...)
	return t, nil, nil
}

type other struct{}

func (other) Kind() domain.Packaging { return domain.PackagingOther }

func (other) Package(in Input) (*domain.Target, *domain.Target, error) {
	t := newPackageTarget()
	t.Add(domain.DiagnosticStep{
		Message: "No archive task exists for the packaging '" + in.Descriptor.PackagingName +
			"'. You could override the package target in your build script.",
	})
	return t, nil, nil
}
