package emitter

import (
	"strings"

	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/prosa/internal/engine/layout"
	"go.trai.ch/prosa/internal/engine/options"
	"go.trai.ch/zerr"
)

// Gate targets and properties of the test framework probe.
const (
	TargetTest         = "test"
	TargetJUnitPresent = "test-junit-present"
	TargetJUnitStatus  = "test-junit-status"
	TargetJUnitMissing = "junit-missing"

	propJUnitPresent = "junit.present"
	propJUnitMissing = "junit.missing"
	propJUnitSkipped = "junit.skipped"
	junitProbeClass  = "junit.framework.Test"
)

var (
	defaultTestIncludes = []string{"**/Test*.java", "**/*Test.java", "**/*TestCase.java"}
	defaultTestExcludes = []string{"**/*Abstract*Test.java"}
)

func (g *generation) testTargets() ([]*domain.Target, error) {
	t := domain.NewTarget(TargetTest, "compile-tests", TargetJUnitMissing)
	t.Description = "Run the test cases"
	t.Comment = "Run all tests"

	if g.d.IsAggregate() {
		g.forward(t)
	} else {
		t.Unless = propJUnitSkipped
		if err := g.runTests(t); err != nil {
			return nil, err
		}
	}
	return append([]*domain.Target{t}, gateTargets()...), nil
}

func (g *generation) runTests(t *domain.Target) error {
	roots := g.existing(g.d.Build.TestSourceRoots, layout.PropTestDir)
	if len(roots) == 0 {
		return nil
	}

	opts := g.resolver.Tool(g.d, options.ToolSurefire)
	includes := options.SelectorList(opts.List("includes"))
	excludes := options.SelectorList(opts.List("excludes"))
	if err := opts.Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve test options"), "tool", options.ToolSurefire)
	}
	if len(includes) == 0 {
		includes = defaultTestIncludes
	}
	if len(excludes) == 0 {
		excludes = defaultTestExcludes
	}

	reports := domain.Ref(layout.PropTestReports)
	run := domain.RunTestsStep{
		Formatters:   []domain.TestFormatter{{Type: "xml", UseFile: true}, {Type: "plain"}},
		ClasspathRef: layout.TestClasspathID,
		ClassDirs:    []domain.Expr{domain.Ref(layout.PropOutputDir), domain.Ref(layout.PropTestOutputDir)},
		Batches: []domain.TestBatch{
			{ToDir: reports, Unless: layout.PropSingleTest, FileSets: testFileSets(roots, includes, excludes)},
			{ToDir: reports, If: layout.PropSingleTest, FileSets: testFileSets(roots, []string{"**/${test}.java"}, excludes)},
		},
	}
	run.Options.AddText("printSummary", "yes")
	run.Options.AddText("haltonerror", "true")
	run.Options.AddText("haltonfailure", "true")
	run.Options.AddText("fork", "true")
	run.Options.AddText("dir", ".")
	run.SysProperties.AddText(layout.PropScriptBaseDir, ".")

	t.Add(domain.EnsureDirStep{Dir: reports}, run)
	return nil
}

func testFileSets(roots []domain.Expr, includes, excludes []string) []domain.FileSet {
	sets := make([]domain.FileSet, 0, len(roots))
	for _, root := range roots {
		sets = append(sets, domain.FileSet{Dir: root, Include: includes, Exclude: excludes})
	}
	return sets
}

// gateTargets compute whether the test framework is missing or tests are skipped.
func gateTargets() []*domain.Target {
	present := domain.NewTarget(TargetJUnitPresent).Add(domain.ProbeStep{
		ClassName: junitProbeClass,
		Property:  propJUnitPresent,
	})

	presentValue := domain.Ref(propJUnitPresent)
	skipValue := domain.Ref(layout.PropTestSkip)
	status := domain.NewTarget(TargetJUnitStatus, TargetJUnitPresent).Add(
		domain.ConditionStep{
			Property: propJUnitMissing,
			Operator: "and",
			Terms:    []domain.ConditionTerm{{Value: presentValue}, {Value: skipValue}},
		},
		domain.ConditionStep{
			Property: propJUnitSkipped,
			Operator: "or",
			Terms:    []domain.ConditionTerm{{Value: presentValue}, {IsTrue: true, Value: skipValue}},
		},
	)

	missing := domain.NewTarget(TargetJUnitMissing, TargetJUnitStatus)
	missing.If = propJUnitMissing
	missing.Add(
		domain.DiagnosticStep{Message: strings.Repeat("=", 35) + " WARNING " + strings.Repeat("=", 35)},
		domain.DiagnosticStep{Message: " JUnit is not present in your $ANT_HOME/lib directory. Tests not executed."},
		domain.DiagnosticStep{Message: strings.Repeat("=", 79)},
	)
	return []*domain.Target{present, status, missing}
}
