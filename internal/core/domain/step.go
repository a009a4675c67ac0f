package domain

// StepKind tags the unit of work a step performs.
type StepKind int

const (
	StepEnsureDir StepKind = iota
	StepDelete
	StepCopy
	StepCompile
	StepInvokeModule
	StepAssembleArchive
	StepDiagnostic
	StepRunTests
	StepGenerateDocs
	StepProbe
	StepCondition
)

var stepKindNames = [...]string{
	StepEnsureDir:       "ensure-directory",
	StepDelete:          "delete",
	StepCopy:            "copy",
	StepCompile:         "compile-sources",
	StepInvokeModule:    "invoke-module-target",
	StepAssembleArchive: "assemble-archive",
	StepDiagnostic:      "emit-diagnostic",
	StepRunTests:        "run-tests",
	StepGenerateDocs:    "generate-docs",
	StepProbe:           "probe",
	StepCondition:       "condition",
}

// String returns the kind name.
func (k StepKind) String() string {
	if int(k) < 0 || int(k) >= len(stepKindNames) {
		return "unknown"
	}
	return stepKindNames[k]
}

// Step is one unit of work inside a target.
type Step interface {
	Kind() StepKind
}

// Attr is a named option of a step. Attrs with an empty value are never recorded.
type Attr struct {
	Name  string
	Value Expr
}

// Attrs is an ordered option list.
type Attrs []Attr

// Add appends the option unless its value is empty.
func (a *Attrs) Add(name string, value Expr) {
	if value.IsZero() {
		return
	}
	*a = append(*a, Attr{Name: name, Value: value})
}

// AddText appends a literal option unless it is empty.
func (a *Attrs) AddText(name, value string) {
	a.Add(name, Lit(value))
}

// Get returns the value of the named option.
func (a Attrs) Get(name string) (Expr, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return Expr{}, false
}

// FileSet selects files below a directory.
// Include/Exclude are nested selectors; IncludePattern/ExcludePattern are inline pattern lists.
type FileSet struct {
	Dir            Expr
	IncludePattern string
	ExcludePattern string
	Include        []string
	Exclude        []string
}

// EnsureDirStep creates a directory.
type EnsureDirStep struct {
	Dir Expr
}

// DeleteStep removes a directory tree.
type DeleteStep struct {
	Dir Expr
}

// CopyStep copies either a single file or a set of file sets into a directory.
type CopyStep struct {
	ToDir     Expr
	File      Expr
	ToFile    Expr
	Overwrite bool
	FileSets  []FileSet
}

// CompileStep compiles source roots into a destination directory.
// When ExtraClasspath is set the classpath reference is nested together with those entries.
type CompileStep struct {
	DestDir        Expr
	Options        Attrs
	Sources        []Expr
	ClasspathRef   string
	ExtraClasspath []Expr
}

// InvokeModuleStep runs a target of a child module's script.
type InvokeModuleStep struct {
	Module     string
	ScriptFile string
	Dir        Expr
	Target     string
}

// ArchiveStep bundles files into an archive of the given format.
type ArchiveStep struct {
	Format      string
	DestFile    Expr
	Options     Attrs
	Manifest    Attrs
	LibDirs     []Expr
	ClassesDirs []Expr
	FileSets    []FileSet
}

// DiagnosticStep prints a message when the target runs.
type DiagnosticStep struct {
	Message string
}

// TestBatch selects test sources for one test run, guarded by a property.
type TestBatch struct {
	ToDir    Expr
	If       string
	Unless   string
	FileSets []FileSet
}

// RunTestsStep runs the test suites.
type RunTestsStep struct {
	Options       Attrs
	SysProperties Attrs
	Formatters    []TestFormatter
	ClasspathRef  string
	ClassDirs     []Expr
	Batches       []TestBatch
}

// TestFormatter configures one test report format.
type TestFormatter struct {
	Type    string
	UseFile bool
}

// DocText is a free-text documentation field kept verbatim.
type DocText struct {
	Name string
	Text string
}

// DocLink points at external documentation.
type DocLink struct {
	Href     string
	Offline  bool
	Location string
}

// DocGroup groups packages under a title.
type DocGroup struct {
	Title    string
	Packages string
}

// DocExtension is a doclet or taglet with an optional class path.
type DocExtension struct {
	Name string
	Path Expr
}

// DocTag is a custom documentation tag.
type DocTag struct {
	Name        string
	Scope       string
	Description string
}

// GenerateDocsStep produces API documentation.
type GenerateDocsStep struct {
	Options Attrs
	Texts   []DocText
	Links   []DocLink
	Groups  []DocGroup
	Doclet  *DocExtension
	Taglet  *DocExtension
	Tags    []DocTag
}

// ProbeStep sets Property when ClassName is available to the script engine.
type ProbeStep struct {
	ClassName string
	Property  string
}

// ConditionTerm tests one value for truth or falsehood.
type ConditionTerm struct {
	IsTrue bool
	Value  Expr
}

// ConditionStep sets Property to the and/or of its terms.
type ConditionStep struct {
	Property string
	Operator string
	Terms    []ConditionTerm
}

func (EnsureDirStep) Kind() StepKind    { return StepEnsureDir }
func (DeleteStep) Kind() StepKind       { return StepDelete }
func (CopyStep) Kind() StepKind         { return StepCopy }
func (CompileStep) Kind() StepKind      { return StepCompile }
func (InvokeModuleStep) Kind() StepKind { return StepInvokeModule }
func (ArchiveStep) Kind() StepKind      { return StepAssembleArchive }
func (DiagnosticStep) Kind() StepKind   { return StepDiagnostic }
func (RunTestsStep) Kind() StepKind     { return StepRunTests }
func (GenerateDocsStep) Kind() StepKind { return StepGenerateDocs }
func (ProbeStep) Kind() StepKind        { return StepProbe }
func (ConditionStep) Kind() StepKind    { return StepCondition }
