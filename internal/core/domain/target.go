package domain

// Target is a named unit of work in the generated script.
// It uses InternedString for names since dependency lists repeat them across targets.
type Target struct {
	Name        InternedString
	Description string
	Comment     string
	Depends     []InternedString
	If          string
	Unless      string
	Steps       []Step
}

// NewTarget creates a target depending on the given target names.
func NewTarget(name string, depends ...string) *Target {
	t := &Target{Name: NewInternedString(name)}
	for _, d := range depends {
		t.Depends = append(t.Depends, NewInternedString(d))
	}
	return t
}

// Add appends steps in order.
func (t *Target) Add(steps ...Step) *Target {
	t.Steps = append(t.Steps, steps...)
	return t
}

// DependsOn reports whether name is a direct dependency of the target.
func (t *Target) DependsOn(name string) bool {
	want := NewInternedString(name)
	for _, d := range t.Depends {
		if d == want {
			return true
		}
	}
	return false
}

// StepKinds lists the kinds of the target's steps in order.
func (t *Target) StepKinds() []StepKind {
	kinds := make([]StepKind, len(t.Steps))
	for i, s := range t.Steps {
		kinds[i] = s.Kind()
	}
	return kinds
}
