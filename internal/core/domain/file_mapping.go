package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// FileMapping records a relocation done while provisioning a project's scaffold.
// Source is relative to the project base; Destination is relative to the scaffold root.
type FileMapping struct {
	Source      string
	Destination string
	Restorable  bool
	ConfigFile  bool
}

// NeedsRestore reports whether the generated setup target should copy the mapping back.
// Mappings without a source only create directories and have nothing to restore.
func (m FileMapping) NeedsRestore() bool {
	return m.Restorable && m.Source != ""
}

// ParseFileMapping reads a "source=destination" pair. Either side may be empty,
// but the separator is required.
func ParseFileMapping(text string, configFile bool) (FileMapping, error) {
	source, destination, ok := strings.Cut(text, "=")
	if !ok || (strings.TrimSpace(source) == "" && strings.TrimSpace(destination) == "") {
		return FileMapping{}, zerr.With(ErrInvalidMapping, "mapping", text)
	}
	return FileMapping{
		Source:      strings.TrimSpace(source),
		Destination: strings.TrimSpace(destination),
		Restorable:  true,
		ConfigFile:  configFile,
	}, nil
}
