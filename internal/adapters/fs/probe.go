package fs

import (
	"os"

	"go.trai.ch/prosa/internal/core/ports"
)

var _ ports.PathProbe = (*Probe)(nil)

// Probe inspects paths on the local disk.
type Probe struct{}

// NewProbe creates a new Probe.
func NewProbe() *Probe {
	return &Probe{}
}

// Exists reports whether anything exists at path.
// Stat errors other than non-existence are treated as absence.
func (p *Probe) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path is an existing directory.
func (p *Probe) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path is an existing regular file.
func (p *Probe) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
