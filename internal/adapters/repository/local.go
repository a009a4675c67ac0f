// Package repository resolves artifacts in a local artifact repository.
package repository

import (
	"path/filepath"
	"strings"

	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/prosa/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ArtifactResolver = (*Local)(nil)
	_ ports.RepositoryOpener = (*Opener)(nil)
)

// Local resolves artifacts laid out as <group path>/<artifact>/<version>/<artifact>-<version>.jar.
type Local struct {
	base  string
	probe ports.PathProbe
}

// NewLocal creates a resolver for the repository rooted at base.
func NewLocal(base string, probe ports.PathProbe) *Local {
	return &Local{base: filepath.Clean(base), probe: probe}
}

// BaseDir returns the repository root.
func (l *Local) BaseDir() string {
	return l.base
}

// ResolveAbsolutePath returns the path of the artifact's jar.
func (l *Local) ResolveAbsolutePath(groupID, artifactID, version string) (string, error) {
	coordinate := groupID + ":" + artifactID + ":" + version
	if strings.TrimSpace(groupID) == "" || strings.TrimSpace(artifactID) == "" || strings.TrimSpace(version) == "" {
		return "", zerr.With(domain.ErrArtifactResolution, "coordinate", coordinate)
	}

	path := filepath.Join(
		l.base,
		filepath.FromSlash(strings.ReplaceAll(groupID, ".", "/")),
		artifactID,
		version,
		artifactID+"-"+version+".jar",
	)
	if !l.probe.IsFile(path) {
		return "", zerr.With(zerr.With(domain.ErrArtifactNotFound, "coordinate", coordinate), "path", path)
	}
	return path, nil
}

// Opener opens Local resolvers.
type Opener struct {
	probe ports.PathProbe
}

// NewOpener creates an Opener that inspects the disk through probe.
func NewOpener(probe ports.PathProbe) *Opener {
	return &Opener{probe: probe}
}

// Open returns a resolver for the repository rooted at baseDir.
func (o *Opener) Open(baseDir string) ports.ArtifactResolver {
	return NewLocal(baseDir, o.probe)
}
