package ports

// ArtifactResolver locates artifacts in a local repository.
//
//go:generate mockgen -source=artifact_resolver.go -destination=mocks/mock_artifact_resolver.go -package=mocks
type ArtifactResolver interface {
	// ResolveAbsolutePath returns the absolute path of the artifact file.
	ResolveAbsolutePath(groupID, artifactID, version string) (string, error)
	// BaseDir returns the root directory of the repository.
	BaseDir() string
}

// RepositoryOpener opens the artifact repository rooted at a directory.
type RepositoryOpener interface {
	Open(baseDir string) ArtifactResolver
}
