package ports

// PathProbe defines the interface for inspecting paths on disk.
//
//go:generate mockgen -source=path_probe.go -destination=mocks/mock_path_probe.go -package=mocks
type PathProbe interface {
	// Exists reports whether anything exists at path.
	Exists(path string) bool
	// IsDir reports whether path is an existing directory.
	IsDir(path string) bool
	// IsFile reports whether path is an existing regular file.
	IsFile(path string) bool
}
