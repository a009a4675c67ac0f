package domain

const (
	// DescriptorFileName is the project descriptor read from every module directory.
	DescriptorFileName = "prosa.yaml"

	// StateFileName holds the fingerprints of generated outputs, kept next to the root descriptor.
	StateFileName = ".prosa-state.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
