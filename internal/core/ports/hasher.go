package ports

// Hasher defines the interface for computing content fingerprints.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// HashBytes fingerprints in-memory content.
	HashBytes(data []byte) string
	// HashFile fingerprints a file. ok is false when the file does not exist.
	HashFile(path string) (hash string, ok bool, err error)
}
