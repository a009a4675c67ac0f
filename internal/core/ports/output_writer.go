package ports

// OutputWriter writes generated files.
//
//go:generate mockgen -source=output_writer.go -destination=mocks/mock_output_writer.go -package=mocks
type OutputWriter interface {
	// WriteFile replaces the file at path with data. The file is either fully replaced or left untouched.
	WriteFile(path string, data []byte) error
}
