package domain

// Settings are the generation parameters supplied by the invoking command.
type Settings struct {
	// RootDirectory is the directory, relative to the root project, holding generated scripts.
	RootDirectory string
	// LibDirectory is where dependency jars are kept, relative to RootDirectory.
	LibDirectory string
	// WebappDirectory is the web content directory of web archives, relative to the module.
	WebappDirectory string
	Overwrite       bool
	Offline         bool
	Interactive     bool
	// LocalRepository is the root of the artifact repository used for doclets and taglets.
	LocalRepository string

	ExecutionProperties map[string]string
	FileMappings        []FileMapping
}

// DefaultSettings returns the settings used when the caller supplies none.
func DefaultSettings() Settings {
	return Settings{
		RootDirectory:   "ant",
		LibDirectory:    "webapp/WEB-INF/lib",
		WebappDirectory: "src/main/webapp",
		Interactive:     true,
	}
}
