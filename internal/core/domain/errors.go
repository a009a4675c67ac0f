package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigParse is returned when a tool configuration block is not well-formed.
	ErrConfigParse = zerr.New("malformed tool configuration")

	// ErrArtifactNotFound is returned when an artifact coordinate does not exist in the repository.
	ErrArtifactNotFound = zerr.New("unable to find artifact")

	// ErrArtifactResolution is returned when an artifact coordinate cannot be resolved.
	ErrArtifactResolution = zerr.New("unable to resolve artifact")

	// ErrWriteFailed is returned when a generated output cannot be written.
	ErrWriteFailed = zerr.New("failed to write output")

	// ErrOutputModified is returned when a generated output was edited by hand and overwriting is disabled.
	ErrOutputModified = zerr.New("output was modified since it was generated")

	// ErrTargetAlreadyExists is returned when attempting to add a target with a name that already exists.
	ErrTargetAlreadyExists = zerr.New("target already exists")

	// ErrMissingDependency is returned when a target references a dependency that doesn't exist in the script.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the target dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrDescriptorLoad is returned when a project descriptor cannot be read.
	ErrDescriptorLoad = zerr.New("failed to load project descriptor")

	// ErrInvalidDescriptor is returned when a project descriptor is missing required fields.
	ErrInvalidDescriptor = zerr.New("invalid project descriptor")

	// ErrInvalidMapping is returned when a file mapping cannot be parsed.
	ErrInvalidMapping = zerr.New("invalid file mapping")
)
