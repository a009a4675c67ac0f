package ports

import "go.trai.ch/prosa/internal/core/domain"

// ScriptRenderer serializes a build script.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type ScriptRenderer interface {
	RenderScript(script *domain.Script) ([]byte, error)
}

// PropertiesRenderer serializes a property file.
type PropertiesRenderer interface {
	RenderProperties(file *domain.PropertyFile) ([]byte, error)
}
