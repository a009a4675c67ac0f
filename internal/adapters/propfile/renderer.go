// Package propfile renders generated property files.
package propfile

import (
	"bytes"
	"fmt"

	"github.com/magiconair/properties"
	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/zerr"
)

// Renderer implements ports.PropertiesRenderer.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderProperties writes the header comment followed by one "key=value" line per entry.
// Values are written verbatim so ${...} references survive for the build tool to expand.
func (r *Renderer) RenderProperties(file *domain.PropertyFile) ([]byte, error) {
	props := properties.NewProperties()
	props.DisableExpansion = true
	props.WriteSeparator = "="
	for _, e := range file.Entries() {
		if _, _, err := props.Set(e.Key, e.Value); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to set property"), "key", e.Key)
		}
	}

	var buf bytes.Buffer
	if file.Header != "" {
		fmt.Fprintf(&buf, "#%s\n", file.Header)
	}
	if _, err := props.Write(&buf, properties.ISO_8859_1); err != nil {
		return nil, zerr.Wrap(err, "failed to serialize property file")
	}
	return buf.Bytes(), nil
}
