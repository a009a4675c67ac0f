package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/prosa/internal/core/domain"
)

func TestInternedString_SameNameSameHandle(t *testing.T) {
	a := domain.NewInternedString("compile-tests")
	b := domain.NewInternedString("compile-" + "tests")

	assert.Equal(t, a.Value(), b.Value())
	assert.Equal(t, a, b)
	assert.Equal(t, "compile-tests", a.String())
}

func TestInternedString_ZeroValue(t *testing.T) {
	var zero domain.InternedString
	assert.Empty(t, zero.String())
}

func TestInternedString_Text(t *testing.T) {
	name := domain.NewInternedString("package")

	text, err := name.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "package", string(text))

	var decoded domain.InternedString
	assert.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, name, decoded)
}
