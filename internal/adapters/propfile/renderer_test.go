package propfile_test

import (
	"strings"
	"testing"

	"github.com/magiconair/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prosa/internal/adapters/propfile"
	"go.trai.ch/prosa/internal/core/domain"
)

func TestRenderProperties(t *testing.T) {
	file := domain.NewPropertyFile()
	file.Set("build.finalName", "app-1.0")
	file.Set("build.outputDir", "${base.dir}/target/classes")
	file.Set("maven.test.skip", "true")

	out, err := propfile.NewRenderer().RenderProperties(file)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	assert.Equal(t, []string{
		"#" + domain.PropertyFileHeader,
		"build.finalName=app-1.0",
		"build.outputDir=${base.dir}/target/classes",
		"maven.test.skip=true",
	}, lines)
}

func TestRenderProperties_OverrideKeepsPosition(t *testing.T) {
	file := domain.NewPropertyFile()
	file.Set("a", "1")
	file.Set("b", "2")
	file.Set("a", "3")

	out, err := propfile.NewRenderer().RenderProperties(file)
	require.NoError(t, err)
	assert.Equal(t, "#"+domain.PropertyFileHeader+"\na=3\nb=2\n", string(out))
}

func TestRenderProperties_Escaping(t *testing.T) {
	file := domain.NewPropertyFile()
	file.Set("key with space", "C:\\work\\lib")
	file.Set("multi", "one\ntwo")

	out, err := propfile.NewRenderer().RenderProperties(file)
	require.NoError(t, err)

	parsed, err := properties.Load(out, properties.ISO_8859_1)
	require.NoError(t, err)
	parsed.DisableExpansion = true

	v, ok := parsed.Get("key with space")
	require.True(t, ok)
	assert.Equal(t, "C:\\work\\lib", v)
	v, ok = parsed.Get("multi")
	require.True(t, ok)
	assert.Equal(t, "one\ntwo", v)
}

func TestRenderProperties_Empty(t *testing.T) {
	file := domain.NewPropertyFile()
	file.Header = ""

	out, err := propfile.NewRenderer().RenderProperties(file)
	require.NoError(t, err)
	assert.Empty(t, out)
}
