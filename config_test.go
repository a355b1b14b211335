package pixcomp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe.toml")
	recipe := `
overlay = "logo.png"
mode = "multiply"
opacity = 200
x = -4
scale = 0.5
select = "3,7"
contiguous = false
`
	require.NoError(t, os.WriteFile(path, []byte(recipe), 0644))

	p := NewProcessor()
	p.Y = 11
	require.NoError(t, p.LoadConfig(path))

	assert.Equal(t, "logo.png", p.Overlay)
	assert.Equal(t, "multiply", p.Mode)
	assert.Equal(t, 200, p.Opacity)
	assert.Equal(t, -4, p.X)
	assert.Equal(t, 11, p.Y, "keys missing from the recipe are kept")
	assert.Equal(t, 0.5, p.Scale)
	assert.Equal(t, "3,7", p.Select)
	assert.False(t, p.Contiguous)
	assert.Equal(t, "fast", p.Tier)
}

func TestConfig_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor()

	assert.Error(t, p.LoadConfig(filepath.Join(dir, "missing.toml")))

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("opacity = \"full\""), 0644))
	assert.Error(t, p.LoadConfig(bad))

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("sharpen = true"), 0644))
	assert.Error(t, p.LoadConfig(unknown))
}

func TestConfig_RoundTrip(t *testing.T) {
	p := NewProcessor()
	p.Overlay = "https://example.com/layer.png"
	p.Mode = "soft-light"
	p.Feather = 6
	p.Stroke = "#00ff00"
	p.FaceAngle = 0.25

	var buf bytes.Buffer
	require.NoError(t, p.WriteConfig(&buf))

	path := filepath.Join(t.TempDir(), "recipe.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	got := &Processor{}
	require.NoError(t, got.LoadConfig(path))
	if diff := cmp.Diff(p, got, cmpopts.IgnoreUnexported(Processor{})); diff != "" {
		t.Errorf("recipe mismatch (-want +got):\n%s", diff)
	}
}
