package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelport/go-framer/images"
)

// TestLoadConfigDefaults returns the defaults for an empty path.
func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, images.DefaultJPEGQuality, cfg.Quality.JPEG)
	assert.Equal(t, float32(images.DefaultWebPQuality), cfg.Quality.WebP)
	assert.Contains(t, cfg.Extensions, "png")
	assert.Contains(t, cfg.Extensions, "webp")
}

// TestLoadConfigOverlay keeps defaults for values the file leaves out.
func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quality:\n  jpeg: 70\n  webp: 85\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 70, cfg.Quality.JPEG, "file value should override the default")
	assert.Equal(t, float32(85), cfg.Quality.WebP)
	assert.Contains(t, cfg.Extensions, "jpeg", "extensions should keep their default")
}

// TestLoadConfigExtensions replaces the accepted extension list.
func TestLoadConfigExtensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extensions: [png]\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"png"}, cfg.Extensions)
}

// TestLoadConfigErrors covers missing files, bad YAML, and out-of-range
// quality values.
func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "missing config file should fail")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("quality: [not a map"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err, "malformed YAML should fail")

	outOfRange := filepath.Join(dir, "range.yaml")
	require.NoError(t, os.WriteFile(outOfRange, []byte("quality:\n  jpeg: 150\n"), 0o644))
	_, err = LoadConfig(outOfRange)
	assert.Error(t, err, "quality above 100 should be rejected")
}
