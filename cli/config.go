package cli

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pixelport/go-framer/batch"
	"github.com/pixelport/go-framer/images"
)

// Config is the optional YAML configuration file. Values left out of the
// file keep their defaults; CLI flags override the file.
type Config struct {
	// Quality holds per-format encoder quality settings.
	Quality QualityConfig `yaml:"quality"`
	// Extensions lists the input file extensions to accept.
	Extensions []string `yaml:"extensions"`
}

// QualityConfig holds the encoder quality for each lossy format, 1-100.
type QualityConfig struct {
	JPEG int     `yaml:"jpeg"`
	WebP float32 `yaml:"webp"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Quality: QualityConfig{
			JPEG: images.DefaultJPEGQuality,
			WebP: images.DefaultWebPQuality,
		},
		Extensions: batch.AcceptedExtensions,
	}
}

// LoadConfig reads the YAML file at path and overlays it on DefaultConfig.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}

	if cfg.Quality.JPEG < 1 || cfg.Quality.JPEG > 100 {
		return Config{}, errors.Errorf("jpeg quality %d is outside 1-100", cfg.Quality.JPEG)
	}
	if cfg.Quality.WebP < 1 || cfg.Quality.WebP > 100 {
		return Config{}, errors.Errorf("webp quality %g is outside 1-100", cfg.Quality.WebP)
	}
	return cfg, nil
}
