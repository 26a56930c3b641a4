// Package cli wires the framing pipeline into a command-line interface:
// flag parsing, sizing validation, config loading, and exit-code mapping.
package cli

import (
	"context"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pixelport/go-framer/batch"
	"github.com/pixelport/go-framer/framer"
	"github.com/pixelport/go-framer/images"
)

const (
	appName        = "go-framer"
	appDescription = "Centers images on a white canvas matching a target aspect ratio or exact dimensions."
)

// Process exit codes, following the BSD sysexits conventions.
const (
	// ExitConfig signals invalid flags or configuration.
	ExitConfig = 78
	// ExitData signals unusable input data.
	ExitData = 65
	// ExitIOErr signals a filesystem problem.
	ExitIOErr = 74
	// ExitCantCreat signals that the output could not be produced.
	ExitCantCreat = 73
)

// codedError pairs an error with the process exit code it should produce.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }

func (e *codedError) Unwrap() error { return e.err }

// ExitCode extracts the exit code carried by err, defaulting to 1 for
// errors without one and 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	return 1
}

// rootFlags holds the parsed command-line flags.
type rootFlags struct {
	input       string
	output      string
	aspectRatio string
	dimensions  string
	filetype    string
	quality     int
	configPath  string
	watch       bool
	verbose     bool
}

// New builds the root command.
//
// Returns:
// - The configured *cobra.Command; Execute runs the batch.
func New() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           appName,
		Short:         appDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "input image or directory")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output directory (must exist)")
	cmd.Flags().StringVar(&flags.aspectRatio, "aspect-ratio", "", "target aspect ratio as <width>:<height>, e.g. 16:9, 1:1, 4.3:2")
	cmd.Flags().StringVar(&flags.dimensions, "dimensions", "", "target pixel size as <width>x<height>, e.g. 1920x1080, 1080x1080")
	cmd.Flags().StringVar(&flags.filetype, "filetype", "", "output filetype (jpeg, png, or webp); defaults to each input's filetype")
	cmd.Flags().IntVar(&flags.quality, "quality", 0, "encoder quality for lossy formats, 1-100")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a YAML configuration file")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "keep running and frame images as they appear in the input directory")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every framed image")

	// --ratio and --dim are accepted as shorthands.
	cmd.Flags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		switch name {
		case "ratio":
			name = "aspect-ratio"
		case "dim":
			name = "dimensions"
		}
		return pflag.NormalizedName(name)
	})

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}

// run validates the flags, loads the configuration, and dispatches to the
// batch layer, mapping failures to exit-coded errors.
func run(ctx context.Context, flags rootFlags) error {
	if flags.verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := LoadConfig(flags.configPath)
	if err != nil {
		return &codedError{ExitConfig, err}
	}
	if flags.quality != 0 {
		if flags.quality < 1 || flags.quality > 100 {
			return &codedError{ExitConfig, errors.Errorf("quality %d is outside 1-100", flags.quality)}
		}
		cfg.Quality.JPEG = flags.quality
		cfg.Quality.WebP = float32(flags.quality)
	}

	sizing, err := parseSizing(flags.aspectRatio, flags.dimensions)
	if err != nil {
		return &codedError{ExitConfig, err}
	}

	outputFormat, err := parseFiletype(flags.filetype)
	if err != nil {
		return &codedError{ExitConfig, err}
	}

	if info, err := os.Stat(flags.output); err != nil || !info.IsDir() {
		return &codedError{ExitIOErr, errors.New("the output directory does not exist")}
	}

	opts := batch.Options{
		Input:        flags.input,
		Output:       flags.output,
		Sizing:       sizing,
		OutputFormat: outputFormat,
		Extensions:   cfg.Extensions,
		Framer: framer.New(framer.Options{
			JPEGQuality: cfg.Quality.JPEG,
			WebPQuality: cfg.Quality.WebP,
		}),
	}

	if flags.watch {
		if err := batch.Watch(ctx, opts); err != nil && !errors.Is(err, context.Canceled) {
			return &codedError{ExitIOErr, err}
		}
		return nil
	}

	summary, err := batch.Run(opts)
	if err != nil {
		return &codedError{exitCodeFor(err), err}
	}
	log.WithFields(log.Fields{
		"framed": summary.Framed,
		"failed": summary.Failed,
	}).Info("finished")
	return nil
}

// parseSizing enforces the mutually exclusive choice between an aspect
// ratio and explicit dimensions, and parses whichever was given.
func parseSizing(ratio, dimensions string) (framer.Sizing, error) {
	switch {
	case ratio == "" && dimensions == "":
		return framer.Sizing{}, errors.New("an aspect ratio or output image dimension must be provided")
	case ratio != "" && dimensions != "":
		return framer.Sizing{}, errors.New("either the aspect ratio or the dimensions can be provided, but not both")
	case dimensions != "":
		return framer.ParseDimensions(dimensions)
	default:
		return framer.ParseAspectRatio(ratio)
	}
}

// parseFiletype maps the --filetype flag to an output format. An empty flag
// keeps each input's own filetype.
func parseFiletype(s string) (images.Format, error) {
	switch s {
	case "":
		return "", nil
	case "jpg", "jpeg":
		return images.FormatJPEG, nil
	case "png":
		return images.FormatPNG, nil
	case "webp":
		return images.FormatWebP, nil
	default:
		return "", errors.Errorf("output filetype %q is not one of jpeg, png, webp", s)
	}
}

// exitCodeFor maps a batch failure to its exit code: unusable inputs are
// data errors, failed outputs are creation errors, everything else is I/O.
func exitCodeFor(err error) int {
	switch {
	case framer.IsKind(err, framer.KindDecode):
		return ExitData
	case framer.IsKind(err, framer.KindEncode):
		return ExitCantCreat
	case framer.IsKind(err, framer.KindResize):
		return ExitConfig
	default:
		return ExitIOErr
	}
}
