// Package batch walks an input path and frames every accepted image into an
// output directory, reporting per-file failures without aborting the run.
package batch

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/pixelport/go-framer/framer"
	"github.com/pixelport/go-framer/images"
)

// AcceptedExtensions lists the input file extensions processed by default.
var AcceptedExtensions = []string{"jpg", "jpeg", "png", "webp"}

// Options configure a batch run.
type Options struct {
	// Input is a single image file or a directory of images.
	Input string
	// Output is the directory that receives framed images. It must exist.
	Output string
	// Sizing selects the output canvas shape.
	Sizing framer.Sizing
	// OutputFormat, when non-empty, overrides each output file's extension
	// and therefore its encoding. When empty the input's extension is kept.
	OutputFormat images.Format
	// Extensions overrides AcceptedExtensions when non-empty.
	Extensions []string
	// Framer runs each image; nil selects a default-options Framer.
	Framer *framer.Framer
	// Log receives per-file progress and failures; nil selects the logrus
	// standard logger.
	Log *logrus.Logger
}

// Summary reports what a run accomplished.
type Summary struct {
	// Framed is the number of images written successfully.
	Framed int
	// Failed is the number of images that could not be framed.
	Failed int
}

// Run frames Options.Input into Options.Output. A directory input is
// processed entry by entry, skipping subdirectories and files with
// unaccepted extensions; one bad image is logged and counted but does not
// stop the rest. A file input is framed directly and its failure is
// returned.
//
// Arguments:
// - opts: The run configuration.
//
// Returns:
// - A Summary of framed and failed images.
// - error if the input is unusable, or, for a single-file input, if framing
//   it failed.
func Run(opts Options) (Summary, error) {
	log := opts.logger()
	fr := opts.framerOrDefault()

	info, err := os.Stat(opts.Input)
	if err != nil {
		return Summary{}, errors.Wrap(err, "stat input")
	}

	if !info.IsDir() {
		if !opts.accepts(opts.Input) {
			return Summary{}, errors.Errorf("input %q is not a supported image type", opts.Input)
		}
		if err := fr.Frame(opts.Input, opts.outputPath(opts.Input), opts.Sizing); err != nil {
			return Summary{Failed: 1}, err
		}
		return Summary{Framed: 1}, nil
	}

	entries, err := os.ReadDir(opts.Input)
	if err != nil {
		return Summary{}, errors.Wrap(err, "read input directory")
	}

	var sum Summary
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(opts.Input, entry.Name())
		if !opts.accepts(path) {
			continue
		}
		if err := fr.Frame(path, opts.outputPath(path), opts.Sizing); err != nil {
			sum.Failed++
			log.WithFields(logrus.Fields{
				"image": path,
				"error": err.Error(),
			}).Error("failed to frame image")
			continue
		}
		sum.Framed++
		log.WithField("image", path).Debug("framed image")
	}
	return sum, nil
}

// accepts reports whether path's extension is in the accepted set.
func (o Options) accepts(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	exts := o.Extensions
	if len(exts) == 0 {
		exts = AcceptedExtensions
	}
	return slices.Contains(exts, ext)
}

// outputPath maps an input file to its destination under Output, replacing
// the extension when an output format override is set.
func (o Options) outputPath(input string) string {
	name := filepath.Base(input)
	if o.OutputFormat != "" {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + "." + o.OutputFormat.Ext()
	}
	return filepath.Join(o.Output, name)
}

func (o Options) logger() *logrus.Logger {
	if o.Log != nil {
		return o.Log
	}
	return logrus.StandardLogger()
}

func (o Options) framerOrDefault() *framer.Framer {
	if o.Framer != nil {
		return o.Framer
	}
	return framer.New(framer.Options{})
}
