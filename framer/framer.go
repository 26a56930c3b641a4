package framer

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/pkg/errors"

	"github.com/pixelport/go-framer/images"
)

// Options tune the encoding side of the pipeline. The zero value selects the
// package defaults for every field.
type Options struct {
	// JPEGQuality is the JPEG encoder quality, 1-100. Zero selects
	// images.DefaultJPEGQuality.
	JPEGQuality int
	// WebPQuality is the WEBP encoder quality, 1-100. Zero selects
	// images.DefaultWebPQuality.
	WebPQuality float32
}

// Framer runs the decode, resize, composite, encode pipeline for one image
// at a time. It holds no mutable state, so a single Framer may be shared
// across goroutines; each Frame call owns its own buffers.
type Framer struct {
	opts Options
}

// New creates a Framer with the given options.
func New(opts Options) *Framer {
	return &Framer{opts: opts}
}

// Frame is a convenience wrapper around New with default options.
func Frame(sourcePath, outputPath string, sizing Sizing) error {
	return New(Options{}).Frame(sourcePath, outputPath, sizing)
}

// Frame centers the image at sourcePath on a solid white canvas shaped by
// sizing and writes the result to outputPath, encoded according to the
// output path's extension. In dimensions mode the source is stretched to the
// exact target size first; in aspect-ratio mode the source keeps its pixels
// and white bars fill out the longer axis. On failure no output file is left
// behind.
//
// Arguments:
// - sourcePath: A readable JPEG, PNG, or WEBP file.
// - outputPath: The destination; its extension selects the encoder.
// - sizing: The canvas shape, from Dimensions or AspectRatio.
//
// Returns:
// - nil on success, or a classified *Error identifying the failed stage.
func (f *Framer) Frame(sourcePath, outputPath string, sizing Sizing) error {
	// Reject unknown output extensions before touching the input so a
	// doomed call never creates a file.
	if _, err := images.FormatFromPath(outputPath); err != nil {
		return &Error{Kind: KindEncode, Path: outputPath, Err: err}
	}

	if sizing.mode == modeAspectRatio && (!(sizing.ratioW > 0) || !(sizing.ratioH > 0)) {
		return &Error{
			Kind: KindResize,
			Path: sourcePath,
			Err:  errors.Errorf("aspect ratio %g:%g must be positive on both axes", sizing.ratioW, sizing.ratioH),
		}
	}

	src, err := images.DecodeFile(sourcePath)
	if err != nil {
		return &Error{Kind: KindDecode, Path: sourcePath, Err: err}
	}

	if sizing.mode == modeDimensions {
		resized, err := images.Resize(src, int(sizing.width), int(sizing.height))
		if err != nil {
			return &Error{Kind: KindResize, Path: sourcePath, Err: err}
		}
		src = resized
	}

	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	lay := sizing.layout(srcW, srcH)
	if err := lay.validate(srcW, srcH); err != nil {
		return &Error{Kind: KindGeometry, Path: sourcePath, Err: err}
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, lay.Canvas.X, lay.Canvas.Y))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	target := image.Rectangle{Min: lay.Offset, Max: lay.Offset.Add(image.Pt(srcW, srcH))}
	draw.Draw(canvas, target, src, bounds.Min, draw.Src)

	// The output is opaque three-channel; any alpha the source carried is
	// discarded rather than blended.
	for i := 3; i < len(canvas.Pix); i += 4 {
		canvas.Pix[i] = 0xff
	}

	opts := images.EncodeOptions{
		JPEGQuality: f.opts.JPEGQuality,
		WebPQuality: f.opts.WebPQuality,
	}
	if err := images.EncodeFile(outputPath, canvas, opts); err != nil {
		return &Error{Kind: KindEncode, Path: outputPath, Err: err}
	}
	return nil
}
