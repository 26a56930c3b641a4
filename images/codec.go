package images

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
)

// Default encoder qualities for the lossy formats, on the usual 1-100 scale.
const (
	DefaultJPEGQuality = 90
	DefaultWebPQuality = 90
)

func init() {
	// chai2010/webp does not register itself with the image package, so
	// image.Decode would otherwise not recognize WEBP input.
	image.RegisterFormat("webp", "RIFF????WEBPVP8", webp.Decode, webp.DecodeConfig)
}

// EncodeOptions carries the quality settings for the lossy formats. Zero
// values select the package defaults; PNG output ignores both fields.
type EncodeOptions struct {
	// JPEGQuality is the JPEG encoder quality, 1-100.
	JPEGQuality int
	// WebPQuality is the WEBP encoder quality, 1-100.
	WebPQuality float32
}

// DecodeFile reads and decodes the raster image at path. JPEG, PNG, and
// WEBP inputs are recognized by their content, not their extension.
//
// Arguments:
// - path: The image file to decode.
//
// Returns:
// - The decoded image.
// - error if the file is unreadable or not a supported raster format.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, "decode input")
	}
	return img, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format, opts EncodeOptions) error {
	switch format {
	case FormatJPEG:
		quality := opts.JPEGQuality
		if quality == 0 {
			quality = DefaultJPEGQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		quality := opts.WebPQuality
		if quality == 0 {
			quality = DefaultWebPQuality
		}
		return webp.Encode(w, img, &webp.Options{Quality: quality})
	default:
		return errors.Errorf("unsupported image format %q", format)
	}
}

// EncodeFile encodes img to path in the format implied by the path's
// extension. A partially written file is removed when encoding fails, so the
// destination either holds a complete image or does not exist.
//
// Arguments:
// - path: The destination; its extension selects the encoder.
// - img: The image to encode.
// - opts: Quality settings for the lossy formats.
//
// Returns:
// - error if the extension is unrecognized or the write fails.
func EncodeFile(path string, img image.Image, opts EncodeOptions) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}

	if err := Encode(f, img, format, opts); err != nil {
		f.Close()
		os.Remove(path)
		return errors.Wrapf(err, "encode %s", format)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return errors.Wrap(err, "close output")
	}
	return nil
}
