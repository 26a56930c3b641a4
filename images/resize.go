package images

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Resize scales img to exactly width x height pixels using Lanczos3
// resampling. The aspect ratio is not preserved; callers wanting bars
// instead of stretching should size the canvas, not the source. A source
// already at the target size is still resampled, keeping the rounding
// behavior identical across inputs.
//
// Arguments:
// - img: The source image.
// - width: The target width in pixels.
// - height: The target height in pixels.
//
// Returns:
// - The resized image.
// - error if either dimension is not positive.
func Resize(img image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid resize dimensions %dx%d", width, height)
	}
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3), nil
}
