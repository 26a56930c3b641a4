package framer

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// Orientation identifies which axis of the canvas carries border bars.
type Orientation int

const (
	// OrientationExact means canvas and source dimensions match; no bars.
	OrientationExact Orientation = iota
	// OrientationHorizontal means bars run along the top and bottom edges.
	OrientationHorizontal
	// OrientationVertical means bars run along the left and right edges.
	OrientationVertical
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationExact:
		return "exact"
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Layout is the resolved placement of a source image on its canvas: the
// canvas dimensions, the top-left offset that centers the source, and the
// orientation of the bars. It is computed once from the sizing mode and the
// source dimensions, so later stages never re-derive the bar axis from
// dimension equality.
type Layout struct {
	// Canvas holds the canvas dimensions as (width, height).
	Canvas image.Point
	// Offset is the top-left placement of the source within the canvas.
	// Exactly one component is zero, the one on the axis where canvas and
	// source dimensions coincide.
	Offset image.Point
	// Orientation is the axis carrying the border bars.
	Orientation Orientation
}

// layout resolves canvas dimensions and centering offset for a source of
// srcW x srcH pixels. In dimensions mode the source has already been resized
// to fill the canvas, so the canvas equals the source and the offset is zero.
// In aspect-ratio mode the limiting axis keeps the source dimension and the
// other axis grows to satisfy the ratio; the comparison is done in float32
// with no epsilon, and an exactly balanced ratio takes the horizontal branch.
func (s Sizing) layout(srcW, srcH int) Layout {
	if s.mode == modeDimensions {
		return Layout{Canvas: image.Pt(srcW, srcH), Orientation: OrientationExact}
	}

	sw := float32(srcW)
	sh := float32(srcH)
	if sw/s.ratioW < sh/s.ratioH {
		// The source is tall for the requested ratio: keep its height and
		// widen the canvas, leaving bars on the left and right.
		canvasW := int(math32.Round(sh * (s.ratioW / s.ratioH)))
		return Layout{
			Canvas:      image.Pt(canvasW, srcH),
			Offset:      image.Pt((canvasW-srcW)/2, 0),
			Orientation: OrientationVertical,
		}
	}

	// The source is wide, or matches the ratio exactly: keep its width and
	// grow the canvas downward, with bars above and below.
	canvasH := int(math32.Round(sw * (s.ratioH / s.ratioW)))
	lay := Layout{
		Canvas:      image.Pt(srcW, canvasH),
		Offset:      image.Pt(0, (canvasH-srcH)/2),
		Orientation: OrientationHorizontal,
	}
	if canvasH == srcH {
		lay.Orientation = OrientationExact
	}
	return lay
}

// validate enforces the placement contract: the canvas never crops the
// source, at least one axis matches the source exactly, and the offset keeps
// the source fully inside the canvas. A violation indicates a defect in
// layout resolution rather than bad input.
func (l Layout) validate(srcW, srcH int) error {
	if l.Canvas.X < srcW || l.Canvas.Y < srcH {
		return errors.Errorf("canvas %dx%d is smaller than source %dx%d",
			l.Canvas.X, l.Canvas.Y, srcW, srcH)
	}
	if l.Canvas.X != srcW && l.Canvas.Y != srcH {
		return errors.Errorf("canvas %dx%d matches source %dx%d on neither axis",
			l.Canvas.X, l.Canvas.Y, srcW, srcH)
	}
	if l.Offset.X < 0 || l.Offset.Y < 0 ||
		l.Offset.X+srcW > l.Canvas.X || l.Offset.Y+srcH > l.Canvas.Y {
		return errors.Errorf("offset (%d,%d) places source %dx%d outside canvas %dx%d",
			l.Offset.X, l.Offset.Y, srcW, srcH, l.Canvas.X, l.Canvas.Y)
	}
	return nil
}
