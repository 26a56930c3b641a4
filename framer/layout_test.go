package framer

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLayoutAspectRatio validates canvas sizing and centering for the
// aspect-ratio mode across tall, wide, and exactly matching sources.
func TestLayoutAspectRatio(t *testing.T) {
	tests := []struct {
		name        string
		srcW, srcH  int
		sizing      Sizing
		canvas      image.Point
		offset      image.Point
		orientation Orientation
	}{
		{
			name: "tall source gets side bars",
			srcW: 100, srcH: 200,
			sizing:      AspectRatio(1, 1),
			canvas:      image.Pt(200, 200),
			offset:      image.Pt(50, 0),
			orientation: OrientationVertical,
		},
		{
			name: "wide source gets top and bottom bars",
			srcW: 1920, srcH: 1080,
			sizing:      AspectRatio(1, 1),
			canvas:      image.Pt(1920, 1920),
			offset:      image.Pt(0, 420),
			orientation: OrientationHorizontal,
		},
		{
			name: "matching ratio adds no bars",
			srcW: 1920, srcH: 1080,
			sizing:      AspectRatio(16, 9),
			canvas:      image.Pt(1920, 1080),
			offset:      image.Pt(0, 0),
			orientation: OrientationExact,
		},
		{
			name: "near-equal ratio stays on the vertical branch",
			srcW: 1919, srcH: 1080,
			sizing:      AspectRatio(16, 9),
			canvas:      image.Pt(1920, 1080),
			offset:      image.Pt(0, 0),
			orientation: OrientationVertical,
		},
		{
			name: "widescreen target on a portrait source",
			srcW: 720, srcH: 1500,
			sizing:      AspectRatio(16, 9),
			canvas:      image.Pt(2667, 1500),
			offset:      image.Pt(973, 0),
			orientation: OrientationVertical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lay := tt.sizing.layout(tt.srcW, tt.srcH)
			assert.Equal(t, tt.canvas, lay.Canvas, "canvas dimensions should match")
			assert.Equal(t, tt.offset, lay.Offset, "centering offset should match")
			assert.Equal(t, tt.orientation, lay.Orientation, "bar orientation should match")
			assert.NoError(t, lay.validate(tt.srcW, tt.srcH), "resolved layout should satisfy the placement contract")
		})
	}
}

// TestLayoutDimensionsMode validates that dimensions mode always yields an
// exact canvas with a zero offset, since the source is resized beforehand.
func TestLayoutDimensionsMode(t *testing.T) {
	sizing := Dimensions(1080, 1080)

	lay := sizing.layout(1080, 1080)
	assert.Equal(t, image.Pt(1080, 1080), lay.Canvas, "canvas should equal the resized source")
	assert.Equal(t, image.Point{}, lay.Offset, "offset should be zero")
	assert.Equal(t, OrientationExact, lay.Orientation, "no bars are produced in dimensions mode")
	assert.NoError(t, lay.validate(1080, 1080), "layout should satisfy the placement contract")
}

// TestLayoutCenteringSymmetry checks that the bars on either side of the
// source differ by at most one pixel, including odd-sized gaps.
func TestLayoutCenteringSymmetry(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		sizing     Sizing
	}{
		{name: "odd vertical gap", srcW: 100, srcH: 201, sizing: AspectRatio(1, 1)},
		{name: "odd horizontal gap", srcW: 201, srcH: 100, sizing: AspectRatio(1, 1)},
		{name: "even gap", srcW: 100, srcH: 200, sizing: AspectRatio(1, 1)},
		{name: "wide target", srcW: 640, srcH: 481, sizing: AspectRatio(4, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lay := tt.sizing.layout(tt.srcW, tt.srcH)
			require.NoError(t, lay.validate(tt.srcW, tt.srcH))

			left := lay.Offset.X
			right := lay.Canvas.X - tt.srcW - left
			top := lay.Offset.Y
			bottom := lay.Canvas.Y - tt.srcH - top

			assert.LessOrEqual(t, abs(left-right), 1, "side bars should differ by at most one pixel")
			assert.LessOrEqual(t, abs(top-bottom), 1, "top and bottom bars should differ by at most one pixel")
		})
	}
}

// TestLayoutRatioWithinOnePixel checks that the produced canvas satisfies
// the requested ratio within one pixel of rounding and never crops.
func TestLayoutRatioWithinOnePixel(t *testing.T) {
	tests := []struct {
		srcW, srcH     int
		ratioW, ratioH float32
	}{
		{100, 200, 1, 1},
		{1920, 1080, 1, 1},
		{1280, 720, 4, 3},
		{333, 777, 16, 9},
		{1024, 768, 21, 9},
	}

	for _, tt := range tests {
		lay := AspectRatio(tt.ratioW, tt.ratioH).layout(tt.srcW, tt.srcH)
		require.NoError(t, lay.validate(tt.srcW, tt.srcH))

		assert.GreaterOrEqual(t, lay.Canvas.X, tt.srcW, "canvas must not crop horizontally")
		assert.GreaterOrEqual(t, lay.Canvas.Y, tt.srcH, "canvas must not crop vertically")
		assert.True(t, lay.Canvas.X == tt.srcW || lay.Canvas.Y == tt.srcH,
			"canvas must match the source on exactly one axis")

		want := float64(tt.ratioW) / float64(tt.ratioH)
		got := float64(lay.Canvas.X) / float64(lay.Canvas.Y)
		tolerance := 1.0 / float64(lay.Canvas.Y)
		assert.InDelta(t, want, got, tolerance+0.0001,
			"canvas %v should satisfy ratio %g:%g within one pixel", lay.Canvas, tt.ratioW, tt.ratioH)
	}
}

// TestLayoutValidate exercises the defensive checks with deliberately
// broken layouts.
func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name       string
		lay        Layout
		srcW, srcH int
	}{
		{
			name: "canvas smaller than source",
			lay:  Layout{Canvas: image.Pt(50, 50)},
			srcW: 100, srcH: 100,
		},
		{
			name: "canvas matches neither axis",
			lay:  Layout{Canvas: image.Pt(150, 150)},
			srcW: 100, srcH: 100,
		},
		{
			name: "offset pushes source outside",
			lay:  Layout{Canvas: image.Pt(100, 200), Offset: image.Pt(0, 150)},
			srcW: 100, srcH: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.lay.validate(tt.srcW, tt.srcH), "broken layout should be rejected")
		})
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
