// Package framer centers raster images on solid white canvases, adding
// letterbox or pillarbox bars so the output matches a requested shape.
package framer

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// sizingMode distinguishes the two mutually exclusive ways of choosing the
// output canvas shape.
type sizingMode int

const (
	modeDimensions sizingMode = iota
	modeAspectRatio
)

// Sizing describes how the output canvas is shaped. It is either an exact
// pixel size, in which case the source is stretched to fill the canvas
// completely, or a target width:height ratio, in which case the source keeps
// its pixels and white bars fill out the longer axis.
type Sizing struct {
	mode           sizingMode
	width, height  uint
	ratioW, ratioH float32
}

// Dimensions returns a Sizing that resizes the source to exactly
// width x height pixels. The source's aspect ratio is not preserved.
func Dimensions(width, height uint) Sizing {
	return Sizing{mode: modeDimensions, width: width, height: height}
}

// AspectRatio returns a Sizing that pads the source out to the given
// width:height ratio without rescaling it.
func AspectRatio(width, height float32) Sizing {
	return Sizing{mode: modeAspectRatio, ratioW: width, ratioH: height}
}

// ParseDimensions parses the textual form "<width>x<height>", for example
// "1920x1080" or "1080x1080". Both components must be positive integers.
//
// Arguments:
// - s: The dimension string to parse.
//
// Returns:
// - The parsed Sizing in dimensions mode.
// - error if the string is malformed or a component is not positive.
func ParseDimensions(s string) (Sizing, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return Sizing{}, errors.Errorf("dimensions %q do not follow the <width>x<height> format", s)
	}
	width, err := strconv.ParseUint(ws, 10, 32)
	if err != nil {
		return Sizing{}, errors.Wrapf(err, "dimension width %q is not a valid integer", ws)
	}
	height, err := strconv.ParseUint(hs, 10, 32)
	if err != nil {
		return Sizing{}, errors.Wrapf(err, "dimension height %q is not a valid integer", hs)
	}
	if width == 0 || height == 0 {
		return Sizing{}, errors.Errorf("dimensions %q must be positive on both axes", s)
	}
	return Dimensions(uint(width), uint(height)), nil
}

// ParseAspectRatio parses the textual form "<width>:<height>", for example
// "16:9", "1:1", or "4.3:2". Both components must be positive numbers.
//
// Arguments:
// - s: The ratio string to parse.
//
// Returns:
// - The parsed Sizing in aspect-ratio mode.
// - error if the string is malformed or a component is not positive.
func ParseAspectRatio(s string) (Sizing, error) {
	ws, hs, ok := strings.Cut(s, ":")
	if !ok {
		return Sizing{}, errors.Errorf("aspect ratio %q does not follow the <width>:<height> format", s)
	}
	width, err := strconv.ParseFloat(ws, 32)
	if err != nil {
		return Sizing{}, errors.Wrapf(err, "aspect ratio width %q is not a valid number", ws)
	}
	height, err := strconv.ParseFloat(hs, 32)
	if err != nil {
		return Sizing{}, errors.Wrapf(err, "aspect ratio height %q is not a valid number", hs)
	}
	if !(width > 0) || !(height > 0) {
		return Sizing{}, errors.Errorf("aspect ratio %q must be positive on both axes", s)
	}
	return AspectRatio(float32(width), float32(height)), nil
}
