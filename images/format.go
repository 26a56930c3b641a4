// Package images - file-based decode, encode, and resize utilities for the
// framing pipeline.
package images

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Format identifies a supported image encoding.
type Format string

// Format constants
const (
	// FormatJPEG is the JPEG image format.
	FormatJPEG Format = "jpeg"
	// FormatPNG is the PNG image format.
	FormatPNG Format = "png"
	// FormatWebP is the WebP image format.
	FormatWebP Format = "webp"
)

// Ext returns the canonical file extension for the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// FormatFromPath maps a file path's extension to its Format. The recognized
// extensions are jpg, jpeg, png, and webp, case-insensitively; anything else
// is an error rather than a silent default.
//
// Arguments:
// - path: The file path whose extension selects the format.
//
// Returns:
// - The matching Format.
// - error if the path has no extension or an unrecognized one.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	case "webp":
		return FormatWebP, nil
	case "":
		return "", errors.Errorf("path %q has no file extension", path)
	default:
		return "", errors.Errorf("unsupported image extension %q", ext)
	}
}
