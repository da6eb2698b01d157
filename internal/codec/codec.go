// Package codec turns image files into interleaved RGB8 buffers and back.
//
// Decoding accepts PNG, JPEG and GIF from the standard library plus BMP, TIFF
// and WebP from golang.org/x/image. Encoding writes PNG, JPEG, BMP and TIFF,
// picked from the output file extension.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an encodable image format.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// FormatFromPath picks the output format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("unsupported output extension %q", filepath.Ext(path))
	}
}

// ParseFormat converts a format name such as "png" or "jpg" to a Format.
func ParseFormat(s string) (Format, error) {
	return FormatFromPath("." + s)
}

// DecodeError reports an unreadable or unsupported input image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return "decode: " + e.Err.Error()
	}
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports an unwritable destination or unsupported geometry.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	if e.Path == "" {
		return "encode: " + e.Err.Error()
	}
	return fmt.Sprintf("encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
