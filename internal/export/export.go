// Package export writes rendered canvas images to disk.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Format is an output file format.
type Format int

const (
	PNG Format = iota
	BMP
	PDF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case PDF:
		return "pdf"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrUnsupportedFormat is returned for file extensions with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Error records a failed export and the path involved.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return "export " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// FormatFromPath picks the format from the file extension. A path without
// an extension is written as PNG.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".pdf":
		return PDF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case PDF:
		return encodePDF(w, img)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// WriteFile encodes img to path, choosing the format from its extension.
// An empty path means the save was cancelled and nothing is written. On
// failure no partial file is left behind.
func WriteFile(path string, img image.Image) error {
	if path == "" {
		return nil
	}
	f, err := FormatFromPath(path)
	if err != nil {
		return &Error{Op: "format", Path: path, Err: err}
	}

	file, err := os.Create(path)
	if err != nil {
		return &Error{Op: "create", Path: path, Err: err}
	}
	if err := Encode(file, img, f); err != nil {
		file.Close()
		os.Remove(path)
		return &Error{Op: "encode", Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return &Error{Op: "close", Path: path, Err: err}
	}
	return nil
}
