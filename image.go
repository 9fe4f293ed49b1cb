package draw2d

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/gogpu/draw2d/internal/decode"
)

// Image load errors. Match them with errors.Is on the error returned by a
// loader; a missing file also matches fs.ErrNotExist.
var (
	// ErrUnsupportedFormat is returned when no registered codec accepts the data.
	ErrUnsupportedFormat = decode.ErrUnsupportedFormat

	// ErrEmptyData is returned for zero-length input.
	ErrEmptyData = decode.ErrEmptyData

	// ErrTooLarge is returned when the image exceeds the WithMaxPixels limit.
	ErrTooLarge = decode.ErrTooLarge
)

// LoadError reports a failed image load.
type LoadError struct {
	// Path is the file that was being loaded, empty for DecodeImage.
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return "draw2d: decode image: " + e.Err.Error()
	}
	return fmt.Sprintf("draw2d: load image %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Image is an owned, read-only width×height buffer of sRGB pixels with
// linear alpha, 4 bytes per pixel (R, G, B, A).
//
// Images are produced by the loaders and flipped vertically once, at load
// time: row 0 holds the last row of the encoded file, so that a Surface
// presented bottom-up (see Surface.ToImage) shows the sprite upright.
//
// An Image must not be copied; pass *Image.
type Image struct {
	_      noCopy
	width  int
	height int
	pix    []uint8
	format string
}

// LoadImage decodes the image file at path. PNG, JPEG, GIF, BMP, TIFF and
// WebP are supported. Every failure is a *LoadError carrying path.
func LoadImage(path string, opts ...LoadOption) (*Image, error) {
	o := applyLoadOptions(opts)
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, loadFailed(&o, path, err)
	}
	defer func() { _ = f.Close() }()
	return decodeImage(&o, path, f)
}

// LoadImageFS is LoadImage reading name from fsys.
func LoadImageFS(fsys fs.FS, name string, opts ...LoadOption) (*Image, error) {
	o := applyLoadOptions(opts)
	f, err := fsys.Open(name)
	if err != nil {
		return nil, loadFailed(&o, name, err)
	}
	defer func() { _ = f.Close() }()
	return decodeImage(&o, name, f)
}

// DecodeImage decodes an encoded image from r.
func DecodeImage(r io.Reader, opts ...LoadOption) (*Image, error) {
	o := applyLoadOptions(opts)
	return decodeImage(&o, "", r)
}

func decodeImage(o *loadOptions, path string, r io.Reader) (*Image, error) {
	buf, err := decode.Decode(r, decode.Config{MaxPixels: o.maxPixels})
	if err != nil {
		return nil, loadFailed(o, path, err)
	}
	o.log().Debug("draw2d: image decoded",
		"path", path,
		"format", buf.Format,
		"width", buf.Width,
		"height", buf.Height)
	return &Image{width: buf.Width, height: buf.Height, pix: buf.Pix, format: buf.Format}, nil
}

func loadFailed(o *loadOptions, path string, err error) error {
	o.log().Warn("draw2d: image load failed", "path", path, "err", err)
	return &LoadError{Path: path, Err: err}
}

// FromImage converts an in-memory image, flipping it like the loaders do.
func FromImage(img image.Image) *Image {
	buf := decode.FromImage(img, "memory")
	return &Image{width: buf.Width, height: buf.Height, pix: buf.Pix, format: buf.Format}
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// Format returns the name of the codec that decoded the image.
func (img *Image) Format() string { return img.format }

func (img *Image) pixelIndex(x, y int) int {
	return (y*img.width + x) * BytesPerPixel
}

// Pixel returns the colour at (x, y). The caller guarantees
// 0 <= x < Width and 0 <= y < Height.
func (img *Image) Pixel(x, y int) SRGBA {
	if debugChecks && (x < 0 || x >= img.width || y < 0 || y >= img.height) {
		panic(fmt.Sprintf("draw2d: pixel (%d, %d) outside %dx%d image", x, y, img.width, img.height))
	}
	i := img.pixelIndex(x, y)
	return SRGBA{R: img.pix[i], G: img.pix[i+1], B: img.pix[i+2], A: img.pix[i+3]}
}

// Pix returns a copy of the RGBA buffer, 4 bytes per pixel, row 0 first.
// The image itself never changes after loading.
func (img *Image) Pix() []uint8 {
	return slices.Clone(img.pix)
}

// Release drops the pixel buffer. The image is 0×0 afterwards.
func (img *Image) Release() {
	img.width, img.height, img.pix = 0, 0, nil
}

// IsLoadError reports whether err is or wraps a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
