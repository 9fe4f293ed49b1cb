// Package decode is the image decoder backend behind draw2d.LoadImage.
//
// Input is sniffed by content, decoded by whichever registered codec claims
// it, and converted to a tightly packed non-premultiplied RGBA buffer that is
// flipped vertically: row 0 of the result is the last row of the source.
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// Decode errors.
var (
	// ErrUnsupportedFormat is returned when no registered codec recognises the data.
	ErrUnsupportedFormat = errors.New("decode: unsupported format")

	// ErrEmptyData is returned when the input holds no bytes.
	ErrEmptyData = errors.New("decode: empty data")

	// ErrTooLarge is returned when the declared image area exceeds Config.MaxPixels.
	ErrTooLarge = errors.New("decode: image too large")
)

// DefaultMaxPixels bounds the area of a decoded image.
const DefaultMaxPixels = 64 << 20

// BytesPerPixel is the stride of one RGBA pixel.
const BytesPerPixel = 4

// Config controls a single decode.
type Config struct {
	// MaxPixels rejects images whose width*height exceeds it.
	// Zero means DefaultMaxPixels.
	MaxPixels int
}

func (c Config) maxPixels() int {
	if c.MaxPixels <= 0 {
		return DefaultMaxPixels
	}
	return c.MaxPixels
}

// Buffer is a decoded, flipped RGBA image.
type Buffer struct {
	Width, Height int

	// Pix holds Width*Height RGBA pixels, row-major, non-premultiplied.
	Pix []uint8

	// Format is the codec name reported by the image package ("png", "bmp", ...).
	Format string
}

// Decode reads all of r and decodes it.
func Decode(r io.Reader, cfg Config) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode: read: %w", err)
	}
	return DecodeBytes(data, cfg)
}

// DecodeBytes decodes an encoded image held in memory.
func DecodeBytes(data []byte, cfg Config) (*Buffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("decode: sniff: %w", err)
	}
	if kind == filetype.Unknown || kind.MIME.Type != "image" {
		return nil, fmt.Errorf("%w: content is %s", ErrUnsupportedFormat, describe(kind.MIME.Value))
	}

	hdr, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind.MIME.Value)
		}
		return nil, fmt.Errorf("decode: %s header: %w", kind.Extension, err)
	}
	if hdr.Width < 0 || hdr.Height < 0 || (hdr.Height > 0 && hdr.Width > cfg.maxPixels()/hdr.Height) {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, hdr.Width, hdr.Height, cfg.maxPixels())
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %s: %w", format, err)
	}
	return FromImage(img, format), nil
}

func describe(mime string) string {
	if mime == "" {
		return "unknown"
	}
	return mime
}

// FromImage converts img to a flipped RGBA Buffer.
func FromImage(img image.Image, format string) *Buffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	buf := &Buffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*BytesPerPixel),
		Format: format,
	}

	stride := w * BytesPerPixel
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			dst := (h - 1 - y) * stride
			copy(buf.Pix[dst:dst+stride], src.Pix[off:off+stride])
		}
		return buf
	}

	for y := 0; y < h; y++ {
		row := buf.Pix[(h-1-y)*stride:]
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			i := x * BytesPerPixel
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
	return buf
}
