package draw2d

import (
	"log/slog"

	"github.com/gogpu/draw2d/internal/decode"
)

// LoadOption configures a single image load.
//
// Example:
//
//	img, err := draw2d.LoadImage("ship.png", draw2d.WithMaxPixels(1<<20))
type LoadOption func(*loadOptions)

// loadOptions holds optional configuration for image loading.
type loadOptions struct {
	maxPixels int
	logger    *slog.Logger
}

func defaultLoadOptions() loadOptions {
	return loadOptions{
		maxPixels: decode.DefaultMaxPixels,
		logger:    nil, // package logger
	}
}

func applyLoadOptions(opts []LoadOption) loadOptions {
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *loadOptions) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// WithMaxPixels rejects images whose declared width*height exceeds n before
// any pixel memory is allocated. Values <= 0 restore the default of
// 64 Mi pixels.
func WithMaxPixels(n int) LoadOption {
	return func(o *loadOptions) {
		if n <= 0 {
			n = decode.DefaultMaxPixels
		}
		o.maxPixels = n
	}
}

// WithLoadLogger logs this load to l instead of the package logger.
func WithLoadLogger(l *slog.Logger) LoadOption {
	return func(o *loadOptions) {
		o.logger = l
	}
}
