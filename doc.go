// Package draw2d is a small software rasterizer for Go.
//
// # Overview
//
// draw2d draws lines, solid and colour-interpolated triangles, rectangles
// and alpha-masked sprites into a CPU-resident Surface of sRGB pixels.
// Colours are mixed in linear light and encoded with the exact sRGB
// transfer function.
//
// # Quick Start
//
//	import "github.com/gogpu/draw2d"
//
//	s := draw2d.NewSurface(320, 240)
//	s.Fill(draw2d.SRGB{R: 16, G: 16, B: 32})
//
//	draw2d.TriangleInterp(s,
//	    draw2d.V2(10, 5), draw2d.V2(300, 50), draw2d.V2(17, 210),
//	    draw2d.LinearRGB{R: 1}, draw2d.LinearRGB{G: 1}, draw2d.LinearRGB{B: 1})
//
//	s.SavePNG("out.png")
//
// # Pixel Coverage
//
// Pixel (x, y) covers [x, x+1)×[y, y+1). Filled primitives cover a pixel
// when its centre lies inside; centres exactly on an edge use the top-left
// rule, so triangles sharing an edge never gap or overlap. Vertices snap to
// 1/256 pixel. Lines truncate their endpoints to integer pixel coordinates
// and walk with Bresenham's algorithm.
//
// Every primitive clips against the surface by discarding outside pixels,
// so a shape reaching far off the surface still draws exactly its on-screen
// part. Triangles past ±2^20 pixels are first clipped to that guard
// band; line walks skip straight to their first on-surface step.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Surface, Image, drawing functions, LineStrip, TriangleFan
//   - internal/color: sRGB transfer functions (exact, LUT, approximations)
//   - internal/raster: fixed-point edge functions, triangle setup, line walker
//   - internal/decode: image decoding, RGBA conversion, vertical flip
//
// # Concurrency
//
// A Surface is owned by one goroutine at a time. SetLogger and the image
// loaders are safe for concurrent use.
package draw2d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
