// Command draw2ddemo renders a static scene with the draw2d rasterizer and
// writes it as PNG.
package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"

	"github.com/chewxy/math32"

	"github.com/gogpu/draw2d"
)

func main() {
	var (
		width     = flag.Int("width", 1280, "image width")
		height    = flag.Int("height", 720, "image height")
		output    = flag.String("output", "draw2d.png", "output file")
		sprite    = flag.String("sprite", "", "optional sprite image blitted at the centre")
		seed      = flag.Int64("seed", 1, "seed for asteroid and particle placement")
		asteroids = flag.Int("asteroids", 12, "number of asteroids")
		particles = flag.Int("particles", 400, "number of particles")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	draw2d.SetLogger(logger)

	s := draw2d.NewSurface(*width, *height)
	rng := rand.New(rand.NewSource(*seed))

	drawBackground(s)
	drawParticles(s, rng, *particles)
	drawAsteroids(s, rng, *asteroids)
	drawShip(s)

	if *sprite != "" {
		img, err := draw2d.LoadImage(*sprite)
		if err != nil {
			logger.Error("sprite not drawn", "err", err)
		} else {
			pos := draw2d.V2(float32(s.Width()-img.Width())/2, float32(s.Height()-img.Height())/2)
			draw2d.BlitMasked(s, img, pos)
			img.Release()
		}
	}

	if err := s.SavePNG(*output); err != nil {
		logger.Error("save failed", "err", err)
		os.Exit(1)
	}
	logger.Info("demo saved", "output", *output, "width", *width, "height", *height)
}

// drawBackground fills the surface with two interpolated triangles.
func drawBackground(s *draw2d.Surface) {
	w, h := float32(s.Width()), float32(s.Height())
	top := draw2d.LinearRGB{R: 0.002, G: 0.004, B: 0.02}
	bottom := draw2d.LinearRGB{R: 0.02, G: 0.01, B: 0.06}

	draw2d.TriangleInterp(s, draw2d.V2(0, 0), draw2d.V2(w, 0), draw2d.V2(w, h), bottom, bottom, top)
	draw2d.TriangleInterp(s, draw2d.V2(0, 0), draw2d.V2(w, h), draw2d.V2(0, h), bottom, top, top)
}

func drawParticles(s *draw2d.Surface, rng *rand.Rand, n int) {
	for i := 0; i < n; i++ {
		p := draw2d.V2(rng.Float32()*float32(s.Width()), rng.Float32()*float32(s.Height()))
		l := 0.2 + 0.8*rng.Float32()
		c := draw2d.LinearToSRGB(draw2d.LinearRGB{R: l, G: l, B: l * 0.9})
		if rng.Intn(8) == 0 {
			draw2d.RectangleSolid(s, p, p.Add(draw2d.V2(2, 2)), c)
			continue
		}
		draw2d.Line(s, p, p, c)
	}
}

// asteroid builds a lumpy fan around the origin.
func asteroid(rng *rand.Rand, radius float32) *draw2d.TriangleFan {
	const sides = 11
	rock := draw2d.LinearRGB{R: 0.18, G: 0.14, B: 0.11}
	verts := []draw2d.Vertex{{Color: rock.Scale(1.6)}}
	for i := 0; i < sides; i++ {
		sin, cos := math32.Sincos(2 * math32.Pi * float32(i) / sides)
		r := radius * (0.7 + 0.3*rng.Float32())
		verts = append(verts, draw2d.Vertex{
			Pos:   draw2d.V2(cos*r, sin*r),
			Color: rock.Scale(0.5 + 0.5*rng.Float32()),
		})
	}
	return draw2d.NewTriangleFan(verts...)
}

func drawAsteroids(s *draw2d.Surface, rng *rand.Rand, n int) {
	for i := 0; i < n; i++ {
		fan := asteroid(rng, 15+45*rng.Float32())
		pos := draw2d.V2(rng.Float32()*float32(s.Width()), rng.Float32()*float32(s.Height()))
		fan.Draw(s, draw2d.Rotation(rng.Float32()*2*math32.Pi), pos)
	}
}

func drawShip(s *draw2d.Surface) {
	hull := draw2d.NewLineStrip(
		draw2d.V2(0, -24),
		draw2d.V2(14, 18),
		draw2d.V2(5, 12),
		draw2d.V2(-5, 12),
		draw2d.V2(-14, 18),
		draw2d.V2(0, -24),
	)
	center := draw2d.V2(float32(s.Width())/2, float32(s.Height())*0.7)
	rot := draw2d.Rotation(math32.Pi / 10)
	hull.Draw(s, draw2d.LinearRGB{R: 0.9, G: 0.9, B: 1}, rot, center)

	flame := rot.Transform(draw2d.V2(0, 12), center)
	draw2d.TriangleWireframe(s,
		rot.Transform(draw2d.V2(-4, 12), center),
		rot.Transform(draw2d.V2(4, 12), center),
		flame.Add(rot.MulVec(draw2d.V2(0, 14))),
		draw2d.LinearToSRGB(draw2d.LinearRGB{R: 1, G: 0.4, B: 0.05}))
}
