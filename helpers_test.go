package draw2d

import "testing"

type pt struct{ x, y int }

var white = SRGB{255, 255, 255}

func lit(s *Surface, x, y int) bool {
	i := s.PixelIndex(x, y)
	p := s.Pix()
	return p[i] > 0 || p[i+1] > 0 || p[i+2] > 0
}

// litPixels returns every pixel with a non-zero channel.
func litPixels(s *Surface) map[pt]bool {
	out := make(map[pt]bool)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if lit(s, x, y) {
				out[pt{x, y}] = true
			}
		}
	}
	return out
}

// pixelsEqual returns the pixels with colour c.
func pixelsEqual(s *Surface, c SRGB) map[pt]bool {
	out := make(map[pt]bool)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Pixel(x, y) == c {
				out[pt{x, y}] = true
			}
		}
	}
	return out
}

func maxRowPixelCount(s *Surface) int {
	best := 0
	for y := 0; y < s.Height(); y++ {
		n := 0
		for x := 0; x < s.Width(); x++ {
			if lit(s, x, y) {
				n++
			}
		}
		best = max(best, n)
	}
	return best
}

func maxColPixelCount(s *Surface) int {
	best := 0
	for x := 0; x < s.Width(); x++ {
		n := 0
		for y := 0; y < s.Height(); y++ {
			if lit(s, x, y) {
				n++
			}
		}
		best = max(best, n)
	}
	return best
}

// countPixelNeighbours returns, for k = 0..8, how many lit pixels have
// exactly k lit 8-neighbours.
func countPixelNeighbours(s *Surface) [9]int {
	var res [9]int
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if !lit(s, x, y) {
				continue
			}
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if (dx == 0 && dy == 0) || nx < 0 || ny < 0 || nx >= s.Width() || ny >= s.Height() {
						continue
					}
					if lit(s, nx, ny) {
						n++
					}
				}
			}
			res[n]++
		}
	}
	return res
}

// findMostRedPixel returns the pixel with the largest red channel, the
// first in row-major order on ties.
func findMostRedPixel(s *Surface) SRGB {
	var best SRGB
	found := false
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.Pixel(x, y)
			if !found || c.R > best.R {
				best, found = c, true
			}
		}
	}
	return best
}

func requireSimplePath(t *testing.T, s *Surface) {
	t.Helper()
	counts := countPixelNeighbours(s)
	if counts[1] != 2 {
		t.Errorf("pixels with one neighbour = %d, want 2 (counts %v)", counts[1], counts)
	}
	if counts[0] != 0 {
		t.Errorf("isolated pixels = %d, want 0", counts[0])
	}
	for k := 3; k < len(counts); k++ {
		if counts[k] != 0 {
			t.Errorf("pixels with %d neighbours = %d, want 0", k, counts[k])
		}
	}
}

// colorDistance returns the largest per-channel difference between a and b.
func colorDistance(a, b SRGB) int {
	d := 0
	for _, v := range [...]int{
		int(a.R) - int(b.R),
		int(a.G) - int(b.G),
		int(a.B) - int(b.B),
	} {
		d = max(d, v, -v)
	}
	return d
}
