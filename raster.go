package main

import (
	"image"
	"image/color"
	"math"
	"sort"

	xdraw "golang.org/x/image/draw"
)

// ellipseMask returns the coverage of the filled ellipse inscribed in the
// inclusive box [x0, x1] x [y0, y1], clipped to bounds. The box spans
// diameters x1-x0 and y1-y0; an inverted or zero-sized box covers nothing.
func ellipseMask(bounds image.Rectangle, x0, y0, x1, y1 int) *image.Alpha {
	mask := image.NewAlpha(bounds)
	a, b := x1-x0, y1-y0
	if a < 0 || b < 0 || a+b == 0 {
		return mask
	}

	// The arc is in doubled coordinates relative to the box centre. The
	// first point reached on a row is the widest, and each row is
	// mirrored above and below the centre.
	arc := newQuarterArc(a, b)
	lastY := -1
	for x, y, ok := arc.next(); ok; x, y, ok = arc.next() {
		if y == lastY {
			continue
		}
		lastY = y
		xl, xr := x0+(a-x)/2, x0+(a+x)/2
		fillSpan(mask, xl, xr, y0+(b-y)/2)
		fillSpan(mask, xl, xr, y0+(b+y)/2)
	}
	return mask
}

// quarterArc walks one quadrant of an ellipse with doubled semi-axes a and
// b, from (a, b%2) down to (a%2, b). Each step moves to whichever of the
// down, down-left and left neighbours lies closest to the curve.
type quarterArc struct {
	a2, b2, a2b2 int64
	x, y, ex, ey int
	done         bool
}

func newQuarterArc(a, b int) *quarterArc {
	a2, b2 := int64(a)*int64(a), int64(b)*int64(b)
	return &quarterArc{
		a2:   a2,
		b2:   b2,
		a2b2: a2 * b2,
		x:    a,
		y:    b % 2,
		ex:   a % 2,
		ey:   b,
	}
}

func (q *quarterArc) deviation(x, y int) int64 {
	d := q.a2*int64(y)*int64(y) + q.b2*int64(x)*int64(x) - q.a2b2
	if d < 0 {
		return -d
	}
	return d
}

func (q *quarterArc) next() (x, y int, ok bool) {
	if q.done {
		return 0, 0, false
	}
	x, y = q.x, q.y
	if x == q.ex && y == q.ey {
		q.done = true
		return x, y, true
	}

	nx, ny := x, y+2
	best := q.deviation(nx, ny)
	if x > 1 {
		if d := q.deviation(x-2, y+2); d < best {
			nx, ny, best = x-2, y+2, d
		}
		if d := q.deviation(x-2, y); d < best {
			nx, ny = x-2, y
		}
	}
	q.x, q.y = nx, ny
	return x, y, true
}

// polygonMask returns the scanline coverage of the closed polygon pts,
// clipped to bounds.
func polygonMask(bounds image.Rectangle, pts []image.Point) *image.Alpha {
	mask := image.NewAlpha(bounds)
	if len(pts) == 0 {
		return mask
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	// Horizontal edges never cross a scanline, so they are drawn directly.
	// This also keeps collapsed polygons visible.
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		if a.Y == b.Y {
			fillSpan(mask, a.X, b.X, a.Y)
		}
	}

	xs := make([]float64, 0, len(pts))
	for y := max(minY, bounds.Min.Y); y <= min(maxY, bounds.Max.Y-1); y++ {
		xs = xs[:0]
		for i, a := range pts {
			b := pts[(i+1)%len(pts)]
			if a.Y == b.Y {
				continue
			}
			lo, hi := a, b
			if lo.Y > hi.Y {
				lo, hi = hi, lo
			}
			// Half-open so shared vertices are counted once, except on
			// the bottom row where no edge continues below.
			if y < lo.Y || y > hi.Y || (y == hi.Y && hi.Y != maxY) {
				continue
			}
			xs = append(xs, float64(lo.X)+float64(y-lo.Y)*float64(hi.X-lo.X)/float64(hi.Y-lo.Y))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			xl := int(math.Floor(xs[i] + 0.5))
			xr := int(math.Ceil(xs[i+1] - 0.5))
			if xl <= xr {
				fillSpan(mask, xl, xr, y)
			}
		}
	}
	return mask
}

// fillSpan covers pixels xl..xr inclusive on row y, clipped to the mask.
func fillSpan(mask *image.Alpha, xl, xr, y int) {
	if xl > xr {
		xl, xr = xr, xl
	}
	r := image.Rect(xl, y, xr+1, y+1).Intersect(mask.Bounds())
	for x := r.Min.X; x < r.Max.X; x++ {
		mask.SetAlpha(x, y, color.Alpha{A: 0xff})
	}
}

// paintMask composites c onto dst wherever mask is set.
func paintMask(dst *image.RGBA, mask *image.Alpha, c color.Color) {
	xdraw.DrawMask(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, mask, dst.Bounds().Min, xdraw.Over)
}
