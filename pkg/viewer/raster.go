package viewer

import (
	"image"
	"image/color"
	"math"
)

// screenPoint is a projected vertex: pixel position plus view depth
type screenPoint struct {
	x, y, z float64
}

// frame is the target of one software render pass
type frame struct {
	img    *image.RGBA
	zbuf   []float64
	width  int
	height int
}

func newFrame(width, height int, background color.Color) *frame {
	f := &frame{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		zbuf:   make([]float64, width*height),
		width:  width,
		height: height,
	}

	bg := color.RGBAModel.Convert(background).(color.RGBA)
	for i := 0; i < len(f.img.Pix); i += 4 {
		f.img.Pix[i] = bg.R
		f.img.Pix[i+1] = bg.G
		f.img.Pix[i+2] = bg.B
		f.img.Pix[i+3] = bg.A
	}
	for i := range f.zbuf {
		f.zbuf[i] = math.MaxFloat64
	}
	return f
}

// plot writes col at (x, y) if z is nearer than what is already there
func (f *frame) plot(x, y int, z float64, col color.RGBA) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	idx := y*f.width + x
	if z < f.zbuf[idx] {
		f.zbuf[idx] = z
		f.img.SetRGBA(x, y, col)
	}
}

// fillTriangle fills a triangle with depth testing using a scanline walk
func (f *frame) fillTriangle(a, b, c screenPoint, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if a.y > b.y {
		a, b = b, a
	}
	if b.y > c.y {
		b, c = c, b
	}
	if a.y > b.y {
		a, b = b, a
	}

	yStart := int(math.Max(0, math.Ceil(a.y)))
	yEnd := int(math.Min(float64(f.height-1), c.y))

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		// The long edge a-c spans every scanline; the short one depends on
		// which half of the triangle we are in.
		left, ok := edgeAt(a, c, fy)
		if !ok {
			continue
		}
		var right screenPoint
		if fy < b.y {
			right, ok = edgeAt(a, b, fy)
		} else {
			right, ok = edgeAt(b, c, fy)
		}
		if !ok {
			continue
		}

		if left.x > right.x {
			left, right = right, left
		}

		xStart := int(math.Max(0, math.Ceil(left.x)))
		xEnd := int(math.Min(float64(f.width-1), right.x))
		for x := xStart; x <= xEnd; x++ {
			t := 0.0
			if right.x != left.x {
				t = (float64(x) - left.x) / (right.x - left.x)
			}
			f.plot(x, y, left.z+t*(right.z-left.z), col)
		}
	}
}

// edgeAt interpolates the edge p-q at scanline y
func edgeAt(p, q screenPoint, y float64) (screenPoint, bool) {
	if p.y == q.y {
		if y != p.y {
			return screenPoint{}, false
		}
		return p, true
	}
	t := (y - p.y) / (q.y - p.y)
	return screenPoint{
		x: p.x + t*(q.x-p.x),
		y: y,
		z: p.z + t*(q.z-p.z),
	}, true
}

// drawLine draws a depth-tested line using Bresenham's algorithm. The bias
// is subtracted from the interpolated depth so edges win over the faces
// they border.
func (f *frame) drawLine(a, b screenPoint, bias float64, col color.RGBA) {
	x1, y1 := int(math.Round(a.x)), int(math.Round(a.y))
	x2, y2 := int(math.Round(b.x)), int(math.Round(b.y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	steps := max(dx, dy)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for i := 0; ; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		f.plot(x1, y1, a.z+t*(b.z-a.z)-bias, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// shade scales col by intensity, keeping alpha
func shade(col color.Color, intensity float64) color.RGBA {
	c := color.RGBAModel.Convert(col).(color.RGBA)
	scale := func(v uint8) uint8 {
		return uint8(math.Max(0, math.Min(255, float64(v)*intensity)))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
