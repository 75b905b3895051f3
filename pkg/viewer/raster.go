package viewer

import (
	"image"
	"image/color"
	"math"
)

// screenVertex is a projected vertex: pixel position plus view depth
type screenVertex struct {
	x, y, z float64
}

// edgeAt interpolates x and depth where the edge a-b crosses scanline y
func edgeAt(a, b screenVertex, y float64) (x, z float64, ok bool) {
	if a.y == b.y || y < math.Min(a.y, b.y) || y > math.Max(a.y, b.y) {
		return 0, 0, false
	}
	t := (y - a.y) / (b.y - a.y)
	return a.x + t*(b.x-a.x), a.z + t*(b.z-a.z), true
}

// fillTriangle fills a triangle with depth testing. Smaller depth wins.
func fillTriangle(img *image.RGBA, zbuffer []float64, v [3]screenVertex, col color.RGBA) {
	bounds := img.Bounds()
	width := bounds.Dx()

	top := math.Min(v[0].y, math.Min(v[1].y, v[2].y))
	bottom := math.Max(v[0].y, math.Max(v[1].y, v[2].y))

	for y := int(math.Max(0, math.Ceil(top))); y <= int(math.Min(float64(bounds.Max.Y-1), bottom)); y++ {
		fy := float64(y)

		// Collect the two crossings of this scanline
		var xs, zs [2]float64
		n := 0
		for i := 0; i < 3 && n < 2; i++ {
			if x, z, ok := edgeAt(v[i], v[(i+1)%3], fy); ok {
				xs[n], zs[n] = x, z
				n++
			}
		}
		if n < 2 {
			continue
		}
		if xs[0] > xs[1] {
			xs[0], xs[1] = xs[1], xs[0]
			zs[0], zs[1] = zs[1], zs[0]
		}

		xStart := int(math.Max(0, math.Ceil(xs[0])))
		xEnd := int(math.Min(float64(bounds.Max.X-1), xs[1]))
		for x := xStart; x <= xEnd; x++ {
			t := 0.0
			if xs[1] != xs[0] {
				t = (float64(x) - xs[0]) / (xs[1] - xs[0])
			}
			z := zs[0] + t*(zs[1]-zs[0])

			idx := y*width + x
			if idx >= 0 && idx < len(zbuffer) && z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLine draws a line using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx + dy
	for {
		if (image.Point{X: x1, Y: y1}).In(bounds) {
			img.SetRGBA(x1, y1, col)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// drawThickLine draws a line widened by one pixel on each side
func drawThickLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	for o := -1; o <= 1; o++ {
		drawLine(img, x1+o, y1, x2+o, y2, col)
		drawLine(img, x1, y1+o, x2, y2+o, col)
	}
}

// fillSquare draws a filled square marker centred on (x, y)
func fillSquare(img *image.RGBA, x, y, half int, col color.RGBA) {
	r := image.Rect(x-half, y-half, x+half+1, y+half+1).Intersect(img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			img.SetRGBA(px, py, col)
		}
	}
}

// shade darkens a colour by a diffuse lighting factor
func shade(col color.RGBA, intensity float64) color.RGBA {
	intensity = math.Max(0.3, math.Min(1, intensity))
	return color.RGBA{
		R: uint8(float64(col.R) * intensity),
		G: uint8(float64(col.G) * intensity),
		B: uint8(float64(col.B) * intensity),
		A: col.A,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
