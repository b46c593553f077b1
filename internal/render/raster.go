// Package render draws a validated navigation map: obstacles as filled
// rectangles, start and goal as triangle markers, framed by the map bounds.
// It performs no validation of its own; callers hand it points that already
// passed validation.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"navmap"
)

// DefaultScale is the default number of pixels per map unit
const DefaultScale = 8

var (
	backgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	obstacleColor   = color.RGBA{A: 255}
	borderColor     = color.RGBA{A: 255}
	startColor      = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	goalColor       = color.RGBA{R: 23, G: 190, B: 207, A: 255}
)

// Raster renders the map into an RGBA image at scale pixels per map unit
func Raster(m *navmap.ObstacleMap, start, goal navmap.Point, scale int) *image.RGBA {
	if scale <= 0 {
		scale = DefaultScale
	}

	b := m.Bounds()
	width := int(math.Ceil((b.Max.X() - b.Min.X()) * float64(scale)))
	height := int(math.Ceil((b.Max.Y() - b.Min.Y()) * float64(scale)))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, 0, 0, width, height, backgroundColor)

	// Image rows grow downward; map y grows upward.
	toPixel := func(p navmap.Point) (int, int) {
		px := int(math.Round((p.X - b.Min.X()) * float64(scale)))
		py := int(math.Round((b.Max.Y() - p.Y) * float64(scale)))
		return px, py
	}

	for _, o := range m.Obstacles() {
		x0, y1 := toPixel(navmap.Point{X: o.X, Y: o.Y})
		x1, y0 := toPixel(navmap.Point{X: o.X + o.Width, Y: o.Y + o.Height})
		fillRect(img, x0, y0, x1, y1, obstacleColor)
	}

	drawBorder(img, width, height, maxInt(2, scale/4))

	marker := maxInt(3, scale)
	sx, sy := toPixel(start)
	gx, gy := toPixel(goal)
	fillTriangle(img, sx, sy, marker, startColor)
	fillTriangle(img, gx, gy, marker, goalColor)

	return img
}

// WritePNG renders the map and encodes it as PNG
func WritePNG(w io.Writer, m *navmap.ObstacleMap, start, goal navmap.Point, scale int) error {
	return png.Encode(w, Raster(m, start, goal, scale))
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	bounds := img.Bounds()
	x0 = maxInt(x0, bounds.Min.X)
	y0 = maxInt(y0, bounds.Min.Y)
	x1 = minInt(x1, bounds.Max.X)
	y1 = minInt(y1, bounds.Max.Y)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawBorder frames the drawable area, matching the original map's outline
func drawBorder(img *image.RGBA, width, height, thickness int) {
	fillRect(img, 0, 0, width, thickness, borderColor)
	fillRect(img, 0, height-thickness, width, height, borderColor)
	fillRect(img, 0, 0, thickness, height, borderColor)
	fillRect(img, width-thickness, 0, width, height, borderColor)
}

// fillTriangle draws an upward-pointing triangle centered on (cx, cy)
func fillTriangle(img *image.RGBA, cx, cy, size int, c color.RGBA) {
	for dy := -size; dy <= size; dy++ {
		half := (dy + size) / 2
		fillRect(img, cx-half, cy+dy, cx+half+1, cy+dy+1, c)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
