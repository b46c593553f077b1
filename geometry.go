package navmap

import (
	"github.com/paulmach/orb"
)

// Point is a 2D position on the map
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Obstacle represents an axis-aligned rectangle blocked to navigation,
// anchored at its lower-left corner
type Obstacle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (p Point) toOrb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// Bound returns the obstacle's extent as an orb bound
func (o Obstacle) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{o.X, o.Y},
		Max: orb.Point{o.X + o.Width, o.Y + o.Height},
	}
}

// Contains checks if a point lies on or inside the obstacle's rectangle,
// widened on every side by tolerance. Containment is boundary-inclusive:
// a point exactly on an edge or corner counts as on the obstacle.
func (o Obstacle) Contains(p Point, tolerance float64) bool {
	return o.Bound().Pad(tolerance).Contains(p.toOrb())
}

// boundInBound checks if bound a lies entirely within bound b
func boundInBound(a, b orb.Bound) bool {
	return b.Contains(a.Min) && b.Contains(a.Max)
}
