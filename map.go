package navmap

import (
	"fmt"

	"github.com/paulmach/orb"
)

// ObstacleMap holds the obstacles and the coordinate bounds of a navigation
// map. The map is built once per configuration and is read-only afterwards:
// AddObstacle must complete before any containment queries run, after which
// the map may be shared across goroutines without locking.
type ObstacleMap struct {
	bounds    orb.Bound
	tolerance float64
	obstacles []Obstacle
	index     *spatialIndex
}

// NewObstacleMap creates an empty map covering the given bounds. The
// tolerance widens every obstacle rectangle during containment queries,
// so near-boundary points within tolerance of an obstacle edge still count
// as colliding. Zero means exact boundary-inclusive comparison.
func NewObstacleMap(minX, minY, maxX, maxY, tolerance float64) (*ObstacleMap, error) {
	if maxX <= minX || maxY <= minY {
		return nil, fmt.Errorf("%w: bounds (%g,%g)-(%g,%g) are empty", ErrConfig, minX, minY, maxX, maxY)
	}
	if tolerance < 0 {
		return nil, fmt.Errorf("%w: tolerance %g is negative", ErrConfig, tolerance)
	}

	return &ObstacleMap{
		bounds: orb.Bound{
			Min: orb.Point{minX, minY},
			Max: orb.Point{maxX, maxY},
		},
		tolerance: tolerance,
		index:     newSpatialIndex(),
	}, nil
}

// AddObstacle appends an obstacle to the map. It fails with ErrConfig if the
// obstacle has non-positive width or height, or extends outside the map
// bounds. Configuration errors abort map construction; there is no partial
// recovery at this stage.
func (m *ObstacleMap) AddObstacle(o Obstacle) error {
	if o.Width <= 0 {
		return fmt.Errorf("%w: obstacle %d: width %g must be positive", ErrConfig, len(m.obstacles), o.Width)
	}
	if o.Height <= 0 {
		return fmt.Errorf("%w: obstacle %d: height %g must be positive", ErrConfig, len(m.obstacles), o.Height)
	}
	if !boundInBound(o.Bound(), m.bounds) {
		return fmt.Errorf("%w: obstacle %d: (%g,%g) %gx%g extends outside map bounds (%g,%g)-(%g,%g)",
			ErrConfig, len(m.obstacles), o.X, o.Y, o.Width, o.Height,
			m.bounds.Min.X(), m.bounds.Min.Y(), m.bounds.Max.X(), m.bounds.Max.Y())
	}

	if err := m.index.insert(len(m.obstacles), o); err != nil {
		return fmt.Errorf("%w: obstacle %d: %v", ErrConfig, len(m.obstacles), err)
	}
	m.obstacles = append(m.obstacles, o)
	return nil
}

// ContainsPoint reports whether the point lies within the map bounds,
// inclusive of the boundary. It checks bounds membership only, not
// obstacle-freedom.
func (m *ObstacleMap) ContainsPoint(p Point) bool {
	return m.bounds.Contains(p.toOrb())
}

// ObstacleAt returns the first obstacle, in insertion order, whose rectangle
// contains the point, along with its index. Containment is
// boundary-inclusive and widened by the map's tolerance. ok is false when no
// obstacle contains the point.
func (m *ObstacleMap) ObstacleAt(p Point) (obstacle Obstacle, index int, ok bool) {
	first := -1
	for _, entry := range m.index.queryPoint(p, m.tolerance) {
		if !entry.Obstacle.Contains(p, m.tolerance) {
			continue
		}
		if first == -1 || entry.Index < first {
			first = entry.Index
			obstacle = entry.Obstacle
		}
	}

	if first == -1 {
		return Obstacle{}, -1, false
	}
	return obstacle, first, true
}

// Bounds returns the map's coordinate bounds
func (m *ObstacleMap) Bounds() orb.Bound {
	return m.bounds
}

// Tolerance returns the near-boundary tolerance used for obstacle queries
func (m *ObstacleMap) Tolerance() float64 {
	return m.tolerance
}

// Obstacles returns the obstacles in insertion order. The slice is a copy;
// obstacles are immutable once added.
func (m *ObstacleMap) Obstacles() []Obstacle {
	out := make([]Obstacle, len(m.obstacles))
	copy(out, m.obstacles)
	return out
}
