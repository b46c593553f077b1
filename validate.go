package navmap

import "fmt"

// Reason classifies why a candidate point was rejected
type Reason int

const (
	// ReasonNone means the point was accepted
	ReasonNone Reason = iota
	// ReasonOutOfBounds means the point lies outside the map bounds
	ReasonOutOfBounds
	// ReasonObstacle means the point lies on or inside an obstacle
	ReasonObstacle
)

// Result reports whether a candidate point is usable as a start or goal.
// A rejection is a first-class value, not an error: the caller decides
// whether to halt, retry with a new point, or warn and continue.
type Result struct {
	OK            bool   `json:"ok"`
	Reason        Reason `json:"-"`
	ObstacleIndex int    `json:"obstacleIndex"` // set when Reason is ReasonObstacle, -1 otherwise
	Message       string `json:"message,omitempty"`
}

// String renders the verdict for diagnostics
func (r Result) String() string {
	if r.OK {
		return "accepted"
	}
	return r.Message
}

// Validate decides whether the point is acceptable as a start or goal on the
// given map. It is a pure function of its inputs: it never mutates the map
// or the point, and identical inputs always yield identical results. Start
// and goal must each be validated independently.
func Validate(p Point, m *ObstacleMap) Result {
	if !m.ContainsPoint(p) {
		return Result{
			Reason:        ReasonOutOfBounds,
			ObstacleIndex: -1,
			Message:       "out of bounds",
		}
	}

	if _, index, ok := m.ObstacleAt(p); ok {
		return Result{
			Reason:        ReasonObstacle,
			ObstacleIndex: index,
			Message:       fmt.Sprintf("collides with obstacle %d", index),
		}
	}

	return Result{OK: true, ObstacleIndex: -1}
}
