package navmap

import (
	"errors"
	"testing"
)

func newTestMap(t *testing.T, tolerance float64, obstacles ...Obstacle) *ObstacleMap {
	t.Helper()
	m, err := NewObstacleMap(0, 0, 150, 100, tolerance)
	if err != nil {
		t.Fatalf("NewObstacleMap: %v", err)
	}
	for _, o := range obstacles {
		if err := m.AddObstacle(o); err != nil {
			t.Fatalf("AddObstacle(%+v): %v", o, err)
		}
	}
	return m
}

func TestNewObstacleMapRejectsBadBounds(t *testing.T) {
	tests := []struct {
		name                   string
		minX, minY, maxX, maxY float64
		tolerance              float64
	}{
		{name: "zero width", minX: 10, maxX: 10, minY: 0, maxY: 5},
		{name: "inverted x", minX: 10, maxX: 0, minY: 0, maxY: 5},
		{name: "inverted y", minX: 0, maxX: 5, minY: 8, maxY: 2},
		{name: "negative tolerance", minX: 0, maxX: 5, minY: 0, maxY: 5, tolerance: -0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewObstacleMap(tt.minX, tt.minY, tt.maxX, tt.maxY, tt.tolerance)
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("got %v, want ErrConfig", err)
			}
		})
	}
}

func TestAddObstacleRejectsInvalidGeometry(t *testing.T) {
	tests := []struct {
		name     string
		obstacle Obstacle
	}{
		{name: "zero width", obstacle: Obstacle{X: 10, Y: 10, Width: 0, Height: 5}},
		{name: "negative width", obstacle: Obstacle{X: 10, Y: 10, Width: -3, Height: 5}},
		{name: "zero height", obstacle: Obstacle{X: 10, Y: 10, Width: 5, Height: 0}},
		{name: "negative height", obstacle: Obstacle{X: 10, Y: 10, Width: 5, Height: -1}},
		{name: "left of bounds", obstacle: Obstacle{X: -5, Y: 10, Width: 3, Height: 3}},
		{name: "crosses right edge", obstacle: Obstacle{X: 148, Y: 10, Width: 5, Height: 3}},
		{name: "crosses top edge", obstacle: Obstacle{X: 10, Y: 98, Width: 3, Height: 5}},
		{name: "fully outside", obstacle: Obstacle{X: 200, Y: 200, Width: 10, Height: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMap(t, 0)
			err := m.AddObstacle(tt.obstacle)
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("got %v, want ErrConfig", err)
			}
			if len(m.Obstacles()) != 0 {
				t.Fatalf("rejected obstacle was still appended")
			}
		})
	}
}

func TestAddObstacleAcceptsBoundaryTouching(t *testing.T) {
	m := newTestMap(t, 0)

	// Obstacles flush against the map edges are fully contained.
	for _, o := range []Obstacle{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 140, Y: 90, Width: 10, Height: 10},
	} {
		if err := m.AddObstacle(o); err != nil {
			t.Fatalf("AddObstacle(%+v): %v", o, err)
		}
	}
}

func TestContainsPointBoundsOnly(t *testing.T) {
	m := newTestMap(t, 0, Obstacle{X: 20, Y: 20, Width: 30, Height: 20})

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{name: "interior", p: Point{X: 75, Y: 50}, want: true},
		{name: "inside obstacle still in bounds", p: Point{X: 35, Y: 30}, want: true},
		{name: "on min corner", p: Point{X: 0, Y: 0}, want: true},
		{name: "on max corner", p: Point{X: 150, Y: 100}, want: true},
		{name: "on edge", p: Point{X: 150, Y: 50}, want: true},
		{name: "right of bounds", p: Point{X: 150.001, Y: 50}, want: false},
		{name: "below bounds", p: Point{X: 75, Y: -0.001}, want: false},
		{name: "far outside", p: Point{X: 200, Y: 50}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ContainsPoint(tt.p); got != tt.want {
				t.Fatalf("ContainsPoint(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestObstacleAtBoundaryInclusive(t *testing.T) {
	m := newTestMap(t, 0, Obstacle{X: 20, Y: 20, Width: 30, Height: 20})

	tests := []struct {
		name string
		p    Point
		hit  bool
	}{
		{name: "strictly inside", p: Point{X: 35, Y: 30}, hit: true},
		{name: "lower-left corner", p: Point{X: 20, Y: 20}, hit: true},
		{name: "upper-right corner", p: Point{X: 50, Y: 40}, hit: true},
		{name: "on left edge", p: Point{X: 20, Y: 30}, hit: true},
		{name: "on top edge", p: Point{X: 35, Y: 40}, hit: true},
		{name: "just outside edge", p: Point{X: 19.999, Y: 30}, hit: false},
		{name: "free space", p: Point{X: 10, Y: 10}, hit: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, index, ok := m.ObstacleAt(tt.p)
			if ok != tt.hit {
				t.Fatalf("ObstacleAt(%+v) ok = %v, want %v", tt.p, ok, tt.hit)
			}
			if tt.hit {
				if index != 0 {
					t.Fatalf("index = %d, want 0", index)
				}
				if o.Width != 30 || o.Height != 20 {
					t.Fatalf("returned wrong obstacle: %+v", o)
				}
			} else if index != -1 {
				t.Fatalf("miss should report index -1, got %d", index)
			}
		})
	}
}

func TestObstacleAtFirstInInsertionOrder(t *testing.T) {
	// Overlap is permitted; the query must return the earlier insertion.
	m := newTestMap(t, 0,
		Obstacle{X: 10, Y: 10, Width: 40, Height: 40},
		Obstacle{X: 20, Y: 20, Width: 40, Height: 40},
	)

	_, index, ok := m.ObstacleAt(Point{X: 30, Y: 30})
	if !ok || index != 0 {
		t.Fatalf("ObstacleAt in overlap = (ok=%v, index=%d), want first obstacle", ok, index)
	}

	_, index, ok = m.ObstacleAt(Point{X: 55, Y: 55})
	if !ok || index != 1 {
		t.Fatalf("ObstacleAt outside first = (ok=%v, index=%d), want second obstacle", ok, index)
	}
}

func TestObstacleAtTolerance(t *testing.T) {
	m := newTestMap(t, 0.5, Obstacle{X: 20, Y: 20, Width: 30, Height: 20})

	if _, _, ok := m.ObstacleAt(Point{X: 19.6, Y: 30}); !ok {
		t.Fatalf("point within tolerance of the edge should collide")
	}
	if _, _, ok := m.ObstacleAt(Point{X: 19.4, Y: 30}); ok {
		t.Fatalf("point beyond tolerance should be clear")
	}
}

func TestObstaclesReturnsCopy(t *testing.T) {
	m := newTestMap(t, 0, Obstacle{X: 20, Y: 20, Width: 30, Height: 20})

	got := m.Obstacles()
	got[0].Width = 999

	if again := m.Obstacles(); again[0].Width != 30 {
		t.Fatalf("mutating the returned slice changed the map")
	}
}

func TestObstacleAtExactBoundaryZeroTolerance(t *testing.T) {
	// Zero tolerance must still surface obstacles whose rectangle merely
	// touches the query point. Enough obstacles to exercise real index
	// nodes, then every corner and edge midpoint of one of them.
	m := newTestMap(t, 0)
	for x := 0.0; x < 140; x += 10 {
		for y := 0.0; y < 90; y += 10 {
			if err := m.AddObstacle(Obstacle{X: x + 2, Y: y + 2, Width: 4, Height: 4}); err != nil {
				t.Fatalf("AddObstacle: %v", err)
			}
		}
	}

	target := Obstacle{X: 22, Y: 32, Width: 4, Height: 4}
	boundaryPoints := []Point{
		{X: 22, Y: 32}, {X: 26, Y: 32}, {X: 22, Y: 36}, {X: 26, Y: 36},
		{X: 24, Y: 32}, {X: 24, Y: 36}, {X: 22, Y: 34}, {X: 26, Y: 34},
	}
	for _, p := range boundaryPoints {
		o, _, ok := m.ObstacleAt(p)
		if !ok {
			t.Fatalf("ObstacleAt(%+v) missed the boundary obstacle", p)
		}
		if o != target {
			t.Fatalf("ObstacleAt(%+v) = %+v, want %+v", p, o, target)
		}
		if r := Validate(p, m); r.OK {
			t.Fatalf("Validate(%+v) accepted a boundary point", p)
		}
	}
}

func TestObstacleAtManyObstacles(t *testing.T) {
	// Enough entries to force real R-tree node splits.
	m := newTestMap(t, 0)
	for x := 0.0; x < 140; x += 10 {
		for y := 0.0; y < 90; y += 10 {
			if err := m.AddObstacle(Obstacle{X: x + 2, Y: y + 2, Width: 4, Height: 4}); err != nil {
				t.Fatalf("AddObstacle: %v", err)
			}
		}
	}

	if _, _, ok := m.ObstacleAt(Point{X: 24, Y: 34}); !ok {
		t.Fatalf("point inside a grid obstacle not found")
	}
	if _, _, ok := m.ObstacleAt(Point{X: 20, Y: 30}); ok {
		t.Fatalf("point in a grid gap reported as colliding")
	}
}
