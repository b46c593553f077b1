package navmap

import (
	"github.com/dhconnelly/rtreego"
)

// obstacleEntry wraps an obstacle for R-tree storage, remembering
// its insertion index
type obstacleEntry struct {
	Index    int
	Obstacle Obstacle
	BBox     rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *obstacleEntry) Bounds() rtreego.Rect {
	return e.BBox
}

// spatialIndex manages obstacle containment queries
type spatialIndex struct {
	tree *rtreego.Rtree
}

func newSpatialIndex() *spatialIndex {
	return &spatialIndex{
		tree: rtreego.NewTree(2, 25, 50), // 2D, min 25, max 50 entries per node
	}
}

// insert adds an obstacle under the given insertion index
func (si *spatialIndex) insert(index int, o Obstacle) error {
	bbox, err := rtreego.NewRect(
		rtreego.Point{o.X, o.Y},
		[]float64{o.Width, o.Height},
	)
	if err != nil {
		return err
	}

	si.tree.Insert(&obstacleEntry{
		Index:    index,
		Obstacle: o,
		BBox:     bbox,
	})
	return nil
}

// probePad over-approximates the query rectangle: the R-tree treats
// rectangles that merely touch as non-intersecting, so a zero-extent probe
// would miss obstacles whose edge or corner sits exactly on the point. The
// exact containment check discards the extra candidates.
const probePad = 1e-9

// queryPoint returns entries whose rectangle may contain the point,
// widened by tolerance. Candidates still need an exact containment check.
func (si *spatialIndex) queryPoint(p Point, tolerance float64) []*obstacleEntry {
	probe := rtreego.Point{p.X, p.Y}.ToRect(tolerance + probePad)

	results := si.tree.SearchIntersect(probe)
	entries := make([]*obstacleEntry, 0, len(results))

	for _, item := range results {
		entries = append(entries, item.(*obstacleEntry))
	}

	return entries
}
