package collision

import (
	"math"
	"slices"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/obstacle"
)

// ObstacleIndex is the broad phase over live obstacles. Implementations may trade memory for
// query speed; the detector contract is the same for all of them.
type ObstacleIndex interface {
	// Rebuild replaces the indexed set. Called once per tick after obstacles move.
	//
	// Parameters:
	//   - obs: the live obstacles
	Rebuild(obs []*obstacle.Obstacle)

	// Query calls fn for every obstacle that may lie within reach of p (plus its own radius).
	// Iteration stops when fn returns false.
	//
	// Parameters:
	//   - p: query point
	//   - reach: extra distance beyond each obstacle's radius
	//   - fn: visitor
	Query(p common.Vec3, reach float32, fn func(o *obstacle.Obstacle) bool)

	// Len returns the number of indexed obstacles.
	Len() int
}

// LinearIndex scans every obstacle. O(N) per query; the default at the observed scale.
type LinearIndex struct {
	obs []*obstacle.Obstacle
}

var _ ObstacleIndex = &LinearIndex{}

// NewLinearIndex creates an empty LinearIndex.
func NewLinearIndex() *LinearIndex {
	return &LinearIndex{}
}

// Rebuild snapshots obs; later edits to the caller's slice do not reach the index.
func (l *LinearIndex) Rebuild(obs []*obstacle.Obstacle) {
	l.obs = slices.Clone(obs)
}

func (l *LinearIndex) Query(_ common.Vec3, _ float32, fn func(o *obstacle.Obstacle) bool) {
	for _, o := range l.obs {
		if o == nil {
			continue
		}
		if !fn(o) {
			return
		}
	}
}

func (l *LinearIndex) Len() int {
	return len(l.obs)
}

type cellKey struct {
	x, y, z int32
}

// GridIndex is a uniform spatial hash over obstacle centers.
// A query visits every cell overlapped by the sphere of radius reach + largest obstacle radius.
type GridIndex struct {
	cellSize  float32
	cells     map[cellKey][]*obstacle.Obstacle
	maxRadius float32
	count     int
}

var _ ObstacleIndex = &GridIndex{}

// NewGridIndex creates a spatial hash with the given cell size. Non-positive sizes fall back to 8.
//
// Parameters:
//   - cellSize: edge length of one cell in world units
//
// Returns:
//   - *GridIndex: the newly created index
func NewGridIndex(cellSize float32) *GridIndex {
	if cellSize <= 0 {
		cellSize = 8
	}
	return &GridIndex{
		cellSize: cellSize,
		cells:    make(map[cellKey][]*obstacle.Obstacle),
	}
}

func (g *GridIndex) key(p common.Vec3) cellKey {
	return cellKey{
		x: int32(math.Floor(float64(p[0] / g.cellSize))),
		y: int32(math.Floor(float64(p[1] / g.cellSize))),
		z: int32(math.Floor(float64(p[2] / g.cellSize))),
	}
}

func (g *GridIndex) Rebuild(obs []*obstacle.Obstacle) {
	for k, bucket := range g.cells {
		if len(bucket) == 0 {
			delete(g.cells, k)
			continue
		}
		clear(bucket)
		g.cells[k] = bucket[:0]
	}
	g.maxRadius = 0
	g.count = 0
	for _, o := range obs {
		if o == nil {
			continue
		}
		g.count++
		k := g.key(o.Position)
		g.cells[k] = append(g.cells[k], o)
		g.maxRadius = max(g.maxRadius, o.CollisionRadius)
	}
}

func (g *GridIndex) Query(p common.Vec3, reach float32, fn func(o *obstacle.Obstacle) bool) {
	r := reach + g.maxRadius
	lo := g.key(p.Sub(common.Vec3{r, r, r}))
	hi := g.key(p.Add(common.Vec3{r, r, r}))
	for x := lo.x; x <= hi.x; x++ {
		for y := lo.y; y <= hi.y; y++ {
			for z := lo.z; z <= hi.z; z++ {
				for _, o := range g.cells[cellKey{x, y, z}] {
					if !fn(o) {
						return
					}
				}
			}
		}
	}
}

func (g *GridIndex) Len() int {
	return g.count
}
