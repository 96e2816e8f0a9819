// Package collision tests proposed cockpit positions against the sun, planets, moons and live obstacles.
package collision

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/body"
	"github.com/Carmen-Shannon/oxy-orrery/engine/obstacle"
	"github.com/rs/zerolog"
)

// Result is the outcome of a collision check.
type Result struct {
	// Blocked is true if the proposed position intersects any collidable.
	Blocked bool
	// Class identifies what blocked the move.
	Class Class
	// Body is set when a planet or moon blocked the move.
	Body *body.Body
	// Obstacle is set when a live obstacle blocked the move. Only obstacle hits count as game hits.
	Obstacle *obstacle.Obstacle
}

// Hit reports whether the result carries an obstacle payload.
func (r Result) Hit() bool {
	return r.Obstacle != nil
}

type detectorImpl struct {
	registry   body.Registry
	field      *obstacle.Field
	index      ObstacleIndex
	margins    Margins
	gameActive bool

	log zerolog.Logger
}

// Detector checks a proposed position against every collidable, in order:
// sun, planets, moons, then (only while game mode is active) live obstacles.
// The first intersection wins.
type Detector interface {
	// Check tests a proposed position.
	//
	// Parameters:
	//   - p: the proposed world-space position
	//
	// Returns:
	//   - Result: blocked flag and the collidable that blocked, if any
	Check(p common.Vec3) Result

	// Sync rebuilds the obstacle broad phase from the field. Check sees obstacles as of the
	// last Sync, so call it after obstacles move or the field changes.
	Sync()

	// SetIndex swaps the obstacle broad phase and rebuilds it.
	//
	// Parameters:
	//   - idx: the new index
	SetIndex(idx ObstacleIndex)

	// Index returns the current obstacle broad phase.
	Index() ObstacleIndex

	// SetGameActive enables or disables obstacle checks.
	//
	// Parameters:
	//   - active: true while game mode is running
	SetGameActive(active bool)

	// GameActive returns whether obstacle checks are enabled.
	GameActive() bool
}

var _ Detector = &detectorImpl{}

// NewDetector creates a Detector over the given registry and obstacle field.
// The default broad phase is a LinearIndex.
//
// Parameters:
//   - registry: the body registry
//   - field: the live obstacle field (may be nil when game mode is never used)
//   - options: functional options to configure the detector
//
// Returns:
//   - Detector: the newly created detector
func NewDetector(registry body.Registry, field *obstacle.Field, options ...DetectorBuilderOption) Detector {
	d := &detectorImpl{
		registry: registry,
		field:    field,
		index:    NewLinearIndex(),
		margins: Margins{
			Sun: 1.5, Planet: 1.0, Moon: 0.5,
			Asteroid: 1.2, Ship: 1.0, Projectile: 0.6,
		},
		log: zerolog.Nop(),
	}
	for _, option := range options {
		option(d)
	}
	d.Sync()
	return d
}

func (d *detectorImpl) Check(p common.Vec3) Result {
	if hits(p, sun{radius: d.registry.SunRadius()}, d.margins.Sun) {
		return Result{Blocked: true, Class: ClassSun}
	}

	bodies := d.registry.Bodies()
	for _, b := range bodies {
		if hits(p, b, d.margins.Planet) {
			return Result{Blocked: true, Class: ClassPlanet, Body: b}
		}
	}
	for _, b := range bodies {
		for _, m := range b.Moons {
			if hits(p, m, d.margins.Moon) {
				return Result{Blocked: true, Class: ClassMoon, Body: m}
			}
		}
	}

	if !d.gameActive {
		return Result{}
	}

	var res Result
	d.index.Query(p, d.margins.maxObstacle(), func(o *obstacle.Obstacle) bool {
		class := classOf(o.Kind)
		if hits(p, o, d.margins.For(class)) {
			res = Result{Blocked: true, Class: class, Obstacle: o}
			return false
		}
		return true
	})
	return res
}

func (d *detectorImpl) Sync() {
	if d.field == nil {
		d.index.Rebuild(nil)
		return
	}
	d.index.Rebuild(d.field.All())
}

func (d *detectorImpl) SetIndex(idx ObstacleIndex) {
	if idx == nil {
		return
	}
	d.index = idx
	d.Sync()
	d.log.Debug().Int("obstacles", idx.Len()).Msgf("collision broad phase set to %T", idx)
}

func (d *detectorImpl) Index() ObstacleIndex {
	return d.index
}

func (d *detectorImpl) SetGameActive(active bool) {
	d.gameActive = active
}

func (d *detectorImpl) GameActive() bool {
	return d.gameActive
}
