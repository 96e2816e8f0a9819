// Package score runs the arcade game mode: elapsed time, spawn cadence, speed steps and scoring.
package score

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/config"
	"github.com/Carmen-Shannon/oxy-orrery/engine/obstacle"
	"github.com/rs/zerolog"
)

type controllerImpl struct {
	mu *sync.Mutex

	field   *obstacle.Field
	spawner *obstacle.Spawner

	state      State
	score      float32
	elapsed    float32
	spawnTimer float32
	finalScore int
	reported   int

	spawnInterval     float32
	speedStepInterval float32
	speedStep         float32
	scoreRate         float32

	onScoreChanged func(int)
	onGameOver     func(int)
	onSpawn        func(int)

	log zerolog.Logger
}

// Controller is the game-mode state machine: Inactive → Active → GameOver → (Restart) → Active.
// Only game obstacles (asteroids and projectiles) are spawned and cleared here; ships are left alone.
type Controller interface {
	// Start enters Active from Inactive. It is a no-op in any other state.
	//
	// Returns:
	//   - bool: true if the game started
	Start() bool

	// Stop returns to Inactive from any state and clears game obstacles.
	Stop()

	// Restart resets elapsed time, spawn timer, score and game obstacles, then enters Active.
	Restart()

	// Tick advances an active game by dt seconds: accrues score and spawns a batch every spawn interval.
	// While colliding, elapsed time and the spawn cadence keep running but no score accrues.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	//   - anchor: current cockpit position
	//   - forward: current cockpit forward vector
	//   - colliding: true when this tick's move was blocked by the sun, a planet or a moon
	//
	// Returns:
	//   - int: number of obstacles spawned this tick
	Tick(dt float32, anchor, forward common.Vec3, colliding bool) int

	// Hit ends an active game: the score is snapshotted, then reset to 0.
	//
	// Returns:
	//   - int: the final score
	//   - bool: false if no game was active
	Hit() (int, bool)

	// Multiplier returns the current speed multiplier.
	//
	// Returns:
	//   - float32: 1 + floor(elapsed / step interval) * step
	Multiplier() float32

	// State returns the lifecycle state.
	State() State

	// Snapshot returns a copy of the full controller state.
	Snapshot() Snapshot
}

var _ Controller = &controllerImpl{}

// NewController creates an Inactive game-mode controller that spawns into field.
//
// Parameters:
//   - field: the live obstacle field
//   - spawner: the obstacle spawner
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(field *obstacle.Field, spawner *obstacle.Spawner, options ...ControllerBuilderOption) Controller {
	c := &controllerImpl{
		mu:      &sync.Mutex{},
		field:   field,
		spawner: spawner,
		state:   StateInactive,
		log:     zerolog.Nop(),
	}
	applyTuning(c, config.DefaultTuning())
	for _, option := range options {
		option(c)
	}
	return c
}

func applyTuning(c *controllerImpl, t config.Tuning) {
	c.spawnInterval = float32(t.SpawnInterval.Seconds())
	c.speedStepInterval = float32(t.SpeedStepInterval.Seconds())
	c.speedStep = t.SpeedStep
	c.scoreRate = t.ScoreRate
}

func (c *controllerImpl) Start() bool {
	c.mu.Lock()
	if c.state != StateInactive {
		c.mu.Unlock()
		return false
	}
	c.reset()
	c.state = StateActive
	c.mu.Unlock()

	c.log.Info().Msg("game started")
	c.notifyScore(0)
	return true
}

func (c *controllerImpl) Stop() {
	c.mu.Lock()
	c.reset()
	c.state = StateInactive
	c.mu.Unlock()

	c.log.Info().Msg("game stopped")
}

func (c *controllerImpl) Restart() {
	c.mu.Lock()
	c.reset()
	c.state = StateActive
	c.mu.Unlock()

	c.log.Info().Msg("game restarted")
	c.notifyScore(0)
}

// reset clears the run and removes game obstacles. Caller must hold the mutex.
func (c *controllerImpl) reset() {
	c.score = 0
	c.elapsed = 0
	c.spawnTimer = 0
	c.reported = 0
	if c.field != nil {
		c.field.ClearKind(obstacle.KindAsteroid)
		c.field.ClearKind(obstacle.KindProjectile)
	}
}

func (c *controllerImpl) Tick(dt float32, anchor, forward common.Vec3, colliding bool) int {
	c.mu.Lock()
	if c.state != StateActive || dt <= 0 || !common.IsFinite(dt) {
		c.mu.Unlock()
		return 0
	}

	c.elapsed += dt
	mult := c.multiplier()
	if !colliding {
		c.score += dt * c.scoreRate * mult
	}

	spawned := 0
	c.spawnTimer += dt
	if c.spawnInterval > 0 && c.spawnTimer >= c.spawnInterval {
		c.spawnTimer = float32(math.Mod(float64(c.spawnTimer), float64(c.spawnInterval)))
		if c.field != nil && c.spawner != nil {
			spawned = len(c.spawner.SpawnBatch(c.field, anchor, forward, mult))
		}
	}

	whole := int(c.score)
	changed := whole != c.reported
	c.reported = whole
	c.mu.Unlock()

	if spawned > 0 {
		c.log.Debug().Int("count", spawned).Float32("multiplier", mult).Msg("spawned obstacles")
		if c.onSpawn != nil {
			c.onSpawn(spawned)
		}
	}
	if changed {
		c.notifyScore(whole)
	}
	return spawned
}

func (c *controllerImpl) Hit() (int, bool) {
	c.mu.Lock()
	if c.state != StateActive {
		c.mu.Unlock()
		return 0, false
	}
	final := int(c.score)
	c.finalScore = final
	c.state = StateGameOver
	c.score = 0
	c.reported = 0
	c.mu.Unlock()

	c.log.Info().Int("score", final).Msg("game over")
	if c.onGameOver != nil {
		c.onGameOver(final)
	}
	c.notifyScore(0)
	return final, true
}

func (c *controllerImpl) Multiplier() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.multiplier()
}

// multiplier computes the stepped speed multiplier. Caller must hold the mutex.
func (c *controllerImpl) multiplier() float32 {
	if c.speedStepInterval <= 0 {
		return 1
	}
	steps := float32(math.Floor(float64(c.elapsed / c.speedStepInterval)))
	return 1 + steps*c.speedStep
}

func (c *controllerImpl) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *controllerImpl) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:      c.state,
		Score:      c.score,
		Elapsed:    c.elapsed,
		SpawnTimer: c.spawnTimer,
		Multiplier: c.multiplier(),
		FinalScore: c.finalScore,
	}
}

func (c *controllerImpl) notifyScore(v int) {
	if c.onScoreChanged != nil {
		c.onScoreChanged(v)
	}
}
