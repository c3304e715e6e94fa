package entity

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/tilemap"
)

// DefaultRerandomize is how many ticks an enemy keeps its heading.
const DefaultRerandomize = 20

// Enemy is a ghost wandering the map at random.
type Enemy struct {
	Mover

	Ticks  int
	Period int // ticks between forced direction changes

	rng *rand.Rand
}

// EnemyStep reports what one enemy update did.
type EnemyStep struct {
	Move    Move
	Turned  bool // a new direction was drawn this tick
	Bounced bool // the move hit a wall or the map edge
}

// NewEnemy places a ghost at (x, y) with a random initial direction drawn
// from rng. A period below one falls back to DefaultRerandomize.
func NewEnemy(x, y, velocity float64, tileW, tileH, period int, rng *rand.Rand) *Enemy {
	if period < 1 {
		period = DefaultRerandomize
	}
	e := &Enemy{
		Mover:  NewMover(x, y, velocity, tileW, tileH, EnemyPolicy),
		Period: period,
		rng:    rng,
	}
	e.Dir = RandomDirection(rng)
	return e
}

// Update advances the ghost one tick. The heading is redrawn every Period
// ticks, after bumping into a wall and after touching the map edge.
func (e *Enemy) Update(m *tilemap.Map) (EnemyStep, error) {
	var st EnemyStep

	e.Ticks++
	if e.Ticks%e.Period == 0 || e.Dir == DirIdle {
		e.Dir = RandomDirection(e.rng)
		st.Turned = true
	}

	move, err := e.Step(m)
	if err != nil {
		return st, err
	}
	st.Move = move

	if move.Rule.Blocked || move.Clamped {
		e.Dir = RandomDirection(e.rng)
		st.Turned = true
		st.Bounced = true
	}
	return st, nil
}
