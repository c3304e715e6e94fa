package entity

import (
	"errors"

	"github.com/vovakirdan/tui-pacman/internal/pathfind"
	"github.com/vovakirdan/tui-pacman/internal/tilemap"
)

// AbilitySlots is the size of the agent's ability array.
const AbilitySlots = 3

// AbilitySurvive is the slot of the one-time ghost shield.
const AbilitySurvive = 0

// Agent is the player-controlled body.
type Agent struct {
	Mover

	Score     int
	Abilities [AbilitySlots]int
	FoodLeft  int

	// Path is the planned route to the nearest food, starting at the
	// agent's current tile.
	Path []tilemap.Coord
}

// AgentStep reports what one agent update did.
type AgentStep struct {
	Move        Move
	Blocked     bool // hit an unbreakable wall and stopped
	Consumed    bool // the destination tile was emptied
	Replanned   bool // the route to food was recomputed
	Unreachable bool // food remains but none can be reached
}

// NewAgent places an agent at (x, y) on m. The tile under the spawn point is
// resolved as if the agent had just walked onto it, so an agent never starts
// on top of food. An error wrapping pathfind.ErrNoFoodReachable means the
// agent was created but food is left that it cannot reach.
func NewAgent(m *tilemap.Map, x, y, velocity float64, tileW, tileH int) (*Agent, error) {
	a := &Agent{
		Mover:    NewMover(x, y, velocity, tileW, tileH, AgentPolicy),
		FoodLeft: m.Count(tilemap.Food),
	}

	move, err := a.Plan(m)
	if err != nil {
		return nil, err
	}
	if _, err := a.apply(m, move); err != nil {
		return nil, err
	}

	if a.FoodLeft == 0 {
		return a, nil
	}
	return a, a.Replan(m)
}

// Update moves the agent one tick in its current direction and applies the
// destination policy.
func (a *Agent) Update(m *tilemap.Map) (AgentStep, error) {
	move, err := a.Step(m)
	if err != nil {
		return AgentStep{}, err
	}

	st := AgentStep{Move: move}
	if move.Rule.Blocked {
		a.Dir = DirIdle
		st.Blocked = true
	} else {
		ate, err := a.apply(m, move)
		if err != nil {
			return st, err
		}
		st.Consumed = move.Rule.Consume
		if ate && a.FoodLeft > 0 {
			st.Replanned = true
			if err := a.Replan(m); err != nil {
				if !errors.Is(err, pathfind.ErrNoFoodReachable) {
					return st, err
				}
				st.Unreachable = true
			}
		}
	}

	if !st.Unreachable && a.FoodLeft > 0 {
		replanned, err := a.maintainPath(m)
		st.Replanned = st.Replanned || replanned
		if err != nil {
			if !errors.Is(err, pathfind.ErrNoFoodReachable) {
				return st, err
			}
			st.Unreachable = true
		}
	}
	return st, nil
}

// apply performs the side effects of entering move's tile and reports
// whether food was eaten.
func (a *Agent) apply(m *tilemap.Map, move Move) (bool, error) {
	rule := move.Rule
	if rule.Blocked {
		return false, nil
	}
	if rule.Consume {
		if err := m.Consume(move.X, move.Y); err != nil {
			return false, err
		}
	}
	a.Score += rule.Points
	if rule.Shield {
		a.Abilities[AbilitySurvive] = 1
	}
	if rule.Food {
		a.FoodLeft--
		a.Path = nil
	}
	return rule.Food, nil
}

// Replan recomputes the route to the nearest food from the current tile.
// On failure the path is cleared.
func (a *Agent) Replan(m *tilemap.Map) error {
	path, err := pathfind.NearestFood(m, a.Tile())
	if err != nil {
		a.Path = nil
		return err
	}
	a.Path = path
	return nil
}

// maintainPath keeps the path anchored at the agent's tile: the first hop is
// popped once reached, and a route the agent has left is recomputed.
func (a *Agent) maintainPath(m *tilemap.Map) (bool, error) {
	cur := a.Tile()
	if len(a.Path) >= 2 && a.Path[1] == cur {
		a.Path = a.Path[1:]
	}
	if len(a.Path) > 0 && a.Path[0] == cur {
		return false, nil
	}
	return true, a.Replan(m)
}

// Autopilot returns the direction toward the next hop of the path, or
// DirIdle when there is no next hop.
func (a *Agent) Autopilot() Direction {
	if len(a.Path) < 2 {
		return DirIdle
	}
	return Toward(a.Path[0], a.Path[1])
}

// HasShield reports whether the agent can survive a ghost.
func (a *Agent) HasShield() bool {
	return a.Abilities[AbilitySurvive] != 0
}

// CheckCollisions tests the agent against every enemy sharing its tile.
// A shield absorbs one contact; it returns the number of shields spent and
// whether an unshielded contact happened.
func (a *Agent) CheckCollisions(enemies []*Enemy) (shieldsUsed int, caught bool) {
	cur := a.Tile()
	for _, e := range enemies {
		if e.Tile() != cur {
			continue
		}
		if a.HasShield() {
			a.Abilities[AbilitySurvive] = 0
			shieldsUsed++
			continue
		}
		return shieldsUsed, true
	}
	return shieldsUsed, false
}

// Won reports whether every food tile has been eaten.
func (a *Agent) Won() bool {
	return a.FoodLeft == 0
}

// DistanceToFood returns the number of hops left on the planned path, or -1
// without a path.
func (a *Agent) DistanceToFood() int {
	if len(a.Path) == 0 {
		return -1
	}
	return len(a.Path) - 1
}
