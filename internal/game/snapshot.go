package game

import "github.com/vovakirdan/tui-pacman/internal/entity"

// BodySnapshot is the position and heading of one body.
type BodySnapshot struct {
	X, Y float64
	Dir  entity.Direction
}

// Snapshot captures the session state for determinism testing and the HUD.
type Snapshot struct {
	Tick      uint64
	Score     int
	FoodLeft  int
	Shield    bool
	Distance  int // hops to the nearest food, -1 without a route
	Autopilot bool
	Agent     BodySnapshot
	Enemies   []BodySnapshot
	Outcome   Outcome
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		Score:     s.agent.Score,
		FoodLeft:  s.agent.FoodLeft,
		Shield:    s.agent.HasShield(),
		Distance:  s.agent.DistanceToFood(),
		Autopilot: s.opts.Autopilot,
		Agent:     BodySnapshot{X: s.agent.X, Y: s.agent.Y, Dir: s.agent.Dir},
		Enemies:   make([]BodySnapshot, len(s.enemies)),
		Outcome:   s.outcome,
	}
	for i, e := range s.enemies {
		snap.Enemies[i] = BodySnapshot{X: e.X, Y: e.Y, Dir: e.Dir}
	}
	return snap
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tick != o.Tick || s.Score != o.Score || s.FoodLeft != o.FoodLeft ||
		s.Shield != o.Shield || s.Distance != o.Distance || s.Autopilot != o.Autopilot ||
		s.Agent != o.Agent || s.Outcome != o.Outcome || len(s.Enemies) != len(o.Enemies) {
		return false
	}
	for i := range s.Enemies {
		if s.Enemies[i] != o.Enemies[i] {
			return false
		}
	}
	return true
}
