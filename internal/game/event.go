package game

import "github.com/vovakirdan/tui-pacman/internal/tilemap"

// EventKind classifies something that happened during a step.
type EventKind int

const (
	EventFoodEaten EventKind = iota
	EventWallBroken
	EventExtraPoints
	EventShieldPicked
	EventShieldUsed
	EventPathRecomputed
	EventOutcome
)

func (k EventKind) String() string {
	switch k {
	case EventFoodEaten:
		return "food_eaten"
	case EventWallBroken:
		return "wall_broken"
	case EventExtraPoints:
		return "extra_points"
	case EventShieldPicked:
		return "shield_picked"
	case EventShieldUsed:
		return "shield_used"
	case EventPathRecomputed:
		return "path_recomputed"
	case EventOutcome:
		return "outcome"
	default:
		return "unknown"
	}
}

// Event is a single notable change in a step.
type Event struct {
	Kind  EventKind
	At    tilemap.Coord // agent tile when it happened
	Score int           // score after the event
}

// eventsFor turns the cell the agent just entered into events.
func eventsFor(cell tilemap.Cell, at tilemap.Coord, score int) []Event {
	var kind EventKind
	switch cell {
	case tilemap.Food:
		kind = EventFoodEaten
	case tilemap.BreakableWall:
		kind = EventWallBroken
	case tilemap.ArtifactExtraPoints:
		kind = EventExtraPoints
	case tilemap.ArtifactSurvival:
		kind = EventShieldPicked
	default:
		return nil
	}
	return []Event{{Kind: kind, At: at, Score: score}}
}
