// Package game runs a level: it owns the tile map, the agent and the ghosts,
// advances them in a fixed tick order and reports the outcome. It never
// draws or reads devices; the platform feeds it Input and renders DrawList.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pacman/internal/entity"
	"github.com/vovakirdan/tui-pacman/internal/pathfind"
	"github.com/vovakirdan/tui-pacman/internal/tilemap"
)

// Spawn is a starting position in tile units.
type Spawn struct {
	X, Y float64
}

// Options configures a session.
type Options struct {
	Agent         Spawn
	AgentVelocity float64
	Autopilot     bool

	Enemies       []Spawn
	EnemyVelocity float64
	Rerandomize   int // ticks between ghost direction changes

	TileW, TileH int // screen cells per tile
	Seed         int64

	Logger *log.Logger
}

// DefaultOptions returns the classic level setup.
func DefaultOptions() Options {
	return Options{
		Agent:         Spawn{X: 5, Y: 5},
		AgentVelocity: 0.4,
		Autopilot:     true,
		Enemies:       []Spawn{{X: 2, Y: 2}, {X: 10, Y: 10}},
		EnemyVelocity: 0.4,
		Rerandomize:   entity.DefaultRerandomize,
		TileW:         2,
		TileH:         1,
	}
}

// Input is what the player asked for this tick. A zero Input leaves the
// agent to the autopilot, or to its current heading in manual mode.
type Input struct {
	Dir  entity.Direction // DirIdle means no direction key
	Stop bool
	Quit bool
}

// StepResult reports one tick.
type StepResult struct {
	Tick    uint64
	Outcome Outcome
	Events  []Event
}

// Session is one play-through of a level.
type Session struct {
	id     uuid.UUID
	opts   Options
	logger *log.Logger

	pristine *tilemap.Map
	board    *tilemap.Map
	agent    *entity.Agent
	enemies  []*entity.Enemy
	rng      *rand.Rand

	tick    uint64
	outcome Outcome
}

// NewSession starts a session on m. The session takes ownership of m and
// keeps a copy of its initial state for Reset. Spawn points outside the map
// are reported as errors.
func NewSession(m *tilemap.Map, opts Options) (*Session, error) {
	if m == nil {
		return nil, errors.New("game: nil map")
	}
	if opts.TileW < 1 {
		opts.TileW = 1
	}
	if opts.TileH < 1 {
		opts.TileH = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Session{
		opts:     opts,
		pristine: m.Clone(),
		board:    m,
	}
	if err := s.start(); err != nil {
		return nil, err
	}
	return s, nil
}

// start places every body on the current board.
func (s *Session) start() error {
	s.id = uuid.New()
	s.logger = s.opts.Logger.With("session", s.id.String())
	s.rng = rand.New(rand.NewSource(s.opts.Seed))
	s.tick = 0
	s.outcome = Outcome{}

	s.enemies = s.enemies[:0]
	for i, sp := range s.opts.Enemies {
		at := tilemap.TileOf(sp.X, sp.Y)
		if !s.board.InBounds(at) {
			return fmt.Errorf("game: ghost %d: %w", i,
				&tilemap.OutOfBoundsError{At: at, Width: s.board.Width(), Height: s.board.Height()})
		}
		s.enemies = append(s.enemies, entity.NewEnemy(sp.X, sp.Y, s.opts.EnemyVelocity,
			s.opts.TileW, s.opts.TileH, s.opts.Rerandomize, s.rng))
	}

	if at := tilemap.TileOf(s.opts.Agent.X, s.opts.Agent.Y); !s.board.InBounds(at) {
		return fmt.Errorf("game: agent: %w",
			&tilemap.OutOfBoundsError{At: at, Width: s.board.Width(), Height: s.board.Height()})
	}
	a, err := entity.NewAgent(s.board, s.opts.Agent.X, s.opts.Agent.Y, s.opts.AgentVelocity,
		s.opts.TileW, s.opts.TileH)
	switch {
	case errors.Is(err, pathfind.ErrNoFoodReachable):
		s.agent = a
		s.finish(Unreachable(a.Score))
	case err != nil:
		return fmt.Errorf("game: agent: %w", err)
	default:
		s.agent = a
		if a.Won() {
			s.finish(Victory(a.Score))
		}
	}

	s.logger.Debug("session started",
		"width", s.board.Width(), "height", s.board.Height(),
		"food", s.agent.FoodLeft, "ghosts", len(s.enemies), "seed", s.opts.Seed)
	return nil
}

// Reset restores the initial map and spawns and draws a fresh session id.
func (s *Session) Reset() {
	s.board = s.pristine.Clone()
	if err := s.start(); err != nil {
		// Spawns were accepted once on an identical board.
		panic(err)
	}
}

// Step advances the session one tick: resolve the agent's direction, move
// every ghost, move the agent, check collisions, then check for victory.
// Once an outcome is reached further steps change nothing.
func (s *Session) Step(in Input) StepResult {
	if s.outcome.Done() {
		return StepResult{Tick: s.tick, Outcome: s.outcome}
	}
	if in.Quit {
		s.finish(Outcome{Kind: KindQuit, Score: s.agent.Score})
		return StepResult{Tick: s.tick, Outcome: s.outcome}
	}

	s.tick++
	res := StepResult{Tick: s.tick}

	s.resolveDirection(in)

	for _, e := range s.enemies {
		if _, err := e.Update(s.board); err != nil {
			panic(fmt.Errorf("game: tick %d: ghost update: %w", s.tick, err))
		}
	}

	st, err := s.agent.Update(s.board)
	if err != nil {
		panic(fmt.Errorf("game: tick %d: agent update: %w", s.tick, err))
	}
	at := s.agent.Tile()
	if st.Consumed {
		res.Events = append(res.Events, eventsFor(st.Move.Cell, at, s.agent.Score)...)
	}
	if st.Replanned {
		res.Events = append(res.Events, Event{Kind: EventPathRecomputed, At: at, Score: s.agent.Score})
	}

	used, caught := s.agent.CheckCollisions(s.enemies)
	for range used {
		res.Events = append(res.Events, Event{Kind: EventShieldUsed, At: at, Score: s.agent.Score})
	}

	switch {
	case caught:
		s.finish(Defeat(s.agent.Score))
	case s.agent.Won():
		s.finish(Victory(s.agent.Score))
	case st.Unreachable:
		s.finish(Unreachable(s.agent.Score))
	}
	if s.outcome.Done() {
		res.Events = append(res.Events, Event{Kind: EventOutcome, At: at, Score: s.agent.Score})
	}

	for _, ev := range res.Events {
		s.logger.Debug(ev.Kind.String(), "tick", s.tick, "tile", ev.At.String(), "score", ev.Score)
	}

	res.Outcome = s.outcome
	return res
}

func (s *Session) resolveDirection(in Input) {
	switch {
	case in.Stop:
		s.agent.Dir = entity.DirIdle
	case in.Dir != entity.DirIdle:
		s.agent.Dir = in.Dir
	case s.opts.Autopilot:
		s.agent.Dir = s.agent.Autopilot()
	}
}

func (s *Session) finish(o Outcome) {
	s.outcome = o
	s.logger.Info("session ended", "outcome", o.Kind.String(), "score", o.Score, "tick", s.tick)
}

// Run steps the session with empty input until it ends, maxTicks is reached
// (0 means no limit) or ctx is cancelled. A session cut short returns an
// outcome of KindNone.
func (s *Session) Run(ctx context.Context, maxTicks uint64) (Outcome, error) {
	for !s.outcome.Done() {
		if maxTicks > 0 && s.tick >= maxTicks {
			s.logger.Warn("tick limit reached", "tick", s.tick, "score", s.agent.Score)
			return s.outcome, nil
		}
		if err := ctx.Err(); err != nil {
			return s.outcome, err
		}
		s.Step(Input{})
	}
	return s.outcome, nil
}

// ID returns the session id used in log records.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Tick returns the number of ticks played.
func (s *Session) Tick() uint64 {
	return s.tick
}

// Outcome returns the current outcome; KindNone while running.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Board returns the live map. Callers must not modify it.
func (s *Session) Board() *tilemap.Map {
	return s.board
}

// Autopilot reports whether the agent steers itself.
func (s *Session) Autopilot() bool {
	return s.opts.Autopilot
}

// SetAutopilot switches between autopilot and manual steering.
func (s *Session) SetAutopilot(on bool) {
	s.opts.Autopilot = on
}

// Path returns a copy of the agent's planned route.
func (s *Session) Path() []tilemap.Coord {
	return append([]tilemap.Coord(nil), s.agent.Path...)
}

// TileSize returns the screen cells covered by one tile.
func (s *Session) TileSize() (w, h int) {
	return s.opts.TileW, s.opts.TileH
}
