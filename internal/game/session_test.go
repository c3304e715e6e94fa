package game

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/entity"
	"github.com/vovakirdan/tui-pacman/internal/tilemap"
)

func grid(t *testing.T, rows [][]int) *tilemap.Map {
	t.Helper()
	m, err := tilemap.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows() failed: %v", err)
	}
	return m
}

func opts(agent Spawn, v float64, autopilot bool, ghosts ...Spawn) Options {
	return Options{
		Agent:         agent,
		AgentVelocity: v,
		Autopilot:     autopilot,
		Enemies:       ghosts,
		EnemyVelocity: 0.1,
		Rerandomize:   entity.DefaultRerandomize,
		TileW:         2,
		TileH:         1,
		Seed:          1,
	}
}

func newSession(t *testing.T, m *tilemap.Map, o Options) *Session {
	t.Helper()
	s, err := NewSession(m, o)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func TestDefeatKeepsScore(t *testing.T) {
	m := grid(t, [][]int{
		{0, 0, 0, 0, 0},
		{0, 4, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 3},
	})
	s := newSession(t, m, opts(Spawn{1.5, 1.5}, 0.1, false, Spawn{1.5, 1.5}))

	res := s.Step(Input{})
	if want := Defeat(5); res.Outcome != want {
		t.Fatalf("Outcome = %v, expected %v", res.Outcome, want)
	}
	if res.Outcome.ExitCode() != ExitDefeat {
		t.Errorf("ExitCode() = %d, expected %d", res.Outcome.ExitCode(), ExitDefeat)
	}
	if !hasEvent(res.Events, EventOutcome) {
		t.Error("expected an outcome event")
	}
}

func TestVictorySumsPoints(t *testing.T) {
	m := grid(t, [][]int{{0, 3, 4, 3}})
	s := newSession(t, m, opts(Spawn{0, 0}, 1, true))

	var results []StepResult
	for range 10 {
		res := s.Step(Input{})
		results = append(results, res)
		if res.Outcome.Done() {
			break
		}
	}
	if len(results) != 3 {
		t.Fatalf("session took %d ticks, expected 3", len(results))
	}
	if want := Victory(7); s.Outcome() != want {
		t.Errorf("Outcome() = %v, expected %v", s.Outcome(), want)
	}
	if !hasEvent(results[0].Events, EventFoodEaten) {
		t.Errorf("tick 1 events = %v, expected food eaten", results[0].Events)
	}
	if !hasEvent(results[1].Events, EventExtraPoints) {
		t.Errorf("tick 2 events = %v, expected extra points", results[1].Events)
	}
	if s.Board().Count(tilemap.Food) != 0 {
		t.Error("expected no food left on the board")
	}
}

func TestNoFoodIsImmediateVictory(t *testing.T) {
	s := newSession(t, grid(t, [][]int{{0, 2}, {1, 0}}), opts(Spawn{0, 0}, 0.4, true))
	if want := Victory(0); s.Outcome() != want {
		t.Errorf("Outcome() = %v, expected %v", s.Outcome(), want)
	}
	if res := s.Step(Input{}); res.Tick != 0 {
		t.Errorf("Step() after the end advanced to tick %d", res.Tick)
	}
}

func TestUnreachableAtStart(t *testing.T) {
	s := newSession(t, grid(t, [][]int{{0, 1, 3}}), opts(Spawn{0, 0}, 0.4, true))
	if want := Unreachable(0); s.Outcome() != want {
		t.Errorf("Outcome() = %v, expected %v", s.Outcome(), want)
	}
	if s.Outcome().ExitCode() != ExitUnreachable {
		t.Errorf("ExitCode() = %d, expected %d", s.Outcome().ExitCode(), ExitUnreachable)
	}
}

func TestUnreachableAfterEating(t *testing.T) {
	s := newSession(t, grid(t, [][]int{{3, 0, 1, 3}}), opts(Spawn{1, 0}, 1, true))
	res := s.Step(Input{})
	if want := Unreachable(1); res.Outcome != want {
		t.Errorf("Outcome = %v, expected %v", res.Outcome, want)
	}
}

func TestShieldAbsorbsOneContact(t *testing.T) {
	m := grid(t, [][]int{
		{0, 0, 0, 0},
		{0, 5, 0, 0},
		{0, 0, 0, 3},
	})
	s := newSession(t, m, opts(Spawn{1.5, 1.5}, 0.1, false, Spawn{1.5, 1.5}))
	if !s.Snapshot().Shield {
		t.Fatal("expected the spawn tile to grant a shield")
	}

	res := s.Step(Input{})
	if res.Outcome.Done() {
		t.Fatalf("Outcome = %v, expected the shield to save the agent", res.Outcome)
	}
	if !hasEvent(res.Events, EventShieldUsed) {
		t.Errorf("events = %v, expected shield used", res.Events)
	}

	// The ghost is still on the same tile.
	res = s.Step(Input{})
	if want := Defeat(0); res.Outcome != want {
		t.Errorf("Outcome = %v, expected %v", res.Outcome, want)
	}
}

func TestCollisionCheckedBeforeVictory(t *testing.T) {
	// A one-row map pins the ghost to tile (1,0) whatever its heading.
	s := newSession(t, grid(t, [][]int{{0, 3}}), opts(Spawn{0, 0}, 1, true, Spawn{1.5, 0.5}))
	res := s.Step(Input{})
	if want := Defeat(1); res.Outcome != want {
		t.Errorf("Outcome = %v, expected %v", res.Outcome, want)
	}
}

func TestManualSteering(t *testing.T) {
	m := grid(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 3},
	})
	s := newSession(t, m, opts(Spawn{0, 0}, 1, false))

	s.Step(Input{})
	if got := s.Snapshot().Agent; got.X != 0 || got.Y != 0 {
		t.Fatalf("agent moved to (%v, %v) without input", got.X, got.Y)
	}

	s.Step(Input{Dir: entity.DirEast})
	s.Step(Input{})
	if got := s.Snapshot().Agent; got.X != 2 || got.Dir != entity.DirEast {
		t.Fatalf("agent = %+v, expected to keep heading east to x=2", got)
	}

	s.Step(Input{Stop: true})
	if got := s.Snapshot().Agent; got.X != 2 || got.Dir != entity.DirIdle {
		t.Errorf("agent = %+v, expected to stop at x=2", got)
	}
}

func TestInputOverridesAutopilotForOneTick(t *testing.T) {
	m := grid(t, [][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 3},
	})
	s := newSession(t, m, opts(Spawn{1, 1}, 1, true))

	res := s.Step(Input{Dir: entity.DirNorth})
	if got := s.Snapshot().Agent; got.X != 1 || got.Y != 0 {
		t.Fatalf("agent at (%v, %v), expected (1, 0)", got.X, got.Y)
	}
	if !hasEvent(res.Events, EventPathRecomputed) {
		t.Error("expected the path to be recomputed after leaving it")
	}

	for range 10 {
		if s.Step(Input{}).Outcome.Done() {
			break
		}
	}
	if want := Victory(1); s.Outcome() != want {
		t.Errorf("Outcome() = %v, expected %v", s.Outcome(), want)
	}
}

func TestQuit(t *testing.T) {
	s := newSession(t, grid(t, [][]int{{0, 0, 3}}), opts(Spawn{0, 0}, 0.4, true))
	res := s.Step(Input{Quit: true})
	if res.Outcome.Kind != KindQuit || res.Outcome.ExitCode() != ExitAborted {
		t.Errorf("Outcome = %v exit %d, expected quit exit %d", res.Outcome, res.Outcome.ExitCode(), ExitAborted)
	}
}

func TestDeterminism(t *testing.T) {
	rows := [][]int{
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 3, 3, 3, 3, 3, 3, 1},
		{1, 3, 1, 2, 1, 1, 3, 1},
		{1, 3, 3, 0, 3, 4, 3, 1},
		{1, 3, 1, 5, 1, 0, 3, 1},
		{1, 3, 3, 3, 3, 3, 3, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
	}
	o := opts(Spawn{3, 3}, 0.4, true, Spawn{1, 1}, Spawn{6, 5})
	o.EnemyVelocity = 0.4
	o.Seed = 12345

	s1 := newSession(t, grid(t, rows), o)
	s2 := newSession(t, grid(t, rows), o)
	for i := range 300 {
		in := Input{}
		if i == 40 {
			in.Dir = entity.DirWest
		}
		s1.Step(in)
		s2.Step(in)
		if !s1.Snapshot().Equal(s2.Snapshot()) {
			t.Fatalf("tick %d: snapshots diverged:\n%+v\n%+v", i, s1.Snapshot(), s2.Snapshot())
		}
	}
}

func TestResetRestoresLevel(t *testing.T) {
	m := grid(t, [][]int{{0, 3, 4, 3}})
	s := newSession(t, m, opts(Spawn{0, 0}, 1, true))
	first := s.ID()
	if _, err := s.Run(context.Background(), 0); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	s.Reset()
	snap := s.Snapshot()
	if snap.Outcome.Done() || snap.Tick != 0 || snap.FoodLeft != 2 || snap.Score != 0 {
		t.Errorf("snapshot after Reset() = %+v", snap)
	}
	if s.Board().Count(tilemap.Food) != 2 {
		t.Error("expected the food to be back on the board")
	}
	if s.ID() == first {
		t.Error("expected a new session id after Reset()")
	}
}

func TestRunTickLimit(t *testing.T) {
	m := grid(t, [][]int{{0, 0, 0, 0, 0, 0, 0, 3}})
	s := newSession(t, m, opts(Spawn{0, 0}, 0.1, true))
	out, err := s.Run(context.Background(), 5)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if out.Done() || s.Tick() != 5 {
		t.Errorf("Run() = %v at tick %d, expected to stop at tick 5", out, s.Tick())
	}
	if out.ExitCode() != ExitAborted {
		t.Errorf("ExitCode() = %d, expected %d", out.ExitCode(), ExitAborted)
	}
}

func TestRunCancelled(t *testing.T) {
	m := grid(t, [][]int{{0, 0, 0, 3}})
	s := newSession(t, m, opts(Spawn{0, 0}, 0.1, true))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Run(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
}

func TestNewSessionRejectsBadSpawns(t *testing.T) {
	m := grid(t, [][]int{{0, 3}})
	var oob *tilemap.OutOfBoundsError

	if _, err := NewSession(m.Clone(), opts(Spawn{5, 0}, 0.4, true)); !errors.As(err, &oob) {
		t.Errorf("agent off the map: error = %v, expected OutOfBoundsError", err)
	}
	if _, err := NewSession(m.Clone(), opts(Spawn{0, 0}, 0.4, true, Spawn{0, -1})); !errors.As(err, &oob) {
		t.Errorf("ghost off the map: error = %v, expected OutOfBoundsError", err)
	}
	if _, err := NewSession(nil, DefaultOptions()); err == nil {
		t.Error("expected an error for a nil map")
	}
}

func TestDrawList(t *testing.T) {
	m := grid(t, [][]int{
		{1, 2, 3},
		{4, 5, 0},
	})
	s := newSession(t, m, opts(Spawn{2, 1}, 0.4, true, Spawn{0, 1}))

	want := []DrawRequest{
		{SpriteWall, tilemap.C(0, 0), core.NewRect(0, 0, 2, 1)},
		{SpriteBreakable, tilemap.C(1, 0), core.NewRect(2, 0, 2, 1)},
		{SpriteFood, tilemap.C(2, 0), core.NewRect(4, 0, 2, 1)},
		{SpriteExtraPoints, tilemap.C(0, 1), core.NewRect(0, 1, 2, 1)},
		{SpriteSurvival, tilemap.C(1, 1), core.NewRect(2, 1, 2, 1)},
		{SpriteEnemy, tilemap.C(0, 1), core.NewRect(0, 1, 2, 1)},
		{SpriteAgent, tilemap.C(2, 1), core.NewRect(4, 1, 2, 1)},
	}
	var got []DrawRequest
	for req := range s.DrawList() {
		got = append(got, req)
	}
	if len(got) != len(want) {
		t.Fatalf("DrawList() yielded %d requests, expected %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("request %d = %+v, expected %+v", i, got[i], want[i])
		}
	}

	n := 0
	for range s.DrawList() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("early break yielded %d requests", n)
	}
}

func TestDrawListShowsPath(t *testing.T) {
	s := newSession(t, grid(t, [][]int{{0, 0, 0, 3}}), opts(Spawn{0, 0}, 0.4, true))
	var path []tilemap.Coord
	for req := range s.DrawList() {
		if req.Sprite == SpritePath {
			path = append(path, req.Tile)
		}
	}
	if len(path) != 2 || path[0] != tilemap.C(1, 0) || path[1] != tilemap.C(2, 0) {
		t.Errorf("path sprites at %v, expected (1,0) and (2,0)", path)
	}
}

func TestEventsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	o := opts(Spawn{0, 0}, 1, true)
	o.Logger = logger
	s := newSession(t, grid(t, [][]int{{0, 3}}), o)
	s.Step(Input{})

	out := buf.String()
	for _, want := range []string{"food_eaten", "session=" + s.ID().String(), "session ended"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
