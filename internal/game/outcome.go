package game

import "fmt"

// Kind identifies how a session ended.
type Kind int

const (
	KindNone        Kind = iota // still running
	KindVictory                 // every food tile eaten
	KindDefeat                  // caught by a ghost without a shield
	KindUnreachable             // food remains but cannot be reached
	KindQuit                    // the player left before the end
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "running"
	case KindVictory:
		return "victory"
	case KindDefeat:
		return "defeat"
	case KindUnreachable:
		return "unreachable"
	case KindQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of a session together with the final score.
type Outcome struct {
	Kind  Kind
	Score int
}

// Victory, Defeat and Unreachable build terminal outcomes.
func Victory(score int) Outcome     { return Outcome{Kind: KindVictory, Score: score} }
func Defeat(score int) Outcome      { return Outcome{Kind: KindDefeat, Score: score} }
func Unreachable(score int) Outcome { return Outcome{Kind: KindUnreachable, Score: score} }

// Done reports whether the session has ended.
func (o Outcome) Done() bool {
	return o.Kind != KindNone
}

// Exit status codes for the command line.
const (
	ExitVictory     = 0
	ExitError       = 1
	ExitDefeat      = 2
	ExitUnreachable = 3
	ExitAborted     = 4
)

// ExitCode maps the outcome to a process exit status. A session that has
// not reached an outcome counts as aborted.
func (o Outcome) ExitCode() int {
	switch o.Kind {
	case KindVictory:
		return ExitVictory
	case KindDefeat:
		return ExitDefeat
	case KindUnreachable:
		return ExitUnreachable
	default:
		return ExitAborted
	}
}

func (o Outcome) String() string {
	return fmt.Sprintf("%s (score %d)", o.Kind, o.Score)
}
