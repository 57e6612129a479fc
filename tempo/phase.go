package tempo

import "fmt"

// Phase is the lifecycle phase of a renderer. It only ever moves
// forward, Exited is terminal.
type Phase int

const (
	PhaseConfiguring Phase = iota
	PhaseRunning
	PhaseExited
)

func (p Phase) String() string {
	switch p {
	case PhaseConfiguring:
		return "Configuring"
	case PhaseRunning:
		return "Running"
	case PhaseExited:
		return "Exited"
	}

	return fmt.Sprintf("Phase(%d)", int(p))
}
