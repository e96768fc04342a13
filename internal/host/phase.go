package host

import "fmt"

// Phase is the verification progress of a single node. Phases only move
// forward.
type Phase int

const (
	PHASE_UNVISITED Phase = iota
	PHASE_ALPHA
	PHASE_BETA
	PHASE_FINISHED
)

func (phase Phase) String() string {
	switch phase {
	case PHASE_UNVISITED:
		return "unvisited"
	case PHASE_ALPHA:
		return "alpha"
	case PHASE_BETA:
		return "beta"
	case PHASE_FINISHED:
		return "finished"
	}
	return fmt.Sprintf("Phase(%d)", int(phase))
}
