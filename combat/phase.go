package combat

import "fmt"

// Phase is the stage of the current attack.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseStartup
	PhaseActive
	PhaseRecovery
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseStartup:
		return "startup"
	case PhaseActive:
		return "active"
	case PhaseRecovery:
		return "recovery"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}
