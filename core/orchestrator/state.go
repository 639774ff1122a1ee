package orchestrator

// State tracks where a panel run currently is. Transitions are strictly
// forward: Pending → RunningIndividual → RunningIntegration → Done, with
// RunningIntegration skipped when no individual seat succeeded or the
// integration seat is disabled.
type State int

const (
	// StatePending indicates the run has not started.
	StatePending State = iota
	// StateRunningIndividual indicates the run is looping over the enabled
	// non-integration seats.
	StateRunningIndividual
	// StateRunningIntegration indicates the synthesis seat is executing.
	StateRunningIntegration
	// StateDone indicates the run finished, possibly with failed seats.
	StateDone
)

var stateNames = map[State]string{
	StatePending:            "pending",
	StateRunningIndividual:  "running_individual",
	StateRunningIntegration: "running_integration",
	StateDone:               "done",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
