package sim

// Event represents a discrete occurrence during a simulation step,
// consumed by audio/score/particle collaborators outside the core.
type Event interface {
	simEvent()
}

// RunStartedEvent is emitted when a run begins or is reseeded.
type RunStartedEvent struct {
	Seed uint32
}

func (RunStartedEvent) simEvent() {}

// GatePassedEvent is emitted when the player reaches a gate.
type GatePassedEvent struct {
	Index    int
	Distance float64
}

func (GatePassedEvent) simEvent() {}

// FellOffEvent is emitted when the player leaves the ribbon edge.
type FellOffEvent struct{}

func (FellOffEvent) simEvent() {}

// RecoveredEvent is emitted when an airborne player re-lands.
type RecoveredEvent struct{}

func (RecoveredEvent) simEvent() {}

// RunEndedEvent is emitted when the player falls below the fall depth.
type RunEndedEvent struct {
	Score    int
	Distance float64
}

func (RunEndedEvent) simEvent() {}
