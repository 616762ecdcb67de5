package sim

// clockEpsilon absorbs float64 representation error in the banked
// time: a frame worth exactly N steps must yield N, not N-1.
const clockEpsilon = 1e-9

// Clock decouples variable frame time from simulation time with an
// accumulator: each frame's wall-clock delta is clamped (so a single
// slow frame cannot tunnel the player through the track) and banked;
// the simulation then advances in fixed-size steps for as many steps
// as the bank allows, carrying the remainder into the next frame.
type Clock struct {
	fixedStep   float64
	maxFrame    float64
	accumulator float64
}

// NewClock creates a clock from the physics step configuration.
func NewClock(stepsPerSecond int, maxFrameTime float64) *Clock {
	step := 1.0 / 120.0
	if stepsPerSecond > 0 {
		step = 1.0 / float64(stepsPerSecond)
	}
	if maxFrameTime <= 0 {
		maxFrameTime = 0.25
	}
	return &Clock{fixedStep: step, maxFrame: maxFrameTime}
}

// FixedStep returns the simulation step size in seconds.
func (c *Clock) FixedStep() float64 {
	return c.fixedStep
}

// Advance banks a frame's wall-clock delta and returns how many fixed
// steps the simulation should take. While paused the accumulator is
// frozen entirely: no steps, no banked time. timeScale below 1 gives
// slow motion; values <= 0 are treated as 1.
func (c *Clock) Advance(frameTime float64, paused bool, timeScale float64) int {
	if paused {
		return 0
	}
	if frameTime > c.maxFrame {
		frameTime = c.maxFrame
	}
	if frameTime < 0 {
		frameTime = 0
	}
	if timeScale <= 0 {
		timeScale = 1
	}
	c.accumulator += frameTime * timeScale

	steps := 0
	for c.accumulator+clockEpsilon >= c.fixedStep {
		c.accumulator -= c.fixedStep
		steps++
	}
	if c.accumulator < 0 {
		c.accumulator = 0
	}
	return steps
}

// Reset drops any banked time, used on hard resets.
func (c *Clock) Reset() {
	c.accumulator = 0
}
