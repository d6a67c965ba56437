package sim

// State is the control FSM state. The numeric values match the wire
// encoding of the fabricated design's 2-bit action output.
type State uint8

const (
	StateIdle   State = 0 // waiting for the next qualifying tick
	StateUpdate State = 1 // computing the next generation
	StateCopy   State = 2 // committing the working buffer
	StateInit   State = 3 // (re)seeding after reset or randomize
)

// String returns the state name as used in simulation logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateUpdate:
		return "UPDATE"
	case StateCopy:
		return "COPY"
	case StateInit:
		return "INIT"
	}
	return "UNKNOWN"
}

// StateForName returns the state with the given name.
// The bool is false if the name does not match any state.
func StateForName(name string) (State, bool) {
	switch name {
	case "IDLE":
		return StateIdle, true
	case "UPDATE":
		return StateUpdate, true
	case "COPY":
		return StateCopy, true
	case "INIT":
		return StateInit, true
	}
	return StateIdle, false
}

// Cycles spent in each timed state before advancing. The silicon only
// guarantees each state is held for at least one cycle; these fixed
// durations are the model's documented choice.
const (
	initCycles   = 8
	updateCycles = 4
	copyCycles   = 4
)

// ControlFSM is the 4-state scheduler that paces grid updates off the
// vsync tick. It is the sole writer of state and timer; both change
// only inside Step.
type ControlFSM struct {
	state State
	timer uint32 // cycles accumulated since the last consumed tick
	phase int    // cycles spent in the current timed state

	threshold uint32 // timer value required for a tick to qualify
}

// NewControlFSM creates a control FSM that requires the timer to reach
// threshold before a tick pulse may trigger a transition out of IDLE.
// Power-on state is INIT, matching the reset state of the silicon.
func NewControlFSM(threshold uint32) *ControlFSM {
	return &ControlFSM{
		state:     StateInit,
		threshold: threshold,
	}
}

// State returns the current FSM state.
func (f *ControlFSM) State() State {
	return f.state
}

// Timer returns the current timer value.
func (f *ControlFSM) Timer() uint32 {
	return f.timer
}

// SetTimer overwrites the timer, the software equivalent of the
// testbench poking the register to skip the wait for a full update
// interval. Only poke while the FSM is idle or paused; the FSM itself
// writes the timer on every running cycle.
func (f *ControlFSM) SetTimer(v uint32) {
	f.timer = v
}

// Threshold returns the qualifying timer threshold.
func (f *ControlFSM) Threshold() uint32 {
	return f.threshold
}

// Step advances the FSM by one rising clock edge.
//
// resetN is the active-low reset line and is evaluated before all other
// transition logic: while low the FSM is held in INIT with the timer
// cleared, regardless of any in-progress UPDATE/COPY sequence. running
// is level-sensitive and sampled every edge. randomize is sampled only
// on the exact edge a qualifying tick transition occurs; on any other
// edge it is ignored.
func (f *ControlFSM) Step(resetN, running, randomize, tick bool) {
	if !resetN {
		f.state = StateInit
		f.timer = 0
		f.phase = 0
		return
	}

	// The timer accumulates first, then the transition logic compares
	// it. A consuming transition below overrides the increment with 0,
	// which keeps consecutive updates exactly one tick interval apart.
	if running {
		f.timer++
	}

	switch f.state {
	case StateInit:
		f.phase++
		if f.phase >= initCycles {
			f.state = StateIdle
			f.phase = 0
		}

	case StateIdle:
		// While paused the FSM holds in IDLE unconditionally: no
		// tick, threshold, or randomize logic applies.
		if running && tick && f.timer >= f.threshold {
			f.timer = 0
			f.phase = 0
			if randomize {
				f.state = StateInit
			} else {
				f.state = StateUpdate
			}
		}

	case StateUpdate:
		f.phase++
		if f.phase >= updateCycles {
			f.state = StateCopy
			f.phase = 0
		}

	case StateCopy:
		f.phase++
		if f.phase >= copyCycles {
			f.state = StateIdle
			f.phase = 0
		}
	}
}
