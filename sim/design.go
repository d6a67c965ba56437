package sim

// Model identity, reported by the CLI.
const (
	Name    = "summersim"
	Version = "1.0.0"
)

// Design is the top-level simulation model of the SummerTT control
// logic: the vsync tick source and the scheduler FSM composed on a
// single clock domain, behind the chip's pad-level interface.
type Design struct {
	vsync *VSync
	fsm   *ControlFSM

	timing Timing
	cycles uint64

	// Pad state, sampled by Step.
	resetN bool
	ena    bool
	uiIn   byte
}

// NewDesign creates a design model with the given timing profile.
// The pads power up with reset asserted and enable high; the first
// Step therefore evaluates the reset path, as on the real part.
func NewDesign(timing Timing) *Design {
	return &Design{
		vsync:  NewVSync(timing.TickInterval()),
		fsm:    NewControlFSM(timing.UpdateThreshold()),
		timing: timing,
		resetN: false,
		ena:    true,
	}
}

// Step advances the whole design by one rising clock edge.
//
// The tick source advances first and the FSM second, so the FSM samples
// the pulse belonging to this edge. With enable low the die holds: no
// counter on the chip advances.
func (d *Design) Step() {
	if !d.ena {
		return
	}
	tick := d.vsync.Step()
	d.fsm.Step(d.resetN, d.running(), d.randomize(), tick)
	d.cycles++
}

// StepCycles advances the design by n clock edges.
func (d *Design) StepCycles(n int) {
	for i := 0; i < n; i++ {
		d.Step()
	}
}

// running derives the level-sensitive running flag from the pause pad.
func (d *Design) running() bool {
	return d.uiIn&uiPauseBit == 0
}

// randomize reads the randomize request pad.
func (d *Design) randomize() bool {
	return d.uiIn&uiRandomizeBit != 0
}

// State returns the current FSM state.
func (d *Design) State() State {
	return d.fsm.State()
}

// Timer returns the FSM's update timer.
func (d *Design) Timer() uint32 {
	return d.fsm.Timer()
}

// SetTimer pokes the FSM's update timer. The FSM writes the timer on
// every running cycle, so poke only while the design is idle or paused,
// as the original testbench does.
func (d *Design) SetTimer(v uint32) {
	d.fsm.SetTimer(v)
}

// VSyncPulse returns whether the tick pulse was asserted on the most
// recent edge.
func (d *Design) VSyncPulse() bool {
	return d.vsync.Pulse()
}

// VSyncPhase returns the tick source's position within its interval.
func (d *Design) VSyncPhase() int {
	return d.vsync.Phase()
}

// Cycles returns the number of clock edges stepped since construction.
// Edges swallowed by enable-low are not counted.
func (d *Design) Cycles() uint64 {
	return d.cycles
}

// Timing returns the design's timing profile.
func (d *Design) Timing() Timing {
	return d.timing
}
