package sim

// StateCounts tallies how many cycles each state was observed over a
// monitoring window.
type StateCounts struct {
	Idle   int
	Update int
	Copy   int
	Init   int
}

// Count returns the tally for a single state.
func (c StateCounts) Count(s State) int {
	switch s {
	case StateIdle:
		return c.Idle
	case StateUpdate:
		return c.Update
	case StateCopy:
		return c.Copy
	case StateInit:
		return c.Init
	}
	return 0
}

// add records one observed cycle of state s.
func (c *StateCounts) add(s State) {
	switch s {
	case StateIdle:
		c.Idle++
	case StateUpdate:
		c.Update++
	case StateCopy:
		c.Copy++
	case StateInit:
		c.Init++
	}
}

// Monitor steps a design and records what it observes. It never drives
// any pad; input stimulus stays with the caller.
type Monitor struct {
	d *Design
}

// NewMonitor creates a monitor for the given design.
func NewMonitor(d *Design) *Monitor {
	return &Monitor{d: d}
}

// Observe steps the design for the given number of cycles and tallies
// the state after each edge.
func (m *Monitor) Observe(cycles int) StateCounts {
	var counts StateCounts
	for i := 0; i < cycles; i++ {
		m.d.Step()
		counts.add(m.d.State())
	}
	return counts
}

// WaitState steps the design until the FSM is in state s, up to
// maxCycles edges. Returns true if the state was reached.
func (m *Monitor) WaitState(s State, maxCycles int) bool {
	for i := 0; i < maxCycles; i++ {
		m.d.Step()
		if m.d.State() == s {
			return true
		}
	}
	return false
}

// WaitVSync steps the design until an edge with the tick pulse
// asserted, up to maxCycles edges. Returns true if a pulse was seen.
func (m *Monitor) WaitVSync(maxCycles int) bool {
	for i := 0; i < maxCycles; i++ {
		m.d.Step()
		if m.d.VSyncPulse() {
			return true
		}
	}
	return false
}
