package sim

// Timing holds the clock configuration for a simulation run.
// The update cadence is derived from the clock: one tick every
// ClockHz / UpdateRateDiv cycles.
type Timing struct {
	ClockHz       int // input clock frequency
	UpdateRateDiv int // updates per second relative to the clock
}

// Reference timing: 24 MHz input clock, one update every tenth of a
// second (2,400,000 cycles). This matches the fabricated configuration.
var ReferenceTiming = Timing{
	ClockHz:       24000000,
	UpdateRateDiv: 10,
}

// Fast timing: 24 kHz scale-model clock with the same divisor, giving a
// 2,400-cycle tick interval. Every control-path ratio is preserved while
// a full update period fits in a few thousand simulated cycles.
var FastTiming = Timing{
	ClockHz:       24000,
	UpdateRateDiv: 10,
}

// TickInterval returns the number of clock cycles between vsync pulses.
func (t Timing) TickInterval() int {
	return t.ClockHz / t.UpdateRateDiv
}

// UpdateThreshold returns the timer value the FSM must reach before a
// tick may trigger a state transition. It equals the tick interval; the
// two are kept distinct because the timer can be poked independently of
// the vsync phase.
func (t Timing) UpdateThreshold() uint32 {
	return uint32(t.ClockHz / t.UpdateRateDiv)
}

// GetTimingForName returns the timing profile for a profile name.
// Unknown names fall back to the reference profile.
func GetTimingForName(name string) Timing {
	if name == "fast" {
		return FastTiming
	}
	return ReferenceTiming
}
