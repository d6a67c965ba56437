package sim

// VSync is the periodic tick source. It models only the output contract
// of the video sync generator: a pulse asserted for exactly one clock
// cycle every interval cycles.
//
// The counter is free-running. It is deliberately not wired to the
// design reset line; after an FSM reset the next pulse arrives on the
// generator's own schedule, which is the behavior the verification
// suite depends on.
type VSync struct {
	interval int
	phase    int
	pulse    bool
}

// NewVSync creates a tick source with the given pulse interval in
// clock cycles. Intervals below 1 are clamped to 1.
func NewVSync(interval int) *VSync {
	if interval < 1 {
		interval = 1
	}
	return &VSync{interval: interval}
}

// Step advances the phase counter by one clock edge and returns whether
// the pulse is asserted on this edge.
func (v *VSync) Step() bool {
	v.phase++
	if v.phase >= v.interval {
		v.phase = 0
	}
	v.pulse = v.phase == 0
	return v.pulse
}

// Pulse returns whether the pulse was asserted on the most recent edge.
func (v *VSync) Pulse() bool {
	return v.pulse
}

// Phase returns the current position within the interval, in cycles.
func (v *VSync) Phase() int {
	return v.phase
}

// Interval returns the pulse interval in clock cycles.
func (v *VSync) Interval() int {
	return v.interval
}

// CyclesToPulse returns how many Step calls remain until the next edge
// on which the pulse is asserted.
func (v *VSync) CyclesToPulse() int {
	return v.interval - v.phase
}
