package sim

// Pad bit assignments. The dedicated input pads carry the two control
// requests; the dedicated output pads follow the video pinout, of which
// only the vsync bit is modeled here.
const (
	uiPauseBit     = 0x01 // ui_in[0]: pause request; running = !pause
	uiRandomizeBit = 0x02 // ui_in[1]: randomize request

	uoVSyncBit = 0x08 // uo_out[3]: vsync
)

// SetResetN drives the active-low reset pad. Hold it low for at least
// one clock edge; the FSM observes it on the next Step.
func (d *Design) SetResetN(level bool) {
	d.resetN = level
}

// ResetN returns the level currently driven on the reset pad.
func (d *Design) ResetN() bool {
	return d.resetN
}

// SetEna drives the enable pad. The design only operates with enable
// high; all scenarios hold it high.
func (d *Design) SetEna(level bool) {
	d.ena = level
}

// Ena returns the level currently driven on the enable pad.
func (d *Design) Ena() bool {
	return d.ena
}

// SetUIIn drives all eight dedicated input pads at once. Bits above the
// defined control bits are accepted and ignored, as on the real part.
func (d *Design) SetUIIn(v byte) {
	d.uiIn = v
}

// UIIn returns the value currently driven on the input pads.
func (d *Design) UIIn() byte {
	return d.uiIn
}

// SetPause drives the pause request bit. Pause is level-sensitive:
// the FSM samples it every cycle.
func (d *Design) SetPause(on bool) {
	if on {
		d.uiIn |= uiPauseBit
	} else {
		d.uiIn &^= uiPauseBit
	}
}

// SetRandomize drives the randomize request bit. The request only takes
// effect if it is high on the exact edge a qualifying tick transition
// occurs; at any other time it is ignored.
func (d *Design) SetRandomize(on bool) {
	if on {
		d.uiIn |= uiRandomizeBit
	} else {
		d.uiIn &^= uiRandomizeBit
	}
}

// UOOut returns the dedicated output pads. Bit 3 carries vsync; the
// pixel bits are outside this model and drive low.
func (d *Design) UOOut() byte {
	var v byte
	if d.vsync.Pulse() {
		v |= uoVSyncBit
	}
	return v
}

// UIOOut returns the bidirectional pads, which this design never
// drives.
func (d *Design) UIOOut() byte {
	return 0
}
