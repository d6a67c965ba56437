package sim

import "testing"

func TestPins_PauseBitMapsToRunning(t *testing.T) {
	d := makeTestDesign()
	d.StepCycles(300)

	// ui_in[0] high pauses the design: the timer stops moving.
	d.SetUIIn(0x01)
	timer := d.Timer()
	d.StepCycles(20)
	if d.Timer() != timer {
		t.Errorf("timer advanced with ui_in[0] high: %d -> %d", timer, d.Timer())
	}

	// Clearing the bit resumes.
	d.SetUIIn(0x00)
	d.StepCycles(20)
	if d.Timer() != timer+20 {
		t.Errorf("timer after resume: expected %d, got %d", timer+20, d.Timer())
	}
}

func TestPins_RandomizeBitSampledAtTick(t *testing.T) {
	d := makeTestDesign()
	d.StepCycles(300)

	// ui_in[1] armed with a preloaded timer: next pulse enters INIT.
	d.SetUIIn(0x02)
	d.SetTimer(d.Timing().UpdateThreshold())
	if !NewMonitor(d).WaitVSync(d.Timing().TickInterval() + 10) {
		t.Fatal("no vsync pulse within one interval")
	}
	if d.State() != StateInit {
		t.Errorf("ui_in[1] at tick: expected INIT, got %v", d.State())
	}
}

func TestPins_UndefinedInputBitsIgnored(t *testing.T) {
	d := makeTestDesign()
	d.StepCycles(300)

	// Upper pads have no function; driving them must not pause or
	// randomize anything.
	d.SetUIIn(0xFC)
	timer := d.Timer()
	counts := NewMonitor(d).Observe(50)
	if counts.Idle != 50 {
		t.Errorf("undefined bits changed state: %+v", counts)
	}
	if d.Timer() != timer+50 {
		t.Errorf("undefined bits stopped timer: expected %d, got %d",
			timer+50, d.Timer())
	}
}

func TestPins_SetHelpersDriveBits(t *testing.T) {
	d := NewDesign(FastTiming)

	d.SetPause(true)
	if d.UIIn() != 0x01 {
		t.Errorf("pause set: expected ui_in 0x01, got 0x%02X", d.UIIn())
	}
	d.SetRandomize(true)
	if d.UIIn() != 0x03 {
		t.Errorf("randomize set: expected ui_in 0x03, got 0x%02X", d.UIIn())
	}
	d.SetPause(false)
	if d.UIIn() != 0x02 {
		t.Errorf("pause cleared: expected ui_in 0x02, got 0x%02X", d.UIIn())
	}
	d.SetRandomize(false)
	if d.UIIn() != 0x00 {
		t.Errorf("randomize cleared: expected ui_in 0x00, got 0x%02X", d.UIIn())
	}
}

func TestPins_UOOutCarriesVSyncOnBit3(t *testing.T) {
	d := makeTestDesign()

	interval := d.Timing().TickInterval()
	seen := 0
	for i := 0; i < interval*2+10; i++ {
		d.Step()
		want := byte(0x00)
		if d.VSyncPulse() {
			want = 0x08
			seen++
		}
		if d.UOOut() != want {
			t.Fatalf("edge %d: uo_out expected 0x%02X, got 0x%02X",
				i, want, d.UOOut())
		}
	}
	if seen != 2 {
		t.Errorf("vsync pulses over two intervals: expected 2, got %d", seen)
	}
}

func TestPins_UIOOutDrivesLow(t *testing.T) {
	d := makeTestDesign()
	d.StepCycles(100)
	if d.UIOOut() != 0 {
		t.Errorf("uio_out: expected 0x00, got 0x%02X", d.UIOOut())
	}
}

func TestPins_ResetAndEnaAccessors(t *testing.T) {
	d := NewDesign(FastTiming)
	if d.ResetN() {
		t.Error("reset pad: expected low at power-on")
	}
	if !d.Ena() {
		t.Error("enable pad: expected high at power-on")
	}
	d.SetResetN(true)
	d.SetEna(false)
	if !d.ResetN() || d.Ena() {
		t.Error("pad accessors did not track driven levels")
	}
}
