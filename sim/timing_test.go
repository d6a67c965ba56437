package sim

import "testing"

func TestTiming_ReferenceInterval(t *testing.T) {
	if got := ReferenceTiming.TickInterval(); got != 2400000 {
		t.Errorf("reference tick interval: expected 2400000, got %d", got)
	}
	if got := ReferenceTiming.UpdateThreshold(); got != 2400000 {
		t.Errorf("reference threshold: expected 2400000, got %d", got)
	}
}

func TestTiming_FastInterval(t *testing.T) {
	if got := FastTiming.TickInterval(); got != 2400 {
		t.Errorf("fast tick interval: expected 2400, got %d", got)
	}
}

func TestTiming_FastPreservesRatio(t *testing.T) {
	refRatio := ReferenceTiming.ClockHz / ReferenceTiming.TickInterval()
	fastRatio := FastTiming.ClockHz / FastTiming.TickInterval()
	if refRatio != fastRatio {
		t.Errorf("tick-per-second ratio differs: reference %d, fast %d",
			refRatio, fastRatio)
	}
}

func TestGetTimingForName(t *testing.T) {
	if got := GetTimingForName("fast"); got != FastTiming {
		t.Errorf("fast: got %+v", got)
	}
	if got := GetTimingForName("reference"); got != ReferenceTiming {
		t.Errorf("reference: got %+v", got)
	}
	if got := GetTimingForName("bogus"); got != ReferenceTiming {
		t.Errorf("unknown name should fall back to reference, got %+v", got)
	}
}
