// Package harness drives the simulation model through the verification
// scenarios the silicon was signed off against. The original bench ran
// four near-identical variants of these checks; this suite is the
// single deterministic replacement.
package harness

import (
	"fmt"

	"github.com/Thnk189/tt-um-SummerTT-HDL/sim"
)

// Observation windows and hold times, in clock cycles. These match the
// windows the hardware testbench used and are profile-independent: they
// bound FSM activity, not tick arrival.
const (
	resetHoldCycles = 10
	settleCycles    = 300
	recoveryWindow  = 300
	pauseWindow     = 200
	offTickWindow   = 200
	initWindow      = 500
	midUpdateHold   = 5
	periodicRepeats = 3
)

// Scenario is one self-contained verification case. Run drives a
// freshly constructed design and returns nil if the scenario's
// properties held.
type Scenario struct {
	Name        string
	Description string
	Run         func(d *sim.Design) error
}

// Scenarios returns the full verification suite in execution order.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:        "reset-recovery",
			Description: "reset release reaches INIT then IDLE",
			Run:         runResetRecovery,
		},
		{
			Name:        "pause-hold",
			Description: "pause holds the FSM in IDLE with the timer frozen",
			Run:         runPauseHold,
		},
		{
			Name:        "randomize-at-tick",
			Description: "randomize at a qualifying tick enters INIT",
			Run:         runRandomizeAtTick,
		},
		{
			Name:        "randomize-off-tick",
			Description: "randomize away from the tick boundary is ignored",
			Run:         runRandomizeOffTick,
		},
		{
			Name:        "reset-mid-update",
			Description: "reset during UPDATE restarts from INIT",
			Run:         runResetMidUpdate,
		},
		{
			Name:        "periodic-update",
			Description: "updates repeat exactly one tick interval apart",
			Run:         runPeriodicUpdate,
		},
	}
}

// Lookup returns the scenario with the given name.
func Lookup(name string) (Scenario, bool) {
	for _, s := range Scenarios() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// bringUp holds the power-on reset, releases it, and waits for the
// design to settle into IDLE.
func bringUp(d *sim.Design) error {
	d.StepCycles(resetHoldCycles)
	d.SetResetN(true)
	if !sim.NewMonitor(d).WaitState(sim.StateIdle, settleCycles) {
		return fmt.Errorf("design did not settle into IDLE within %d cycles", settleCycles)
	}
	return nil
}

func runResetRecovery(d *sim.Design) error {
	d.StepCycles(resetHoldCycles)
	d.SetResetN(true)

	counts := sim.NewMonitor(d).Observe(recoveryWindow)
	if counts.Init == 0 {
		return fmt.Errorf("no INIT within %d cycles of reset release", recoveryWindow)
	}
	if counts.Idle == 0 {
		return fmt.Errorf("no IDLE within %d cycles of reset release", recoveryWindow)
	}
	return nil
}

func runPauseHold(d *sim.Design) error {
	if err := bringUp(d); err != nil {
		return err
	}

	d.SetPause(true)
	timer := d.Timer()
	counts := sim.NewMonitor(d).Observe(pauseWindow)
	if n := counts.Update + counts.Copy + counts.Init; n != 0 {
		return fmt.Errorf("FSM left IDLE for %d of %d paused cycles: %+v",
			n, pauseWindow, counts)
	}
	if d.Timer() != timer {
		return fmt.Errorf("timer advanced while paused: %d -> %d", timer, d.Timer())
	}
	d.SetPause(false)
	return nil
}

func runRandomizeAtTick(d *sim.Design) error {
	if err := bringUp(d); err != nil {
		return err
	}

	// Arm randomize and preload the timer so the next real pulse
	// qualifies, rather than waiting out a full accumulation.
	d.SetRandomize(true)
	d.SetTimer(d.Timing().UpdateThreshold())

	m := sim.NewMonitor(d)
	if !m.WaitVSync(d.Timing().TickInterval() + 10) {
		return fmt.Errorf("no vsync pulse within one tick interval")
	}
	if got := d.State(); got != sim.StateInit {
		return fmt.Errorf("qualifying tick with randomize: expected INIT, got %v", got)
	}

	counts := m.Observe(initWindow)
	if counts.Init == 0 {
		return fmt.Errorf("no INIT within %d cycles of the qualifying tick", initWindow)
	}
	d.SetRandomize(false)
	return nil
}

func runRandomizeOffTick(d *sim.Design) error {
	if err := bringUp(d); err != nil {
		return err
	}

	// One-cycle pulse while the timer is far below threshold.
	d.SetRandomize(true)
	d.Step()
	d.SetRandomize(false)

	counts := sim.NewMonitor(d).Observe(offTickWindow)
	if counts.Update != 0 || counts.Copy != 0 {
		return fmt.Errorf("UPDATE/COPY after off-tick randomize pulse: %+v", counts)
	}
	if counts.Init != 0 {
		return fmt.Errorf("INIT after off-tick randomize pulse: %+v", counts)
	}
	return nil
}

func runResetMidUpdate(d *sim.Design) error {
	if err := bringUp(d); err != nil {
		return err
	}

	// Force an immediate UPDATE on the next real pulse.
	d.SetTimer(d.Timing().UpdateThreshold())
	m := sim.NewMonitor(d)
	if !m.WaitState(sim.StateUpdate, d.Timing().TickInterval()+10) {
		return fmt.Errorf("FSM never entered UPDATE after a qualifying tick")
	}

	d.SetResetN(false)
	d.StepCycles(midUpdateHold)
	if got := d.State(); got != sim.StateInit {
		return fmt.Errorf("reset during UPDATE: expected INIT, got %v", got)
	}
	d.SetResetN(true)

	counts := m.Observe(recoveryWindow)
	if counts.Init == 0 {
		return fmt.Errorf("no INIT within %d cycles of releasing mid-UPDATE reset", recoveryWindow)
	}
	if counts.Idle == 0 {
		return fmt.Errorf("no IDLE within %d cycles of releasing mid-UPDATE reset", recoveryWindow)
	}
	return nil
}

func runPeriodicUpdate(d *sim.Design) error {
	if err := bringUp(d); err != nil {
		return err
	}

	interval := d.Timing().TickInterval()
	m := sim.NewMonitor(d)

	var prev uint64
	for i := 0; i < periodicRepeats; i++ {
		// The first qualifying tick can take up to two intervals while
		// the timer accumulates from reset.
		if !m.WaitState(sim.StateUpdate, 3*interval) {
			return fmt.Errorf("UPDATE entry %d not reached within %d cycles", i, 3*interval)
		}
		entry := d.Cycles()
		if i > 0 && entry-prev != uint64(interval) {
			return fmt.Errorf("update spacing %d-%d: expected %d cycles, got %d",
				i-1, i, interval, entry-prev)
		}
		prev = entry

		if !m.WaitState(sim.StateCopy, interval) {
			return fmt.Errorf("COPY after UPDATE entry %d not reached", i)
		}
		if !m.WaitState(sim.StateIdle, interval) {
			return fmt.Errorf("IDLE after COPY %d not reached", i)
		}
	}
	return nil
}
