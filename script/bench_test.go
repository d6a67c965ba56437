package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thnk189/tt-um-SummerTT-HDL/sim"
)

func newFastBench(t *testing.T) *Bench {
	t.Helper()
	b := NewBench(sim.NewDesign(sim.FastTiming))
	t.Cleanup(b.Close)
	return b
}

func TestBench_ResetAndSettle(t *testing.T) {
	b := newFastBench(t)

	err := b.RunString(`
		dut.reset(10)
		if not dut.wait_state("IDLE", 300) then
			dut.fail("never reached IDLE after reset")
		end
	`)
	require.NoError(t, err)
	assert.Equal(t, sim.StateIdle, b.Design().State())
}

func TestBench_ClockAdvancesCycles(t *testing.T) {
	b := newFastBench(t)

	err := b.RunString(`
		dut.reset(10)
		local before = dut.cycles()
		dut.clock(100)
		if dut.cycles() - before ~= 100 then
			dut.fail("clock(100) did not advance 100 cycles")
		end
	`)
	require.NoError(t, err)
	assert.Equal(t, uint64(110), b.Design().Cycles())
}

func TestBench_TimerPokeAndReadback(t *testing.T) {
	b := newFastBench(t)

	err := b.RunString(`
		dut.reset(10)
		dut.wait_state("IDLE", 300)
		dut.pause(true)
		dut.set_timer(1234)
		if dut.timer() ~= 1234 then
			dut.fail("timer readback mismatch")
		end
		dut.pause(false)
	`)
	require.NoError(t, err)
	assert.Equal(t, uint32(1234), b.Design().Timer())
}

func TestBench_RandomizeAtTick(t *testing.T) {
	b := newFastBench(t)

	err := b.RunString(`
		dut.reset(10)
		dut.wait_state("IDLE", 300)
		dut.randomize(true)
		dut.set_timer(2400)
		if not dut.wait_vsync() then
			dut.fail("no vsync pulse within one interval")
		end
		if dut.state() ~= "INIT" then
			dut.fail("expected INIT at qualifying tick, got " .. dut.state())
		end
	`)
	require.NoError(t, err)
	assert.Equal(t, sim.StateInit, b.Design().State())
}

func TestBench_PauseHoldsTimer(t *testing.T) {
	b := newFastBench(t)

	err := b.RunString(`
		dut.reset(10)
		dut.wait_state("IDLE", 300)
		dut.pause(true)
		local before = dut.timer()
		dut.clock(50)
		if dut.timer() ~= before then
			dut.fail("timer moved while paused")
		end
	`)
	require.NoError(t, err)
}

func TestBench_FailRaisesError(t *testing.T) {
	b := newFastBench(t)

	err := b.RunString(`dut.fail("boom")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestBench_UnknownStateName(t *testing.T) {
	b := newFastBench(t)

	err := b.RunString(`dut.wait_state("BOGUS", 10)`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown state")
}

func TestBench_SyntaxErrorSurfaces(t *testing.T) {
	b := newFastBench(t)

	err := b.RunString(`this is not lua`)
	assert.Error(t, err)
}

func TestBench_RunFile(t *testing.T) {
	b := newFastBench(t)

	path := filepath.Join(t.TempDir(), "bench.lua")
	src := []byte("dut.reset(10)\ndut.clock(50)\n")
	require.NoError(t, os.WriteFile(path, src, 0644))

	require.NoError(t, b.RunFile(path))
	assert.Equal(t, uint64(60), b.Design().Cycles())
}

func TestBench_RunFileMissing(t *testing.T) {
	b := newFastBench(t)

	err := b.RunFile(filepath.Join(t.TempDir(), "absent.lua"))
	assert.Error(t, err)
}
