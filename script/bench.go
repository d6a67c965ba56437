// Package script embeds a Lua interpreter around the design model so
// stimulus sequences can be written as plain scripts instead of
// recompiled Go. The scripts see a single global table, dut, whose
// functions drive pads and clock edges.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/Thnk189/tt-um-SummerTT-HDL/sim"
)

const defaultResetHold = 10

// Bench couples one design model to one Lua state. It is not safe for
// concurrent use; drive it from a single goroutine.
type Bench struct {
	design *sim.Design
	ls     *lua.LState
}

// NewBench wraps the given design and registers the dut table. Close
// must be called when the bench is done.
func NewBench(d *sim.Design) *Bench {
	b := &Bench{design: d, ls: lua.NewState()}
	b.register()
	return b
}

// Close releases the Lua state.
func (b *Bench) Close() {
	b.ls.Close()
}

// Design returns the model under the bench, for inspection between
// script runs.
func (b *Bench) Design() *sim.Design {
	return b.design
}

// RunFile executes a bench script from disk. A dut.fail call or any
// Lua error surfaces as the returned error.
func (b *Bench) RunFile(path string) error {
	if err := b.ls.DoFile(path); err != nil {
		return fmt.Errorf("bench script %s: %w", path, err)
	}
	return nil
}

// RunString executes an in-memory bench script.
func (b *Bench) RunString(src string) error {
	if err := b.ls.DoString(src); err != nil {
		return fmt.Errorf("bench script: %w", err)
	}
	return nil
}

func (b *Bench) register() {
	dut := b.ls.NewTable()
	b.ls.SetFuncs(dut, map[string]lua.LGFunction{
		"clock":      b.luaClock,
		"reset":      b.luaReset,
		"pause":      b.luaPause,
		"randomize":  b.luaRandomize,
		"set_timer":  b.luaSetTimer,
		"timer":      b.luaTimer,
		"state":      b.luaState,
		"cycles":     b.luaCycles,
		"wait_state": b.luaWaitState,
		"wait_vsync": b.luaWaitVSync,
		"fail":       b.luaFail,
	})
	b.ls.SetGlobal("dut", dut)
}

// dut.clock(n) advances the design by n rising edges, default 1.
func (b *Bench) luaClock(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 0 {
		L.ArgError(1, "cycle count must not be negative")
	}
	b.design.StepCycles(n)
	return 0
}

// dut.reset(cycles) pulses the active-low reset for the given number of
// edges, default 10, and releases it.
func (b *Bench) luaReset(L *lua.LState) int {
	n := L.OptInt(1, defaultResetHold)
	if n < 1 {
		L.ArgError(1, "reset hold must be at least one cycle")
	}
	b.design.SetResetN(false)
	b.design.StepCycles(n)
	b.design.SetResetN(true)
	return 0
}

// dut.pause(bool) drives the pause pad level.
func (b *Bench) luaPause(L *lua.LState) int {
	b.design.SetPause(L.CheckBool(1))
	return 0
}

// dut.randomize(bool) drives the randomize pad level.
func (b *Bench) luaRandomize(L *lua.LState) int {
	b.design.SetRandomize(L.CheckBool(1))
	return 0
}

// dut.set_timer(v) pokes the update timer.
func (b *Bench) luaSetTimer(L *lua.LState) int {
	v := L.CheckInt64(1)
	if v < 0 {
		L.ArgError(1, "timer value must not be negative")
	}
	b.design.SetTimer(uint32(v))
	return 0
}

// dut.timer() returns the current update timer value.
func (b *Bench) luaTimer(L *lua.LState) int {
	L.Push(lua.LNumber(b.design.Timer()))
	return 1
}

// dut.state() returns the FSM state name: IDLE, UPDATE, COPY or INIT.
func (b *Bench) luaState(L *lua.LState) int {
	L.Push(lua.LString(b.design.State().String()))
	return 1
}

// dut.cycles() returns the number of edges stepped so far.
func (b *Bench) luaCycles(L *lua.LState) int {
	L.Push(lua.LNumber(b.design.Cycles()))
	return 1
}

// dut.wait_state(name, max) steps until the FSM reaches the named state
// and returns whether it got there. max defaults to three tick
// intervals, enough for any reachable transition.
func (b *Bench) luaWaitState(L *lua.LState) int {
	name := L.CheckString(1)
	max := L.OptInt(2, 3*b.design.Timing().TickInterval())

	s, ok := sim.StateForName(name)
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown state %q", name))
	}
	L.Push(lua.LBool(sim.NewMonitor(b.design).WaitState(s, max)))
	return 1
}

// dut.wait_vsync(max) steps until the tick pulse fires and returns
// whether it did. max defaults to one tick interval plus slack.
func (b *Bench) luaWaitVSync(L *lua.LState) int {
	max := L.OptInt(1, b.design.Timing().TickInterval()+10)
	L.Push(lua.LBool(sim.NewMonitor(b.design).WaitVSync(max)))
	return 1
}

// dut.fail(msg) aborts the script with an error.
func (b *Bench) luaFail(L *lua.LState) int {
	L.RaiseError("%s", L.OptString(1, "bench failure"))
	return 0
}
