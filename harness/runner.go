package harness

import (
	"log"

	"github.com/Thnk189/tt-um-SummerTT-HDL/sim"
)

// Result reports one scenario execution: the scenario name, the number
// of clock edges the design was driven through, and the first property
// violation if any.
type Result struct {
	Scenario string
	Cycles   uint64
	Err      error
}

// Run executes a single scenario against a fresh design built from the
// given timing profile.
func Run(s Scenario, timing sim.Timing) Result {
	d := sim.NewDesign(timing)
	err := s.Run(d)
	return Result{Scenario: s.Name, Cycles: d.Cycles(), Err: err}
}

// RunAll executes the whole suite in order, logging each outcome. It
// does not stop at the first failure.
func RunAll(timing sim.Timing) []Result {
	scenarios := Scenarios()
	results := make([]Result, 0, len(scenarios))
	for _, s := range scenarios {
		r := Run(s, timing)
		if r.Err != nil {
			log.Printf("[%s] FAIL after %d cycles: %v", r.Scenario, r.Cycles, r.Err)
		} else {
			log.Printf("[%s] ok (%d cycles)", r.Scenario, r.Cycles)
		}
		results = append(results, r)
	}
	return results
}

// Failed returns the subset of results that reported an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
