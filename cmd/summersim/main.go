package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Thnk189/tt-um-SummerTT-HDL/harness"
	"github.com/Thnk189/tt-um-SummerTT-HDL/script"
	"github.com/Thnk189/tt-um-SummerTT-HDL/sim"
)

func main() {
	timingFlag := flag.String("timing", "reference", "timing profile: reference or fast")
	scenarioFlag := flag.String("scenario", "", "run one verification scenario by name, or 'all'")
	listFlag := flag.Bool("list", false, "list verification scenarios and exit")
	scriptFlag := flag.String("script", "", "path to a Lua bench script to run")
	cyclesFlag := flag.Int("cycles", 0, "free-run the design for N cycles, tracing transitions")
	flag.Parse()

	log.SetPrefix(sim.Name + ": ")
	log.SetFlags(0)

	if *listFlag {
		for _, s := range harness.Scenarios() {
			fmt.Printf("%-20s %s\n", s.Name, s.Description)
		}
		return
	}

	timing := sim.GetTimingForName(*timingFlag)

	switch {
	case *scenarioFlag == "all":
		results := harness.RunAll(timing)
		if failed := harness.Failed(results); len(failed) > 0 {
			log.Fatalf("%d of %d scenarios failed", len(failed), len(results))
		}
		log.Printf("all %d scenarios passed", len(results))

	case *scenarioFlag != "":
		s, ok := harness.Lookup(*scenarioFlag)
		if !ok {
			log.Fatalf("unknown scenario %q (use -list)", *scenarioFlag)
		}
		r := harness.Run(s, timing)
		if r.Err != nil {
			log.Fatalf("[%s] FAIL after %d cycles: %v", r.Scenario, r.Cycles, r.Err)
		}
		log.Printf("[%s] ok (%d cycles)", r.Scenario, r.Cycles)

	case *scriptFlag != "":
		b := script.NewBench(sim.NewDesign(timing))
		defer b.Close()
		if err := b.RunFile(*scriptFlag); err != nil {
			log.Fatal(err)
		}
		log.Printf("script done after %d cycles, state %v",
			b.Design().Cycles(), b.Design().State())

	case *cyclesFlag > 0:
		freeRun(timing, *cyclesFlag)

	default:
		flag.Usage()
		os.Exit(2)
	}
}

// freeRun brings the design out of reset and steps it for the given
// number of cycles, tracing every FSM transition and vsync pulse.
func freeRun(timing sim.Timing, cycles int) {
	d := sim.NewDesign(timing)
	d.StepCycles(10)
	d.SetResetN(true)

	prev := d.State()
	for i := 0; i < cycles; i++ {
		d.Step()
		if d.VSyncPulse() {
			log.Printf("cycle %d: vsync", d.Cycles())
		}
		if s := d.State(); s != prev {
			log.Printf("cycle %d: %v -> %v (timer %d)", d.Cycles(), prev, s, d.Timer())
			prev = s
		}
	}
	log.Printf("done: %d cycles, state %v, timer %d", d.Cycles(), d.State(), d.Timer())
}
