// Command vessel-cli runs a headless vessel-synthesis simulation and
// reports the resulting tree and node counts per system.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/nikolausrauch/vessel-synthesizer/pkg/domain"
	"github.com/nikolausrauch/vessel-synthesizer/pkg/vessel"
)

func main() {
	domainName := flag.String("domain", "sphere", fmt.Sprintf("tissue domain (%v)", domain.Factories()))
	seed := flag.Uint64("seed", 42, "domain PRNG seed")
	steps := flag.Int("steps", 100, "simulation steps")
	samples := flag.Int("samples", 32, "attraction samples per step")
	arterialRoot := flag.String("arterial-root", "0,0,-5", "x,y,z position of the arterial root")
	venousRoot := flag.String("venous-root", "0,0,5", "x,y,z position of the venous root")
	flag.Parse()

	d, ok := domain.New(*domainName)
	if !ok {
		log.Fatalf("unknown domain %q (available: %v)", *domainName, domain.Factories())
	}
	d.Seed(uint32(*seed))

	settings := vessel.DefaultSettings()
	settings.Steps = *steps
	settings.SampleCount = *samples

	syn := vessel.New(d.MinExtents(), d.MaxExtents(), settings)

	aPos, err := parseVec(*arterialRoot)
	if err != nil {
		log.Fatalf("arterial-root: %v", err)
	}
	if _, err := syn.CreateRoot(vessel.Arterial, aPos); err != nil {
		log.Fatalf("create arterial root: %v", err)
	}

	vPos, err := parseVec(*venousRoot)
	if err != nil {
		log.Fatalf("venous-root: %v", err)
	}
	if _, err := syn.CreateRoot(vessel.Venous, vPos); err != nil {
		log.Fatalf("create venous root: %v", err)
	}

	syn.Run(d)

	report(syn, vessel.Arterial)
	report(syn, vessel.Venous)
}

func report(syn *vessel.Synthesizer, sys vessel.System) {
	f := syn.GetForest(sys)
	nodes := 0
	for _, t := range f.Trees {
		nodes += t.Len()
	}
	fmt.Fprintf(os.Stdout, "%-9s trees=%d nodes=%d\n", sys, len(f.Trees), nodes)
}

func parseVec(s string) (r3.Vec, error) {
	var x, y, z float64
	if _, err := fmt.Sscanf(s, "%g,%g,%g", &x, &y, &z); err != nil {
		return r3.Vec{}, fmt.Errorf("expected format x,y,z: %w", err)
	}
	return r3.Vec{X: x, Y: y, Z: z}, nil
}
