// Command param-sweep runs many arterial-only synthesizer configurations
// concurrently and ranks them by resulting node count, to help tune
// birth_attr/kill_attr/bif_thresh for a given domain.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/nikolausrauch/vessel-synthesizer/pkg/domain"
	"github.com/nikolausrauch/vessel-synthesizer/pkg/vessel"
)

type paramSet struct {
	birthAttr float64
	killAttr  float64
	bifThresh float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("birth_attr=%.2f kill_attr=%.2f bif_thresh=%.2f", p.birthAttr, p.killAttr, p.bifThresh)
}

type result struct {
	params    paramSet
	nodeCount int
	treeCount int
}

func main() {
	steps := flag.Int("steps", 60, "steps to simulate per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	samples := flag.Int("samples", 32, "attraction samples per step")
	flag.Parse()

	birthAttrOptions := []float64{0.25, 0.5, 1.0}
	killAttrOptions := []float64{0.25, 0.5, 1.0}
	bifThreshOptions := []float64{-1, 5, 10, 20}

	var sets []paramSet
	for _, ba := range birthAttrOptions {
		for _, ka := range killAttrOptions {
			for _, bt := range bifThreshOptions {
				sets = append(sets, paramSet{birthAttr: ba, killAttr: ka, bifThresh: bt})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan paramSet)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(params, *steps, *samples)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []result
	for res := range results {
		all = append(all, res)
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool { return all[i].nodeCount > all[j].nodeCount })

	fmt.Printf("\nTop 5 results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) nodes=%d trees=%d params=%s\n", i+1, res.nodeCount, res.treeCount, res.params)
	}
}

func runScenario(params paramSet, steps, samples int) result {
	d := domain.NewSphere(r3.Vec{}, 10)
	d.Seed(1337)

	settings := vessel.DefaultSettings()
	settings.Steps = steps
	settings.SampleCount = samples
	settings.Arterial.BirthAttr = params.birthAttr
	settings.Arterial.KillAttr = params.killAttr
	settings.Arterial.BifThresh = params.bifThresh
	settings.Venous = settings.Arterial

	syn := vessel.New(d.MinExtents(), d.MaxExtents(), settings)
	if _, err := syn.CreateRoot(vessel.Arterial, r3.Vec{}); err != nil {
		return result{params: params}
	}

	syn.Run(d)

	f := syn.GetForest(vessel.Arterial)
	nodes := 0
	for _, t := range f.Trees {
		nodes += t.Len()
	}

	return result{params: params, nodeCount: nodes, treeCount: len(f.Trees)}
}
