//go:build ebiten

// Command vessel-view runs the growth engine interactively, rendering
// the arterial and venous trees as a live 2D projection.
package main

import (
	"errors"
	"flag"
	"log"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nikolausrauch/vessel-synthesizer/internal/viewer"
	"github.com/nikolausrauch/vessel-synthesizer/pkg/domain"
	"github.com/nikolausrauch/vessel-synthesizer/pkg/vessel"
)

func main() {
	domainName := flag.String("domain", "sphere", "tissue domain")
	seed := flag.Uint64("seed", 42, "domain PRNG seed")
	samples := flag.Int("samples", 16, "attraction samples per step")
	width := flag.Int("width", 720, "window width")
	height := flag.Int("height", 720, "window height")
	flag.Parse()

	d, ok := domain.New(*domainName)
	if !ok {
		log.Fatalf("unknown domain %q (available: %v)", *domainName, domain.Factories())
	}
	d.Seed(uint32(*seed))

	settings := vessel.DefaultSettings()
	settings.SampleCount = *samples

	syn := vessel.New(d.MinExtents(), d.MaxExtents(), settings)
	if _, err := syn.CreateRoot(vessel.Arterial, r3.Vec{}); err != nil {
		log.Fatalf("create arterial root: %v", err)
	}
	if _, err := syn.CreateRoot(vessel.Venous, r3.Vec{}); err != nil {
		log.Fatalf("create venous root: %v", err)
	}

	game := viewer.New(syn, d, *width, *height)

	ebiten.SetWindowTitle("vessel-synthesizer")
	ebiten.SetWindowSize(*width, *height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
