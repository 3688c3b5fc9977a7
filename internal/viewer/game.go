//go:build ebiten

// Package viewer renders a running vessel-synthesis simulation as a 2D
// XZ projection, one growth step per fixed-rate growth tick.
package viewer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/nikolausrauch/vessel-synthesizer/internal/core"
	"github.com/nikolausrauch/vessel-synthesizer/internal/render"
	"github.com/nikolausrauch/vessel-synthesizer/pkg/domain"
	"github.com/nikolausrauch/vessel-synthesizer/pkg/forest"
	"github.com/nikolausrauch/vessel-synthesizer/pkg/vessel"
)

// growthTPS is how many growth ticks run per second while unpaused,
// independent of the render frame rate.
const growthTPS = 12

var (
	arterialColor = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	venousColor   = color.RGBA{R: 60, G: 110, B: 220, A: 255}
	bgColor       = color.RGBA{R: 12, G: 12, B: 16, A: 255}
)

// Game adapts a vessel.Synthesizer to the ebiten.Game interface, driving
// one StepOnce per tick unless paused.
type Game struct {
	syn *vessel.Synthesizer
	dom domain.Domain

	canvas *render.Canvas
	proj   render.Projector
	img    *ebiten.Image

	clock *core.FixedStep

	step   int
	paused bool
	once   bool
}

// New constructs a Game over syn, sampling d each step and projecting
// into a w x h window.
func New(syn *vessel.Synthesizer, d domain.Domain, w, h int) *Game {
	proj := render.NewProjector(w, h, d.MinExtents(), d.MaxExtents(), 16)
	syn.ResetRuntimeParameters()
	return &Game{
		syn:    syn,
		dom:    d,
		canvas: render.NewCanvas(w, h),
		proj:   proj,
		img:    ebiten.NewImage(w, h),
		clock:  core.NewFixedStep(growthTPS),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.once = true
	}

	if g.once {
		g.syn.StepOnce(g.dom)
		g.step++
		g.once = false
		return nil
	}

	pending := g.clock.Pending()
	if !g.paused {
		for ; pending > 0; pending-- {
			g.syn.StepOnce(g.dom)
			g.step++
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Clear(bgColor)
	g.drawSystem(vessel.Arterial, arterialColor)
	g.drawSystem(vessel.Venous, venousColor)

	g.img.WritePixels(g.canvas.Pix)
	screen.DrawImage(g.img, nil)

	arterialNodes, arterialTrees := countNodes(g.syn.GetForest(vessel.Arterial))
	venousNodes, venousTrees := countNodes(g.syn.GetForest(vessel.Venous))
	status := fmt.Sprintf("step %d\narterial  trees=%d nodes=%d\nvenous    trees=%d nodes=%d\n[space] pause  [n] step  [q] quit",
		g.step, arterialTrees, arterialNodes, venousTrees, venousNodes)
	text.Draw(screen, status, basicfont.Face7x13, 8, 16, color.White)
}

func (g *Game) drawSystem(sys vessel.System, col color.Color) {
	f := g.syn.GetForest(sys)
	for _, tree := range f.Trees {
		tree.BreadthFirst(func(id forest.NodeID, n *forest.Node) {
			x0, y0 := g.proj.Project(n.Pos)
			if n.IsRoot() {
				g.canvas.DrawDisc(x0, y0, 3, col)
				return
			}
			parent, err := tree.GetNode(n.Parent())
			if err != nil {
				return
			}
			x1, y1 := g.proj.Project(parent.Pos)
			g.canvas.DrawLine(x0, y0, x1, y1, col)
		})
	}
}

func countNodes(f *forest.Forest) (nodes, trees int) {
	trees = len(f.Trees)
	for _, t := range f.Trees {
		nodes += t.Len()
	}
	return nodes, trees
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.W, g.canvas.H
}
