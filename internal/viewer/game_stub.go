//go:build !ebiten

package viewer

import (
	"fmt"

	"github.com/nikolausrauch/vessel-synthesizer/pkg/domain"
	"github.com/nikolausrauch/vessel-synthesizer/pkg/vessel"
)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(*vessel.Synthesizer, domain.Domain, int, int) *Game {
	panic("viewer.New requires building with the 'ebiten' tag")
}

func (g *Game) Update() error {
	return fmt.Errorf("viewer.Game.Update requires building with the 'ebiten' tag")
}

func (g *Game) Draw(any) {}

func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
