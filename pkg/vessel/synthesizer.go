// Package vessel implements the two-system growth simulation driver: it
// couples an arterial and a venous instance of the growth engine
// (internal/growth), pulling attraction points from a domain and
// transferring satisfied arterial drains into the venous system each
// step.
package vessel

import (
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/nikolausrauch/vessel-synthesizer/internal/growth"
	"github.com/nikolausrauch/vessel-synthesizer/pkg/domain"
	"github.com/nikolausrauch/vessel-synthesizer/pkg/forest"
)

// Synthesizer owns the two systems (arterial and venous) and drives them
// through a run. It is single-threaded cooperative: the only
// cross-thread interaction is the running flag, readable and writable
// from another goroutine via Stop and Running.
type Synthesizer struct {
	settings Settings
	systems  [2]*growth.SystemData

	running atomic.Bool
}

// New returns a Synthesizer with both systems' spatial indices bounded
// by [min, max] and configured from settings.
func New(min, max r3.Vec, settings Settings) *Synthesizer {
	return &Synthesizer{
		settings: settings,
		systems: [2]*growth.SystemData{
			growth.NewSystemData(min, max, settings.Arterial),
			growth.NewSystemData(min, max, settings.Venous),
		},
	}
}

func (s *Synthesizer) data(sys System) *growth.SystemData { return s.systems[sys] }

// SetForest replaces a system's forest, clears its node index, then
// breadth-first re-indexes every node of the new forest.
func (s *Synthesizer) SetForest(sys System, f forest.Forest) {
	sd := s.data(sys)
	sd.Forest = f
	sd.Reindex()
}

// CreateRoot creates a new tree in sys with a single root at pos and
// radius equal to the system's terminal radius, then indexes it.
func (s *Synthesizer) CreateRoot(sys System, pos r3.Vec) (forest.NodeID, error) {
	sd := s.data(sys)
	tree := sd.Forest.NewTree()
	treeIdx := len(sd.Forest.Trees) - 1

	id, err := tree.CreateRoot(pos, s.settings.For(sys).TermRadius)
	if err != nil {
		return forest.NilNodeID, err
	}
	if err := sd.IndexNode(treeIdx, id, pos); err != nil {
		return forest.NilNodeID, err
	}
	return id, nil
}

// CreateAttr unconditionally inserts an attraction into sys at pos.
func (s *Synthesizer) CreateAttr(sys System, pos r3.Vec) error {
	return s.data(sys).CreateAttr(pos)
}

// TryAttr conditionally inserts an attraction into sys at pos, subject
// to the birth-node and birth-attr filters. It reports whether the
// insert happened.
func (s *Synthesizer) TryAttr(sys System, pos r3.Vec) bool {
	sd := s.data(sys)
	return sd.TryAttr(pos, sd.Params)
}

// SetSettings replaces the synthesizer's settings. Later growth steps and
// CreateRoot calls use them at once; the runtime parameters are re-derived
// from them at the end of the next step, and their scaling returns to 1.0
// only on the next Run or ResetRuntimeParameters.
func (s *Synthesizer) SetSettings(settings Settings) { s.settings = settings }

// GetSettings returns the synthesizer's current settings.
func (s *Synthesizer) GetSettings() Settings { return s.settings }

// GetSystemSettings returns the settings for a single system.
func (s *Synthesizer) GetSystemSettings(sys System) SystemSettings {
	return s.settings.For(sys)
}

// GetForest returns a read-only view of a system's forest.
func (s *Synthesizer) GetForest(sys System) *forest.Forest {
	return &s.data(sys).Forest
}

// Running reports whether a Run is currently in progress. Safe to call
// from another goroutine.
func (s *Synthesizer) Running() bool { return s.running.Load() }

// Stop requests cooperative termination of an in-progress Run. The
// request is observed at most once per step; there is no guarantee on
// how many further operations execute before it takes effect.
func (s *Synthesizer) Stop() { s.running.Store(false) }

// Run drives the two-system simulation loop for settings.Steps steps,
// sampling d for attractions each step. It is a no-op if the arterial
// forest has no trees. The running flag is set true on entry and false
// on exit, so an observer can detect quiescence.
func (s *Synthesizer) Run(d domain.Domain) {
	arterial := s.data(Arterial)
	if len(arterial.Forest.Trees) == 0 {
		return
	}

	s.ResetRuntimeParameters()

	s.running.Store(true)
	defer s.running.Store(false)

	for step := 0; step < s.settings.Steps && s.running.Load(); step++ {
		s.StepOnce(d)
	}
}

// ResetRuntimeParameters reinitializes both systems' runtime parameters
// from the current settings with scaling at 1.0. Run calls this on
// entry; callers driving StepOnce directly should call it once before
// their first step.
func (s *Synthesizer) ResetRuntimeParameters() {
	s.data(Arterial).Params.Reset(s.settings.Arterial)
	s.data(Venous).Params.Reset(s.settings.Venous)
}

// StepOnce runs a single tick of the two-system loop: sample, arterial
// growth step, transfer, venous growth step, domain-growth scaling. It
// is exposed separately from Run for interactive drivers (see
// cmd/vessel-view) that want to pace steps themselves rather than run a
// full step budget in one call. It is a no-op if the arterial forest has
// no trees.
func (s *Synthesizer) StepOnce(d domain.Domain) {
	arterial := s.data(Arterial)
	if len(arterial.Forest.Trees) == 0 {
		return
	}
	venous := s.data(Venous)

	for i := 0; i < s.settings.SampleCount; i++ {
		p := d.Sample()
		_ = arterial.TryAttr(p, arterial.Params)
	}

	growth.Step(arterial, s.settings.Arterial)

	if len(venous.Forest.Trees) > 0 {
		for _, p := range arterial.Killed {
			_ = venous.CreateAttr(p)
		}
		arterial.Killed = arterial.Killed[:0]

		growth.Step(venous, s.settings.Venous)
	}

	arterial.Params.Step(s.settings.Arterial)
	venous.Params.Step(s.settings.Venous)
}
