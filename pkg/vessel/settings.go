package vessel

import "github.com/nikolausrauch/vessel-synthesizer/internal/growth"

// System, SystemSettings and RuntimeParameters live in internal/growth,
// which the growth step itself depends on; Synthesizer re-exports them
// here so callers configuring a run need not import an internal package.
type (
	System            = growth.System
	SystemSettings    = growth.SystemSettings
	RuntimeParameters = growth.RuntimeParameters
	GrowthFunc        = growth.GrowthFunc
)

const (
	Arterial = growth.Arterial
	Venous   = growth.Venous

	GrowthNone        = growth.GrowthNone
	GrowthLinear      = growth.GrowthLinear
	GrowthExponential = growth.GrowthExponential
)

// DefaultSystemSettings returns settings matching the source's example
// scenes.
func DefaultSystemSettings() SystemSettings { return growth.DefaultSystemSettings() }

// Settings is the global configuration of a synthesizer run: the step
// budget, how many attractions to sample per step, and the per-system
// settings table.
type Settings struct {
	Steps       int
	SampleCount int

	Arterial SystemSettings
	Venous   SystemSettings
}

// DefaultSettings returns Settings with DefaultSystemSettings for both
// systems.
func DefaultSettings() Settings {
	return Settings{
		Steps:       100,
		SampleCount: 32,
		Arterial:    DefaultSystemSettings(),
		Venous:      DefaultSystemSettings(),
	}
}

// For returns the settings for the given system.
func (s Settings) For(sys System) SystemSettings {
	if sys == Venous {
		return s.Venous
	}
	return s.Arterial
}

// Scale rescales the distance thresholds of both systems by factor, for
// callers that want to run the same settings at a different spatial
// unit (e.g. millimeters vs. the domain's own units).
func (s Settings) Scale(factor float64) Settings {
	s.Arterial = s.Arterial.Scale(factor)
	s.Venous = s.Venous.Scale(factor)
	return s
}
