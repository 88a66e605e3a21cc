package player

// Control identifies one of the navigation chrome controls.
type Control string

const (
	// ControlPrev is the "previous slide" button.
	ControlPrev Control = "prev"
	// ControlNext is the "next slide" button.
	ControlNext Control = "next"
)

// Surface is the rendering capability the controller drives. Implementations
// apply the calls to a concrete presentation surface: the live-mode websocket
// surface broadcasts them to connected browsers, and tests record them.
//
// Slides are addressed by their 1-based document ordinal, shapes by their
// 0-based position within the slide's animatable set.
//
// Animation replay is a two-phase protocol: after ResetAnimation calls, the
// controller issues exactly one CommitPendingStyleFlush before any
// StartAnimation. Implementations must guarantee the reset state is observable
// before the start signal is applied, either via a synchronous style flush or
// by deferring the start to the next frame boundary.
type Surface interface {
	SetActive(slide int, active bool)
	SetCounter(current, total int)
	SetProgress(fraction float64)
	SetControlEnabled(ctl Control, enabled bool)
	ResetAnimation(slide, shape int)
	CommitPendingStyleFlush()
	StartAnimation(slide, shape int, delay, duration float64)
}
