// Package player implements the slide navigation controller: a single state
// machine that owns the current slide index and the hidden-slide toggle,
// keeps exactly one slide active, and replays per-shape entrance animations
// through a Surface.
package player

const (
	// DefaultSwipeThreshold is the horizontal touch delta, in device-independent
	// pixels, a swipe must strictly exceed to trigger navigation.
	DefaultSwipeThreshold = 50.0

	// DefaultAnimationDuration is the entrance effect duration, in seconds,
	// used when a shape does not configure one.
	DefaultAnimationDuration = 0.5
)

// Animation describes one shape's entrance effect.
type Animation struct {
	Delay    float64 // seconds before the effect starts
	Duration float64 // seconds the effect runs; <= 0 means DefaultAnimationDuration
}

// Slide is one pre-rendered presentation unit as seen by the controller.
// The hidden flag is fixed at render time; the controller only decides
// whether hidden slides participate in navigation.
type Slide struct {
	Hidden     bool
	Animations []Animation
}

// Controller maintains navigation state for a fixed deck of slides and
// reflects every state change onto its Surface. All operations are total:
// out-of-range navigation is silently absorbed, never surfaced as an error.
//
// Controller is not safe for concurrent use; callers serialize input events
// (the live session does this with a single run loop).
type Controller struct {
	// Threshold overrides DefaultSwipeThreshold when positive.
	Threshold float64

	surface    Surface
	slides     []Slide
	current    int // 1-based index into the visible sequence
	showHidden bool
}

// New builds a controller over the given deck, starts at slide 1 with hidden
// slides excluded, and performs the initial render.
func New(surface Surface, slides []Slide) *Controller {
	c := &Controller{
		surface: surface,
		slides:  slides,
		current: 1,
	}
	c.render()
	return c
}

// visible returns the 1-based document ordinals of the slides currently
// participating in navigation, in document order. Recomputed on every call so
// it can never go stale against showHidden.
func (c *Controller) visible() []int {
	ords := make([]int, 0, len(c.slides))
	for i, s := range c.slides {
		if c.showHidden || !s.Hidden {
			ords = append(ords, i+1)
		}
	}
	return ords
}

// CurrentIndex returns the 1-based position within the visible sequence.
func (c *Controller) CurrentIndex() int { return c.current }

// VisibleCount returns the number of slides currently participating in
// navigation.
func (c *Controller) VisibleCount() int { return len(c.visible()) }

// ShowHidden reports whether hidden slides participate in navigation.
func (c *Controller) ShowHidden() bool { return c.showHidden }

// ActiveOrdinal returns the document ordinal of the active slide, or 0 when
// no slide is active (empty visible set).
func (c *Controller) ActiveOrdinal() int {
	vis := c.visible()
	if len(vis) == 0 {
		return 0
	}
	return vis[c.current-1]
}

// Advance moves to the next visible slide. At the last slide it is a no-op;
// there is no wraparound.
func (c *Controller) Advance() {
	if c.current < len(c.visible()) {
		c.current++
		c.render()
	}
}

// Retreat moves to the previous visible slide. At the first slide it is a
// no-op.
func (c *Controller) Retreat() {
	if c.current > 1 {
		c.current--
		c.render()
	}
}

// JumpTo navigates directly to position n in the visible sequence. An
// out-of-range n is silently ignored.
func (c *Controller) JumpTo(n int) {
	if n < 1 || n > len(c.visible()) {
		return
	}
	c.current = n
	c.render()
}

// SetShowHidden toggles whether hidden slides participate in navigation.
// If the slide that was active stays in the new visible sequence, the viewer
// keeps their place at its new position; otherwise navigation falls back to
// the first slide.
func (c *Controller) SetShowHidden(flag bool) {
	prev := c.ActiveOrdinal()
	c.showHidden = flag
	c.current = 1
	if prev != 0 {
		for i, ord := range c.visible() {
			if ord == prev {
				c.current = i + 1
				break
			}
		}
	}
	c.render()
}

// render is the one synchronization routine: it rebuilds the full surface
// state from scratch after every mutation.
func (c *Controller) render() {
	// Deactivate the whole deck, not just the visible subset, and wipe every
	// shape's played state so a later reactivation replays from scratch.
	for i, s := range c.slides {
		c.surface.SetActive(i+1, false)
		for j := range s.Animations {
			c.surface.ResetAnimation(i+1, j)
		}
	}

	vis := c.visible()
	if len(vis) == 0 {
		// Nothing to activate; counter and progress keep their last state.
		return
	}

	// Guard against indices gone stale across a visibility change.
	if c.current < 1 {
		c.current = 1
	}
	if c.current > len(vis) {
		c.current = len(vis)
	}

	ord := vis[c.current-1]
	c.surface.SetActive(ord, true)

	if anims := c.slides[ord-1].Animations; len(anims) > 0 {
		// The pre-animation state must be observed before the effects replay,
		// otherwise the transition is not guaranteed to render.
		c.surface.CommitPendingStyleFlush()
		for j, a := range anims {
			delay := a.Delay
			if delay < 0 {
				delay = 0
			}
			duration := a.Duration
			if duration <= 0 {
				duration = DefaultAnimationDuration
			}
			c.surface.StartAnimation(ord, j, delay, duration)
		}
	}

	c.surface.SetCounter(c.current, len(vis))
	c.surface.SetProgress(float64(c.current) / float64(len(vis)))
	c.surface.SetControlEnabled(ControlPrev, c.current > 1)
	c.surface.SetControlEnabled(ControlNext, c.current < len(vis))
}
