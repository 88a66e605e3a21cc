package player

import (
	"testing"
)

// surfaceCall records one call the controller made against the fake surface.
type surfaceCall struct {
	op       string
	slide    int
	shape    int
	active   bool
	current  int
	total    int
	fraction float64
	ctl      Control
	enabled  bool
	delay    float64
	duration float64
}

// fakeSurface records every call and also tracks the resulting end state so
// tests can assert on both ordering and final effect.
type fakeSurface struct {
	calls      []surfaceCall
	activeSet  map[int]bool
	counterCur int
	counterTot int
	progress   float64
	enabled    map[Control]bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		activeSet: make(map[int]bool),
		enabled:   make(map[Control]bool),
	}
}

func (f *fakeSurface) SetActive(slide int, active bool) {
	f.calls = append(f.calls, surfaceCall{op: "active", slide: slide, active: active})
	if active {
		f.activeSet[slide] = true
	} else {
		delete(f.activeSet, slide)
	}
}

func (f *fakeSurface) SetCounter(current, total int) {
	f.calls = append(f.calls, surfaceCall{op: "counter", current: current, total: total})
	f.counterCur, f.counterTot = current, total
}

func (f *fakeSurface) SetProgress(fraction float64) {
	f.calls = append(f.calls, surfaceCall{op: "progress", fraction: fraction})
	f.progress = fraction
}

func (f *fakeSurface) SetControlEnabled(ctl Control, enabled bool) {
	f.calls = append(f.calls, surfaceCall{op: "control", ctl: ctl, enabled: enabled})
	f.enabled[ctl] = enabled
}

func (f *fakeSurface) ResetAnimation(slide, shape int) {
	f.calls = append(f.calls, surfaceCall{op: "reset", slide: slide, shape: shape})
}

func (f *fakeSurface) CommitPendingStyleFlush() {
	f.calls = append(f.calls, surfaceCall{op: "flush"})
}

func (f *fakeSurface) StartAnimation(slide, shape int, delay, duration float64) {
	f.calls = append(f.calls, surfaceCall{
		op: "start", slide: slide, shape: shape, delay: delay, duration: duration,
	})
}

// activeOrdinals returns the slides currently marked active.
func (f *fakeSurface) activeOrdinals() []int {
	var ords []int
	for ord := range f.activeSet {
		ords = append(ords, ord)
	}
	return ords
}

func plainDeck(n int) []Slide {
	return make([]Slide, n)
}

func assertSingleActive(t *testing.T, f *fakeSurface, want int) {
	t.Helper()
	ords := f.activeOrdinals()
	if len(ords) != 1 {
		t.Fatalf("active slides = %v, want exactly one", ords)
	}
	if ords[0] != want {
		t.Errorf("active slide = %d, want %d", ords[0], want)
	}
}

func TestInitialRender(t *testing.T) {
	f := newFakeSurface()
	c := New(f, plainDeck(3))

	assertSingleActive(t, f, 1)
	if c.CurrentIndex() != 1 {
		t.Errorf("current = %d, want 1", c.CurrentIndex())
	}
	if f.counterCur != 1 || f.counterTot != 3 {
		t.Errorf("counter = %d/%d, want 1/3", f.counterCur, f.counterTot)
	}
	if f.enabled[ControlPrev] {
		t.Error("prev should be disabled on the first slide")
	}
	if !f.enabled[ControlNext] {
		t.Error("next should be enabled on the first slide")
	}
}

func TestAdvanceRetreatBounds(t *testing.T) {
	f := newFakeSurface()
	c := New(f, plainDeck(2))

	c.Retreat() // already at first slide
	if c.CurrentIndex() != 1 {
		t.Errorf("retreat at start: current = %d, want 1", c.CurrentIndex())
	}

	c.Advance()
	c.Advance() // already at last slide, no wraparound
	if c.CurrentIndex() != 2 {
		t.Errorf("advance at end: current = %d, want 2", c.CurrentIndex())
	}
	assertSingleActive(t, f, 2)
	if f.enabled[ControlNext] {
		t.Error("next should be disabled on the last slide")
	}
	if !f.enabled[ControlPrev] {
		t.Error("prev should be enabled on the last slide")
	}
}

func TestJumpTo(t *testing.T) {
	f := newFakeSurface()
	c := New(f, plainDeck(5))

	c.JumpTo(4)
	if c.CurrentIndex() != 4 {
		t.Errorf("current = %d, want 4", c.CurrentIndex())
	}

	// Out-of-range targets are ignored.
	c.JumpTo(0)
	c.JumpTo(6)
	c.JumpTo(-1)
	if c.CurrentIndex() != 4 {
		t.Errorf("current after out-of-range jumps = %d, want 4", c.CurrentIndex())
	}
}

func TestProgressFraction(t *testing.T) {
	f := newFakeSurface()
	c := New(f, plainDeck(5))

	c.JumpTo(1)
	if f.progress != 0.2 {
		t.Errorf("progress at 1/5 = %v, want 0.2", f.progress)
	}
	c.JumpTo(5)
	if f.progress != 1.0 {
		t.Errorf("progress at 5/5 = %v, want 1.0", f.progress)
	}
}

func TestTogglePreservesPosition(t *testing.T) {
	// [A visible, B hidden, C visible], viewer on A.
	f := newFakeSurface()
	c := New(f, []Slide{{}, {Hidden: true}, {}})

	c.SetShowHidden(true)
	if got := c.VisibleCount(); got != 3 {
		t.Fatalf("visible count = %d, want 3", got)
	}
	if c.CurrentIndex() != 1 {
		t.Errorf("current = %d, want 1", c.CurrentIndex())
	}
	assertSingleActive(t, f, 1)
}

func TestToggleKeepsPlaceAtNewIndex(t *testing.T) {
	// Navigate to C (index 2 with B hidden), then reveal hidden slides:
	// C is still present, now at index 3.
	f := newFakeSurface()
	c := New(f, []Slide{{}, {Hidden: true}, {}})

	c.Advance()
	if c.CurrentIndex() != 2 {
		t.Fatalf("current = %d, want 2", c.CurrentIndex())
	}
	assertSingleActive(t, f, 3)

	c.SetShowHidden(true)
	if c.CurrentIndex() != 3 {
		t.Errorf("current after toggle = %d, want 3", c.CurrentIndex())
	}
	assertSingleActive(t, f, 3)
}

func TestToggleHidesActiveSlide(t *testing.T) {
	// Active slide is hidden; filtering it out falls back to the start.
	f := newFakeSurface()
	c := New(f, []Slide{{}, {Hidden: true}, {}})

	c.SetShowHidden(true)
	c.JumpTo(2) // B, the hidden slide
	assertSingleActive(t, f, 2)

	c.SetShowHidden(false)
	if c.CurrentIndex() != 1 {
		t.Errorf("current after hiding active slide = %d, want 1", c.CurrentIndex())
	}
	assertSingleActive(t, f, 1)
}

func TestZeroVisibleSlides(t *testing.T) {
	f := newFakeSurface()
	c := New(f, []Slide{{Hidden: true}, {Hidden: true}})

	if got := len(f.activeOrdinals()); got != 0 {
		t.Errorf("active slides = %d, want 0", got)
	}
	// Counter and progress keep their zero (last-known) state.
	if f.counterTot != 0 {
		t.Errorf("counter total = %d, want untouched 0", f.counterTot)
	}

	// All navigation is absorbed without panicking.
	c.Advance()
	c.Retreat()
	c.JumpTo(1)

	// Revealing and re-hiding leaves the counter at its last-known value.
	c.SetShowHidden(true)
	if f.counterTot != 2 {
		t.Fatalf("counter total = %d, want 2", f.counterTot)
	}
	c.SetShowHidden(false)
	if f.counterCur != 1 || f.counterTot != 2 {
		t.Errorf("counter = %d/%d, want last-known 1/2", f.counterCur, f.counterTot)
	}
	if got := len(f.activeOrdinals()); got != 0 {
		t.Errorf("active slides after re-hide = %d, want 0", got)
	}
}

func TestAnimationReplayOnReactivation(t *testing.T) {
	f := newFakeSurface()
	deck := []Slide{
		{},
		{Animations: []Animation{{Delay: 0.3, Duration: 1.2}, {}}},
	}
	c := New(f, deck)

	c.Advance() // activate slide 2
	c.Retreat()
	f.calls = nil
	c.Advance() // reactivate slide 2: the effects must replay from scratch

	var resetAt, flushAt, startAt []int
	for i, call := range f.calls {
		switch {
		case call.op == "reset" && call.slide == 2:
			resetAt = append(resetAt, i)
		case call.op == "flush":
			flushAt = append(flushAt, i)
		case call.op == "start" && call.slide == 2:
			startAt = append(startAt, i)
		}
	}

	if len(resetAt) != 2 {
		t.Fatalf("resets for slide 2 = %d, want 2", len(resetAt))
	}
	if len(flushAt) != 1 {
		t.Fatalf("flushes = %d, want 1", len(flushAt))
	}
	if len(startAt) != 2 {
		t.Fatalf("starts for slide 2 = %d, want 2", len(startAt))
	}

	// reset → flush → start, in that order.
	if flushAt[0] < resetAt[len(resetAt)-1] {
		t.Error("style flush must come after the animation resets")
	}
	for _, s := range startAt {
		if s < flushAt[0] {
			t.Error("animation start must come after the style flush")
		}
	}

	// Configured timing is passed through; unset duration gets the default.
	for _, call := range f.calls {
		if call.op != "start" {
			continue
		}
		switch call.shape {
		case 0:
			if call.delay != 0.3 || call.duration != 1.2 {
				t.Errorf("shape 0 timing = (%v, %v), want (0.3, 1.2)", call.delay, call.duration)
			}
		case 1:
			if call.delay != 0 || call.duration != DefaultAnimationDuration {
				t.Errorf("shape 1 timing = (%v, %v), want (0, %v)", call.delay, call.duration, DefaultAnimationDuration)
			}
		}
	}
}

func TestNoFlushWithoutAnimations(t *testing.T) {
	f := newFakeSurface()
	c := New(f, plainDeck(2))
	c.Advance()

	for _, call := range f.calls {
		if call.op == "flush" {
			t.Fatal("flush issued for a deck with no animatable shapes")
		}
	}
}

func TestSwipeThreshold(t *testing.T) {
	tests := []struct {
		name         string
		startX, endX float64
		want         int
	}{
		{"exactly threshold ignored", 150, 100, 1},
		{"leftward past threshold advances", 151, 100, 2},
		{"rightward past threshold retreats", 100, 151, 1},
		{"short flick ignored", 120, 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(newFakeSurface(), plainDeck(3))
			if tt.want == 1 && tt.endX > tt.startX {
				// Start from the middle so a retreat is observable.
				c.Advance()
				c.HandleSwipe(tt.startX, tt.endX)
				if c.CurrentIndex() != 1 {
					t.Errorf("current = %d, want 1", c.CurrentIndex())
				}
				return
			}
			c.HandleSwipe(tt.startX, tt.endX)
			if c.CurrentIndex() != tt.want {
				t.Errorf("current = %d, want %d", c.CurrentIndex(), tt.want)
			}
		})
	}
}

func TestSwipeCustomThreshold(t *testing.T) {
	c := New(newFakeSurface(), plainDeck(3))
	c.Threshold = 20

	c.HandleSwipe(121, 100)
	if c.CurrentIndex() != 2 {
		t.Errorf("current = %d, want 2 with lowered threshold", c.CurrentIndex())
	}
	c.HandleSwipe(120, 100) // exactly 20, still strict
	if c.CurrentIndex() != 2 {
		t.Errorf("current = %d, want 2 for delta equal to threshold", c.CurrentIndex())
	}
}

func TestKeyBindings(t *testing.T) {
	f := newFakeSurface()
	c := New(f, plainDeck(4))

	if suppress := c.HandleKey(KeyRight); suppress {
		t.Error("ArrowRight should not request default suppression")
	}
	if c.CurrentIndex() != 2 {
		t.Fatalf("current = %d, want 2", c.CurrentIndex())
	}

	if suppress := c.HandleKey(KeySpace); !suppress {
		t.Error("Space must request default suppression")
	}
	if c.CurrentIndex() != 3 {
		t.Fatalf("current = %d, want 3", c.CurrentIndex())
	}

	c.HandleKey(KeyLeft)
	if c.CurrentIndex() != 2 {
		t.Fatalf("current = %d, want 2", c.CurrentIndex())
	}
	c.HandleKey(KeyUp)
	if c.CurrentIndex() != 1 {
		t.Fatalf("current = %d, want 1", c.CurrentIndex())
	}

	c.HandleKey(KeyEnd)
	if c.CurrentIndex() != 4 {
		t.Fatalf("End: current = %d, want 4", c.CurrentIndex())
	}
	c.HandleKey(KeyHome)
	if c.CurrentIndex() != 1 {
		t.Fatalf("Home: current = %d, want 1", c.CurrentIndex())
	}

	c.HandleKey(Key("x")) // unbound
	if c.CurrentIndex() != 1 {
		t.Fatalf("unbound key moved current to %d", c.CurrentIndex())
	}
}

func TestExactlyOneActiveInvariant(t *testing.T) {
	f := newFakeSurface()
	c := New(f, []Slide{{}, {Hidden: true}, {}, {Hidden: true}, {}})

	steps := []func(){
		c.Advance, c.Advance, c.Advance, // absorbs the boundary
		func() { c.SetShowHidden(true) },
		func() { c.JumpTo(4) },
		c.Retreat,
		func() { c.SetShowHidden(false) },
		func() { c.JumpTo(3) },
	}
	for i, step := range steps {
		step()
		if got := len(f.activeOrdinals()); got != 1 {
			t.Fatalf("step %d: active slides = %d, want exactly 1", i, got)
		}
		if c.CurrentIndex() < 1 || c.CurrentIndex() > c.VisibleCount() {
			t.Fatalf("step %d: current %d out of [1,%d]", i, c.CurrentIndex(), c.VisibleCount())
		}
	}
}
