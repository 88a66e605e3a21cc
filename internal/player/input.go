package player

// Key is a navigation key reported by an input source.
type Key string

const (
	KeyLeft  Key = "ArrowLeft"
	KeyRight Key = "ArrowRight"
	KeyUp    Key = "ArrowUp"
	KeyDown  Key = "ArrowDown"
	KeySpace Key = " "
	KeyHome  Key = "Home"
	KeyEnd   Key = "End"
)

// HandleKey applies the keyboard binding for key and reports whether the
// input source must suppress the key's default behaviour (Space would
// otherwise scroll the page). Unbound keys are ignored.
func (c *Controller) HandleKey(key Key) bool {
	switch key {
	case KeyLeft, KeyUp:
		c.Retreat()
	case KeyRight, KeyDown:
		c.Advance()
	case KeySpace:
		c.Advance()
		return true
	case KeyHome:
		c.JumpTo(1)
	case KeyEnd:
		c.JumpTo(c.VisibleCount())
	}
	return false
}

// HandleSwipe interprets a completed horizontal touch gesture from the X
// coordinates of its first touch point. A right-to-left swipe advances, a
// left-to-right swipe retreats; the delta must strictly exceed the threshold
// in either direction, so a gesture of exactly the threshold does nothing.
func (c *Controller) HandleSwipe(startX, endX float64) {
	threshold := c.Threshold
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	delta := startX - endX
	switch {
	case delta > threshold:
		c.Advance()
	case -delta > threshold:
		c.Retreat()
	}
}
