package live

import "github.com/slidecast/slidecast/internal/player"

// batchSurface implements player.Surface by buffering render operations.
// The session drains the buffer into one frame after each handled command,
// preserving the controller's call order, including the flush-before-start
// animation protocol, which viewers honour by forcing a reflow on "flush".
type batchSurface struct {
	ops []wireOp
}

func (s *batchSurface) SetActive(slide int, active bool) {
	s.ops = append(s.ops, wireOp{Op: "active", Slide: slide, On: active})
}

func (s *batchSurface) SetCounter(current, total int) {
	s.ops = append(s.ops, wireOp{Op: "counter", Current: current, Total: total})
}

func (s *batchSurface) SetProgress(fraction float64) {
	s.ops = append(s.ops, wireOp{Op: "progress", Fraction: fraction})
}

func (s *batchSurface) SetControlEnabled(ctl player.Control, enabled bool) {
	s.ops = append(s.ops, wireOp{Op: "control", Control: string(ctl), On: enabled})
}

func (s *batchSurface) ResetAnimation(slide, shape int) {
	s.ops = append(s.ops, wireOp{Op: "reset", Slide: slide, Shape: shape})
}

func (s *batchSurface) CommitPendingStyleFlush() {
	s.ops = append(s.ops, wireOp{Op: "flush"})
}

func (s *batchSurface) StartAnimation(slide, shape int, delay, duration float64) {
	s.ops = append(s.ops, wireOp{
		Op: "start", Slide: slide, Shape: shape, Delay: delay, Duration: duration,
	})
}

// take returns the buffered operations and resets the buffer.
func (s *batchSurface) take() []wireOp {
	ops := s.ops
	s.ops = nil
	return ops
}
