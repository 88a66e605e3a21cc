package site

import (
	"github.com/slidecast/slidecast/internal/deck"
	"github.com/slidecast/slidecast/internal/player"
)

// PlayerSlides maps a parsed deck onto the controller's slide model, using
// the same staggered entrance timing the generator writes into the markup so
// that live mode and standalone playback stay in step.
func PlayerSlides(d *deck.Deck, animations bool) []player.Slide {
	slides := make([]player.Slide, 0, len(d.Slides))
	for _, s := range d.Slides {
		ps := player.Slide{Hidden: s.Hidden}
		if animations && s.Animated {
			for i := range s.Shapes {
				ps.Animations = append(ps.Animations, player.Animation{
					Delay:    animStagger * float64(i),
					Duration: defaultDuration,
				})
			}
		}
		slides = append(slides, ps)
	}
	return slides
}
