package videomode

import (
	"fmt"
	"iter"
)

// Modes returns every combination of the screen's OpenGL capable true
// colour formats and the resolutions the mode extension offers, format
// by format. The sequence can be ranged over more than once.
func (s *Session) Modes(screen int) (iter.Seq[VideoMode], error) {
	if err := s.checkScreen(screen); err != nil {
		return nil, err
	}

	visuals, err := s.display.Visuals(screen)
	if err != nil {
		return nil, fmt.Errorf("%w: screen %d: %w", ErrVisualEnumeration, screen, err)
	}
	formats := colorFormats(visuals)

	sizes, err := s.provider.Resolutions(screen)
	if err != nil {
		s.logger.Warn("Mode query failed, using screen size", "screen", screen, "err", err)
		sizes = nil
	}
	sizes = uniqueResolutions(sizes)
	if len(sizes) == 0 {
		size, err := s.desktopSize(screen)
		if err != nil {
			return nil, err
		}
		sizes = []Resolution{size}
	}

	return func(yield func(VideoMode) bool) {
		for _, f := range formats {
			for _, size := range sizes {
				m := VideoMode{
					Width:     size.Width,
					Height:    size.Height,
					RedBits:   f.r,
					GreenBits: f.g,
					BlueBits:  f.b,
				}
				if !yield(m) {
					return
				}
			}
		}
	}, nil
}

// ListModes collects at most limit modes of screen.
func (s *Session) ListModes(screen, limit int) ([]VideoMode, error) {
	seq, err := s.Modes(screen)
	if err != nil {
		return nil, err
	}
	return Take(seq, limit), nil
}

// Take collects at most n values of seq.
func Take(seq iter.Seq[VideoMode], n int) []VideoMode {
	modes := []VideoMode{}
	if n <= 0 {
		return modes
	}
	for m := range seq {
		modes = append(modes, m)
		if len(modes) == n {
			break
		}
	}
	return modes
}

func colorFormats(visuals []Visual) []rgb {
	var formats []rgb
	for _, v := range visuals {
		if !v.GL || !v.RGBA {
			continue
		}
		f := formatOf(v.Depth)
		seen := false
		for _, have := range formats {
			if have == f {
				seen = true
				break
			}
		}
		if !seen {
			formats = append(formats, f)
		}
	}
	return formats
}

func uniqueResolutions(sizes []Resolution) []Resolution {
	var res []Resolution
	for _, s := range sizes {
		res = appendUnique(res, s)
	}
	return res
}

func appendUnique(res []Resolution, r Resolution) []Resolution {
	for _, have := range res {
		if have == r {
			return res
		}
	}
	return append(res, r)
}
