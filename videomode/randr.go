package videomode

import (
	"fmt"
	"math"
)

// RandRProvider switches modes with RandR screen configurations.
type RandRProvider struct {
	backend RandR
	display Display
}

// NewRandRProvider returns the modern provider.
func NewRandRProvider(backend RandR, display Display) *RandRProvider {
	return &RandRProvider{backend: backend, display: display}
}

func (p *RandRProvider) Name() string { return "randr" }

func (p *RandRProvider) Resolutions(screen int) ([]Resolution, error) {
	info, err := p.backend.ScreenInfo(screen)
	if err != nil {
		return nil, fmt.Errorf("randr screen info: %w", err)
	}
	return append([]Resolution(nil), info.Sizes...), nil
}

func (p *RandRProvider) Closest(screen, width, height, rate int) (Match, bool, error) {
	info, err := p.backend.ScreenInfo(screen)
	if err != nil {
		return Match{}, false, fmt.Errorf("randr screen info: %w", err)
	}

	best := closestSize(info.Sizes, width, height)
	if best < 0 {
		return Match{}, false, nil
	}

	m := Match{
		Index:  best,
		Width:  info.Sizes[best].Width,
		Height: info.Sizes[best].Height,
		Rate:   rate,
	}
	if rate > 0 && best < len(info.Rates) {
		if r, ok := closestRate(info.Rates[best], rate); ok {
			m.Rate = r
		}
	}
	return m, true, nil
}

func (p *RandRProvider) switchMode(screen, index, rate int, saved *savedMode) error {
	info, err := p.backend.ScreenInfo(screen)
	if err != nil {
		return fmt.Errorf("randr screen info: %w", err)
	}
	if index < 0 || index >= len(info.Sizes) {
		return fmt.Errorf("%w: size %d of %d", ErrNoSuchMode, index, len(info.Sizes))
	}

	orig := *saved
	if !orig.changed {
		w, h, err := p.display.ScreenSize(screen)
		if err != nil {
			return err
		}
		orig = savedMode{
			changed:  true,
			size:     Resolution{w, h},
			sizeID:   info.SizeID,
			rotation: info.Rotation,
		}
	}

	if rate < 0 {
		rate = 0
	}
	if err := p.backend.SetScreenConfig(screen, info, index, RotateNormal, rate); err != nil {
		return err
	}
	*saved = orig
	return nil
}

func (p *RandRProvider) restore(screen int, saved *savedMode) error {
	info, err := p.backend.ScreenInfo(screen)
	if err != nil {
		return fmt.Errorf("randr screen info: %w", err)
	}
	return p.backend.SetScreenConfig(screen, info, saved.sizeID, saved.rotation, 0)
}

func (p *RandRProvider) nativeSize(int) (Resolution, bool, error) {
	return Resolution{}, false, nil
}

// closestSize returns the index of the size nearest to width x height, or
// -1 for an empty list. The first of equally near sizes wins.
func closestSize(sizes []Resolution, width, height int) int {
	best, bestMatch := -1, math.MaxInt
	for i, s := range sizes {
		if d := squaredDistance(width, height, s.Width, s.Height); d < bestMatch {
			best, bestMatch = i, d
		}
	}
	return best
}

func closestRate(rates []int, rate int) (int, bool) {
	best, bestMatch := -1, math.MaxInt
	for _, r := range rates {
		if d := abs(r - rate); d < bestMatch {
			best, bestMatch = r, d
		}
	}
	return best, bestMatch != math.MaxInt
}
