package videomode

import (
	"errors"
	"fmt"
)

// VidModeProvider switches modes with XF86VidMode mode lines.
type VidModeProvider struct {
	backend VidMode
}

// NewVidModeProvider returns the legacy provider.
func NewVidModeProvider(backend VidMode) *VidModeProvider {
	return &VidModeProvider{backend: backend}
}

func (p *VidModeProvider) Name() string { return "xf86vidmode" }

func (p *VidModeProvider) modeLines(screen int) ([]ModeLine, error) {
	lines, err := p.backend.ModeLines(screen)
	if err != nil {
		return nil, fmt.Errorf("xf86vidmode mode lines: %w", err)
	}
	return lines, nil
}

// Resolutions lists the distinct sizes of the mode lines.
func (p *VidModeProvider) Resolutions(screen int) ([]Resolution, error) {
	lines, err := p.modeLines(screen)
	if err != nil {
		return nil, err
	}

	var res []Resolution
	for _, l := range lines {
		res = appendUnique(res, Resolution{int(l.HDisplay), int(l.VDisplay)})
	}
	return res, nil
}

// Closest matches on size first. When rate is positive and several mode
// lines have that size, the one running nearest to rate wins. The reported
// rate is the one the chosen mode line runs at.
func (p *VidModeProvider) Closest(screen, width, height, rate int) (Match, bool, error) {
	lines, err := p.modeLines(screen)
	if err != nil {
		return Match{}, false, err
	}

	sizes := make([]Resolution, len(lines))
	for i, l := range lines {
		sizes[i] = Resolution{int(l.HDisplay), int(l.VDisplay)}
	}
	best := closestSize(sizes, width, height)
	if best < 0 {
		return Match{}, false, nil
	}
	if rate > 0 {
		bestDiff := abs(lines[best].RefreshRate() - rate)
		for i := best + 1; i < len(lines); i++ {
			if sizes[i] != sizes[best] {
				continue
			}
			if diff := abs(lines[i].RefreshRate() - rate); diff < bestDiff {
				best, bestDiff = i, diff
			}
		}
	}

	l := lines[best]
	return Match{
		Index:  best,
		Width:  int(l.HDisplay),
		Height: int(l.VDisplay),
		Rate:   l.RefreshRate(),
	}, true, nil
}

func (p *VidModeProvider) switchMode(screen, index, _ int, saved *savedMode) error {
	lines, err := p.modeLines(screen)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(lines) {
		return fmt.Errorf("%w: mode line %d of %d", ErrNoSuchMode, index, len(lines))
	}

	// The server lists the current mode line first.
	orig := savedMode{
		changed:  true,
		size:     Resolution{int(lines[0].HDisplay), int(lines[0].VDisplay)},
		modeLine: lines[0],
	}

	if saved.changed {
		if err := p.backend.LockModeSwitch(screen, false); err != nil {
			return fmt.Errorf("unlock mode switch: %w", err)
		}
	}
	if err := p.backend.SwitchToMode(screen, lines[index]); err != nil {
		if saved.changed {
			if lerr := p.backend.LockModeSwitch(screen, true); lerr != nil {
				err = errors.Join(err, fmt.Errorf("relock mode switch: %w", lerr))
			}
		}
		return fmt.Errorf("switch to mode: %w", err)
	}
	// From here on the screen is switched and has to be restorable.
	if !saved.changed {
		*saved = orig
	}

	if err := p.backend.SetViewPort(screen, 0, 0); err != nil {
		return fmt.Errorf("set viewport: %w", err)
	}
	if err := p.backend.LockModeSwitch(screen, true); err != nil {
		return fmt.Errorf("lock mode switch: %w", err)
	}
	return nil
}

func (p *VidModeProvider) restore(screen int, saved *savedMode) error {
	if err := p.backend.LockModeSwitch(screen, false); err != nil {
		return fmt.Errorf("unlock mode switch: %w", err)
	}
	if err := p.backend.SwitchToMode(screen, saved.modeLine); err != nil {
		return fmt.Errorf("switch to mode: %w", err)
	}
	return nil
}

func (p *VidModeProvider) nativeSize(screen int) (Resolution, bool, error) {
	lines, err := p.modeLines(screen)
	if err != nil {
		return Resolution{}, false, err
	}
	if len(lines) == 0 {
		return Resolution{}, false, nil
	}
	return Resolution{int(lines[0].HDisplay), int(lines[0].VDisplay)}, true, nil
}
