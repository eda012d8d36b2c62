package videomode

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Session remembers the desktop mode of every screen it has switched so
// that it can be put back. A Session is safe for concurrent use.
type Session struct {
	display  Display
	provider Provider
	logger   *log.Logger

	mu    sync.Mutex
	saved map[int]*savedMode
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for fallbacks and switches.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession returns a Session switching modes on display through p. A nil
// provider behaves like NoneProvider.
func NewSession(display Display, p Provider, opts ...Option) *Session {
	if p == nil {
		p = NoneProvider{}
	}
	s := &Session{
		display:  display,
		provider: p,
		logger:   log.Default(),
		saved:    make(map[int]*savedMode),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("provider", p.Name())
	return s
}

// Provider returns the mode extension in use.
func (s *Session) Provider() Provider {
	return s.provider
}

// Display returns the display the session switches.
func (s *Session) Display() Display {
	return s.display
}

func (s *Session) checkScreen(screen int) error {
	if screen < 0 || screen >= s.display.ScreenCount() {
		return fmt.Errorf("%w: %d", ErrBadScreen, screen)
	}
	return nil
}

func (s *Session) desktopSize(screen int) (Resolution, error) {
	w, h, err := s.display.ScreenSize(screen)
	if err != nil {
		return Resolution{}, fmt.Errorf("screen size: %w", err)
	}
	return Resolution{w, h}, nil
}

// ClosestMode finds the mode nearest to width x height and, when rate is
// positive, the nearest refresh rate of that mode. Without a usable
// extension the current desktop size is returned with index 0.
func (s *Session) ClosestMode(screen, width, height, rate int) (Match, error) {
	if err := s.checkScreen(screen); err != nil {
		return Match{}, err
	}

	m, ok, err := s.provider.Closest(screen, width, height, rate)
	if err != nil {
		s.logger.Warn("Mode query failed, using desktop size", "screen", screen, "err", err)
	}
	if err == nil && ok {
		return m, nil
	}

	size, err := s.desktopSize(screen)
	if err != nil {
		return Match{}, err
	}
	return Match{Index: 0, Width: size.Width, Height: size.Height, Rate: rate}, nil
}

// SetModeIndex switches screen to the provider mode at index. The first
// switch since the last restore remembers the current mode.
func (s *Session) SetModeIndex(screen, index, rate int) error {
	if err := s.checkScreen(screen); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.saved[screen]
	if saved == nil {
		saved = &savedMode{}
	}
	// A provider marks saved as soon as the screen has left its mode, even
	// when a later step of the switch fails.
	err := s.provider.switchMode(screen, index, rate, saved)
	if saved.changed {
		s.saved[screen] = saved
	}
	if err != nil {
		return fmt.Errorf("set mode %d on screen %d: %w", index, screen, err)
	}

	s.logger.Debug("Switched mode", "screen", screen, "index", index, "rate", rate)
	return nil
}

// SetMode switches screen to the mode closest to width x height at rate
// and returns what was chosen.
func (s *Session) SetMode(screen, width, height, rate int) (Match, error) {
	m, err := s.ClosestMode(screen, width, height, rate)
	if err != nil {
		return Match{}, err
	}
	if err := s.SetModeIndex(screen, m.Index, m.Rate); err != nil {
		return Match{}, err
	}
	return m, nil
}

// RestoreMode puts screen back into the mode it had before the first
// switch. It does nothing when the screen was never switched.
func (s *Session) RestoreMode(screen int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.restoreLocked(screen)
}

func (s *Session) restoreLocked(screen int) error {
	saved := s.saved[screen]
	if saved == nil || !saved.changed {
		return nil
	}
	if err := s.provider.restore(screen, saved); err != nil {
		return fmt.Errorf("restore mode on screen %d: %w", screen, err)
	}
	delete(s.saved, screen)

	s.logger.Debug("Restored mode", "screen", screen, "size", saved.size)
	return nil
}

// RestoreAll restores every switched screen.
func (s *Session) RestoreAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for screen := range s.saved {
		if err := s.restoreLocked(screen); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Changed reports whether screen is currently switched away from its
// desktop mode.
func (s *Session) Changed(screen int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.saved[screen]
	return saved != nil && saved.changed
}

// DesktopMode reports the desktop mode of screen. While the screen is
// switched this is the mode it will be restored to.
func (s *Session) DesktopMode(screen int) (VideoMode, error) {
	if err := s.checkScreen(screen); err != nil {
		return VideoMode{}, err
	}

	var mode VideoMode
	mode.RedBits, mode.GreenBits, mode.BlueBits = BPPToRGB(s.display.DefaultDepth(screen))

	s.mu.Lock()
	saved := s.saved[screen]
	s.mu.Unlock()
	if saved != nil && saved.changed {
		mode.Width, mode.Height = saved.size.Width, saved.size.Height
		return mode, nil
	}

	native, ok, err := s.provider.nativeSize(screen)
	if err != nil {
		s.logger.Warn("Mode query failed, using screen size", "screen", screen, "err", err)
	}
	if err == nil && ok {
		mode.Width, mode.Height = native.Width, native.Height
		return mode, nil
	}

	size, err := s.desktopSize(screen)
	if err != nil {
		return VideoMode{}, err
	}
	mode.Width, mode.Height = size.Width, size.Height
	return mode, nil
}
