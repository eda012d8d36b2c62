package gui

import (
	"fmt"

	"github.com/FyshOS/vidmode/videomode"
)

// state is a snapshot of what the window shows.
type state struct {
	desktop videomode.VideoMode
	current videomode.Resolution
	changed bool
	modes   []videomode.VideoMode

	options []string
	sizes   map[string]videomode.Resolution
}

func loadState(s *videomode.Session, screen, limit int) (state, error) {
	desktop, err := s.DesktopMode(screen)
	if err != nil {
		return state{}, err
	}
	w, h, err := s.Display().ScreenSize(screen)
	if err != nil {
		return state{}, err
	}
	modes, err := s.ListModes(screen, limit)
	if err != nil {
		return state{}, err
	}

	st := state{
		desktop: desktop,
		current: videomode.Resolution{Width: w, Height: h},
		changed: s.Changed(screen),
		modes:   modes,
		sizes:   map[string]videomode.Resolution{},
	}
	for _, m := range modes {
		option := resolutionLabel(m.Width, m.Height)
		if _, found := st.sizes[option]; !found {
			st.options = append(st.options, option)
			st.sizes[option] = videomode.Resolution{Width: m.Width, Height: m.Height}
		}
	}
	return st, nil
}

func resolutionLabel(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}

func (st state) aspect() float32 {
	if st.current.Height == 0 {
		return 1
	}
	return float32(st.current.Width) / float32(st.current.Height)
}
