package x11

import (
	"errors"
	"fmt"
	"strings"

	"github.com/FyshOS/vidmode/internal/logger"
	"github.com/FyshOS/vidmode/videomode"
)

// ErrUnavailable is returned when a requested extension is missing.
var ErrUnavailable = errors.New("extension not available")

// Provider picks the mode extension. "auto" (or "") prefers RandR, then
// XF86VidMode, and falls back to no extension at all.
func (c *Conn) Provider(ext string) (videomode.Provider, error) {
	randrProvider := func() videomode.Provider { return videomode.NewRandRProvider(c.RandR(), c) }
	vidmodeProvider := func() videomode.Provider { return videomode.NewVidModeProvider(c.VidMode()) }

	switch strings.ToLower(ext) {
	case "", "auto":
		candidates := []struct {
			name      string
			available bool
			create    func() videomode.Provider
		}{
			{"randr", c.hasRandR, randrProvider},
			{"xf86vidmode", c.hasVidMode, vidmodeProvider},
		}
		for _, cand := range candidates {
			if cand.available {
				logger.Debug("Using mode extension", "extension", cand.name)
				return cand.create(), nil
			}
			logger.Debug("Skipping mode extension", "extension", cand.name)
		}
		logger.Info("No mode extension, the desktop resolution is fixed")
		return videomode.NoneProvider{}, nil
	case "randr":
		if !c.hasRandR {
			return nil, fmt.Errorf("randr: %w", ErrUnavailable)
		}
		return randrProvider(), nil
	case "xf86vidmode":
		if !c.hasVidMode {
			return nil, fmt.Errorf("xf86vidmode: %w", ErrUnavailable)
		}
		return vidmodeProvider(), nil
	case "none":
		return videomode.NoneProvider{}, nil
	default:
		return nil, fmt.Errorf("unknown mode extension %q", ext)
	}
}

// Session returns a videomode session on this connection.
func (c *Conn) Session(ext string, opts ...videomode.Option) (*videomode.Session, error) {
	p, err := c.Provider(ext)
	if err != nil {
		return nil, err
	}
	return videomode.NewSession(c, p, opts...), nil
}
