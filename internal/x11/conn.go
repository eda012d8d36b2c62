// Package x11 connects the videomode adapter to an X server through xgb.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/glx"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xf86vidmode"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/FyshOS/vidmode/internal/logger"
	"github.com/FyshOS/vidmode/videomode"
)

// Conn is a display connection with the extensions it offers.
type Conn struct {
	x     *xgb.Conn
	setup *xproto.SetupInfo

	hasRandR   bool
	hasVidMode bool
	hasGLX     bool
}

// Open connects to the named display, or $DISPLAY when name is empty, and
// probes the RandR, XF86VidMode and GLX extensions.
func Open(name string) (*Conn, error) {
	x, err := xgb.NewConnDisplay(name)
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}

	c := &Conn{x: x, setup: xproto.Setup(x)}
	c.hasRandR = probe("RandR", func() error {
		if err := randr.Init(x); err != nil {
			return err
		}
		// Refresh rates need 1.1.
		_, err := randr.QueryVersion(x, 1, 1).Reply()
		return err
	})
	c.hasVidMode = probe("XF86VidMode", func() error {
		if err := xf86vidmode.Init(x); err != nil {
			return err
		}
		_, err := xf86vidmode.QueryVersion(x).Reply()
		return err
	})
	c.hasGLX = probe("GLX", func() error {
		if err := glx.Init(x); err != nil {
			return err
		}
		_, err := glx.QueryVersion(x, 1, 4).Reply()
		return err
	})
	return c, nil
}

func probe(name string, init func() error) bool {
	if err := init(); err != nil {
		logger.Debug("Extension unavailable", "extension", name, "err", err)
		return false
	}
	logger.Debug("Extension available", "extension", name)
	return true
}

// Close closes the connection.
func (c *Conn) Close() {
	c.x.Close()
}

func (c *Conn) HasRandR() bool   { return c.hasRandR }
func (c *Conn) HasVidMode() bool { return c.hasVidMode }
func (c *Conn) HasGLX() bool     { return c.hasGLX }

func (c *Conn) DefaultScreen() int {
	return c.x.DefaultScreen
}

func (c *Conn) ScreenCount() int {
	return len(c.setup.Roots)
}

func (c *Conn) screen(screen int) (*xproto.ScreenInfo, error) {
	if screen < 0 || screen >= len(c.setup.Roots) {
		return nil, fmt.Errorf("%w: %d", videomode.ErrBadScreen, screen)
	}
	return &c.setup.Roots[screen], nil
}

func (c *Conn) root(screen int) (xproto.Window, error) {
	s, err := c.screen(screen)
	if err != nil {
		return 0, err
	}
	return s.Root, nil
}

// ScreenSize asks the server for the root window geometry; the sizes in the
// connection setup go stale after a mode switch.
func (c *Conn) ScreenSize(screen int) (int, int, error) {
	root, err := c.root(screen)
	if err != nil {
		return 0, 0, err
	}
	geom, err := xproto.GetGeometry(c.x, xproto.Drawable(root)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("root geometry: %w", err)
	}
	return int(geom.Width), int(geom.Height), nil
}

func (c *Conn) DefaultDepth(screen int) int {
	s, err := c.screen(screen)
	if err != nil {
		return 0
	}
	return int(s.RootDepth)
}

// Visuals lists the visuals of screen. Without GLX no visual is OpenGL capable.
func (c *Conn) Visuals(screen int) ([]videomode.Visual, error) {
	s, err := c.screen(screen)
	if err != nil {
		return nil, err
	}

	var configs map[uint32]glxConfig
	if c.hasGLX {
		reply, err := glx.GetVisualConfigs(c.x, uint32(screen)).Reply()
		if err != nil {
			return nil, fmt.Errorf("glx visual configs: %w", err)
		}
		configs = parseVisualConfigs(reply.NumVisuals, reply.NumProperties, reply.PropertyList)
	}

	var visuals []videomode.Visual
	for _, d := range s.AllowedDepths {
		for _, v := range d.Visuals {
			cfg, gl := configs[uint32(v.VisualId)]
			visuals = append(visuals, videomode.Visual{
				ID:    uint32(v.VisualId),
				Depth: int(d.Depth),
				GL:    gl,
				RGBA:  gl && cfg.rgba && isTrueColor(v.Class),
			})
		}
	}
	return visuals, nil
}

func isTrueColor(class byte) bool {
	return class == xproto.VisualClassTrueColor || class == xproto.VisualClassDirectColor
}

// RandR returns the RandR backend.
func (c *Conn) RandR() videomode.RandR {
	return randrBackend{c}
}

// VidMode returns the XF86VidMode backend.
func (c *Conn) VidMode() videomode.VidMode {
	return vidmodeBackend{c}
}
