package x11

import (
	"github.com/BurntSushi/xgb/xf86vidmode"

	"github.com/FyshOS/vidmode/videomode"
)

type vidmodeBackend struct {
	c *Conn
}

func (v vidmodeBackend) ModeLines(screen int) ([]videomode.ModeLine, error) {
	if _, err := v.c.screen(screen); err != nil {
		return nil, err
	}
	reply, err := xf86vidmode.GetAllModeLines(v.c.x, uint16(screen)).Reply()
	if err != nil {
		return nil, err
	}

	lines := make([]videomode.ModeLine, len(reply.Modeinfo))
	for i, m := range reply.Modeinfo {
		lines[i] = videomode.ModeLine{
			Dotclock:   uint32(m.Dotclock),
			HDisplay:   m.Hdisplay,
			HSyncStart: m.Hsyncstart,
			HSyncEnd:   m.Hsyncend,
			HTotal:     m.Htotal,
			HSkew:      uint16(m.Hskew),
			VDisplay:   m.Vdisplay,
			VSyncStart: m.Vsyncstart,
			VSyncEnd:   m.Vsyncend,
			VTotal:     m.Vtotal,
			Flags:      m.Flags,
		}
	}
	return lines, nil
}

func (v vidmodeBackend) SwitchToMode(screen int, m videomode.ModeLine) error {
	return xf86vidmode.SwitchToModeChecked(v.c.x, uint32(screen), xf86vidmode.Dotclock(m.Dotclock),
		m.HDisplay, m.HSyncStart, m.HSyncEnd, m.HTotal, m.HSkew,
		m.VDisplay, m.VSyncStart, m.VSyncEnd, m.VTotal,
		m.Flags, 0, nil).Check()
}

func (v vidmodeBackend) SetViewPort(screen, x, y int) error {
	return xf86vidmode.SetViewPortChecked(v.c.x, uint16(screen), uint32(x), uint32(y)).Check()
}

func (v vidmodeBackend) LockModeSwitch(screen int, lock bool) error {
	var l uint16
	if lock {
		l = 1
	}
	return xf86vidmode.LockModeSwitchChecked(v.c.x, uint16(screen), l).Check()
}
