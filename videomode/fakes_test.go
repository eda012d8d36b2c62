package videomode

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

var quiet = WithLogger(log.New(io.Discard))

type fakeDisplay struct {
	sizes      []Resolution
	depth      int
	visuals    []Visual
	visualsErr error
}

func newFakeDisplay(sizes ...Resolution) *fakeDisplay {
	return &fakeDisplay{
		sizes: sizes,
		depth: 24,
		visuals: []Visual{
			{ID: 0x21, Depth: 24, GL: true, RGBA: true},
			{ID: 0x22, Depth: 24, GL: true, RGBA: true},
			{ID: 0x23, Depth: 32, GL: true, RGBA: true},
			{ID: 0x24, Depth: 16, GL: true, RGBA: true},
			{ID: 0x25, Depth: 8, GL: true, RGBA: false},
			{ID: 0x26, Depth: 30, GL: false, RGBA: true},
		},
	}
}

func (d *fakeDisplay) DefaultScreen() int { return 0 }

func (d *fakeDisplay) ScreenCount() int { return len(d.sizes) }

func (d *fakeDisplay) ScreenSize(screen int) (int, int, error) {
	return d.sizes[screen].Width, d.sizes[screen].Height, nil
}

func (d *fakeDisplay) DefaultDepth(int) int { return d.depth }

func (d *fakeDisplay) Visuals(int) ([]Visual, error) {
	if d.visualsErr != nil {
		return nil, d.visualsErr
	}
	return d.visuals, nil
}

// fakeRandR keeps one ScreenInfo per screen and resizes the display on
// every accepted configuration.
type fakeRandR struct {
	display *fakeDisplay
	infos   []*ScreenInfo
	err     error
	reject  bool
	sets    int
}

func (r *fakeRandR) ScreenInfo(screen int) (*ScreenInfo, error) {
	if r.err != nil {
		return nil, r.err
	}
	info := *r.infos[screen]
	return &info, nil
}

func (r *fakeRandR) SetScreenConfig(screen int, _ *ScreenInfo, sizeID int, rotation uint16, rate int) error {
	if r.reject {
		return ErrSwitchRejected
	}
	r.sets++
	info := r.infos[screen]
	info.SizeID, info.Rotation, info.Rate = sizeID, rotation, rate
	r.display.sizes[screen] = info.Sizes[sizeID]
	return nil
}

// fakeVidMode reports the current mode line first, like the X server.
type fakeVidMode struct {
	display *fakeDisplay
	lines   []ModeLine
	current int
	locked  bool
	viewX   int
	viewY   int
	err     error
	calls   []string
}

func (v *fakeVidMode) ModeLines(int) ([]ModeLine, error) {
	if v.err != nil {
		return nil, v.err
	}
	lines := []ModeLine{v.lines[v.current]}
	for i, l := range v.lines {
		if i != v.current {
			lines = append(lines, l)
		}
	}
	return lines, nil
}

func (v *fakeVidMode) SwitchToMode(screen int, mode ModeLine) error {
	v.calls = append(v.calls, "switch")
	if v.locked {
		return errors.New("mode switch locked")
	}
	for i, l := range v.lines {
		if l == mode {
			v.current = i
			v.display.sizes[screen] = Resolution{int(l.HDisplay), int(l.VDisplay)}
			return nil
		}
	}
	return errors.New("unknown mode line")
}

func (v *fakeVidMode) SetViewPort(_, x, y int) error {
	v.calls = append(v.calls, "viewport")
	v.viewX, v.viewY = x, y
	return nil
}

func (v *fakeVidMode) LockModeSwitch(_ int, lock bool) error {
	if lock {
		v.calls = append(v.calls, "lock")
	} else {
		v.calls = append(v.calls, "unlock")
	}
	v.locked = lock
	return nil
}

func modeLine(w, h uint16, hz int) ModeLine {
	htotal, vtotal := w+160, h+45
	return ModeLine{
		Dotclock: uint32(int(htotal) * int(vtotal) * hz / 1000),
		HDisplay: w, HSyncStart: w + 48, HSyncEnd: w + 80, HTotal: htotal,
		VDisplay: h, VSyncStart: h + 3, VSyncEnd: h + 8, VTotal: vtotal,
	}
}

func randrSetup() (*fakeDisplay, *fakeRandR) {
	d := newFakeDisplay(Resolution{1920, 1080})
	r := &fakeRandR{
		display: d,
		infos: []*ScreenInfo{{
			Sizes: []Resolution{
				{1920, 1080}, {1280, 1024}, {1280, 720}, {1024, 768}, {800, 600}, {1280, 720},
			},
			Rates: [][]int{
				{60, 50}, {75, 60}, {60, 50, 30}, {85, 75, 70, 60}, {72, 60, 56}, {60},
			},
			SizeID:   0,
			Rotation: RotateNormal,
			Rate:     60,
		}},
	}
	return d, r
}

func vidmodeSetup() (*fakeDisplay, *fakeVidMode) {
	d := newFakeDisplay(Resolution{1600, 1200})
	v := &fakeVidMode{
		display: d,
		lines: []ModeLine{
			modeLine(1600, 1200, 60),
			modeLine(1280, 1024, 75),
			modeLine(1280, 1024, 60),
			modeLine(1024, 768, 85),
			modeLine(640, 480, 60),
		},
	}
	return d, v
}
