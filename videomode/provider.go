package videomode

// Display is the part of a display server connection the adapter needs
// regardless of which mode extension is present.
type Display interface {
	DefaultScreen() int
	ScreenCount() int
	// ScreenSize reports the current size of the screen's root window.
	ScreenSize(screen int) (width, height int, err error)
	DefaultDepth(screen int) int
	Visuals(screen int) ([]Visual, error)
}

// Visual is a renderable pixel format of a screen.
type Visual struct {
	ID    uint32
	Depth int
	GL    bool
	RGBA  bool
}

// RotateNormal is the unrotated RandR orientation.
const RotateNormal uint16 = 1

// ScreenInfo is the RandR 1.0 configuration of a screen.
type ScreenInfo struct {
	Sizes []Resolution
	// Rates holds the refresh rates of each entry in Sizes.
	Rates           [][]int
	SizeID          int
	Rotation        uint16
	Rate            int
	ConfigTimestamp uint32
}

// RandR is the screen configuration subset of the RandR extension.
type RandR interface {
	ScreenInfo(screen int) (*ScreenInfo, error)
	// SetScreenConfig switches to sizeID. A zero rate lets the server pick.
	SetScreenConfig(screen int, info *ScreenInfo, sizeID int, rotation uint16, rate int) error
}

// ModeLine is an XF86VidMode timing description.
type ModeLine struct {
	Dotclock   uint32 // kHz
	HDisplay   uint16
	HSyncStart uint16
	HSyncEnd   uint16
	HTotal     uint16
	HSkew      uint16
	VDisplay   uint16
	VSyncStart uint16
	VSyncEnd   uint16
	VTotal     uint16
	Flags      uint32
}

const (
	modeFlagInterlace = 0x010
	modeFlagDblScan   = 0x020
)

// RefreshRate derives the vertical refresh in Hz from the timings.
func (m ModeLine) RefreshRate() int {
	if m.HTotal == 0 || m.VTotal == 0 {
		return 0
	}
	rate := float64(m.Dotclock) * 1000 / (float64(m.HTotal) * float64(m.VTotal))
	if m.Flags&modeFlagInterlace != 0 {
		rate *= 2
	}
	if m.Flags&modeFlagDblScan != 0 {
		rate /= 2
	}
	return int(rate + 0.5)
}

// VidMode is the subset of the XF86VidMode extension used for switching.
type VidMode interface {
	ModeLines(screen int) ([]ModeLine, error)
	SwitchToMode(screen int, mode ModeLine) error
	SetViewPort(screen, x, y int) error
	LockModeSwitch(screen int, lock bool) error
}

// Provider is the mode extension in use on a display. The set of
// implementations is closed: RandRProvider, VidModeProvider and NoneProvider.
type Provider interface {
	Name() string
	// Resolutions lists the sizes the extension can switch to, in the
	// extension's order.
	Resolutions(screen int) ([]Resolution, error)
	// Closest finds the mode nearest to the requested size. ok is false
	// when the extension has nothing to offer.
	Closest(screen, width, height, rate int) (m Match, ok bool, err error)

	switchMode(screen, index, rate int, saved *savedMode) error
	restore(screen int, saved *savedMode) error
	// nativeSize is the size the extension considers the boot mode, if any.
	nativeSize(screen int) (Resolution, bool, error)
}

// savedMode is what a provider needs to undo a switch.
type savedMode struct {
	changed  bool
	size     Resolution
	sizeID   int
	rotation uint16
	modeLine ModeLine
}
