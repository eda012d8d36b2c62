package videomode

import "errors"

var (
	// ErrVisualEnumeration is returned when the screen's visuals cannot be listed.
	ErrVisualEnumeration = errors.New("visual enumeration failed")
	// ErrNoSuchMode is returned for a mode index outside the extension's list.
	ErrNoSuchMode = errors.New("no such mode")
	// ErrSwitchRejected is returned when the server refuses a configuration.
	ErrSwitchRejected = errors.New("mode switch rejected")
	// ErrBadScreen is returned for a screen number the display does not have.
	ErrBadScreen = errors.New("no such screen")
)
