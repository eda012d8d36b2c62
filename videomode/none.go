package videomode

// NoneProvider is used when the display has no mode extension. The screen
// stays at its desktop resolution.
type NoneProvider struct{}

func (NoneProvider) Name() string { return "none" }

func (NoneProvider) Resolutions(int) ([]Resolution, error) { return nil, nil }

func (NoneProvider) Closest(int, int, int, int) (Match, bool, error) {
	return Match{}, false, nil
}

func (NoneProvider) switchMode(int, int, int, *savedMode) error { return nil }

func (NoneProvider) restore(int, *savedMode) error { return nil }

func (NoneProvider) nativeSize(int) (Resolution, bool, error) {
	return Resolution{}, false, nil
}
