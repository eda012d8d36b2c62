package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/FyshOS/vidmode/videomode"
)

type randrBackend struct {
	c *Conn
}

func (r randrBackend) ScreenInfo(screen int) (*videomode.ScreenInfo, error) {
	root, err := r.c.root(screen)
	if err != nil {
		return nil, err
	}
	reply, err := randr.GetScreenInfo(r.c.x, root).Reply()
	if err != nil {
		return nil, err
	}

	info := &videomode.ScreenInfo{
		SizeID:          int(reply.SizeID),
		Rotation:        reply.Rotation,
		Rate:            int(reply.Rate),
		ConfigTimestamp: uint32(reply.ConfigTimestamp),
	}
	for _, s := range reply.Sizes {
		info.Sizes = append(info.Sizes, videomode.Resolution{Width: int(s.Width), Height: int(s.Height)})
	}
	// Only the first len(Sizes) rate groups belong to a size.
	for i, group := range reply.Rates {
		if i >= len(info.Sizes) {
			break
		}
		rates := make([]int, len(group.Rates))
		for j, rate := range group.Rates {
			rates[j] = int(rate)
		}
		info.Rates = append(info.Rates, rates)
	}
	return info, nil
}

func (r randrBackend) SetScreenConfig(screen int, info *videomode.ScreenInfo, sizeID int, rotation uint16, rate int) error {
	root, err := r.c.root(screen)
	if err != nil {
		return err
	}
	reply, err := randr.SetScreenConfig(r.c.x, root, xproto.TimeCurrentTime,
		xproto.Timestamp(info.ConfigTimestamp), uint16(sizeID), rotation, uint16(rate)).Reply()
	if err != nil {
		return err
	}
	if reply.Status != randr.SetConfigSuccess {
		return fmt.Errorf("%w: %s", videomode.ErrSwitchRejected, setConfigStatus(reply.Status))
	}
	return nil
}

func setConfigStatus(status byte) string {
	switch status {
	case randr.SetConfigSuccess:
		return "success"
	case randr.SetConfigInvalidConfigTime:
		return "invalid config time"
	case randr.SetConfigInvalidTime:
		return "invalid time"
	case randr.SetConfigFailed:
		return "failed"
	default:
		return fmt.Sprintf("status %d", status)
	}
}
