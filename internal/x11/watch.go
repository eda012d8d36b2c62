package x11

import (
	"context"
	"fmt"

	"github.com/BurntSushi/xgb/randr"

	"github.com/FyshOS/vidmode/internal/logger"
)

// WatchScreenChanges reports RandR screen changes on every screen. The
// channel is closed when ctx is done or the connection goes away; a
// pending WaitForEvent only returns once the next event or the close arrives.
func (c *Conn) WatchScreenChanges(ctx context.Context) (<-chan struct{}, error) {
	if !c.hasRandR {
		return nil, fmt.Errorf("randr: %w", ErrUnavailable)
	}

	for i := range c.setup.Roots {
		err := randr.SelectInputChecked(c.x, c.setup.Roots[i].Root, randr.NotifyMaskScreenChange).Check()
		if err != nil {
			return nil, fmt.Errorf("select screen change events: %w", err)
		}
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)

		for ctx.Err() == nil {
			ev, err := c.x.WaitForEvent()
			if ev == nil && err == nil {
				return
			}
			if err != nil {
				logger.Debug("Error waiting for X event", "err", err)
				continue
			}

			if _, ok := ev.(randr.ScreenChangeNotifyEvent); ok {
				select {
				case changes <- struct{}{}:
				default:
				}
			}
		}
	}()
	return changes, nil
}
