// Package gui is a small fyne window to try out video modes.
package gui

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/FyshOS/vidmode/internal/logger"
	"github.com/FyshOS/vidmode/internal/x11"
	"github.com/FyshOS/vidmode/videomode"
)

type gui struct {
	conn    *x11.Conn
	session *videomode.Session
	screen  int
	limit   int

	state state

	desktop    *widget.Label
	current    *widget.Label
	resolution *widget.Select
	rate       *widget.Entry
	apply      *widget.Button
	restore    *widget.Button
	modes      *widget.List
	preview    *canvas.Rectangle
	monitor    *fyne.Container
	aspect     *fixedAspect
}

// Run shows the mode picker for screen and blocks until it is closed. Any
// switched mode is restored on exit.
//
// The screen-change watcher is blocked in WaitForEvent and only exits on
// the next X event or when conn is closed, so close conn once Run returns.
func Run(conn *x11.Conn, session *videomode.Session, screen, limit int) {
	a := app.New()
	g := &gui{conn: conn, session: session, screen: screen, limit: limit}
	w := g.makeWindow(a)

	g.loadModes(w)
	ctx, cancel := context.WithCancel(context.Background())
	g.setupActions(ctx, w)

	w.SetOnClosed(func() {
		cancel()
		if err := session.RestoreAll(); err != nil {
			fyne.LogError("Failed to restore video mode", err)
		}
	})
	w.ShowAndRun()
}

func (g *gui) makeWindow(a fyne.App) fyne.Window {
	w := a.NewWindow(fmt.Sprintf("Video modes - screen %d (%s)", g.screen, g.session.Provider().Name()))

	g.desktop = widget.NewLabel("")
	g.current = widget.NewLabel("")
	g.resolution = widget.NewSelect(nil, nil)
	g.rate = widget.NewEntry()
	g.rate.SetPlaceHolder("default")
	g.apply = widget.NewButtonWithIcon("Apply", theme.ConfirmIcon(), func() { g.applyMode(w) })
	g.apply.Importance = widget.HighImportance
	g.restore = widget.NewButtonWithIcon("Restore", theme.HistoryIcon(), func() { g.restoreMode(w) })

	g.modes = widget.NewList(
		func() int { return len(g.state.modes) },
		func() fyne.CanvasObject { return widget.NewLabel("0000x0000 00/00/00") },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(g.state.modes[id].String())
		})
	g.modes.OnSelected = func(id widget.ListItemID) {
		m := g.state.modes[id]
		g.resolution.SetSelected(resolutionLabel(m.Width, m.Height))
	}

	g.preview = canvas.NewRectangle(theme.Color(theme.ColorNamePrimary))
	g.preview.StrokeColor = color.Gray{Y: 0x80}
	g.preview.StrokeWidth = 2
	g.aspect = &fixedAspect{ratio: 16.0 / 9}
	g.monitor = container.New(g.aspect, g.preview)

	form := widget.NewForm(
		widget.NewFormItem("Desktop", g.desktop),
		widget.NewFormItem("Current", g.current),
		widget.NewFormItem("Resolution", g.resolution),
		widget.NewFormItem("Refresh (Hz)", g.rate),
	)
	buttons := container.NewHBox(layout.NewSpacer(), g.restore, g.apply)
	top := container.NewVBox(g.monitor, form, buttons)

	w.SetContent(container.NewBorder(top, nil, nil, nil, g.modes))
	w.Resize(fyne.NewSize(420, 560))
	return w
}

// setupActions refreshes the window whenever the screen configuration changes.
func (g *gui) setupActions(ctx context.Context, w fyne.Window) {
	changes, err := g.conn.WatchScreenChanges(ctx)
	if err != nil {
		logger.Debug("Not watching screen changes", "err", err)
		return
	}

	go func() {
		for range changes {
			fyne.Do(func() {
				g.loadModes(w)
			})
		}
	}()
}

func (g *gui) loadModes(w fyne.Window) {
	st, err := loadState(g.session, g.screen, g.limit)
	if err != nil {
		dialog.ShowError(err, w)
		return
	}
	g.state = st

	g.desktop.SetText(st.desktop.String())
	g.current.SetText(resolutionLabel(st.current.Width, st.current.Height))
	g.resolution.SetOptions(st.options)
	if g.resolution.Selected == "" {
		g.resolution.SetSelected(resolutionLabel(st.current.Width, st.current.Height))
	}
	if st.changed {
		g.restore.Enable()
	} else {
		g.restore.Disable()
	}
	g.aspect.ratio = st.aspect()
	g.monitor.Refresh()
	g.modes.Refresh()
}

func (g *gui) applyMode(w fyne.Window) {
	size, ok := g.state.sizes[g.resolution.Selected]
	if !ok {
		return
	}
	rate, err := parseRate(g.rate.Text)
	if err != nil {
		dialog.ShowError(err, w)
		return
	}

	m, err := g.session.SetMode(g.screen, size.Width, size.Height, rate)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to set resolution: %w", err), w)
		return
	}
	logger.Info("Switched mode", "screen", g.screen, "size", resolutionLabel(m.Width, m.Height), "rate", m.Rate)
	g.loadModes(w)
}

func (g *gui) restoreMode(w fyne.Window) {
	if err := g.session.RestoreMode(g.screen); err != nil {
		dialog.ShowError(fmt.Errorf("failed to restore resolution: %w", err), w)
		return
	}
	g.loadModes(w)
}

func parseRate(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	rate, err := strconv.Atoi(text)
	if err != nil || rate < 0 {
		return 0, fmt.Errorf("invalid refresh rate %q", text)
	}
	return rate, nil
}

// fixedAspect sizes its objects to the largest ratio-shaped box that fits.
type fixedAspect struct {
	ratio float32
}

func (f *fixedAspect) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	w, h := size.Width, size.Width/f.ratio
	if h > size.Height {
		w, h = size.Height*f.ratio, size.Height
	}
	pos := fyne.NewPos((size.Width-w)/2, (size.Height-h)/2)
	for _, o := range objects {
		o.Move(pos)
		o.Resize(fyne.NewSize(w, h))
	}
}

func (f *fixedAspect) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(150, 100)
}
