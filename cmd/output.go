package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/FyshOS/vidmode/videomode"
)

// ModeInfo is the JSON form of a video mode
type ModeInfo struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	RedBits   int `json:"red_bits"`
	GreenBits int `json:"green_bits"`
	BlueBits  int `json:"blue_bits"`
}

// MatchInfo is the JSON form of a closest mode search
type MatchInfo struct {
	Index     int    `json:"index"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Rate      int    `json:"rate,omitempty"`
	Extension string `json:"extension"`
}

func modeInfo(m videomode.VideoMode) ModeInfo {
	return ModeInfo{
		Width:     m.Width,
		Height:    m.Height,
		RedBits:   m.RedBits,
		GreenBits: m.GreenBits,
		BlueBits:  m.BlueBits,
	}
}

func printModes(w io.Writer, modes []videomode.VideoMode, asJSON bool) error {
	if asJSON {
		infos := make([]ModeInfo, len(modes))
		for i, m := range modes {
			infos[i] = modeInfo(m)
		}
		return json.NewEncoder(w).Encode(infos)
	}

	if len(modes) == 0 {
		fmt.Fprintln(w, "No video modes available")
		return nil
	}
	for _, m := range modes {
		fmt.Fprintf(w, "%5d x %-5d  %2d bpp  (R%d G%d B%d)\n",
			m.Width, m.Height, m.BitsPerPixel(), m.RedBits, m.GreenBits, m.BlueBits)
	}
	return nil
}

func printMatch(w io.Writer, m videomode.Match, ext string, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(MatchInfo{
			Index:     m.Index,
			Width:     m.Width,
			Height:    m.Height,
			Rate:      m.Rate,
			Extension: ext,
		})
	}

	fmt.Fprintf(w, "Mode %d: %dx%d", m.Index, m.Width, m.Height)
	if m.Rate > 0 {
		fmt.Fprintf(w, " @ %d Hz", m.Rate)
	}
	fmt.Fprintf(w, " (%s)\n", ext)
	return nil
}

func printDesktop(w io.Writer, m videomode.VideoMode, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(modeInfo(m))
	}
	fmt.Fprintf(w, "Desktop mode: %dx%d, %d bpp (R%d G%d B%d)\n",
		m.Width, m.Height, m.BitsPerPixel(), m.RedBits, m.GreenBits, m.BlueBits)
	return nil
}
