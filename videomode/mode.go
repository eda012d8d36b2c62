// Package videomode lists, matches and switches X11 screen modes for
// fullscreen rendering, and restores the desktop mode afterwards.
package videomode

import "fmt"

// VideoMode describes a display configuration.
type VideoMode struct {
	Width, Height                int
	RedBits, GreenBits, BlueBits int
}

// BitsPerPixel returns the sum of the colour channel widths.
func (m VideoMode) BitsPerPixel() int {
	return m.RedBits + m.GreenBits + m.BlueBits
}

func (m VideoMode) String() string {
	return fmt.Sprintf("%dx%d %d/%d/%d", m.Width, m.Height, m.RedBits, m.GreenBits, m.BlueBits)
}

// Resolution is a screen size in pixels.
type Resolution struct {
	Width, Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Match is the outcome of a closest mode search. Index refers to the
// provider's own mode list and is only meaningful to the same provider.
type Match struct {
	Index         int
	Width, Height int
	Rate          int
}

// BPPToRGB splits a pixel depth into red, green and blue channel widths.
// 32 bpp counts as 24, the alpha byte is ignored. A remainder of one bit
// goes to green, a remainder of two to green and red.
func BPPToRGB(bpp int) (r, g, b int) {
	if bpp == 32 {
		bpp = 24
	}

	r, g, b = bpp/3, bpp/3, bpp/3
	delta := bpp - r*3
	if delta >= 1 {
		g++
	}
	if delta == 2 {
		r++
	}
	return r, g, b
}

type rgb struct {
	r, g, b int
}

func formatOf(depth int) rgb {
	r, g, b := BPPToRGB(depth)
	return rgb{r, g, b}
}

// squaredDistance is the match metric for sizes.
func squaredDistance(w, h, width, height int) int {
	dw, dh := w-width, h-height
	return dw*dw + dh*dh
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
