package tui

import "github.com/gdamore/tcell/v2"

var (
	styleDefault = tcell.StyleDefault
	styleBold    = tcell.StyleDefault.Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDeath   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleInput   = tcell.StyleDefault.Reverse(true)
)

// drawText writes text at (x, y), one cell per rune, clipped to the screen.
// It returns the column after the last rune.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	w, h := s.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range text {
		if x >= w {
			break
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}
