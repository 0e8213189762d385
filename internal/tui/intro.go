package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/moorebrett0/tamago/internal/config"
	"github.com/moorebrett0/tamago/internal/species"
)

const maxNameLen = 32

type introResult int

const (
	introPending introResult = iota
	introDone
	introQuit
)

// intro is the pre-game screen: name entry plus species and gender choice.
type intro struct {
	name       []rune
	speciesIdx int
	genderIdx  int
	hint       string
}

func newIntro(cfg config.PetConfig) *intro {
	in := &intro{name: []rune(cfg.Name)}
	for i, id := range species.OrderedIDs {
		if id == cfg.Species {
			in.speciesIdx = i
		}
	}
	for i, g := range species.Genders {
		if g == cfg.Gender {
			in.genderIdx = i
		}
	}
	return in
}

func (in *intro) speciesID() string { return species.OrderedIDs[in.speciesIdx] }
func (in *intro) gender() string { return species.Genders[in.genderIdx] }
func (in *intro) petName() string { return strings.TrimSpace(string(in.name)) }

func (in *intro) handleKey(ev *tcell.EventKey) introResult {
	in.hint = ""
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return introQuit
	case tcell.KeyEnter:
		if in.petName() == "" {
			in.hint = fmt.Sprintf("pick a name (1-%d characters)", maxNameLen)
			return introPending
		}
		return introDone
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(in.name) > 0 {
			in.name = in.name[:len(in.name)-1]
		}
	case tcell.KeyLeft:
		in.speciesIdx = (in.speciesIdx + len(species.OrderedIDs) - 1) % len(species.OrderedIDs)
	case tcell.KeyRight, tcell.KeyTab:
		in.speciesIdx = (in.speciesIdx + 1) % len(species.OrderedIDs)
	case tcell.KeyUp:
		in.genderIdx = (in.genderIdx + len(species.Genders) - 1) % len(species.Genders)
	case tcell.KeyDown:
		in.genderIdx = (in.genderIdx + 1) % len(species.Genders)
	case tcell.KeyRune:
		if len(in.name) < maxNameLen {
			in.name = append(in.name, ev.Rune())
		}
	}
	return introPending
}

func (in *intro) draw(s tcell.Screen) {
	s.Clear()

	drawText(s, 2, 1, styleBold, "Enter pet name:")
	x := drawText(s, 2, 2, styleInput, string(in.name))
	drawText(s, x, 2, styleInput, strings.Repeat(" ", maxNameLen-len(in.name)+1))

	drawText(s, 2, 4, styleBold, "Select pet type:  (left/right)")
	x = 2
	for i, id := range species.OrderedIDs {
		sp := species.Registry[id]
		style := styleDefault
		label := "  " + sp.Name + "  "
		if i == in.speciesIdx {
			style = styleInput
			label = "[ " + sp.Name + " ]"
		}
		x = drawText(s, x, 5, style, label) + 1
	}
	drawText(s, 2, 6, styleDim, species.Registry[in.speciesID()].Description)

	drawText(s, 2, 8, styleBold, "Select gender:  (up/down)")
	x = 2
	for i, g := range species.Genders {
		style := styleDefault
		label := "  " + g + "  "
		if i == in.genderIdx {
			style = styleInput
			label = "[ " + g + " ]"
		}
		x = drawText(s, x, 9, style, label) + 1
	}

	drawText(s, 2, 11, styleBold, "Press Enter to start, Esc to quit")
	if in.hint != "" {
		drawText(s, 2, 13, styleDeath, in.hint)
	}
	s.Show()
}
