package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/a11ytutor/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // nothing mastered yet
	MascotHappy                            // some progress
	MascotCelebrating                      // whole curriculum mastered
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ─  │
│ </> │
└─────┘`

const mascotHappy = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ </> │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ </> │
└─╥═╥─┘
  ╚═╝`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotHappy:
		art = mascotHappy
		fg = theme.Secondary
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
