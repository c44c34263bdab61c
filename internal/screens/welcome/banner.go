package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/a11ytutor/internal/ui/theme"
)

const bannerArt = `
  █████╗  ██╗ ██╗ ██╗   ██╗
 ██╔══██╗███║███║ ╚██╗ ██╔╝
 ███████║╚██║╚██║  ╚████╔╝
 ██╔══██║ ██║ ██║   ╚██╔╝
 ██║  ██║ ██║ ██║    ██║
 ╚═╝  ╚═╝ ╚═╝ ╚═╝    ╚═╝`

const bannerCompact = "A 1 1 Y"

// RenderBanner returns the banner in the primary color, falling back to a
// one-line form below 32 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 32 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
