package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/a11ytutor/internal/session"
	"github.com/abhisek/a11ytutor/internal/ui/components"
	"github.com/abhisek/a11ytutor/internal/ui/theme"
)

const arcadeTitleFull = `  █████╗  ██╗ ██╗ ██╗   ██╗
 ██╔══██╗███║███║ ╚██╗ ██╔╝
 ███████║╚██║╚██║  ╚████╔╝
 ██╔══██║ ██║ ██║   ╚██╔╝
 ██║  ██║ ██║ ██║    ██║
 ╚═╝  ╚═╝ ╚═╝ ╚═╝    ╚═╝   tutor`

const arcadeTitleCompact = "A · 1 · 1 · Y   T U T O R"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	art := arcadeTitleFull
	if compact {
		art = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar shows mastered count, overall percent and the bar.
func renderStatsBar(sess *session.Session, cw int, compact bool) string {
	masteredStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	pctStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	mastered := masteredStyle.Render(fmt.Sprintf("✓ %d/%d", sess.MasteredCount(), sess.Registry().Len()))
	pct := pctStyle.Render(fmt.Sprintf("%d%%", sess.Percent()))

	var stats string
	if compact {
		stats = mastered + dimStyle.Render("  ") + pct
	} else {
		stats = mastered + dimStyle.Render(" MASTERED   ") + pct + dimStyle.Render(" COMPLETE") +
			"\n" + components.NewProgressBar("", sess.Fraction(), false, cw-6).View()
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderCurrent names the exercise CONTINUE will open.
func renderCurrent(sess *session.Session, cw int) string {
	ex := sess.Current()
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Up next: " + ex.Label())
}

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(m components.Menu, cw int) string {
	disabled := m.Disabled()
	var buttons []string
	for i, label := range m.Labels() {
		buttons = append(buttons, components.ArcadeButton(label, i == m.Selected, disabled[i], buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for small terminals
// where bordered buttons would overflow.
func renderMenuCompact(m components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(m.View())
}

func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
