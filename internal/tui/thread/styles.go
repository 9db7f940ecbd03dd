package thread

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/threadkit/internal/ui/components"
)

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	footer      lipgloss.Style
	status      lipgloss.Style
	errorBanner lipgloss.Style
	scrollHint  lipgloss.Style
	empty       lipgloss.Style
}

// newStyles derives the browser chrome from theme.
func newStyles(theme components.Theme) styles {
	p := theme.Palette
	return styles{
		title: components.Background(components.PalettePrimary)(lipgloss.NewStyle(), theme).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1),

		header: components.Foreground(components.PaletteDefault)(lipgloss.NewStyle(), theme).
			BorderStyle(theme.Borders.Normal).
			BorderBottom(true).
			BorderForeground(p.Default.Border).
			MarginBottom(1),

		footer: lipgloss.NewStyle().
			BorderStyle(theme.Borders.Normal).
			BorderTop(true).
			BorderForeground(p.Default.Border).
			MarginTop(1),

		status: lipgloss.NewStyle().
			Foreground(theme.Muted).
			PaddingLeft(1),

		errorBanner: components.Background(components.PaletteSecondary)(lipgloss.NewStyle(), theme).
			Bold(true).
			Padding(0, 1),

		scrollHint: lipgloss.NewStyle().
			Foreground(theme.Muted),

		empty: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true).
			Padding(1, 2),
	}
}
