package components

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet is one palette entry: the colours a control uses when it is
// painted with that palette.
type ColourSet struct {
	Background      lipgloss.AdaptiveColor
	BackgroundLight lipgloss.AdaptiveColor
	Text            lipgloss.AdaptiveColor
	TextInverted    lipgloss.AdaptiveColor
	Border          lipgloss.AdaptiveColor
	IsLowContrast   bool
}

// Palette maps palette names to colour sets.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Default   ColourSet
	Inverted  ColourSet
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteDefault   PaletteSlot = func(p Palette) ColourSet { return p.Default }
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// TypographyScale contains the text presets used by the thread components.
type TypographyScale struct {
	Body     lipgloss.Style
	Emphasis lipgloss.Style
	Strong   lipgloss.Style
	Muted    lipgloss.Style
}

// Theme is a read-only styling description. Themes are values: hosts swap
// the theme in the RenderContext and components recompute their styles.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
	Muted      lipgloss.AdaptiveColor
}

// FontWeight mirrors CSS weights. Terminals only distinguish bold from
// normal, so every weight from FontWeightMedium up renders bold.
type FontWeight int

const (
	FontWeightNormal   FontWeight = 0
	FontWeightMedium   FontWeight = 500
	FontWeightSemibold FontWeight = 600
)

// Apply renders the weight onto style.
func (w FontWeight) Apply(style lipgloss.Style) lipgloss.Style {
	if w >= FontWeightMedium {
		return style.Bold(true)
	}
	return style
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func defaultBorders() BorderSet {
	return BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
	}
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColourSet{
			Background:      ac("#0085ff", "#0085ff"),
			BackgroundLight: ac("#e0f0ff", "#0b2a47"),
			Text:            ac("#ffffff", "#ffffff"),
			TextInverted:    ac("#0085ff", "#4da9ff"),
			Border:          ac("#0062bd", "#4da9ff"),
		},
		Secondary: ColourSet{
			Background:      ac("#db00ff", "#db00ff"),
			BackgroundLight: ac("#fadbff", "#3d0047"),
			Text:            ac("#ffffff", "#ffffff"),
			TextInverted:    ac("#db00ff", "#ec66ff"),
			Border:          ac("#a800c4", "#ec66ff"),
		},
		Default: ColourSet{
			Background:      ac("#ffffff", "#ffffff"),
			BackgroundLight: ac("#f3f3f8", "#f3f3f8"),
			Text:            ac("#000000", "#000000"),
			TextInverted:    ac("#ffffff", "#ffffff"),
			Border:          ac("#e8e8e8", "#e8e8e8"),
		},
		Inverted: ColourSet{
			Background:      ac("#000000", "#000000"),
			BackgroundLight: ac("#3a3a3a", "#3a3a3a"),
			Text:            ac("#ffffff", "#ffffff"),
			TextInverted:    ac("#000000", "#000000"),
			Border:          ac("#3a3a3a", "#3a3a3a"),
		},
	}

	muted := ac("#545664", "#8a8d9f")
	return Theme{
		Name:       "light",
		Palette:    palette,
		Borders:    defaultBorders(),
		Typography: defaultTypography(palette, muted),
		Muted:      muted,
	}
}

// DarkTheme swaps the default and inverted palettes and marks the
// secondary palette as low contrast.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"

	theme.Palette.Default, theme.Palette.Inverted = theme.Palette.Inverted, theme.Palette.Default
	theme.Palette.Default.BackgroundLight = ac("#1c1c1f", "#1c1c1f")
	theme.Palette.Default.Border = ac("#2e2e33", "#2e2e33")
	theme.Palette.Secondary.Background = ac("#3d0047", "#3d0047")
	theme.Palette.Secondary.IsLowContrast = true

	theme.Muted = ac("#8a8d9f", "#8a8d9f")
	theme.Typography = defaultTypography(theme.Palette, theme.Muted)
	return theme
}

// LightTheme returns the light theme.
func LightTheme() Theme {
	return DefaultTheme()
}

var themesByName = map[string]func() Theme{
	"light": LightTheme,
	"dark":  DarkTheme,
}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, bool) {
	build, ok := themesByName[name]
	if !ok {
		return Theme{}, false
	}
	return build(), true
}

// ThemeNames lists the built-in theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themesByName))
	for name := range themesByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func defaultTypography(p Palette, muted lipgloss.AdaptiveColor) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Default.Text)

	return TypographyScale{
		Body:     body,
		Emphasis: body.Bold(true),
		Strong:   body.Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(muted),
	}
}

// Background applies a palette background and its matching text colour.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Background).Foreground(cs.Text)
	}
}

// Foreground applies a palette text colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Text)
	}
}

// MutedText renders in the theme's muted colour.
func MutedText() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(theme.Typography.Muted)
	}
}

// StrongText renders bold in the body colour.
func StrongText() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(theme.Typography.Strong)
	}
}
