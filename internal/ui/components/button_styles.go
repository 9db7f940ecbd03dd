package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ButtonType selects a button's colour treatment.
type ButtonType int

const (
	ButtonPrimary ButtonType = iota
	ButtonSecondary
	ButtonDefault
	ButtonInverted
	ButtonPrimaryOutline
	ButtonSecondaryOutline
	ButtonPrimaryLight
	ButtonSecondaryLight
	ButtonDefaultLight

	buttonTypeCount = int(iota)
)

var buttonTypeNames = [...]string{
	ButtonPrimary:          "primary",
	ButtonSecondary:        "secondary",
	ButtonDefault:          "default",
	ButtonInverted:         "inverted",
	ButtonPrimaryOutline:   "primary-outline",
	ButtonSecondaryOutline: "secondary-outline",
	ButtonPrimaryLight:     "primary-light",
	ButtonSecondaryLight:   "secondary-light",
	ButtonDefaultLight:     "default-light",
}

// ButtonTypes lists every button type in declaration order.
func ButtonTypes() []ButtonType {
	types := make([]ButtonType, buttonTypeCount)
	for i := range types {
		types[i] = ButtonType(i)
	}
	return types
}

func (t ButtonType) String() string {
	if t < 0 || int(t) >= buttonTypeCount {
		return fmt.Sprintf("ButtonType(%d)", int(t))
	}
	return buttonTypeNames[t]
}

// ParseButtonType maps a tag such as "primary-outline" to its ButtonType.
func ParseButtonType(name string) (ButtonType, error) {
	for i, candidate := range buttonTypeNames {
		if candidate == name {
			return ButtonType(i), nil
		}
	}
	return ButtonPrimary, fmt.Errorf("unknown button type %q", name)
}

// ButtonOuterStyle is the container treatment for a button type.
type ButtonOuterStyle struct {
	Background  lipgloss.AdaptiveColor
	Bordered    bool
	BorderColor lipgloss.AdaptiveColor
}

// Apply paints the container treatment onto base.
func (s ButtonOuterStyle) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	style := base.Background(s.Background)
	if s.Bordered {
		style = style.Border(theme.Borders.Rounded).
			BorderForeground(s.BorderColor).
			BorderBackground(s.Background)
	}
	return style
}

// ButtonLabelStyle is the label treatment for a button type.
type ButtonLabelStyle struct {
	Color  lipgloss.AdaptiveColor
	Weight FontWeight
}

// Apply paints the label treatment onto base.
func (s ButtonLabelStyle) Apply(base lipgloss.Style) lipgloss.Style {
	return s.Weight.Apply(base.Foreground(s.Color))
}

func lowContrastWeight(cs ColourSet) FontWeight {
	if cs.IsLowContrast {
		return FontWeightMedium
	}
	return FontWeightNormal
}

// The tables below are indexed by ButtonType. The length assertions make a
// new ButtonType without a trailing row fail to compile; rows left out in
// the middle are nil and caught by the lookup functions.
var outerStyles = [...]func(Palette) ButtonOuterStyle{
	ButtonPrimary: func(p Palette) ButtonOuterStyle {
		return ButtonOuterStyle{Background: p.Primary.Background}
	},
	ButtonSecondary: func(p Palette) ButtonOuterStyle {
		return ButtonOuterStyle{Background: p.Secondary.Background}
	},
	ButtonDefault: func(p Palette) ButtonOuterStyle {
		return ButtonOuterStyle{Background: p.Default.BackgroundLight}
	},
	ButtonInverted: func(p Palette) ButtonOuterStyle {
		return ButtonOuterStyle{Background: p.Inverted.Background}
	},
	ButtonPrimaryOutline: func(p Palette) ButtonOuterStyle {
		return ButtonOuterStyle{Background: p.Default.Background, Bordered: true, BorderColor: p.Primary.Border}
	},
	ButtonSecondaryOutline: func(p Palette) ButtonOuterStyle {
		return ButtonOuterStyle{Background: p.Default.Background, Bordered: true, BorderColor: p.Secondary.Border}
	},
	ButtonPrimaryLight: func(p Palette) ButtonOuterStyle {
		return ButtonOuterStyle{Background: p.Default.Background}
	},
	ButtonSecondaryLight: func(p Palette) ButtonOuterStyle {
		return ButtonOuterStyle{Background: p.Default.Background}
	},
	ButtonDefaultLight: func(p Palette) ButtonOuterStyle {
		return ButtonOuterStyle{Background: p.Default.Background}
	},
}

var labelStyles = [...]func(Palette) ButtonLabelStyle{
	ButtonPrimary: func(p Palette) ButtonLabelStyle {
		return ButtonLabelStyle{Color: p.Primary.Text, Weight: FontWeightSemibold}
	},
	ButtonSecondary: func(p Palette) ButtonLabelStyle {
		return ButtonLabelStyle{Color: p.Secondary.Text, Weight: lowContrastWeight(p.Secondary)}
	},
	ButtonDefault: func(p Palette) ButtonLabelStyle {
		return ButtonLabelStyle{Color: p.Default.Text}
	},
	ButtonInverted: func(p Palette) ButtonLabelStyle {
		return ButtonLabelStyle{Color: p.Inverted.Text, Weight: FontWeightSemibold}
	},
	ButtonPrimaryOutline: func(p Palette) ButtonLabelStyle {
		return ButtonLabelStyle{Color: p.Primary.TextInverted, Weight: lowContrastWeight(p.Primary)}
	},
	ButtonSecondaryOutline: func(p Palette) ButtonLabelStyle {
		return ButtonLabelStyle{Color: p.Secondary.TextInverted, Weight: lowContrastWeight(p.Secondary)}
	},
	ButtonPrimaryLight: func(p Palette) ButtonLabelStyle {
		return ButtonLabelStyle{Color: p.Primary.TextInverted, Weight: lowContrastWeight(p.Primary)}
	},
	ButtonSecondaryLight: func(p Palette) ButtonLabelStyle {
		return ButtonLabelStyle{Color: p.Secondary.TextInverted, Weight: lowContrastWeight(p.Secondary)}
	},
	ButtonDefaultLight: func(p Palette) ButtonLabelStyle {
		return ButtonLabelStyle{Color: p.Default.Text, Weight: lowContrastWeight(p.Default)}
	},
}

var (
	_ [len(outerStyles) - buttonTypeCount]struct{}
	_ [buttonTypeCount - len(outerStyles)]struct{}
	_ [len(labelStyles) - buttonTypeCount]struct{}
	_ [buttonTypeCount - len(labelStyles)]struct{}
)

// OuterStyle resolves the container treatment for t from theme. It panics
// on a ButtonType outside the declared set.
func OuterStyle(t ButtonType, theme Theme) ButtonOuterStyle {
	if t < 0 || int(t) >= buttonTypeCount || outerStyles[t] == nil {
		panic(fmt.Sprintf("components: no outer style for %s", t))
	}
	return outerStyles[t](theme.Palette)
}

// LabelStyle resolves the label treatment for t from theme. It panics on a
// ButtonType outside the declared set.
func LabelStyle(t ButtonType, theme Theme) ButtonLabelStyle {
	if t < 0 || int(t) >= buttonTypeCount || labelStyles[t] == nil {
		panic(fmt.Sprintf("components: no label style for %s", t))
	}
	return labelStyles[t](theme.Palette)
}
