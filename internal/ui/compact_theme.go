package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/report-summarizer/internal/model"
)

// Severity palette shared by the theme and the notification stack
var (
	colorDanger  = color.NRGBA{R: 220, G: 53, B: 69, A: 255}
	colorWarning = color.NRGBA{R: 255, G: 193, B: 7, A: 255}
	colorSuccess = color.NRGBA{R: 25, G: 135, B: 84, A: 255}
	colorInfo    = color.NRGBA{R: 13, G: 202, B: 240, A: 255}
	colorPrimary = color.NRGBA{R: 13, G: 110, B: 253, A: 255}
)

// SeverityColor returns the background color of a notification
func SeverityColor(severity model.Severity) color.NRGBA {
	switch severity {
	case model.SeverityWarning:
		return colorWarning
	case model.SeveritySuccess:
		return colorSuccess
	case model.SeverityInfo:
		return colorInfo
	default:
		return colorDanger
	}
}

// CompactTheme is the default theme with tighter spacing and the summarizer palette
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return colorSuccess
	case theme.ColorNameError:
		return colorDanger
	case theme.ColorNameWarning:
		return colorWarning
	case theme.ColorNamePrimary:
		return colorPrimary
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 24, G: 26, B: 27, A: 255}
		}
		return color.NRGBA{R: 248, G: 249, B: 250, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 3
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameInputRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
