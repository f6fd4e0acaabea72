package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// RecorderTheme is a dark theme for the host screen: black background, white
// text, red primary matching the recording ring
type RecorderTheme struct{}

// NewRecorderTheme creates a new recorder theme
func NewRecorderTheme() fyne.Theme {
	return &RecorderTheme{}
}

// Color returns theme colors. The variant is ignored, the screen is always dark.
func (t *RecorderTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.Black
	case theme.ColorNameForeground:
		return color.RGBA{R: 240, G: 240, B: 240, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 229, G: 57, B: 53, A: 255} // Red, same family as the ring
	case theme.ColorNameButton:
		return color.RGBA{R: 38, G: 38, B: 38, A: 255}
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 28, G: 28, B: 28, A: 255}
	case theme.ColorNameSeparator:
		return color.RGBA{R: 60, G: 60, B: 60, A: 255}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *RecorderTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *RecorderTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with slightly tighter padding
func (t *RecorderTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
