package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidHexColor is returned for strings that are not #RRGGBB or #RRGGBBAA
var ErrInvalidHexColor = errors.New("invalid hex color")

// Palette holds the colors of the record button
type Palette struct {
	// Button fills the inner circle and the border while idle
	Button color.Color
	// Progress fills the ring and the inner circle while recording
	Progress color.Color
	// ProgressFill colors the border while recording
	ProgressFill color.Color
}

// DefaultPalette returns white button and border with a red ring
func DefaultPalette() Palette {
	return Palette{
		Button:       color.White,
		Progress:     color.NRGBA{R: 0xFF, A: 0xFF},
		ProgressFill: color.White,
	}
}

// NewPaletteFromHex parses the three palette colors
func NewPaletteFromHex(button, progress, progressFill string) (Palette, error) {
	var p Palette
	var err error
	if p.Button, err = ParseHexColor(button); err != nil {
		return DefaultPalette(), errors.Wrap(err, "button color")
	}
	if p.Progress, err = ParseHexColor(progress); err != nil {
		return DefaultPalette(), errors.Wrap(err, "progress color")
	}
	if p.ProgressFill, err = ParseHexColor(progressFill); err != nil {
		return DefaultPalette(), errors.Wrap(err, "progress fill color")
	}
	return p, nil
}

// ParseHexColor parses #RRGGBB or #RRGGBBAA; the leading # is optional
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, errors.Wrapf(ErrInvalidHexColor, "%q", s)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(ErrInvalidHexColor, "%q", s)
	}
	if len(hex) == 6 {
		value = value<<8 | 0xFF
	}

	return color.NRGBA{
		R: uint8(value >> 24),
		G: uint8(value >> 16),
		B: uint8(value >> 8),
		A: uint8(value),
	}, nil
}

// HexColor formats c as #RRGGBB, or #RRGGBBAA when it is not opaque
func HexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// withOpacity scales the alpha of c by opacity in [0,1]
func withOpacity(c color.Color, opacity float32) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float32(n.A) * opacity)
	return n
}
