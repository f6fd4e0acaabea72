package ui

import (
	"image/color"
	"testing"

	"github.com/pkg/errors"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.NRGBA
		wantErr  bool
	}{
		{"#FF0000", color.NRGBA{R: 0xFF, A: 0xFF}, false},
		{"#555555", color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}, false},
		{"ffffff", color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, false},
		{" #00ff0080 ", color.NRGBA{G: 0xFF, A: 0x80}, false},
		{"#12345", color.NRGBA{}, true},
		{"#GG0000", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
		{"red", color.NRGBA{}, true},
	}

	for _, test := range tests {
		got, err := ParseHexColor(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q) should fail", test.input)
			} else if !errors.Is(err, ErrInvalidHexColor) {
				t.Errorf("ParseHexColor(%q) error should wrap ErrInvalidHexColor, got %v", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q) unexpected error: %v", test.input, err)
			continue
		}
		if got != test.expected {
			t.Errorf("ParseHexColor(%q) = %v, want %v", test.input, got, test.expected)
		}
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		input    color.Color
		expected string
	}{
		{color.White, "#FFFFFF"},
		{color.NRGBA{R: 0xFF, A: 0xFF}, "#FF0000"},
		{color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x80}, "#12345680"},
	}

	for _, test := range tests {
		if got := HexColor(test.input); got != test.expected {
			t.Errorf("HexColor(%v) = %s, want %s", test.input, got, test.expected)
		}
	}
}

func TestNewPaletteFromHex(t *testing.T) {
	palette, err := NewPaletteFromHex("#FFFFFF", "#FF0000", "#555555")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if HexColor(palette.Progress) != "#FF0000" {
		t.Errorf("Expected progress #FF0000, got %s", HexColor(palette.Progress))
	}
	if HexColor(palette.ProgressFill) != "#555555" {
		t.Errorf("Expected fill #555555, got %s", HexColor(palette.ProgressFill))
	}

	palette, err = NewPaletteFromHex("#FFFFFF", "nope", "#555555")
	if err == nil {
		t.Fatal("Invalid progress color should fail")
	}
	if HexColor(palette.Progress) != HexColor(DefaultPalette().Progress) {
		t.Error("Invalid colors should return the default palette")
	}
}

func TestWithOpacity(t *testing.T) {
	transparent := color.NRGBAModel.Convert(withOpacity(color.White, 0)).(color.NRGBA)
	if transparent.A != 0 {
		t.Errorf("Expected alpha 0, got %d", transparent.A)
	}

	opaque := color.NRGBAModel.Convert(withOpacity(color.White, 1)).(color.NRGBA)
	if opaque.A != 0xFF {
		t.Errorf("Expected alpha 255, got %d", opaque.A)
	}
}
