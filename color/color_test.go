package color

import (
	"math"
	"testing"
)

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name string
		in   HSL
		want RGB
	}{
		{"Red", HSL{0, 100, 50}, RGB{255, 0, 0}},
		{"Yellow", HSL{60, 100, 50}, RGB{255, 255, 0}},
		{"Green", HSL{120, 100, 50}, RGB{0, 255, 0}},
		{"Cyan", HSL{180, 100, 50}, RGB{0, 255, 255}},
		{"Blue", HSL{240, 100, 50}, RGB{0, 0, 255}},
		{"Magenta", HSL{300, 100, 50}, RGB{255, 0, 255}},
		{"Black", HSL{0, 0, 0}, RGB{0, 0, 0}},
		{"White", HSL{0, 0, 100}, RGB{255, 255, 255}},
		{"MidGray", HSL{0, 0, 50}, RGB{128, 128, 128}},
		{"PaletteBase", HSL{0, 70, 50}, RGB{217, 38, 38}},
		{"HueWrap", HSL{360, 100, 50}, RGB{255, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.RGB()
			if got != tt.want {
				t.Errorf("HSL%v.RGB() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   RGB
		want string
	}{
		{RGB{255, 0, 0}, "#ff0000"},
		{RGB{0, 0, 0}, "#000000"},
		{RGB{217, 38, 38}, "#d92626"},
		{RGB{1, 2, 3}, "#010203"},
	}

	for _, tt := range tests {
		if got := tt.in.Hex(); got != tt.want {
			t.Errorf("RGB%v.Hex() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	// Hex formatting must be lossless for already-rounded channels.
	for h := 0.0; h < 360; h += 15 {
		rgb := (HSL{H: h, S: 70, L: 50}).RGB()
		parsed, err := ParseHex(rgb.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", rgb.Hex(), err)
		}
		if parsed != rgb {
			t.Errorf("hex round trip for hue %v: got %v, want %v", h, parsed, rgb)
		}
	}
}

func TestHexFormat(t *testing.T) {
	s := (HSL{H: 210, S: 70, L: 50}).Hex()
	if len(s) != 7 || s[0] != '#' {
		t.Fatalf("Hex() = %q, want '#' plus 6 digits", s)
	}
	for _, c := range s[1:] {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			t.Errorf("Hex() = %q contains non-lowercase-hex digit %q", s, c)
		}
	}
}

func TestRGBToHSL(t *testing.T) {
	// Inverse conversion should land within rounding distance of the source.
	for h := 0.0; h < 360; h += 30 {
		src := HSL{H: h, S: 70, L: 50}
		back := src.RGB().HSL()

		if math.Abs(back.H-src.H) > 1 && math.Abs(back.H-src.H) < 359 {
			t.Errorf("hue %v: round trip hue = %v", src.H, back.H)
		}
		if math.Abs(back.S-src.S) > 1 {
			t.Errorf("hue %v: round trip saturation = %v, want ~%v", src.H, back.S, src.S)
		}
		if math.Abs(back.L-src.L) > 1 {
			t.Errorf("hue %v: round trip lightness = %v, want ~%v", src.H, back.L, src.L)
		}
	}
}

func TestRGBToHSLAchromatic(t *testing.T) {
	got := (RGB{128, 128, 128}).HSL()
	if got.H != 0 || got.S != 0 {
		t.Errorf("gray HSL = %v, want zero hue and saturation", got)
	}
	if math.Abs(got.L-50.2) > 0.1 {
		t.Errorf("gray lightness = %v, want ~50.2", got.L)
	}
}

func TestParseHexErrors(t *testing.T) {
	for _, in := range []string{"", "#fff", "#gggggg", "1234567"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q): expected error", in)
		}
	}
}
