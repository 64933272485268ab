package main

import (
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     RGBA
		wantRule string
		wantOK   bool
	}{
		{"Hex", "#ff0000", RGBA{255, 0, 0, 1}, "hex", true},
		{"Hex without hash", "4299E1", RGBA{66, 153, 225, 1}, "hex", true},
		{"Hexa", "#FF000080", RGBA{255, 0, 0, 128.0 / 255}, "hexa", true},
		{"Short hex", "#F00", RGBA{255, 0, 0, 1}, "hex3", true},
		{"Short hex lowercase", "abc", RGBA{170, 187, 204, 1}, "hex3", true},
		{"Six letters are hex not hex3", "abcdef", RGBA{171, 205, 239, 1}, "hex", true},
		{"Rgb", "rgb(10, 20, 30)", RGBA{10, 20, 30, 1}, "rgb", true},
		{"Rgb without spaces", "rgb(10,20,30)", RGBA{10, 20, 30, 1}, "rgb", true},
		{"Rgb out of range kept", "rgb(999,0,0)", RGBA{999, 0, 0, 1}, "rgb", true},
		{"Rgb beyond int saturates", "rgb(99999999999999999999, 0, 7)", RGBA{math.MaxInt, 0, 7, 1}, "rgb", true},
		{"Rgba", "rgba(0, 128, 255, 0.50)", RGBA{0, 128, 255, 0.5}, "rgba", true},
		{"Rgba integer alpha", "rgba(1, 2, 3, 1)", RGBA{1, 2, 3, 1}, "rgba", true},
		{"Hsl", "hsl(0, 100%, 50%)", RGBA{255, 0, 0, 1}, "hsl", true},
		{"Hsl gray", "hsl(120, 0%, 50%)", RGBA{128, 128, 128, 1}, "hsl", true},
		{"Hsla", "hsla(240, 100%, 50%, 0.3)", RGBA{0, 0, 255, 0.3}, "hsla", true},
		{"Surrounding space", "  #00ff00  ", RGBA{0, 255, 0, 1}, "hex", true},
		{"Not a color", "not-a-color", RGBA{}, "", false},
		{"Empty", "", RGBA{}, "", false},
		{"Blank", "   ", RGBA{}, "", false},
		{"Five digits", "#12345", RGBA{}, "", false},
		{"Rgb missing channel", "rgb(1, 2)", RGBA{}, "", false},
		{"Negative channel", "rgb(-1, 2, 3)", RGBA{}, "", false},
		{"Malformed alpha", "rgba(1, 2, 3, 1.2.3)", RGBA{}, "", false},
		{"Hsl without percent", "hsl(0, 100, 50)", RGBA{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseColor(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Rule != tt.wantRule {
				t.Errorf("ParseColor(%q) rule = %q, want %q", tt.in, got.Rule, tt.wantRule)
			}
			if got.RGBA.RGB() != tt.want.RGB() || math.Abs(got.RGBA.A-tt.want.A) > 1e-9 {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got.RGBA, tt.want)
			}
		})
	}
}

func TestParseColorAcceptsFormattedOutputs(t *testing.T) {
	c := ColorFromRGBA(RGBA{66, 153, 225, 0.5}, 0)
	out := buildOutputs(c, FormatHex, "")
	for _, f := range []Format{FormatHex, FormatHexa, FormatRGB, FormatRGBA, FormatHSL, FormatHSLA} {
		text := out.ByFormat(f)
		p, ok := ParseColor(text)
		if !ok {
			t.Errorf("ParseColor rejected %s output %q", f, text)
			continue
		}
		if !closeRGB(p.RGBA.RGB(), c.RGBA.RGB(), 3) {
			t.Errorf("ParseColor(%q) = %+v, far from %+v", text, p.RGBA, c.RGBA)
		}
	}
}
