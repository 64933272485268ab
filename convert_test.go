package main

import (
	"fmt"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func closeRGB(a, b RGB, tol int) bool {
	return absInt(a.R-b.R) <= tol && absInt(a.G-b.G) <= tol && absInt(a.B-b.B) <= tol
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    RGB
	}{
		{"Red", 0, 1, 1, RGB{255, 0, 0}},
		{"Cyan", 0.5, 1, 1, RGB{0, 255, 255}},
		{"Chartreuse", 0.25, 1, 1, RGB{128, 255, 0}},
		{"White", 0.7, 0, 1, RGB{255, 255, 255}},
		{"Black", 0.7, 1, 0, RGB{0, 0, 0}},
		{"Gray rounds half up", 0.1, 0, 0.5, RGB{128, 128, 128}},
		{"Hue one wraps to red", 1, 1, 1, RGB{255, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSVToRGB(tt.h, tt.s, tt.v); got != tt.want {
				t.Errorf("HSVToRGB(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.v, got, tt.want)
			}
		})
	}
}

func TestHSVToRGBMatchesColorful(t *testing.T) {
	for h := 0.0; h < 0.96; h += 0.05 {
		for s := 0.0; s <= 1.0; s += 0.1 {
			for v := 0.0; v <= 1.0; v += 0.1 {
				got := HSVToRGB(h, s, v)
				r, g, b := colorful.Hsv(h*360, s, v).RGB255()
				want := RGB{int(r), int(g), int(b)}
				if !closeRGB(got, want, 1) {
					t.Fatalf("HSVToRGB(%.2f, %.2f, %.2f) = %v, colorful says %v", h, s, v, got, want)
				}
			}
		}
	}
}

func TestHSLToRGBMatchesColorful(t *testing.T) {
	for h := 0.0; h < 0.96; h += 0.05 {
		for s := 0.0; s <= 1.0; s += 0.1 {
			for l := 0.0; l <= 1.0; l += 0.1 {
				got := HSLToRGB(h, s, l)
				r, g, b := colorful.Hsl(h*360, s, l).RGB255()
				want := RGB{int(r), int(g), int(b)}
				if !closeRGB(got, want, 1) {
					t.Fatalf("HSLToRGB(%.2f, %.2f, %.2f) = %v, colorful says %v", h, s, l, got, want)
				}
			}
		}
	}
}

func TestRGBToHSVMatchesColorful(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				got := RGBToHSV(r, g, b)
				h, s, v := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsv()
				if math.Abs(got.S-s) > 1e-9 || math.Abs(got.V-v) > 1e-9 {
					t.Fatalf("RGBToHSV(%d, %d, %d) = %+v, colorful says s=%v v=%v", r, g, b, got, s, v)
				}
				if r == g && g == b {
					continue
				}
				diff := math.Abs(got.H*360 - h)
				if diff > 180 {
					diff = 360 - diff
				}
				if diff > 1e-6 {
					t.Fatalf("RGBToHSV(%d, %d, %d) hue = %v deg, colorful says %v", r, g, b, got.H*360, h)
				}
			}
		}
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    HSL
	}{
		{"Red", 255, 0, 0, HSL{0, 1, 0.5}},
		{"Green", 0, 255, 0, HSL{1.0 / 3, 1, 0.5}},
		{"Blue", 0, 0, 255, HSL{2.0 / 3, 1, 0.5}},
		{"White", 255, 255, 255, HSL{0, 0, 1}},
		{"Black", 0, 0, 0, HSL{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.r, tt.g, tt.b)
			if math.Abs(got.H-tt.want.H) > 1e-9 || math.Abs(got.S-tt.want.S) > 1e-9 || math.Abs(got.L-tt.want.L) > 1e-9 {
				t.Errorf("RGBToHSL(%d, %d, %d) = %+v, want %+v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for h := 0.0; h <= 1.0; h += 0.05 {
		for s := 0.0; s <= 1.0; s += 0.05 {
			for v := 0.0; v <= 1.0; v += 0.05 {
				rgb := HSVToRGB(h, s, v)
				hsv := RGBToHSV(rgb.R, rgb.G, rgb.B)
				back := HSVToRGB(hsv.H, hsv.S, hsv.V)
				if !closeRGB(rgb, back, 1) {
					t.Fatalf("round trip of hsv(%.2f, %.2f, %.2f): %v -> %+v -> %v", h, s, v, rgb, hsv, back)
				}
			}
		}
	}
}

func TestRGBThroughHSVIsExact(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 7 {
			for b := 0; b < 256; b += 11 {
				hsv := RGBToHSV(r, g, b)
				if got := HSVToRGB(hsv.H, hsv.S, hsv.V); got != (RGB{r, g, b}) {
					t.Fatalf("rgb(%d, %d, %d) came back as %v", r, g, b, got)
				}
			}
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				hex := RGBToHex(r, g, b)
				got, ok := HexToRGB(hex)
				if !ok || got != (RGB{r, g, b}) {
					t.Fatalf("HexToRGB(%q) = %v, %v", hex, got, ok)
				}
			}
		}
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in     string
		want   RGB
		wantOK bool
	}{
		{"#4299E1", RGB{66, 153, 225}, true},
		{"4299e1", RGB{66, 153, 225}, true},
		{"#ffffff", RGB{255, 255, 255}, true},
		{"#12345", RGB{}, false},
		{"#GGGGGG", RGB{}, false},
		{"#12345678", RGB{}, false},
		{"", RGB{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := HexToRGB(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("HexToRGB(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestHexaToRGBA(t *testing.T) {
	got, ok := HexaToRGBA("#FF000080")
	if !ok {
		t.Fatal("HexaToRGBA rejected #FF000080")
	}
	if got.RGB() != (RGB{255, 0, 0}) || math.Abs(got.A-128.0/255) > 1e-12 {
		t.Errorf("HexaToRGBA(#FF000080) = %+v", got)
	}
	if _, ok := HexaToRGBA("#FF0000"); ok {
		t.Error("HexaToRGBA accepted a 6-digit hex")
	}
}

func TestAlphaHex(t *testing.T) {
	if got := AlphaToHex(1); got != "FF" {
		t.Errorf("AlphaToHex(1) = %q", got)
	}
	if got := AlphaToHex(0); got != "00" {
		t.Errorf("AlphaToHex(0) = %q", got)
	}
	if got := AlphaToHex(0.5); got != "80" {
		t.Errorf("AlphaToHex(0.5) = %q", got)
	}
	for n := 0; n < 256; n++ {
		hex := fmt.Sprintf("%02X", n)
		if got := AlphaToHex(HexToAlpha(hex)); got != hex {
			t.Fatalf("alpha %s came back as %s", hex, got)
		}
	}
	if got := HexToAlpha("zz"); got != 0 {
		t.Errorf("HexToAlpha(zz) = %v", got)
	}
}

func TestHSVToHWB(t *testing.T) {
	tests := []struct {
		name string
		hsv  HSV
		want HWB
	}{
		{"Pure hue", HSV{0, 1, 1}, HWB{0, 0, 0}},
		{"White", HSV{0, 0, 1}, HWB{0, 100, 0}},
		{"Black", HSV{0, 1, 0}, HWB{0, 0, 100}},
		{"Muted", HSV{0, 0.5, 0.8}, HWB{0, 40, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSVToHWB(0, tt.hsv); got != tt.want {
				t.Errorf("HSVToHWB(%+v) = %+v, want %+v", tt.hsv, got, tt.want)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0.25, 0.25},
		{1.5, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
