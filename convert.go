package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// RGB holds 0-255 channel values. Values parsed from user text are not
// range checked, so channels may exceed 255.
type RGB struct {
	R, G, B int
}

// RGBA is RGB plus an alpha in [0,1].
type RGBA struct {
	R int     `json:"r"`
	G int     `json:"g"`
	B int     `json:"b"`
	A float64 `json:"a"`
}

// HSV components are all in [0,1]; hue is in turns.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// HSL components are all in [0,1].
type HSL struct {
	H, S, L float64
}

// HWB is a display-only triple: hue in degrees, whiteness and blackness in percent.
type HWB struct {
	H, W, B int
}

func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

func (c RGB) WithAlpha(a float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

func (c RGB) achromatic() bool {
	return c.R == c.G && c.G == c.B
}

var (
	hexPattern  = regexp.MustCompile(`^#?([a-fA-F\d]{2})([a-fA-F\d]{2})([a-fA-F\d]{2})$`)
	hexaPattern = regexp.MustCompile(`^#?([a-fA-F\d]{2})([a-fA-F\d]{2})([a-fA-F\d]{2})([a-fA-F\d]{2})$`)
)

func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to255(x float64) int {
	return int(math.Round(x * 255))
}

func maxMin(r, g, b float64) (float64, float64) {
	return math.Max(r, math.Max(g, b)), math.Min(r, math.Min(g, b))
}

// hueOf returns the hue in turns for normalized channels whose max and
// min differ by d.
func hueOf(r, g, b, max, d float64) float64 {
	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6
}

func RGBToHSL(r, g, b int) HSL {
	fr, fg, fb := float64(r)/255, float64(g)/255, float64(b)/255
	max, min := maxMin(fr, fg, fb)
	l := (max + min) / 2
	if max == min {
		return HSL{H: 0, S: 0, L: l}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	return HSL{H: hueOf(fr, fg, fb, max, d), S: s, L: l}
}

func hue2rgb(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func HSLToRGB(h, s, l float64) RGB {
	if s == 0 {
		v := to255(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return RGB{
		R: to255(hue2rgb(p, q, h+1.0/3)),
		G: to255(hue2rgb(p, q, h)),
		B: to255(hue2rgb(p, q, h-1.0/3)),
	}
}

// HSVToRGB uses the 6-sector formula. The sector is floor(h*6) mod 6, so
// h == 1 wraps to red.
func HSVToRGB(h, s, v float64) RGB {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch ((int(i) % 6) + 6) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGB{R: to255(r), G: to255(g), B: to255(b)}
}

func RGBToHSV(r, g, b int) HSV {
	fr, fg, fb := float64(r)/255, float64(g)/255, float64(b)/255
	max, min := maxMin(fr, fg, fb)
	d := max - min

	hsv := HSV{V: max}
	if max != 0 {
		hsv.S = d / max
	}
	if max != min {
		hsv.H = hueOf(fr, fg, fb, max, d)
	}
	return hsv
}

// HSVToHWB derives whiteness and blackness from hsv. The hue is supplied
// by the caller so that it matches the HSL output.
func HSVToHWB(hueDeg int, hsv HSV) HWB {
	return HWB{
		H: hueDeg,
		W: int(math.Round((1 - hsv.S) * hsv.V * 100)),
		B: int(math.Round((1 - hsv.V) * 100)),
	}
}

func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func parseHexByte(s string) int {
	n, _ := strconv.ParseUint(s, 16, 8)
	return int(n)
}

// HexToRGB accepts "#RRGGBB" or "RRGGBB" in any case. ok is false for
// anything else.
func HexToRGB(s string) (rgb RGB, ok bool) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}
	return RGB{R: parseHexByte(m[1]), G: parseHexByte(m[2]), B: parseHexByte(m[3])}, true
}

// HexaToRGBA accepts "#RRGGBBAA" or "RRGGBBAA" in any case.
func HexaToRGBA(s string) (rgba RGBA, ok bool) {
	m := hexaPattern.FindStringSubmatch(s)
	if m == nil {
		return RGBA{}, false
	}
	return RGBA{
		R: parseHexByte(m[1]),
		G: parseHexByte(m[2]),
		B: parseHexByte(m[3]),
		A: HexToAlpha(m[4]),
	}, true
}

// AlphaToHex encodes a in two uppercase hex digits. Only 256 levels
// survive the encoding.
func AlphaToHex(a float64) string {
	return fmt.Sprintf("%02X", to255(a))
}

func HexToAlpha(hex string) float64 {
	n, err := strconv.ParseUint(hex, 16, 8)
	if err != nil {
		return 0
	}
	return float64(n) / 255
}
