package main

import (
	"fmt"
	"math"
)

// Color is the canonical selection. RGBA is the truth value for output and
// persistence; HSV is the interaction coordinate and keeps its hue across
// gray colors, where hue is undefined.
type Color struct {
	HSV  HSV
	RGBA RGBA
}

// ColorFromHSV builds a Color whose RGB channels are derived from hsv.
func ColorFromHSV(hsv HSV, alpha float64) Color {
	return Color{HSV: hsv, RGBA: HSVToRGB(hsv.H, hsv.S, hsv.V).WithAlpha(alpha)}
}

// ColorFromRGBA builds a Color from rgba, reusing prevHue when the color
// is achromatic.
func ColorFromRGBA(rgba RGBA, prevHue float64) Color {
	hsv := RGBToHSV(rgba.R, rgba.G, rgba.B)
	if rgba.RGB().achromatic() {
		hsv.H = prevHue
	}
	return Color{HSV: hsv, RGBA: rgba}
}

// consistent reports whether the RGB channels are exactly what the HSV
// part converts to.
func (c Color) consistent() bool {
	return HSVToRGB(c.HSV.H, c.HSV.S, c.HSV.V) == c.RGBA.RGB()
}

// fixed2 formats x with two decimals, rounding halves up.
func fixed2(x float64) string {
	return fmt.Sprintf("%.2f", math.Floor(x*100+0.5)/100)
}

// RGBAString is the history entry format, e.g. "rgba(66, 153, 225, 1.00)".
func RGBAString(c RGBA) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, fixed2(c.A))
}

// Outputs is everything a view needs after a mutation. It is rebuilt in
// full on every change.
type Outputs struct {
	Color    Color
	Hex      string
	Hexa     string
	RGB      string
	RGBA     string
	HSL      string
	HSLA     string
	HWB      string
	Format   Format
	Active   string
	Gradient string
}

func buildOutputs(c Color, f Format, gradient string) Outputs {
	r, g, b, a := c.RGBA.R, c.RGBA.G, c.RGBA.B, c.RGBA.A
	hex := RGBToHex(r, g, b)
	hsl := RGBToHSL(r, g, b)
	hDeg := int(math.Round(hsl.H * 360))
	sPct := int(math.Round(hsl.S * 100))
	lPct := int(math.Round(hsl.L * 100))
	hwb := HSVToHWB(hDeg, c.HSV)

	out := Outputs{
		Color:    c,
		Hex:      hex,
		Hexa:     hex + AlphaToHex(a),
		RGB:      fmt.Sprintf("rgb(%d, %d, %d)", r, g, b),
		RGBA:     RGBAString(c.RGBA),
		HSL:      fmt.Sprintf("hsl(%d, %d%%, %d%%)", hDeg, sPct, lPct),
		HSLA:     fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", hDeg, sPct, lPct, fixed2(a)),
		HWB:      fmt.Sprintf("hwb(%d, %d%%, %d%%)", hwb.H, hwb.W, hwb.B),
		Format:   f,
		Gradient: gradient,
	}
	out.Active = out.ByFormat(f)
	return out
}

// ByFormat returns the output string for f.
func (o Outputs) ByFormat(f Format) string {
	switch f {
	case FormatHexa:
		return o.Hexa
	case FormatRGB:
		return o.RGB
	case FormatRGBA:
		return o.RGBA
	case FormatHSL:
		return o.HSL
	case FormatHSLA:
		return o.HSLA
	case FormatHWB:
		return o.HWB
	default:
		return o.Hex
	}
}
