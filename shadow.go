package main

import (
	"fmt"
	"strconv"
)

// ShadowParams are the slider values of the shadow tab. Colors are
// "#RRGGBB" strings.
type ShadowParams struct {
	BoxX, BoxY, BoxBlur int
	BoxOpacity          float64
	BoxColor            string
	BoxShadowColor      string

	TextX, TextY, TextBlur int
	TextOpacity            float64
	TextColor              string
	TextShadowColor        string
}

func defaultShadow() ShadowParams {
	return ShadowParams{
		BoxX: 10, BoxY: 10, BoxBlur: 20, BoxOpacity: 0.5,
		BoxColor: "#4299E1", BoxShadowColor: "#000000",
		TextX: 2, TextY: 2, TextBlur: 4, TextOpacity: 0.5,
		TextColor: "#FFFFFF", TextShadowColor: "#000000",
	}
}

// hexWithOpacity turns "#RRGGBB" and an opacity into an rgba() string.
// Malformed hex is treated as black.
func hexWithOpacity(hex string, opacity float64) string {
	rgb, _ := HexToRGB(hex)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb.R, rgb.G, rgb.B, strconv.FormatFloat(opacity, 'f', -1, 64))
}

func (p ShadowParams) BoxShadow() string {
	return fmt.Sprintf("%dpx %dpx %dpx %s", p.BoxX, p.BoxY, p.BoxBlur, hexWithOpacity(p.BoxShadowColor, p.BoxOpacity))
}

func (p ShadowParams) TextShadow() string {
	return fmt.Sprintf("%dpx %dpx %dpx %s", p.TextX, p.TextY, p.TextBlur, hexWithOpacity(p.TextShadowColor, p.TextOpacity))
}

// CSS is the full rule offered for copying and download.
func (p ShadowParams) CSS() string {
	return fmt.Sprintf(".shadow-elite {\n  background: %s;\n  box-shadow: %s;\n  color: %s;\n  text-shadow: %s;\n}",
		p.BoxColor, p.BoxShadow(), p.TextColor, p.TextShadow())
}

func (p ShadowParams) PreviewLine() string {
	return fmt.Sprintf("box-shadow: %s; text-shadow: %s;", p.BoxShadow(), p.TextShadow())
}

// shadowSlider is one adjustable row of the shadow tab.
type shadowSlider struct {
	label    string
	min, max float64
	step     float64
	unit     string
	get      func(*ShadowParams) float64
	set      func(*ShadowParams, float64)
}

func intField(f func(*ShadowParams) *int) (func(*ShadowParams) float64, func(*ShadowParams, float64)) {
	return func(p *ShadowParams) float64 { return float64(*f(p)) },
		func(p *ShadowParams, v float64) { *f(p) = int(v) }
}

func floatField(f func(*ShadowParams) *float64) (func(*ShadowParams) float64, func(*ShadowParams, float64)) {
	return func(p *ShadowParams) float64 { return *f(p) },
		func(p *ShadowParams, v float64) { *f(p) = v }
}

func newSlider(label string, min, max, step float64, unit string, get func(*ShadowParams) float64, set func(*ShadowParams, float64)) shadowSlider {
	return shadowSlider{label: label, min: min, max: max, step: step, unit: unit, get: get, set: set}
}

var shadowSliders = func() []shadowSlider {
	bx, bxs := intField(func(p *ShadowParams) *int { return &p.BoxX })
	by, bys := intField(func(p *ShadowParams) *int { return &p.BoxY })
	bb, bbs := intField(func(p *ShadowParams) *int { return &p.BoxBlur })
	bo, bos := floatField(func(p *ShadowParams) *float64 { return &p.BoxOpacity })
	tx, txs := intField(func(p *ShadowParams) *int { return &p.TextX })
	ty, tys := intField(func(p *ShadowParams) *int { return &p.TextY })
	tb, tbs := intField(func(p *ShadowParams) *int { return &p.TextBlur })
	to, tos := floatField(func(p *ShadowParams) *float64 { return &p.TextOpacity })
	return []shadowSlider{
		newSlider("Box X", -50, 50, 1, "px", bx, bxs),
		newSlider("Box Y", -50, 50, 1, "px", by, bys),
		newSlider("Box blur", 0, 100, 1, "px", bb, bbs),
		newSlider("Box opacity", 0, 1, 0.05, "", bo, bos),
		newSlider("Text X", -20, 20, 1, "px", tx, txs),
		newSlider("Text Y", -20, 20, 1, "px", ty, tys),
		newSlider("Text blur", 0, 30, 1, "px", tb, tbs),
		newSlider("Text opacity", 0, 1, 0.05, "", to, tos),
	}
}()

// nudge moves the slider by steps, clamped to its range. Opacity values
// are kept to two decimals.
func (s shadowSlider) nudge(p *ShadowParams, steps int) {
	v := s.get(p) + float64(steps)*s.step
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	if s.step < 1 {
		v = float64(int(v*100+0.5)) / 100
	}
	s.set(p, v)
}

func (s shadowSlider) display(p *ShadowParams) string {
	if s.step < 1 {
		return fixed2(s.get(p))
	}
	return fmt.Sprintf("%d%s", int(s.get(p)), s.unit)
}
