package main

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parsed is a successfully recognized color string.
type Parsed struct {
	RGBA RGBA
	Rule string
}

type parseRule struct {
	name    string
	pattern *regexp.Regexp
	extract func(m []string) (RGBA, bool)
}

// parseRules are tried in order; the first pattern that matches decides
// the result, even if its extractor then rejects the values.
var parseRules = []parseRule{
	{"hex", regexp.MustCompile(`^#?([a-fA-F0-9]{6})$`), extractHex},
	{"hexa", regexp.MustCompile(`^#?([a-fA-F0-9]{8})$`), extractHexa},
	{"hex3", regexp.MustCompile(`^#?([a-fA-F0-9]{3})$`), extractHex3},
	{"rgb", regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`), extractRGB},
	{"rgba", regexp.MustCompile(`^rgba\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*([0-9.]+)\s*\)$`), extractRGBA},
	{"hsl", regexp.MustCompile(`^hsl\(\s*(\d+)\s*,\s*(\d+)%\s*,\s*(\d+)%\s*\)$`), extractHSL},
	{"hsla", regexp.MustCompile(`^hsla\(\s*(\d+)\s*,\s*(\d+)%\s*,\s*(\d+)%\s*,\s*([0-9.]+)\s*\)$`), extractHSLA},
}

// ParseColor recognizes hex, hexa, 3-digit hex, rgb(), rgba(), hsl() and
// hsla() notation. Values are not range checked: "rgb(999,0,0)" is
// accepted as is.
func ParseColor(s string) (Parsed, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Parsed{}, false
	}
	for _, rule := range parseRules {
		m := rule.pattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		rgba, ok := rule.extract(m)
		if !ok {
			return Parsed{}, false
		}
		return Parsed{RGBA: rgba, Rule: rule.name}, true
	}
	return Parsed{}, false
}

func extractHex(m []string) (RGBA, bool) {
	rgb, ok := HexToRGB(m[1])
	return rgb.WithAlpha(1), ok
}

func extractHexa(m []string) (RGBA, bool) {
	return HexaToRGBA(m[1])
}

func extractHex3(m []string) (RGBA, bool) {
	var b strings.Builder
	for _, r := range m[1] {
		b.WriteRune(r)
		b.WriteRune(r)
	}
	rgb, ok := HexToRGB(b.String())
	return rgb.WithAlpha(1), ok
}

// atois converts digit runs. A run too large for int saturates at the
// int range instead of failing, like any other out-of-range channel.
func atois(parts ...string) ([]int, bool) {
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func parseAlpha(s string) (float64, bool) {
	a, err := strconv.ParseFloat(s, 64)
	return a, err == nil
}

func extractRGB(m []string) (RGBA, bool) {
	n, ok := atois(m[1], m[2], m[3])
	if !ok {
		return RGBA{}, false
	}
	return RGBA{R: n[0], G: n[1], B: n[2], A: 1}, true
}

func extractRGBA(m []string) (RGBA, bool) {
	c, ok := extractRGB(m)
	if !ok {
		return RGBA{}, false
	}
	if c.A, ok = parseAlpha(m[4]); !ok {
		return RGBA{}, false
	}
	return c, true
}

func extractHSL(m []string) (RGBA, bool) {
	n, ok := atois(m[1], m[2], m[3])
	if !ok {
		return RGBA{}, false
	}
	rgb := HSLToRGB(float64(n[0])/360, float64(n[1])/100, float64(n[2])/100)
	return rgb.WithAlpha(1), true
}

func extractHSLA(m []string) (RGBA, bool) {
	c, ok := extractHSL(m)
	if !ok {
		return RGBA{}, false
	}
	if c.A, ok = parseAlpha(m[4]); !ok {
		return RGBA{}, false
	}
	return c, true
}
