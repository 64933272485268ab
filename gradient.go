package main

import "fmt"

type GradientKind int

const (
	GradientLinear GradientKind = iota
	GradientRadial
	GradientRepeatingLinear
	GradientRepeatingRadial
)

var gradientKindNames = [...]string{"linear", "radial", "repeating-linear", "repeating-radial"}

func (k GradientKind) String() string {
	if !k.valid() {
		return ""
	}
	return gradientKindNames[k]
}

func (k GradientKind) valid() bool {
	return k >= 0 && int(k) < len(gradientKindNames)
}

func (k GradientKind) Next() GradientKind {
	return GradientKind((int(k) + 1) % len(gradientKindNames))
}

// ParseGradientKind returns false for anything but the four known kinds.
func ParseGradientKind(s string) (GradientKind, bool) {
	for i, name := range gradientKindNames {
		if name == s {
			return GradientKind(i), true
		}
	}
	return GradientLinear, false
}

// GradientStop is a CSS color and a CSS position such as "0%".
type GradientStop struct {
	Color    string
	Position string
}

// ComposeGradient renders kind-gradient(param, c1 p1, c2 p2). An unknown
// kind yields "".
func ComposeGradient(kind GradientKind, param string, stop1, stop2 GradientStop) string {
	if !kind.valid() {
		return ""
	}
	return fmt.Sprintf("%s-gradient(%s, %s %s, %s %s)",
		kind, param, stop1.Color, stop1.Position, stop2.Color, stop2.Position)
}
