package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	surfaceLeft = 2
	surfaceTop  = 2
	panelGap    = 2
	swatchWidth = 3
	historyRows = 2
)

func newLayout(cfg *Config, panelHeight int) layout {
	l := layout{
		surfaceLeft:   surfaceLeft,
		surfaceTop:    surfaceTop,
		surfaceWidth:  cfg.SurfaceWidth,
		surfaceHeight: cfg.SurfaceHeight,
		swatchWidth:   swatchWidth,
		swatchStride:  swatchWidth + 1,
		historyRows:   historyRows,
	}
	l.hueLeft = l.surfaceLeft + l.surfaceWidth + panelGap
	blockHeight := l.surfaceHeight
	if panelHeight > blockHeight {
		blockHeight = panelHeight
	}
	// One blank row and the "History" label sit between block and swatches.
	l.historyTop = l.surfaceTop + blockHeight + 2
	return l
}

// cellHex is the terminal color of a canonical color. Out-of-range
// channels are clamped for display only.
func cellHex(c RGBA) string {
	n := nrgba(c)
	return RGBToHex(int(n.R), int(n.G), int(n.B))
}

func cell(bg string, fg string, text string) string {
	style := lipgloss.NewStyle().Background(lipgloss.Color(bg))
	if fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	return style.Render(text)
}

func markerIndex(x float64, n int) int {
	if n <= 1 {
		return 0
	}
	return int(math.Round(clamp01(x) * float64(n-1)))
}

func fraction(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// renderSurface draws the saturation/value plane for the current hue with
// a marker at the selected cell.
func renderSurface(hsv HSV, width, height int) []string {
	markCol := markerIndex(hsv.S, width)
	markRow := markerIndex(1-hsv.V, height)
	lines := make([]string, height)
	for row := 0; row < height; row++ {
		var b strings.Builder
		v := 1 - fraction(row, height)
		for col := 0; col < width; col++ {
			s := fraction(col, width)
			rgb := HSVToRGB(hsv.H, s, v)
			bg := RGBToHex(rgb.R, rgb.G, rgb.B)
			if row == markRow && col == markCol {
				fg := "#FFFFFF"
				if v > 0.5 && s < 0.5 {
					fg = "#000000"
				}
				b.WriteString(cell(bg, fg, "+"))
				continue
			}
			b.WriteString(cell(bg, "", " "))
		}
		lines[row] = b.String()
	}
	return lines
}

// renderHueStrip draws the hue column, red at both ends, with arrows on
// the selected row.
func renderHueStrip(hue float64, height int) []string {
	markRow := markerIndex(1-hue, height)
	lines := make([]string, height)
	for row := 0; row < height; row++ {
		rgb := HSVToRGB(1-fraction(row, height), 1, 1)
		bg := RGBToHex(rgb.R, rgb.G, rgb.B)
		text := strings.Repeat(" ", hueStripWidth)
		if row == markRow {
			text = "<>"
		}
		lines[row] = cell(bg, "#000000", text)
	}
	return lines
}

func (l layout) swatchesPerRow(termWidth int) int {
	n := (termWidth - l.surfaceLeft) / l.swatchStride
	if n < 1 {
		return 1
	}
	return n
}

// renderSwatches lays history entries out left to right, newest first.
func renderSwatches(entries []string, perRow, rows int) []string {
	var lines []string
	for r := 0; r < rows; r++ {
		start := r * perRow
		if start >= len(entries) {
			break
		}
		end := start + perRow
		if end > len(entries) {
			end = len(entries)
		}
		var b strings.Builder
		for _, entry := range entries[start:end] {
			bg := "#000000"
			if p, ok := ParseColor(entry); ok {
				bg = cellHex(p.RGBA)
			}
			b.WriteString(cell(bg, "", strings.Repeat(" ", swatchWidth)))
			b.WriteString(" ")
		}
		lines = append(lines, b.String())
	}
	return lines
}

// historyIndexAt maps a click to a history entry index.
func (m model) historyIndexAt(x, y int) (int, bool) {
	l := m.layout
	row := y - l.historyTop
	if row < 0 || row >= l.historyRows || x < l.surfaceLeft {
		return 0, false
	}
	offset := x - l.surfaceLeft
	if offset%l.swatchStride >= l.swatchWidth {
		return 0, false
	}
	perRow := l.swatchesPerRow(m.width)
	col := offset / l.swatchStride
	if col >= perRow {
		return 0, false
	}
	idx := row*perRow + col
	if idx >= len(m.store.History()) {
		return 0, false
	}
	return idx, true
}
