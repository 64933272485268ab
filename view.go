package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4299E1"))
	tabStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeTab    = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(9)
	activeLabel  = labelStyle.Copy().Foreground(lipgloss.Color("#4299E1")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	inputStyle   = lipgloss.NewStyle().Reverse(true)
)

var helpLines = []string{
	"hueforge help",
	"=============",
	"",
	"Picker:",
	"  mouse            Drag on the surface (saturation/value) or the hue strip",
	"  click swatch     Select a color from history",
	"  h/j/k/l, arrows  Nudge saturation and value (Shift for 2x)",
	"  - / =            Hue -/+ 1 degree (_ / + for 10 degrees)",
	"  , / .            Alpha -/+ 0.05",
	"  f                Cycle the active output format",
	"  i                Type a color (hex, hexa, rgb, rgba, hsl, hsla)",
	"  v                Paste a color from the clipboard",
	"  c / C            Copy active output / gradient",
	"",
	"Gradient:",
	"  1 / 2            Use the current color as stop 1 / stop 2",
	"  g                Cycle gradient kind",
	"  p                Edit direction or shape (e.g. 90deg, circle)",
	"  P                Edit stop positions (e.g. 0% 100%)",
	"",
	"History:",
	"  e / E            Export history as HTML / PNG swatch sheet",
	"  o                Import an exported HTML history",
	"  X                Clear history",
	"",
	"Shadow tab:",
	"  j/k              Select slider",
	"  h/l              Adjust slider (Shift for 2x)",
	"  b / s            Current color as box / box shadow color",
	"  t / T            Current color as text / text shadow color",
	"  c / w            Copy / save CSS",
	"",
	"General:",
	"  Tab              Switch tab",
	"  ?                Toggle help",
	"  q / Ctrl+C       Quit",
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(m.titleBar())
	b.WriteString("\n\n")
	if m.tab == TabShadow {
		b.WriteString(m.shadowView())
	} else {
		b.WriteString(m.pickerView())
	}

	body := strings.Split(b.String(), "\n")
	height := m.height
	if height < 1 {
		height = len(body) + 1
	}
	for len(body) < height-1 {
		body = append(body, "")
	}
	if len(body) > height-1 {
		body = body[:height-1]
	}
	return strings.Join(body, "\n") + "\n" + m.statusLine()
}

func (m model) titleBar() string {
	picker, shadow := tabStyle.Render("Picker"), tabStyle.Render("Shadow")
	if m.tab == TabShadow {
		shadow = activeTab.Render("Shadow")
	} else {
		picker = activeTab.Render("Picker")
	}
	return "  " + titleStyle.Render("hueforge") + "  " + picker + " | " + shadow
}

// panelLines is the text column to the right of the hue strip.
func (m model) panelLines() []string {
	out := m.live.out
	row := func(f Format, label, value string) string {
		style := labelStyle
		if f == out.Format {
			style = activeLabel
		}
		return style.Render(label) + value
	}
	s1, s2 := m.store.GradientStops()
	return []string{
		cell(cellHex(out.Color.RGBA), "", strings.Repeat(" ", 12)) + "  " + out.Active,
		"",
		row(FormatHex, "HEX", out.Hex),
		row(FormatHexa, "HEXA", out.Hexa),
		row(FormatRGB, "RGB", out.RGB),
		row(FormatRGBA, "RGBA", out.RGBA),
		row(FormatHSL, "HSL", out.HSL),
		row(FormatHSLA, "HSLA", out.HSLA),
		row(FormatHWB, "HWB", out.HWB),
		labelStyle.Render("Alpha") + fixed2(out.Color.RGBA.A),
		"",
		labelStyle.Render("Stop 1") + s1.Color + " @ " + s1.Position,
		labelStyle.Render("Stop 2") + s2.Color + " @ " + s2.Position,
		labelStyle.Render("Kind") + m.store.GradientKind().String() + " (" + m.store.GradientParam() + ")",
	}
}

func (m model) pickerView() string {
	l := m.layout
	hsv := m.live.out.Color.HSV
	surface := strings.Join(renderSurface(hsv, l.surfaceWidth, l.surfaceHeight), "\n")
	hue := strings.Join(renderHueStrip(hsv.H, l.surfaceHeight), "\n")
	gap := strings.Repeat(" ", panelGap)
	block := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Repeat(" ", l.surfaceLeft), surface, gap, hue, gap, strings.Join(m.panelLines(), "\n"))

	var b strings.Builder
	b.WriteString(block)
	blockHeight := lipgloss.Height(block)
	for row := l.surfaceTop + blockHeight; row < l.historyTop-1; row++ {
		b.WriteString("\n")
	}
	history := m.store.History()
	b.WriteString("\n  " + labelStyle.Render("History") + fmt.Sprintf("%d colors", len(history)))
	for _, line := range renderSwatches(history, l.swatchesPerRow(m.width), l.historyRows) {
		b.WriteString("\n  " + line)
	}
	b.WriteString("\n\n  " + m.live.out.Gradient)
	return b.String()
}

func (m model) shadowView() string {
	var b strings.Builder
	for i, s := range shadowSliders {
		marker := "  "
		style := labelStyle.Copy().Width(14)
		if i == m.shadowIndex {
			marker = "> "
			style = activeLabel.Copy().Width(14)
		}
		b.WriteString("  " + marker + style.Render(s.label) + s.display(&m.shadow) + "\n")
	}
	b.WriteString("\n")
	colors := []struct{ label, hex string }{
		{"Box", m.shadow.BoxColor},
		{"Box shadow", m.shadow.BoxShadowColor},
		{"Text", m.shadow.TextColor},
		{"Text shadow", m.shadow.TextShadowColor},
	}
	for _, c := range colors {
		rgb, _ := HexToRGB(c.hex)
		b.WriteString("    " + labelStyle.Copy().Width(14).Render(c.label) +
			cell(RGBToHex(rgb.R, rgb.G, rgb.B), "", "   ") + " " + c.hex + "\n")
	}
	b.WriteString("\n")
	for _, line := range strings.Split(m.shadow.CSS(), "\n") {
		b.WriteString("    " + line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m model) modeString() string {
	switch m.mode {
	case ModeManualInput:
		return "COLOR"
	case ModeGradientParam:
		return "PARAM"
	case ModeGradientPos:
		return "POSITIONS"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	}
	return "NORMAL"
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeManualInput, ModeGradientParam, ModeGradientPos, ModeFileInput:
		runes := []rune(m.editText)
		pos := m.editCursorPos
		if pos > len(runes) {
			pos = len(runes)
		}
		cursor := " "
		rest := ""
		if pos < len(runes) {
			cursor = string(runes[pos])
			rest = string(runes[pos+1:])
		}
		return m.modeString() + ": " + string(runes[:pos]) + inputStyle.Render(cursor) + rest
	case ModeConfirm:
		switch m.confirmAction {
		case ConfirmClearHistory:
			return "Clear color history? (y/n)"
		case ConfirmOverwriteFile:
			return "Overwrite " + m.pendingPath + "? (y/n)"
		default:
			return "Quit hueforge? (y/n)"
		}
	}
	if m.errorMessage != "" {
		return errorStyle.Render(m.errorMessage)
	}
	if m.successMessage != "" {
		return successStyle.Render(m.successMessage)
	}
	return m.modeString() + " | ? for help"
}

func (m model) helpView() string {
	visible := m.height - 1
	if visible < 1 {
		visible = len(helpLines)
	}
	start := m.helpScroll
	if start > len(helpLines) {
		start = len(helpLines)
	}
	end := start + visible
	if end > len(helpLines) {
		end = len(helpLines)
	}
	return strings.Join(helpLines[start:end], "\n")
}
