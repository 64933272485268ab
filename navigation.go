package main

// handleSurfaceKey nudges saturation and value by whole surface cells.
func (m *model) handleSurfaceKey(key string, speed int) {
	l := m.layout
	hsv := m.store.Color().HSV
	sStep := 1 / float64(l.surfaceWidth-1)
	vStep := 1 / float64(l.surfaceHeight-1)
	switch key {
	case "h", "left", "H", "shift+left":
		hsv.S = clamp01(hsv.S - sStep*float64(speed))
	case "l", "right", "L", "shift+right":
		hsv.S = clamp01(hsv.S + sStep*float64(speed))
	case "k", "up", "K", "shift+up":
		hsv.V = clamp01(hsv.V + vStep*float64(speed))
	case "j", "down", "J", "shift+down":
		hsv.V = clamp01(hsv.V - vStep*float64(speed))
	default:
		return
	}
	m.store.SetFromHsv(hsv)
}

// handleHueKey moves the hue by one degree, or ten with shift.
func (m *model) handleHueKey(key string) {
	hsv := m.store.Color().HSV
	switch key {
	case "-":
		hsv.H -= 1.0 / 360
	case "=":
		hsv.H += 1.0 / 360
	case "_":
		hsv.H -= 10.0 / 360
	case "+":
		hsv.H += 10.0 / 360
	default:
		return
	}
	m.store.SetFromHsv(HSV{H: clamp01(hsv.H), S: hsv.S, V: hsv.V})
}

func (m *model) handleAlphaKey(key string) {
	a := m.store.Color().RGBA.A
	switch key {
	case ",":
		a -= alphaStep
	case ".":
		a += alphaStep
	default:
		return
	}
	m.store.SetAlpha(float64(int(a*100+0.5)) / 100)
}

func (m *model) handleShadowKey(key string, speed int) {
	switch key {
	case "k", "up", "K", "shift+up":
		if m.shadowIndex > 0 {
			m.shadowIndex--
		}
	case "j", "down", "J", "shift+down":
		if m.shadowIndex < len(shadowSliders)-1 {
			m.shadowIndex++
		}
	case "h", "left", "H", "shift+left":
		shadowSliders[m.shadowIndex].nudge(&m.shadow, -speed)
	case "l", "right", "L", "shift+right":
		shadowSliders[m.shadowIndex].nudge(&m.shadow, speed)
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
