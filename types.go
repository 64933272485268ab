package main

import "time"

type model struct {
	width          int
	height         int
	config         *Config
	store          *Store
	picker         *Picker
	live           *liveView
	layout         layout
	tab            Tab
	mode           Mode
	help           bool
	helpScroll     int
	editText       string
	editCursorPos  int
	editTarget     Mode
	fileOp         FileOperation
	confirmAction  ConfirmAction
	pendingPath    string
	shadow         ShadowParams
	shadowIndex    int
	errorMessage   string
	successMessage string
	now            func() time.Time
}

// liveView receives store notifications. It sits behind a pointer so the
// value-typed model copies made by bubbletea all see the latest outputs.
type liveView struct {
	out     Outputs
	updates int
}

// layout holds screen positions in terminal cells.
type layout struct {
	surfaceLeft   int
	surfaceTop    int
	surfaceWidth  int
	surfaceHeight int
	hueLeft       int
	historyTop    int
	swatchWidth   int
	swatchStride  int
	historyRows   int
}

func (l layout) surfaceRect() Rect {
	return Rect{
		Left:   float64(l.surfaceLeft),
		Top:    float64(l.surfaceTop),
		Width:  float64(l.surfaceWidth - 1),
		Height: float64(l.surfaceHeight - 1),
	}
}

func (l layout) hueRect() Rect {
	return Rect{
		Left:   float64(l.hueLeft),
		Top:    float64(l.surfaceTop),
		Width:  float64(hueStripWidth - 1),
		Height: float64(l.surfaceHeight - 1),
	}
}
