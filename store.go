package main

import (
	"io"
	"log"
)

// Store owns the canonical color and everything derived from it. All
// mutation goes through its methods; each one finishes regenerating
// outputs, updating history and persisting before it returns.
type Store struct {
	kv     KV
	logger *log.Logger

	color       Color
	format      Format
	manualInput string
	history     *History
	stop1       Color
	stop2       Color
	pos1        string
	pos2        string
	kind        GradientKind
	param       string

	outputs   Outputs
	observers []func(Outputs)
	notifying bool
	pending   bool
}

// NewStore restores state from kv. A nil logger discards log output.
func NewStore(kv KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	snap := loadSnapshot(kv)
	s := &Store{
		kv:          kv,
		logger:      logger,
		color:       Color{HSV: snap.HSV, RGBA: snap.Color},
		format:      snap.Format,
		manualInput: snap.ManualInput,
		history:     NewHistory(snap.History),
		stop1:       ColorFromRGBA(snap.Stop1, 0),
		stop2:       ColorFromRGBA(snap.Stop2, 0),
		pos1:        snap.Pos1,
		pos2:        snap.Pos2,
		kind:        snap.Kind,
		param:       snap.Param,
	}
	s.regenerate()
	return s
}

// Subscribe registers fn to receive the full output set after every
// mutation.
func (s *Store) Subscribe(fn func(Outputs)) {
	s.observers = append(s.observers, fn)
}

func (s *Store) Color() Color {
	return s.color
}

func (s *Store) Outputs() Outputs {
	return s.outputs
}

func (s *Store) Format() Format {
	return s.format
}

func (s *Store) ManualInput() string {
	return s.manualInput
}

func (s *Store) History() []string {
	return s.history.Entries()
}

func (s *Store) Gradient() string {
	return s.outputs.Gradient
}

func (s *Store) GradientStops() (GradientStop, GradientStop) {
	return GradientStop{Color: RGBAString(s.stop1.RGBA), Position: s.pos1},
		GradientStop{Color: RGBAString(s.stop2.RGBA), Position: s.pos2}
}

func (s *Store) GradientKind() GradientKind {
	return s.kind
}

func (s *Store) GradientParam() string {
	return s.param
}

// SetFromHsv derives RGB from hsv and keeps the current alpha.
func (s *Store) SetFromHsv(hsv HSV) {
	s.color = ColorFromHSV(hsv, s.color.RGBA.A)
	s.colorChanged()
}

// SetFromRgba derives HSV from rgba. Gray colors keep the previous hue.
func (s *Store) SetFromRgba(rgba RGBA) {
	s.color = ColorFromRGBA(rgba, s.color.HSV.H)
	s.colorChanged()
}

func (s *Store) SetAlpha(a float64) {
	s.color.RGBA.A = clamp01(a)
	s.colorChanged()
}

func (s *Store) SetFormat(f Format) {
	s.format = f
	s.changed()
}

// SetManualInput records text as the manual input and applies it if it
// parses. It reports whether the color changed. Text that does not parse
// is persisted but observers are not told.
func (s *Store) SetManualInput(text string) bool {
	s.manualInput = text
	p, ok := ParseColor(text)
	if !ok {
		s.persist()
		return false
	}
	s.SetFromRgba(p.RGBA)
	return true
}

// SelectHistory applies the n-th history entry as manual input.
func (s *Store) SelectHistory(n int) bool {
	entry, ok := s.history.At(n)
	if !ok {
		return false
	}
	return s.SetManualInput(entry)
}

// SetGradientStop copies the current color into stop 1 or 2.
func (s *Store) SetGradientStop(n int) {
	switch n {
	case 1:
		s.stop1 = s.color
	case 2:
		s.stop2 = s.color
	default:
		return
	}
	s.changed()
}

// SetGradientStopText parses text into stop n. Unparseable text changes
// nothing.
func (s *Store) SetGradientStopText(n int, text string) bool {
	p, ok := ParseColor(text)
	if !ok || (n != 1 && n != 2) {
		return false
	}
	c := ColorFromRGBA(p.RGBA, 0)
	if n == 1 {
		s.stop1 = c
	} else {
		s.stop2 = c
	}
	s.changed()
	return true
}

func (s *Store) SetGradientPositions(pos1, pos2 string) {
	s.pos1, s.pos2 = pos1, pos2
	s.changed()
}

func (s *Store) SetGradientKind(k GradientKind) {
	s.kind = k
	s.changed()
}

func (s *Store) SetGradientParam(param string) {
	s.param = param
	s.changed()
}

func (s *Store) ClearHistory() {
	s.history.Clear()
	s.changed()
}

// ImportHistory merges entries ahead of the current history and returns
// how many were offered.
func (s *Store) ImportHistory(entries []string) int {
	if len(entries) == 0 {
		return 0
	}
	s.history.Merge(entries)
	s.changed()
	return len(entries)
}

// colorChanged is the pipeline for a new canonical color.
func (s *Store) colorChanged() {
	s.regenerate()
	s.history.Add(s.outputs.RGBA)
	s.persist()
	s.notify()
}

// changed is the pipeline for everything else: outputs are rebuilt and
// persisted but history is left alone.
func (s *Store) changed() {
	s.regenerate()
	s.persist()
	s.notify()
}

func (s *Store) regenerate() {
	stop1, stop2 := s.GradientStops()
	gradient := ComposeGradient(s.kind, s.param, stop1, stop2)
	s.outputs = buildOutputs(s.color, s.format, gradient)
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		Color:       s.color.RGBA,
		HSV:         s.color.HSV,
		Format:      s.format,
		ManualInput: s.manualInput,
		History:     s.history.Entries(),
		Stop1:       s.stop1.RGBA,
		Stop2:       s.stop2.RGBA,
		Pos1:        s.pos1,
		Pos2:        s.pos2,
		Kind:        s.kind,
		Param:       s.param,
	}
}

func (s *Store) persist() {
	if err := saveSnapshot(s.kv, s.snapshot()); err != nil {
		s.logger.Printf("[ERROR] persist state: %v", err)
	}
}

// notify delivers outputs to observers. A mutation made by an observer is
// reported after the current round, never from inside it.
func (s *Store) notify() {
	if s.notifying {
		s.pending = true
		return
	}
	s.notifying = true
	defer func() { s.notifying = false }()
	for {
		s.pending = false
		out := s.outputs
		for _, fn := range s.observers {
			fn(out)
		}
		if !s.pending {
			return
		}
	}
}
