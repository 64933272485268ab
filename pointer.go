package main

// Point is a pointer position in the same units as Rect.
type Point struct {
	X, Y float64
}

// Rect is an on-screen area given by its top-left corner and size.
type Rect struct {
	Left, Top, Width, Height float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Left+r.Width &&
		p.Y >= r.Top && p.Y <= r.Top+r.Height
}

func ratio(offset, size float64) float64 {
	if size <= 0 {
		return 0
	}
	return offset / size
}

// SurfaceAt maps p on the saturation/value surface r. Saturation grows to
// the right and value grows upward; points outside r are clamped.
func SurfaceAt(p Point, r Rect) (s, v float64) {
	s = clamp01(ratio(p.X-r.Left, r.Width))
	v = clamp01(1 - ratio(p.Y-r.Top, r.Height))
	return s, v
}

// HueAt maps the vertical position of p on the hue strip r. The
// horizontal position is ignored.
func HueAt(p Point, r Rect) float64 {
	return clamp01(1 - ratio(p.Y-r.Top, r.Height))
}

// Picker tracks drags over the surface and the hue strip and turns them
// into HSV updates on a Store. One logical pointer is assumed.
type Picker struct {
	store           *Store
	Surface         Rect
	Hue             Rect
	draggingSurface bool
	draggingHue     bool
}

func NewPicker(store *Store, surface, hue Rect) *Picker {
	return &Picker{store: store, Surface: surface, Hue: hue}
}

// Press starts a drag if p is over the surface or the hue strip and
// applies one update immediately. It reports whether p hit either.
func (pk *Picker) Press(p Point) bool {
	hit := false
	if pk.Surface.Contains(p) {
		pk.draggingSurface = true
		pk.applySurface(p)
		hit = true
	}
	if pk.Hue.Contains(p) {
		pk.draggingHue = true
		pk.applyHue(p)
		hit = true
	}
	return hit
}

// Move applies every mapping whose drag is active.
func (pk *Picker) Move(p Point) {
	if pk.draggingSurface {
		pk.applySurface(p)
	}
	if pk.draggingHue {
		pk.applyHue(p)
	}
}

// Release ends both drags, wherever the pointer is.
func (pk *Picker) Release() {
	pk.draggingSurface = false
	pk.draggingHue = false
}

func (pk *Picker) Dragging() (surface, hue bool) {
	return pk.draggingSurface, pk.draggingHue
}

func (pk *Picker) applySurface(p Point) {
	s, v := SurfaceAt(p, pk.Surface)
	hsv := pk.store.Color().HSV
	hsv.S, hsv.V = s, v
	pk.store.SetFromHsv(hsv)
}

func (pk *Picker) applyHue(p Point) {
	hsv := pk.store.Color().HSV
	hsv.H = HueAt(p, pk.Hue)
	pk.store.SetFromHsv(hsv)
}
