package widgets

import (
	"github.com/go-crystal/crystal/pkg/graphics"
	"github.com/go-crystal/crystal/pkg/layout"
)

// Widget is a view component that sizes itself within constraints and
// paints into the bounds its parent assigns.
//
// Layout must be called before Paint. Containers may call Layout on a
// child at most once per pass; the child records whatever it needs for
// painting.
type Widget interface {
	// Layout resolves the widget's size within the given constraints.
	Layout(constraints layout.Constraints) graphics.Size

	// Paint draws the widget into the given bounds on the canvas.
	Paint(canvas graphics.Canvas, bounds graphics.Rect)
}

// EdgeInsets describes padding on each side of a rectangle.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// EdgeInsetsAll returns equal insets on all four sides.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// Horizontal returns the combined left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the combined top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// InsetRect returns the rectangle shrunk by the insets.
func (e EdgeInsets) InsetRect(r graphics.Rect) graphics.Rect {
	return graphics.Rect{
		Left:   r.Left + e.Left,
		Top:    r.Top + e.Top,
		Right:  r.Right - e.Right,
		Bottom: r.Bottom - e.Bottom,
	}
}
