package widgets

import (
	"github.com/go-crystal/crystal/pkg/graphics"
	"github.com/go-crystal/crystal/pkg/layout"
)

// SizeReader wraps a child and reports its laid-out size via a callback.
//
// The callback fires on every Layout call, after the child has resolved
// its size. SizeReader adds no visual output of its own.
type SizeReader struct {
	Child  Widget
	OnSize func(graphics.Size)

	childSize graphics.Size
}

// Layout lays the child out, reports the resulting size, and passes it on.
func (s *SizeReader) Layout(constraints layout.Constraints) graphics.Size {
	if s.Child != nil {
		s.childSize = s.Child.Layout(constraints)
	} else {
		s.childSize = constraints.Constrain(graphics.Size{})
	}
	if s.OnSize != nil {
		s.OnSize(s.childSize)
	}
	return s.childSize
}

// Paint paints the child unchanged.
func (s *SizeReader) Paint(canvas graphics.Canvas, bounds graphics.Rect) {
	if s.Child != nil {
		s.Child.Paint(canvas, bounds)
	}
}
