package widgets

import (
	"github.com/go-crystal/crystal/pkg/graphics"
	"github.com/go-crystal/crystal/pkg/layout"
	"github.com/go-crystal/crystal/pkg/shape"
)

// If applies a wrapper to the widget only when the condition holds.
//
//	w := If(highlighted, box, func(w Widget) Widget {
//	    return &RoundCorners{Child: w, Corners: shape.AllCorners(), Radius: 6}
//	})
func If(condition bool, widget Widget, wrap func(Widget) Widget) Widget {
	if condition {
		return wrap(widget)
	}
	return widget
}

// RoundCorners clips its child to a rounded-rectangle outline, masking
// everything the child paints outside the shape.
type RoundCorners struct {
	Child     Widget
	Corners   shape.CornerSet
	Radius    float64
	Direction shape.Direction
}

// Layout passes constraints through to the child.
func (r *RoundCorners) Layout(constraints layout.Constraints) graphics.Size {
	if r.Child == nil {
		return constraints.Constrain(graphics.Size{})
	}
	return r.Child.Layout(constraints)
}

// Paint clips to the rounded outline of the bounds and paints the child.
func (r *RoundCorners) Paint(canvas graphics.Canvas, bounds graphics.Rect) {
	if r.Child == nil {
		return
	}
	canvas.Save()
	canvas.ClipPath(shape.Outline(bounds, r.Corners, r.Radius, nil, r.Direction))
	r.Child.Paint(canvas, bounds)
	canvas.Restore()
}
