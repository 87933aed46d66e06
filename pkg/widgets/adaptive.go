package widgets

import (
	"github.com/go-crystal/crystal/pkg/graphics"
	"github.com/go-crystal/crystal/pkg/layout"
)

// AdaptiveStack arranges children in a row when they fit the available
// width and falls back to a column when they do not.
//
// The decision is made per layout pass from the children's loose sizes:
// if the summed widths plus spacing exceed the bounded max width, the
// stack switches to vertical. With unbounded width the row always fits.
type AdaptiveStack struct {
	Children []Widget
	Spacing  float64

	axis    layout.Axis
	sizes   []graphics.Size
	offsets []graphics.Offset
}

// Axis reports the direction chosen by the most recent Layout call.
func (a *AdaptiveStack) Axis() layout.Axis {
	return a.axis
}

// Layout measures the children, picks the axis, and records stacked
// offsets with each child centered on the cross axis.
func (a *AdaptiveStack) Layout(constraints layout.Constraints) graphics.Size {
	if len(a.Children) == 0 {
		a.sizes = nil
		a.offsets = nil
		return constraints.Constrain(graphics.Size{})
	}

	a.sizes = make([]graphics.Size, len(a.Children))
	loose := layout.Loose(constraints.MaxSize())
	for i, child := range a.Children {
		a.sizes[i] = child.Layout(loose)
	}

	a.axis = layout.AxisHorizontal
	if constraints.HasBoundedWidth() {
		total := 0.0
		for i, size := range a.sizes {
			if i > 0 {
				total += a.Spacing
			}
			total += size.Width
		}
		if total > constraints.MaxWidth {
			a.axis = layout.AxisVertical
		}
	}

	// A single unbounded run along the chosen axis.
	packing := layout.Pack(a.sizes, a.axis, layout.Unbounded, a.Spacing, 0)
	a.offsets = packing.Place(a.sizes, a.axis, a.Spacing, 0)
	return constraints.Constrain(packing.Size)
}

// Paint paints each child at its stacked offset.
func (a *AdaptiveStack) Paint(canvas graphics.Canvas, bounds graphics.Rect) {
	for i, child := range a.Children {
		offset := a.offsets[i]
		child.Paint(canvas, graphics.RectFromLTWH(
			bounds.Left+offset.X,
			bounds.Top+offset.Y,
			a.sizes[i].Width,
			a.sizes[i].Height,
		))
	}
}
