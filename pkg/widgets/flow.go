package widgets

import (
	"fmt"

	"github.com/go-crystal/crystal/pkg/graphics"
	"github.com/go-crystal/crystal/pkg/layout"
)

// Flow lays out children in runs, wrapping to the next run when space
// along the main axis is exhausted.
//
// Flow requires bounded constraints on the main axis (width for
// horizontal, height for vertical); otherwise there is nothing to wrap
// against and Layout panics with guidance. The cross axis may be
// unbounded: Flow sizes itself to fit all runs.
//
// Use Spacing for gaps between items within a run and RunSpacing for gaps
// between runs. Children keep their input order; each child is centered
// across its run's cross extent.
type Flow struct {
	Children   []Widget
	Axis       layout.Axis
	Spacing    float64
	RunSpacing float64

	sizes   []graphics.Size
	offsets []graphics.Offset
}

// FlowOf creates a horizontal Flow with the given spacing and children.
func FlowOf(spacing, runSpacing float64, children ...Widget) *Flow {
	return &Flow{
		Children:   children,
		Axis:       layout.AxisHorizontal,
		Spacing:    spacing,
		RunSpacing: runSpacing,
	}
}

// Layout measures the children loosely, packs them into runs, and records
// each child's placed offset for painting.
func (f *Flow) Layout(constraints layout.Constraints) graphics.Size {
	maxMain := f.Axis.Main(constraints.MaxSize())
	if maxMain == layout.Unbounded {
		axisName := "width"
		if f.Axis == layout.AxisVertical {
			axisName = "height"
		}
		panic(fmt.Sprintf(
			"Flow (%s) used with unbounded %s.\n\n"+
				"Flow needs a finite main axis to determine when to wrap to a new run.\n\n"+
				"Solutions:\n"+
				"- Ensure the parent provides bounded %s constraints\n"+
				"- Wrap the Flow in a SizedBox with a fixed %s",
			f.Axis, axisName, axisName, axisName,
		))
	}

	if len(f.Children) == 0 {
		f.sizes = nil
		f.offsets = nil
		return constraints.Constrain(graphics.Size{})
	}

	f.sizes = make([]graphics.Size, len(f.Children))
	loose := layout.Loose(constraints.MaxSize())
	for i, child := range f.Children {
		f.sizes[i] = child.Layout(loose)
	}

	packing := layout.Pack(f.sizes, f.Axis, maxMain, f.Spacing, f.RunSpacing)
	f.offsets = packing.Place(f.sizes, f.Axis, f.Spacing, f.RunSpacing)
	return constraints.Constrain(packing.Size)
}

// Paint paints every child at its packed offset within the bounds.
func (f *Flow) Paint(canvas graphics.Canvas, bounds graphics.Rect) {
	for i, child := range f.Children {
		offset := f.offsets[i]
		child.Paint(canvas, graphics.RectFromLTWH(
			bounds.Left+offset.X,
			bounds.Top+offset.Y,
			f.sizes[i].Width,
			f.sizes[i].Height,
		))
	}
}
