package widgets

import (
	"math"

	"github.com/go-crystal/crystal/pkg/graphics"
	"github.com/go-crystal/crystal/pkg/layout"
	"github.com/go-crystal/crystal/pkg/shape"
)

// titleGap is the clearance between the title and the border stroke on
// either side of the cut.
const titleGap = 4

// TitledBorder draws a rounded border around its child with the title
// widget bridging a cut in the top edge.
//
// The border outline is built with a top-edge cut sized to the title plus
// clearance, so the stroke never passes behind the title. The title is
// centered vertically on the border line; the widget reserves half the
// title height above the border so nothing paints outside its bounds.
type TitledBorder struct {
	Title          Widget
	Child          Widget
	CornerRadius   float64
	LineWidth      float64
	Color          graphics.Color
	TitleAlignment shape.CutAlignment
	Direction      shape.Direction
	Insets         EdgeInsets // Content insets inside the border

	titleSize graphics.Size
	childSize graphics.Size
}

// TitledBorderOf creates a titled border with a Label title and sensible
// stroke and inset defaults.
func TitledBorderOf(title string, child Widget) *TitledBorder {
	return &TitledBorder{
		Title:        &Label{Text: title},
		Child:        child,
		CornerRadius: 8,
		LineWidth:    1,
		Color:        graphics.ColorBlack,
		Insets:       EdgeInsetsAll(12),
	}
}

// Layout sizes the border to its child plus insets, reserving room above
// the border line for the title half that straddles it.
func (t *TitledBorder) Layout(constraints layout.Constraints) graphics.Size {
	if t.Title != nil {
		t.titleSize = t.Title.Layout(layout.Loose(constraints.MaxSize()))
	} else {
		t.titleSize = graphics.Size{}
	}

	headroom := t.titleSize.Height / 2
	inner := constraints.Deflate(t.Insets.Horizontal(), t.Insets.Vertical()+headroom)
	if t.Child != nil {
		t.childSize = t.Child.Layout(inner)
	} else {
		t.childSize = graphics.Size{}
	}

	// Wide enough for the child, and for the title between rounded corners.
	minTitleWidth := t.titleSize.Width + 2*(titleGap+t.CornerRadius+t.LineWidth)
	width := math.Max(t.childSize.Width+t.Insets.Horizontal(), minTitleWidth)
	height := t.childSize.Height + t.Insets.Vertical() + headroom
	return constraints.Constrain(graphics.Size{Width: width, Height: height})
}

// Paint strokes the cut outline, paints the title bridging the gap, and
// paints the child inside the content insets.
func (t *TitledBorder) Paint(canvas graphics.Canvas, bounds graphics.Rect) {
	headroom := t.titleSize.Height / 2
	half := t.LineWidth / 2
	borderRect := graphics.Rect{
		Left:   bounds.Left + half,
		Top:    bounds.Top + headroom + half,
		Right:  bounds.Right - half,
		Bottom: bounds.Bottom - half,
	}

	var cut *shape.Cut
	if t.Title != nil && t.titleSize.Width > 0 {
		cut = &shape.Cut{
			Edge:      shape.EdgeTop,
			Alignment: t.TitleAlignment,
			Length:    t.titleSize.Width + 2*titleGap,
		}
	}

	paint := graphics.DefaultPaint()
	paint.Color = t.Color
	paint.Style = graphics.PaintStyleStroke
	paint.StrokeWidth = t.LineWidth
	outline := shape.Outline(borderRect, shape.AllCorners(), t.CornerRadius, cut, t.Direction)
	canvas.DrawPath(outline, paint)

	if cut != nil {
		if lo, _, ok := cut.Span(borderRect, shape.AllCorners(), t.CornerRadius, t.Direction); ok {
			t.Title.Paint(canvas, graphics.RectFromLTWH(
				lo+titleGap,
				borderRect.Top-t.titleSize.Height/2,
				t.titleSize.Width,
				t.titleSize.Height,
			))
		}
	}

	if t.Child != nil {
		content := t.Insets.InsetRect(borderRect)
		t.Child.Paint(canvas, graphics.RectFromLTWH(
			content.Left, content.Top, t.childSize.Width, t.childSize.Height,
		))
	}
}
