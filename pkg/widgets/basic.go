package widgets

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-crystal/crystal/pkg/graphics"
	"github.com/go-crystal/crystal/pkg/layout"
)

// Box is a leaf widget that fills its bounds with a color, optionally
// stroked with a border.
type Box struct {
	Width       float64
	Height      float64
	Color       graphics.Color
	BorderColor graphics.Color
	BorderWidth float64
}

// Layout returns the box's requested size constrained by the parent.
func (b *Box) Layout(constraints layout.Constraints) graphics.Size {
	return constraints.Constrain(graphics.Size{Width: b.Width, Height: b.Height})
}

// Paint fills the bounds and strokes the border if one is configured.
func (b *Box) Paint(canvas graphics.Canvas, bounds graphics.Rect) {
	if b.Color != graphics.ColorTransparent {
		paint := graphics.DefaultPaint()
		paint.Color = b.Color
		canvas.DrawRect(bounds, paint)
	}
	if b.BorderWidth > 0 && b.BorderColor != graphics.ColorTransparent {
		paint := graphics.DefaultPaint()
		paint.Color = b.BorderColor
		paint.Style = graphics.PaintStyleStroke
		paint.StrokeWidth = b.BorderWidth
		canvas.DrawRect(bounds, paint)
	}
}

// SizedBox constrains its child to a specific width and/or height.
//
// A zero dimension is left to the child. SizedBox without a child is an
// empty spacer.
type SizedBox struct {
	Width  float64
	Height float64
	Child  Widget

	childSize graphics.Size
}

// Layout forces the configured dimensions onto the child.
func (s *SizedBox) Layout(constraints layout.Constraints) graphics.Size {
	child := constraints
	if s.Width > 0 {
		child.MinWidth = s.Width
		child.MaxWidth = s.Width
	}
	if s.Height > 0 {
		child.MinHeight = s.Height
		child.MaxHeight = s.Height
	}
	if s.Child == nil {
		return constraints.Constrain(graphics.Size{Width: s.Width, Height: s.Height})
	}
	s.childSize = s.Child.Layout(child)
	return constraints.Constrain(s.childSize)
}

// Paint paints the child, if any, at the top-left of the bounds.
func (s *SizedBox) Paint(canvas graphics.Canvas, bounds graphics.Rect) {
	if s.Child == nil {
		return
	}
	s.Child.Paint(canvas, graphics.RectFromLTWH(bounds.Left, bounds.Top, s.childSize.Width, s.childSize.Height))
}

// Padding insets its child by the given edge insets.
type Padding struct {
	Insets EdgeInsets
	Child  Widget

	childSize graphics.Size
}

// Layout lays the child out in deflated constraints and adds the insets back.
func (p *Padding) Layout(constraints layout.Constraints) graphics.Size {
	inner := constraints.Deflate(p.Insets.Horizontal(), p.Insets.Vertical())
	if p.Child != nil {
		p.childSize = p.Child.Layout(inner)
	}
	return constraints.Constrain(graphics.Size{
		Width:  p.childSize.Width + p.Insets.Horizontal(),
		Height: p.childSize.Height + p.Insets.Vertical(),
	})
}

// Paint paints the child inside the inset bounds.
func (p *Padding) Paint(canvas graphics.Canvas, bounds graphics.Rect) {
	if p.Child == nil {
		return
	}
	inner := p.Insets.InsetRect(bounds)
	p.Child.Paint(canvas, graphics.RectFromLTWH(inner.Left, inner.Top, p.childSize.Width, p.childSize.Height))
}

// labelFace is the bitmap face used for label measurement and drawing.
var labelFace = basicfont.Face7x13

// Label is a single-line text leaf drawn with a fixed 7x13 bitmap face.
type Label struct {
	Text  string
	Color graphics.Color
}

// Layout measures the text with the label face.
func (l *Label) Layout(constraints layout.Constraints) graphics.Size {
	metrics := labelFace.Metrics()
	width := float64(font.MeasureString(labelFace, l.Text)) / 64
	height := float64(metrics.Height) / 64
	return constraints.Constrain(graphics.Size{Width: width, Height: height})
}

// Paint draws the text with its baseline derived from the face ascent.
func (l *Label) Paint(canvas graphics.Canvas, bounds graphics.Rect) {
	color := l.Color
	if color == graphics.ColorTransparent {
		color = graphics.ColorBlack
	}
	paint := graphics.DefaultPaint()
	paint.Color = color
	ascent := float64(labelFace.Metrics().Ascent) / 64
	canvas.DrawText(l.Text, graphics.Offset{X: bounds.Left, Y: bounds.Top + ascent}, paint)
}
