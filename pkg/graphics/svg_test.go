package graphics

import (
	"strings"
	"testing"
)

func TestEncodePathData(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.CubicTo(12, 0, 14, 2, 14, 4)
	p.Close()

	got := EncodePathData(p)
	want := "M 0 0 L 10 0 C 12 0 14 2 14 4 Z"
	if got != want {
		t.Errorf("EncodePathData = %q, want %q", got, want)
	}
}

func TestSVGCanvas_Document(t *testing.T) {
	canvas := NewSVGCanvas(Size{Width: 100, Height: 80})
	paint := DefaultPaint()
	paint.Color = ColorRed
	canvas.DrawRect(RectFromLTWH(10, 10, 30, 20), paint)

	doc := canvas.Document()
	if !strings.Contains(doc, `viewBox="0 0 100 80"`) {
		t.Errorf("missing viewBox: %s", doc)
	}
	if !strings.Contains(doc, `<rect x="10" y="10" width="30" height="20"`) {
		t.Errorf("missing rect: %s", doc)
	}
	if !strings.Contains(doc, `fill="#FF0000"`) {
		t.Errorf("missing fill color: %s", doc)
	}
	if !strings.HasSuffix(doc, "</svg>\n") {
		t.Errorf("document not terminated: %s", doc)
	}
}

func TestSVGCanvas_StrokePaint(t *testing.T) {
	canvas := NewSVGCanvas(Size{Width: 50, Height: 50})
	paint := DefaultPaint()
	paint.Style = PaintStyleStroke
	paint.StrokeWidth = 2

	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(50, 50)
	canvas.DrawPath(p, paint)

	doc := canvas.Document()
	if !strings.Contains(doc, `fill="none"`) {
		t.Errorf("stroke paint should not fill: %s", doc)
	}
	if !strings.Contains(doc, `stroke-width="2"`) {
		t.Errorf("missing stroke width: %s", doc)
	}
}

// TestSVGCanvas_OpenCutPath encodes an outline with a pen-up gap and
// verifies the path data has a mid-path move and no close.
func TestSVGCanvas_OpenCutPath(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 0)
	p.LineTo(35, 0)
	p.MoveTo(65, 0)
	p.LineTo(90, 0)

	data := EncodePathData(p)
	if strings.Count(data, "M ") != 2 {
		t.Errorf("want two move commands, got %q", data)
	}
	if strings.Contains(data, "Z") {
		t.Errorf("open path must not close, got %q", data)
	}
}

func TestSVGCanvas_ClipAndGroups(t *testing.T) {
	canvas := NewSVGCanvas(Size{Width: 100, Height: 100})
	canvas.Save()
	canvas.ClipRect(RectFromLTWH(0, 0, 50, 50))
	canvas.Translate(5, 5)
	canvas.DrawRect(RectFromLTWH(0, 0, 10, 10), DefaultPaint())
	canvas.Restore()

	doc := canvas.Document()
	if !strings.Contains(doc, `<clipPath id="clip1">`) {
		t.Errorf("missing clip def: %s", doc)
	}
	if !strings.Contains(doc, `clip-path="url(#clip1)"`) {
		t.Errorf("missing clip reference: %s", doc)
	}
	if !strings.Contains(doc, `transform="translate(5 5)"`) {
		t.Errorf("missing translate group: %s", doc)
	}
	if strings.Count(doc, "<g ") != strings.Count(doc, "</g>") {
		t.Errorf("unbalanced groups: %s", doc)
	}
}

func TestSVGCanvas_TextEscaping(t *testing.T) {
	canvas := NewSVGCanvas(Size{Width: 100, Height: 100})
	canvas.DrawText("a<b & c", Offset{X: 10, Y: 20}, DefaultPaint())

	doc := canvas.Document()
	if !strings.Contains(doc, "a&lt;b &amp; c") {
		t.Errorf("text not escaped: %s", doc)
	}
}
