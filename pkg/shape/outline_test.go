package shape

import (
	"math"
	"testing"

	"github.com/go-crystal/crystal/pkg/graphics"
)

func ops(path *graphics.Path) []graphics.PathOp {
	out := make([]graphics.PathOp, len(path.Commands))
	for i, cmd := range path.Commands {
		out[i] = cmd.Op
	}
	return out
}

func opsEqual(got, want []graphics.PathOp) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestOutline_ZeroRadius expects a plain rectangle: four lines and a
// close, no curves.
func TestOutline_ZeroRadius(t *testing.T) {
	rect := graphics.RectFromLTWH(0, 0, 100, 100)
	path := Outline(rect, AllCorners(), 0, nil, LeftToRight)

	want := []graphics.PathOp{
		graphics.PathOpMoveTo,
		graphics.PathOpLineTo,
		graphics.PathOpLineTo,
		graphics.PathOpLineTo,
		graphics.PathOpLineTo,
		graphics.PathOpClose,
	}
	if !opsEqual(ops(path), want) {
		t.Fatalf("ops = %v, want %v", ops(path), want)
	}
	if path.Commands[0].Args[0] != 0 || path.Commands[0].Args[1] != 0 {
		t.Errorf("trace starts at %v, want the top-left corner", path.Commands[0].Args)
	}
}

// TestOutline_AllCornersRounded expects four line+curve pairs and a close
// for an unclamped radius.
func TestOutline_AllCornersRounded(t *testing.T) {
	rect := graphics.RectFromLTWH(0, 0, 100, 100)
	path := Outline(rect, AllCorners(), 20, nil, LeftToRight)

	want := []graphics.PathOp{
		graphics.PathOpMoveTo,
		graphics.PathOpLineTo, graphics.PathOpCubicTo,
		graphics.PathOpLineTo, graphics.PathOpCubicTo,
		graphics.PathOpLineTo, graphics.PathOpCubicTo,
		graphics.PathOpLineTo, graphics.PathOpCubicTo,
		graphics.PathOpClose,
	}
	if !opsEqual(ops(path), want) {
		t.Fatalf("ops = %v, want %v", ops(path), want)
	}

	// Radius 20 on a 100x100 rect is unclamped: the trace starts at the
	// top-left curve end and the first line stops where the top-right
	// curve begins.
	if !approx(path.Commands[0].Args[0], 20) {
		t.Errorf("start x = %v, want 20", path.Commands[0].Args[0])
	}
	if !approx(path.Commands[1].Args[0], 80) {
		t.Errorf("top edge ends at x = %v, want 80", path.Commands[1].Args[0])
	}
	tr := path.Commands[2]
	if !approx(tr.Args[4], 100) || !approx(tr.Args[5], 20) {
		t.Errorf("top-right curve ends at (%v, %v), want (100, 20)", tr.Args[4], tr.Args[5])
	}
}

// TestOutline_ControlPointOffset verifies the control points sit
// radius/(pi*0.75) from the corner. The resulting curve only approximates
// a circular arc; the offset intentionally differs from the exact-circle
// cubic constant, and "fixing" it would change the rendered shape.
func TestOutline_ControlPointOffset(t *testing.T) {
	const radius = 20.0
	rect := graphics.RectFromLTWH(0, 0, 100, 100)
	path := Outline(rect, AllCorners(), radius, nil, LeftToRight)

	offset := radius / (math.Pi * 0.75)
	tr := path.Commands[2] // top-right CubicTo
	if !approx(tr.Args[0], 100-offset) || !approx(tr.Args[1], 0) {
		t.Errorf("control1 = (%v, %v), want (%v, 0)", tr.Args[0], tr.Args[1], 100-offset)
	}
	if !approx(tr.Args[2], 100) || !approx(tr.Args[3], offset) {
		t.Errorf("control2 = (%v, %v), want (100, %v)", tr.Args[2], tr.Args[3], offset)
	}

	// Not the exact-circle constant: that would put the control point
	// radius*(1-0.5523) from the corner.
	exactCircle := radius * (1 - 0.5523)
	if math.Abs(offset-exactCircle) < 0.1 {
		t.Fatalf("control offset %v unexpectedly matches the exact-circle constant %v", offset, exactCircle)
	}
}

// TestOutline_RadiusClamped uses a radius larger than half the longer
// side and verifies every emitted coordinate stays within the rectangle.
func TestOutline_RadiusClamped(t *testing.T) {
	rect := graphics.RectFromLTWH(0, 0, 100, 60)
	path := Outline(rect, AllCorners(), 100, nil, LeftToRight)

	// Clamp is min(radius, longerSide/2) = 50.
	if !approx(path.Commands[0].Args[0], 50) {
		t.Errorf("start x = %v, want clamped radius 50", path.Commands[0].Args[0])
	}
	for i, cmd := range path.Commands {
		for j := 0; j+1 < len(cmd.Args); j += 2 {
			x, y := cmd.Args[j], cmd.Args[j+1]
			if x < rect.Left-1e-9 || x > rect.Right+1e-9 || y < rect.Top-1e-9 || y > rect.Bottom+1e-9 {
				t.Errorf("command %d point (%v, %v) escapes rect", i, x, y)
			}
		}
	}
}

// TestOutline_TopCutCentered verifies a centered top cut leaves a gap of
// exactly the cut length around the edge midpoint and that the path is
// left open.
func TestOutline_TopCutCentered(t *testing.T) {
	rect := graphics.RectFromLTWH(0, 0, 100, 100)
	cut := &Cut{Edge: EdgeTop, Alignment: CutAlignmentCenter, Length: 30}
	path := Outline(rect, AllCorners(), 10, cut, LeftToRight)

	if path.IsClosed() {
		t.Fatal("cut outline must not be closed")
	}

	// The top edge trace: line to the gap start, pen up to the gap end.
	if path.Commands[1].Op != graphics.PathOpLineTo || !approx(path.Commands[1].Args[0], 35) {
		t.Errorf("gap starts at %v, want 35", path.Commands[1].Args)
	}
	if path.Commands[2].Op != graphics.PathOpMoveTo || !approx(path.Commands[2].Args[0], 65) {
		t.Errorf("gap ends at %v, want 65", path.Commands[2].Args)
	}
}

func TestOutline_CutAlignments(t *testing.T) {
	rect := graphics.RectFromLTWH(0, 0, 100, 100)

	tests := []struct {
		name   string
		align  CutAlignment
		lo, hi float64
	}{
		{"start", CutAlignmentStart, 10, 30},
		{"center", CutAlignmentCenter, 40, 60},
		{"end", CutAlignmentEnd, 70, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cut := Cut{Edge: EdgeTop, Alignment: tt.align, Length: 20}
			lo, hi, ok := cut.Span(rect, AllCorners(), 10, LeftToRight)
			if !ok {
				t.Fatal("cut not honored")
			}
			if !approx(lo, tt.lo) || !approx(hi, tt.hi) {
				t.Errorf("span = [%v, %v], want [%v, %v]", lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

// TestOutline_CutLengthClamped verifies an oversized cut is clamped to
// the straight run between the rounded corners.
func TestOutline_CutLengthClamped(t *testing.T) {
	rect := graphics.RectFromLTWH(0, 0, 100, 100)
	cut := Cut{Edge: EdgeTop, Alignment: CutAlignmentCenter, Length: 500}
	lo, hi, ok := cut.Span(rect, AllCorners(), 10, LeftToRight)
	if !ok {
		t.Fatal("cut not honored")
	}
	if !approx(lo, 10) || !approx(hi, 90) {
		t.Errorf("span = [%v, %v], want the full straight run [10, 90]", lo, hi)
	}
}

// TestOutline_CutNeedsRoundedPair: a cut on an edge without both corners
// rounded is ignored and the path stays closed.
func TestOutline_CutNeedsRoundedPair(t *testing.T) {
	rect := graphics.RectFromLTWH(0, 0, 100, 100)
	cut := &Cut{Edge: EdgeTop, Alignment: CutAlignmentCenter, Length: 30}
	path := Outline(rect, BottomCorners(), 10, cut, LeftToRight)

	if !path.IsClosed() {
		t.Error("ignored cut must leave the path closed")
	}
	for _, cmd := range path.Commands[1:] {
		if cmd.Op == graphics.PathOpMoveTo {
			t.Error("ignored cut must not lift the pen")
		}
	}
}

func TestOutline_VerticalEdgeCut(t *testing.T) {
	rect := graphics.RectFromLTWH(0, 0, 100, 100)
	cut := Cut{Edge: EdgeLeading, Alignment: CutAlignmentStart, Length: 20}
	lo, hi, ok := cut.Span(rect, AllCorners(), 10, LeftToRight)
	if !ok {
		t.Fatal("cut not honored")
	}
	// Vertical edges measure from the top.
	if !approx(lo, 10) || !approx(hi, 30) {
		t.Errorf("span = [%v, %v], want [10, 30]", lo, hi)
	}
}

func TestOutline_Degenerate(t *testing.T) {
	// Zero-size rect: still a valid, finite path.
	path := Outline(graphics.Rect{}, AllCorners(), 10, nil, LeftToRight)
	if !path.IsClosed() {
		t.Error("degenerate outline should close")
	}
	for _, cmd := range path.Commands {
		for _, arg := range cmd.Args {
			if math.IsNaN(arg) || math.IsInf(arg, 0) {
				t.Fatalf("degenerate outline produced %v", arg)
			}
		}
	}

	// Inverted rect collapses instead of tracing backwards.
	inverted := graphics.Rect{Left: 50, Top: 50, Right: 10, Bottom: 10}
	path = Outline(inverted, AllCorners(), 5, nil, LeftToRight)
	for _, cmd := range path.Commands {
		for j := 0; j+1 < len(cmd.Args); j += 2 {
			if cmd.Args[j] != 50 || cmd.Args[j+1] != 50 {
				t.Fatalf("inverted rect traced beyond its origin: %v", cmd.Args)
			}
		}
	}
}
