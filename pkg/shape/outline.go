package shape

import (
	"math"

	"github.com/go-crystal/crystal/pkg/graphics"
)

// controlDivisor converts a corner radius into the offset of each bezier
// control point from its corner. The resulting curve visually matches a
// circular arc but is an approximation: the divisor is deliberately not
// the exact-circle cubic constant (~0.5523 of the radius), and changing it
// would alter the rendered corner shape.
const controlDivisor = math.Pi * 0.75

// gapSpan is a resolved cut: an interval left open on one physical edge.
type gapSpan struct {
	edge   physicalEdge
	lo, hi float64
}

// Outline traces the rectangle clockwise and returns its outline path.
//
// Corners in the set are rounded with the given radius, clamped to half
// the rectangle's longer side. Control points sit radius/controlDivisor
// from each corner along the adjoining edges. Unrounded corners are traced
// with plain lines.
//
// A non-nil cut leaves a gap in the matching edge: the trace draws up to
// the gap, lifts the pen across it, and resumes. The cut is honored only
// when both corners of its edge are rounded, its length is clamped to the
// edge's straight run, and when a gap is emitted the path is left open
// instead of closed.
//
// Outline is total: degenerate rectangles and zero radii produce valid
// (possibly degenerate) outlines.
func Outline(rect graphics.Rect, corners CornerSet, radius float64, cut *Cut, dir Direction) *graphics.Path {
	// Inverted rects collapse to zero extent rather than tracing backwards.
	if rect.Right < rect.Left {
		rect.Right = rect.Left
	}
	if rect.Bottom < rect.Top {
		rect.Bottom = rect.Top
	}

	rc := corners.Resolve(dir)
	longer := math.Max(rect.Width(), rect.Height())
	r := math.Min(math.Max(radius, 0), longer/2)

	ctrl := 0.0
	if r > 0 {
		ctrl = r / controlDivisor
	}

	cornerRadius := func(rounded bool) float64 {
		if rounded {
			return r
		}
		return 0
	}
	rTL := cornerRadius(rc.TopLeft)
	rTR := cornerRadius(rc.TopRight)
	rBR := cornerRadius(rc.BottomRight)
	rBL := cornerRadius(rc.BottomLeft)

	L, T, R, B := rect.Left, rect.Top, rect.Right, rect.Bottom
	gap := resolveCut(cut, dir, rc, rTL, rTR, rBR, rBL, rect)

	path := graphics.NewPath()
	path.MoveTo(L+rTL, T)
	open := false

	// Top edge, left to right.
	if gap != nil && gap.edge == edgeTop {
		path.LineTo(gap.lo, T)
		path.MoveTo(gap.hi, T)
		open = true
	}
	path.LineTo(R-rTR, T)
	if rTR > 0 {
		path.CubicTo(R-ctrl, T, R, T+ctrl, R, T+rTR)
	}

	// Right edge, top to bottom.
	if gap != nil && gap.edge == edgeRight {
		path.LineTo(R, gap.lo)
		path.MoveTo(R, gap.hi)
		open = true
	}
	path.LineTo(R, B-rBR)
	if rBR > 0 {
		path.CubicTo(R, B-ctrl, R-ctrl, B, R-rBR, B)
	}

	// Bottom edge, right to left: the gap interval is crossed high end first.
	if gap != nil && gap.edge == edgeBottom {
		path.LineTo(gap.hi, B)
		path.MoveTo(gap.lo, B)
		open = true
	}
	path.LineTo(L+rBL, B)
	if rBL > 0 {
		path.CubicTo(L+ctrl, B, L, B-ctrl, L, B-rBL)
	}

	// Left edge, bottom to top.
	if gap != nil && gap.edge == edgeLeft {
		path.LineTo(L, gap.hi)
		path.MoveTo(L, gap.lo)
		open = true
	}
	path.LineTo(L, T+rTL)
	if rTL > 0 {
		path.CubicTo(L, T+ctrl, L+ctrl, T, L+rTL, T)
	}

	if !open {
		path.Close()
	}
	return path
}

// Span returns the physical interval the cut would leave open on an
// outline built with the same parameters. The coordinates are horizontal
// for top/bottom edges and vertical for leading/trailing edges. ok is
// false when the cut would not be honored (no rounded corner pair, no
// straight run, or a non-positive length).
func (c Cut) Span(rect graphics.Rect, corners CornerSet, radius float64, dir Direction) (lo, hi float64, ok bool) {
	if rect.Right < rect.Left {
		rect.Right = rect.Left
	}
	if rect.Bottom < rect.Top {
		rect.Bottom = rect.Top
	}
	rc := corners.Resolve(dir)
	longer := math.Max(rect.Width(), rect.Height())
	r := math.Min(math.Max(radius, 0), longer/2)
	cornerRadius := func(rounded bool) float64 {
		if rounded {
			return r
		}
		return 0
	}
	gap := resolveCut(&c, dir, rc,
		cornerRadius(rc.TopLeft), cornerRadius(rc.TopRight),
		cornerRadius(rc.BottomRight), cornerRadius(rc.BottomLeft), rect)
	if gap == nil {
		return 0, 0, false
	}
	return gap.lo, gap.hi, true
}

// resolveCut validates a cut against the resolved corners and returns the
// physical interval to leave open, or nil if no gap applies.
func resolveCut(cut *Cut, dir Direction, rc ResolvedCorners, rTL, rTR, rBR, rBL float64, rect graphics.Rect) *gapSpan {
	if cut == nil || cut.Length <= 0 {
		return nil
	}
	edge := cut.Edge.resolve(dir)

	// The cut only applies between a rounded corner pair.
	var lo, hi float64
	switch edge {
	case edgeTop:
		if !rc.TopLeft || !rc.TopRight {
			return nil
		}
		lo, hi = rect.Left+rTL, rect.Right-rTR
	case edgeRight:
		if !rc.TopRight || !rc.BottomRight {
			return nil
		}
		lo, hi = rect.Top+rTR, rect.Bottom-rBR
	case edgeBottom:
		if !rc.BottomLeft || !rc.BottomRight {
			return nil
		}
		lo, hi = rect.Left+rBL, rect.Right-rBR
	case edgeLeft:
		if !rc.TopLeft || !rc.BottomLeft {
			return nil
		}
		lo, hi = rect.Top+rTL, rect.Bottom-rBL
	}

	span := hi - lo
	if span <= 0 {
		return nil
	}
	length := math.Min(cut.Length, span)

	align := cut.Alignment
	// Horizontal edges run leading to trailing; mirror for right-to-left.
	if (edge == edgeTop || edge == edgeBottom) && dir == RightToLeft {
		switch align {
		case CutAlignmentStart:
			align = CutAlignmentEnd
		case CutAlignmentEnd:
			align = CutAlignmentStart
		}
	}

	switch align {
	case CutAlignmentStart:
		return &gapSpan{edge: edge, lo: lo, hi: lo + length}
	case CutAlignmentEnd:
		return &gapSpan{edge: edge, lo: hi - length, hi: hi}
	default:
		mid := (lo + hi) * 0.5
		return &gapSpan{edge: edge, lo: mid - length*0.5, hi: mid + length*0.5}
	}
}
