// Package shape builds rectangular outline paths with rounded corners and
// optional edge cuts.
//
// Corners and edges are named logically (leading/trailing) and resolved to
// physical left/right against an explicit layout direction; there is no
// ambient direction state. The outline builder is a pure function over its
// inputs and never fails: degenerate rectangles, zero radii, and oversized
// cuts all produce valid (possibly degenerate) paths.
package shape

import "fmt"

// Direction is the reading direction used to resolve logical leading and
// trailing positions to physical left and right.
type Direction int

const (
	// LeftToRight resolves leading to left and trailing to right.
	LeftToRight Direction = iota
	// RightToLeft resolves leading to right and trailing to left.
	RightToLeft
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// CornerSet selects which logical corners of a rectangle are rounded.
// The zero value rounds nothing.
type CornerSet struct {
	TopLeading     bool
	TopTrailing    bool
	BottomLeading  bool
	BottomTrailing bool
}

// AllCorners returns a CornerSet with every corner rounded.
func AllCorners() CornerSet {
	return CornerSet{
		TopLeading:     true,
		TopTrailing:    true,
		BottomLeading:  true,
		BottomTrailing: true,
	}
}

// TopCorners returns a CornerSet with only the two top corners rounded.
func TopCorners() CornerSet {
	return CornerSet{TopLeading: true, TopTrailing: true}
}

// BottomCorners returns a CornerSet with only the two bottom corners rounded.
func BottomCorners() CornerSet {
	return CornerSet{BottomLeading: true, BottomTrailing: true}
}

// ResolvedCorners names corners by physical screen position after the
// layout direction has been applied.
type ResolvedCorners struct {
	TopLeft     bool
	TopRight    bool
	BottomRight bool
	BottomLeft  bool
}

// Resolve maps logical corners to physical corners for the given direction.
func (c CornerSet) Resolve(dir Direction) ResolvedCorners {
	if dir == RightToLeft {
		return ResolvedCorners{
			TopLeft:     c.TopTrailing,
			TopRight:    c.TopLeading,
			BottomRight: c.BottomLeading,
			BottomLeft:  c.BottomTrailing,
		}
	}
	return ResolvedCorners{
		TopLeft:     c.TopLeading,
		TopRight:    c.TopTrailing,
		BottomRight: c.BottomTrailing,
		BottomLeft:  c.BottomLeading,
	}
}

// Edge names one side of a rectangle logically.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeading
	EdgeTrailing
)

// String returns a human-readable representation of the edge.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeading:
		return "leading"
	case EdgeTrailing:
		return "trailing"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// physicalEdge is an edge after direction resolution.
type physicalEdge int

const (
	edgeTop physicalEdge = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// resolve maps a logical edge to a physical edge for the given direction.
func (e Edge) resolve(dir Direction) physicalEdge {
	switch e {
	case EdgeTop:
		return edgeTop
	case EdgeBottom:
		return edgeBottom
	case EdgeLeading:
		if dir == RightToLeft {
			return edgeRight
		}
		return edgeLeft
	case EdgeTrailing:
		if dir == RightToLeft {
			return edgeLeft
		}
		return edgeRight
	default:
		return edgeTop
	}
}

// CutAlignment positions a cut along its edge.
//
// On horizontal edges, start is the leading end for the layout direction in
// effect. On vertical edges, start is the top.
type CutAlignment int

const (
	CutAlignmentStart CutAlignment = iota
	CutAlignmentCenter
	CutAlignmentEnd
)

// String returns a human-readable representation of the cut alignment.
func (a CutAlignment) String() string {
	switch a {
	case CutAlignmentStart:
		return "start"
	case CutAlignmentCenter:
		return "center"
	case CutAlignmentEnd:
		return "end"
	default:
		return fmt.Sprintf("CutAlignment(%d)", int(a))
	}
}

// Cut describes a gap left open along one edge of an outline, typically so
// a label can bridge the border stroke without the stroke passing behind it.
type Cut struct {
	Edge      Edge
	Alignment CutAlignment
	Length    float64
}
