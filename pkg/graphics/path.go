package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathFillRule determines how path interiors are calculated for filling.
type PathFillRule int

const (
	// FillRuleNonZero fills regions with nonzero winding count.
	FillRuleNonZero PathFillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	// Useful for creating holes: nested shapes alternate between filled/unfilled.
	FillRuleEvenOdd
)

// String returns a human-readable representation of the path fill rule.
func (r PathFillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("PathFillRule(%d)", int(r))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close methods.
// Use with Canvas.DrawPath to stroke/fill, or Canvas.ClipPath to clip.
type Path struct {
	Commands []PathCommand
	FillRule PathFillRule
}

// NewPath creates a new empty path with nonzero fill rule.
func NewPath() *Path {
	return &Path{FillRule: FillRuleNonZero}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// IsClosed reports whether the path ends with a Close command.
func (p *Path) IsClosed() bool {
	if len(p.Commands) == 0 {
		return false
	}
	return p.Commands[len(p.Commands)-1].Op == PathOpClose
}

// Transform returns a copy of the path with all coordinates offset by (dx, dy).
func (p *Path) Transform(dx, dy float64) *Path {
	out := &Path{
		Commands: make([]PathCommand, len(p.Commands)),
		FillRule: p.FillRule,
	}
	for i, cmd := range p.Commands {
		args := make([]float64, len(cmd.Args))
		for j := 0; j+1 < len(cmd.Args); j += 2 {
			args[j] = cmd.Args[j] + dx
			args[j+1] = cmd.Args[j+1] + dy
		}
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: args}
	}
	return out
}

// Bounds returns the bounding box of all path coordinates, including
// curve control points. Returns an empty rect for an empty path.
func (p *Path) Bounds() Rect {
	if len(p.Commands) == 0 {
		return Rect{}
	}
	bounds := Rect{
		Left: math.Inf(1), Top: math.Inf(1),
		Right: math.Inf(-1), Bottom: math.Inf(-1),
	}
	seen := false
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			bounds.Left = math.Min(bounds.Left, x)
			bounds.Top = math.Min(bounds.Top, y)
			bounds.Right = math.Max(bounds.Right, x)
			bounds.Bottom = math.Max(bounds.Bottom, y)
			seen = true
		}
	}
	if !seen {
		return Rect{}
	}
	return bounds
}

// flattenSteps is the number of line segments used to approximate one
// bezier curve when flattening a path.
const flattenSteps = 16

// Flatten converts the path into polyline subpaths, approximating curves
// with line segments. Each returned slice is one subpath in draw order.
// A closing command repeats the subpath's first point.
func (p *Path) Flatten() [][]Offset {
	var subpaths [][]Offset
	var current []Offset
	var start, pen Offset

	flush := func() {
		if len(current) > 1 {
			subpaths = append(subpaths, current)
		}
		current = nil
	}

	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			flush()
			pen = Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			start = pen
			current = append(current, pen)
		case PathOpLineTo:
			pen = Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			current = append(current, pen)
		case PathOpQuadTo:
			c := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			end := Offset{X: cmd.Args[2], Y: cmd.Args[3]}
			for i := 1; i <= flattenSteps; i++ {
				t := float64(i) / flattenSteps
				current = append(current, quadPoint(pen, c, end, t))
			}
			pen = end
		case PathOpCubicTo:
			c1 := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			c2 := Offset{X: cmd.Args[2], Y: cmd.Args[3]}
			end := Offset{X: cmd.Args[4], Y: cmd.Args[5]}
			for i := 1; i <= flattenSteps; i++ {
				t := float64(i) / flattenSteps
				current = append(current, cubicPoint(pen, c1, c2, end, t))
			}
			pen = end
		case PathOpClose:
			current = append(current, start)
			pen = start
			flush()
		}
	}
	flush()
	return subpaths
}

// quadPoint evaluates a quadratic bezier at parameter t.
func quadPoint(p0, c, p1 Offset, t float64) Offset {
	u := 1 - t
	return Offset{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}

// cubicPoint evaluates a cubic bezier at parameter t.
func cubicPoint(p0, c1, c2, p1 Offset, t float64) Offset {
	u := 1 - t
	return Offset{
		X: u*u*u*p0.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*p1.X,
		Y: u*u*u*p0.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*p1.Y,
	}
}
