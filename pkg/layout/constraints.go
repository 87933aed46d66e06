package layout

import (
	"math"

	"github.com/go-crystal/crystal/pkg/graphics"
)

// Unbounded marks an axis with no upper size limit.
const Unbounded = math.MaxFloat64

// Constraints describe the size range a widget may occupy.
//
// A max of Unbounded means the axis has no upper limit. Constraints with
// equal min and max on an axis are tight on that axis.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that force exactly the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints that allow any size up to the given maximum.
func Loose(size graphics.Size) Constraints {
	return Constraints{
		MaxWidth:  size.Width,
		MaxHeight: size.Height,
	}
}

// UnboundedConstraints returns constraints with no limit on either axis.
func UnboundedConstraints() Constraints {
	return Constraints{
		MaxWidth:  Unbounded,
		MaxHeight: Unbounded,
	}
}

// Constrain clamps the given size to these constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  math.Min(math.Max(size.Width, c.MinWidth), c.MaxWidth),
		Height: math.Min(math.Max(size.Height, c.MinHeight), c.MaxHeight),
	}
}

// HasBoundedWidth reports whether the width has a finite upper limit.
func (c Constraints) HasBoundedWidth() bool {
	return c.MaxWidth != Unbounded
}

// HasBoundedHeight reports whether the height has a finite upper limit.
func (c Constraints) HasBoundedHeight() bool {
	return c.MaxHeight != Unbounded
}

// Deflate returns constraints reduced by the given horizontal and vertical
// amounts, never dropping below zero.
func (c Constraints) Deflate(horizontal, vertical float64) Constraints {
	out := Constraints{
		MinWidth:  math.Max(0, c.MinWidth-horizontal),
		MinHeight: math.Max(0, c.MinHeight-vertical),
		MaxWidth:  c.MaxWidth,
		MaxHeight: c.MaxHeight,
	}
	if c.HasBoundedWidth() {
		out.MaxWidth = math.Max(0, c.MaxWidth-horizontal)
	}
	if c.HasBoundedHeight() {
		out.MaxHeight = math.Max(0, c.MaxHeight-vertical)
	}
	return out
}

// MaxSize returns the maximum size allowed by these constraints.
func (c Constraints) MaxSize() graphics.Size {
	return graphics.Size{Width: c.MaxWidth, Height: c.MaxHeight}
}
