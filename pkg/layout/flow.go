package layout

import (
	"fmt"
	"math"

	"github.com/go-crystal/crystal/pkg/graphics"
)

// Axis is the primary packing direction for flow layout.
//
// AxisHorizontal packs items into rows that wrap downward; AxisVertical
// packs items into columns that wrap sideways.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Main returns the size component along the packing axis.
func (a Axis) Main(size graphics.Size) float64 {
	if a == AxisVertical {
		return size.Height
	}
	return size.Width
}

// Cross returns the size component perpendicular to the packing axis.
func (a Axis) Cross(size graphics.Size) float64 {
	if a == AxisVertical {
		return size.Width
	}
	return size.Height
}

// Pack combines main and cross extents back into a Size.
func (a Axis) Pack(main, cross float64) graphics.Size {
	if a == AxisVertical {
		return graphics.Size{Width: cross, Height: main}
	}
	return graphics.Size{Width: main, Height: cross}
}

// Offset combines main and cross positions back into an Offset.
func (a Axis) Offset(main, cross float64) graphics.Offset {
	if a == AxisVertical {
		return graphics.Offset{X: cross, Y: main}
	}
	return graphics.Offset{X: main, Y: cross}
}

// Run is one row or column of packed items.
type Run struct {
	Start       int     // Index of the first item in this run
	Count       int     // Number of items in this run
	MainExtent  float64 // Sum of item extents plus item spacing
	CrossExtent float64 // Max cross-axis extent among items
}

// Packing is the result of grouping items into runs.
//
// Runs partition the input in order: concatenating the items of every run
// reproduces the original sequence. Size is the bounding size of the
// packing, where the main extent is the widest run and the cross extent is
// the sum of run cross extents plus run spacing.
type Packing struct {
	Runs []Run
	Size graphics.Size
}

// Pack partitions an ordered sequence of item sizes into runs that fit
// within maxMain along the given axis.
//
// Items are taken strictly in order in a single greedy pass. A run breaks
// when appending the next item (plus item spacing) would exceed maxMain;
// the overflowing item starts the next run. An item larger than maxMain
// therefore always occupies a run by itself, which also guarantees
// progress. A maxMain that is zero, negative, or Unbounded means no limit,
// producing a single run.
//
// Negative input dimensions are clamped to zero. Pack never fails.
func Pack(sizes []graphics.Size, axis Axis, maxMain, spacing, runSpacing float64) Packing {
	if len(sizes) == 0 {
		return Packing{}
	}
	bounded := maxMain > 0 && maxMain != Unbounded

	var runs []Run
	current := Run{}
	maxRunExtent := 0.0

	for i, size := range sizes {
		itemMain := axis.Main(clampSize(size))
		itemCross := axis.Cross(clampSize(size))

		spacingToAdd := 0.0
		if current.Count > 0 {
			spacingToAdd = spacing
		}

		if bounded && current.Count > 0 && current.MainExtent+spacingToAdd+itemMain > maxMain {
			runs = append(runs, current)
			current = Run{Start: i}
			spacingToAdd = 0
		}

		current.MainExtent += spacingToAdd + itemMain
		current.CrossExtent = math.Max(current.CrossExtent, itemCross)
		current.Count++
		maxRunExtent = math.Max(maxRunExtent, current.MainExtent)
	}
	runs = append(runs, current)

	totalCross := 0.0
	for i, run := range runs {
		totalCross += run.CrossExtent
		if i > 0 {
			totalCross += runSpacing
		}
	}

	return Packing{
		Runs: runs,
		Size: axis.Pack(maxRunExtent, totalCross),
	}
}

// Place computes the top-left offset of every packed item.
//
// Runs advance a cross-axis cursor by their cross extent plus run spacing;
// items within a run advance a main-axis cursor by their extent plus item
// spacing and are centered across the run's cross extent. The sizes slice
// must be the one the packing was computed from.
func (p Packing) Place(sizes []graphics.Size, axis Axis, spacing, runSpacing float64) []graphics.Offset {
	offsets := make([]graphics.Offset, len(sizes))
	crossCursor := 0.0
	for _, run := range p.Runs {
		mainCursor := 0.0
		for i := 0; i < run.Count; i++ {
			index := run.Start + i
			size := clampSize(sizes[index])
			if i > 0 {
				mainCursor += spacing
			}
			crossOffset := (run.CrossExtent - axis.Cross(size)) * 0.5
			offsets[index] = axis.Offset(mainCursor, crossCursor+crossOffset)
			mainCursor += axis.Main(size)
		}
		crossCursor += run.CrossExtent + runSpacing
	}
	return offsets
}

// ItemCount returns the total number of items across all runs.
func (p Packing) ItemCount() int {
	total := 0
	for _, run := range p.Runs {
		total += run.Count
	}
	return total
}

// clampSize snaps negative dimensions to zero.
func clampSize(s graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  math.Max(0, s.Width),
		Height: math.Max(0, s.Height),
	}
}
