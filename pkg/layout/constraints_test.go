package layout

import (
	"testing"

	"github.com/go-crystal/crystal/pkg/graphics"
)

func TestConstraints_Constrain(t *testing.T) {
	c := Constraints{MinWidth: 10, MaxWidth: 100, MinHeight: 20, MaxHeight: 50}

	tests := []struct {
		name string
		in   graphics.Size
		want graphics.Size
	}{
		{"within", graphics.Size{Width: 50, Height: 30}, graphics.Size{Width: 50, Height: 30}},
		{"below min", graphics.Size{Width: 5, Height: 10}, graphics.Size{Width: 10, Height: 20}},
		{"above max", graphics.Size{Width: 200, Height: 80}, graphics.Size{Width: 100, Height: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Constrain(tt.in); got != tt.want {
				t.Errorf("Constrain(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestConstraints_TightAndLoose(t *testing.T) {
	size := graphics.Size{Width: 40, Height: 30}

	tight := Tight(size)
	if tight.Constrain(graphics.Size{}) != size {
		t.Error("tight constraints should force the exact size")
	}

	loose := Loose(size)
	if got := loose.Constrain(graphics.Size{Width: 10, Height: 10}); got != (graphics.Size{Width: 10, Height: 10}) {
		t.Errorf("loose constraints should allow smaller sizes, got %+v", got)
	}
	if got := loose.Constrain(graphics.Size{Width: 100, Height: 100}); got != size {
		t.Errorf("loose constraints should cap at the max, got %+v", got)
	}
}

func TestConstraints_Bounded(t *testing.T) {
	c := UnboundedConstraints()
	if c.HasBoundedWidth() || c.HasBoundedHeight() {
		t.Error("unbounded constraints report bounded axes")
	}
	c.MaxWidth = 100
	if !c.HasBoundedWidth() {
		t.Error("width should be bounded")
	}
}

func TestConstraints_Deflate(t *testing.T) {
	c := Loose(graphics.Size{Width: 100, Height: 80})
	d := c.Deflate(30, 20)
	if d.MaxWidth != 70 || d.MaxHeight != 60 {
		t.Errorf("deflated max = %v x %v, want 70 x 60", d.MaxWidth, d.MaxHeight)
	}

	// Deflating past zero clamps instead of going negative.
	d = c.Deflate(300, 300)
	if d.MaxWidth != 0 || d.MaxHeight != 0 {
		t.Errorf("over-deflated max = %v x %v, want 0 x 0", d.MaxWidth, d.MaxHeight)
	}

	// Unbounded axes stay unbounded.
	d = UnboundedConstraints().Deflate(10, 10)
	if d.HasBoundedWidth() || d.HasBoundedHeight() {
		t.Error("deflating unbounded constraints must not bound them")
	}
}
