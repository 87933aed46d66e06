package graphics

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ImageCanvas rasterizes canvas operations into an RGBA image using
// the golang.org/x/image vector rasterizer.
//
// Clipping is implemented with alpha masks: every fill is composited
// through the intersection of all active clip regions.
type ImageCanvas struct {
	dst   *image.RGBA
	state rasterState
	stack []rasterState
}

type rasterState struct {
	dx, dy float64
	clip   *image.Alpha // nil means unclipped
}

// NewImageCanvas creates an image canvas with the given pixel size.
// Fractional sizes are rounded up.
func NewImageCanvas(size Size) *ImageCanvas {
	w := int(math.Ceil(math.Max(size.Width, 1)))
	h := int(math.Ceil(math.Max(size.Height, 1)))
	return &ImageCanvas{
		dst: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

// Image returns the destination image.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.dst
}

// Clear fills the entire image with the given color.
func (c *ImageCanvas) Clear(col Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(toNRGBA(col)), image.Point{}, draw.Src)
}

// Save pushes the current transform and clip state.
func (c *ImageCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recent transform and clip state.
func (c *ImageCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by the given offset.
func (c *ImageCanvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

// ClipRect restricts future drawing to the given rectangle.
func (c *ImageCanvas) ClipRect(rect Rect) {
	path := NewPath()
	path.MoveTo(rect.Left, rect.Top)
	path.LineTo(rect.Right, rect.Top)
	path.LineTo(rect.Right, rect.Bottom)
	path.LineTo(rect.Left, rect.Bottom)
	path.Close()
	c.ClipPath(path)
}

// ClipPath restricts future drawing to the interior of the path.
func (c *ImageCanvas) ClipPath(path *Path) {
	c.state.clip = c.mask(path)
}

// DrawRect draws a rectangle with the provided paint.
func (c *ImageCanvas) DrawRect(rect Rect, paint Paint) {
	path := NewPath()
	path.MoveTo(rect.Left, rect.Top)
	path.LineTo(rect.Right, rect.Top)
	path.LineTo(rect.Right, rect.Bottom)
	path.LineTo(rect.Left, rect.Bottom)
	path.Close()
	c.DrawPath(path, paint)
}

// DrawPath draws a path with the provided paint. Stroked paths are
// approximated by filling a quad per flattened segment; joins are butt
// joins, which is sufficient at the stroke widths this library draws.
func (c *ImageCanvas) DrawPath(path *Path, paint Paint) {
	if paint.Style == PaintStyleStroke {
		c.fill(strokeOutline(path, paint.StrokeWidth), paint.Color)
		return
	}
	c.fill(path, paint.Color)
}

// DrawText draws a single line of 7x13 bitmap text with its baseline at origin.
func (c *ImageCanvas) DrawText(text string, origin Offset, paint Paint) {
	drawer := font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(toNRGBA(paint.Color)),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6((origin.X + c.state.dx) * 64),
			Y: fixed.Int26_6((origin.Y + c.state.dy) * 64),
		},
	}
	drawer.DrawString(text)
}

func (c *ImageCanvas) fill(path *Path, col Color) {
	m := c.mask(path)
	b := c.dst.Bounds()
	draw.DrawMask(c.dst, b, image.NewUniform(toNRGBA(col)), image.Point{}, m, b.Min, draw.Over)
}

// mask rasterizes the path (under the current translation) into an alpha
// mask intersected with the active clip.
func (c *ImageCanvas) mask(path *Path) *image.Alpha {
	b := c.dst.Bounds()
	ras := vector.NewRasterizer(b.Dx(), b.Dy())
	var started bool
	for _, cmd := range path.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			if started {
				ras.ClosePath()
			}
			ras.MoveTo(c.fx(cmd.Args[0]), c.fy(cmd.Args[1]))
			started = true
		case PathOpLineTo:
			ras.LineTo(c.fx(cmd.Args[0]), c.fy(cmd.Args[1]))
		case PathOpQuadTo:
			ras.QuadTo(c.fx(cmd.Args[0]), c.fy(cmd.Args[1]), c.fx(cmd.Args[2]), c.fy(cmd.Args[3]))
		case PathOpCubicTo:
			ras.CubeTo(
				c.fx(cmd.Args[0]), c.fy(cmd.Args[1]),
				c.fx(cmd.Args[2]), c.fy(cmd.Args[3]),
				c.fx(cmd.Args[4]), c.fy(cmd.Args[5]))
		case PathOpClose:
			ras.ClosePath()
			started = false
		}
	}
	if started {
		ras.ClosePath()
	}
	m := image.NewAlpha(b)
	ras.Draw(m, b, image.Opaque, image.Point{})
	if c.state.clip != nil {
		intersectMask(m, c.state.clip)
	}
	return m
}

func (c *ImageCanvas) fx(x float64) float32 {
	return float32(x + c.state.dx)
}

func (c *ImageCanvas) fy(y float64) float32 {
	return float32(y + c.state.dy)
}

// intersectMask multiplies dst's alpha by other's, in place.
func intersectMask(dst, other *image.Alpha) {
	for i := range dst.Pix {
		dst.Pix[i] = uint8(uint32(dst.Pix[i]) * uint32(other.Pix[i]) / 0xFF)
	}
}

// strokeOutline builds a fillable path covering the stroke of the input,
// one quad per flattened line segment.
func strokeOutline(path *Path, width float64) *Path {
	if width <= 0 {
		width = 1
	}
	half := width * 0.5
	out := NewPath()
	for _, subpath := range path.Flatten() {
		for i := 0; i+1 < len(subpath); i++ {
			p, q := subpath[i], subpath[i+1]
			dx, dy := q.X-p.X, q.Y-p.Y
			length := math.Hypot(dx, dy)
			if length == 0 {
				continue
			}
			// Unit normal, scaled to half the stroke width.
			nx := -dy / length * half
			ny := dx / length * half
			out.MoveTo(p.X+nx, p.Y+ny)
			out.LineTo(q.X+nx, q.Y+ny)
			out.LineTo(q.X-nx, q.Y-ny)
			out.LineTo(p.X-nx, p.Y-ny)
			out.Close()
		}
	}
	return out
}

func toNRGBA(c Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}
