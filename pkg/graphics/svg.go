package graphics

import (
	"fmt"
	"strconv"
	"strings"
)

// SVGCanvas encodes canvas operations as an SVG document.
//
// Translate and clip operations open <g> elements; Restore closes every
// group opened since the matching Save. Call Document to finish encoding.
type SVGCanvas struct {
	size       Size
	defs       strings.Builder
	body       strings.Builder
	groupStack []int // groups opened per save level; index 0 is the root level
	clipID     int
}

// NewSVGCanvas creates an SVG canvas with the given document size.
func NewSVGCanvas(size Size) *SVGCanvas {
	return &SVGCanvas{
		size:       size,
		groupStack: []int{0},
	}
}

// Document closes any open groups and returns the complete SVG document.
func (c *SVGCanvas) Document() string {
	var out strings.Builder
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		fmtFloat(c.size.Width), fmtFloat(c.size.Height),
		fmtFloat(c.size.Width), fmtFloat(c.size.Height))
	out.WriteByte('\n')
	if c.defs.Len() > 0 {
		out.WriteString("<defs>\n")
		out.WriteString(c.defs.String())
		out.WriteString("</defs>\n")
	}
	out.WriteString(c.body.String())
	for _, open := range c.groupStack {
		for i := 0; i < open; i++ {
			out.WriteString("</g>\n")
		}
	}
	out.WriteString("</svg>\n")
	return out.String()
}

func (c *SVGCanvas) openGroup(attrs string) {
	fmt.Fprintf(&c.body, "<g %s>\n", attrs)
	c.groupStack[len(c.groupStack)-1]++
}

// Save pushes a new group level.
func (c *SVGCanvas) Save() {
	c.groupStack = append(c.groupStack, 0)
}

// Restore closes all groups opened since the matching Save.
func (c *SVGCanvas) Restore() {
	if len(c.groupStack) == 1 {
		return
	}
	open := c.groupStack[len(c.groupStack)-1]
	c.groupStack = c.groupStack[:len(c.groupStack)-1]
	for i := 0; i < open; i++ {
		c.body.WriteString("</g>\n")
	}
}

// Translate shifts the coordinate space for subsequent operations.
func (c *SVGCanvas) Translate(dx, dy float64) {
	c.openGroup(fmt.Sprintf(`transform="translate(%s %s)"`, fmtFloat(dx), fmtFloat(dy)))
}

// ClipRect restricts subsequent drawing to the given rectangle.
func (c *SVGCanvas) ClipRect(rect Rect) {
	c.clipID++
	id := fmt.Sprintf("clip%d", c.clipID)
	fmt.Fprintf(&c.defs, `<clipPath id="%s"><rect x="%s" y="%s" width="%s" height="%s"/></clipPath>`,
		id, fmtFloat(rect.Left), fmtFloat(rect.Top),
		fmtFloat(rect.Width()), fmtFloat(rect.Height()))
	c.defs.WriteByte('\n')
	c.openGroup(fmt.Sprintf(`clip-path="url(#%s)"`, id))
}

// ClipPath restricts subsequent drawing to the interior of the path.
func (c *SVGCanvas) ClipPath(path *Path) {
	c.clipID++
	id := fmt.Sprintf("clip%d", c.clipID)
	fmt.Fprintf(&c.defs, `<clipPath id="%s"><path d="%s"/></clipPath>`, id, EncodePathData(path))
	c.defs.WriteByte('\n')
	c.openGroup(fmt.Sprintf(`clip-path="url(#%s)"`, id))
}

// DrawRect emits an SVG rect element.
func (c *SVGCanvas) DrawRect(rect Rect, paint Paint) {
	fmt.Fprintf(&c.body, `<rect x="%s" y="%s" width="%s" height="%s" %s/>`,
		fmtFloat(rect.Left), fmtFloat(rect.Top),
		fmtFloat(rect.Width()), fmtFloat(rect.Height()),
		paintAttrs(paint))
	c.body.WriteByte('\n')
}

// DrawPath emits an SVG path element.
func (c *SVGCanvas) DrawPath(path *Path, paint Paint) {
	rule := ""
	if path.FillRule == FillRuleEvenOdd {
		rule = ` fill-rule="evenodd"`
	}
	fmt.Fprintf(&c.body, `<path d="%s" %s%s/>`, EncodePathData(path), paintAttrs(paint), rule)
	c.body.WriteByte('\n')
}

// DrawText emits an SVG text element with the baseline at origin.
func (c *SVGCanvas) DrawText(text string, origin Offset, paint Paint) {
	fmt.Fprintf(&c.body, `<text x="%s" y="%s" font-family="monospace" font-size="13" fill="%s" fill-opacity="%s">%s</text>`,
		fmtFloat(origin.X), fmtFloat(origin.Y),
		paint.Color.HexRGB(), fmtFloat(paint.Color.Opacity()),
		escapeText(text))
	c.body.WriteByte('\n')
}

// EncodePathData converts a path into SVG path data ("d" attribute) syntax.
func EncodePathData(path *Path) string {
	var d strings.Builder
	for i, cmd := range path.Commands {
		if i > 0 {
			d.WriteByte(' ')
		}
		switch cmd.Op {
		case PathOpMoveTo:
			fmt.Fprintf(&d, "M %s %s", fmtFloat(cmd.Args[0]), fmtFloat(cmd.Args[1]))
		case PathOpLineTo:
			fmt.Fprintf(&d, "L %s %s", fmtFloat(cmd.Args[0]), fmtFloat(cmd.Args[1]))
		case PathOpQuadTo:
			fmt.Fprintf(&d, "Q %s %s %s %s",
				fmtFloat(cmd.Args[0]), fmtFloat(cmd.Args[1]),
				fmtFloat(cmd.Args[2]), fmtFloat(cmd.Args[3]))
		case PathOpCubicTo:
			fmt.Fprintf(&d, "C %s %s %s %s %s %s",
				fmtFloat(cmd.Args[0]), fmtFloat(cmd.Args[1]),
				fmtFloat(cmd.Args[2]), fmtFloat(cmd.Args[3]),
				fmtFloat(cmd.Args[4]), fmtFloat(cmd.Args[5]))
		case PathOpClose:
			d.WriteString("Z")
		}
	}
	return d.String()
}

func paintAttrs(paint Paint) string {
	switch paint.Style {
	case PaintStyleStroke:
		return fmt.Sprintf(`fill="none" stroke="%s" stroke-opacity="%s" stroke-width="%s"`,
			paint.Color.HexRGB(), fmtFloat(paint.Color.Opacity()), fmtFloat(paint.StrokeWidth))
	default:
		return fmt.Sprintf(`fill="%s" fill-opacity="%s"`,
			paint.Color.HexRGB(), fmtFloat(paint.Color.Opacity()))
	}
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// fmtFloat formats a coordinate without trailing zeros.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
