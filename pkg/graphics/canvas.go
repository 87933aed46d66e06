package graphics

// Canvas records or renders drawing commands.
//
// Implementations in this package: PictureRecorder (records into a
// DisplayList), SVGCanvas (encodes an SVG document), and ImageCanvas
// (rasterizes into an image.RGBA).
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// ClipPath restricts future drawing to the interior of the path.
	ClipPath(path *Path)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawText draws a single line of text with its baseline starting
	// at the given origin.
	DrawText(text string, origin Offset, paint Paint)
}
