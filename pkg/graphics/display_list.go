package graphics

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []displayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []displayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops, size: r.size}
}

// recordingCanvas implements Canvas by appending ops to its recorder.
type recordingCanvas struct {
	recorder *PictureRecorder
}

func (c *recordingCanvas) add(op displayOp) {
	if c.recorder.recording {
		c.recorder.ops = append(c.recorder.ops, op)
	}
}

func (c *recordingCanvas) Save() { c.add(opSave{}) }

func (c *recordingCanvas) Restore() { c.add(opRestore{}) }

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.add(opTranslate{dx: dx, dy: dy})
}

func (c *recordingCanvas) ClipRect(rect Rect) { c.add(opClipRect{rect: rect}) }

func (c *recordingCanvas) ClipPath(path *Path) { c.add(opClipPath{path: path}) }

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.add(opDrawRect{rect: rect, paint: paint})
}

func (c *recordingCanvas) DrawPath(path *Path, paint Paint) {
	c.add(opDrawPath{path: path, paint: paint})
}

func (c *recordingCanvas) DrawText(text string, origin Offset, paint Paint) {
	c.add(opDrawText{text: text, origin: origin, paint: paint})
}

// displayOp is a single recorded drawing operation.
type displayOp interface {
	execute(canvas Canvas)
}

type opSave struct{}

func (opSave) execute(canvas Canvas) { canvas.Save() }

type opRestore struct{}

func (opRestore) execute(canvas Canvas) { canvas.Restore() }

type opTranslate struct {
	dx, dy float64
}

func (o opTranslate) execute(canvas Canvas) { canvas.Translate(o.dx, o.dy) }

type opClipRect struct {
	rect Rect
}

func (o opClipRect) execute(canvas Canvas) { canvas.ClipRect(o.rect) }

type opClipPath struct {
	path *Path
}

func (o opClipPath) execute(canvas Canvas) { canvas.ClipPath(o.path) }

type opDrawRect struct {
	rect  Rect
	paint Paint
}

func (o opDrawRect) execute(canvas Canvas) { canvas.DrawRect(o.rect, o.paint) }

type opDrawPath struct {
	path  *Path
	paint Paint
}

func (o opDrawPath) execute(canvas Canvas) { canvas.DrawPath(o.path, o.paint) }

type opDrawText struct {
	text   string
	origin Offset
	paint  Paint
}

func (o opDrawText) execute(canvas Canvas) { canvas.DrawText(o.text, o.origin, o.paint) }
