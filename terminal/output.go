package terminal

import (
	"bufio"
	"io"
)

// opWriter encodes op streams into ANSI escape sequences.
// It is deliberately stateless about frame content: diffing and style
// deduplication happen upstream, so every op received is emitted.
type opWriter struct {
	writer    *bufio.Writer
	colorMode ColorMode
}

// backendWriter adapts Backend.Write to io.Writer for bufio
type backendWriter struct {
	b Backend
}

func (bw backendWriter) Write(p []byte) (int, error) {
	if err := bw.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// newOpWriter creates an op encoder writing through the backend
func newOpWriter(b Backend, colorMode ColorMode) *opWriter {
	return &opWriter{
		writer:    bufio.NewWriterSize(backendWriter{b: b}, 131072), // 128KB buffer
		colorMode: colorMode,
	}
}

// newOpWriterTo creates an op encoder writing to an arbitrary writer (tests)
func newOpWriterTo(w io.Writer, colorMode ColorMode) *opWriter {
	return &opWriter{
		writer:    bufio.NewWriterSize(w, 131072),
		colorMode: colorMode,
	}
}

// apply encodes all ops and flushes them in one write burst.
// bufio errors are sticky; a single Flush check at the end suffices.
func (o *opWriter) apply(ops []Op) error {
	w := o.writer

	for i := range ops {
		op := &ops[i]
		switch op.Kind {
		case OpMoveCursor:
			writeCursorPos(w, op.X, op.Y)
		case OpSetStyle:
			o.writeStyle(op.Fg, op.Bg, op.Attrs)
		case OpWriteText:
			w.WriteString(op.Text)
		}
	}

	if len(ops) > 0 {
		w.Write(csiSGR0)
	}

	return w.Flush()
}

// writeStyle emits one combined SGR sequence: reset, attributes, fg, bg.
// A full reset per style change keeps the encoder stateless; the serializer
// upstream guarantees styles are only emitted when they actually change.
func (o *opWriter) writeStyle(fg, bg RGB, attr Attr) {
	w := o.writer

	w.Write(csi)
	w.WriteByte('0') // reset

	if attr&AttrBold != 0 {
		w.Write([]byte(";1"))
	}
	if attr&AttrDim != 0 {
		w.Write([]byte(";2"))
	}
	if attr&AttrItalic != 0 {
		w.Write([]byte(";3"))
	}
	if attr&AttrUnderline != 0 {
		w.Write([]byte(";4"))
	}
	if attr&AttrBlink != 0 {
		w.Write([]byte(";5"))
	}
	if attr&AttrReverse != 0 {
		w.Write([]byte(";7"))
	}

	o.writeFgInline(fg)
	o.writeBgInline(bg)

	w.WriteByte('m')
}

// writeFgInline writes fg color parameters (no CSI prefix, no 'm' suffix)
func (o *opWriter) writeFgInline(fg RGB) {
	w := o.writer
	w.WriteByte(';')
	if o.colorMode == ColorModeTrueColor {
		// True color: 38;2;R;G;B
		w.Write([]byte("38;2;"))
		writeInt(w, int(fg.R))
		w.WriteByte(';')
		writeInt(w, int(fg.G))
		w.WriteByte(';')
		writeInt(w, int(fg.B))
	} else {
		// Fallback 256: 38;5;N
		w.Write([]byte("38;5;"))
		writeInt(w, int(RGBTo256(fg)))
	}
}

// writeBgInline writes bg color parameters (no CSI prefix, no 'm' suffix)
func (o *opWriter) writeBgInline(bg RGB) {
	w := o.writer
	w.WriteByte(';')
	if o.colorMode == ColorModeTrueColor {
		// True color: 48;2;R;G;B
		w.Write([]byte("48;2;"))
		writeInt(w, int(bg.R))
		w.WriteByte(';')
		writeInt(w, int(bg.G))
		w.WriteByte(';')
		writeInt(w, int(bg.B))
	} else {
		// Fallback 256: 48;5;N
		w.Write([]byte("48;5;"))
		writeInt(w, int(RGBTo256(bg)))
	}
}

// writeBgFull writes a complete bg color sequence
func (o *opWriter) writeBgFull(bg RGB) {
	w := o.writer
	if o.colorMode == ColorModeTrueColor {
		w.Write(csiBgRGB)
		writeInt(w, int(bg.R))
		w.WriteByte(';')
		writeInt(w, int(bg.G))
		w.WriteByte(';')
		writeInt(w, int(bg.B))
		w.WriteByte('m')
	} else {
		w.Write(csiBg256)
		writeInt(w, int(RGBTo256(bg)))
		w.WriteByte('m')
	}
}

// clear writes a clear screen with specified background
func (o *opWriter) clear(bg RGB) error {
	w := o.writer
	w.Write(csiSGR0)
	o.writeBgFull(bg)
	w.Write(csiClear)
	return w.Flush()
}
