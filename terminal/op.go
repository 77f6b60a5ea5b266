package terminal

// OpKind discriminates serialized terminal operations
type OpKind uint8

const (
	// OpMoveCursor positions the cursor at (X, Y), 0-indexed
	OpMoveCursor OpKind = iota
	// OpSetStyle sets fg/bg/attributes for subsequent writes
	OpSetStyle
	// OpWriteText writes Text at the cursor, advancing it by display width
	OpWriteText
)

// Op is one element of the per-frame command stream.
// A single flat struct (not an interface) keeps op slices allocation-free
// and lets callers reuse backing arrays across frames.
type Op struct {
	Kind  OpKind
	X, Y  int    // OpMoveCursor
	Fg    RGB    // OpSetStyle
	Bg    RGB    // OpSetStyle
	Attrs Attr   // OpSetStyle
	Text  string // OpWriteText
}

// MoveCursor builds a cursor positioning op
func MoveCursor(x, y int) Op {
	return Op{Kind: OpMoveCursor, X: x, Y: y}
}

// SetStyle builds a style op
func SetStyle(fg, bg RGB, attrs Attr) Op {
	return Op{Kind: OpSetStyle, Fg: fg, Bg: bg, Attrs: attrs}
}

// WriteText builds a text write op
func WriteText(text string) Op {
	return Op{Kind: OpWriteText, Text: text}
}
