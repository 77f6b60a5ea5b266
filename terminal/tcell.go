package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// tcellTerminal implements Terminal on top of tcell.Screen.
// It exists for hosts that already run tcell and want the renderer to share
// the same screen; the op stream is replayed through SetContent.
type tcellTerminal struct {
	resizeCh chan ResizeEvent
	stopCh   chan struct{}

	mu          sync.Mutex
	screen      tcell.Screen
	initialized bool
	finalized   bool

	// Replay state: ops are positional, tcell is cell-addressed
	curX, curY int
	style      tcell.Style
}

// NewTcell creates a Terminal backed by a tcell screen
func NewTcell() Terminal {
	return &tcellTerminal{
		resizeCh: make(chan ResizeEvent, 1),
		stopCh:   make(chan struct{}),
	}
}

func (t *tcellTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}

	screen.HideCursor()
	t.screen = screen
	t.style = tcell.StyleDefault
	t.initialized = true

	// Event pump: forwards resize events, discards input.
	// PollEvent returns nil after Fini, ending the goroutine.
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if re, ok := ev.(*tcell.EventResize); ok {
				w, h := re.Size()
				select {
				case t.resizeCh <- ResizeEvent{Width: w, Height: h}:
				default:
					select {
					case <-t.resizeCh:
					default:
					}
					select {
					case t.resizeCh <- ResizeEvent{Width: w, Height: h}:
					default:
					}
				}
			}
		}
	}()

	return nil
}

func (t *tcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Fini()
	t.finalized = true
}

func (t *tcellTerminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.screen == nil {
		return 0, 0
	}
	return t.screen.Size()
}

func (t *tcellTerminal) ResizeChan() <-chan ResizeEvent {
	return t.resizeCh
}

// ColorMode reports truecolor; tcell downsamples internally when needed
func (t *tcellTerminal) ColorMode() ColorMode {
	return ColorModeTrueColor
}

func (t *tcellTerminal) Apply(ops []Op) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return fmt.Errorf("terminal not running")
	}

	for i := range ops {
		op := &ops[i]
		switch op.Kind {
		case OpMoveCursor:
			t.curX, t.curY = op.X, op.Y
		case OpSetStyle:
			t.style = toTcellStyle(op.Fg, op.Bg, op.Attrs)
		case OpWriteText:
			t.writeText(op.Text)
		}
	}

	t.screen.Show()
	return nil
}

// writeText places one grapheme cluster per screen cell, advancing the
// replay cursor by display width
func (t *tcellTerminal) writeText(text string) {
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)

		runes := []rune(cluster)
		var comb []rune
		if len(runes) > 1 {
			comb = runes[1:]
		}
		t.screen.SetContent(t.curX, t.curY, runes[0], comb, t.style)

		w := runewidth.StringWidth(cluster)
		if w < 1 {
			w = 1
		}
		t.curX += w
	}
}

func (t *tcellTerminal) Clear(bg RGB) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return fmt.Errorf("terminal not running")
	}

	t.screen.Fill(' ', tcell.StyleDefault.Background(toTcellColor(bg)))
	t.screen.Show()
	return nil
}

func (t *tcellTerminal) SetCursorVisible(visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	if visible {
		t.screen.ShowCursor(t.curX, t.curY)
	} else {
		t.screen.HideCursor()
	}
}

func toTcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func toTcellStyle(fg, bg RGB, attrs Attr) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(toTcellColor(fg)).
		Background(toTcellColor(bg))

	if attrs&AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&AttrDim != 0 {
		style = style.Dim(true)
	}
	if attrs&AttrItalic != 0 {
		style = style.Italic(true)
	}
	if attrs&AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&AttrBlink != 0 {
		style = style.Blink(true)
	}
	if attrs&AttrReverse != 0 {
		style = style.Reverse(true)
	}
	return style
}
