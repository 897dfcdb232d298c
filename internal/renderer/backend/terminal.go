// Package backend adapts a tcell screen to the editor: it turns key
// events into the raw key codes the matcher understands and exposes the
// screen for drawing.
package backend

import (
	"io"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/lispedit/internal/input/key"
)

// Terminal is a tcell-backed key source.
type Terminal struct {
	screen tcell.Screen
	fini   sync.Once

	mu          sync.Mutex
	onResize    func(width, height int)
	onInterrupt func(data any)

	// queue holds codes produced by a single event, such as ESC f for
	// Alt+f, that have not been returned yet.
	queue []int
}

// NewTerminal creates a terminal on the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing screen, such as a simulation
// screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init initializes the screen.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.Clear()
	return nil
}

// Shutdown restores the terminal. A blocked ReadKey returns io.EOF.
// Later calls do nothing.
func (t *Terminal) Shutdown() {
	t.fini.Do(t.screen.Fini)
}

// Screen returns the drawing surface.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Size returns the current terminal dimensions.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// OnResize registers a callback run from ReadKey when the terminal is
// resized.
func (t *Terminal) OnResize(callback func(width, height int)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onResize = callback
}

// OnInterrupt registers a callback run from ReadKey for each Interrupt.
func (t *Terminal) OnInterrupt(callback func(data any)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onInterrupt = callback
}

// Interrupt wakes ReadKey from another goroutine; the interrupt callback
// then runs on the reading goroutine with data.
func (t *Terminal) Interrupt(data any) error {
	return t.screen.PostEvent(tcell.NewEventInterrupt(data))
}

// ReadKey blocks until a key is pressed and returns its code. Resize and
// interrupt events are handled through the callbacks while waiting.
func (t *Terminal) ReadKey() (int, error) {
	for {
		if len(t.queue) > 0 {
			code := t.queue[0]
			t.queue = t.queue[1:]
			return code, nil
		}

		ev := t.screen.PollEvent()
		if ev == nil {
			return 0, io.EOF
		}

		switch e := ev.(type) {
		case *tcell.EventKey:
			t.queue = append(t.queue, Translate(e)...)

		case *tcell.EventResize:
			t.screen.Sync()
			w, h := e.Size()
			t.mu.Lock()
			cb := t.onResize
			t.mu.Unlock()
			if cb != nil {
				cb(w, h)
			}

		case *tcell.EventInterrupt:
			t.mu.Lock()
			cb := t.onInterrupt
			t.mu.Unlock()
			if cb != nil {
				cb(e.Data())
			}
		}
	}
}

// Translate converts a key event into raw codes. Alt is sent as an ESC
// prefix the way terminals do. Keys without a code yield nothing.
func Translate(ev *tcell.EventKey) []int {
	k, mods := ev.Key(), ev.Modifiers()

	var code int
	switch k {
	case tcell.KeyRune:
		r := ev.Rune()
		if mods&tcell.ModCtrl != 0 && r < unicode.MaxASCII {
			code = key.Ctrl(r).Code
		} else {
			code = int(r)
		}
	case tcell.KeyEnter:
		code = key.CodeEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		code = key.CodeBackspace
	case tcell.KeyUp:
		code = key.CodeUp
	case tcell.KeyDown:
		code = key.CodeDown
	case tcell.KeyLeft:
		code = key.CodeLeft
	case tcell.KeyRight:
		code = key.CodeRight
	case tcell.KeyHome:
		code = key.CodeHome
	case tcell.KeyEnd:
		code = key.CodeEnd
	case tcell.KeyPgUp:
		code = key.CodePageUp
	case tcell.KeyPgDn:
		code = key.CodePageDown
	case tcell.KeyDelete:
		code = key.CodeDelete
	default:
		if k < 0 || k > tcell.KeyDEL {
			return nil
		}
		// Control keys share their ASCII values.
		code = int(k)
	}

	if mods&tcell.ModAlt != 0 && code != key.CodeEscape {
		return []int{key.CodeEscape, code}
	}
	return []int{code}
}
