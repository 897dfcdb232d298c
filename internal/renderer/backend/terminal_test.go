package backend

import (
	"errors"
	"io"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/dshills/lispedit/internal/input/key"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(term.Shutdown)
	return term, screen
}

func readN(t *testing.T, term *Terminal, n int) []int {
	t.Helper()
	codes := make([]int, 0, n)
	for i := 0; i < n; i++ {
		code, err := term.ReadKey()
		if err != nil {
			t.Fatalf("ReadKey() error = %v", err)
		}
		codes = append(codes, code)
	}
	return codes
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []int
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), []int{'a'}},
		{"unicode rune", tcell.NewEventKey(tcell.KeyRune, 'λ', tcell.ModNone), []int{'λ'}},
		{"ctrl key", tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl), []int{24}},
		{"ctrl rune", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModCtrl), []int{19}},
		{"ctrl bracket", tcell.NewEventKey(tcell.KeyCtrlRightSq, 0, tcell.ModCtrl), []int{29}},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModAlt), []int{key.CodeEscape, 'f'}},
		{"ctrl alt", tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModCtrl|tcell.ModAlt), []int{key.CodeEscape, 6}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), []int{key.CodeEnter}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), []int{key.CodeTab}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), []int{key.CodeEscape}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), []int{key.CodeBackspace}},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), []int{key.CodeUp}},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), []int{key.CodePageDown}},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), []int{key.CodeDelete}},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Translate(tt.ev)); diff != "" {
				t.Errorf("Translate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadKeyQueuesAltPrefix(t *testing.T) {
	term, screen := newSimTerminal(t)
	screen.InjectKey(tcell.KeyRune, 'f', tcell.ModAlt)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	got := readN(t, term, 3)
	if diff := cmp.Diff([]int{key.CodeEscape, 'f', 'x'}, got); diff != "" {
		t.Errorf("codes mismatch (-want +got):\n%s", diff)
	}
}

func TestReadKeyResize(t *testing.T) {
	term, screen := newSimTerminal(t)

	var w, h int
	term.OnResize(func(width, height int) { w, h = width, height })

	if err := screen.PostEvent(tcell.NewEventResize(100, 40)); err != nil {
		t.Fatal(err)
	}
	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)

	readN(t, term, 1)
	if w != 100 || h != 40 {
		t.Errorf("resize callback got %dx%d, want 100x40", w, h)
	}
}

func TestReadKeyInterrupt(t *testing.T) {
	term, screen := newSimTerminal(t)

	var got any
	term.OnInterrupt(func(data any) { got = data })

	if err := term.Interrupt("reload"); err != nil {
		t.Fatal(err)
	}
	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)

	readN(t, term, 1)
	if got != "reload" {
		t.Errorf("interrupt data = %v, want reload", got)
	}
}

func TestReadKeyAfterShutdown(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatal(err)
	}
	term.Shutdown()

	if _, err := term.ReadKey(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadKey() error = %v, want io.EOF", err)
	}
}
