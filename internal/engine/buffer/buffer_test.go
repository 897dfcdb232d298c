package buffer

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewIsSingleEmptyLine(t *testing.T) {
	b := New()
	if b.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", b.LineCount())
	}
	if b.Content() != "" {
		t.Errorf("Content() = %q, want empty", b.Content())
	}
	if b.Cursor() != (Point{}) {
		t.Errorf("Cursor() = %v, want (0:0)", b.Cursor())
	}
	if b.Modified() {
		t.Error("new buffer should not be modified")
	}
}

func TestLoadNormalizesCRLF(t *testing.T) {
	b := NewFromString("a\r\nb\r\n")
	if diff := cmp.Diff([]string{"a", "b", ""}, b.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
	if b.Content() != "a\nb\n" {
		t.Errorf("Content() = %q", b.Content())
	}
	if b.Encoded() != "a\r\nb\r\n" {
		t.Errorf("Encoded() = %q", b.Encoded())
	}
}

func TestInsertChar(t *testing.T) {
	b := NewFromString("ac")
	b.SetCursor(Point{0, 1})
	b.InsertChar('b')
	if b.Content() != "abc" {
		t.Errorf("Content() = %q, want %q", b.Content(), "abc")
	}
	if b.Cursor() != (Point{0, 2}) {
		t.Errorf("Cursor() = %v, want (0:2)", b.Cursor())
	}
	if !b.Modified() {
		t.Error("insert should set modified")
	}
}

func TestInsertNewline(t *testing.T) {
	b := NewFromString("hello world")
	b.SetCursor(Point{0, 5})
	b.InsertNewline()
	if diff := cmp.Diff([]string{"hello", " world"}, b.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
	if b.Cursor() != (Point{1, 0}) {
		t.Errorf("Cursor() = %v, want (1:0)", b.Cursor())
	}
}

func TestInsertTextWithNewlines(t *testing.T) {
	b := New()
	b.InsertText("(a\n  b)")
	if diff := cmp.Diff([]string{"(a", "  b)"}, b.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
	if b.Cursor() != (Point{1, 4}) {
		t.Errorf("Cursor() = %v, want (1:4)", b.Cursor())
	}
}

func TestBackspace(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		cursor     Point
		want       []string
		wantCursor Point
	}{
		{"mid line", "abc", Point{0, 2}, []string{"ac"}, Point{0, 1}},
		{"join lines", "ab\ncd", Point{1, 0}, []string{"abcd"}, Point{0, 2}},
		{"buffer start", "ab", Point{0, 0}, []string{"ab"}, Point{0, 0}},
		{"empty buffer", "", Point{0, 0}, []string{""}, Point{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.content)
			b.SetCursor(tt.cursor)
			b.Backspace()
			if diff := cmp.Diff(tt.want, b.Lines()); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
			if b.Cursor() != tt.wantCursor {
				t.Errorf("Cursor() = %v, want %v", b.Cursor(), tt.wantCursor)
			}
		})
	}
}

func TestDeleteChar(t *testing.T) {
	tests := []struct {
		name    string
		content string
		cursor  Point
		want    []string
	}{
		{"mid line", "abc", Point{0, 1}, []string{"ac"}},
		{"join next", "ab\ncd", Point{0, 2}, []string{"abcd"}},
		{"buffer end", "ab", Point{0, 2}, []string{"ab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.content)
			b.SetCursor(tt.cursor)
			b.DeleteChar()
			if diff := cmp.Diff(tt.want, b.Lines()); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
			if b.Cursor() != tt.cursor {
				t.Errorf("Cursor() = %v, want %v", b.Cursor(), tt.cursor)
			}
		})
	}
}

func TestHorizontalWrap(t *testing.T) {
	b := NewFromString("ab\ncd")
	b.SetCursor(Point{1, 0})
	b.MoveLeft()
	if b.Cursor() != (Point{0, 2}) {
		t.Errorf("MoveLeft at column 0 = %v, want (0:2)", b.Cursor())
	}
	b.MoveRight()
	if b.Cursor() != (Point{1, 0}) {
		t.Errorf("MoveRight at end of line = %v, want (1:0)", b.Cursor())
	}

	b.SetCursor(Point{0, 0})
	b.MoveLeft()
	if b.Cursor() != (Point{0, 0}) {
		t.Errorf("MoveLeft at buffer start = %v, want no-op", b.Cursor())
	}
	b.SetCursor(Point{1, 2})
	b.MoveRight()
	if b.Cursor() != (Point{1, 2}) {
		t.Errorf("MoveRight at buffer end = %v, want no-op", b.Cursor())
	}
}

func TestVerticalMoveClampsColumn(t *testing.T) {
	b := NewFromString("long line\nab\nanother long")
	b.SetCursor(Point{0, 8})
	b.MoveDown()
	if b.Cursor() != (Point{1, 2}) {
		t.Errorf("MoveDown = %v, want (1:2)", b.Cursor())
	}
	b.MoveDown()
	if b.Cursor() != (Point{2, 2}) {
		t.Errorf("MoveDown = %v, want (2:2)", b.Cursor())
	}
	b.MoveDown()
	if b.Cursor() != (Point{2, 2}) {
		t.Errorf("MoveDown on last line = %v, want no-op", b.Cursor())
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	b := NewFromString("0\n1\n2\n3\n4\n5\n6\n7\n8\n9", WithViewportHeight(3))
	for i := 0; i < 5; i++ {
		b.MoveDown()
	}
	if b.ScrollY() != 3 {
		t.Errorf("ScrollY() = %d, want 3", b.ScrollY())
	}
	if diff := cmp.Diff([]string{"3", "4", "5"}, b.VisibleLines()); diff != "" {
		t.Errorf("VisibleLines() mismatch (-want +got):\n%s", diff)
	}
	b.MoveUp()
	b.MoveUp()
	b.MoveUp()
	if b.ScrollY() != 2 {
		t.Errorf("ScrollY() = %d, want 2", b.ScrollY())
	}
}

func TestPaging(t *testing.T) {
	b := NewFromString("0\n1\n2\n3\n4\n5\n6\n7\n8\n9", WithViewportHeight(4))
	b.MovePageDown()
	if b.Cursor().Line != 4 || b.ScrollY() != 4 {
		t.Errorf("PageDown = line %d scroll %d, want 4 and 4", b.Cursor().Line, b.ScrollY())
	}
	b.MovePageDown()
	b.MovePageDown()
	if b.Cursor().Line != 9 || b.ScrollY() != 6 {
		t.Errorf("PageDown at end = line %d scroll %d, want 9 and 6", b.Cursor().Line, b.ScrollY())
	}
	b.MovePageUp()
	if b.Cursor().Line != 5 || b.ScrollY() != 2 {
		t.Errorf("PageUp = line %d scroll %d, want 5 and 2", b.Cursor().Line, b.ScrollY())
	}
}

func TestTextAndDeleteRange(t *testing.T) {
	b := NewFromString("(foo\n  bar) baz")
	from, to := Point{0, 0}, Point{1, 6}
	if got := b.Text(from, to); got != "(foo\n  bar)" {
		t.Errorf("Text() = %q", got)
	}
	if got := b.Text(to, from); got != "(foo\n  bar)" {
		t.Errorf("Text() with reversed points = %q", got)
	}
	b.DeleteRange(from, to)
	if b.Content() != " baz" {
		t.Errorf("Content() after DeleteRange = %q", b.Content())
	}
	if b.Cursor() != from {
		t.Errorf("Cursor() = %v, want %v", b.Cursor(), from)
	}
}

func TestKillToEndOfLine(t *testing.T) {
	b := NewFromString("abc\ndef")
	b.SetCursor(Point{0, 1})

	got, ok := b.KillToEndOfLine()
	if !ok || got != "bc" {
		t.Errorf("KillToEndOfLine() = %q, %v; want %q, true", got, ok, "bc")
	}
	got, ok = b.KillToEndOfLine()
	if !ok || got != "\n" {
		t.Errorf("KillToEndOfLine() at eol = %q, %v; want newline", got, ok)
	}
	if b.Content() != "adef" {
		t.Errorf("Content() = %q, want %q", b.Content(), "adef")
	}
	b.MoveEnd()
	if _, ok := b.KillToEndOfLine(); ok {
		t.Error("KillToEndOfLine() at buffer end should report nothing killed")
	}
}

func TestSetCursorClamps(t *testing.T) {
	b := NewFromString("ab\nc")
	tests := []struct {
		in, want Point
	}{
		{Point{-3, -1}, Point{0, 0}},
		{Point{0, 10}, Point{0, 2}},
		{Point{5, 5}, Point{1, 1}},
	}
	for _, tt := range tests {
		b.SetCursor(tt.in)
		if b.Cursor() != tt.want {
			t.Errorf("SetCursor(%v) = %v, want %v", tt.in, b.Cursor(), tt.want)
		}
	}
}

func TestInsertBackspacePairsPreserveContent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewFromString("(defn f [x]\n  (* x x))\n\n")
	before := b.Content()

	for i := 0; i < 200; i++ {
		b.SetCursor(Point{rng.Intn(b.LineCount()), rng.Intn(12)})
		b.InsertChar(rune('a' + rng.Intn(26)))
		b.Backspace()
	}
	if b.Content() != before {
		t.Errorf("Content() = %q, want %q", b.Content(), before)
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := New(WithViewportHeight(3))
	ops := []func(){
		b.MoveUp, b.MoveDown, b.MoveLeft, b.MoveRight,
		b.MoveHome, b.MoveEnd, b.MovePageUp, b.MovePageDown,
		b.Backspace, b.DeleteChar, b.InsertNewline,
		func() { b.InsertChar('x') },
		func() { b.KillToEndOfLine() },
	}

	for i := 0; i < 2000; i++ {
		ops[rng.Intn(len(ops))]()
		c := b.Cursor()
		if c.Line < 0 || c.Line >= b.LineCount() {
			t.Fatalf("step %d: line %d outside [0,%d)", i, c.Line, b.LineCount())
		}
		if c.Column < 0 || c.Column > b.LineLen(c.Line) {
			t.Fatalf("step %d: column %d outside [0,%d]", i, c.Column, b.LineLen(c.Line))
		}
		if c.Line < b.ScrollY() || c.Line >= b.ScrollY()+b.ViewportHeight() {
			t.Fatalf("step %d: line %d not visible from scroll %d", i, c.Line, b.ScrollY())
		}
	}
}

func TestRuneAt(t *testing.T) {
	b := NewFromString("(x)")
	if r, ok := b.RuneAt(Point{0, 0}); !ok || r != '(' {
		t.Errorf("RuneAt(0:0) = %q, %v", r, ok)
	}
	if _, ok := b.RuneAt(Point{0, 3}); ok {
		t.Error("RuneAt past end of line should be false")
	}
	if _, ok := b.RuneAt(Point{4, 0}); ok {
		t.Error("RuneAt past last line should be false")
	}
}
