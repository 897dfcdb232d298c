package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/dshills/lispedit/internal/config"
	"github.com/dshills/lispedit/internal/editor"
	"github.com/dshills/lispedit/internal/renderer/highlight"
)

// Renderer draws editor views.
type Renderer struct {
	screen tcell.Screen
	styles map[highlight.Kind]tcell.Style
	bar    tcell.Style
}

// New creates a renderer drawing on screen with theme.
func New(screen tcell.Screen, theme config.Theme) *Renderer {
	r := &Renderer{screen: screen}
	r.SetTheme(theme)
	return r
}

// SetTheme replaces the palette. The next Render uses it.
func (r *Renderer) SetTheme(theme config.Theme) {
	kinds := []highlight.Kind{
		highlight.KindNormal, highlight.KindKeyword, highlight.KindString,
		highlight.KindComment, highlight.KindNumber, highlight.KindDelimiter,
		highlight.KindBuiltin,
	}
	r.styles = make(map[highlight.Kind]tcell.Style, len(kinds))
	for _, k := range kinds {
		style := tcell.StyleDefault.Foreground(toTcell(theme.Color(k.String())))
		if k == highlight.KindDelimiter {
			style = style.Bold(true)
		}
		r.styles[k] = style
	}
	r.bar = tcell.StyleDefault.Reverse(true)
}

func toTcell(c colorful.Color) tcell.Color {
	red, green, blue := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}

// Render paints v and shows the screen.
func (r *Renderer) Render(v editor.View) {
	s := r.screen
	s.Clear()
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}

	textRows := h - 2
	if textRows < 0 {
		textRows = 0
	}
	for row := 0; row < textRows && row < len(v.Lines); row++ {
		r.drawLine(row, w, v.Lines[row])
	}

	if h >= 2 {
		r.drawStatusBar(h-2, w, v)
	}
	r.drawText(0, h-1, w, v.Status, tcell.StyleDefault)

	cy := v.Cursor.Line - v.FirstLine
	if cy >= 0 && cy < textRows && cy < len(v.Lines) {
		cx := DisplayWidth([]rune(v.Lines[cy]), v.Cursor.Column)
		if cx >= w {
			cx = w - 1
		}
		s.ShowCursor(cx, cy)
	} else {
		s.HideCursor()
	}
	s.Show()
}

func (r *Renderer) drawLine(row, width int, line string) {
	rs := []rune(line)
	x := 0
	for _, tok := range highlight.Tokenize(line) {
		x = r.drawText(x, row, width, string(rs[tok.Start:tok.End]), r.styles[tok.Kind])
		if x >= width {
			return
		}
	}
}

// drawText draws s from column x, clipped at width, and returns the
// column after it.
func (r *Renderer) drawText(x, y, width int, s string, style tcell.Style) int {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		rs := g.Runes()
		cw := cellWidth(rs, g.Width())
		if x+cw > width {
			return width
		}
		if isControl(rs[0]) {
			r.screen.SetContent(x, y, ' ', nil, style)
		} else {
			r.screen.SetContent(x, y, rs[0], rs[1:], style)
		}
		x += cw
	}
	return x
}

func (r *Renderer) drawStatusBar(row, width int, v editor.View) {
	name := v.Filename
	if name == "" {
		name = "[New File]"
	}
	left := " " + name
	if v.Modified {
		left += " [+]"
	}
	if v.Pending != "" {
		left += "  " + v.Pending + "-"
	}
	right := fmt.Sprintf("Ln %d, Col %d ", v.Cursor.Line+1, v.Cursor.Column+1)

	for x := 0; x < width; x++ {
		r.screen.SetContent(x, row, ' ', nil, r.bar)
	}
	r.drawText(0, row, width, left, r.bar)
	if rw := uniseg.StringWidth(right); rw < width {
		r.drawText(width-rw, row, width, right, r.bar)
	}
}

// DisplayWidth returns the screen columns taken by the first n runes of
// line.
func DisplayWidth(line []rune, n int) int {
	if n > len(line) {
		n = len(line)
	}
	width := 0
	g := uniseg.NewGraphemes(string(line[:n]))
	for g.Next() {
		width += cellWidth(g.Runes(), g.Width())
	}
	return width
}

// cellWidth treats control characters such as tab as one column so the
// cursor stays in step with the text.
func cellWidth(rs []rune, w int) int {
	if w == 0 && isControl(rs[0]) {
		return 1
	}
	return w
}

func isControl(r rune) bool {
	return r < ' ' || r == 0x7f
}
