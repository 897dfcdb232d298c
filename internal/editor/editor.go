package editor

import (
	"fmt"

	"github.com/dshills/lispedit/internal/engine/buffer"
	"github.com/dshills/lispedit/internal/engine/killring"
	"github.com/dshills/lispedit/internal/input/keymap"
	"github.com/dshills/lispedit/internal/logging"
	"github.com/dshills/lispedit/internal/session"
)

// DefaultTabWidth is the number of spaces inserted for Tab.
const DefaultTabWidth = 2

// reservedRows is the screen space taken by the status and message lines.
const reservedRows = 2

// Editor is the editing controller for a single buffer.
type Editor struct {
	sess     *session.Session
	log      *logging.Logger
	buf      *buffer.Buffer
	ring     *killring.Ring
	keys     *keymap.Matcher
	files    Files
	commands map[string]Command

	tabWidth  int
	debug     bool
	status    string
	quitArmed bool
	lossy     bool
	saveArmed bool
	done      bool
}

// Option configures an Editor.
type Option func(*Editor)

// WithFiles sets the file I/O collaborator. The default is OSFiles.
func WithFiles(f Files) Option {
	return func(e *Editor) {
		e.files = f
	}
}

// WithTabWidth sets how many spaces Tab inserts.
func WithTabWidth(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.tabWidth = n
		}
	}
}

// WithKillRingSize sets the kill ring capacity.
func WithKillRingSize(n int) Option {
	return func(e *Editor) {
		e.ring.SetMax(n)
	}
}

// WithDebugKeys enables the key debugging status line.
func WithDebugKeys(on bool) Option {
	return func(e *Editor) {
		e.debug = on
	}
}

// WithScreenHeight sizes the viewport for a terminal of h rows.
func WithScreenHeight(h int) Option {
	return func(e *Editor) {
		e.Resize(h)
	}
}

// New creates an editor with an empty buffer and the default bindings.
// A nil session gets a fresh one.
func New(sess *session.Session, opts ...Option) *Editor {
	if sess == nil {
		sess = session.New(nil)
	}
	e := &Editor{
		sess:     sess,
		log:      sess.Logger.WithComponent("editor"),
		buf:      buffer.New(),
		ring:     killring.New(killring.DefaultMax),
		keys:     keymap.NewMatcher(),
		files:    OSFiles{},
		tabWidth: DefaultTabWidth,
	}
	e.registerCommands()
	e.installDefaultBindings()

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Session returns the editor's session.
func (e *Editor) Session() *session.Session { return e.sess }

// Buffer returns the edited buffer.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

// KillRing returns the kill ring.
func (e *Editor) KillRing() *killring.Ring { return e.ring }

// Keys returns the key matcher.
func (e *Editor) Keys() *keymap.Matcher { return e.keys }

// Status returns the current status message.
func (e *Editor) Status() string { return e.status }

// SetStatus replaces the status message.
func (e *Editor) SetStatus(msg string) { e.status = msg }

// Statusf formats and sets the status message.
func (e *Editor) Statusf(format string, args ...any) {
	e.status = fmt.Sprintf(format, args...)
}

// Debug reports whether key debugging is on.
func (e *Editor) Debug() bool { return e.debug }

// SetDebug turns key debugging on or off.
func (e *Editor) SetDebug(on bool) {
	e.debug = on
	if on {
		e.status = "Key binding debug mode enabled"
	} else {
		e.status = "Key binding debug mode disabled"
	}
}

// TabWidth returns the number of spaces Tab inserts.
func (e *Editor) TabWidth() int { return e.tabWidth }

// SetTabWidth changes the number of spaces Tab inserts.
func (e *Editor) SetTabWidth(n int) {
	if n > 0 {
		e.tabWidth = n
	}
}

// Done reports whether the editor has been asked to exit.
func (e *Editor) Done() bool { return e.done }

// Resize adapts the viewport to a terminal of h rows.
func (e *Editor) Resize(h int) {
	e.buf.SetViewportHeight(h - reservedRows)
}

// View is a snapshot of what a renderer needs to paint one frame.
type View struct {
	Lines     []string
	FirstLine int
	LineCount int
	Cursor    buffer.Point
	Filename  string
	Modified  bool
	Status    string
	Pending   string
}

// View returns the current frame.
func (e *Editor) View() View {
	return View{
		Lines:     e.buf.VisibleLines(),
		FirstLine: e.buf.ScrollY(),
		LineCount: e.buf.LineCount(),
		Cursor:    e.buf.Cursor(),
		Filename:  e.buf.Filename(),
		Modified:  e.buf.Modified(),
		Status:    e.status,
		Pending:   e.keys.PendingPrefix(),
	}
}
