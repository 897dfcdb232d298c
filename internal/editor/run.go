package editor

import (
	"context"
	"errors"
	"io"
)

// Source yields raw key codes, blocking until one is available.
type Source interface {
	ReadKey() (int, error)
}

// Renderer paints a frame.
type Renderer interface {
	Render(View)
}

// Run renders and processes keys until the editor exits, the source is
// exhausted or ctx is cancelled.
func (e *Editor) Run(ctx context.Context, src Source, r Renderer) error {
	for !e.done {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Render(e.View())

		code, err := src.ReadKey()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		e.HandleInput(code)
	}
	return nil
}
