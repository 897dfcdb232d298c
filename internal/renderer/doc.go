// Package renderer paints editor frames onto a tcell screen.
//
// The screen is split into the text area, a reverse-video status bar on
// the second to last row and a message line on the last row. Text is
// colored by the Lisp tokenizer in package highlight using the theme's
// palette.
package renderer
