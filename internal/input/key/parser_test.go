package key

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSequence(t *testing.T) {
	esc := Chord{Code: CodeEscape}
	tests := []struct {
		spec string
		want Sequence
	}{
		{"C-x C-s", Seq(Ctrl('x'), Ctrl('s'))},
		{"c-x c-s", Seq(Ctrl('x'), Ctrl('s'))},
		{"ctrl+x ctrl+s", Seq(Ctrl('x'), Ctrl('s'))},
		{"Control+A", Seq(Ctrl('a'))},
		{"a", Seq(Chord{Code: 'a'})},
		{"A", Seq(Chord{Code: 'A'})},
		{"S-a", Seq(Chord{Code: 'A'})},
		{"shift+b", Seq(Chord{Code: 'B'})},
		{"M-f", Seq(esc, Chord{Code: 'f'})},
		{"alt+f", Seq(esc, Chord{Code: 'f'})},
		{"C-M-f", Seq(esc, Ctrl('f'))},
		{"ctrl+alt+k", Seq(esc, Ctrl('k'))},
		{"ESC C-k", Seq(esc, Ctrl('k'))},
		{"C-]", Seq(Chord{Code: 29})},
		{"C-[", Seq(esc)},
		{"C--", Seq(Chord{Mods: ModCtrl, Code: '-'})},
		{"+", Seq(Chord{Code: '+'})},
		{"ctrl++", Seq(Chord{Mods: ModCtrl, Code: '+'})},
		{"up", Seq(Chord{Code: CodeUp})},
		{"<PageDown>", Seq(Chord{Code: CodePageDown})},
		{"pgup", Seq(Chord{Code: CodePageUp})},
		{"tab", Seq(FromCode(CodeTab))},
		{"RET", Seq(FromCode(CodeEnter))},
		{"backspace", Seq(Chord{Code: CodeBackspace})},
		{"delete", Seq(Chord{Code: CodeDelete})},
		{"  C-x   b  ", Seq(Ctrl('x'), Chord{Code: 'b'})},
		{"λ", Seq(Chord{Code: 'λ'})},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseSequence(tt.spec)
			if err != nil {
				t.Fatalf("ParseSequence(%q) error = %v", tt.spec, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseSequence(%q) mismatch (-want +got):\n%s", tt.spec, diff)
			}
		})
	}
}

func TestParseSequenceErrors(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"C-", ErrInvalidSpec},
		{"hyper+x", ErrInvalidSpec},
		{"C-x foo", ErrInvalidSpec},
		{"S-1", ErrInvalidSpec},
		{"shift+up", ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := ParseSequence(tt.spec)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseSequence(%q) error = %v, want %v", tt.spec, err, tt.wantErr)
			}
		})
	}
}

func TestParseChordKeepsMeta(t *testing.T) {
	c, err := ParseChord("M-x")
	if err != nil {
		t.Fatalf("ParseChord error = %v", err)
	}
	if !c.Mods.Has(ModAlt) || c.Code != 'x' {
		t.Errorf("ParseChord(M-x) = %+v, want alt x", c)
	}
}

func TestMustParseSequencePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseSequence should panic on invalid input")
		}
	}()
	MustParseSequence("C-")
}
