// Package highlight tokenizes Lisp source lines for coloring.
//
// Tokenization is per line with no carried state: a string left open at
// the end of a line does not continue on the next.
package highlight

// Kind is the highlighting class of a token.
type Kind uint8

// Token kinds.
const (
	KindNormal Kind = iota
	KindKeyword
	KindString
	KindComment
	KindNumber
	KindDelimiter
	KindBuiltin
)

// String returns the kind's theme role name.
func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindString:
		return "string"
	case KindComment:
		return "comment"
	case KindNumber:
		return "number"
	case KindDelimiter:
		return "delimiter"
	case KindBuiltin:
		return "builtin"
	default:
		return "normal"
	}
}

// Token is a run of runes [Start, End) in one line.
type Token struct {
	Kind  Kind
	Start int
	End   int
}

// Len returns the token length in runes.
func (t Token) Len() int {
	return t.End - t.Start
}
