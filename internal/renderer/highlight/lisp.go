package highlight

import "unicode"

// Keywords are the special forms.
var Keywords = setOf(
	"def", "defn", "defmacro", "fn", "let", "if", "do", "cond",
	"loop", "recur", "quote", "unquote", "try", "catch", "throw",
	"ns", "require", "import", "export", "set!",
)

// Builtins are the core library functions and constants.
var Builtins = setOf(
	"map", "filter", "reduce", "cons", "first", "rest", "nth",
	"count", "empty?", "nil?", "list", "vector", "hash-map",
	"get", "assoc", "dissoc", "keys", "vals", "merge",
	"str", "print", "println", "pr", "prn", "read-string",
	"+", "-", "*", "/", "=", "<", ">", "<=", ">=", "not", "and", "or",
	"inc", "dec", "true", "false", "nil",
)

func setOf(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// Tokenize splits line into tokens that cover it completely. Adjacent
// normal runes are merged into one token.
func Tokenize(line string) []Token {
	rs := []rune(line)
	var toks []Token
	add := func(kind Kind, start, end int) {
		if n := len(toks); n > 0 && kind == KindNormal && toks[n-1].Kind == KindNormal && toks[n-1].End == start {
			toks[n-1].End = end
			return
		}
		toks = append(toks, Token{Kind: kind, Start: start, End: end})
	}

	for i := 0; i < len(rs); {
		r := rs[i]
		start := i

		switch {
		case r == ';':
			add(KindComment, i, len(rs))
			return toks

		case r == '"':
			i = stringEnd(rs, i)
			add(KindString, start, i)

		case isDelimiter(r):
			i++
			add(KindDelimiter, start, i)

		case unicode.IsDigit(r) || (r == '-' && i+1 < len(rs) && unicode.IsDigit(rs[i+1])):
			for i < len(rs) && (unicode.IsDigit(rs[i]) || rs[i] == '.' || rs[i] == '-') {
				i++
			}
			add(KindNumber, start, i)

		case isWordStart(r):
			for i < len(rs) && isWordRune(rs[i]) {
				i++
			}
			add(wordKind(string(rs[start:i])), start, i)

		default:
			i++
			add(KindNormal, start, i)
		}
	}
	return toks
}

// stringEnd returns the index after the closing quote of the string
// starting at open, or len(rs) when it is unterminated.
func stringEnd(rs []rune, open int) int {
	for i := open + 1; i < len(rs); i++ {
		switch rs[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(rs)
}

func wordKind(word string) Kind {
	switch {
	case Keywords[word]:
		return KindKeyword
	case Builtins[word]:
		return KindBuiltin
	default:
		return KindNormal
	}
}

func isDelimiter(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

func isWordStart(r rune) bool {
	switch r {
	case '-', '_', '?', '!', '*', '+', '/', '<', '>', '=':
		return true
	}
	return unicode.IsLetter(r)
}

func isWordRune(r rune) bool {
	return isWordStart(r) || unicode.IsDigit(r)
}
