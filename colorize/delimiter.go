package colorize

// Kind identifies one of the three recognized bracket categories.
type Kind int

const (
	KindParen Kind = iota
	KindBracket
	KindBrace
)

// String returns the string representation of the delimiter kind
func (k Kind) String() string {
	switch k {
	case KindParen:
		return "paren"
	case KindBracket:
		return "bracket"
	case KindBrace:
		return "brace"
	default:
		return "unknown"
	}
}

// delimiterOf reports whether b is a recognized delimiter, its kind, and
// whether it opens a new nesting level. Only the three fixed ASCII pairs are
// recognized; everything else passes through the scan untouched.
func delimiterOf(b byte) (kind Kind, open bool, ok bool) {
	switch b {
	case '(':
		return KindParen, true, true
	case ')':
		return KindParen, false, true
	case '[':
		return KindBracket, true, true
	case ']':
		return KindBracket, false, true
	case '{':
		return KindBrace, true, true
	case '}':
		return KindBrace, false, true
	}
	return 0, false, false
}
