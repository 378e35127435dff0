package colorize

import (
	"strings"
)

const (
	spanPrefix = `<span style="color:`
	spanClose  = `</span>`
)

// renderSpans splices the decorated delimiters back into text, wrapping each
// one in a per-character span. Non-delimiter spans are copied verbatim, so
// concatenating the output minus markup reproduces the input exactly.
func renderSpans(text string, decs []Decoration) string {
	var b strings.Builder
	b.Grow(len(text) + len(decs)*(len(spanPrefix)+9+len(spanClose)))

	last := 0
	for _, d := range decs {
		b.WriteString(text[last:d.Pos])
		b.WriteString(spanPrefix)
		b.WriteString(d.Color.Hex())
		b.WriteString(`">`)
		b.WriteByte(d.Char)
		b.WriteString(spanClose)
		last = d.Pos + 1
	}
	b.WriteString(text[last:])

	return b.String()
}

// Strip removes the span markup produced by Colorize, recovering the
// original text. Only the exact pattern emitted by renderSpans is removed:
// an opening span with a 6-digit hex color, a single wrapped character, and
// the closing tag. Anything else, including literal "</span>" text in the
// input, is copied through untouched.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		ch, n := matchSpan(s[i:])
		if n > 0 {
			b.WriteByte(ch)
			i += n
			continue
		}
		b.WriteByte(s[i])
		i++
	}

	return b.String()
}

// matchSpan reports whether s starts with a full renderSpans-produced span,
// returning the wrapped character and the span's total length.
func matchSpan(s string) (byte, int) {
	if !strings.HasPrefix(s, spanPrefix) {
		return 0, 0
	}
	i := len(spanPrefix)

	// "#" plus exactly six lowercase hex digits
	if len(s) < i+7 || s[i] != '#' {
		return 0, 0
	}
	for _, c := range []byte(s[i+1 : i+7]) {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return 0, 0
		}
	}
	i += 7

	if !strings.HasPrefix(s[i:], `">`) {
		return 0, 0
	}
	i += 2

	if len(s) <= i {
		return 0, 0
	}
	ch := s[i]
	i++

	if !strings.HasPrefix(s[i:], spanClose) {
		return 0, 0
	}
	return ch, i + len(spanClose)
}
