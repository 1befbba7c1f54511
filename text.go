package selhtml

import "strings"

// isQuote reports whether c opens a string literal.
func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

// scanQuoted measures a quoted string starting at src[start], which must be a
// quote character. It returns the total length including both quotes. The
// string ends at the first occurrence of the opening quote that is preceded
// by an even number of backslashes. Returns ErrUnclosedString (wrapped in a
// *SyntaxError positioned at the opening quote) when the quote never closes.
func scanQuoted(src string, start int) (int, error) {
	quote := src[start]
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++ // the escaped character cannot terminate the string
		case quote:
			return i + 1 - start, nil
		}
	}
	return 0, &SyntaxError{
		Err: ErrUnclosedString,
		Pos: PositionAt(src, start),
	}
}

// parseText matches a quoted string literal at src[start] and returns a Text
// node holding the raw content between the quotes, escapes still intact.
// Decoding is deferred to render time so the stored value round-trips to
// source form. A zero length means the position does not start a string.
func parseText(src string, start int) (*Node, int, error) {
	if start >= len(src) || !isQuote(src[start]) {
		return nil, 0, nil
	}
	n, err := scanQuoted(src, start)
	if err != nil {
		return nil, 0, err
	}
	span, err := ComputeSpan(src, start, start+n)
	if err != nil {
		return nil, 0, err
	}
	return &Node{
		Type: TextNode,
		Data: src[start+1 : start+n-1],
		Span: span,
	}, n, nil
}

// decodeText resolves backslash escapes in the raw content of a text node.
// The two-character escape `\n` is a hard line break and splits the text; the
// returned segments are joined with <br> at render time. Any other escaped
// character decodes to itself.
func decodeText(raw string) []string {
	var segs []string
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '\\' && i+1 < len(raw) {
			i++
			if raw[i] == 'n' {
				segs = append(segs, b.String())
				b.Reset()
				continue
			}
			b.WriteByte(raw[i])
			continue
		}
		b.WriteByte(c)
	}
	return append(segs, b.String())
}

// unescape decodes backslash escapes without hard-break handling. Used for
// quoted attribute values, where a line break has no meaning.
func unescape(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}
