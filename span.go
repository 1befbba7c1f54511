package selhtml

// A Position is a single boundary in the source text.
type Position struct {
	Index  int // byte offset from the start of the source
	Line   int // 1-based line number
	Column int // 1-based column, counted from the last line break
}

// A Span is a half-open range [Start.Index, End.Index) in the source text.
type Span struct {
	Start, End Position
}

// Length returns the span's extent in bytes.
func (s Span) Length() int {
	return s.End.Index - s.Start.Index
}

// IsZero returns true if the span is uninitialized.
func (s Span) IsZero() bool {
	return s == Span{}
}

// PositionAt computes the line/column of a byte offset by scanning the source
// from the beginning. A line break is `\n`, optionally preceded by `\r`; the
// `\r` counts toward neither the line number nor the column of the break
// itself, but a column measured after a `\r\n` pair starts right after the
// `\n`. Positions are recomputed on every call; callers needing repeated
// lookups should memoize externally.
func PositionAt(source string, index int) Position {
	line, last := 1, -1
	for i := 0; i < index && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			last = i
		}
	}
	return Position{Index: index, Line: line, Column: index - last}
}

// ComputeSpan resolves a start/end offset pair into a Span with line/column
// information for both boundaries. It returns ErrInvalidRange when start > end,
// start < 0, or end > len(source).
func ComputeSpan(source string, start, end int) (Span, error) {
	if start < 0 || start > end || end > len(source) {
		return Span{}, &SyntaxError{
			Err: ErrInvalidRange,
			Pos: Position{Index: start, Line: 1, Column: 1},
		}
	}
	return Span{
		Start: PositionAt(source, start),
		End:   PositionAt(source, end),
	}, nil
}

// LineIndex returns the byte offset of the first character of the given
// 1-based line: the index immediately after the (line-1)-th line break. If
// the source has fewer lines, it returns len(source)+1.
func LineIndex(source string, line int) int {
	if line <= 1 {
		return 0
	}
	n := 1
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			n++
			if n == line {
				return i + 1
			}
		}
	}
	return len(source) + 1
}
