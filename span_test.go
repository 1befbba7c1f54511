package selhtml

import (
	"errors"
	"testing"
)

func TestPositionAt(t *testing.T) {
	src := "ab\ncd\r\nef"
	tests := []struct {
		index, line, column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},  // the \n itself still belongs to line 1
		{3, 2, 1},  // c
		{4, 2, 2},  // d
		{7, 3, 1},  // e, after \r\n
		{9, 3, 3},  // one past the end
	}
	for _, tt := range tests {
		got := PositionAt(src, tt.index)
		if got.Line != tt.line || got.Column != tt.column {
			t.Errorf("PositionAt(%d) = %d:%d, want %d:%d", tt.index, got.Line, got.Column, tt.line, tt.column)
		}
		if got.Index != tt.index {
			t.Errorf("PositionAt(%d).Index = %d", tt.index, got.Index)
		}
	}
}

func TestComputeSpan(t *testing.T) {
	src := "one\ntwo\nthree"

	sp, err := ComputeSpan(src, 4, 7)
	if err != nil {
		t.Fatal(err)
	}
	if sp.Start.Line != 2 || sp.Start.Column != 1 || sp.End.Line != 2 || sp.End.Column != 4 {
		t.Errorf("span = %+v", sp)
	}
	if sp.Length() != 3 {
		t.Errorf("Length() = %d, want 3", sp.Length())
	}

	for _, tt := range []struct{ start, end int }{
		{5, 4},
		{-1, 3},
		{0, len(src) + 1},
	} {
		if _, err := ComputeSpan(src, tt.start, tt.end); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("ComputeSpan(%d, %d) = %v, want ErrInvalidRange", tt.start, tt.end, err)
		}
	}
}

func TestLineIndex(t *testing.T) {
	src := "a\nbb\nccc"
	tests := []struct{ line, want int }{
		{1, 0},
		{2, 2},
		{3, 5},
		{4, len(src) + 1}, // fewer lines than requested
		{0, 0},
	}
	for _, tt := range tests {
		if got := LineIndex(src, tt.line); got != tt.want {
			t.Errorf("LineIndex(%d) = %d, want %d", tt.line, got, tt.want)
		}
	}
	if got := LineIndex("", 2); got != 1 {
		t.Errorf("LineIndex(empty, 2) = %d, want 1", got)
	}
}
