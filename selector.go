package selhtml

import (
	"slices"
	"sort"
	"strings"
)

const whitespace = " \t\r\n\f"

func isWhitespace(c byte) bool {
	return strings.IndexByte(whitespace, c) >= 0
}

// isNameChar reports whether c may appear in a tag name, #id or .class
// fragment: anything except the selector punctuation and whitespace.
func isNameChar(c byte) bool {
	switch c {
	case '#', '.', '[', ']', '{', '}', ';':
		return false
	}
	return !isWhitespace(c)
}

// parseSelector matches a selector at src[start]:
//
//	tagName? ('#' id)? ('.' class)* ('[' attrs ']')?
//
// All parts are optional, but at least one must be present; a zero length
// means no match (the original consumed one stray character here, which a
// clean grammar has no rule for). The tag name defaults to "div". Class
// fragments are deduplicated, sorted and space-joined into a single class
// attribute; the final attribute list is sorted by key with duplicates kept
// (an explicit [id=x] next to #y yields two id entries).
func parseSelector(src string, start int) (*Node, int, error) {
	i := start
	readName := func() string {
		j := i
		for i < len(src) && isNameChar(src[i]) {
			i++
		}
		return src[j:i]
	}

	tag := readName()

	var id string
	hasID := false
	if i < len(src) && src[i] == '#' {
		j := i
		i++
		if id = readName(); id == "" {
			i = j // a lone '#' is not an id
		} else {
			hasID = true
		}
	}

	var classes []string
	for i < len(src) && src[i] == '.' {
		j := i
		i++
		frag := readName()
		if frag == "" {
			i = j
			break
		}
		classes = append(classes, frag)
	}

	var extra []Attribute
	if i < len(src) && src[i] == '[' {
		attrs, n, err := parseAttrList(src, i)
		if err != nil {
			return nil, 0, err
		}
		extra = attrs
		i += n
	}

	if i == start {
		return nil, 0, nil
	}

	var attrs []Attribute
	if hasID {
		attrs = append(attrs, Attribute{Key: "id", Val: id})
	}
	if len(classes) > 0 {
		sort.Strings(classes)
		classes = slices.Compact(classes)
		attrs = append(attrs, Attribute{Key: "class", Val: strings.Join(classes, " ")})
	}
	attrs = append(attrs, extra...)
	sort.SliceStable(attrs, func(a, b int) bool { return attrs[a].Key < attrs[b].Key })

	if tag == "" {
		tag = "div"
	}
	span, err := ComputeSpan(src, start, i)
	if err != nil {
		return nil, 0, err
	}
	return &Node{
		Type: ElementNode,
		Data: tag,
		Attr: attrs,
		Span: span,
	}, i - start, nil
}

// parseAttrList scans a bracketed attribute list starting at the '[' at
// src[open]. The interior is a whitespace-separated sequence of `key` or
// `key=value` pairs; a value is either a quoted string (backslash escapes
// decoded) or a run of non-whitespace characters. Keys are not deduplicated.
// Returns the consumed length including both brackets.
func parseAttrList(src string, open int) ([]Attribute, int, error) {
	var attrs []Attribute
	i := open + 1
	for {
		for i < len(src) && isWhitespace(src[i]) {
			i++
		}
		if i >= len(src) {
			return nil, 0, &SyntaxError{
				Err: ErrUnclosedBlock,
				Msg: "unclosed attribute list",
				Pos: PositionAt(src, open),
			}
		}
		if src[i] == ']' {
			return attrs, i + 1 - open, nil
		}

		var key string
		if isQuote(src[i]) {
			n, err := scanQuoted(src, i)
			if err != nil {
				return nil, 0, err
			}
			key = unescape(src[i+1 : i+n-1])
			i += n
		} else {
			j := i
			for i < len(src) && !isWhitespace(src[i]) && src[i] != '=' && src[i] != ']' {
				i++
			}
			key = src[j:i]
		}

		var val string
		if i < len(src) && src[i] == '=' {
			i++
			if i < len(src) && isQuote(src[i]) {
				n, err := scanQuoted(src, i)
				if err != nil {
					return nil, 0, err
				}
				val = unescape(src[i+1 : i+n-1])
				i += n
			} else {
				j := i
				for i < len(src) && !isWhitespace(src[i]) && src[i] != ']' {
					i++
				}
				val = src[j:i]
			}
		}
		attrs = append(attrs, Attribute{Key: key, Val: val})
	}
}
