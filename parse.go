package selhtml

import (
	"errors"
	"fmt"
)

// A parser scans a source string left to right, building the node tree. The
// insertion point (cur) moves into each new element so that chained selectors
// nest; statement separators and block delimiters move it back out.
type parser struct {
	src  string
	name string
	doc  *Node
	cur  *Node
	// open is the stack of open scopes: the document root at the bottom and
	// one entry per unmatched '{' above it.
	open nodeStack
}

// Parse builds the node tree for the given source. The name is used in
// diagnostics only; it defaults to "untitled".
//
// On error the returned document still holds everything parsed before the
// failing position, and the error is a *SyntaxError carrying line/column.
func Parse(source, name string) (*Node, error) {
	if name == "" {
		name = "untitled"
	}
	p := &parser{
		src:  source,
		name: name,
		doc: &Node{
			Type:   DocumentNode,
			Data:   name,
			source: source,
		},
	}
	p.doc.Span, _ = ComputeSpan(source, 0, len(source))
	p.cur = p.doc
	p.open = nodeStack{p.doc}
	return p.doc, p.parse()
}

func (p *parser) parse() error {
	i := 0
	for i < len(p.src) {
		c := p.src[i]
		if isWhitespace(c) {
			i++
			continue
		}
		switch c {
		case ';':
			// End of statement: the insertion point returns to the innermost
			// open scope, however deep the selector chain nested.
			p.cur = p.open.top()
			i++
		case '{':
			b := &Node{Type: BlockNode, Scope: p.open.top()}
			b.Span, _ = ComputeSpan(p.src, i, i+1)
			p.cur.AppendChild(b)
			p.open = append(p.open, b)
			p.cur = b
			i++
		case '}':
			if len(p.open) == 1 {
				return p.errorAt(ErrUnbalancedScope, i, "")
			}
			b := p.open.pop()
			b.Span.End = PositionAt(p.src, i+1)
			p.cur = b.Scope
			i++
		default:
			n, length, err := p.match(i)
			if err != nil {
				return p.decorate(err)
			}
			if n == nil {
				return p.errorAt(ErrUnexpectedChar, i, fmt.Sprintf("unexpected character %q", c))
			}
			n.Scope = p.open.top()
			p.cur.AppendChild(n)
			if n.Type == ElementNode {
				p.cur = n
			}
			i += length
		}
	}
	if len(p.open) > 1 {
		b := p.open.top()
		return &SyntaxError{
			File: p.name,
			Err:  ErrUnclosedBlock,
			Pos:  b.Span.Start,
			ctx:  buildErrorContext(p.cur),
		}
	}
	return nil
}

// match offers the position to the text grammar first, then the selector
// grammar. A nil node with a nil error means neither matched.
func (p *parser) match(i int) (*Node, int, error) {
	if n, length, err := parseText(p.src, i); n != nil || err != nil {
		return n, length, err
	}
	return parseSelector(p.src, i)
}

func (p *parser) errorAt(kind error, index int, msg string) error {
	return &SyntaxError{
		File: p.name,
		Err:  kind,
		Msg:  msg,
		Pos:  PositionAt(p.src, index),
		ctx:  buildErrorContext(p.cur),
	}
}

// decorate fills in the file name and tree context on errors raised by the
// grammar functions, which see only the source string.
func (p *parser) decorate(err error) error {
	var se *SyntaxError
	if errors.As(err, &se) {
		se.File = p.name
		se.ctx = buildErrorContext(p.cur)
	}
	return err
}
