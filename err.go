package selhtml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
)

// Error kinds reported by the parser and the position tracker. Match them
// with errors.Is; the concrete error returned is a *SyntaxError wrapping one
// of these.
var (
	ErrInvalidRange    = errors.New("invalid source range")
	ErrUnclosedString  = errors.New("unclosed string literal")
	ErrUnclosedBlock   = errors.New("unclosed block")
	ErrUnbalancedScope = errors.New("unbalanced '}'")
	ErrUnexpectedChar  = errors.New("unexpected character")
)

// A SyntaxError describes why and where a parse stopped. Parsing is
// deterministic and does not recover: the first SyntaxError is terminal for
// the document, though the subtree built before Pos is still usable.
type SyntaxError struct {
	File string   // file name given to Parse
	Pos  Position // where the parse stopped
	Msg  string   // optional detail; Err.Error() when empty
	Err  error    // one of the Err* kinds

	ctx *etree.Element
}

func (e *SyntaxError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Err.Error()
	}
	file := e.File
	if file == "" {
		file = "untitled"
	}
	return fmt.Sprintf("%s:%d:%d: %s", file, e.Pos.Line, e.Pos.Column, msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// HTMLContext renders the partially built tree around the failure point as an
// HTML snippet, for error pages and log output. It returns "" when no context
// was captured (e.g. for ErrInvalidRange from ComputeSpan).
func (e *SyntaxError) HTMLContext() string {
	if e.ctx == nil {
		return ""
	}
	return renderErrorContext(e.ctx)
}

// errorContextBuilder groups the helpers that turn the tail of the parse tree
// into a small etree fragment.
type errorContextBuilder struct{}

// addTrailing appends the last children of n (newest last), eliding all but
// the final two behind a "..." marker.
func (b errorContextBuilder) addTrailing(doc *etree.Element, n *Node) {
	var tail []*Node
	for c := n.LastChild; c != nil && len(tail) < 2; c = c.PrevSibling {
		tail = append(tail, c)
	}
	if len(tail) == 2 && tail[1].PrevSibling != nil {
		doc.AddChild(etree.NewText("..."))
	}
	for i := len(tail) - 1; i >= 0; i-- {
		b.addNode(doc, tail[i])
	}
}

func (b errorContextBuilder) addNode(doc *etree.Element, n *Node) {
	switch n.Type {
	case ElementNode:
		clone := etree.NewElement(n.Data)
		for _, a := range n.Attr {
			clone.CreateAttr(a.Key, a.Val)
		}
		if n.FirstChild != nil {
			clone.AddChild(etree.NewText("..."))
		}
		doc.AddChild(clone)
	case TextNode:
		doc.AddChild(etree.NewText(n.Data))
	case BlockNode:
		doc.AddChild(etree.NewText("{...}"))
	}
}

// wrapOpen wraps the fragment in the innermost open element enclosing n, so
// the snippet reads as "inside <this>". The document root is not wrapped.
func (b errorContextBuilder) wrapOpen(doc *etree.Element, n *Node) *etree.Element {
	el := n
	for el != nil && el.Type != ElementNode {
		el = el.Parent
	}
	if el == nil {
		return doc
	}
	doc.Tag = el.Data
	for _, a := range el.Attr {
		doc.CreateAttr(a.Key, a.Val)
	}
	wrapper := &etree.Element{}
	wrapper.AddChild(doc)
	return wrapper
}

// buildErrorContext creates an XML fragment around the insertion point n to
// provide context for an error.
func buildErrorContext(n *Node) *etree.Element {
	doc := &etree.Element{}
	b := errorContextBuilder{}
	b.addTrailing(doc, n)
	return b.wrapOpen(doc, n)
}

func renderErrorContext(doc *etree.Element) string {
	dst := &html.Node{Type: html.DocumentNode}

	// traverse the etree.Element and build the html.Node tree
	var render func(*html.Node, *etree.Element)
	render = func(dst *html.Node, src *etree.Element) {
		for _, c := range src.Child {
			switch t := c.(type) {
			case *etree.Element:
				n := &html.Node{Type: html.ElementNode, Data: t.FullTag()}
				for _, a := range t.Attr {
					n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Value})
				}
				dst.AppendChild(n)
				render(n, t)
			case *etree.CharData:
				dst.AppendChild(&html.Node{Type: html.TextNode, Data: t.Data})
			}
		}
	}

	render(dst, doc)

	var buf strings.Builder
	_ = html.Render(&buf, dst)

	return buf.String()
}
