package selhtml

import (
	"fmt"
	"strings"
)

// banner is emitted at the top of every rendered document.
const banner = "<!-- Generated by selhtml. Do not edit. -->"

// voidElements are the HTML tags that never take contents or an end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// escaper rewrites the four characters that are unsafe in HTML text and
// attribute values. x/net/html's EscapeString is not used here because it
// emits numeric entities (&#34;) where this output format requires the named
// ones.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeString(s string) string {
	return escaper.Replace(s)
}

// Render normalizes the document (on a private copy) and serializes it:
// a banner comment, the doctype, and the <html> element. Everything the
// source put outside html/head/body appears inside <body>.
func Render(doc *Node) (string, error) {
	if doc == nil || doc.Type != DocumentNode {
		return "", fmt.Errorf("selhtml: Render requires a document node")
	}
	root := Normalize(doc)
	var b strings.Builder
	b.WriteString(banner)
	b.WriteByte('\n')
	b.WriteString("<!DOCTYPE html>")
	b.WriteByte('\n')
	writeNode(&b, root)
	return b.String(), nil
}

// OuterHTML serializes the node itself. For a document this is the full
// normalized render; for a block it is the children only, since a block is
// not a tag.
func (n *Node) OuterHTML() string {
	if n.Type == DocumentNode {
		s, _ := Render(n)
		return s
	}
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// InnerHTML serializes the node's contents: the decoded value for text nodes,
// the rendered children for everything else.
func (n *Node) InnerHTML() string {
	var b strings.Builder
	if n.Type == TextNode {
		writeText(&b, n)
	} else {
		writeChildren(&b, n)
	}
	return b.String()
}

func writeNode(b *strings.Builder, n *Node) {
	switch n.Type {
	case TextNode:
		writeText(b, n)
	case ElementNode:
		b.WriteByte('<')
		b.WriteString(n.Data)
		for _, a := range n.Attr {
			writeAttr(b, a)
		}
		b.WriteByte('>')
		if voidElements[n.Data] {
			// No end tag; any children the source gave a void element are
			// dropped from the output.
			return
		}
		writeChildren(b, n)
		b.WriteString("</")
		b.WriteString(n.Data)
		b.WriteByte('>')
	case BlockNode, DocumentNode:
		writeChildren(b, n)
	}
}

func writeChildren(b *strings.Builder, n *Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNode(b, c)
	}
}

// writeText decodes the raw literal and escapes each segment, joining the
// hard line breaks as <br> tags, which must themselves stay unescaped.
func writeText(b *strings.Builder, n *Node) {
	for i, seg := range decodeText(n.Data) {
		if i > 0 {
			b.WriteString("<br>")
		}
		b.WriteString(escapeString(seg))
	}
}

// writeAttr renders one attribute, preceded by a space. An empty value, or a
// value equal to the key ignoring case, collapses to the bare key. Values are
// escaped and left unquoted unless the value contains whitespace or a quote
// or angle-bracket character.
func writeAttr(b *strings.Builder, a Attribute) {
	b.WriteByte(' ')
	b.WriteString(a.Key)
	if a.Val == "" || strings.EqualFold(a.Val, a.Key) {
		return
	}
	b.WriteByte('=')
	esc := escapeString(a.Val)
	if strings.ContainsAny(a.Val, whitespace+`"'<>`) {
		b.WriteByte('"')
		b.WriteString(esc)
		b.WriteByte('"')
	} else {
		b.WriteString(esc)
	}
}
