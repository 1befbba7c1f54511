// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Modifications:
//  - The node manipulation functions (InsertBefore, AppendChild, RemoveChild)
//    are taken from golang.org/x/net/html; the Node struct itself carries the
//    selhtml fields (attributes, span, scope) instead of the HTML5 ones.

package selhtml

// A NodeType is the type of a Node.
type NodeType int32

const (
	// DocumentNode is the root of a parsed source file. It holds the source
	// text and file name and never has a parent.
	DocumentNode NodeType = iota
	// ElementNode is a tag produced by a selector.
	ElementNode
	// TextNode is a quoted string literal. It never has children or attributes.
	TextNode
	// BlockNode is a `{ ... }` statement group. It is not a tag itself: at
	// render time its children appear as children of the element that opened it.
	BlockNode
)

// An Attribute is a key/value pair on an element. The attribute list of an
// element is sorted by key; duplicate keys are permitted (an explicit
// attribute may repeat an implicit #id or .class one).
type Attribute struct {
	Key, Val string
}

// A Node is a single node of the parse tree: the document root, an element,
// a text literal, or a block.
type Node struct {
	Parent, FirstChild, LastChild, PrevSibling, NextSibling *Node

	Type NodeType

	// Data is the tag name for elements, the raw (still escaped) quoted
	// content for text nodes, and the file name for the document root.
	Data string

	// Attr is the list of attributes of an element, sorted by key.
	Attr []Attribute

	// Span locates the node in the source text.
	Span Span

	// Scope is the innermost open block, or the document root, at the time
	// the node was created. A `;` statement separator returns the insertion
	// point here, which is not necessarily the node's parent: chained
	// selectors nest in the tree but still close back to the enclosing block.
	Scope *Node

	// source holds the full source text. Set on the document root only.
	source string
}

// Root walks up the parent chain to the document root. Returns nil if the
// node is detached from any document.
func (n *Node) Root() *Node {
	for p := n; p != nil; p = p.Parent {
		if p.Type == DocumentNode {
			return p
		}
	}
	return nil
}

// SourceText returns the full source the document was parsed from. It is
// empty for nodes not attached to a document.
func (n *Node) SourceText() string {
	if r := n.Root(); r != nil {
		return r.source
	}
	return ""
}

// FileName returns the name given to Parse, or "" for detached nodes.
func (n *Node) FileName() string {
	if r := n.Root(); r != nil {
		return r.Data
	}
	return ""
}

// InsertBefore inserts newChild as a child of n, immediately before oldChild
// in the sequence of n's children. oldChild may be nil, in which case newChild
// is appended to the end of n's children.
//
// It will panic if newChild already has a parent or siblings.
func (n *Node) InsertBefore(newChild, oldChild *Node) {
	if newChild.Parent != nil || newChild.PrevSibling != nil || newChild.NextSibling != nil {
		panic("selhtml: InsertBefore called for an attached child Node")
	}
	var prev, next *Node
	if oldChild != nil {
		prev, next = oldChild.PrevSibling, oldChild
	} else {
		prev = n.LastChild
	}
	if prev != nil {
		prev.NextSibling = newChild
	} else {
		n.FirstChild = newChild
	}
	if next != nil {
		next.PrevSibling = newChild
	} else {
		n.LastChild = newChild
	}
	newChild.Parent = n
	newChild.PrevSibling = prev
	newChild.NextSibling = next
}

// AppendChild adds a node c as a child of n.
//
// It will panic if c already has a parent or siblings.
func (n *Node) AppendChild(c *Node) {
	if c.Parent != nil || c.PrevSibling != nil || c.NextSibling != nil {
		panic("selhtml: AppendChild called for an attached child Node")
	}
	last := n.LastChild
	if last != nil {
		last.NextSibling = c
	} else {
		n.FirstChild = c
	}
	n.LastChild = c
	c.Parent = n
	c.PrevSibling = last
}

// RemoveChild removes a node c that is a child of n. Afterwards, c will have
// no parent and no siblings.
//
// It will panic if c's parent is not n.
func (n *Node) RemoveChild(c *Node) {
	if c.Parent != n {
		panic("selhtml: RemoveChild called for a non-child Node")
	}
	if n.FirstChild == c {
		n.FirstChild = c.NextSibling
	}
	if c.NextSibling != nil {
		c.NextSibling.PrevSibling = c.PrevSibling
	}
	if n.LastChild == c {
		n.LastChild = c.PrevSibling
	}
	if c.PrevSibling != nil {
		c.PrevSibling.NextSibling = c.NextSibling
	}
	c.Parent = nil
	c.PrevSibling = nil
	c.NextSibling = nil
}

// findElement returns the first element child of n with the given tag,
// looking through blocks: a block is a statement grouping, not a container
// in the rendered output, so `html{head ...}` still has head "inside" html.
func (n *Node) findElement(tag string) *Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case ElementNode:
			if c.Data == tag {
				return c
			}
		case BlockNode:
			if found := c.findElement(tag); found != nil {
				return found
			}
		}
	}
	return nil
}

// elements calls fn for every element child of n, descending through blocks
// but not into elements. Traversal stops when fn returns false.
func (n *Node) elements(fn func(*Node) bool) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case ElementNode:
			if !fn(c) {
				return false
			}
		case BlockNode:
			if !c.elements(fn) {
				return false
			}
		}
	}
	return true
}

// attrVal returns the value of the first attribute with the given key and
// whether it was present.
func (n *Node) attrVal(key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// clone deep-copies the subtree rooted at n. The copy is detached (no parent,
// no siblings) and its Scope pointers refer to the copied nodes, not the
// originals.
func (n *Node) clone() *Node {
	scopes := map[*Node]*Node{}
	var cp func(*Node) *Node
	cp = func(src *Node) *Node {
		dst := &Node{
			Type:   src.Type,
			Data:   src.Data,
			Span:   src.Span,
			source: src.source,
		}
		if len(src.Attr) > 0 {
			dst.Attr = make([]Attribute, len(src.Attr))
			copy(dst.Attr, src.Attr)
		}
		scopes[src] = dst
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			dst.AppendChild(cp(c))
		}
		return dst
	}
	dst := cp(n)
	// Rebind scopes. A scope outside the copied subtree maps to nil.
	var rebind func(*Node, *Node)
	rebind = func(src, dst *Node) {
		dst.Scope = scopes[src.Scope]
		for sc, dc := src.FirstChild, dst.FirstChild; sc != nil; sc, dc = sc.NextSibling, dc.NextSibling {
			rebind(sc, dc)
		}
	}
	rebind(n, dst)
	return dst
}

// nodeStack is a stack of nodes.
type nodeStack []*Node

// pop pops the stack. It will panic if the stack is empty.
func (s *nodeStack) pop() *Node {
	i := len(*s)
	n := (*s)[i-1]
	*s = (*s)[:i-1]
	return n
}

// top returns the most recently pushed node, or nil if the stack is empty.
func (s *nodeStack) top() *Node {
	if i := len(*s); i > 0 {
		return (*s)[i-1]
	}
	return nil
}
