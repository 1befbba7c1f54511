package selhtml

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const renderedHead = `<head>` +
	`<meta charset=UTF-8>` +
	`<meta content=IE=edge http-equiv=X-UA-Compatible>` +
	`<meta content="width=device-width, initial-scale=1.0" name=viewport>` +
	`<title>Untitled</title>` +
	`</head>`

func prologue() string {
	return banner + "\n<!DOCTYPE html>\n"
}

func TestCompileDocument(t *testing.T) {
	src := `html[lang=en]{head title "Hello World"; body{h1 "Hi!"; p "Text.";}}`
	want := prologue() +
		`<html lang=en>` +
		`<head>` +
		`<meta charset=UTF-8>` +
		`<meta content=IE=edge http-equiv=X-UA-Compatible>` +
		`<meta content="width=device-width, initial-scale=1.0" name=viewport>` +
		`<title>Hello World</title>` +
		`</head>` +
		`<body><h1>Hi!</h1><p>Text.</p></body>` +
		`</html>`
	got, err := Compile(src, "doc.sel")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileBareStatement(t *testing.T) {
	got, err := Compile(`p "hi";`, "")
	if err != nil {
		t.Fatal(err)
	}
	want := prologue() + `<html>` + renderedHead + `<body><p>hi</p></body></html>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderBodyFragments(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string // expected <body> content
	}{
		{"text escaping", `p "<b>&\""`, `<p>&lt;b&gt;&amp;&quot;</p>`},
		{"hard line break", `p "a\nb"`, `<p>a<br>b</p>`},
		{"break is not escaped", `p "x\n<y"`, `<p>x<br>&lt;y</p>`},
		{"boolean shorthand from value equal to key", `input[checked=checked]`, `<input checked>`},
		{"boolean shorthand ignores case", `input[checked=CHECKED]`, `<input checked>`},
		{"boolean shorthand from empty value", `input[disabled]`, `<input disabled>`},
		{"void element", `div{br; hr;}`, `<div><br><hr></div>`},
		{"void element children are dropped", `br "x"`, `<br>`},
		{"void element with attributes", `img[alt="a b" src=x.png]`, `<img alt="a b" src=x.png>`},
		{"unquoted attribute value", `a[href=/about]`, `<a href=/about></a>`},
		{"quoted when value has spaces", `p[title="two words"]`, `<p title="two words"></p>`},
		{"quoted when value has a quote", `p[title=it's]`, `<p title="it's"></p>`},
		{"escaped angle brackets in value", `p[data-x="<y>"]`, `<p data-x="&lt;y&gt;"></p>`},
		{"id and class sugar", `p#x.b.a "t"`, `<p class="a b" id=x>t</p>`},
		{"duplicate id quirk", `div#foo[id=bar]`, `<div id=foo id=bar></div>`},
		{"block renders transparently", `ul{li "1"; li "2";}`, `<ul><li>1</li><li>2</li></ul>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.src, "frag.sel")
			if err != nil {
				t.Fatal(err)
			}
			body := got[strings.Index(got, "<body>")+len("<body>") : strings.Index(got, "</body>")]
			if diff := cmp.Diff(tt.want, body); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	doc := mustParse(t, `html{body{p#a.z.y "x";}}`)
	before := dump(doc)
	first, err := Render(doc)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Render(doc)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("two renders of the same document differ")
	}
	if after := dump(doc); after != before {
		t.Errorf("Render mutated the document:\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestRenderRequiresDocument(t *testing.T) {
	if _, err := Render(nil); err == nil {
		t.Error("Render(nil) should fail")
	}
	doc := mustParse(t, "p")
	if _, err := Render(doc.FirstChild); err == nil {
		t.Error("Render on a non-document node should fail")
	}
}

func TestOuterAndInnerHTML(t *testing.T) {
	doc := mustParse(t, `p.a "x"`)
	p := doc.FirstChild
	if got, want := p.OuterHTML(), `<p class=a>x</p>`; got != want {
		t.Errorf("OuterHTML() = %q, want %q", got, want)
	}
	if got, want := p.InnerHTML(), "x"; got != want {
		t.Errorf("InnerHTML() = %q, want %q", got, want)
	}

	doc = mustParse(t, `div{a "1"; b "2";}`)
	block := doc.FirstChild.FirstChild
	if got, want := block.OuterHTML(), "<a>1</a><b>2</b>"; got != want {
		t.Errorf("block OuterHTML() = %q, want %q", got, want)
	}

	text := mustParse(t, `p "a\n<x>"`).FirstChild.FirstChild
	if got, want := text.InnerHTML(), "a<br>&lt;x&gt;"; got != want {
		t.Errorf("text InnerHTML() = %q, want %q", got, want)
	}

	full := mustParse(t, `p "hi"`).OuterHTML()
	if !strings.HasPrefix(full, banner) || !strings.Contains(full, "<body><p>hi</p></body>") {
		t.Errorf("document OuterHTML() = %q", full)
	}
}
