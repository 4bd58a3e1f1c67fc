package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/word-parser/models"
)

func TestParseText(t *testing.T) {
	p := &Parser{}
	input := "first line\n\n   \nsecond line\n"

	doc, err := p.ParseText("input.txt", strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseText() error = %v", err)
	}

	want := []string{"first line", "second line"}
	if got := doc.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
	if doc.Path != "input.txt" {
		t.Errorf("Path = %q, want %q", doc.Path, "input.txt")
	}
}

func TestExtractBlocks_SkipsNested(t *testing.T) {
	html := `<div>
		<h1>Frogs</h1>
		<ul><li><p>Frogs jump</p></li><li>Toads hop</li></ul>
		<p>
			Ponds are
			wet
		</p>
		<p>   </p>
	</div>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse html: %v", err)
	}

	got := extractBlocks(doc.Selection)
	want := []models.TextBlock{
		{Type: "h1", Text: "Frogs"},
		{Type: "li", Text: "Frogs jump"},
		{Type: "li", Text: "Toads hop"},
		{Type: "p", Text: "Ponds are wet"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractBlocks() = %v, want %v", got, want)
	}
}

func TestExtractBody_PlainBody(t *testing.T) {
	html := `<html><head><title>t</title><style>p { color: red }</style></head>
<body>loose text
<script>var jumping = 1;</script>
second line</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse html: %v", err)
	}

	blocks := extractBody(doc)
	var texts []string
	for _, b := range blocks {
		texts = append(texts, b.Text)
	}
	want := []string{"loose text", "second line"}
	if !reflect.DeepEqual(texts, want) {
		t.Errorf("extractBody() texts = %v, want %v", texts, want)
	}
}

func TestParseHTML(t *testing.T) {
	p := &Parser{}
	html := `<html><head><title>Frog Facts</title></head><body>
<nav><a href="/">Home</a></nav>
<article>
<h1>Frog Facts</h1>
<p>Frogs are jumping amphibians that live near ponds, streams and marshes all over the world.
They jumped into the scientific record millions of years ago and have kept jumping ever since.</p>
<p>A frog jumps by storing energy in its tendons before releasing it in a single explosive motion,
which lets small species cover many times their own body length in one leap.</p>
<p>Researchers studying jumping frogs measure take-off angles, landing forces and the way the
muscles and tendons of the hind legs work together during each jump.</p>
</article>
</body></html>`

	doc, err := p.ParseHTML("frogs.html", html)
	if err != nil {
		t.Fatalf("ParseHTML() error = %v", err)
	}

	text := doc.ToPlainText()
	for _, want := range []string{"amphibians", "tendons", "take-off"} {
		if !strings.Contains(text, want) {
			t.Errorf("ToPlainText() missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "<p>") {
		t.Errorf("ToPlainText() still contains markup:\n%s", text)
	}
}
