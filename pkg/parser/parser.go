package parser

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/word-parser/models"
	"github.com/go-shiori/go-readability"
)

// blockSelector lists the content-bearing tags turned into text blocks.
const blockSelector = "h1,h2,h3,h4,h5,h6,p,li,blockquote,pre,td,th,dt,dd"

type Parser struct{}

// ParseText splits a plain-text document into one block per line.
// Blank lines are kept out of the document.
func (p *Parser) ParseText(path string, r io.Reader) (*models.Document, error) {
	doc := &models.Document{Path: path}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		doc.Blocks = append(doc.Blocks, models.TextBlock{Type: "line", Text: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	return doc, nil
}

// ParseHTML extracts readable text from an HTML document. go-readability
// isolates the main content first; when it finds nothing the whole body is
// used instead.
func (p *Parser) ParseHTML(path, html string) (*models.Document, error) {
	doc := &models.Document{Path: path}

	pageURL := fileURL(path)
	rp := readability.NewParser()
	article, err := rp.Parse(strings.NewReader(html), pageURL)
	if err == nil && strings.TrimSpace(article.Content) != "" {
		content, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse article content: %w", err)
		}
		doc.Title = normalizeText(article.Title)
		doc.Blocks = extractBlocks(content.Selection)
	}

	if len(doc.Blocks) > 0 {
		return doc, nil
	}

	// Fallback: no article detected, use the raw body
	full, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	if doc.Title == "" {
		doc.Title = normalizeText(full.Find("title").First().Text())
	}
	doc.Blocks = extractBody(full)

	return doc, nil
}

// extractBlocks returns one block per content tag, skipping tags nested in
// another content tag so no text is counted twice.
func extractBlocks(sel *goquery.Selection) []models.TextBlock {
	var blocks []models.TextBlock
	sel.Find(blockSelector).Each(func(i int, s *goquery.Selection) {
		if s.ParentsFiltered(blockSelector).Length() > 0 {
			return
		}
		text := normalizeText(s.Text())
		if text == "" {
			return
		}
		blocks = append(blocks, models.TextBlock{
			Type: goquery.NodeName(s),
			Text: text,
		})
	})
	return blocks
}

// extractBody returns content blocks of the whole body, or the body text
// line by line when it has no content tags.
func extractBody(doc *goquery.Document) []models.TextBlock {
	doc.Find("script,style,noscript,template").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}

	if blocks := extractBlocks(body); len(blocks) > 0 {
		return blocks
	}

	var blocks []models.TextBlock
	scanner := bufio.NewScanner(strings.NewReader(body.Text()))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			blocks = append(blocks, models.TextBlock{Type: "text", Text: line})
		}
	}
	return blocks
}

func fileURL(path string) *url.URL {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			// Write the line and a single space for separation
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	// Return the result, trimming the final space
	return strings.TrimSpace(b.String())
}
