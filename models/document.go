package models

import "strings"

// Document is the text content of one input file, split into blocks.
// Plain text files produce one block per line; HTML files produce one
// block per content-bearing element.
type Document struct {
	Path   string      `json:"path"`
	Title  string      `json:"title,omitempty"`
	Blocks []TextBlock `json:"blocks"`
}

// TextBlock is a unit of readable text.
type TextBlock struct {
	Type string `json:"type"` // "line", "h1", "p", "li", ...
	Text string `json:"text"`
}

// Lines returns the non-blank text of every block, in order.
func (d *Document) Lines() []string {
	lines := make([]string, 0, len(d.Blocks)+1)
	if t := strings.TrimSpace(d.Title); t != "" {
		lines = append(lines, t)
	}
	for _, b := range d.Blocks {
		if strings.TrimSpace(b.Text) == "" {
			continue
		}
		lines = append(lines, b.Text)
	}
	return lines
}

// ToPlainText joins all lines with newlines.
func (d *Document) ToPlainText() string {
	return strings.Join(d.Lines(), "\n")
}
