// Package analytics turns text into stem frequencies.
package analytics

import (
	"io"
	"log/slog"
	"strings"

	"github.com/dtnitsch/word-parser/pkg/stemmer"
	"github.com/dtnitsch/word-parser/pkg/tokenizer"
)

// Analytics runs the tokenize -> stem -> count pipeline.
type Analytics struct {
	tokenizer *tokenizer.Tokenizer
	stemmer   stemmer.Stemmer
	logger    *slog.Logger
}

// Option configures an Analytics.
type Option func(*Analytics)

// WithLogger sets the logger used for per-document debug lines.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analytics) {
		a.logger = l
	}
}

// New returns an Analytics using tok to split lines and s to stem words.
// A nil stemmer defaults to Porter.
func New(tok *tokenizer.Tokenizer, s stemmer.Stemmer, opts ...Option) *Analytics {
	if s == nil {
		s = stemmer.Porter{}
	}
	if tok == nil {
		tok = tokenizer.New(nil)
	}
	a := &Analytics{
		tokenizer: tok,
		stemmer:   s,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ParseLine counts the stems of every accepted word in line.
// Blank lines are skipped without reaching the tokenizer.
func (a *Analytics) ParseLine(line string, c *Counter) {
	if strings.TrimSpace(line) == "" {
		return
	}
	for _, word := range a.tokenizer.Tokens(line) {
		c.Increment(a.stemmer.Stem(word))
	}
}

// WordFrequencyFromLines returns the stem frequencies of lines. Reading
// input into lines is the parser's job.
func (a *Analytics) WordFrequencyFromLines(lines []string) map[string]int {
	c := NewCounter()
	for _, line := range lines {
		a.ParseLine(line, c)
	}

	a.logger.Debug("counted lines", "lines", len(lines), "distinct", c.Len(), "total", c.Total())
	return c.Frequencies()
}
