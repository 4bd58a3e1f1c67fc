// Package tokenizer splits lines into candidate words and filters them.
package tokenizer

import (
	"strings"

	"github.com/dtnitsch/word-parser/pkg/stopwords"
)

// Tokenizer splits a line on whitespace, strips non-alphabetic characters
// and drops stop words. Casing is preserved; stemming lowercases later.
type Tokenizer struct {
	stop *stopwords.Set
}

// New returns a Tokenizer filtering against stop. A nil set filters nothing.
func New(stop *stopwords.Set) *Tokenizer {
	return &Tokenizer{stop: stop}
}

// Tokens returns the accepted words of line, in order.
//
// A token is dropped when either its raw form ("a") or its stripped form
// ("a," -> "a") is a stop word, or when nothing alphabetic remains.
func (t *Tokenizer) Tokens(line string) []string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(fields))
	for _, raw := range fields {
		if t.stop.Contains(raw) {
			continue
		}
		word := RemoveNonAlpha(raw)
		if word == "" || t.stop.Contains(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// RemoveNonAlpha keeps only ASCII letters of word.
func RemoveNonAlpha(word string) string {
	clean := true
	for i := 0; i < len(word); i++ {
		if !isAlpha(word[i]) {
			clean = false
			break
		}
	}
	if clean {
		return word
	}

	var b strings.Builder
	b.Grow(len(word))
	for i := 0; i < len(word); i++ {
		if isAlpha(word[i]) {
			b.WriteByte(word[i])
		}
	}
	return b.String()
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
