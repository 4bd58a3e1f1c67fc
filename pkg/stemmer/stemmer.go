// Package stemmer reduces inflected English words to a root form.
package stemmer

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/word-parser/models"
	"github.com/kljensen/snowball"
)

// Stemmer reduces a single word to its root.
type Stemmer interface {
	Stem(word string) string
}

// New returns the stemmer for the given algorithm.
func New(algorithm models.StemAlgorithm) (Stemmer, error) {
	alg, err := models.ParseStemAlgorithm(string(algorithm))
	if err != nil {
		return nil, err
	}
	switch alg {
	case models.StemSnowball:
		return Snowball{}, nil
	default:
		return Porter{}, nil
	}
}

// Snowball stems with the Porter2 English algorithm from kljensen/snowball.
// Stop words are stemmed as well; filtering is the tokenizer's job.
type Snowball struct{}

// Stem returns the Porter2 root of word, or the lowercased word when the
// snowball library rejects it.
func (Snowball) Stem(word string) string {
	if word == "" {
		return word
	}
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil {
		return strings.ToLower(word)
	}
	return stemmed
}

// Describe is used in log lines.
func Describe(s Stemmer) string {
	switch s.(type) {
	case Porter, *Porter:
		return string(models.StemPorter)
	case Snowball, *Snowball:
		return string(models.StemSnowball)
	}
	return fmt.Sprintf("%T", s)
}
