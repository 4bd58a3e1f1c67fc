package mapreduce

import (
	"github.com/dtnitsch/word-parser/models"
	"github.com/dtnitsch/word-parser/pkg/analytics"
)

// Map generates a stem frequency map for a single document.
func Map(doc *models.Document, a *analytics.Analytics) map[string]int {
	return a.WordFrequencyFromLines(doc.Lines())
}

// Reduce aggregates a slice of frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
