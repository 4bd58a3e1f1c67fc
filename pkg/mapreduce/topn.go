package mapreduce

import (
	"fmt"
	"sort"

	"github.com/dtnitsch/word-parser/models"
	"github.com/dtnitsch/word-parser/pkg/ranker"
)

// TopWords ranks wordCounts with the requested strategy. Both strategies
// return the same entries in the same order.
func TopWords(wordCounts map[string]int, n int, strategy models.RankStrategy) []models.RankedEntry {
	if strategy == models.StrategySort {
		return SortTopWords(wordCounts, n)
	}
	return ranker.GetTopWords(wordCounts, n)
}

// SortTopWords sorts every word with a count of at least 1 and keeps the
// first n. It is the plain alternative to ranker.GetTopWords.
func SortTopWords(wordCounts map[string]int, n int) []models.RankedEntry {
	if n <= 0 {
		return []models.RankedEntry{}
	}

	ss := make([]models.RankedEntry, 0, len(wordCounts))
	for k, v := range wordCounts {
		if v < 1 {
			continue
		}
		ss = append(ss, models.RankedEntry{Word: k, Count: v})
	}

	// Sort by count (descending), then word (ascending)
	sort.Slice(ss, func(i, j int) bool {
		return ranker.Outranks(ss[i], ss[j])
	})

	if len(ss) > n {
		ss = ss[:n]
	}
	return ss
}

// TopKeywords returns the top N words formatted as "word:count"
// (e.g., "learn:1153").
func TopKeywords(wordCounts map[string]int, n int) []string {
	top := ranker.GetTopWords(wordCounts, n)

	keywords := make([]string, len(top))
	for i, e := range top {
		keywords[i] = fmt.Sprintf("%s:%d", e.Word, e.Count)
	}

	return keywords
}
