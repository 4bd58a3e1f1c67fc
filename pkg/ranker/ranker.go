// Package ranker selects the most frequent words from a frequency map.
//
// The order is total: higher counts first, and among equal counts the
// lexicographically smaller word first. A word therefore has exactly one
// place in any list, whatever order the map is iterated in.
package ranker

import "github.com/dtnitsch/word-parser/models"

// Outranks reports whether a sorts before b.
func Outranks(a, b models.RankedEntry) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Word < b.Word
}

// GetTopWords returns the n highest-ranked entries of frequencies.
//
// It keeps a sorted working list of at most n entries. Each candidate is
// placed by scanning the list from its tail, so an entry that cannot make
// the cut costs one comparison once the list is full. Keys with a count
// below 1 are ignored.
func GetTopWords(frequencies map[string]int, n int) []models.RankedEntry {
	if n <= 0 || len(frequencies) == 0 {
		return []models.RankedEntry{}
	}

	capacity := n
	if len(frequencies) < capacity {
		capacity = len(frequencies)
	}
	top := make([]models.RankedEntry, 0, capacity+1)

	for word, count := range frequencies {
		if count < 1 {
			continue
		}
		candidate := models.RankedEntry{Word: word, Count: count}

		i := len(top)
		for i > 0 && Outranks(candidate, top[i-1]) {
			i--
		}

		top = InsertTopWord(i, top, n, word, count)
		if len(top) > n {
			top = top[:n]
		}
	}

	return top
}

// InsertTopWord inserts (word, count) at index when index <= maxLen and
// returns the updated list. A candidate past maxLen does not qualify and the
// list is returned unchanged. The result may hold maxLen+1 entries; callers
// truncate. An index past the end of the list appends.
//
// Like append, it may shift entries within list's backing array, so the
// returned slice must replace the argument:
//
//	top = InsertTopWord(i, top, n, word, count)
func InsertTopWord(index int, list []models.RankedEntry, maxLen int, word string, count int) []models.RankedEntry {
	if index < 0 || index > maxLen {
		return list
	}

	entry := models.RankedEntry{Word: word, Count: count}
	if index >= len(list) {
		return append(list, entry)
	}

	list = append(list, models.RankedEntry{})
	copy(list[index+1:], list[index:])
	list[index] = entry
	return list
}

// IsRanked reports whether list is sorted by Outranks with no duplicates.
func IsRanked(list []models.RankedEntry) bool {
	for i := 1; i < len(list); i++ {
		if !Outranks(list[i-1], list[i]) {
			return false
		}
	}
	return true
}
