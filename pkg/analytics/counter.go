package analytics

// Counter accumulates occurrences of stemmed words. It only grows: there is
// no way to decrement or remove a word. Not safe for concurrent use.
type Counter struct {
	counts map[string]int
	total  int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Increment adds one occurrence of word. Empty words are ignored.
func (c *Counter) Increment(word string) {
	if word == "" {
		return
	}
	c.counts[word]++
	c.total++
}

// Count returns how many times word was seen.
func (c *Counter) Count(word string) int {
	return c.counts[word]
}

// Len returns the number of distinct words.
func (c *Counter) Len() int {
	return len(c.counts)
}

// Total returns the number of occurrences counted.
func (c *Counter) Total() int {
	return c.total
}

// Frequencies returns a copy of the word counts.
func (c *Counter) Frequencies() map[string]int {
	out := make(map[string]int, len(c.counts))
	for w, n := range c.counts {
		out[w] = n
	}
	return out
}
