package manifest

import "github.com/dtnitsch/word-parser/models"

// Summary is the report of one analysis run. It is the only thing the
// presentation layer sees.
type Summary struct {
	GeneratedAt   string               `json:"generated_at" yaml:"generated_at"`
	Requested     int                  `json:"requested" yaml:"requested"`
	Strategy      string               `json:"strategy" yaml:"strategy"`
	Stemmer       string               `json:"stemmer" yaml:"stemmer"`
	StopWords     int                  `json:"stop_words" yaml:"stop_words"`
	TotalWords    int                  `json:"total_words" yaml:"total_words"`
	DistinctWords int                  `json:"distinct_words" yaml:"distinct_words"`
	Inputs        []InputSummary       `json:"inputs" yaml:"inputs"`
	TopWords      []models.RankedEntry `json:"top_words" yaml:"top_words"`
}

// InputSummary describes a single input file.
type InputSummary struct {
	Path          string   `json:"path" yaml:"path"`
	Format        string   `json:"format" yaml:"format"` // "text" or "html"
	SizeBytes     int64    `json:"size_bytes" yaml:"size_bytes"`
	Lines         int      `json:"lines" yaml:"lines"`
	TotalWords    int      `json:"total_words" yaml:"total_words"`
	DistinctWords int      `json:"distinct_words" yaml:"distinct_words"`
	Language      string   `json:"language,omitempty" yaml:"language,omitempty"`
	TopKeywords   []string `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
}
