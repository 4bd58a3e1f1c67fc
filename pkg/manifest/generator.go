package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dtnitsch/word-parser/models"
	"github.com/dtnitsch/word-parser/pkg/mapreduce"
	"gopkg.in/yaml.v3"
)

// perInputKeywords is how many keywords each input lists in JSON/YAML output.
const perInputKeywords = 10

// InputResult is the per-file outcome handed over by the analyze command.
type InputResult struct {
	Path       string
	HTML       bool
	SizeBytes  int64
	Lines      int
	WordCounts map[string]int
	Language   string
}

// GenerateSummary builds the run report from per-input results, the merged
// counts and the already ranked top list.
func GenerateSummary(cfg *models.AnalysisConfig, stopWords int, inputs []InputResult, merged map[string]int, top []models.RankedEntry) *Summary {
	summary := &Summary{
		GeneratedAt:   time.Now().Format(time.RFC3339),
		Requested:     cfg.NumberOfResults,
		Strategy:      string(cfg.Strategy),
		Stemmer:       string(cfg.Stemmer),
		StopWords:     stopWords,
		TotalWords:    sumCounts(merged),
		DistinctWords: len(merged),
		Inputs:        make([]InputSummary, 0, len(inputs)),
		TopWords:      top,
	}

	for _, in := range inputs {
		format := "text"
		if in.HTML {
			format = "html"
		}
		summary.Inputs = append(summary.Inputs, InputSummary{
			Path:          in.Path,
			Format:        format,
			SizeBytes:     in.SizeBytes,
			Lines:         in.Lines,
			TotalWords:    sumCounts(in.WordCounts),
			DistinctWords: len(in.WordCounts),
			Language:      in.Language,
			TopKeywords:   mapreduce.TopKeywords(in.WordCounts, perInputKeywords),
		})
	}

	return summary
}

// Render encodes the summary in the requested format.
func Render(summary *Summary, format models.OutputFormat) ([]byte, error) {
	switch format {
	case models.FormatJSON:
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error marshalling summary: %w", err)
		}
		return append(data, '\n'), nil
	case models.FormatYAML:
		data, err := yaml.Marshal(summary)
		if err != nil {
			return nil, fmt.Errorf("error marshalling summary: %w", err)
		}
		return data, nil
	case models.FormatTable, "":
		var buf bytes.Buffer
		if err := WriteTable(&buf, summary.TopWords); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %q", models.ErrUnknownFormat, format)
}

// WriteTable prints the ranked words as a two-column markdown-style table:
//
//	| Word         | Occurrences |
//	|--------------|-------------|
//	| jump         |           3 |
func WriteTable(w io.Writer, entries []models.RankedEntry) error {
	if _, err := fmt.Fprintf(w, "| %-12s | Occurrences |\n", "Word"); err != nil {
		return fmt.Errorf("error writing table: %w", err)
	}
	if _, err := fmt.Fprintln(w, "|--------------|-------------|"); err != nil {
		return fmt.Errorf("error writing table: %w", err)
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "| %-12s | %11d |\n", e.Word, e.Count); err != nil {
			return fmt.Errorf("error writing table: %w", err)
		}
	}
	return nil
}

func sumCounts(counts map[string]int) int {
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}
