package extractor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dtnitsch/word-parser/models"
)

// Strategy selects which blocks of a document are counted.
// Syntax: comma-separated key:value pairs, e.g. "type:p|li,words:>=5".
type Strategy struct {
	MinWords   int
	BlockTypes map[string]struct{}
	KeepTitle  bool
}

func ParseStrategy(strategyStr string) (*Strategy, error) {
	if strings.TrimSpace(strategyStr) == "" {
		return nil, nil // No-op strategy
	}

	strategy := &Strategy{
		BlockTypes: make(map[string]struct{}),
		KeepTitle:  true,
	}

	parts := strings.Split(strategyStr, ",")
	for _, part := range parts {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid block filter part: %s", part)
		}
		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])

		switch key {
		case "words":
			if !strings.HasPrefix(value, ">=") {
				return nil, fmt.Errorf("unsupported words operator in: %s", value)
			}
			n, err := strconv.Atoi(strings.TrimSpace(value[2:]))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid words value: %s", value)
			}
			strategy.MinWords = n
		case "type":
			for _, t := range strings.Split(value, "|") {
				if t = strings.TrimSpace(t); t != "" {
					strategy.BlockTypes[t] = struct{}{}
				}
			}
		case "title":
			keep, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("invalid title value: %s", value)
			}
			strategy.KeepTitle = keep
		default:
			return nil, fmt.Errorf("unknown block filter key: %s", key)
		}
	}

	return strategy, nil
}

// FilterDocument returns a copy of doc holding only the blocks that pass
// strategy. A nil strategy returns doc unchanged.
func FilterDocument(doc *models.Document, strategy *Strategy) *models.Document {
	if strategy == nil {
		return doc // No filtering
	}

	filtered := &models.Document{
		Path:   doc.Path,
		Blocks: make([]models.TextBlock, 0, len(doc.Blocks)),
	}
	if strategy.KeepTitle {
		filtered.Title = doc.Title
	}

	for _, block := range doc.Blocks {
		if len(strategy.BlockTypes) > 0 {
			if _, ok := strategy.BlockTypes[block.Type]; !ok {
				continue
			}
		}
		if strategy.MinWords > 0 && len(strings.Fields(block.Text)) < strategy.MinWords {
			continue
		}
		filtered.Blocks = append(filtered.Blocks, block)
	}

	return filtered
}
