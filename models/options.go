package models

import (
	"fmt"
	"strings"
)

// RankStrategy selects how the top-N list is built. Both strategies
// produce the same ordering; they differ only in cost.
type RankStrategy string

const (
	// StrategyBounded keeps a sorted list of at most N entries while scanning.
	StrategyBounded RankStrategy = "bounded"
	// StrategySort sorts every distinct word and keeps the first N.
	StrategySort RankStrategy = "sort"
)

// StemAlgorithm names the stemmer used to reduce words to their root.
type StemAlgorithm string

const (
	StemPorter   StemAlgorithm = "porter"
	StemSnowball StemAlgorithm = "snowball"
)

// OutputFormat is the rendering used for the final report.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

// ParseRankStrategy resolves a strategy name; empty means bounded.
func ParseRankStrategy(s string) (RankStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(StrategyBounded):
		return StrategyBounded, nil
	case string(StrategySort):
		return StrategySort, nil
	}
	return "", fmt.Errorf("%w: %q (valid: bounded, sort)", ErrUnknownStrategy, s)
}

// ParseStemAlgorithm resolves a stemmer name; empty means porter.
func ParseStemAlgorithm(s string) (StemAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(StemPorter):
		return StemPorter, nil
	case string(StemSnowball):
		return StemSnowball, nil
	}
	return "", fmt.Errorf("%w: %q (valid: porter, snowball)", ErrUnknownStemmer, s)
}

// ParseOutputFormat resolves a format name; empty means table.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q (valid: table, json, yaml)", ErrUnknownFormat, s)
}
