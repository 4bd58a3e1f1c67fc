package models

// RankedEntry is one row of a top-N report.
type RankedEntry struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}
