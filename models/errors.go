package models

import "errors"

var (
	ErrNoInput         = errors.New("no input files provided")
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrUnknownStrategy = errors.New("unknown ranking strategy")
	ErrUnknownStemmer  = errors.New("unknown stemmer")
)
