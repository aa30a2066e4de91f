package domain

import "errors"

var (
	ErrLexiconUnavailable = errors.New("sentiment lexicon unavailable")
	ErrMissingColumn      = errors.New("required column missing")
	ErrNullText           = errors.New("record has no text")
	ErrEmptyDataset       = errors.New("dataset has no rows")
)
