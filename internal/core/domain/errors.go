package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrSourceNotFound indicates the corpus input file does not exist.
	// This is the single fatal condition in the analytics core.
	ErrSourceNotFound = errors.New("data source not found")

	// ErrCorpusNotLoaded indicates an aggregation was requested before
	// a corpus was loaded.
	ErrCorpusNotLoaded = errors.New("corpus not loaded")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAssistantUnavailable indicates the chat assistant is not
	// configured. Chat features degrade to a textual fallback.
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)
