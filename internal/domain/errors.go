package domain

import "errors"

// Domain errors
var (
	ErrSummaryNotFound = errors.New("summary not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrNoPDFSource     = errors.New("No valid DOI or PDF provided")
	ErrPDFNotFound     = errors.New("no PDF URL found for DOI")
)
