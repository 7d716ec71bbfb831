package report

import (
	"errors"
	"fmt"
)

// ErrInsufficientInput is wrapped by every InsufficientInputError.
var ErrInsufficientInput = errors.New("insufficient input")

// InsufficientInputError reports text with too few tokens to score.
type InsufficientInputError struct {
	Tokens int
	Min    int
}

func (e *InsufficientInputError) Error() string {
	return fmt.Sprintf("text needs %d or more words, got %d", e.Min, e.Tokens)
}

func (e *InsufficientInputError) Unwrap() error {
	return ErrInsufficientInput
}

// UnitError wraps the failure of one text in a batch.
type UnitError struct {
	Index  int
	Source string
	Err    error
}

func (e *UnitError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("observation %d (%s): %v", e.Index+1, e.Source, e.Err)
	}
	return fmt.Sprintf("observation %d: %v", e.Index+1, e.Err)
}

func (e *UnitError) Unwrap() error {
	return e.Err
}
