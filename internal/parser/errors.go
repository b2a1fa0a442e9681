package parser

import "errors"

var (
	// ErrEmptyInput means the request text held no non-blank line.
	ErrEmptyInput = errors.New("input contains no sentences")
)
