// Copyright (c) Microsoft. All rights reserved.

package agentdef

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrDefinition is the base error for definition failures.
	ErrDefinition = errors.New("definition error")

	// ErrNotFound indicates the definitions source could not be read.
	ErrNotFound = fmt.Errorf("%w: not found", ErrDefinition)

	// ErrParse indicates the definitions source is not well-formed.
	ErrParse = fmt.Errorf("%w: parse", ErrDefinition)

	// ErrValidation indicates one or more cross-reference or cycle problems.
	ErrValidation = fmt.Errorf("%w: validation", ErrDefinition)

	// ErrCyclicDependency is returned by [Order] when the agent graph has a cycle.
	ErrCyclicDependency = fmt.Errorf("%w: cyclic dependency", ErrDefinition)
)

// ParseError provides the source and cause of a parse failure.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

// Unwrap returns both the sentinel and the underlying decoder error.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// ValidationError carries every problem found by [Validate].
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "definition validation failed with %d error(s)", len(e.Errors))
	for _, msg := range e.Errors {
		b.WriteString("\n  - ")
		b.WriteString(msg)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
