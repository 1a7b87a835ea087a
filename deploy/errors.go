// Copyright (c) Microsoft. All rights reserved.

package deploy

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrDeploy is the base error for deployment failures.
	ErrDeploy = errors.New("deploy error")

	// ErrDownload indicates an OpenAPI specification could not be fetched.
	ErrDownload = fmt.Errorf("%w: download", ErrDeploy)

	// ErrMissingSpec indicates an OpenAPI tool has no downloaded specification.
	ErrMissingSpec = fmt.Errorf("%w: missing specification", ErrDeploy)

	// ErrDependencyNotReady indicates a connected agent was not created
	// before an agent that uses it.
	ErrDependencyNotReady = fmt.Errorf("%w: dependency not ready", ErrDeploy)

	// ErrOperation indicates the agent service rejected a create or update.
	ErrOperation = fmt.Errorf("%w: operation", ErrDeploy)
)

// DownloadError provides context for a failed specification download.
type DownloadError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *DownloadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("download %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() []error { return []error{ErrDownload, e.Err} }

// OperationError provides context for a failed agent service call.
type OperationError struct {
	Agent string
	Op    string
	Err   error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("failed to %s agent %q: %v", e.Op, e.Agent, e.Err)
}

func (e *OperationError) Unwrap() []error { return []error{ErrOperation, e.Err} }
