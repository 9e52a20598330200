package graph

import (
	"fmt"
)

// UnknownToolError indicates the tool name is not in the catalog.
// No HTTP request is issued.
type UnknownToolError struct {
	Tool string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Tool)
}

// MissingArgumentError indicates a required argument was not supplied.
// No HTTP request is issued.
type MissingArgumentError struct {
	Tool     string
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("tool %q: missing required argument %q", e.Tool, e.Argument)
}

// RemoteAPIError carries a non-success HTTP status and the remote error
// payload, verbatim.
type RemoteAPIError struct {
	StatusCode int
	Body       []byte
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("remote api error: HTTP %d: %s", e.StatusCode, e.Body)
}

// TransportError indicates the remote API could not be reached
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
