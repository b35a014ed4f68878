package api

import "fmt"

// ValidationError is a client-side rejection. The offending request never
// reaches the server.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RemoteError is a failure the server reported with a structured detail
// message.
type RemoteError struct {
	Status int
	Detail string
}

func (e *RemoteError) Error() string {
	return e.Detail
}

// TransportError means the call could not be completed, or the server
// responded with a non-success status whose body carried no usable detail.
// Status is zero when no response was read at all.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
