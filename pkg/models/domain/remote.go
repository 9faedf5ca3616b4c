package domain

import "strings"

// DefaultFetchError is used when a fetch fails without a usable message.
const DefaultFetchError = "Something went wrong! Please try again later."

// RemoteValue tracks the fetch lifecycle of a value owned by another system.
// Transitions return a new value; the receiver is left untouched.
type RemoteValue[T any] struct {
	IsFetching    bool
	DidInvalidate bool
	DidEverLoad   bool
	Value         T
	HasValue      bool
	Error         string
}

// Loaded reports whether the value is settled, has loaded at least once and
// carries no error.
func (rv RemoteValue[T]) Loaded() bool {
	return !rv.IsFetching && rv.DidEverLoad && rv.Error == ""
}

// Request marks a fetch as started.
func (rv RemoteValue[T]) Request() RemoteValue[T] {
	rv.IsFetching = true
	rv.DidInvalidate = false
	rv.Error = ""
	return rv
}

// Succeed stores a freshly fetched value.
func (rv RemoteValue[T]) Succeed(value T) RemoteValue[T] {
	rv.IsFetching = false
	rv.DidEverLoad = true
	rv.Value = value
	rv.HasValue = true
	rv.Error = ""
	return rv
}

// Fail records a failed fetch. A previously loaded value is kept.
func (rv RemoteValue[T]) Fail(err error) RemoteValue[T] {
	rv.IsFetching = false
	rv.Error = DefaultFetchError
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		rv.Error = err.Error()
	}
	return rv
}

// Invalidate marks the value as stale without dropping it.
func (rv RemoteValue[T]) Invalidate() RemoteValue[T] {
	rv.DidInvalidate = true
	return rv
}
