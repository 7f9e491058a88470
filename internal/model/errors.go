package model

import "fmt"

// DataSourceError means the upstream feed could not be fetched or parsed.
// The store stays empty when this is returned, so a later load retries.
type DataSourceError struct {
	Source string // feed or API URL
	Err    error
}

func (e *DataSourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("job feed %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("job feed %s: unavailable", e.Source)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// NotFoundError is a lookup miss. It is a normal outcome, not a system
// failure; adapters pick their own rendering.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("job with id %q not found", e.ID)
}

// InvalidArgumentError is a bad or missing input, caught before any
// store access happens.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Reason)
}
