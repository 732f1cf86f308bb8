package types

import "fmt"

// ValidationError names the request field that failed validation. It is
// the only error the browse pipeline produces itself.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// DataSourceError wraps a failed universe fetch. The message is generic
// on purpose, the cause stays reachable through Unwrap for logging.
type DataSourceError struct {
	Err error
}

func (e *DataSourceError) Error() string {
	return "catalog temporarily unavailable"
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}
