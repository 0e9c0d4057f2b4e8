package market

import "fmt"

// ValidationError reports a fetched record that failed schema construction.
// It is distinguishable from a transport failure via errors.As.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}
