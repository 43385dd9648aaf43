// Package estimation produces multi-category trip cost estimates.
package estimation

import "fmt"

// InvalidInputError indicates a structurally missing input (empty destination
// list, absent home location). It is the only error this package raises;
// every table lookup has a default fallback.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
}
