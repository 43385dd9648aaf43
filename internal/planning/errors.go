// Package planning turns destination lists and preferences into trip plans.
package planning

import "fmt"

// InvalidInputError indicates a structurally missing input (an empty
// destination list). It is the only error this package raises.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
}
