// internal/app/system/validate/validate.go
package validate

import "fmt"

// Error reports input the user must fix before any request is sent.
// Controllers return it ahead of doing I/O so a half-filled form never
// reaches the backend.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Required returns an Error when value is empty.
func Required(field, value string) error {
	if value == "" {
		return &Error{Field: field, Reason: "is required"}
	}
	return nil
}

// FirstRequired checks fields in order and returns the first failure.
// Pairs alternate field name, value.
func FirstRequired(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := Required(pairs[i], pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}
