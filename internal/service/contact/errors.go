package contact

import (
	"errors"
	"strings"
)

// ErrStorage means the submission was not recorded. The wrapped cause is
// for logs only.
var ErrStorage = errors.New("failed to process contact form submission")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field of a rejected payload.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid contact submission: " + strings.Join(parts, "; ")
}
