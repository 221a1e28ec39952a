// Package scoring computes the company/candidate fit score from skill,
// experience, education and semantic-similarity signals.
package scoring

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared across calls; validator instances cache struct metadata.
var validate = validator.New()

// Requirements describes what a company asks for. Experience is in years;
// nil means no experience requirement.
type Requirements struct {
	Skills     []string `json:"skills" validate:"dive,min=1"`
	Experience *float64 `json:"experience,omitempty" validate:"omitempty,gte=0"`
	Education  []string `json:"education" validate:"dive,min=1"`
}

// ValidationError reports a malformed requirement set.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid requirements: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid requirements: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Validate checks the requirement shape. Empty skill and education lists are
// allowed (empty skills is a documented vacuous match), but negative
// experience and blank entries are rejected rather than silently coerced.
func (r *Requirements) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &ValidationError{Message: "malformed requirement fields", Cause: err}
	}
	if r.Experience != nil && *r.Experience < 0 {
		return &ValidationError{Message: "experience must be non-negative"}
	}
	return nil
}
