package item

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument is returned when a constructor or mutator receives
	// structurally wrong input, such as a blank title or a zero day.
	ErrInvalidArgument = errors.New("item: invalid argument")

	// ErrInvalidState is returned when an operation is handed an item that is
	// not a valid item to begin with.
	ErrInvalidState = errors.New("item: invalid state")

	// ErrMalformed is matched by every *MalformedError.
	ErrMalformed = errors.New("item: malformed")
)

// Problem names one field that failed structural validation.
type Problem struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (p Problem) String() string {
	return p.Field + ": " + p.Reason
}

// MalformedError carries every violated field found in one validation pass.
type MalformedError struct {
	Problems []Problem
}

func (e *MalformedError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("item: malformed: %s", strings.Join(parts, "; "))
}

// Is lets errors.Is(err, ErrMalformed) match.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// Fields returns the names of the violated fields, in report order.
func (e *MalformedError) Fields() []string {
	out := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		out = append(out, p.Field)
	}
	return out
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
