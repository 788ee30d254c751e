package riichi

import (
	"errors"
	"fmt"
)

var (
	ErrWrongTileCount = errors.New("wrong tile count")
	ErrTooManyCopies  = errors.New("more than four copies of a tile")
	ErrInvalidTile    = errors.New("invalid tile")
	ErrInvalidMeld    = errors.New("invalid meld")
	ErrInvalidContext = errors.New("invalid context")
	ErrBadNotation    = errors.New("bad tile notation")
)

// ValidationError reports malformed input. Unwrap yields one of the sentinel errors above.
type ValidationError struct {
	Field  string
	Detail string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Field, e.Err, e.Detail)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field string, err error, format string, args ...any) error {
	return &ValidationError{Field: field, Err: err, Detail: fmt.Sprintf(format, args...)}
}
