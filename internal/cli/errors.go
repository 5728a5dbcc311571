package cli

import (
	"fmt"
)

// UserInputError is a bad or missing argument. It is returned before any
// request reaches the broker.
type UserInputError struct {
	Msg string
}

func (e *UserInputError) Error() string {
	return e.Msg
}

func userErrorf(format string, args ...any) error {
	return &UserInputError{Msg: fmt.Sprintf(format, args...)}
}
