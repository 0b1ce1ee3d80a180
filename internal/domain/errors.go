package domain

import "fmt"

// DateFormatError is returned when a user supplied date cannot be read.
type DateFormatError struct {
	Input string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q: expected dd.mm.yyyy", e.Input)
}
