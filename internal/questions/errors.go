package questions

import "errors"

// ErrInvalidInput is returned when the question text is empty after trimming.
var ErrInvalidInput = errors.New("question text is required")
