package console

import "errors"

var (
	errEmptyValue    = errors.New("value must not be empty")
	errNotAnInteger  = errors.New("value must be an integer")
	errNegativeID    = errors.New("id must not be negative")
	errNonPositiveID = errors.New("id must be a positive integer")
)
