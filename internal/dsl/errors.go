package dsl

import "errors"

// ErrInvalidQuery is returned when a query document is structurally incomplete.
var ErrInvalidQuery = errors.New("dsl: invalid query")
