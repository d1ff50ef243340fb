package domain

import "errors"

// ErrInvalidInput marks a contract violation at the engine boundary. It is the
// only condition under which an analysis fails instead of producing a report.
var ErrInvalidInput = errors.New("invalid input")
