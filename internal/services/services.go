package services

import "errors"

// ErrValidation marks requests rejected before touching storage. Handlers
// map anything wrapping it to a 400.
var ErrValidation = errors.New("validation failed")
