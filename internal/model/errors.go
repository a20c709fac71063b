package model

import "errors"

// ErrValidation is wrapped by every constructor failure. The wrapping message
// names the offending field.
var ErrValidation = errors.New("validation failed")
