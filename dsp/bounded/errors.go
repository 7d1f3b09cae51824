package bounded

import "errors"

// ErrOutOfRange is returned when a parsed or deserialized value lies
// outside the type's closed interval (including NaN and infinities).
var ErrOutOfRange = errors.New("value out of range")
