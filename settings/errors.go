package settings

import "errors"

// ErrMalformedBoolean reports a boolean-typed setting whose raw value
// is not recognizable truthy or falsy text.
var ErrMalformedBoolean = errors.New("malformed boolean value")
