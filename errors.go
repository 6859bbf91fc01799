package canopy

import "errors"

// ErrNotActive is returned when an operation that requires an active context
// (NewChild, Observe) is invoked on a context that is ending or has ended.
var ErrNotActive = errors.New("context is not active")
