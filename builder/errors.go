package builder

import "errors"

// ErrTooFewVertices is returned when a constructor's size parameter is below
// the minimum required to form the requested topology (e.g. Complete(0) or
// Cycle(2)).
var ErrTooFewVertices = errors.New("builder: too few vertices")
