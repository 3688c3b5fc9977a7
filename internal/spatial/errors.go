package spatial

import "errors"

// ErrOutOfBounds is returned by Insert when the position lies outside the
// index's fixed bounds.
var ErrOutOfBounds = errors.New("spatial: position outside index bounds")
