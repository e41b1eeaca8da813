package surface

import "errors"

// ErrDegenerateNormal is returned when a surface normal has zero length or
// non-finite components, so no orientation can be derived from it.
var ErrDegenerateNormal = errors.New("degenerate surface normal")
