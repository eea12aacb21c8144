package pricing

import "errors"

// ErrConfigNotFound signals that no pricing configuration has ever been
// saved. Callers fall back to the compiled-in defaults; this is a normal
// state, not a storage failure.
var ErrConfigNotFound = errors.New("pricing config not found")
