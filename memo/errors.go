package memo

import "fmt"

// ErrInvalidArgument is returned by the constructors when the target function,
// the key function or an option value is unusable.
var ErrInvalidArgument = fmt.Errorf("invalid argument")
