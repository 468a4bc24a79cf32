package table

import "errors"

// ErrInvalidTable wraps every validation failure reported by Builder.Build.
var ErrInvalidTable = errors.New("table: invalid tag table")
