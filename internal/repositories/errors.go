package repositories

import "errors"

// ErrNotFound is returned when the backing document does not exist yet.
var ErrNotFound = errors.New("not found")
