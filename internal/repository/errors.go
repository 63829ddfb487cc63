package repository

import "errors"

// ErrNotFound indicates an entity was not located. Records owned by a different
// user surface as ErrNotFound as well; callers cannot tell the two apart.
var ErrNotFound = errors.New("repository: not found")

// ErrConflict indicates a uniqueness constraint was violated.
var ErrConflict = errors.New("repository: conflict")
