package repository

import "errors"

// ErrNotFound is returned by repositories when a query matches no record.
var ErrNotFound = errors.New("not found")
