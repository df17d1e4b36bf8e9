// Package repository implements gorm-backed stores injected into the services.
package repository

import "errors"

// ErrNotFound is returned when a looked-up row does not exist or is not
// visible to the caller.
var ErrNotFound = errors.New("record not found")
