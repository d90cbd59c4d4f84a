// Package repository contains data access layer abstractions.
// Implementations live in subpackages (memory, postgres) inside this directory.
package repository

import "errors"

// ErrNotFound is returned by repositories when a looked-up entry does not
// exist, regardless of backend.
var ErrNotFound = errors.New("entry not found")
