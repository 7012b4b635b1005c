// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

// The repository error taxonomy. Validation, conflict, and not-found are
// expected caller mistakes that the HTTP layer maps to 400/409/404 with the
// message as-is; StorageError means the environment is broken (unreadable or
// malformed document) and surfaces as a generic server fault. Handlers
// distinguish them with errors.As.

// ValidationError reports missing or malformed input, including a dangling
// topic reference on article writes.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a duplicate identifier.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError reports a referenced id that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// StorageError wraps a document read/write failure. It is fatal for the
// request: nothing is retried and the persisted state is never auto-repaired.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }
