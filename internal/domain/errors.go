package domain

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrInvalidInput = errors.New("invalid input")
	// ErrStoreUnavailable marks a batch-level store failure: the whole
	// run fails and the external scheduler retries it later.
	ErrStoreUnavailable = errors.New("sample store unavailable")
)
