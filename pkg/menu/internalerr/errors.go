package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrShortRow         = errors.New("row has too few fields")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrNotConfigured    = errors.New("transformer not configured")
)
