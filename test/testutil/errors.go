package testutil

import "errors"

// ErrMockNotFound is returned by mock scans when no canned row is available,
// mirroring the driver's not-found behavior.
var ErrMockNotFound = errors.New("testutil: not found")

// ErrMockColumnCount is returned when the scan destination count does not
// match the canned row width.
var ErrMockColumnCount = errors.New("testutil: column count mismatch")
