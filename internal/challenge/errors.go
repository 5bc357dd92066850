package challenge

import "errors"

// ErrFragmentTooSmall is returned by Generate when a fragment's size is
// smaller than the configured sample count, making it impossible to collect
// that many unique offsets.
var ErrFragmentTooSmall = errors.New("challenge: fragment smaller than sample count")

// ErrInvalidConfig is returned when a Config's fields cannot produce a
// sensible challenge (zero sample count, zero window size, and so on).
var ErrInvalidConfig = errors.New("challenge: invalid configuration")
