package shamir

import "errors"

// ErrInvalidThreshold is returned when the requested (k, n) parameters do not
// describe a valid threshold scheme: k must be at least 1, k must not exceed
// n, and n must fit in a single byte share index (1-255).
var ErrInvalidThreshold = errors.New("shamir: invalid threshold parameters")

// ErrInsufficientShares is returned by Reconstruct when fewer than k shares
// are supplied.
var ErrInsufficientShares = errors.New("shamir: insufficient shares to reconstruct")

// ErrDuplicateX is returned by Reconstruct when two or more supplied shares
// carry the same participant index, making interpolation ambiguous.
var ErrDuplicateX = errors.New("shamir: duplicate share index")

// ErrCorrupt is returned by Reconstruct when the supplied shares are
// internally inconsistent (mismatched block counts, a reconstructed block
// that cannot represent secret bytes, or a length header that does not fit
// the reconstructed payload).
var ErrCorrupt = errors.New("shamir: shares are corrupt or inconsistent")
