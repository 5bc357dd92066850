package proof

import "errors"

// ErrMismatch is returned when a proof answers a different challenge than
// the one being validated.
var ErrMismatch = errors.New("proof: challenge id mismatch")

// ErrDataMismatch is returned when a window extracted from the verifier's
// expected bytes does not match the corresponding window the proof declared.
var ErrDataMismatch = errors.New("proof: window data mismatch")

// ErrRootMismatch is returned when the Merkle root recomputed over the
// proof's windows does not match either the proof's declared root or a
// previously stored commitment.
var ErrRootMismatch = errors.New("proof: merkle root mismatch")

// ErrTimeout is returned when the proof's reported response time exceeds
// the configured challenge timeout.
var ErrTimeout = errors.New("proof: response time exceeded timeout")

// ErrBadSignature is returned when the proof's signature does not verify
// under the claimed public key.
var ErrBadSignature = errors.New("proof: signature verification failed")
