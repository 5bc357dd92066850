// Package field implements arithmetic over the 256-bit prime field used by
// GitGold's Shamir secret sharing: GF(P) where P = 2^256 - 2^32 - 977, the
// secp256k1 base-field prime. Every FieldElement is a canonical, fully
// reduced representative in [0, P).
package field

import (
	"errors"
	"math/big"
)

// ErrNotInvertible is returned by Inv and Div when the operand is zero,
// which has no multiplicative inverse in a field.
var ErrNotInvertible = errors.New("field: element is not invertible (zero)")

// P is the secp256k1 base-field prime: 2^256 - 2^32 - 977.
var P = func() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 256)
	p.Sub(p, new(big.Int).Lsh(big.NewInt(1), 32))
	p.Sub(p, big.NewInt(977))
	return p
}()

// Element is an element of GF(P), always held in canonical reduced form.
type Element struct {
	v *big.Int
}

// Zero is the additive identity.
func Zero() Element { return Element{v: new(big.Int)} }

// One is the multiplicative identity.
func One() Element { return FromU64(1) }

// FromU64 constructs an Element from a uint64 (always < P, no reduction needed).
func FromU64(x uint64) Element {
	return Element{v: new(big.Int).SetUint64(x)}
}

// FromBytesBE constructs an Element from a 32-byte big-endian buffer,
// reducing modulo P. Any 32-byte input is accepted; this never fails.
func FromBytesBE(b [32]byte) Element {
	v := new(big.Int).SetBytes(b[:])
	v.Mod(v, P)
	return Element{v: v}
}

// ToBytesBE serializes the element as a big-endian 32-byte buffer,
// left-padded with zeros.
func (e Element) ToBytesBE() [32]byte {
	var out [32]byte
	b := e.v.Bytes()
	copy(out[32-len(b):], b)
	return out
}

// Equal reports whether two elements are the same canonical value.
func (e Element) Equal(o Element) bool {
	return e.v.Cmp(o.v) == 0
}

// IsZero reports whether the element is the additive identity.
func (e Element) IsZero() bool {
	return e.v.Sign() == 0
}

// Add returns e + o mod P.
func (e Element) Add(o Element) Element {
	r := new(big.Int).Add(e.v, o.v)
	r.Mod(r, P)
	return Element{v: r}
}

// Sub returns e - o mod P.
func (e Element) Sub(o Element) Element {
	r := new(big.Int).Sub(e.v, o.v)
	r.Mod(r, P)
	return Element{v: r}
}

// Neg returns -e mod P.
func (e Element) Neg() Element {
	r := new(big.Int).Neg(e.v)
	r.Mod(r, P)
	return Element{v: r}
}

// Mul returns e * o mod P.
func (e Element) Mul(o Element) Element {
	r := new(big.Int).Mul(e.v, o.v)
	r.Mod(r, P)
	return Element{v: r}
}

// Inv returns the multiplicative inverse of e mod P.
// Fails with ErrNotInvertible if e is zero.
func (e Element) Inv() (Element, error) {
	if e.IsZero() {
		return Element{}, ErrNotInvertible
	}
	r := new(big.Int).ModInverse(e.v, P)
	if r == nil {
		return Element{}, ErrNotInvertible
	}
	return Element{v: r}, nil
}

// Div returns e / o mod P. Fails with ErrNotInvertible if o is zero.
func (e Element) Div(o Element) (Element, error) {
	inv, err := o.Inv()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv), nil
}

// String renders the element's decimal value, mainly for debugging and logs.
func (e Element) String() string {
	return e.v.String()
}

// BigInt returns a copy of the element's underlying big.Int.
func (e Element) BigInt() *big.Int {
	return new(big.Int).Set(e.v)
}
