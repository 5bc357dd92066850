package field

import "crypto/rand"

// Random returns a cryptographically strong uniform random element of GF(P).
func Random() (Element, error) {
	v, err := rand.Int(rand.Reader, P)
	if err != nil {
		return Element{}, err
	}
	return Element{v: v}, nil
}
