package shamir

import "github.com/gitgold-project/gitgold-core/internal/field"

// polynomial holds coefficients in increasing power of x:
// p(x) = coeffs[0] + coeffs[1]*x + ... + coeffs[n]*x^n.
// coeffs[0] is always the secret block being shared.
type polynomial []field.Element

// randomPolynomial builds a degree-k-1 polynomial whose constant term is the
// given secret and whose remaining k-1 coefficients are drawn uniformly at
// random from GF(P).
func randomPolynomial(secret field.Element, degree int) (polynomial, error) {
	p := make(polynomial, degree+1)
	p[0] = secret
	for i := 1; i <= degree; i++ {
		coeff, err := field.Random()
		if err != nil {
			return nil, err
		}
		p[i] = coeff
	}
	return p, nil
}

// evaluate computes p(x) using Horner's method.
func (p polynomial) evaluate(x field.Element) field.Element {
	result := field.Zero()
	for i := len(p) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p[i])
	}
	return result
}
