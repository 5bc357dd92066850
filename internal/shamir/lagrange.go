package shamir

import "github.com/gitgold-project/gitgold-core/internal/field"

// point is a single (x, y) sample of a secret-sharing polynomial.
type point struct {
	X, Y field.Element
}

// interpolateAtZero recovers p(0) -- the shared secret block -- from k
// distinct points on the degree-(k-1) polynomial, using the standard
// Lagrange interpolation formula specialised to x=0:
//
//	p(0) = sum_j  y_j * prod_{m != j} ( x_m / (x_m - x_j) )
func interpolateAtZero(points []point) (field.Element, error) {
	result := field.Zero()
	for j, pj := range points {
		num := field.One()
		den := field.One()
		for m, pm := range points {
			if m == j {
				continue
			}
			num = num.Mul(pm.X)
			den = den.Mul(pm.X.Sub(pj.X))
		}
		frac, err := num.Div(den)
		if err != nil {
			return field.Element{}, ErrDuplicateX
		}
		result = result.Add(pj.Y.Mul(frac))
	}
	return result, nil
}
