// Package poly implements the two generic algorithms the threshold-sharing
// protocol is built on: Horner evaluation and Lagrange interpolation at
// zero. Both are polymorphic over the coefficient/value type C, which may be
// a scalar (Fr, for secret-key sharing) or a curve point (G1 or G2, for
// signature and public-key sharing) — the same algorithm, instantiated
// three times, rather than duplicated three times.
package poly

import (
	"github.com/leishman/bls/curve"
	"github.com/leishman/bls/errs"
)

// Element is the group trait EvalPoly and LagrangeInterpolate require of
// their coefficient/value type: addition closed over T, and scalar
// multiplication by an Fr element producing T. curve.Scalar, curve.G1Point,
// and curve.G2Point each satisfy it.
type Element[T any] interface {
	Add(T) T
	Mul(curve.Scalar) T
}

// EvalPoly evaluates y = f(x) = c[0] + c[1]*x + ... + c[k-1]*x^(k-1) using
// Horner's method. It requires len(c) >= 2 (a degree-0 "polynomial" carries
// no sharing information) and, when C is a share coefficient, relies on the
// caller to have rejected x == 0 before calling (spec.md §4.8 refuses
// evaluation at the zero id one level up, in the key/signature core).
func EvalPoly[T Element[T]](x curve.Scalar, c []T) (T, error) {
	var zero T
	if len(c) < 2 {
		return zero, errs.Badf(errs.KindBadSize, "need at least 2 coefficients, got %d", len(c))
	}
	y := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		y = y.Mul(x).Add(c[i])
	}
	return y, nil
}

// LagrangeInterpolate recovers f(0) from k >= 2 pairs (ids[i], values[i])
// where values[i] = f(ids[i]) for some polynomial f of degree < k. It fails
// if len(values) != len(ids), if k < 2, or if any two ids coincide.
//
// delta_i = prod_{j != i} ids[j] / prod_{j != i} (ids[j] - ids[i])
// equals the standard Lagrange coefficient at x=0 (see spec.md §4.8); f(0)
// is then the C-valued sum of delta_i * values[i].
func LagrangeInterpolate[T Element[T]](values []T, ids []curve.Scalar) (T, error) {
	var zero T
	k := len(ids)
	if len(values) != k {
		return zero, errs.Badf(errs.KindBadSize, "values has %d entries, ids has %d", len(values), k)
	}
	if k < 2 {
		return zero, errs.Badf(errs.KindBadSize, "need at least 2 points, got %d", k)
	}

	a := ids[0]
	for i := 1; i < k; i++ {
		a = a.Mul(ids[i])
	}

	deltas := make([]curve.Scalar, k)
	for i := 0; i < k; i++ {
		b := ids[i]
		for j := 0; j < k; j++ {
			if j == i {
				continue
			}
			diff := ids[j].Sub(ids[i])
			if diff.IsZero() {
				return zero, errs.Badf(errs.KindSameID, "ids[%d] == ids[%d]", i, j)
			}
			b = b.Mul(diff)
		}
		deltas[i] = a.Div(b)
	}

	r := values[0].Mul(deltas[0])
	for i := 1; i < k; i++ {
		r = r.Add(values[i].Mul(deltas[i]))
	}
	return r, nil
}
