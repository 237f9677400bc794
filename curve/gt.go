package curve

import "github.com/herumi/bls-eth-go-binary/bls"

// GT is an element of the pairing target group Fp12.
type GT struct {
	inner bls.GT
}

// Equal reports equality in Fp12.
func (z GT) Equal(o GT) bool { return z.inner.IsEqual(&o.inner) }

// Mul returns z * o in Fp12.
func (z GT) Mul(o GT) GT {
	var r bls.GT
	bls.GTMul(&r, &z.inner, &o.inner)
	return GT{inner: r}
}

// Pairing computes e(q, p): G2 x G1 -> Fp12, with one full final
// exponentiation.
func Pairing(q G2Point, p G1Point) GT {
	var e bls.GT
	bls.Pairing(&e, &q.inner, &p.inner)
	return GT{inner: e}
}

// MillerLoop computes the Miller loop stage of e(q, p) without applying the
// (expensive) final exponentiation. Used to batch several pairings and defer
// one final exponentiation over their product, as in aggregate verification.
func MillerLoop(q G2Point, p G1Point) GT {
	var e bls.GT
	bls.MillerLoop(&e, &q.inner, &p.inner)
	return GT{inner: e}
}

// FinalExponentiation applies the final exponentiation stage of the optimal
// ate pairing to a (possibly already-multiplied) Miller loop product.
func FinalExponentiation(z GT) GT {
	var r bls.GT
	bls.FinalExp(&r, &z.inner)
	return GT{inner: r}
}
