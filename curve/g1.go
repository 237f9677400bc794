package curve

import (
	"fmt"

	"github.com/herumi/bls-eth-go-binary/bls"
)

// G1Point is an element of G1, the group BLS signatures and hash-to-curve
// outputs live in.
type G1Point struct {
	inner bls.G1
}

// G1Zero is the identity element of G1.
func G1Zero() G1Point { return G1Point{} }

// Equal reports group equality.
func (p G1Point) Equal(o G1Point) bool { return p.inner.IsEqual(&o.inner) }

// Add returns p + o.
func (p G1Point) Add(o G1Point) G1Point {
	var z bls.G1
	bls.G1Add(&z, &p.inner, &o.inner)
	return G1Point{inner: z}
}

// Sub returns p - o.
func (p G1Point) Sub(o G1Point) G1Point {
	var z bls.G1
	bls.G1Sub(&z, &p.inner, &o.inner)
	return G1Point{inner: z}
}

// Mul returns s * p (scalar multiplication).
func (p G1Point) Mul(s Scalar) G1Point {
	var z bls.G1
	bls.G1Mul(&z, &p.inner, &s.inner)
	return G1Point{inner: z}
}

// Bytes returns the compressed canonical encoding of p.
func (p G1Point) Bytes() []byte {
	return p.inner.Serialize()
}

// SetBytes decodes the compressed encoding produced by Bytes.
func (p *G1Point) SetBytes(b []byte) error {
	if err := p.inner.Deserialize(b); err != nil {
		return fmt.Errorf("curve: deserialize G1 point: %w", err)
	}
	return nil
}

// HexString returns the "0x"-prefixed compressed hex form of p.
func (p G1Point) HexString() string {
	return "0x" + p.inner.GetHexString()
}

// SetHexString parses the "0x"-prefixed hex form produced by HexString.
func (p *G1Point) SetHexString(str string) error {
	if err := p.inner.SetHexString(trimHexPrefix(str)); err != nil {
		return fmt.Errorf("curve: parse G1 point hex %q: %w", str, err)
	}
	return nil
}
