package curve

import (
	"fmt"

	"github.com/herumi/bls-eth-go-binary/bls"
)

// G2Point is an element of G2, the group public keys and the fixed
// generator Q live in.
type G2Point struct {
	inner bls.G2
}

// G2Zero is the identity element of G2.
func G2Zero() G2Point { return G2Point{} }

// Equal reports group equality.
func (p G2Point) Equal(o G2Point) bool { return p.inner.IsEqual(&o.inner) }

// Add returns p + o.
func (p G2Point) Add(o G2Point) G2Point {
	var z bls.G2
	bls.G2Add(&z, &p.inner, &o.inner)
	return G2Point{inner: z}
}

// Sub returns p - o.
func (p G2Point) Sub(o G2Point) G2Point {
	var z bls.G2
	bls.G2Sub(&z, &p.inner, &o.inner)
	return G2Point{inner: z}
}

// Mul returns s * p (scalar multiplication).
func (p G2Point) Mul(s Scalar) G2Point {
	var z bls.G2
	bls.G2Mul(&z, &p.inner, &s.inner)
	return G2Point{inner: z}
}

// Bytes returns the compressed canonical encoding of p.
func (p G2Point) Bytes() []byte {
	return p.inner.Serialize()
}

// SetBytes decodes the compressed encoding produced by Bytes.
func (p *G2Point) SetBytes(b []byte) error {
	if err := p.inner.Deserialize(b); err != nil {
		return fmt.Errorf("curve: deserialize G2 point: %w", err)
	}
	return nil
}

// RawBytes returns the curve library's uncompressed ("raw array") encoding
// of p. Proof-of-possession binds to this exact encoding, per spec.md §4.3
// and §9.
func (p G2Point) RawBytes() []byte {
	return p.inner.SerializeUncompressed()
}

// HexString returns the "0x"-prefixed compressed hex form of p.
func (p G2Point) HexString() string {
	return "0x" + p.inner.GetHexString()
}

// SetHexString parses the "0x"-prefixed hex form produced by HexString.
func (p *G2Point) SetHexString(str string) error {
	if err := p.inner.SetHexString(trimHexPrefix(str)); err != nil {
		return fmt.Errorf("curve: parse G2 point hex %q: %w", str, err)
	}
	return nil
}
