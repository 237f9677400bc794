package curve

import (
	"encoding/binary"
	"fmt"

	"github.com/herumi/bls-eth-go-binary/bls"
)

// Scalar is an element of Fr, the 256-bit prime scalar field fixed by Init.
type Scalar struct {
	inner bls.Fr
}

// RandomScalar draws a uniformly random element of Fr from the process-wide
// random source installed by Init. It reduces 64 random bytes modulo r, so
// the deviation from uniform is negligible.
func RandomScalar() (Scalar, error) {
	buf, err := randomBytes(64)
	if err != nil {
		return Scalar{}, err
	}
	var fr bls.Fr
	if err := fr.SetLittleEndianMod(buf); err != nil {
		return Scalar{}, fmt.Errorf("curve: load random scalar: %w", err)
	}
	return Scalar{inner: fr}, nil
}

// ScalarFromLimbs interprets p as a 256-bit little-endian integer (p[0] is
// the least significant limb) and loads it into Fr, reducing it modulo r. It
// applies no masking: callers that need the masking policy spec.md §3/§6
// describes must apply it to p before calling this.
func ScalarFromLimbs(p [4]uint64) Scalar {
	var buf [32]byte
	for i, limb := range p {
		binary.LittleEndian.PutUint64(buf[i*8:i*8+8], limb)
	}
	var fr bls.Fr
	fr.SetLittleEndianMod(buf[:])
	return Scalar{inner: fr}
}

// ScalarZero is the additive identity of Fr.
func ScalarZero() Scalar { return Scalar{} }

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool { return s.inner.IsZero() }

// Equal reports field equality.
func (s Scalar) Equal(o Scalar) bool { return s.inner.IsEqual(&o.inner) }

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar {
	var z bls.Fr
	bls.FrAdd(&z, &s.inner, &o.inner)
	return Scalar{inner: z}
}

// Sub returns s - o.
func (s Scalar) Sub(o Scalar) Scalar {
	var z bls.Fr
	bls.FrSub(&z, &s.inner, &o.inner)
	return Scalar{inner: z}
}

// Mul returns s * o.
func (s Scalar) Mul(o Scalar) Scalar {
	var z bls.Fr
	bls.FrMul(&z, &s.inner, &o.inner)
	return Scalar{inner: z}
}

// Div returns s / o; o must be non-zero.
func (s Scalar) Div(o Scalar) Scalar {
	var z bls.Fr
	bls.FrDiv(&z, &s.inner, &o.inner)
	return Scalar{inner: z}
}

// Bytes returns the canonical little-endian encoding of s.
func (s Scalar) Bytes() []byte {
	return s.inner.Serialize()
}

// SetBytes decodes the canonical encoding produced by Bytes.
func (s *Scalar) SetBytes(b []byte) error {
	if err := s.inner.Deserialize(b); err != nil {
		return fmt.Errorf("curve: deserialize scalar: %w", err)
	}
	return nil
}

// HexString returns the "0x"-prefixed canonical hex form of s.
func (s Scalar) HexString() string {
	return "0x" + s.inner.GetString(16)
}

// SetHexString parses the "0x"-prefixed hex form produced by HexString.
func (s *Scalar) SetHexString(str string) error {
	if err := s.inner.SetString(trimHexPrefix(str), 16); err != nil {
		return fmt.Errorf("curve: parse scalar hex %q: %w", str, err)
	}
	return nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
