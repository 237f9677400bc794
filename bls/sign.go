package bls

import (
	"github.com/leishman/bls/curve"
	"github.com/leishman/bls/errs"
	"github.com/leishman/bls/poly"
)

// Sign is s*H(m), a point in G1 (spec.md §3).
type Sign struct {
	sHm curve.G1Point
}

// Verify checks e(Q, self) == e(pub, H(m)). It never raises: a malformed
// message simply cannot produce a valid signature, so that case is folded
// into rejection rather than surfaced as an error (spec.md §7).
func (s Sign) Verify(pub PublicKey, m []byte) bool {
	hm, err := hashToG1(m)
	if err != nil {
		return false
	}
	e1 := curve.Pairing(curve.Q, s.sHm)
	e2 := curve.Pairing(pub.q, hm)
	return e1.Equal(e2)
}

// VerifyPop checks s as a proof of possession for pub: it is a regular
// Verify against the curve layer's raw G2 encoding of pub (spec.md §4.7,
// §9).
func (s Sign) VerifyPop(pub PublicKey) bool {
	return s.Verify(pub, pub.q.RawBytes())
}

// VerifyAggregate verifies an aggregate signature against L >= 1 distinct
// (message, public key) pairs using one deferred final exponentiation
// instead of L (spec.md §4.7). It does not bind each pairing term to its
// signer's public key, so it is vulnerable to rogue-key attacks when an
// attacker can choose a public key after observing the others — this is a
// deliberate, unimplemented defense (spec.md §9); use VerifyAggregateHardened
// when that threat model applies.
func (s Sign) VerifyAggregate(messages [][]byte, pubKeys PublicKeyVec) bool {
	if len(messages) != len(pubKeys) || len(messages) == 0 {
		return false
	}
	e1 := curve.Pairing(curve.Q, s.sHm)

	hm0, err := hashToG1(messages[0])
	if err != nil {
		return false
	}
	e2 := curve.MillerLoop(pubKeys[0].q, hm0)
	for i := 1; i < len(messages); i++ {
		hmi, err := hashToG1(messages[i])
		if err != nil {
			return false
		}
		e2 = e2.Mul(curve.MillerLoop(pubKeys[i].q, hmi))
	}
	e2 = curve.FinalExponentiation(e2)
	return e1.Equal(e2)
}

// Recover reconstructs the dealer's signature via Lagrange interpolation in
// G1 from k >= 2 distinct (id, signature-share) pairs.
func (s *Sign) Recover(signVec SignVec, idVec IdVec) error {
	if len(signVec) != len(idVec) {
		return errs.Badf(errs.KindBadSize, "signVec has %d entries, idVec has %d", len(signVec), len(idVec))
	}
	sHm, err := poly.LagrangeInterpolate(signVec.points(), idVec.scalars())
	if err != nil {
		return err
	}
	s.sHm = sHm
	log().Debug().Int("k", len(signVec)).Msg("bls: recovered signature")
	return nil
}

// Add returns s + rhs (group addition in G1); this is how distinct-message
// signatures are combined into an aggregate, and how same-message shares
// are combined outside of formal threshold recovery.
func (s Sign) Add(rhs Sign) Sign {
	return Sign{sHm: s.sHm.Add(rhs.sHm)}
}

// Equal reports group equality.
func (s Sign) Equal(o Sign) bool { return s.sHm.Equal(o.sHm) }

// Bytes returns the compressed canonical encoding of s.
func (s Sign) Bytes() []byte { return s.sHm.Bytes() }

// SetBytes decodes the compressed encoding produced by Bytes.
func (s *Sign) SetBytes(b []byte) error { return s.sHm.SetBytes(b) }

// String returns the "0x"-prefixed compressed hex form of s.
func (s Sign) String() string { return s.sHm.HexString() }

// SetHexString parses the "0x"-prefixed hex form produced by String.
func (s *Sign) SetHexString(str string) error { return s.sHm.SetHexString(str) }

// SignVec is a vector of Signs, mirroring original_source/include/bls.hpp's
// SignVec typedef.
type SignVec []Sign

func (v SignVec) points() []curve.G1Point {
	out := make([]curve.G1Point, len(v))
	for i, s := range v {
		out[i] = s.sHm
	}
	return out
}

// Recover reconstructs the dealer's signature from this vector of k
// signature shares and their matching ids.
func (v SignVec) Recover(ids IdVec) (Sign, error) {
	var s Sign
	err := s.Recover(v, ids)
	return s, err
}

// GetPopVec produces one proof of possession per coefficient of msk
// (spec.md §4.9).
func GetPopVec(msk SecretKeyVec) (SignVec, error) {
	popVec := make(SignVec, len(msk))
	for i, sk := range msk {
		pop, err := sk.GetPop()
		if err != nil {
			return nil, err
		}
		popVec[i] = pop
	}
	return popVec, nil
}
