package bls

import (
	"github.com/leishman/bls/curve"
	"github.com/leishman/bls/errs"
	"github.com/leishman/bls/poly"
)

// PublicKey is sQ, a point in G2 (spec.md §3).
type PublicKey struct {
	q curve.G2Point
}

// SetShare evaluates the master public polynomial f_p at id using Horner's
// method. id must be non-zero; len(mpk) must be at least 2. The result
// satisfies sharePub = share * Q for the matching SecretKey.SetShare call
// (spec.md §3 invariants).
func (pub *PublicKey) SetShare(mpk PublicKeyVec, id Id) error {
	if id.IsZero() {
		return errs.New(errs.KindIDZero, "")
	}
	q, err := poly.EvalPoly(id.v, mpk.points())
	if err != nil {
		return err
	}
	pub.q = q
	return nil
}

// Recover reconstructs the dealer's public key via Lagrange interpolation
// in G2 from k >= 2 distinct (id, public-key-share) pairs.
func (pub *PublicKey) Recover(pubVec PublicKeyVec, idVec IdVec) error {
	if len(pubVec) != len(idVec) {
		return errs.Badf(errs.KindBadSize, "pubVec has %d entries, idVec has %d", len(pubVec), len(idVec))
	}
	q, err := poly.LagrangeInterpolate(pubVec.points(), idVec.scalars())
	if err != nil {
		return err
	}
	pub.q = q
	return nil
}

// Add returns pub + rhs (group addition in G2).
func (pub PublicKey) Add(rhs PublicKey) PublicKey {
	return PublicKey{q: pub.q.Add(rhs.q)}
}

// Equal reports group equality.
func (pub PublicKey) Equal(o PublicKey) bool { return pub.q.Equal(o.q) }

// Bytes returns the compressed canonical encoding of pub (a compressed G2
// point).
func (pub PublicKey) Bytes() []byte { return pub.q.Bytes() }

// SetBytes decodes the compressed encoding produced by Bytes.
func (pub *PublicKey) SetBytes(b []byte) error { return pub.q.SetBytes(b) }

// String returns the "0x"-prefixed compressed hex form of pub.
func (pub PublicKey) String() string { return pub.q.HexString() }

// SetHexString parses the "0x"-prefixed hex form produced by String.
func (pub *PublicKey) SetHexString(s string) error { return pub.q.SetHexString(s) }

// PublicKeyVec is a vector of PublicKeys, mirroring
// original_source/include/bls.hpp's PublicKeyVec typedef.
type PublicKeyVec []PublicKey

func (v PublicKeyVec) points() []curve.G2Point {
	out := make([]curve.G2Point, len(v))
	for i, pub := range v {
		out[i] = pub.q
	}
	return out
}

// Recover reconstructs the dealer's public key from this vector of k
// public-key shares and their matching ids.
func (v PublicKeyVec) Recover(ids IdVec) (PublicKey, error) {
	var pub PublicKey
	err := pub.Recover(v, ids)
	return pub, err
}

// GetMasterPublicKey computes mpk[i] = msk[i] * Q for every coefficient of
// msk, the public counterpart of a master secret key (spec.md §4.9).
func GetMasterPublicKey(msk SecretKeyVec) PublicKeyVec {
	mpk := make(PublicKeyVec, len(msk))
	for i, sk := range msk {
		mpk[i] = sk.GetPublicKey()
	}
	return mpk
}
