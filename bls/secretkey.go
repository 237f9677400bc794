package bls

import (
	"github.com/leishman/bls/curve"
	"github.com/leishman/bls/errs"
	"github.com/leishman/bls/poly"
)

// SecretKey is the scalar s a BLS signer signs with (spec.md §3).
type SecretKey struct {
	s curve.Scalar
}

// Init samples s uniformly from Fr via the process-wide random source
// installed by Init (curve.Init / bls.Init).
func (sk *SecretKey) Init() error {
	s, err := curve.RandomScalar()
	if err != nil {
		return err
	}
	sk.s = s
	return nil
}

// Set mask-loads four 64-bit little-endian limbs into Fr (spec.md §4.5).
func (sk *SecretKey) Set(p [4]uint64) {
	sk.s = curve.ScalarFromLimbs(maskLimbs(p))
}

// GetPublicKey computes sQ in G2.
func (sk SecretKey) GetPublicKey() PublicKey {
	return PublicKey{q: curve.Q.Mul(sk.s)}
}

// Sign computes s*H(m) in G1.
func (sk SecretKey) Sign(m []byte) (Sign, error) {
	hm, err := hashToG1(m)
	if err != nil {
		return Sign{}, err
	}
	return Sign{sHm: hm.Mul(sk.s)}, nil
}

// GetPop produces a proof of possession: a self-signature over the curve
// layer's raw (uncompressed) G2 encoding of the owner's public key
// (spec.md §4.5, §9). An attacker who does not know s cannot forge a
// signature verifying against sQ with that message.
func (sk SecretKey) GetPop() (Sign, error) {
	pub := sk.GetPublicKey()
	return sk.Sign(pub.q.RawBytes())
}

// GetMasterSecretKey produces msk = [s, msk[1], ..., msk[k-1]] for
// k-out-of-n secret sharing: msk[0] is sk itself and the remaining
// coefficients are sampled uniformly at random. k must be at least 2.
func (sk SecretKey) GetMasterSecretKey(k int) (SecretKeyVec, error) {
	if k <= 1 {
		return nil, errs.Badf(errs.KindBadK, "k=%d", k)
	}
	msk := make(SecretKeyVec, k)
	msk[0] = sk
	for i := 1; i < k; i++ {
		s, err := curve.RandomScalar()
		if err != nil {
			return nil, err
		}
		msk[i] = SecretKey{s: s}
	}
	log().Debug().Int("k", k).Msg("bls: derived master secret key")
	return msk, nil
}

// SetShare evaluates the master secret polynomial f_s at id using Horner's
// method, deriving this shareholder's secret key share. id must be
// non-zero; len(msk) must be at least 2.
func (sk *SecretKey) SetShare(msk SecretKeyVec, id Id) error {
	if id.IsZero() {
		return errs.New(errs.KindIDZero, "")
	}
	y, err := poly.EvalPoly(id.v, msk.scalars())
	if err != nil {
		return err
	}
	sk.s = y
	log().Debug().Str("id", id.String()).Msg("bls: derived secret share")
	return nil
}

// Recover reconstructs the dealer's secret via Lagrange interpolation at
// zero from k >= 2 distinct (id, share) pairs.
func (sk *SecretKey) Recover(secVec SecretKeyVec, idVec IdVec) error {
	if len(secVec) != len(idVec) {
		return errs.Badf(errs.KindBadSize, "secVec has %d entries, idVec has %d", len(secVec), len(idVec))
	}
	y, err := poly.LagrangeInterpolate(secVec.scalars(), idVec.scalars())
	if err != nil {
		return err
	}
	sk.s = y
	log().Debug().Int("k", len(secVec)).Msg("bls: recovered secret key")
	return nil
}

// Add returns sk + rhs (field addition), the homomorphic combination used
// to build multi-signer aggregate keys (spec.md §3 invariants).
func (sk SecretKey) Add(rhs SecretKey) SecretKey {
	return SecretKey{s: sk.s.Add(rhs.s)}
}

// Equal reports field equality.
func (sk SecretKey) Equal(o SecretKey) bool { return sk.s.Equal(o.s) }

// Bytes returns the canonical 32-byte encoding of s.
func (sk SecretKey) Bytes() []byte { return sk.s.Bytes() }

// SetBytes decodes the canonical encoding produced by Bytes.
func (sk *SecretKey) SetBytes(b []byte) error { return sk.s.SetBytes(b) }

// String returns the "0x"-prefixed canonical hex form of sk.
func (sk SecretKey) String() string { return sk.s.HexString() }

// SetHexString parses the "0x"-prefixed hex form produced by String.
func (sk *SecretKey) SetHexString(s string) error { return sk.s.SetHexString(s) }

// SecretKeyVec is a vector of SecretKeys, mirroring
// original_source/include/bls.hpp's SecretKeyVec typedef.
type SecretKeyVec []SecretKey

func (v SecretKeyVec) scalars() []curve.Scalar {
	out := make([]curve.Scalar, len(v))
	for i, sk := range v {
		out[i] = sk.s
	}
	return out
}

// Recover reconstructs the dealer's secret from this vector of k shares and
// their matching ids.
func (v SecretKeyVec) Recover(ids IdVec) (SecretKey, error) {
	var sk SecretKey
	err := sk.Recover(v, ids)
	return sk, err
}
