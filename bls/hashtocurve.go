package bls

import (
	"crypto/sha256"

	"github.com/leishman/bls/curve"
)

// hashToG1 is the component-2 hash-to-curve map: H(m) = MapToG1(mask-load
// into Fp(SHA-256(m))) (spec.md §4.2). It is deterministic and total for
// any byte string. The mask-load step mirrors mask.go's scalar masking the
// same way original_source/src/bls.cpp's HashAndMapToG1 mask-loads its
// digest via mcl's Fp::setArrayMask before mapping it to G1.
func hashToG1(m []byte) (curve.G1Point, error) {
	digest := maskDigestMSB(sha256.Sum256(m))
	return curve.MapToG1(digest)
}
