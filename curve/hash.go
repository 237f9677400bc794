package curve

import "github.com/herumi/bls-eth-go-binary/bls"

// MapToG1 deterministically maps a base-field element to a point in G1.
// Callers are responsible for producing t (spec.md §4.2: SHA-256 digest,
// mask-loaded into Fp); this function only performs the curve-layer side of
// the map.
func MapToG1(t [32]byte) (G1Point, error) {
	var fp bls.Fp
	fp.SetLittleEndianMod(t[:])
	var p bls.G1
	if err := bls.FpMapToG1(&p, &fp); err != nil {
		return G1Point{}, err
	}
	return G1Point{inner: p}, nil
}
