package bls

// topLimbMask clears the bits of a 256-bit little-endian limb array that
// sit above the top set bit of Fr's order r (spec.md §3/§6): the value is
// masked, not reduced modulo r, by this step. A masked value can still be r
// or larger; curve.ScalarFromLimbs then reduces it. r's top limb has its highest
// set bit at local index 61, so bits 62 and 63 of the most significant limb
// are cleared and everything below is left untouched.
const topLimbMask = uint64(1)<<62 - 1

func maskLimbs(p [4]uint64) [4]uint64 {
	p[3] &= topLimbMask
	return p
}

// topByteMask clears the same two leading bits of a 256-bit value that
// topLimbMask clears from the top limb of a little-endian limb array.
// curve.MapToG1 loads its input the same way curve.ScalarFromLimbs loads a
// scalar (bls.Fp/bls.Fr.SetLittleEndianMod over a little-endian byte
// buffer), so the most significant byte is the last byte of the buffer,
// index 31, not the first. CurveFp254BNb's base field Fp is, like Fr,
// exactly 254 bits wide, so clearing the top two bits of that byte clears
// global bits 254 and 255, the same bit width a scalar is masked to.
const topByteMask = byte(0x3f)

// maskDigestMSB mask-loads a SHA-256 digest into Fp the way maskLimbs
// mask-loads limbs into Fr (spec.md §4.2): bits above Fp's top bit are
// cleared, the rest of the digest is left untouched, and the result is not
// reduced modulo p before being handed to the curve layer.
func maskDigestMSB(d [32]byte) [32]byte {
	d[31] &= topByteMask
	return d
}
