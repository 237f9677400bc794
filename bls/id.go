package bls

import "github.com/leishman/bls/curve"

// Id is a non-zero share index used to evaluate and recover threshold
// shares. It is a scalar in Fr (spec.md §3).
type Id struct {
	v curve.Scalar
}

// IdFromInt constructs an Id carrying the given non-negative integer
// directly (spec.md §4.4).
func IdFromInt(id uint64) Id {
	return Id{v: curve.ScalarFromLimbs([4]uint64{id, 0, 0, 0})}
}

// IsZero reports whether id is the zero share index. A zero Id must never
// be used to evaluate a share polynomial: doing so would recover the
// dealer's secret itself (spec.md §3 invariants).
func (id Id) IsZero() bool {
	return id.v.IsZero()
}

// Set mask-loads four 64-bit little-endian limbs into Fr, per the masking
// policy in mask.go (spec.md §4.4, §6).
func (id *Id) Set(p [4]uint64) {
	id.v = curve.ScalarFromLimbs(maskLimbs(p))
}

// Equal reports field equality.
func (id Id) Equal(o Id) bool {
	return id.v.Equal(o.v)
}

// String returns the "0x"-prefixed canonical hex form of id.
func (id Id) String() string {
	return id.v.HexString()
}

// SetHexString parses the "0x"-prefixed hex form produced by String.
func (id *Id) SetHexString(s string) error {
	return id.v.SetHexString(s)
}

// IdVec is a vector of Ids, mirroring original_source/include/bls.hpp's
// IdVec typedef.
type IdVec []Id

func (ids IdVec) scalars() []curve.Scalar {
	out := make([]curve.Scalar, len(ids))
	for i, id := range ids {
		out[i] = id.v
	}
	return out
}
