package bls_test

import (
	"testing"

	"github.com/leishman/bls/bls"
	"github.com/stretchr/testify/assert"
)

// Property 11: Set masks the top limb to bits below r's top bit position
// instead of reducing modulo r.
func TestScalarMasking(t *testing.T) {
	cases := []struct {
		name     string
		top      uint64
		wantTop  uint64
	}{
		{"clears the top bit alone", uint64(1) << 62, 0},
		{"keeps the bit just below it", (uint64(1) << 62) | (uint64(1) << 61), uint64(1) << 61},
		{"leaves an already-in-range value untouched", (uint64(1) << 61) - 1, (uint64(1) << 61) - 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got, want bls.Id
			got.Set([4]uint64{0, 0, 0, tc.top})
			want.Set([4]uint64{0, 0, 0, tc.wantTop})
			assert.True(t, got.Equal(want))
		})
	}
}
