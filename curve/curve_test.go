package curve_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/leishman/bls/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := curve.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "curve.Init:", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestInitIsIdempotent(t *testing.T) {
	q := curve.Q
	require.NoError(t, curve.Init())
	assert.True(t, q.Equal(curve.Q))
}

func TestScalarArithmetic(t *testing.T) {
	a, err := curve.RandomScalar()
	require.NoError(t, err)
	b, err := curve.RandomScalar()
	require.NoError(t, err)

	sum := a.Add(b)
	assert.True(t, sum.Sub(b).Equal(a))
	assert.True(t, curve.ScalarZero().IsZero())
	assert.False(t, a.IsZero() && b.IsZero())
}

func TestScalarFromLimbsIsLittleEndian(t *testing.T) {
	one := curve.ScalarFromLimbs([4]uint64{1, 0, 0, 0})
	two := curve.ScalarFromLimbs([4]uint64{2, 0, 0, 0})
	assert.True(t, one.Add(one).Equal(two))
}

func TestScalarBytesRoundTrip(t *testing.T) {
	a, err := curve.RandomScalar()
	require.NoError(t, err)
	var b curve.Scalar
	require.NoError(t, b.SetBytes(a.Bytes()))
	assert.True(t, a.Equal(b))
}

func TestG1PointArithmetic(t *testing.T) {
	base, err := curve.MapToG1([32]byte{9})
	require.NoError(t, err)
	s, err := curve.RandomScalar()
	require.NoError(t, err)

	doubled := base.Add(base)
	two := curve.ScalarFromLimbs([4]uint64{2, 0, 0, 0})
	assert.True(t, doubled.Equal(base.Mul(two)))

	scaled := base.Mul(s)
	assert.True(t, scaled.Sub(base.Mul(s)).Equal(curve.G1Zero()))
}

func TestG2ScalarMulIsDeterministic(t *testing.T) {
	s, err := curve.RandomScalar()
	require.NoError(t, err)
	a := curve.Q.Mul(s)
	b := curve.Q.Mul(s)
	assert.True(t, a.Equal(b))
}

func TestPairingMatchesMillerLoopPlusFinalExponentiation(t *testing.T) {
	s, err := curve.RandomScalar()
	require.NoError(t, err)
	p, err := curve.MapToG1([32]byte{7})
	require.NoError(t, err)

	direct := curve.Pairing(curve.Q, p.Mul(s))
	deferred := curve.FinalExponentiation(curve.MillerLoop(curve.Q, p.Mul(s)))
	assert.True(t, direct.Equal(deferred))
}

func TestG2BytesRoundTrip(t *testing.T) {
	s, err := curve.RandomScalar()
	require.NoError(t, err)
	p := curve.Q.Mul(s)

	var out curve.G2Point
	require.NoError(t, out.SetBytes(p.Bytes()))
	assert.True(t, p.Equal(out))

	var outHex curve.G2Point
	require.NoError(t, outHex.SetHexString(p.HexString()))
	assert.True(t, p.Equal(outHex))
}
