package poly_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/leishman/bls/curve"
	"github.com/leishman/bls/poly"
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

func randScalar(t *testing.T) curve.Scalar {
	t.Helper()
	s, err := curve.RandomScalar()
	require.NoError(t, err)
	return s
}

func TestEvalPolyRejectsShortCoefficientList(t *testing.T) {
	_, err := poly.EvalPoly(randScalar(t), []curve.Scalar{randScalar(t)})
	assert.Error(t, err)
}

func TestEvalPolyConstantTerm(t *testing.T) {
	c0 := randScalar(t)
	c1 := randScalar(t)
	coeffs := []curve.Scalar{c0, c1}

	y, err := poly.EvalPoly(curve.ScalarZero(), coeffs)
	require.NoError(t, err)
	assert.True(t, y.Equal(c0))
}

// Lagrange interpolation at zero recovers a polynomial's constant term from
// k samples of f(id) for a degree k-1 polynomial, over Fr.
func TestLagrangeInterpolateRecoversScalarConstant(t *testing.T) {
	coeffs := []curve.Scalar{randScalar(t), randScalar(t), randScalar(t)}
	ids := []curve.Scalar{
		curve.ScalarFromLimbs([4]uint64{1, 0, 0, 0}),
		curve.ScalarFromLimbs([4]uint64{2, 0, 0, 0}),
		curve.ScalarFromLimbs([4]uint64{3, 0, 0, 0}),
	}

	values := make([]curve.Scalar, len(ids))
	for i, id := range ids {
		y, err := poly.EvalPoly(id, coeffs)
		require.NoError(t, err)
		values[i] = y
	}

	got, err := poly.LagrangeInterpolate(values, ids)
	require.NoError(t, err)
	assert.True(t, got.Equal(coeffs[0]))
}

// The same algorithm, instantiated over G1Point, recovers a point-valued
// constant term — the group trait in action.
func TestLagrangeInterpolateRecoversG1Constant(t *testing.T) {
	c0 := randScalar(t)
	base, err := curve.MapToG1([32]byte{1, 2, 3})
	require.NoError(t, err)
	coeffs := []curve.G1Point{
		base.Mul(c0),
		base.Mul(randScalar(t)),
		base.Mul(randScalar(t)),
	}

	ids := []curve.Scalar{
		curve.ScalarFromLimbs([4]uint64{1, 0, 0, 0}),
		curve.ScalarFromLimbs([4]uint64{2, 0, 0, 0}),
		curve.ScalarFromLimbs([4]uint64{3, 0, 0, 0}),
	}

	values := make([]curve.G1Point, len(ids))
	for i, id := range ids {
		y, evalErr := poly.EvalPoly(id, coeffs)
		require.NoError(t, evalErr)
		values[i] = y
	}

	got, err := poly.LagrangeInterpolate(values, ids)
	require.NoError(t, err)
	assert.True(t, got.Equal(coeffs[0]))
}

func TestLagrangeInterpolateRejectsDuplicateIds(t *testing.T) {
	id := curve.ScalarFromLimbs([4]uint64{1, 0, 0, 0})
	values := []curve.Scalar{randScalar(t), randScalar(t)}
	_, err := poly.LagrangeInterpolate(values, []curve.Scalar{id, id})
	assert.Error(t, err)
}

func TestLagrangeInterpolateRejectsMismatchedLengths(t *testing.T) {
	_, err := poly.LagrangeInterpolate([]curve.Scalar{randScalar(t)}, []curve.Scalar{randScalar(t), randScalar(t)})
	assert.Error(t, err)
}
