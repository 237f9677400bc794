// Package curve binds the BLS threshold/aggregate signature core to a
// concrete pairing-curve arithmetic library. It is the only package in this
// module that imports github.com/herumi/bls-eth-go-binary/bls; every other
// package talks to the curve only through the types and functions declared
// here, so the binding can be swapped without touching the protocol layer.
//
// The curve fixed for this module is the original 254-bit BN curve
// (CurveFp254BNb), not BLS12-381: it is the curve whose scalar field order
// and G2 generator match the values this module's protocol layer requires.
package curve

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"github.com/herumi/bls-eth-go-binary/bls"
)

// Q is the system-wide fixed generator of G2. Every implementation of this
// protocol must use exactly this point to remain interoperable.
var Q G2Point

var (
	initOnce sync.Once
	initErr  error

	rngMu  sync.Mutex
	rngSrc io.Reader = rand.Reader
)

// InitOption configures curve initialization.
type InitOption func(*initConfig)

type initConfig struct {
	rng io.Reader
}

// WithRandomSource overrides the entropy source consulted by SecretKey.Init
// and polynomial randomization. The default is crypto/rand.Reader.
func WithRandomSource(r io.Reader) InitOption {
	return func(c *initConfig) { c.rng = r }
}

// Init performs the one process-wide curve setup this module requires:
// selecting the BN curve, fixing the scalar field to the curve's group
// order, enabling compressed point representation, and installing the
// random source consulted by key generation. It is idempotent: the curve
// library is only configured on the first call, but later calls may still
// install a different random source.
func Init(opts ...InitOption) error {
	cfg := initConfig{rng: rand.Reader}
	for _, opt := range opts {
		opt(&cfg)
	}

	initOnce.Do(func() {
		if err := bls.Init(bls.CurveFp254BNb); err != nil {
			initErr = fmt.Errorf("curve: init BN curve: %w", err)
			return
		}
		bls.VerifyPublicKeyOrder(true)
		bls.VerifySignatureOrder(true)

		// mcl's affine text form for a finite G2 point is
		// "1 x.d0 x.d1 y.d0 y.d1" in the base given to SetString.
		const qStr = "1 " +
			"12723517038133731887338407189719511622662176727675373276651903807414909099441 " +
			"4168783608814932154536427934509895782246573715297911553964171371032945126671 " +
			"13891744915211034074451795021214165905772212241412891944830863846330766296736 " +
			"7937318970632701341203597196594272556916396164729705624521405069090520231616"
		var g2 bls.G2
		if err := g2.SetString(qStr, 10); err != nil {
			initErr = fmt.Errorf("curve: set fixed G2 generator Q: %w", err)
			return
		}
		Q = G2Point{inner: g2}
	})
	if initErr != nil {
		return initErr
	}

	rngMu.Lock()
	rngSrc = cfg.rng
	rngMu.Unlock()
	return nil
}

func randomBytes(n int) ([]byte, error) {
	rngMu.Lock()
	defer rngMu.Unlock()
	buf := make([]byte, n)
	if _, err := io.ReadFull(rngSrc, buf); err != nil {
		return nil, fmt.Errorf("curve: read random bytes: %w", err)
	}
	return buf, nil
}
