package bls

import "github.com/leishman/bls/curve"

// KeySize is the number of 64-bit limbs backing an Id or SecretKey: 256
// bits (spec.md §3/§6).
const KeySize = 4

// Init performs the one process-wide curve setup this module requires: it
// must run before any other call in this package. Initialization failure is
// unrecoverable (spec.md §4.1) and is reported both as a returned error and
// as a logged error so misconfiguration is visible even to callers that
// (incorrectly) ignore the return value before panicking downstream.
func Init(opts ...curve.InitOption) error {
	if err := curve.Init(opts...); err != nil {
		log().Error().Err(err).Msg("bls: curve initialization failed")
		return err
	}
	log().Info().Msg("bls: BN curve initialized")
	return nil
}
