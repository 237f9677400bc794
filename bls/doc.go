// Package bls implements Boneh-Lynn-Shacham signatures over the 254-bit BN
// curve, with Shamir k-out-of-n threshold signing and distinct-message
// signature aggregation.
//
// BLS signature:
//
//	e : G2 x G1 -> Fp12
//	Q in G2 ; fixed system-wide generator
//	H : {bytes} -> G1
//	s ; secret key
//	sQ ; public key
//	s*H(m) ; signature of m
//	verify ; e(Q, s*H(m)) == e(sQ, H(m))
//
// Call Init once, before any other function in this package.
package bls
