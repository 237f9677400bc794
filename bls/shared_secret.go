package bls

// SharedSecret bundles the three pieces of state a threshold-signing dealer
// hands out together: the master secret coefficients, their public
// counterparts, and one proof of possession per coefficient. spec.md §4.9
// exposes GetMasterSecretKey/GetMasterPublicKey/GetPopVec as three separate
// calls; real dealers (and original_source/test/bls_test.cpp's pop test)
// always use them together, so NewSharedSecret does it in one call.
type SharedSecret struct {
	Msk    SecretKeyVec
	Mpk    PublicKeyVec
	PopVec SignVec
}

// NewSharedSecret derives a k-out-of-n dealer bundle from sec.
func NewSharedSecret(sec SecretKey, k int) (SharedSecret, error) {
	msk, err := sec.GetMasterSecretKey(k)
	if err != nil {
		return SharedSecret{}, err
	}
	mpk := GetMasterPublicKey(msk)
	popVec, err := GetPopVec(msk)
	if err != nil {
		return SharedSecret{}, err
	}
	return SharedSecret{Msk: msk, Mpk: mpk, PopVec: popVec}, nil
}

// Share derives the secret key, public key, and proof of possession for a
// single non-zero shareholder id.
func (ss SharedSecret) Share(id Id) (SecretKey, PublicKey, Sign, error) {
	var sec SecretKey
	if err := sec.SetShare(ss.Msk, id); err != nil {
		return SecretKey{}, PublicKey{}, Sign{}, err
	}
	pub := sec.GetPublicKey()
	pop, err := sec.GetPop()
	if err != nil {
		return SecretKey{}, PublicKey{}, Sign{}, err
	}
	return sec, pub, pop, nil
}
