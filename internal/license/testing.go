package license

// NewTestKeys generates an ephemeral key pair and returns a Verifier that
// trusts it together with an Issuer that signs with it. Use in tests only.
func NewTestKeys() (*Verifier, *Issuer) {
	pub, priv, err := GenerateKeyPair()
	if err != nil {
		panic("license.GenerateKeyPair: " + err.Error())
	}
	v, err := NewVerifier(pub)
	if err != nil {
		panic("license.NewVerifier: " + err.Error())
	}
	iss, err := NewIssuer(priv, Product)
	if err != nil {
		panic("license.NewIssuer: " + err.Error())
	}
	return v, iss
}
