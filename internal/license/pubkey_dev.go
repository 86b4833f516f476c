//go:build dev

package license

import (
	"crypto/ed25519"
	"fmt"
	"os"
)

const devFallbackPEM = `-----BEGIN PUBLIC KEY-----
MCowBQYDK2VwAyEA/zB2hOm8CL03USj+vw87fZYf/UOuVy45cQr/MZ6DWnw=
-----END PUBLIC KEY-----`

// TrustAnchor returns the Ed25519 public key used to verify license keys.
// In dev builds, it reads a PEM from RINGLITE_LICENSE_PUBKEY with fallback to
// the production key.
func TrustAnchor() (ed25519.PublicKey, error) {
	pem := os.Getenv("RINGLITE_LICENSE_PUBKEY")
	if pem == "" {
		pem = devFallbackPEM
	}
	pub, err := ParsePublicKeyPEM([]byte(pem))
	if err != nil {
		return nil, fmt.Errorf("invalid license public key: %w", err)
	}
	return pub, nil
}
