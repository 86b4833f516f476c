package license

import (
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer signs license keys. It is vendor tooling and never runs inside the
// shipped application.
type Issuer struct {
	privateKey ed25519.PrivateKey
	product    string
}

// NewIssuer creates an Issuer signing with priv for the given product.
// An empty product defaults to Product.
func NewIssuer(priv ed25519.PrivateKey, product string) (*Issuer, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid license private key: want %d bytes, got %d", ed25519.PrivateKeySize, len(priv))
	}
	if product == "" {
		product = Product
	}
	return &Issuer{privateKey: priv, product: product}, nil
}

// Issue returns a license key bound to email.
func (i *Issuer) Issue(email string, issuedAt time.Time) (string, error) {
	if email == "" {
		return "", errors.New("email is required")
	}
	payload, err := json.Marshal(Claims{
		Email:     email,
		Timestamp: uint64(issuedAt.UnixMilli()), //nolint:gosec // issuance times are after the epoch
		Product:   i.product,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal license payload: %w", err)
	}
	return i.sign(string(payload))
}

// sign wraps payload and its signature into the license key format.
func (i *Issuer) sign(payload string) (string, error) {
	sig, err := jwt.SigningMethodEdDSA.Sign(payload, i.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign license payload: %w", err)
	}
	data, err := json.Marshal(envelope{
		Payload:   payload,
		Signature: keyEncoding.EncodeToString(sig),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal license key: %w", err)
	}
	return keyEncoding.EncodeToString(data), nil
}
