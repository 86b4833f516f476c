package license

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// keyEncoding is the base64 alphabet used for license keys and signatures.
// Strict mode rejects non-canonical trailing bits.
var keyEncoding = base64.StdEncoding.Strict()

// Verifier checks license keys against a single trusted Ed25519 public key.
// It holds no mutable state and is safe for concurrent use.
type Verifier struct {
	publicKey ed25519.PublicKey
	product   string
}

// NewVerifier creates a Verifier trusting the given public key.
func NewVerifier(publicKey ed25519.PublicKey) (*Verifier, error) {
	if len(publicKey) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid license public key: want %d bytes, got %d", ed25519.PublicKeySize, len(publicKey))
	}
	return &Verifier{publicKey: publicKey, product: Product}, nil
}

// DefaultVerifier returns a Verifier for the compiled-in trust anchor.
func DefaultVerifier() (*Verifier, error) {
	pub, err := TrustAnchor()
	if err != nil {
		return nil, err
	}
	return NewVerifier(pub)
}

// Verify validates rawKey and returns the email it was issued to.
func (v *Verifier) Verify(rawKey string) (string, error) {
	claims, err := v.VerifyClaims(rawKey)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}

// VerifyClaims validates rawKey and returns its claims.
//
// The signature is checked against the payload string exactly as it appears
// in the key; the parsed claims are never re-encoded.
func (v *Verifier) VerifyClaims(rawKey string) (*Claims, error) {
	trimmed := strings.TrimSpace(rawKey)
	if trimmed == "" {
		return nil, ErrMalformedEncoding
	}

	decoded, err := keyEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, ErrMalformedEncoding
	}

	env, err := decodeEnvelope(decoded)
	if err != nil {
		return nil, ErrMalformedStructure
	}

	claims, err := decodeClaims(env.Payload)
	if err != nil {
		return nil, ErrMalformedPayload
	}

	if claims.Product != v.product {
		return nil, ErrWrongProduct
	}

	sig, err := keyEncoding.DecodeString(env.Signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return nil, ErrMalformedSignature
	}

	if err := jwt.SigningMethodEdDSA.Verify(env.Payload, sig, v.publicKey); err != nil {
		return nil, ErrSignatureInvalid
	}

	return claims, nil
}

func decodeEnvelope(data []byte) (*envelope, error) {
	var raw rawEnvelope
	if err := unmarshalObject(data, &raw); err != nil {
		return nil, err
	}
	if raw.Payload == nil {
		return nil, fmt.Errorf("missing payload")
	}
	if raw.Signature == nil {
		return nil, fmt.Errorf("missing signature")
	}
	return &envelope{Payload: *raw.Payload, Signature: *raw.Signature}, nil
}

func decodeClaims(payload string) (*Claims, error) {
	var raw rawClaims
	if err := unmarshalObject([]byte(payload), &raw); err != nil {
		return nil, err
	}
	switch {
	case raw.Email == nil:
		return nil, fmt.Errorf("missing email")
	case raw.Timestamp == nil:
		return nil, fmt.Errorf("missing timestamp")
	case raw.Product == nil:
		return nil, fmt.Errorf("missing product")
	}
	return &Claims{
		Email:     *raw.Email,
		Timestamp: *raw.Timestamp,
		Product:   *raw.Product,
	}, nil
}

// unmarshalObject decodes a single JSON value. A bare null is rejected, since
// json.Unmarshal would accept it and leave every field unset.
func unmarshalObject(data []byte, v any) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("unexpected null")
	}
	return json.Unmarshal(data, v)
}
