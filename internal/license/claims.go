package license

import "time"

// Product is the product identifier every RingLite license must carry.
const Product = "ringlite-pro"

// Claims represents the signed payload of a RingLite license key.
type Claims struct {
	Email string `json:"email"`
	// Timestamp is the issuance time in Unix milliseconds. It is carried for
	// forward compatibility and is not checked against any expiry.
	Timestamp uint64 `json:"timestamp"`
	Product   string `json:"product"`
}

// IssuedAt returns the issuance timestamp as a time.Time.
func (c *Claims) IssuedAt() time.Time {
	return time.UnixMilli(int64(c.Timestamp)) //nolint:gosec // issuance times fit in int64
}

// envelope is the JSON object a license key decodes to. The payload is kept
// as the raw string that was signed.
type envelope struct {
	Payload   string `json:"payload"`
	Signature string `json:"signature"`
}

// rawEnvelope mirrors envelope with pointer fields so missing members can be
// told apart from empty ones.
type rawEnvelope struct {
	Payload   *string `json:"payload"`
	Signature *string `json:"signature"`
}

type rawClaims struct {
	Email     *string `json:"email"`
	Timestamp *uint64 `json:"timestamp"`
	Product   *string `json:"product"`
}
