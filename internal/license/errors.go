package license

import "errors"

// Errors returned by Verifier. The messages are shown to the user as-is.
var (
	ErrMalformedEncoding  = errors.New("invalid license key format")
	ErrMalformedStructure = errors.New("invalid license key structure")
	ErrMalformedPayload   = errors.New("invalid license payload")
	ErrWrongProduct       = errors.New("invalid product")
	ErrMalformedSignature = errors.New("invalid signature format")
	ErrSignatureInvalid   = errors.New("invalid signature")
)

// IsMalformed reports whether err means the key is not a validly shaped
// credential at all, as opposed to a well-formed key that was rejected.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedEncoding) ||
		errors.Is(err, ErrMalformedStructure) ||
		errors.Is(err, ErrMalformedPayload) ||
		errors.Is(err, ErrMalformedSignature)
}
