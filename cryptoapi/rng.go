package cryptoapi

// SecureRng is a source of cryptographically secure random bytes.
type SecureRng interface {
	// Random fills buf with random bytes or reports an error. On error
	// the contents of buf are unspecified and must not be used.
	Random(buf []byte) error
}
