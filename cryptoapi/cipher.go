// Package cryptoapi defines the generic capability surfaces that the cipher
// implementations in this module plug into: symmetric ciphers, secure key
// generation and cryptographically secure random number sources.
//
// The surfaces are deliberately narrow. A Cipher is a stateless value; keys,
// nonces and buffers are always owned by the caller and passed per call.
package cryptoapi

// CipherInfo describes the parameters of a Cipher implementation.
type CipherInfo struct {
	// Name is the canonical name of the cipher.
	Name string

	// IsOneTime indicates that a (key, nonce) combination must never be
	// used to protect more than one message.
	IsOneTime bool

	// KeyLenMin and KeyLenMax bound the supported key lengths in bytes.
	KeyLenMin, KeyLenMax int

	// NonceLenMin and NonceLenMax bound the supported nonce lengths in
	// bytes.
	NonceLenMin, NonceLenMax int

	// TagLenMin and TagLenMax bound the supported authentication tag
	// lengths in bytes. Both are zero for unauthenticated ciphers.
	TagLenMin, TagLenMax int
}

// SecKeyGen is the capability to generate a secret key.
type SecKeyGen interface {
	// NewSecKey fills the beginning of buf with a newly generated secret
	// key read from rng and returns the key length in bytes.
	NewSecKey(buf []byte, rng SecureRng) (int, error)
}

// Cipher is the capability to encrypt and decrypt messages with a symmetric
// cipher. Implementations hold no mutable state; concurrent calls with
// disjoint buffers are safe.
type Cipher interface {
	SecKeyGen

	// Info returns the cipher's parameters.
	Info() CipherInfo

	// EncryptedLenMax returns the maximum ciphertext length for a
	// plaintext of plaintextLen bytes.
	EncryptedLenMax(plaintextLen int) int

	// Encrypt encrypts the first plaintextLen bytes of buf in place and
	// returns the ciphertext length.
	Encrypt(buf []byte, plaintextLen int, key, nonce []byte) (int, error)

	// EncryptTo copies plaintext into buf and encrypts it there,
	// returning the ciphertext length. buf and plaintext must overlap
	// entirely or not at all.
	EncryptTo(buf, plaintext, key, nonce []byte) (int, error)

	// Decrypt decrypts the first ciphertextLen bytes of buf in place and
	// returns the plaintext length.
	Decrypt(buf []byte, ciphertextLen int, key, nonce []byte) (int, error)

	// DecryptTo copies ciphertext into buf and decrypts it there,
	// returning the plaintext length. buf and ciphertext must overlap
	// entirely or not at all.
	DecryptTo(buf, ciphertext, key, nonce []byte) (int, error)
}
