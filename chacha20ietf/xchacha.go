package chacha20ietf

import (
	"github.com/cryptoapi-go/chachapoly/cryptoapi"
	"github.com/cryptoapi-go/chachapoly/internal/alias"
)

// XChaCha20Ietf is the XChaCha20 cipher capability: ChaCha20-IETF extended to
// a 24-byte nonce via HChaCha20, large enough that nonces can be chosen at
// random. Like ChaCha20Ietf it is stateless and one-shot.
type XChaCha20Ietf struct{}

var _ cryptoapi.Cipher = XChaCha20Ietf{}

// XCipher returns a cryptoapi.Cipher backed by XChaCha20.
func XCipher() cryptoapi.Cipher {
	return XChaCha20Ietf{}
}

// Info implements cryptoapi.Cipher.
func (XChaCha20Ietf) Info() cryptoapi.CipherInfo {
	return cryptoapi.CipherInfo{
		Name:      "XChaCha20Ietf",
		IsOneTime: true,

		KeyLenMin:   KeySize,
		KeyLenMax:   KeySize,
		NonceLenMin: XNonceSize,
		NonceLenMax: XNonceSize,
	}
}

// EncryptedLenMax implements cryptoapi.Cipher.
func (XChaCha20Ietf) EncryptedLenMax(plaintextLen int) int {
	return plaintextLen
}

// xorKeyStream derives the HChaCha20 subkey from the first 16 nonce bytes
// and runs ChaCha20-IETF over buf with the remaining 8 nonce bytes preceded
// by 4 zero bytes.
func (XChaCha20Ietf) xorKeyStream(key, nonce []byte, counter uint32, buf []byte) {
	subKey := hChaCha20(key, nonce[:hNonceSize])

	var subNonce [NonceSize]byte
	copy(subNonce[4:], nonce[hNonceSize:])

	XORKeyStream(subKey[:], subNonce[:], counter, buf)
}

// Encrypt implements cryptoapi.Cipher.
func (c XChaCha20Ietf) Encrypt(buf []byte, plaintextLen int, key, nonce []byte) (int, error) {
	if err := checkParams(key, nonce, XNonceSize, plaintextLen, len(buf)); err != nil {
		return 0, err
	}
	c.xorKeyStream(key, nonce, 0, buf[:plaintextLen])
	return plaintextLen, nil
}

// EncryptTo implements cryptoapi.Cipher. buf and plaintext must overlap
// entirely or not at all.
func (c XChaCha20Ietf) EncryptTo(buf, plaintext, key, nonce []byte) (int, error) {
	if err := checkParams(key, nonce, XNonceSize, len(plaintext), len(buf)); err != nil {
		return 0, err
	}
	if alias.InexactOverlap(buf[:len(plaintext)], plaintext) {
		panic("chacha20ietf: invalid buffer overlap")
	}
	copy(buf, plaintext)
	c.xorKeyStream(key, nonce, 0, buf[:len(plaintext)])
	return len(plaintext), nil
}

// Decrypt implements cryptoapi.Cipher.
func (c XChaCha20Ietf) Decrypt(buf []byte, ciphertextLen int, key, nonce []byte) (int, error) {
	return c.Encrypt(buf, ciphertextLen, key, nonce)
}

// DecryptTo implements cryptoapi.Cipher.
func (c XChaCha20Ietf) DecryptTo(buf, ciphertext, key, nonce []byte) (int, error) {
	return c.EncryptTo(buf, ciphertext, key, nonce)
}

// NewSecKey implements cryptoapi.SecKeyGen. XChaCha20 keys are ChaCha20 keys.
func (XChaCha20Ietf) NewSecKey(buf []byte, rng cryptoapi.SecureRng) (int, error) {
	return ChaCha20Ietf{}.NewSecKey(buf, rng)
}
