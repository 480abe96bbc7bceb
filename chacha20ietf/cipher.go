package chacha20ietf

import (
	"github.com/cryptoapi-go/chachapoly/cryptoapi"
	"github.com/cryptoapi-go/chachapoly/internal/alias"
)

// ChaCha20Ietf is the ChaCha20-IETF cipher capability. It is stateless; the
// zero value is ready to use. The block counter of every one-shot call starts
// at 0, so a (key, nonce) combination must not be reused across messages.
type ChaCha20Ietf struct{}

var _ cryptoapi.Cipher = ChaCha20Ietf{}

// Cipher returns a cryptoapi.Cipher backed by ChaCha20-IETF.
func Cipher() cryptoapi.Cipher {
	return ChaCha20Ietf{}
}

// Info implements cryptoapi.Cipher.
func (ChaCha20Ietf) Info() cryptoapi.CipherInfo {
	return cryptoapi.CipherInfo{
		Name:      "ChaCha20Ietf",
		IsOneTime: true,

		KeyLenMin:   KeySize,
		KeyLenMax:   KeySize,
		NonceLenMin: NonceSize,
		NonceLenMax: NonceSize,
	}
}

// EncryptedLenMax implements cryptoapi.Cipher. A stream cipher does not
// expand its input.
func (ChaCha20Ietf) EncryptedLenMax(plaintextLen int) int {
	return plaintextLen
}

// checkParams validates the common one-shot call preconditions: key and
// nonce lengths, the RFC data cap and the output buffer capacity. dataLen is
// checked through uint64 so that a negative length is rejected too.
func checkParams(key, nonce []byte, nonceSize, dataLen, bufLen int) error {
	if len(key) != KeySize {
		return APIMisuseError("invalid key length")
	}
	if len(nonce) != nonceSize {
		return APIMisuseError("invalid nonce length")
	}
	if uint64(dataLen) > maxBytes {
		return APIMisuseError("too much data")
	}
	if dataLen > bufLen {
		return APIMisuseError("buffer is too small")
	}
	return nil
}

// Encrypt implements cryptoapi.Cipher. It encrypts buf[:plaintextLen] in
// place with the keystream starting at block 0 and returns plaintextLen.
func (ChaCha20Ietf) Encrypt(buf []byte, plaintextLen int, key, nonce []byte) (int, error) {
	if err := checkParams(key, nonce, NonceSize, plaintextLen, len(buf)); err != nil {
		return 0, err
	}
	XORKeyStream(key, nonce, 0, buf[:plaintextLen])
	return plaintextLen, nil
}

// EncryptTo implements cryptoapi.Cipher. It copies plaintext into buf and
// encrypts it there. buf and plaintext must overlap entirely or not at all;
// EncryptTo panics on inexact overlap.
func (ChaCha20Ietf) EncryptTo(buf, plaintext, key, nonce []byte) (int, error) {
	if err := checkParams(key, nonce, NonceSize, len(plaintext), len(buf)); err != nil {
		return 0, err
	}
	if alias.InexactOverlap(buf[:len(plaintext)], plaintext) {
		panic("chacha20ietf: invalid buffer overlap")
	}
	copy(buf, plaintext)
	XORKeyStream(key, nonce, 0, buf[:len(plaintext)])
	return len(plaintext), nil
}

// Decrypt implements cryptoapi.Cipher. ChaCha20 is its own inverse, so
// decryption is encryption.
func (c ChaCha20Ietf) Decrypt(buf []byte, ciphertextLen int, key, nonce []byte) (int, error) {
	return c.Encrypt(buf, ciphertextLen, key, nonce)
}

// DecryptTo implements cryptoapi.Cipher.
func (c ChaCha20Ietf) DecryptTo(buf, ciphertext, key, nonce []byte) (int, error) {
	return c.EncryptTo(buf, ciphertext, key, nonce)
}

// NewSecKey implements cryptoapi.SecKeyGen. It fills buf[:32] with a fresh
// key read from rng and returns 32. RNG failures are propagated unchanged.
func (ChaCha20Ietf) NewSecKey(buf []byte, rng cryptoapi.SecureRng) (int, error) {
	if len(buf) < KeySize {
		return 0, APIMisuseError("buffer is too small")
	}
	if err := rng.Random(buf[:KeySize]); err != nil {
		return 0, err
	}
	return KeySize, nil
}
