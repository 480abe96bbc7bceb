package chacha20ietf

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"golang.org/x/crypto/chacha20"
)

// HChaCha20 test vector from draft-irtf-cfrg-xchacha, section 2.2.1.
func TestHChaCha20Vector(t *testing.T) {
	key := fromHex(t, rfcKeyHex)
	nonce := fromHex(t, "000000090000004a0000000031415927")
	want := fromHex(t, "82413b4227b27bfed30e42508a877d73a0f9e4d58a74a853c12ec41326d3ecdc")

	got, err := HChaCha20(key, nonce)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("subkey mismatch:\ngot  %x\nwant %x", got, want)
	}

	// The draft vector and x/crypto must agree with us on the same input.
	ref, err := chacha20.HChaCha20(key, nonce)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, ref) {
		t.Errorf("subkey disagrees with x/crypto:\ngot  %x\nwant %x", got, ref)
	}
}

func TestHChaCha20AgainstXCrypto(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	key := make([]byte, KeySize)
	nonce := make([]byte, hNonceSize)

	for i := 0; i < 32; i++ {
		r.Read(key)
		r.Read(nonce)

		got, err := HChaCha20(key, nonce)
		if err != nil {
			t.Fatal(err)
		}
		ref, err := chacha20.HChaCha20(key, nonce)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, ref) {
			t.Fatalf("iteration %d: subkey disagrees with x/crypto:\ngot  %x\nwant %x", i, got, ref)
		}
	}
}

func TestHChaCha20Misuse(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, hNonceSize)

	var misuse APIMisuseError
	if _, err := HChaCha20(key[:31], nonce); !errors.As(err, &misuse) {
		t.Errorf("short key: got %v, want an APIMisuseError", err)
	}
	if _, err := HChaCha20(key, nonce[:15]); !errors.As(err, &misuse) {
		t.Errorf("short nonce: got %v, want an APIMisuseError", err)
	}
}

func TestXChaChaInfo(t *testing.T) {
	info := XCipher().Info()
	if info.Name != "XChaCha20Ietf" || !info.IsOneTime {
		t.Errorf("unexpected info %+v", info)
	}
	if info.NonceLenMin != XNonceSize || info.NonceLenMax != XNonceSize {
		t.Errorf("nonce length range %d..%d, want %d", info.NonceLenMin, info.NonceLenMax, XNonceSize)
	}
}

func TestXChaChaRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	key := make([]byte, KeySize)
	nonce := make([]byte, XNonceSize)
	r.Read(key)
	r.Read(nonce)

	c := XCipher()
	data := make([]byte, 200)
	r.Read(data)
	plain := append([]byte(nil), data...)

	if _, err := c.Encrypt(data, len(data), key, nonce); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(data, plain) {
		t.Fatal("ciphertext equals plaintext")
	}
	if _, err := c.Decrypt(data, len(data), key, nonce); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, plain) {
		t.Error("roundtrip did not restore the plaintext")
	}
}

// XChaCha20 rejects the plain 12-byte nonce.
func TestXChaChaNonceLength(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	buf := make([]byte, 16)

	var misuse APIMisuseError
	if _, err := XCipher().Encrypt(buf, len(buf), key, nonce); !errors.As(err, &misuse) {
		t.Errorf("got %v, want an APIMisuseError", err)
	}
}

func TestXChaChaAgainstXCrypto(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	key := make([]byte, KeySize)
	nonce := make([]byte, XNonceSize)

	for i := 0; i < 32; i++ {
		r.Read(key)
		r.Read(nonce)
		data := make([]byte, r.Intn(500))
		r.Read(data)

		got := append([]byte(nil), data...)
		if _, err := XCipher().Encrypt(got, len(got), key, nonce); err != nil {
			t.Fatal(err)
		}

		want := make([]byte, len(data))
		s, err := chacha20.NewUnauthenticatedCipher(key, nonce)
		if err != nil {
			t.Fatalf("x/crypto rejected inputs: %v", err)
		}
		s.XORKeyStream(want, data)

		if !bytes.Equal(got, want) {
			t.Fatalf("iteration %d (len %d): XChaCha20 disagrees with x/crypto:\ngot  %x\nwant %x",
				i, len(data), got, want)
		}
	}
}
