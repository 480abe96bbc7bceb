// Package osrandom provides a cryptoapi.SecureRng backed by the operating
// system's cryptographically secure random number generator.
package osrandom

import (
	"crypto/rand"

	"github.com/cryptoapi-go/chachapoly/cryptoapi"
)

type osRandom struct{}

// New returns a SecureRng that reads from crypto/rand.
func New() cryptoapi.SecureRng {
	return osRandom{}
}

func (osRandom) Random(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}
