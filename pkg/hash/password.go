package hash

import (
	"crypto/sha256"
	"crypto/subtle"
)

// SecretComparer checks a supplied secret against the configured one.
type SecretComparer interface {
	Equal(supplied string) bool
}

// SHA256Comparer keeps only the digest of the expected secret. Both sides
// are hashed before a constant-time comparison, so neither the content nor
// the length of the secret leaks through timing.
type SHA256Comparer struct {
	digest [sha256.Size]byte
}

func NewSHA256Comparer(secret string) *SHA256Comparer {
	return &SHA256Comparer{digest: sha256.Sum256([]byte(secret))}
}

func (c *SHA256Comparer) Equal(supplied string) bool {
	d := sha256.Sum256([]byte(supplied))
	return subtle.ConstantTimeCompare(d[:], c.digest[:]) == 1
}
