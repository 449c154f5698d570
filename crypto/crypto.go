// Package crypto abstracts the ed25519 operations keypair and the
// signing pipeline need behind a small interface, so the default
// pure-Go implementation can be swapped for a cgo-backed one without
// touching any caller.
package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/ed25519"

	"github.com/EXCCoin/stellarbase/errs"
)

// SeedSize and PublicKeySize/SignatureSize mirror the ed25519 package's
// constants; re-declared here so callers never need to import
// golang.org/x/crypto/ed25519 directly.
const (
	SeedSize      = ed25519.SeedSize
	PublicKeySize = ed25519.PublicKeySize
	SignatureSize = ed25519.SignatureSize
)

// Signer is the capability every keypair backend provides. The
// default backend (below) is pure Go; a cgo `sodium`-backed
// implementation lives behind the `sodium` build tag in sodium.go.
type Signer interface {
	// Sign returns the ed25519 signature of message under the key
	// derived from seed.
	Sign(seed, message []byte) ([]byte, error)
	// Verify reports whether sig is a valid ed25519 signature of
	// message under publicKey.
	Verify(publicKey, message, sig []byte) bool
	// PublicFromSeed derives the 32-byte public key for a 32-byte seed.
	PublicFromSeed(seed []byte) ([]byte, error)
	// GenerateSeed returns a fresh random 32-byte seed.
	GenerateSeed() ([]byte, error)
}

// Default is the backend used unless a caller wires up another one
// (see InitSodium in sodium.go).
var Default Signer = stdlibSigner{}

type stdlibSigner struct{}

func (stdlibSigner) Sign(seed, message []byte) ([]byte, error) {
	if len(seed) != SeedSize {
		return nil, errs.New(errs.ErrInvalidSeed, "seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return ed25519.Sign(priv, message), nil
}

func (stdlibSigner) Verify(publicKey, message, sig []byte) bool {
	if len(publicKey) != PublicKeySize || len(sig) != SignatureSize {
		return false
	}
	return ed25519.Verify(publicKey, message, sig)
}

func (stdlibSigner) PublicFromSeed(seed []byte) ([]byte, error) {
	if len(seed) != SeedSize {
		return nil, errs.New(errs.ErrInvalidSeed, "seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	return []byte(pub), nil
}

func (stdlibSigner) GenerateSeed() ([]byte, error) {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, errs.New(errs.ErrInvalidSeed, "reading random seed: %v", err)
	}
	return seed, nil
}
