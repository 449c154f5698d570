//go:build sodium

package crypto

import (
	"sync"

	"github.com/jamesruan/sodium"

	"github.com/EXCCoin/stellarbase/errs"
)

var sodiumInit sync.Once

// InitSodium switches Default to the libsodium-backed signer. It is
// only defined when the binary is built with `-tags sodium`; calling it
// from multiple goroutines is safe, the swap happens at most once.
func InitSodium() {
	sodiumInit.Do(func() {
		Default = sodiumSigner{}
	})
}

type sodiumSigner struct{}

func (sodiumSigner) Sign(seed, message []byte) ([]byte, error) {
	if len(seed) != SeedSize {
		return nil, errs.New(errs.ErrInvalidSeed, "seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	kp := sodium.SeedSignKP(sodium.SignSeed{Bytes: append([]byte(nil), seed...)})
	sig := sodium.Bytes(message).SignDetached(kp.SecretKey)
	return sig, nil
}

func (sodiumSigner) Verify(publicKey, message, sig []byte) bool {
	if len(publicKey) != PublicKeySize || len(sig) != SignatureSize {
		return false
	}
	pub := sodium.SignPublicKey{Bytes: append([]byte(nil), publicKey...)}
	err := sodium.Bytes(message).SignVerifyDetached(sodium.Signature(sig), pub)
	return err == nil
}

func (sodiumSigner) PublicFromSeed(seed []byte) ([]byte, error) {
	if len(seed) != SeedSize {
		return nil, errs.New(errs.ErrInvalidSeed, "seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	kp := sodium.SeedSignKP(sodium.SignSeed{Bytes: append([]byte(nil), seed...)})
	return kp.PublicKey.Bytes, nil
}

func (sodiumSigner) GenerateSeed() ([]byte, error) {
	kp := sodium.MakeSignKP()
	seed := kp.SecretKey.Seed()
	return seed.Bytes, nil
}
