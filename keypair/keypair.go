// Package keypair is the user-facing key type: construction from a
// strkey address or seed, signing, and verification, built on top of
// crypto.Default and strkey.
package keypair

import (
	"github.com/EXCCoin/stellarbase/crypto"
	"github.com/EXCCoin/stellarbase/errs"
	"github.com/EXCCoin/stellarbase/strkey"
)

// KeyPair is a public key optionally paired with the seed that
// derives it. A KeyPair built From an address alone can verify but
// not sign.
type KeyPair struct {
	publicKey [32]byte
	seed      *[32]byte
}

// Random generates a fresh KeyPair from new random key material.
func Random() (*KeyPair, error) {
	seed, err := crypto.Default.GenerateSeed()
	if err != nil {
		return nil, err
	}
	return FromRawSeed(seed)
}

// FromRawSeed builds a KeyPair able to sign, from a raw 32-byte seed.
func FromRawSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != 32 {
		return nil, errs.New(errs.ErrInvalidSeed, "seed must be 32 bytes, got %d", len(seed))
	}
	pub, err := crypto.Default.PublicFromSeed(seed)
	if err != nil {
		return nil, err
	}
	kp := &KeyPair{}
	copy(kp.publicKey[:], pub)
	var s [32]byte
	copy(s[:], seed)
	kp.seed = &s
	return kp, nil
}

// Parse builds a KeyPair from either an 'S...' secret seed or a
// 'G...' public address. Addresses yield a verify-only KeyPair.
func Parse(s string) (*KeyPair, error) {
	v, payload, err := strkey.Decode(s)
	if err != nil {
		return nil, err
	}
	switch v {
	case strkey.VersionByteSeed:
		return FromRawSeed(payload)
	case strkey.VersionByteAccountID:
		if len(payload) != 32 {
			return nil, errs.New(errs.ErrInvalidPublicKey, "account id payload must be 32 bytes, got %d", len(payload))
		}
		kp := &KeyPair{}
		copy(kp.publicKey[:], payload)
		return kp, nil
	default:
		return nil, errs.New(errs.ErrInvalidStrKey, "not a seed or account id: version byte %d", v)
	}
}

// FromRawPublicKey builds a verify-only KeyPair from a raw 32-byte
// ed25519 public key.
func FromRawPublicKey(pub []byte) (*KeyPair, error) {
	if len(pub) != 32 {
		return nil, errs.New(errs.ErrInvalidPublicKey, "public key must be 32 bytes, got %d", len(pub))
	}
	kp := &KeyPair{}
	copy(kp.publicKey[:], pub)
	return kp, nil
}

// Address returns the 'G...' strkey address of the public key.
func (k *KeyPair) Address() string {
	addr, err := strkey.EncodeAccountID(k.publicKey[:])
	if err != nil {
		// publicKey is always exactly 32 bytes by construction.
		panic(err)
	}
	return addr
}

// Seed returns the 'S...' strkey seed, or an error if this KeyPair
// was built from an address alone.
func (k *KeyPair) Seed() (string, error) {
	if k.seed == nil {
		return "", errs.New(errs.ErrInvalidSeed, "keypair has no seed (built from an address)")
	}
	return strkey.EncodeSeed(k.seed[:])
}

// CanSign reports whether this KeyPair has seed material.
func (k *KeyPair) CanSign() bool { return k.seed != nil }

// PublicKey returns the raw 32-byte ed25519 public key.
func (k *KeyPair) PublicKey() []byte {
	out := make([]byte, 32)
	copy(out, k.publicKey[:])
	return out
}

// Hint returns the last 4 bytes of the public key, used to route a
// DecoratedSignature to the signer that produced it.
func (k *KeyPair) Hint() [4]byte {
	var h [4]byte
	copy(h[:], k.publicKey[28:32])
	return h
}

// Sign returns the ed25519 signature of data, or an error if this
// KeyPair cannot sign.
func (k *KeyPair) Sign(data []byte) ([]byte, error) {
	if k.seed == nil {
		return nil, errs.New(errs.ErrInvalidSeed, "keypair has no seed (built from an address), cannot sign")
	}
	return crypto.Default.Sign(k.seed[:], data)
}

// Verify reports whether sig is a valid signature of data under this
// KeyPair's public key.
func (k *KeyPair) Verify(data, sig []byte) bool {
	return crypto.Default.Verify(k.publicKey[:], data, sig)
}

// Equal reports whether two KeyPairs share the same public key.
func (k *KeyPair) Equal(other *KeyPair) bool {
	if other == nil {
		return false
	}
	return k.publicKey == other.publicKey
}
