// Package network holds the well-known network passphrases and turns
// a passphrase into the network id (a SHA-256 hash) that seeds every
// transaction signature payload.
package network

import (
	"crypto/sha256"

	"github.com/EXCCoin/stellarbase/xdr"
)

// The two well-known passphrases published for the public and test
// networks. A private network uses its own passphrase, agreed out of
// band.
const (
	PublicNetworkPassphrase = "Public Global Stellar Network ; September 2015"
	TestNetworkPassphrase   = "Test SDF Network ; September 2015"
)

// ID returns the network id (SHA-256 of the passphrase) used to tag
// every transaction signature payload on this network.
func ID(passphrase string) xdr.Hash {
	return sha256.Sum256([]byte(passphrase))
}
