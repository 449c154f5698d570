package network

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EXCCoin/stellarbase/xdr"
)

func TestIDMatchesSHA256OfPassphrase(t *testing.T) {
	want := xdr.Hash(sha256.Sum256([]byte(TestNetworkPassphrase)))
	assert.Equal(t, want, ID(TestNetworkPassphrase))
}

func TestIDDiffersAcrossNetworks(t *testing.T) {
	assert.NotEqual(t, ID(PublicNetworkPassphrase), ID(TestNetworkPassphrase))
}
