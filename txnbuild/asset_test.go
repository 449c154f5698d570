package txnbuild

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EXCCoin/stellarbase/keypair"
	"github.com/EXCCoin/stellarbase/xdr"
)

func TestNativeAssetXDR(t *testing.T) {
	x, err := NativeAsset{}.ToXDR()
	require.NoError(t, err)
	assert.Equal(t, xdr.AssetTypeNative, x.Type)

	got, err := assetFromXDR(x)
	require.NoError(t, err)
	assert.Equal(t, NativeAsset{}, got)
	assert.True(t, got.IsNative())
}

func TestCreditAssetAlphanum4RoundTrip(t *testing.T) {
	issuer := mustKeyPair(t)
	a := CreditAsset{Code: "USD", Issuer: issuer.Address()}
	x, err := a.ToXDR()
	require.NoError(t, err)
	assert.Equal(t, xdr.AssetTypeCreditAlphanum4, x.Type)

	got, err := assetFromXDR(x)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestCreditAssetAlphanum12RoundTrip(t *testing.T) {
	issuer := mustKeyPair(t)
	a := CreditAsset{Code: "LONGERCODE12", Issuer: issuer.Address()}
	x, err := a.ToXDR()
	require.NoError(t, err)
	assert.Equal(t, xdr.AssetTypeCreditAlphanum12, x.Type)

	got, err := assetFromXDR(x)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestCreditAssetRejectsEmptyCode(t *testing.T) {
	issuer := mustKeyPair(t)
	_, err := CreditAsset{Code: "", Issuer: issuer.Address()}.ToXDR()
	require.Error(t, err)
}

func TestCreditAssetRejectsOverlongCode(t *testing.T) {
	issuer := mustKeyPair(t)
	_, err := CreditAsset{Code: strings.Repeat("a", 13), Issuer: issuer.Address()}.ToXDR()
	require.Error(t, err)
}

func TestCreditAssetRejectsInvalidIssuer(t *testing.T) {
	_, err := CreditAsset{Code: "USD", Issuer: "not-an-address"}.ToXDR()
	require.Error(t, err)
}
