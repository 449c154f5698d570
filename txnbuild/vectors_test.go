package txnbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EXCCoin/stellarbase/keypair"
	"github.com/EXCCoin/stellarbase/network"
)

const (
	vectorSourceSeed = "SBPQUZ6G4FZNWFHKUWC5BEYWF6R52E3SEP7R3GWYSM2XTKGF5LNTWW4R"
	vectorDestAddr   = "GAS4V4O2B7DW5T7IQRPEEVCRXMDZESKISR7DVIGKZQYYV3OSQ5SH5LVP"
	vectorSequence   = 3556091187167235
)

// TestCreateAccountTransactionVector pins a signed create-account
// envelope against a known-good wire form.
func TestCreateAccountTransactionVector(t *testing.T) {
	src, err := keypair.Parse(vectorSourceSeed)
	require.NoError(t, err)

	account := NewSimpleAccount(src.Address(), vectorSequence-1)
	tx, err := NewTransaction(TransactionParams{
		SourceAccount:        &account,
		BaseFee:              MinBaseFee,
		IncrementSequenceNum: true,
		Operations: []Operation{
			&CreateAccount{Destination: vectorDestAddr, Amount: "12.30"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(vectorSequence), tx.SequenceNumber())

	signed, err := tx.Sign(network.TestNetworkPassphrase, src)
	require.NoError(t, err)

	b64, err := signed.Base64()
	require.NoError(t, err)
	assert.Equal(t, "AAAAAgAAAADg3G3hclysZlFitS+s5zWyiiJD5B0STWy5LXCj6i5yxQAAAGQADKI/AAAAAwAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAACXK8doPx27P6IReQlRRuweSSUiUfjqgyswxiu3Sh2R+AAAAAAdU1MAAAAAAAAAAAeoucsUAAABA0LiVS5BXQiPx/ZkMiJ55RngpeurtEgOrqbzAy99ZGnLUh68uiBejtKJdJPlw4XmVP/kojrA6nLI00zXhUiI7AQ==", b64)

	generic, err := TransactionFromXDR(b64)
	require.NoError(t, err)
	require.NotNil(t, generic.Transaction)
	assert.Nil(t, generic.FeeBump)
}

// TestInflationTransactionVector pins a signed inflation-only envelope
// built from the same source and sequence as the create-account
// vector.
func TestInflationTransactionVector(t *testing.T) {
	src, err := keypair.Parse(vectorSourceSeed)
	require.NoError(t, err)

	account := NewSimpleAccount(src.Address(), vectorSequence-1)
	tx, err := NewTransaction(TransactionParams{
		SourceAccount:        &account,
		BaseFee:              MinBaseFee,
		IncrementSequenceNum: true,
		Operations:           []Operation{&Inflation{}},
	})
	require.NoError(t, err)

	signed, err := tx.Sign(network.TestNetworkPassphrase, src)
	require.NoError(t, err)

	b64, err := signed.Base64()
	require.NoError(t, err)
	assert.Equal(t, "AAAAAgAAAADg3G3hclysZlFitS+s5zWyiiJD5B0STWy5LXCj6i5yxQAAAGQADKI/AAAAAwAAAAAAAAAAAAAAAQAAAAAAAAAJAAAAAAAAAAHqLnLFAAAAQCvHHPKuTRaRXk9BH05oWii0PJRmVOoqMxxg+79MLO90n1ljVNoaQ1Fliy8Xe34yfUzjhMB/TCXH29T8dTYtBg4=", b64)
}
