package txnbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EXCCoin/stellarbase/network"
)

func buildSignedTransaction(t *testing.T) *Transaction {
	t.Helper()
	src := mustKeyPair(t)
	dst := mustKeyPair(t)
	acc := NewSimpleAccount(src.Address(), 1)
	tx, err := NewTransaction(TransactionParams{
		SourceAccount:        &acc,
		BaseFee:              MinBaseFee,
		IncrementSequenceNum: true,
		Operations: []Operation{
			&Payment{Destination: dst.Address(), Asset: NativeAsset{}, Amount: "10"},
		},
	})
	require.NoError(t, err)
	signed, err := tx.Sign(network.TestNetworkPassphrase, src)
	require.NoError(t, err)
	return signed
}

func TestNewFeeBumpTransaction(t *testing.T) {
	inner := buildSignedTransaction(t)
	feeAccount := mustKeyPair(t)

	fb, err := NewFeeBumpTransaction(FeeBumpTransactionParams{
		Inner:      inner,
		FeeAccount: feeAccount.Address(),
		BaseFee:    MinBaseFee * 2,
	})
	require.NoError(t, err)
	assert.Equal(t, MinBaseFee*2, fb.BaseFee())
	assert.Equal(t, MinBaseFee*2*2, fb.MaxFee())

	gotFeeAccount, err := fb.FeeAccount()
	require.NoError(t, err)
	assert.Equal(t, feeAccount.Address(), gotFeeAccount)
}

func TestFeeBumpTransactionSignAndVerify(t *testing.T) {
	inner := buildSignedTransaction(t)
	feeAccount := mustKeyPair(t)

	fb, err := NewFeeBumpTransaction(FeeBumpTransactionParams{
		Inner:      inner,
		FeeAccount: feeAccount.Address(),
		BaseFee:    MinBaseFee * 2,
	})
	require.NoError(t, err)

	signed, err := fb.Sign(network.TestNetworkPassphrase, feeAccount)
	require.NoError(t, err)
	require.Len(t, signed.Signatures(), 1)

	h, err := signed.Hash(network.TestNetworkPassphrase)
	require.NoError(t, err)
	sig := signed.Signatures()[0]
	assert.True(t, feeAccount.Verify(h[:], sig.Signature))
}

func TestFeeBumpTransactionRejectsLowFee(t *testing.T) {
	inner := buildSignedTransaction(t)
	feeAccount := mustKeyPair(t)

	_, err := NewFeeBumpTransaction(FeeBumpTransactionParams{
		Inner:      inner,
		FeeAccount: feeAccount.Address(),
		BaseFee:    inner.BaseFee(),
	})
	require.Error(t, err)
}

func TestFeeBumpTransactionInnerTransaction(t *testing.T) {
	inner := buildSignedTransaction(t)
	feeAccount := mustKeyPair(t)

	fb, err := NewFeeBumpTransaction(FeeBumpTransactionParams{
		Inner:      inner,
		FeeAccount: feeAccount.Address(),
		BaseFee:    MinBaseFee * 2,
	})
	require.NoError(t, err)

	innerSrc, err := fb.InnerTransaction().SourceAccount()
	require.NoError(t, err)
	wantSrc, err := inner.SourceAccount()
	require.NoError(t, err)
	assert.Equal(t, wantSrc, innerSrc)
}
