package txnbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EXCCoin/stellarbase/keypair"
	"github.com/EXCCoin/stellarbase/network"
)

func mustKeyPair(t *testing.T) *keypair.KeyPair {
	t.Helper()
	kp, err := keypair.Random()
	require.NoError(t, err)
	return kp
}

func TestNewTransactionRejectsNoOperations(t *testing.T) {
	src := mustKeyPair(t)
	acc := NewSimpleAccount(src.Address(), 1)
	_, err := NewTransaction(TransactionParams{
		SourceAccount: &acc,
		BaseFee:       MinBaseFee,
	})
	require.Error(t, err)
}

func TestNewTransactionRejectsLowFee(t *testing.T) {
	src := mustKeyPair(t)
	dst := mustKeyPair(t)
	acc := NewSimpleAccount(src.Address(), 1)
	_, err := NewTransaction(TransactionParams{
		SourceAccount: &acc,
		BaseFee:       MinBaseFee - 1,
		Operations:    []Operation{&Inflation{}},
	})
	_ = dst
	require.Error(t, err)
}

func TestNewTransactionRejectsTooManyOperations(t *testing.T) {
	src := mustKeyPair(t)
	acc := NewSimpleAccount(src.Address(), 1)
	ops := make([]Operation, maxOperationsPerTransaction+1)
	for i := range ops {
		ops[i] = &Inflation{}
	}
	_, err := NewTransaction(TransactionParams{
		SourceAccount: &acc,
		BaseFee:       MinBaseFee,
		Operations:    ops,
	})
	require.Error(t, err)
}

func TestNewTransactionIncrementsSequence(t *testing.T) {
	src := mustKeyPair(t)
	acc := NewSimpleAccount(src.Address(), 41)
	tx, err := NewTransaction(TransactionParams{
		SourceAccount:        &acc,
		BaseFee:              MinBaseFee,
		Operations:           []Operation{&Inflation{}},
		IncrementSequenceNum: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), tx.SequenceNumber())
	assert.Equal(t, int64(42), acc.Sequence)
}

func TestTransactionSignAndVerify(t *testing.T) {
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
	require.Len(t, signed.Signatures(), 1)

	h, err := signed.Hash(network.TestNetworkPassphrase)
	require.NoError(t, err)
	sig := signed.Signatures()[0]
	assert.True(t, src.Verify(h[:], sig.Signature))
	assert.Equal(t, src.Hint(), [4]byte(sig.Hint))
}

func TestTransactionBase64RoundTrip(t *testing.T) {
	src := mustKeyPair(t)
	dst := mustKeyPair(t)
	acc := NewSimpleAccount(src.Address(), 1)

	tx, err := NewTransaction(TransactionParams{
		SourceAccount:        &acc,
		BaseFee:              MinBaseFee,
		IncrementSequenceNum: true,
		Memo:                 MemoText("hi"),
		Operations: []Operation{
			&Payment{Destination: dst.Address(), Asset: NativeAsset{}, Amount: "10"},
		},
	})
	require.NoError(t, err)
	signed, err := tx.Sign(network.TestNetworkPassphrase, src)
	require.NoError(t, err)

	b64, err := signed.Base64()
	require.NoError(t, err)

	generic, err := TransactionFromXDR(b64)
	require.NoError(t, err)
	require.NotNil(t, generic.Transaction)
	require.Nil(t, generic.FeeBump)

	gotSrc, err := generic.Transaction.SourceAccount()
	require.NoError(t, err)
	assert.Equal(t, src.Address(), gotSrc)

	gotMemo, err := generic.Transaction.Memo()
	require.NoError(t, err)
	assert.Equal(t, MemoText("hi"), gotMemo)

	ops, err := generic.Transaction.Operations()
	require.NoError(t, err)
	require.Len(t, ops, 1)
}

func TestTransactionBaseFeeAndMaxFee(t *testing.T) {
	src := mustKeyPair(t)
	acc := NewSimpleAccount(src.Address(), 1)
	tx, err := NewTransaction(TransactionParams{
		SourceAccount: &acc,
		BaseFee:       200,
		Operations:    []Operation{&Inflation{}, &Inflation{}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(200), tx.BaseFee())
	assert.Equal(t, int64(400), tx.MaxFee())
}
