package xdr

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemoIDVectorRoundTrip pins the wire form of a maximal memo id.
func TestMemoIDVectorRoundTrip(t *testing.T) {
	id := Uint64(18446744073709551615)
	m := Memo{Type: MemoTypeId, Id: &id}

	b64, err := MarshalBase64(m)
	require.NoError(t, err)
	assert.Equal(t, "AAAAAv//////////", b64)

	var got Memo
	require.NoError(t, UnmarshalBase64(b64, &got))
	require.NotNil(t, got.Id)
	assert.Equal(t, id, *got.Id)
}

// TestSignerKeyHashXVector pins the hash-X SignerKey arm's wire form
// against a known preimage.
func TestSignerKeyHashXVector(t *testing.T) {
	hash := sha256.Sum256([]byte("hello"))

	hashB64, err := MarshalBase64(Hash(hash))
	require.NoError(t, err)
	assert.Equal(t, "LPJNul+wow4m6DsqxbninhsWHlwfp0JecwQzYpOLmCQ=", hashB64)

	h := Hash(hash)
	key := SignerKey{Type: SignerKeyTypeHashX, HashX: &h}
	keyB64, err := MarshalBase64(key)
	require.NoError(t, err)
	assert.Equal(t, "AAAAAizyTbpfsKMOJug7KsW54p4bFh5cH6dCXnMEM2KTi5gk", keyB64)

	var got SignerKey
	require.NoError(t, UnmarshalBase64(keyB64, &got))
	assert.Equal(t, SignerKeyTypeHashX, got.Type)
	require.NotNil(t, got.HashX)
	assert.Equal(t, h, *got.HashX)
}

// TestTransactionResultTaxonomyVectors pins three transaction results
// that share the same leading layout (fee charged, then result code)
// but diverge in what follows: a bad-auth operation rejection, an
// outright too-late rejection, and a successful fee bump whose inner
// transaction also succeeded.
func TestTransactionResultTaxonomyVectors(t *testing.T) {
	t.Run("single operation result with bad auth outer code", func(t *testing.T) {
		var r TransactionResult
		require.NoError(t, UnmarshalBase64("AAAAAACYloD/////AAAAAf////8AAAAA", &r))
		assert.Equal(t, TxFAILED, r.Code)
		require.Len(t, r.Results, 1)
		assert.Equal(t, OpBAD_AUTH, r.Results[0].Code)
	})

	t.Run("transaction too late", func(t *testing.T) {
		var r TransactionResult
		require.NoError(t, UnmarshalBase64("AAAAAAAPQkD////9AAAAAA==", &r))
		assert.Equal(t, TxTOO_LATE, r.Code)
	})

	t.Run("fee bump success with successful inner result", func(t *testing.T) {
		var r TransactionResult
		require.NoError(t, UnmarshalBase64("AAAAAAAAA+gAAAABAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAH0AAAAAAAAAAAAAAAAAAAAAA=", &r))
		assert.Equal(t, TxFEE_BUMP_INNER_SUCCESS, r.Code)
		assert.True(t, r.Code.Successful())
		require.NotNil(t, r.InnerPair)
		assert.Equal(t, TxSUCCESS, r.InnerPair.Result.Result.Code)
		assert.Equal(t, Int64(2000), r.InnerPair.Result.FeeCharged)
	})
}

// TestTimeBoundsVectors pins the always-valid (zero) TimeBounds and a
// concrete [min, max] window.
func TestTimeBoundsVectors(t *testing.T) {
	t.Run("always valid", func(t *testing.T) {
		b64, err := MarshalBase64(TimeBounds{})
		require.NoError(t, err)
		assert.Equal(t, "AAAAAAAAAAAAAAAAAAAAAA==", b64)
	})

	t.Run("concrete window", func(t *testing.T) {
		tb := TimeBounds{MinTime: 1594305881, MaxTime: 1594305941}
		b64, err := MarshalBase64(tb)
		require.NoError(t, err)
		assert.Equal(t, "AAAAAF8HLVkAAAAAXwctlQ==", b64)

		var got TimeBounds
		require.NoError(t, UnmarshalBase64(b64, &got))
		assert.Equal(t, tb, got)
	})
}
