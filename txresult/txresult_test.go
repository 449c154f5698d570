package txresult

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EXCCoin/stellarbase/xdr"
)

func TestSuccessfulResult(t *testing.T) {
	raw := xdr.TransactionResult{
		FeeCharged: 100,
		Code:       xdr.TxSUCCESS,
		Results: []xdr.OperationResult{
			{Code: xdr.OpINNER, Tr: &xdr.OperationResultTr{
				Type:    xdr.OpInflation,
				Inflation: &xdr.SimpleOpResult{Code: 0},
			}},
		},
	}
	r := FromXDR(raw)
	assert.True(t, r.Successful())
	assert.Equal(t, xdr.TxSUCCESS, r.Code())
	assert.Equal(t, int64(100), r.FeeCharged())

	ops, err := r.OperationResults()
	require.NoError(t, err)
	require.Len(t, ops, 1)

	op := WrapOperationResult(ops[0])
	assert.True(t, op.Successful())
	assert.Equal(t, xdr.OpINNER, op.Code())
}

func TestFailedOperationIsNotSuccessful(t *testing.T) {
	raw := xdr.OperationResult{
		Code: xdr.OpINNER,
		Tr: &xdr.OperationResultTr{
			Type:    xdr.OpInflation,
			Inflation: &xdr.SimpleOpResult{Code: -1},
		},
	}
	op := WrapOperationResult(raw)
	assert.False(t, op.Successful())
}

func TestOuterRejectionIsNotSuccessful(t *testing.T) {
	raw := xdr.OperationResult{Code: xdr.OpBAD_AUTH}
	op := WrapOperationResult(raw)
	assert.False(t, op.Successful())
}

func TestOperationResultsOnlyValidForSuccessOrFailed(t *testing.T) {
	r := FromXDR(xdr.TransactionResult{Code: xdr.TxTOO_EARLY})
	_, err := r.OperationResults()
	require.Error(t, err)
}

func TestInnerResultRequiresAFeeBumpCode(t *testing.T) {
	r := FromXDR(xdr.TransactionResult{Code: xdr.TxSUCCESS})
	_, err := r.InnerResult()
	require.Error(t, err)
}

func TestInnerResultReturnsInnerPair(t *testing.T) {
	inner := xdr.InnerTransactionResult{
		FeeCharged: 200,
		Result:     xdr.InnerTransactionResultResult{Code: xdr.TxFAILED},
	}
	raw := xdr.TransactionResult{
		Code: xdr.TxFEE_BUMP_INNER_FAILED,
		InnerPair: &xdr.InnerTransactionResultPair{
			Result: inner,
		},
	}
	r := FromXDR(raw)
	got, err := r.InnerResult()
	require.NoError(t, err)
	assert.Equal(t, xdr.Int64(200), got.FeeCharged)
}

func TestFeeBumpInnerSuccessIsSuccessfulAndExposesInnerResult(t *testing.T) {
	inner := xdr.InnerTransactionResult{
		FeeCharged: 2000,
		Result:     xdr.InnerTransactionResultResult{Code: xdr.TxSUCCESS},
	}
	raw := xdr.TransactionResult{
		FeeCharged: 1000,
		Code:       xdr.TxFEE_BUMP_INNER_SUCCESS,
		InnerPair: &xdr.InnerTransactionResultPair{
			Result: inner,
		},
	}
	r := FromXDR(raw)
	assert.True(t, r.Successful())

	got, err := r.InnerResult()
	require.NoError(t, err)
	assert.Equal(t, xdr.Int64(2000), got.FeeCharged)
	assert.Equal(t, xdr.TxSUCCESS, got.Result.Code)
}

func TestFromBase64RoundTrip(t *testing.T) {
	raw := xdr.TransactionResult{FeeCharged: 100, Code: xdr.TxSUCCESS}
	b64, err := xdr.MarshalBase64(raw)
	require.NoError(t, err)

	r, err := FromBase64(b64)
	require.NoError(t, err)
	assert.Equal(t, xdr.TxSUCCESS, r.Code())
}

func TestVoidBodiedOperationSucceedsByItsOwnSimpleResult(t *testing.T) {
	raw := xdr.OperationResult{
		Code: xdr.OpINNER,
		Tr: &xdr.OperationResultTr{
			Type:                        xdr.OpEndSponsoringFutureReserves,
			EndSponsoringFutureReserves: &xdr.SimpleOpResult{Code: 0},
		},
	}
	op := WrapOperationResult(raw)
	assert.True(t, op.Successful())
}
