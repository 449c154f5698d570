package txnbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EXCCoin/stellarbase/amount"
	"github.com/EXCCoin/stellarbase/xdr"
)

func TestCreateAccountXDR(t *testing.T) {
	dest := mustKeyPair(t)
	op := &CreateAccount{Destination: dest.Address(), Amount: "100"}
	body, err := op.BuildXDR()
	require.NoError(t, err)
	require.Equal(t, xdr.OpCreateAccount, body.Type)
	stroops, err := amount.Parse("100")
	require.NoError(t, err)
	assert.Equal(t, xdr.Int64(stroops), body.CreateAccount.StartingBalance)
}

func TestPaymentRoundTripsThroughOperationFromXDR(t *testing.T) {
	src := mustKeyPair(t)
	dest := mustKeyPair(t)
	op := &Payment{Destination: dest.Address(), Asset: NativeAsset{}, Amount: "42.5", SourceAccount: src.Address()}

	xdrOp, err := operationFromBuilder(op)
	require.NoError(t, err)
	require.NotNil(t, xdrOp.SourceAccount)

	got, err := operationFromXDR(xdrOp)
	require.NoError(t, err)
	payment, ok := got.(*Payment)
	require.True(t, ok)
	assert.Equal(t, dest.Address(), payment.Destination)
	assert.Equal(t, "42.5", payment.Amount)
	assert.Equal(t, src.Address(), payment.GetSourceAccount())
}

func TestManageSellOfferXDR(t *testing.T) {
	op := &ManageSellOffer{
		Selling: NativeAsset{},
		Buying:  CreditAsset{Code: "USD", Issuer: mustKeyPair(t).Address()},
		Amount:  "10",
		Price:   amount.Price{N: 1, D: 2},
		OfferID: 5,
	}
	body, err := op.BuildXDR()
	require.NoError(t, err)
	assert.Equal(t, xdr.Int64(5), body.ManageSellOffer.OfferId)
	assert.Equal(t, xdr.Int32(1), body.ManageSellOffer.Price.N)
	assert.Equal(t, xdr.Int32(2), body.ManageSellOffer.Price.D)
}

func TestChangeTrustDefaultsToMaxLimit(t *testing.T) {
	op := &ChangeTrust{Line: CreditAsset{Code: "USD", Issuer: mustKeyPair(t).Address()}}
	body, err := op.BuildXDR()
	require.NoError(t, err)
	assert.Equal(t, xdr.Int64(amount.MaxStroops), body.ChangeTrust.Limit)
}

func TestManageDataRejectsOverlongName(t *testing.T) {
	op := &ManageData{Name: string(make([]byte, 65))}
	_, err := op.BuildXDR()
	require.Error(t, err)
}

func TestBumpSequenceXDR(t *testing.T) {
	op := &BumpSequence{BumpTo: 1000}
	body, err := op.BuildXDR()
	require.NoError(t, err)
	assert.Equal(t, xdr.SequenceNumber(1000), body.BumpSequence.BumpTo)
}

func TestInflationRoundTripsThroughOperationFromXDR(t *testing.T) {
	op := &Inflation{}
	xdrOp, err := operationFromBuilder(op)
	require.NoError(t, err)
	got, err := operationFromXDR(xdrOp)
	require.NoError(t, err)
	_, ok := got.(*Inflation)
	assert.True(t, ok)
}

func TestUnhandledOperationKindFallsBackToRawOperation(t *testing.T) {
	op := &SetOptions{}
	xdrOp, err := operationFromBuilder(op)
	require.NoError(t, err)

	got, err := operationFromXDR(xdrOp)
	require.NoError(t, err)
	raw, ok := got.(*RawOperation)
	require.True(t, ok)
	assert.Equal(t, xdr.OpSetOptions, raw.Type)

	reEncoded, err := raw.BuildXDR()
	require.NoError(t, err)
	assert.Equal(t, xdrOp.Body, reEncoded)
}

func TestBalanceIDHexRoundTrip(t *testing.T) {
	id, err := balanceIDFromHex("00000000aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	require.NoError(t, err)
	assert.Equal(t, xdr.ClaimableBalanceIdTypeV0, id.Type)
	assert.Equal(t, "00000000aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", balanceIDToHex(id))
}

func TestBalanceIDFromHexRejectsWrongLength(t *testing.T) {
	_, err := balanceIDFromHex("aabbcc")
	require.Error(t, err)
}

func TestClaimClaimableBalanceXDR(t *testing.T) {
	hexID := "00000000bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	op := &ClaimClaimableBalance{BalanceID: hexID}
	body, err := op.BuildXDR()
	require.NoError(t, err)
	assert.Equal(t, hexID, balanceIDToHex(body.ClaimClaimableBalance.BalanceId))
}

func TestCreateClaimableBalanceWithClaimants(t *testing.T) {
	claimant := mustKeyPair(t)
	op := &CreateClaimableBalance{
		Asset:  NativeAsset{},
		Amount: "5",
		Claimants: []Claimant{
			{Destination: claimant.Address()},
		},
	}
	body, err := op.BuildXDR()
	require.NoError(t, err)
	require.Len(t, body.CreateClaimableBalance.Claimants, 1)
	assert.Equal(t, xdr.ClaimPredicateUnconditional, body.CreateClaimableBalance.Claimants[0].V0.Predicate.Type)
}

func TestAccountMergeXDR(t *testing.T) {
	dest := mustKeyPair(t)
	op := &AccountMerge{Destination: dest.Address()}
	body, err := op.BuildXDR()
	require.NoError(t, err)
	require.NotNil(t, body.AccountMerge)
}
