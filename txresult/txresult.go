// Package txresult decodes the network's TransactionResult into
// shallow, caller-friendly accessors, without re-exposing the full
// ledger-internal result shape xdr.TransactionResult carries.
package txresult

import (
	"github.com/EXCCoin/stellarbase/errs"
	"github.com/EXCCoin/stellarbase/xdr"
)

// Result wraps a decoded xdr.TransactionResult.
type Result struct {
	raw xdr.TransactionResult
}

// FromXDR wraps an already-decoded xdr.TransactionResult.
func FromXDR(raw xdr.TransactionResult) Result { return Result{raw: raw} }

// FromBase64 decodes a base64 TransactionResult, as returned by the
// indexer's transaction-submission and lookup endpoints.
func FromBase64(b64 string) (Result, error) {
	var raw xdr.TransactionResult
	if err := xdr.UnmarshalBase64(b64, &raw); err != nil {
		return Result{}, err
	}
	return Result{raw: raw}, nil
}

// Successful reports whether the transaction applied successfully.
func (r Result) Successful() bool { return r.raw.Code.Successful() }

// Code returns the raw transaction result code.
func (r Result) Code() xdr.TransactionResultCode { return r.raw.Code }

// FeeCharged returns the fee actually charged, in stroops. For a
// failed fee-bump whose inner transaction also failed, this is the
// fee charged against the fee-bump source, not the inner source.
func (r Result) FeeCharged() int64 { return int64(r.raw.FeeCharged) }

// OperationResults returns the per-operation results, present only
// when Code is TxSUCCESS or TxFAILED.
func (r Result) OperationResults() ([]xdr.OperationResult, error) {
	switch r.raw.Code {
	case xdr.TxSUCCESS, xdr.TxFAILED:
		return r.raw.Results, nil
	default:
		return nil, errs.New(errs.ErrInvalidOperation, "no per-operation results for transaction code %s", r.raw.Code)
	}
}

// InnerResult returns the inner transaction's result when this Result
// describes a fee-bump transaction (code TxFEE_BUMP_INNER_SUCCESS or
// TxFEE_BUMP_INNER_FAILED).
func (r Result) InnerResult() (*xdr.InnerTransactionResult, error) {
	if r.raw.Code != xdr.TxFEE_BUMP_INNER_SUCCESS && r.raw.Code != xdr.TxFEE_BUMP_INNER_FAILED {
		return nil, errs.New(errs.ErrInvalidOperation, "not a fee-bump transaction result")
	}
	if r.raw.InnerPair == nil {
		return nil, errs.New(errs.ErrInvalidXDR, "fee-bump result missing its inner pair")
	}
	return &r.raw.InnerPair.Result, nil
}

// OperationResult is the shallow view over one xdr.OperationResult:
// whether it applied, and its specific result payload when the
// operation kind carries one richer than a bare success/failure code.
type OperationResult struct {
	raw xdr.OperationResult
}

// WrapOperationResult builds an OperationResult view.
func WrapOperationResult(raw xdr.OperationResult) OperationResult { return OperationResult{raw: raw} }

// Successful reports whether this operation applied (code OpINNER and
// its inner result succeeded).
func (o OperationResult) Successful() bool {
	if o.raw.Code != xdr.OpINNER || o.raw.Tr == nil {
		return false
	}
	return innerOpSucceeded(*o.raw.Tr)
}

// Code returns the outer operation result code (OpINNER on success,
// or one of the pre-apply rejection codes on failure).
func (o OperationResult) Code() xdr.OperationResultCode { return o.raw.Code }

func innerOpSucceeded(tr xdr.OperationResultTr) bool {
	switch {
	case tr.CreateAccount != nil:
		return tr.CreateAccount.Code == 0
	case tr.Payment != nil:
		return tr.Payment.Code == 0
	case tr.PathPaymentStrictReceive != nil:
		return tr.PathPaymentStrictReceive.Code == 0
	case tr.PathPaymentStrictSend != nil:
		return tr.PathPaymentStrictSend.Code == 0
	case tr.ManageSellOffer != nil:
		return tr.ManageSellOffer.Code == 0
	case tr.ManageBuyOffer != nil:
		return tr.ManageBuyOffer.Code == 0
	case tr.CreatePassiveSellOffer != nil:
		return tr.CreatePassiveSellOffer.Code == 0
	case tr.AccountMerge != nil:
		return tr.AccountMerge.Code == 0
	case tr.CreateClaimableBalance != nil:
		return tr.CreateClaimableBalance.Code == 0
	case tr.InvokeHostFunction != nil:
		return tr.InvokeHostFunction.Code == 0
	case tr.SetOptions != nil:
		return tr.SetOptions.Code == 0
	case tr.ChangeTrust != nil:
		return tr.ChangeTrust.Code == 0
	case tr.AllowTrust != nil:
		return tr.AllowTrust.Code == 0
	case tr.Inflation != nil:
		return tr.Inflation.Code == 0
	case tr.ManageData != nil:
		return tr.ManageData.Code == 0
	case tr.BumpSequence != nil:
		return tr.BumpSequence.Code == 0
	case tr.ClaimClaimableBalance != nil:
		return tr.ClaimClaimableBalance.Code == 0
	case tr.BeginSponsoringFutureReserves != nil:
		return tr.BeginSponsoringFutureReserves.Code == 0
	case tr.EndSponsoringFutureReserves != nil:
		return tr.EndSponsoringFutureReserves.Code == 0
	case tr.RevokeSponsorship != nil:
		return tr.RevokeSponsorship.Code == 0
	case tr.Clawback != nil:
		return tr.Clawback.Code == 0
	case tr.ClawbackClaimableBalance != nil:
		return tr.ClawbackClaimableBalance.Code == 0
	case tr.SetTrustLineFlags != nil:
		return tr.SetTrustLineFlags.Code == 0
	case tr.LiquidityPoolDeposit != nil:
		return tr.LiquidityPoolDeposit.Code == 0
	case tr.LiquidityPoolWithdraw != nil:
		return tr.LiquidityPoolWithdraw.Code == 0
	case tr.ExtendFootprintTtl != nil:
		return tr.ExtendFootprintTtl.Code == 0
	case tr.RestoreFootprint != nil:
		return tr.RestoreFootprint.Code == 0
	default:
		return true
	}
}
