package xdr

import "github.com/EXCCoin/stellarbase/errs"

// TransactionResultCode enumerates whether and how a transaction
// failed before any operation result is meaningful.
type TransactionResultCode int32

const (
	TxFEE_BUMP_INNER_SUCCESS TransactionResultCode = 1
	TxSUCCESS                TransactionResultCode = 0
	TxFAILED                 TransactionResultCode = -1
	TxTOO_EARLY              TransactionResultCode = -2
	TxTOO_LATE               TransactionResultCode = -3
	TxMISSING_OPERATION      TransactionResultCode = -4
	TxBAD_SEQ                TransactionResultCode = -5
	TxBAD_AUTH               TransactionResultCode = -6
	TxINSUFFICIENT_BALANCE   TransactionResultCode = -7
	TxNO_ACCOUNT             TransactionResultCode = -8
	TxINSUFFICIENT_FEE       TransactionResultCode = -9
	TxBAD_AUTH_EXTRA         TransactionResultCode = -10
	TxINTERNAL_ERROR         TransactionResultCode = -11
	TxNOT_SUPPORTED          TransactionResultCode = -12
	TxFEE_BUMP_INNER_FAILED  TransactionResultCode = -13
	TxBAD_SPONSORSHIP        TransactionResultCode = -14
	TxBAD_MIN_SEQ_AGE_OR_GAP TransactionResultCode = -15
	TxMALFORMED              TransactionResultCode = -16
	TxSOROBAN_INVALID        TransactionResultCode = -17
)

func (c TransactionResultCode) EncodeTo(e *Encoder) error { return e.EncodeInt(int32(c)) }

func (c *TransactionResultCode) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	*c = TransactionResultCode(v)
	return nil
}

// Successful reports whether this code indicates every operation in
// the transaction applied. A fee-bump transaction reports success as
// TxFEE_BUMP_INNER_SUCCESS, not TxSUCCESS, since its own outer code
// space is reserved for rejections of the fee-bump wrapper itself.
func (c TransactionResultCode) Successful() bool {
	return c == TxSUCCESS || c == TxFEE_BUMP_INNER_SUCCESS
}

// OperationResultCode enumerates whether an operation even reached
// its type-specific logic.
type OperationResultCode int32

const (
	OpINNER                OperationResultCode = 0
	OpBAD_AUTH             OperationResultCode = -1
	OpNO_ACCOUNT           OperationResultCode = -2
	OpNOT_SUPPORTED        OperationResultCode = -3
	OpTOO_MANY_SUBENTRIES  OperationResultCode = -4
	OpEXCEEDED_WORK_LIMIT  OperationResultCode = -5
	OpTOO_MANY_SPONSORING  OperationResultCode = -6
	OpBAD_SPONSORSHIP      OperationResultCode = -7
)

func (c OperationResultCode) EncodeTo(e *Encoder) error { return e.EncodeInt(int32(c)) }

func (c *OperationResultCode) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	*c = OperationResultCode(v)
	return nil
}

// ClaimAtom describes one matched offer consumed while filling a
// manage-offer or path-payment operation. The real protocol
// distinguishes orderbook offers, liquidity pool crossings and
// legacy v0 offers as three separate union arms; this module
// collapses them into one shape carrying the fields a client actually
// consumes, which is a deliberate simplification.
type ClaimAtom struct {
	SellerId     AccountId
	OfferId      Int64
	AssetSold    Asset
	AmountSold   Int64
	AssetBought  Asset
	AmountBought Int64
}

func (c ClaimAtom) EncodeTo(e *Encoder) error {
	if err := c.SellerId.EncodeTo(e); err != nil {
		return err
	}
	if err := c.OfferId.EncodeTo(e); err != nil {
		return err
	}
	if err := c.AssetSold.EncodeTo(e); err != nil {
		return err
	}
	if err := c.AmountSold.EncodeTo(e); err != nil {
		return err
	}
	if err := c.AssetBought.EncodeTo(e); err != nil {
		return err
	}
	return c.AmountBought.EncodeTo(e)
}

func (c *ClaimAtom) DecodeFrom(d *Decoder) error {
	if err := c.SellerId.DecodeFrom(d); err != nil {
		return err
	}
	if err := c.OfferId.DecodeFrom(d); err != nil {
		return err
	}
	if err := c.AssetSold.DecodeFrom(d); err != nil {
		return err
	}
	if err := c.AmountSold.DecodeFrom(d); err != nil {
		return err
	}
	if err := c.AssetBought.DecodeFrom(d); err != nil {
		return err
	}
	return c.AmountBought.DecodeFrom(d)
}

const maxClaimAtoms = 1000

func encodeClaimAtoms(e *Encoder, atoms []ClaimAtom) error {
	if uint32(len(atoms)) > maxClaimAtoms {
		return errs.New(errs.ErrInvalidXDR, "%d claim atoms exceeds bound %d", len(atoms), maxClaimAtoms)
	}
	if err := e.EncodeUint(uint32(len(atoms))); err != nil {
		return err
	}
	for _, a := range atoms {
		if err := a.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func decodeClaimAtoms(d *Decoder) ([]ClaimAtom, error) {
	n, err := d.DecodeArrayLen(maxClaimAtoms)
	if err != nil {
		return nil, err
	}
	atoms := make([]ClaimAtom, n)
	for i := range atoms {
		if err := atoms[i].DecodeFrom(d); err != nil {
			return nil, err
		}
	}
	return atoms, nil
}

// SimpleOpResult is the success/failure result of an operation whose
// only meaningful outcome is its sub-code (SetOptions, ChangeTrust,
// AllowTrust, Inflation, ManageData, BumpSequence, ClaimClaimableBalance,
// sponsorship operations, Clawback, SetTrustLineFlags, liquidity pool
// operations, ExtendFootprintTtl, RestoreFootprint).
type SimpleOpResult struct {
	Code int32
}

func (r SimpleOpResult) EncodeTo(e *Encoder) error { return e.EncodeInt(r.Code) }
func (r *SimpleOpResult) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	r.Code = v
	return err
}

// CreateAccountResult reports whether funding a new account succeeded.
type CreateAccountResult struct {
	Code int32
}

func (r CreateAccountResult) EncodeTo(e *Encoder) error { return e.EncodeInt(r.Code) }
func (r *CreateAccountResult) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	r.Code = v
	return err
}

// PaymentResult reports whether a payment succeeded.
type PaymentResult struct {
	Code int32
}

func (r PaymentResult) EncodeTo(e *Encoder) error { return e.EncodeInt(r.Code) }
func (r *PaymentResult) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	r.Code = v
	return err
}

// PathPaymentStrictReceiveResult reports the path actually taken and
// amount actually sent on success.
type PathPaymentStrictReceiveResult struct {
	Code   int32
	Offers []ClaimAtom
	Last   SimplePaymentResult
}

// SimplePaymentResult names the final leg of a path payment.
type SimplePaymentResult struct {
	Destination AccountId
	Asset       Asset
	Amount      Int64
}

func (s SimplePaymentResult) EncodeTo(e *Encoder) error {
	if err := s.Destination.EncodeTo(e); err != nil {
		return err
	}
	if err := s.Asset.EncodeTo(e); err != nil {
		return err
	}
	return s.Amount.EncodeTo(e)
}

func (s *SimplePaymentResult) DecodeFrom(d *Decoder) error {
	if err := s.Destination.DecodeFrom(d); err != nil {
		return err
	}
	if err := s.Asset.DecodeFrom(d); err != nil {
		return err
	}
	return s.Amount.DecodeFrom(d)
}

func (r PathPaymentStrictReceiveResult) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(r.Code); err != nil {
		return err
	}
	if r.Code != 0 {
		return nil
	}
	if err := encodeClaimAtoms(e, r.Offers); err != nil {
		return err
	}
	return r.Last.EncodeTo(e)
}

func (r *PathPaymentStrictReceiveResult) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	r.Code = v
	if r.Code != 0 {
		return nil
	}
	offers, err := decodeClaimAtoms(d)
	if err != nil {
		return err
	}
	r.Offers = offers
	return r.Last.DecodeFrom(d)
}

// PathPaymentStrictSendResult mirrors PathPaymentStrictReceiveResult.
type PathPaymentStrictSendResult struct {
	Code   int32
	Offers []ClaimAtom
	Last   SimplePaymentResult
}

func (r PathPaymentStrictSendResult) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(r.Code); err != nil {
		return err
	}
	if r.Code != 0 {
		return nil
	}
	if err := encodeClaimAtoms(e, r.Offers); err != nil {
		return err
	}
	return r.Last.EncodeTo(e)
}

func (r *PathPaymentStrictSendResult) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	r.Code = v
	if r.Code != 0 {
		return nil
	}
	offers, err := decodeClaimAtoms(d)
	if err != nil {
		return err
	}
	r.Offers = offers
	return r.Last.DecodeFrom(d)
}

// ManageOfferResult reports the offers crossed and, if one survives,
// the resulting resident offer id (0 if fully filled or deleted).
// Shared by ManageSellOffer, ManageBuyOffer and CreatePassiveSellOffer.
type ManageOfferResult struct {
	Code           int32
	OffersClaimed  []ClaimAtom
	ResultingOffer Int64
}

func (r ManageOfferResult) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(r.Code); err != nil {
		return err
	}
	if r.Code != 0 {
		return nil
	}
	if err := encodeClaimAtoms(e, r.OffersClaimed); err != nil {
		return err
	}
	return r.ResultingOffer.EncodeTo(e)
}

func (r *ManageOfferResult) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	r.Code = v
	if r.Code != 0 {
		return nil
	}
	claimed, err := decodeClaimAtoms(d)
	if err != nil {
		return err
	}
	r.OffersClaimed = claimed
	return r.ResultingOffer.DecodeFrom(d)
}

// AccountMergeResult reports the balance folded into the destination
// account on success.
type AccountMergeResult struct {
	Code            int32
	SourceAccountBalance *Int64
}

func (r AccountMergeResult) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(r.Code); err != nil {
		return err
	}
	if r.Code != 0 {
		return nil
	}
	if err := e.EncodeBool(r.SourceAccountBalance != nil); err != nil {
		return err
	}
	if r.SourceAccountBalance != nil {
		return r.SourceAccountBalance.EncodeTo(e)
	}
	return nil
}

func (r *AccountMergeResult) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	r.Code = v
	if r.Code != 0 {
		return nil
	}
	present, err := d.DecodeBool()
	if err != nil {
		return err
	}
	if present {
		var bal Int64
		if err := bal.DecodeFrom(d); err != nil {
			return err
		}
		r.SourceAccountBalance = &bal
	}
	return nil
}

// CreateClaimableBalanceResult reports the id of the created balance.
type CreateClaimableBalanceResult struct {
	Code      int32
	BalanceId *ClaimableBalanceId
}

func (r CreateClaimableBalanceResult) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(r.Code); err != nil {
		return err
	}
	if r.Code != 0 {
		return nil
	}
	return r.BalanceId.EncodeTo(e)
}

func (r *CreateClaimableBalanceResult) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	r.Code = v
	if r.Code != 0 {
		return nil
	}
	var id ClaimableBalanceId
	if err := id.DecodeFrom(d); err != nil {
		return err
	}
	r.BalanceId = &id
	return nil
}

// InvokeHostFunctionResult reports the contract's return value on
// success.
type InvokeHostFunctionResult struct {
	Code        int32
	ReturnValue *ScVal
}

func (r InvokeHostFunctionResult) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(r.Code); err != nil {
		return err
	}
	if r.Code != 0 {
		return nil
	}
	return r.ReturnValue.EncodeTo(e)
}

func (r *InvokeHostFunctionResult) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	r.Code = v
	if r.Code != 0 {
		return nil
	}
	var sv ScVal
	if err := sv.DecodeFrom(d); err != nil {
		return err
	}
	r.ReturnValue = &sv
	return nil
}

// OperationResultTr is a tagged union over every operation's
// type-specific result, selected by Type (mirrors OperationBody).
type OperationResultTr struct {
	Type                          OperationType
	CreateAccount                 *CreateAccountResult
	Payment                       *PaymentResult
	PathPaymentStrictReceive      *PathPaymentStrictReceiveResult
	PathPaymentStrictSend         *PathPaymentStrictSendResult
	ManageSellOffer               *ManageOfferResult
	ManageBuyOffer                *ManageOfferResult
	CreatePassiveSellOffer        *ManageOfferResult
	SetOptions                    *SimpleOpResult
	ChangeTrust                   *SimpleOpResult
	AllowTrust                    *SimpleOpResult
	AccountMerge                  *AccountMergeResult
	Inflation                     *SimpleOpResult
	ManageData                    *SimpleOpResult
	BumpSequence                  *SimpleOpResult
	CreateClaimableBalance        *CreateClaimableBalanceResult
	ClaimClaimableBalance         *SimpleOpResult
	BeginSponsoringFutureReserves *SimpleOpResult
	EndSponsoringFutureReserves   *SimpleOpResult
	RevokeSponsorship             *SimpleOpResult
	Clawback                      *SimpleOpResult
	ClawbackClaimableBalance      *SimpleOpResult
	SetTrustLineFlags             *SimpleOpResult
	LiquidityPoolDeposit          *SimpleOpResult
	LiquidityPoolWithdraw         *SimpleOpResult
	InvokeHostFunction            *InvokeHostFunctionResult
	ExtendFootprintTtl            *SimpleOpResult
	RestoreFootprint              *SimpleOpResult
}

func (tr OperationResultTr) EncodeTo(e *Encoder) error {
	if err := tr.Type.EncodeTo(e); err != nil {
		return err
	}
	switch tr.Type {
	case OpCreateAccount:
		return tr.CreateAccount.EncodeTo(e)
	case OpPayment:
		return tr.Payment.EncodeTo(e)
	case OpPathPaymentStrictReceive:
		return tr.PathPaymentStrictReceive.EncodeTo(e)
	case OpPathPaymentStrictSend:
		return tr.PathPaymentStrictSend.EncodeTo(e)
	case OpManageSellOffer:
		return tr.ManageSellOffer.EncodeTo(e)
	case OpManageBuyOffer:
		return tr.ManageBuyOffer.EncodeTo(e)
	case OpCreatePassiveSellOffer:
		return tr.CreatePassiveSellOffer.EncodeTo(e)
	case OpSetOptions:
		return tr.SetOptions.EncodeTo(e)
	case OpChangeTrust:
		return tr.ChangeTrust.EncodeTo(e)
	case OpAllowTrust:
		return tr.AllowTrust.EncodeTo(e)
	case OpAccountMerge:
		return tr.AccountMerge.EncodeTo(e)
	case OpInflation:
		return tr.Inflation.EncodeTo(e)
	case OpManageData:
		return tr.ManageData.EncodeTo(e)
	case OpBumpSequence:
		return tr.BumpSequence.EncodeTo(e)
	case OpCreateClaimableBalance:
		return tr.CreateClaimableBalance.EncodeTo(e)
	case OpClaimClaimableBalance:
		return tr.ClaimClaimableBalance.EncodeTo(e)
	case OpBeginSponsoringFutureReserves:
		return tr.BeginSponsoringFutureReserves.EncodeTo(e)
	case OpEndSponsoringFutureReserves:
		return tr.EndSponsoringFutureReserves.EncodeTo(e)
	case OpRevokeSponsorship:
		return tr.RevokeSponsorship.EncodeTo(e)
	case OpClawback:
		return tr.Clawback.EncodeTo(e)
	case OpClawbackClaimableBalance:
		return tr.ClawbackClaimableBalance.EncodeTo(e)
	case OpSetTrustLineFlags:
		return tr.SetTrustLineFlags.EncodeTo(e)
	case OpLiquidityPoolDeposit:
		return tr.LiquidityPoolDeposit.EncodeTo(e)
	case OpLiquidityPoolWithdraw:
		return tr.LiquidityPoolWithdraw.EncodeTo(e)
	case OpInvokeHostFunction:
		return tr.InvokeHostFunction.EncodeTo(e)
	case OpExtendFootprintTtl:
		return tr.ExtendFootprintTtl.EncodeTo(e)
	case OpRestoreFootprint:
		return tr.RestoreFootprint.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled OperationType %d", tr.Type)
	}
}

func (tr *OperationResultTr) DecodeFrom(d *Decoder) error {
	if err := tr.Type.DecodeFrom(d); err != nil {
		return err
	}
	switch tr.Type {
	case OpCreateAccount:
		tr.CreateAccount = new(CreateAccountResult)
		return tr.CreateAccount.DecodeFrom(d)
	case OpPayment:
		tr.Payment = new(PaymentResult)
		return tr.Payment.DecodeFrom(d)
	case OpPathPaymentStrictReceive:
		tr.PathPaymentStrictReceive = new(PathPaymentStrictReceiveResult)
		return tr.PathPaymentStrictReceive.DecodeFrom(d)
	case OpPathPaymentStrictSend:
		tr.PathPaymentStrictSend = new(PathPaymentStrictSendResult)
		return tr.PathPaymentStrictSend.DecodeFrom(d)
	case OpManageSellOffer:
		tr.ManageSellOffer = new(ManageOfferResult)
		return tr.ManageSellOffer.DecodeFrom(d)
	case OpManageBuyOffer:
		tr.ManageBuyOffer = new(ManageOfferResult)
		return tr.ManageBuyOffer.DecodeFrom(d)
	case OpCreatePassiveSellOffer:
		tr.CreatePassiveSellOffer = new(ManageOfferResult)
		return tr.CreatePassiveSellOffer.DecodeFrom(d)
	case OpSetOptions:
		tr.SetOptions = new(SimpleOpResult)
		return tr.SetOptions.DecodeFrom(d)
	case OpChangeTrust:
		tr.ChangeTrust = new(SimpleOpResult)
		return tr.ChangeTrust.DecodeFrom(d)
	case OpAllowTrust:
		tr.AllowTrust = new(SimpleOpResult)
		return tr.AllowTrust.DecodeFrom(d)
	case OpAccountMerge:
		tr.AccountMerge = new(AccountMergeResult)
		return tr.AccountMerge.DecodeFrom(d)
	case OpInflation:
		tr.Inflation = new(SimpleOpResult)
		return tr.Inflation.DecodeFrom(d)
	case OpManageData:
		tr.ManageData = new(SimpleOpResult)
		return tr.ManageData.DecodeFrom(d)
	case OpBumpSequence:
		tr.BumpSequence = new(SimpleOpResult)
		return tr.BumpSequence.DecodeFrom(d)
	case OpCreateClaimableBalance:
		tr.CreateClaimableBalance = new(CreateClaimableBalanceResult)
		return tr.CreateClaimableBalance.DecodeFrom(d)
	case OpClaimClaimableBalance:
		tr.ClaimClaimableBalance = new(SimpleOpResult)
		return tr.ClaimClaimableBalance.DecodeFrom(d)
	case OpBeginSponsoringFutureReserves:
		tr.BeginSponsoringFutureReserves = new(SimpleOpResult)
		return tr.BeginSponsoringFutureReserves.DecodeFrom(d)
	case OpEndSponsoringFutureReserves:
		tr.EndSponsoringFutureReserves = new(SimpleOpResult)
		return tr.EndSponsoringFutureReserves.DecodeFrom(d)
	case OpRevokeSponsorship:
		tr.RevokeSponsorship = new(SimpleOpResult)
		return tr.RevokeSponsorship.DecodeFrom(d)
	case OpClawback:
		tr.Clawback = new(SimpleOpResult)
		return tr.Clawback.DecodeFrom(d)
	case OpClawbackClaimableBalance:
		tr.ClawbackClaimableBalance = new(SimpleOpResult)
		return tr.ClawbackClaimableBalance.DecodeFrom(d)
	case OpSetTrustLineFlags:
		tr.SetTrustLineFlags = new(SimpleOpResult)
		return tr.SetTrustLineFlags.DecodeFrom(d)
	case OpLiquidityPoolDeposit:
		tr.LiquidityPoolDeposit = new(SimpleOpResult)
		return tr.LiquidityPoolDeposit.DecodeFrom(d)
	case OpLiquidityPoolWithdraw:
		tr.LiquidityPoolWithdraw = new(SimpleOpResult)
		return tr.LiquidityPoolWithdraw.DecodeFrom(d)
	case OpInvokeHostFunction:
		tr.InvokeHostFunction = new(InvokeHostFunctionResult)
		return tr.InvokeHostFunction.DecodeFrom(d)
	case OpExtendFootprintTtl:
		tr.ExtendFootprintTtl = new(SimpleOpResult)
		return tr.ExtendFootprintTtl.DecodeFrom(d)
	case OpRestoreFootprint:
		tr.RestoreFootprint = new(SimpleOpResult)
		return tr.RestoreFootprint.DecodeFrom(d)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled OperationType %d", tr.Type)
	}
}

// OperationResult is a tagged union: Code == Inner means the
// operation ran and Tr holds its type-specific result; any other code
// means the operation never reached its type-specific logic.
type OperationResult struct {
	Code OperationResultCode
	Tr   *OperationResultTr
}

func (r OperationResult) EncodeTo(e *Encoder) error {
	if err := r.Code.EncodeTo(e); err != nil {
		return err
	}
	if r.Code == OpINNER {
		return r.Tr.EncodeTo(e)
	}
	return nil
}

func (r *OperationResult) DecodeFrom(d *Decoder) error {
	if err := r.Code.DecodeFrom(d); err != nil {
		return err
	}
	if r.Code == OpINNER {
		var tr OperationResultTr
		if err := tr.DecodeFrom(d); err != nil {
			return err
		}
		r.Tr = &tr
	}
	return nil
}

func encodeOperationResults(e *Encoder, results []OperationResult) error {
	if err := e.EncodeUint(uint32(len(results))); err != nil {
		return err
	}
	for _, r := range results {
		if err := r.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func decodeOperationResults(d *Decoder) ([]OperationResult, error) {
	n, err := d.DecodeArrayLen(maxOperations)
	if err != nil {
		return nil, err
	}
	results := make([]OperationResult, n)
	for i := range results {
		if err := results[i].DecodeFrom(d); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// InnerTransactionResultResult is InnerTransactionResult's per-code
// union: SUCCESS/FAILED carry one OperationResult per operation, every
// other code carries nothing. TransactionResult holds the same layout
// in its own fields.
type InnerTransactionResultResult struct {
	Code    TransactionResultCode
	Results []OperationResult
}

func (r InnerTransactionResultResult) EncodeTo(e *Encoder) error {
	if err := r.Code.EncodeTo(e); err != nil {
		return err
	}
	switch r.Code {
	case TxSUCCESS, TxFAILED:
		return encodeOperationResults(e, r.Results)
	default:
		return nil
	}
}

func (r *InnerTransactionResultResult) DecodeFrom(d *Decoder) error {
	if err := r.Code.DecodeFrom(d); err != nil {
		return err
	}
	switch r.Code {
	case TxSUCCESS, TxFAILED:
		results, err := decodeOperationResults(d)
		if err != nil {
			return err
		}
		r.Results = results
		return nil
	default:
		return nil
	}
}

// InnerTransactionResult is the result of the inner transaction of a
// fee-bump, hashed identically to a standalone TransactionResult but
// never itself nested under TxFEE_BUMP_INNER_FAILED.
type InnerTransactionResult struct {
	FeeCharged Int64
	Result     InnerTransactionResultResult
	Ext        ExtensionPoint
}

func (r InnerTransactionResult) EncodeTo(e *Encoder) error {
	if err := r.FeeCharged.EncodeTo(e); err != nil {
		return err
	}
	if err := r.Result.EncodeTo(e); err != nil {
		return err
	}
	return r.Ext.EncodeTo(e)
}

func (r *InnerTransactionResult) DecodeFrom(d *Decoder) error {
	if err := r.FeeCharged.DecodeFrom(d); err != nil {
		return err
	}
	if err := r.Result.DecodeFrom(d); err != nil {
		return err
	}
	return r.Ext.DecodeFrom(d)
}

// InnerTransactionResultPair names the inner transaction's hash
// alongside its result, the payload of a fee-bump TransactionResult
// whose code is TxFEE_BUMP_INNER_SUCCESS or TxFEE_BUMP_INNER_FAILED.
type InnerTransactionResultPair struct {
	TransactionHash Hash
	Result          InnerTransactionResult
}

func (p InnerTransactionResultPair) EncodeTo(e *Encoder) error {
	if err := p.TransactionHash.EncodeTo(e); err != nil {
		return err
	}
	return p.Result.EncodeTo(e)
}

func (p *InnerTransactionResultPair) DecodeFrom(d *Decoder) error {
	if err := p.TransactionHash.DecodeFrom(d); err != nil {
		return err
	}
	return p.Result.DecodeFrom(d)
}

// TransactionResult is the top-level outcome of submitting either a
// standalone transaction or a fee-bump transaction.
type TransactionResult struct {
	FeeCharged Int64
	Code       TransactionResultCode
	Results    []OperationResult
	InnerPair  *InnerTransactionResultPair
	Ext        ExtensionPoint
}

func (r TransactionResult) EncodeTo(e *Encoder) error {
	if err := r.FeeCharged.EncodeTo(e); err != nil {
		return err
	}
	if err := r.Code.EncodeTo(e); err != nil {
		return err
	}
	switch r.Code {
	case TxSUCCESS, TxFAILED:
		if err := encodeOperationResults(e, r.Results); err != nil {
			return err
		}
	case TxFEE_BUMP_INNER_SUCCESS, TxFEE_BUMP_INNER_FAILED:
		if err := r.InnerPair.EncodeTo(e); err != nil {
			return err
		}
	}
	return r.Ext.EncodeTo(e)
}

func (r *TransactionResult) DecodeFrom(d *Decoder) error {
	if err := r.FeeCharged.DecodeFrom(d); err != nil {
		return err
	}
	if err := r.Code.DecodeFrom(d); err != nil {
		return err
	}
	switch r.Code {
	case TxSUCCESS, TxFAILED:
		results, err := decodeOperationResults(d)
		if err != nil {
			return err
		}
		r.Results = results
	case TxFEE_BUMP_INNER_SUCCESS, TxFEE_BUMP_INNER_FAILED:
		var pair InnerTransactionResultPair
		if err := pair.DecodeFrom(d); err != nil {
			return err
		}
		r.InnerPair = &pair
	}
	return r.Ext.DecodeFrom(d)
}
