package xdr

import "github.com/EXCCoin/stellarbase/errs"

// OperationType enumerates every operation body this module builds.
// The numbering matches the network's operation table so that an
// Operation built here is byte-identical to one built by any other
// client.
type OperationType int32

const (
	OpCreateAccount                   OperationType = 0
	OpPayment                         OperationType = 1
	OpPathPaymentStrictReceive        OperationType = 2
	OpManageSellOffer                 OperationType = 3
	OpCreatePassiveSellOffer          OperationType = 4
	OpSetOptions                      OperationType = 5
	OpChangeTrust                     OperationType = 6
	OpAllowTrust                      OperationType = 7
	OpAccountMerge                    OperationType = 8
	OpInflation                       OperationType = 9
	OpManageData                      OperationType = 10
	OpBumpSequence                    OperationType = 11
	OpManageBuyOffer                  OperationType = 12
	OpPathPaymentStrictSend           OperationType = 13
	OpCreateClaimableBalance          OperationType = 14
	OpClaimClaimableBalance           OperationType = 15
	OpBeginSponsoringFutureReserves   OperationType = 16
	OpEndSponsoringFutureReserves     OperationType = 17
	OpRevokeSponsorship               OperationType = 18
	OpClawback                        OperationType = 19
	OpClawbackClaimableBalance        OperationType = 20
	OpSetTrustLineFlags               OperationType = 21
	OpLiquidityPoolDeposit            OperationType = 22
	OpLiquidityPoolWithdraw           OperationType = 23
	OpInvokeHostFunction              OperationType = 24
	OpExtendFootprintTtl              OperationType = 25
	OpRestoreFootprint                OperationType = 26
)

func (t OperationType) EncodeTo(e *Encoder) error { return e.EncodeInt(int32(t)) }

func (t *OperationType) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	*t = OperationType(v)
	return nil
}

const maxPathLen = 5
const maxClaimants = 10

// CreateAccountOp funds a new account from the source account's balance.
type CreateAccountOp struct {
	Destination     AccountId
	StartingBalance Int64
}

func (op CreateAccountOp) EncodeTo(e *Encoder) error {
	if err := op.Destination.EncodeTo(e); err != nil {
		return err
	}
	return op.StartingBalance.EncodeTo(e)
}

func (op *CreateAccountOp) DecodeFrom(d *Decoder) error {
	if err := op.Destination.DecodeFrom(d); err != nil {
		return err
	}
	return op.StartingBalance.DecodeFrom(d)
}

// PaymentOp sends Amount of Asset to Destination.
type PaymentOp struct {
	Destination MuxedAccount
	Asset       Asset
	Amount      Int64
}

func (op PaymentOp) EncodeTo(e *Encoder) error {
	if err := op.Destination.EncodeTo(e); err != nil {
		return err
	}
	if err := op.Asset.EncodeTo(e); err != nil {
		return err
	}
	return op.Amount.EncodeTo(e)
}

func (op *PaymentOp) DecodeFrom(d *Decoder) error {
	if err := op.Destination.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.Asset.DecodeFrom(d); err != nil {
		return err
	}
	return op.Amount.DecodeFrom(d)
}

func encodeAssetPath(e *Encoder, path []Asset) error {
	if uint32(len(path)) > maxPathLen {
		return errs.New(errs.ErrInvalidXDR, "path of %d assets exceeds bound %d", len(path), maxPathLen)
	}
	if err := e.EncodeUint(uint32(len(path))); err != nil {
		return err
	}
	for _, a := range path {
		if err := a.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func decodeAssetPath(d *Decoder) ([]Asset, error) {
	n, err := d.DecodeArrayLen(maxPathLen)
	if err != nil {
		return nil, err
	}
	path := make([]Asset, n)
	for i := range path {
		if err := path[i].DecodeFrom(d); err != nil {
			return nil, err
		}
	}
	return path, nil
}

// PathPaymentStrictReceiveOp sends up to SendMax of SendAsset so that
// Destination receives exactly DestAmount of DestAsset.
type PathPaymentStrictReceiveOp struct {
	SendAsset   Asset
	SendMax     Int64
	Destination MuxedAccount
	DestAsset   Asset
	DestAmount  Int64
	Path        []Asset
}

func (op PathPaymentStrictReceiveOp) EncodeTo(e *Encoder) error {
	if err := op.SendAsset.EncodeTo(e); err != nil {
		return err
	}
	if err := op.SendMax.EncodeTo(e); err != nil {
		return err
	}
	if err := op.Destination.EncodeTo(e); err != nil {
		return err
	}
	if err := op.DestAsset.EncodeTo(e); err != nil {
		return err
	}
	if err := op.DestAmount.EncodeTo(e); err != nil {
		return err
	}
	return encodeAssetPath(e, op.Path)
}

func (op *PathPaymentStrictReceiveOp) DecodeFrom(d *Decoder) error {
	if err := op.SendAsset.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.SendMax.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.Destination.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.DestAsset.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.DestAmount.DecodeFrom(d); err != nil {
		return err
	}
	path, err := decodeAssetPath(d)
	if err != nil {
		return err
	}
	op.Path = path
	return nil
}

// PathPaymentStrictSendOp sends exactly SendAmount of SendAsset so that
// Destination receives at least DestMin of DestAsset.
type PathPaymentStrictSendOp struct {
	SendAsset   Asset
	SendAmount  Int64
	Destination MuxedAccount
	DestAsset   Asset
	DestMin     Int64
	Path        []Asset
}

func (op PathPaymentStrictSendOp) EncodeTo(e *Encoder) error {
	if err := op.SendAsset.EncodeTo(e); err != nil {
		return err
	}
	if err := op.SendAmount.EncodeTo(e); err != nil {
		return err
	}
	if err := op.Destination.EncodeTo(e); err != nil {
		return err
	}
	if err := op.DestAsset.EncodeTo(e); err != nil {
		return err
	}
	if err := op.DestMin.EncodeTo(e); err != nil {
		return err
	}
	return encodeAssetPath(e, op.Path)
}

func (op *PathPaymentStrictSendOp) DecodeFrom(d *Decoder) error {
	if err := op.SendAsset.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.SendAmount.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.Destination.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.DestAsset.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.DestMin.DecodeFrom(d); err != nil {
		return err
	}
	path, err := decodeAssetPath(d)
	if err != nil {
		return err
	}
	op.Path = path
	return nil
}

func encodeOptPrice(e *Encoder, p *Price) error {
	if err := e.EncodeBool(p != nil); err != nil {
		return err
	}
	if p != nil {
		return p.EncodeTo(e)
	}
	return nil
}

func decodeOptPrice(d *Decoder) (*Price, error) {
	present, err := d.DecodeBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	var p Price
	if err := p.DecodeFrom(d); err != nil {
		return nil, err
	}
	return &p, nil
}

// ManageSellOfferOp creates, updates, or deletes (Amount == 0) a sell
// offer. OfferId == 0 means "create a new offer".
type ManageSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  Int64
	Price   Price
	OfferId Int64
}

func (op ManageSellOfferOp) EncodeTo(e *Encoder) error {
	if err := op.Selling.EncodeTo(e); err != nil {
		return err
	}
	if err := op.Buying.EncodeTo(e); err != nil {
		return err
	}
	if err := op.Amount.EncodeTo(e); err != nil {
		return err
	}
	if err := op.Price.EncodeTo(e); err != nil {
		return err
	}
	return op.OfferId.EncodeTo(e)
}

func (op *ManageSellOfferOp) DecodeFrom(d *Decoder) error {
	if err := op.Selling.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.Buying.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.Amount.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.Price.DecodeFrom(d); err != nil {
		return err
	}
	return op.OfferId.DecodeFrom(d)
}

// ManageBuyOfferOp mirrors ManageSellOfferOp, quoting BuyAmount of
// Buying instead of an amount of Selling.
type ManageBuyOfferOp struct {
	Selling   Asset
	Buying    Asset
	BuyAmount Int64
	Price     Price
	OfferId   Int64
}

func (op ManageBuyOfferOp) EncodeTo(e *Encoder) error {
	if err := op.Selling.EncodeTo(e); err != nil {
		return err
	}
	if err := op.Buying.EncodeTo(e); err != nil {
		return err
	}
	if err := op.BuyAmount.EncodeTo(e); err != nil {
		return err
	}
	if err := op.Price.EncodeTo(e); err != nil {
		return err
	}
	return op.OfferId.EncodeTo(e)
}

func (op *ManageBuyOfferOp) DecodeFrom(d *Decoder) error {
	if err := op.Selling.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.Buying.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.BuyAmount.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.Price.DecodeFrom(d); err != nil {
		return err
	}
	return op.OfferId.DecodeFrom(d)
}

// CreatePassiveSellOfferOp is a ManageSellOfferOp variant that never
// crosses an offer at the same price it was created at.
type CreatePassiveSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  Int64
	Price   Price
}

func (op CreatePassiveSellOfferOp) EncodeTo(e *Encoder) error {
	if err := op.Selling.EncodeTo(e); err != nil {
		return err
	}
	if err := op.Buying.EncodeTo(e); err != nil {
		return err
	}
	if err := op.Amount.EncodeTo(e); err != nil {
		return err
	}
	return op.Price.EncodeTo(e)
}

func (op *CreatePassiveSellOfferOp) DecodeFrom(d *Decoder) error {
	if err := op.Selling.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.Buying.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.Amount.DecodeFrom(d); err != nil {
		return err
	}
	return op.Price.DecodeFrom(d)
}

func encodeOptUint32(e *Encoder, v *Uint32) error {
	if err := e.EncodeBool(v != nil); err != nil {
		return err
	}
	if v != nil {
		return v.EncodeTo(e)
	}
	return nil
}

func decodeOptUint32(d *Decoder) (*Uint32, error) {
	present, err := d.DecodeBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	var v Uint32
	if err := v.DecodeFrom(d); err != nil {
		return nil, err
	}
	return &v, nil
}

func encodeOptAccountId(e *Encoder, v *AccountId) error {
	if err := e.EncodeBool(v != nil); err != nil {
		return err
	}
	if v != nil {
		return v.EncodeTo(e)
	}
	return nil
}

func decodeOptAccountId(d *Decoder) (*AccountId, error) {
	present, err := d.DecodeBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	var v AccountId
	if err := v.DecodeFrom(d); err != nil {
		return nil, err
	}
	return &v, nil
}

func encodeOptSignerKey(e *Encoder, v *SignerKey) error {
	if err := e.EncodeBool(v != nil); err != nil {
		return err
	}
	if v != nil {
		return v.EncodeTo(e)
	}
	return nil
}

func decodeOptSignerKey(d *Decoder) (*SignerKey, error) {
	present, err := d.DecodeBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	var v SignerKey
	if err := v.DecodeFrom(d); err != nil {
		return nil, err
	}
	return &v, nil
}

func encodeOptSigner(e *Encoder, v *Signer) error {
	if err := e.EncodeBool(v != nil); err != nil {
		return err
	}
	if v != nil {
		return v.EncodeTo(e)
	}
	return nil
}

func decodeOptSigner(d *Decoder) (*Signer, error) {
	present, err := d.DecodeBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	var v Signer
	if err := v.DecodeFrom(d); err != nil {
		return nil, err
	}
	return &v, nil
}

func encodeOptString(e *Encoder, v *string, maxLen uint32) error {
	if err := e.EncodeBool(v != nil); err != nil {
		return err
	}
	if v != nil {
		return e.EncodeString(*v, maxLen)
	}
	return nil
}

func decodeOptString(d *Decoder, maxLen uint32) (*string, error) {
	present, err := d.DecodeBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	s, err := d.DecodeString(maxLen)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SetOptionsOp carries every settable account-options field, each
// optional; a nil field leaves the corresponding ledger value
// unchanged.
type SetOptionsOp struct {
	InflationDest *AccountId
	ClearFlags    *Uint32
	SetFlags      *Uint32
	MasterWeight  *Uint32
	LowThreshold  *Uint32
	MedThreshold  *Uint32
	HighThreshold *Uint32
	HomeDomain    *string // <32>
	Signer        *Signer
}

func (op SetOptionsOp) EncodeTo(e *Encoder) error {
	if err := encodeOptAccountId(e, op.InflationDest); err != nil {
		return err
	}
	if err := encodeOptUint32(e, op.ClearFlags); err != nil {
		return err
	}
	if err := encodeOptUint32(e, op.SetFlags); err != nil {
		return err
	}
	if err := encodeOptUint32(e, op.MasterWeight); err != nil {
		return err
	}
	if err := encodeOptUint32(e, op.LowThreshold); err != nil {
		return err
	}
	if err := encodeOptUint32(e, op.MedThreshold); err != nil {
		return err
	}
	if err := encodeOptUint32(e, op.HighThreshold); err != nil {
		return err
	}
	if err := encodeOptString(e, op.HomeDomain, 32); err != nil {
		return err
	}
	return encodeOptSigner(e, op.Signer)
}

func (op *SetOptionsOp) DecodeFrom(d *Decoder) error {
	var err error
	if op.InflationDest, err = decodeOptAccountId(d); err != nil {
		return err
	}
	if op.ClearFlags, err = decodeOptUint32(d); err != nil {
		return err
	}
	if op.SetFlags, err = decodeOptUint32(d); err != nil {
		return err
	}
	if op.MasterWeight, err = decodeOptUint32(d); err != nil {
		return err
	}
	if op.LowThreshold, err = decodeOptUint32(d); err != nil {
		return err
	}
	if op.MedThreshold, err = decodeOptUint32(d); err != nil {
		return err
	}
	if op.HighThreshold, err = decodeOptUint32(d); err != nil {
		return err
	}
	if op.HomeDomain, err = decodeOptString(d, 32); err != nil {
		return err
	}
	op.Signer, err = decodeOptSigner(d)
	return err
}

// ChangeTrustOp establishes, updates, or removes (Limit == 0) a
// trustline. Line reuses Asset (including its pool-share arm) rather
// than a separate ChangeTrustAsset type, a deliberate simplification
// documented alongside Asset.
type ChangeTrustOp struct {
	Line  Asset
	Limit Int64
}

func (op ChangeTrustOp) EncodeTo(e *Encoder) error {
	if err := op.Line.EncodeTo(e); err != nil {
		return err
	}
	return op.Limit.EncodeTo(e)
}

func (op *ChangeTrustOp) DecodeFrom(d *Decoder) error {
	if err := op.Line.DecodeFrom(d); err != nil {
		return err
	}
	return op.Limit.DecodeFrom(d)
}

// AllowTrustAsset names a trustline by code alone; the issuer is
// implicit (the operation's source account).
type AllowTrustAsset struct {
	Type  AssetType
	Code4 *AssetCode4
	Code12 *AssetCode12
}

func (a AllowTrustAsset) EncodeTo(e *Encoder) error {
	if err := a.Type.EncodeTo(e); err != nil {
		return err
	}
	switch a.Type {
	case AssetTypeCreditAlphanum4:
		return a.Code4.EncodeTo(e)
	case AssetTypeCreditAlphanum12:
		return a.Code12.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled AllowTrustAsset type %d", a.Type)
	}
}

func (a *AllowTrustAsset) DecodeFrom(d *Decoder) error {
	if err := a.Type.DecodeFrom(d); err != nil {
		return err
	}
	switch a.Type {
	case AssetTypeCreditAlphanum4:
		var c AssetCode4
		if err := c.DecodeFrom(d); err != nil {
			return err
		}
		a.Code4 = &c
	case AssetTypeCreditAlphanum12:
		var c AssetCode12
		if err := c.DecodeFrom(d); err != nil {
			return err
		}
		a.Code12 = &c
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled AllowTrustAsset type %d", a.Type)
	}
	return nil
}

// AllowTrustOp authorizes or deauthorizes a counterparty's trustline.
// Authorize carries the TrustLineFlags bitmask (CAP-0030 generalized
// the original bool into a flag set).
type AllowTrustOp struct {
	Trustor   AccountId
	Asset     AllowTrustAsset
	Authorize Uint32
}

func (op AllowTrustOp) EncodeTo(e *Encoder) error {
	if err := op.Trustor.EncodeTo(e); err != nil {
		return err
	}
	if err := op.Asset.EncodeTo(e); err != nil {
		return err
	}
	return op.Authorize.EncodeTo(e)
}

func (op *AllowTrustOp) DecodeFrom(d *Decoder) error {
	if err := op.Trustor.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.Asset.DecodeFrom(d); err != nil {
		return err
	}
	return op.Authorize.DecodeFrom(d)
}

// ManageDataOp sets (DataValue != nil) or clears a named data entry.
type ManageDataOp struct {
	DataName  string // <64>
	DataValue []byte // optional var opaque<64>
}

func (op ManageDataOp) EncodeTo(e *Encoder) error {
	if err := e.EncodeString(op.DataName, 64); err != nil {
		return err
	}
	if err := e.EncodeBool(op.DataValue != nil); err != nil {
		return err
	}
	if op.DataValue != nil {
		return e.EncodeVarOpaque(op.DataValue, 64)
	}
	return nil
}

func (op *ManageDataOp) DecodeFrom(d *Decoder) error {
	name, err := d.DecodeString(64)
	if err != nil {
		return err
	}
	op.DataName = name
	present, err := d.DecodeBool()
	if err != nil {
		return err
	}
	if present {
		b, err := d.DecodeVarOpaque(64)
		if err != nil {
			return err
		}
		op.DataValue = b
	}
	return nil
}

// BumpSequenceOp advances the source account's sequence number to
// BumpTo without consuming any other action.
type BumpSequenceOp struct {
	BumpTo SequenceNumber
}

func (op BumpSequenceOp) EncodeTo(e *Encoder) error { return Int64(op.BumpTo).EncodeTo(e) }
func (op *BumpSequenceOp) DecodeFrom(d *Decoder) error {
	var v Int64
	if err := v.DecodeFrom(d); err != nil {
		return err
	}
	op.BumpTo = SequenceNumber(v)
	return nil
}

// CreateClaimableBalanceOp escrows Amount of Asset, releasable to
// whichever Claimants' predicate is satisfied first.
type CreateClaimableBalanceOp struct {
	Asset     Asset
	Amount    Int64
	Claimants []Claimant
}

func (op CreateClaimableBalanceOp) EncodeTo(e *Encoder) error {
	if err := op.Asset.EncodeTo(e); err != nil {
		return err
	}
	if err := op.Amount.EncodeTo(e); err != nil {
		return err
	}
	if uint32(len(op.Claimants)) > maxClaimants {
		return errs.New(errs.ErrInvalidXDR, "%d claimants exceeds bound %d", len(op.Claimants), maxClaimants)
	}
	if err := e.EncodeUint(uint32(len(op.Claimants))); err != nil {
		return err
	}
	for _, c := range op.Claimants {
		if err := c.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (op *CreateClaimableBalanceOp) DecodeFrom(d *Decoder) error {
	if err := op.Asset.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.Amount.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeArrayLen(maxClaimants)
	if err != nil {
		return err
	}
	claimants := make([]Claimant, n)
	for i := range claimants {
		if err := claimants[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	op.Claimants = claimants
	return nil
}

// ClaimClaimableBalanceOp claims a pending balance on behalf of the
// source account.
type ClaimClaimableBalanceOp struct {
	BalanceId ClaimableBalanceId
}

func (op ClaimClaimableBalanceOp) EncodeTo(e *Encoder) error { return op.BalanceId.EncodeTo(e) }
func (op *ClaimClaimableBalanceOp) DecodeFrom(d *Decoder) error {
	return op.BalanceId.DecodeFrom(d)
}

// BeginSponsoringFutureReservesOp makes the source account pay the
// base reserve for every ledger entry SponsoredId creates until a
// matching EndSponsoringFutureReservesOp.
type BeginSponsoringFutureReservesOp struct {
	SponsoredId AccountId
}

func (op BeginSponsoringFutureReservesOp) EncodeTo(e *Encoder) error {
	return op.SponsoredId.EncodeTo(e)
}
func (op *BeginSponsoringFutureReservesOp) DecodeFrom(d *Decoder) error {
	return op.SponsoredId.DecodeFrom(d)
}

// RevokeSponsorshipType enumerates RevokeSponsorshipOp's discriminants.
type RevokeSponsorshipType int32

const (
	RevokeSponsorshipLedgerEntry RevokeSponsorshipType = 0
	RevokeSponsorshipSigner      RevokeSponsorshipType = 1
)

// RevokeSponsorshipSignerKey names one signer of one account whose
// sponsorship is being revoked.
type RevokeSponsorshipSignerKey struct {
	AccountId AccountId
	SignerKey SignerKey
}

// RevokeSponsorshipOp is a tagged union: either hand off sponsorship
// of a ledger entry, or of one account signer.
type RevokeSponsorshipOp struct {
	Type      RevokeSponsorshipType
	LedgerKey *LedgerKey
	Signer    *RevokeSponsorshipSignerKey
}

func (op RevokeSponsorshipOp) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(op.Type)); err != nil {
		return err
	}
	switch op.Type {
	case RevokeSponsorshipLedgerEntry:
		return op.LedgerKey.EncodeTo(e)
	case RevokeSponsorshipSigner:
		if err := op.Signer.AccountId.EncodeTo(e); err != nil {
			return err
		}
		return op.Signer.SignerKey.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled RevokeSponsorshipType %d", op.Type)
	}
}

func (op *RevokeSponsorshipOp) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	op.Type = RevokeSponsorshipType(v)
	switch op.Type {
	case RevokeSponsorshipLedgerEntry:
		var k LedgerKey
		if err := k.DecodeFrom(d); err != nil {
			return err
		}
		op.LedgerKey = &k
	case RevokeSponsorshipSigner:
		var s RevokeSponsorshipSignerKey
		if err := s.AccountId.DecodeFrom(d); err != nil {
			return err
		}
		if err := s.SignerKey.DecodeFrom(d); err != nil {
			return err
		}
		op.Signer = &s
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled RevokeSponsorshipType %d", op.Type)
	}
	return nil
}

// ClawbackOp pulls Amount of Asset back from From into the issuer.
type ClawbackOp struct {
	Asset  Asset
	From   MuxedAccount
	Amount Int64
}

func (op ClawbackOp) EncodeTo(e *Encoder) error {
	if err := op.Asset.EncodeTo(e); err != nil {
		return err
	}
	if err := op.From.EncodeTo(e); err != nil {
		return err
	}
	return op.Amount.EncodeTo(e)
}

func (op *ClawbackOp) DecodeFrom(d *Decoder) error {
	if err := op.Asset.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.From.DecodeFrom(d); err != nil {
		return err
	}
	return op.Amount.DecodeFrom(d)
}

// ClawbackClaimableBalanceOp pulls back a not-yet-claimed balance.
type ClawbackClaimableBalanceOp struct {
	BalanceId ClaimableBalanceId
}

func (op ClawbackClaimableBalanceOp) EncodeTo(e *Encoder) error { return op.BalanceId.EncodeTo(e) }
func (op *ClawbackClaimableBalanceOp) DecodeFrom(d *Decoder) error {
	return op.BalanceId.DecodeFrom(d)
}

// SetTrustLineFlagsOp sets and clears TrustLineFlags bits on a
// counterparty's trustline.
type SetTrustLineFlagsOp struct {
	Trustor    AccountId
	Asset      Asset
	ClearFlags Uint32
	SetFlags   Uint32
}

func (op SetTrustLineFlagsOp) EncodeTo(e *Encoder) error {
	if err := op.Trustor.EncodeTo(e); err != nil {
		return err
	}
	if err := op.Asset.EncodeTo(e); err != nil {
		return err
	}
	if err := op.ClearFlags.EncodeTo(e); err != nil {
		return err
	}
	return op.SetFlags.EncodeTo(e)
}

func (op *SetTrustLineFlagsOp) DecodeFrom(d *Decoder) error {
	if err := op.Trustor.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.Asset.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.ClearFlags.DecodeFrom(d); err != nil {
		return err
	}
	return op.SetFlags.DecodeFrom(d)
}

// LiquidityPoolDepositOp deposits up to MaxAmountA/MaxAmountB into a
// pool, bounded by an acceptable A/B price range.
type LiquidityPoolDepositOp struct {
	LiquidityPoolId PoolId
	MaxAmountA      Int64
	MaxAmountB      Int64
	MinPrice        Price
	MaxPrice        Price
}

func (op LiquidityPoolDepositOp) EncodeTo(e *Encoder) error {
	if err := op.LiquidityPoolId.EncodeTo(e); err != nil {
		return err
	}
	if err := op.MaxAmountA.EncodeTo(e); err != nil {
		return err
	}
	if err := op.MaxAmountB.EncodeTo(e); err != nil {
		return err
	}
	if err := op.MinPrice.EncodeTo(e); err != nil {
		return err
	}
	return op.MaxPrice.EncodeTo(e)
}

func (op *LiquidityPoolDepositOp) DecodeFrom(d *Decoder) error {
	if err := op.LiquidityPoolId.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.MaxAmountA.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.MaxAmountB.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.MinPrice.DecodeFrom(d); err != nil {
		return err
	}
	return op.MaxPrice.DecodeFrom(d)
}

// LiquidityPoolWithdrawOp redeems Amount of pool shares for at least
// MinAmountA/MinAmountB of the underlying reserves.
type LiquidityPoolWithdrawOp struct {
	LiquidityPoolId PoolId
	Amount          Int64
	MinAmountA      Int64
	MinAmountB      Int64
}

func (op LiquidityPoolWithdrawOp) EncodeTo(e *Encoder) error {
	if err := op.LiquidityPoolId.EncodeTo(e); err != nil {
		return err
	}
	if err := op.Amount.EncodeTo(e); err != nil {
		return err
	}
	if err := op.MinAmountA.EncodeTo(e); err != nil {
		return err
	}
	return op.MinAmountB.EncodeTo(e)
}

func (op *LiquidityPoolWithdrawOp) DecodeFrom(d *Decoder) error {
	if err := op.LiquidityPoolId.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.Amount.DecodeFrom(d); err != nil {
		return err
	}
	if err := op.MinAmountA.DecodeFrom(d); err != nil {
		return err
	}
	return op.MinAmountB.DecodeFrom(d)
}

const maxSorobanAuthEntries = 100

// InvokeHostFunctionOp invokes a Soroban contract (or uploads/creates
// one), under the authorization entries in Auth.
type InvokeHostFunctionOp struct {
	HostFunction HostFunction
	Auth         []SorobanAuthorizationEntry
}

func (op InvokeHostFunctionOp) EncodeTo(e *Encoder) error {
	if err := op.HostFunction.EncodeTo(e); err != nil {
		return err
	}
	if uint32(len(op.Auth)) > maxSorobanAuthEntries {
		return errs.New(errs.ErrInvalidXDR, "%d auth entries exceeds bound %d", len(op.Auth), maxSorobanAuthEntries)
	}
	if err := e.EncodeUint(uint32(len(op.Auth))); err != nil {
		return err
	}
	for _, a := range op.Auth {
		if err := a.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (op *InvokeHostFunctionOp) DecodeFrom(d *Decoder) error {
	if err := op.HostFunction.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeArrayLen(maxSorobanAuthEntries)
	if err != nil {
		return err
	}
	auth := make([]SorobanAuthorizationEntry, n)
	for i := range auth {
		if err := auth[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	op.Auth = auth
	return nil
}

// ExtendFootprintTtlOp extends the time-to-live of the entries named
// in the enclosing Operation's footprint (carried out-of-band by the
// caller via the preceding read-only ledger keys) to ExtendTo ledgers
// from the current ledger.
type ExtendFootprintTtlOp struct {
	Ext      ExtensionPoint
	ExtendTo Uint32
}

func (op ExtendFootprintTtlOp) EncodeTo(e *Encoder) error {
	if err := op.Ext.EncodeTo(e); err != nil {
		return err
	}
	return op.ExtendTo.EncodeTo(e)
}

func (op *ExtendFootprintTtlOp) DecodeFrom(d *Decoder) error {
	if err := op.Ext.DecodeFrom(d); err != nil {
		return err
	}
	return op.ExtendTo.DecodeFrom(d)
}

// RestoreFootprintOp restores archived entries named in the enclosing
// Operation's footprint.
type RestoreFootprintOp struct {
	Ext ExtensionPoint
}

func (op RestoreFootprintOp) EncodeTo(e *Encoder) error  { return op.Ext.EncodeTo(e) }
func (op *RestoreFootprintOp) DecodeFrom(d *Decoder) error { return op.Ext.DecodeFrom(d) }

// OperationBody is a tagged union over every operation kind. Exactly
// one field is populated according to Type; AccountMerge carries only
// its destination MuxedAccount, and the void-bodied operations
// (Inflation, EndSponsoringFutureReserves) carry no payload beyond the
// tag.
type OperationBody struct {
	Type                            OperationType
	CreateAccount                   *CreateAccountOp
	Payment                         *PaymentOp
	PathPaymentStrictReceive        *PathPaymentStrictReceiveOp
	ManageSellOffer                 *ManageSellOfferOp
	CreatePassiveSellOffer          *CreatePassiveSellOfferOp
	SetOptions                      *SetOptionsOp
	ChangeTrust                     *ChangeTrustOp
	AllowTrust                      *AllowTrustOp
	AccountMerge                    *MuxedAccount
	ManageData                      *ManageDataOp
	BumpSequence                    *BumpSequenceOp
	ManageBuyOffer                  *ManageBuyOfferOp
	PathPaymentStrictSend           *PathPaymentStrictSendOp
	CreateClaimableBalance          *CreateClaimableBalanceOp
	ClaimClaimableBalance           *ClaimClaimableBalanceOp
	BeginSponsoringFutureReserves   *BeginSponsoringFutureReservesOp
	RevokeSponsorship               *RevokeSponsorshipOp
	Clawback                        *ClawbackOp
	ClawbackClaimableBalance        *ClawbackClaimableBalanceOp
	SetTrustLineFlags               *SetTrustLineFlagsOp
	LiquidityPoolDeposit            *LiquidityPoolDepositOp
	LiquidityPoolWithdraw           *LiquidityPoolWithdrawOp
	InvokeHostFunction              *InvokeHostFunctionOp
	ExtendFootprintTtl              *ExtendFootprintTtlOp
	RestoreFootprint                *RestoreFootprintOp
}

func (b OperationBody) EncodeTo(e *Encoder) error {
	if err := b.Type.EncodeTo(e); err != nil {
		return err
	}
	switch b.Type {
	case OpCreateAccount:
		return b.CreateAccount.EncodeTo(e)
	case OpPayment:
		return b.Payment.EncodeTo(e)
	case OpPathPaymentStrictReceive:
		return b.PathPaymentStrictReceive.EncodeTo(e)
	case OpManageSellOffer:
		return b.ManageSellOffer.EncodeTo(e)
	case OpCreatePassiveSellOffer:
		return b.CreatePassiveSellOffer.EncodeTo(e)
	case OpSetOptions:
		return b.SetOptions.EncodeTo(e)
	case OpChangeTrust:
		return b.ChangeTrust.EncodeTo(e)
	case OpAllowTrust:
		return b.AllowTrust.EncodeTo(e)
	case OpAccountMerge:
		return b.AccountMerge.EncodeTo(e)
	case OpInflation:
		return nil
	case OpManageData:
		return b.ManageData.EncodeTo(e)
	case OpBumpSequence:
		return b.BumpSequence.EncodeTo(e)
	case OpManageBuyOffer:
		return b.ManageBuyOffer.EncodeTo(e)
	case OpPathPaymentStrictSend:
		return b.PathPaymentStrictSend.EncodeTo(e)
	case OpCreateClaimableBalance:
		return b.CreateClaimableBalance.EncodeTo(e)
	case OpClaimClaimableBalance:
		return b.ClaimClaimableBalance.EncodeTo(e)
	case OpBeginSponsoringFutureReserves:
		return b.BeginSponsoringFutureReserves.EncodeTo(e)
	case OpEndSponsoringFutureReserves:
		return nil
	case OpRevokeSponsorship:
		return b.RevokeSponsorship.EncodeTo(e)
	case OpClawback:
		return b.Clawback.EncodeTo(e)
	case OpClawbackClaimableBalance:
		return b.ClawbackClaimableBalance.EncodeTo(e)
	case OpSetTrustLineFlags:
		return b.SetTrustLineFlags.EncodeTo(e)
	case OpLiquidityPoolDeposit:
		return b.LiquidityPoolDeposit.EncodeTo(e)
	case OpLiquidityPoolWithdraw:
		return b.LiquidityPoolWithdraw.EncodeTo(e)
	case OpInvokeHostFunction:
		return b.InvokeHostFunction.EncodeTo(e)
	case OpExtendFootprintTtl:
		return b.ExtendFootprintTtl.EncodeTo(e)
	case OpRestoreFootprint:
		return b.RestoreFootprint.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled OperationType %d", b.Type)
	}
}

func (b *OperationBody) DecodeFrom(d *Decoder) error {
	if err := b.Type.DecodeFrom(d); err != nil {
		return err
	}
	switch b.Type {
	case OpCreateAccount:
		b.CreateAccount = new(CreateAccountOp)
		return b.CreateAccount.DecodeFrom(d)
	case OpPayment:
		b.Payment = new(PaymentOp)
		return b.Payment.DecodeFrom(d)
	case OpPathPaymentStrictReceive:
		b.PathPaymentStrictReceive = new(PathPaymentStrictReceiveOp)
		return b.PathPaymentStrictReceive.DecodeFrom(d)
	case OpManageSellOffer:
		b.ManageSellOffer = new(ManageSellOfferOp)
		return b.ManageSellOffer.DecodeFrom(d)
	case OpCreatePassiveSellOffer:
		b.CreatePassiveSellOffer = new(CreatePassiveSellOfferOp)
		return b.CreatePassiveSellOffer.DecodeFrom(d)
	case OpSetOptions:
		b.SetOptions = new(SetOptionsOp)
		return b.SetOptions.DecodeFrom(d)
	case OpChangeTrust:
		b.ChangeTrust = new(ChangeTrustOp)
		return b.ChangeTrust.DecodeFrom(d)
	case OpAllowTrust:
		b.AllowTrust = new(AllowTrustOp)
		return b.AllowTrust.DecodeFrom(d)
	case OpAccountMerge:
		b.AccountMerge = new(MuxedAccount)
		return b.AccountMerge.DecodeFrom(d)
	case OpInflation:
		return nil
	case OpManageData:
		b.ManageData = new(ManageDataOp)
		return b.ManageData.DecodeFrom(d)
	case OpBumpSequence:
		b.BumpSequence = new(BumpSequenceOp)
		return b.BumpSequence.DecodeFrom(d)
	case OpManageBuyOffer:
		b.ManageBuyOffer = new(ManageBuyOfferOp)
		return b.ManageBuyOffer.DecodeFrom(d)
	case OpPathPaymentStrictSend:
		b.PathPaymentStrictSend = new(PathPaymentStrictSendOp)
		return b.PathPaymentStrictSend.DecodeFrom(d)
	case OpCreateClaimableBalance:
		b.CreateClaimableBalance = new(CreateClaimableBalanceOp)
		return b.CreateClaimableBalance.DecodeFrom(d)
	case OpClaimClaimableBalance:
		b.ClaimClaimableBalance = new(ClaimClaimableBalanceOp)
		return b.ClaimClaimableBalance.DecodeFrom(d)
	case OpBeginSponsoringFutureReserves:
		b.BeginSponsoringFutureReserves = new(BeginSponsoringFutureReservesOp)
		return b.BeginSponsoringFutureReserves.DecodeFrom(d)
	case OpEndSponsoringFutureReserves:
		return nil
	case OpRevokeSponsorship:
		b.RevokeSponsorship = new(RevokeSponsorshipOp)
		return b.RevokeSponsorship.DecodeFrom(d)
	case OpClawback:
		b.Clawback = new(ClawbackOp)
		return b.Clawback.DecodeFrom(d)
	case OpClawbackClaimableBalance:
		b.ClawbackClaimableBalance = new(ClawbackClaimableBalanceOp)
		return b.ClawbackClaimableBalance.DecodeFrom(d)
	case OpSetTrustLineFlags:
		b.SetTrustLineFlags = new(SetTrustLineFlagsOp)
		return b.SetTrustLineFlags.DecodeFrom(d)
	case OpLiquidityPoolDeposit:
		b.LiquidityPoolDeposit = new(LiquidityPoolDepositOp)
		return b.LiquidityPoolDeposit.DecodeFrom(d)
	case OpLiquidityPoolWithdraw:
		b.LiquidityPoolWithdraw = new(LiquidityPoolWithdrawOp)
		return b.LiquidityPoolWithdraw.DecodeFrom(d)
	case OpInvokeHostFunction:
		b.InvokeHostFunction = new(InvokeHostFunctionOp)
		return b.InvokeHostFunction.DecodeFrom(d)
	case OpExtendFootprintTtl:
		b.ExtendFootprintTtl = new(ExtendFootprintTtlOp)
		return b.ExtendFootprintTtl.DecodeFrom(d)
	case OpRestoreFootprint:
		b.RestoreFootprint = new(RestoreFootprintOp)
		return b.RestoreFootprint.DecodeFrom(d)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled OperationType %d", b.Type)
	}
}

// Operation pairs an optional override of the enclosing transaction's
// source account with its body.
type Operation struct {
	SourceAccount *MuxedAccount
	Body          OperationBody
}

func (op Operation) EncodeTo(e *Encoder) error {
	if err := e.EncodeBool(op.SourceAccount != nil); err != nil {
		return err
	}
	if op.SourceAccount != nil {
		if err := op.SourceAccount.EncodeTo(e); err != nil {
			return err
		}
	}
	return op.Body.EncodeTo(e)
}

func (op *Operation) DecodeFrom(d *Decoder) error {
	present, err := d.DecodeBool()
	if err != nil {
		return err
	}
	if present {
		var src MuxedAccount
		if err := src.DecodeFrom(d); err != nil {
			return err
		}
		op.SourceAccount = &src
	}
	return op.Body.DecodeFrom(d)
}
