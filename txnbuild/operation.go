package txnbuild

import (
	"encoding/hex"

	"github.com/EXCCoin/stellarbase/amount"
	"github.com/EXCCoin/stellarbase/errs"
	"github.com/EXCCoin/stellarbase/strkey"
	"github.com/EXCCoin/stellarbase/xdr"
)

// Operation is anything that can appear in a transaction's operation
// list: CreateAccount, Payment, and the rest of the operation builders
// in this package.
type Operation interface {
	BuildXDR() (xdr.OperationBody, error)
	GetSourceAccount() string
}

func optionalSource(address string) (*xdr.MuxedAccount, error) {
	if address == "" {
		return nil, nil
	}
	mux, err := muxedAccountFromAddress(address)
	if err != nil {
		return nil, err
	}
	return &mux, nil
}

func operationFromBuilder(op Operation) (xdr.Operation, error) {
	body, err := op.BuildXDR()
	if err != nil {
		return xdr.Operation{}, err
	}
	src, err := optionalSource(op.GetSourceAccount())
	if err != nil {
		return xdr.Operation{}, err
	}
	return xdr.Operation{SourceAccount: src, Body: body}, nil
}

// CreateAccount funds a new account from the source account's balance.
type CreateAccount struct {
	Destination     string
	Amount          string
	SourceAccount   string
}

func (op *CreateAccount) GetSourceAccount() string { return op.SourceAccount }

func (op *CreateAccount) BuildXDR() (xdr.OperationBody, error) {
	dest, err := accountIDFromAddress(op.Destination)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	stroops, err := amount.Parse(op.Amount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OpCreateAccount,
		CreateAccount: &xdr.CreateAccountOp{
			Destination:     dest,
			StartingBalance: xdr.Int64(stroops),
		},
	}, nil
}

// Payment sends Amount of Asset to Destination.
type Payment struct {
	Destination   string
	Asset         Asset
	Amount        string
	SourceAccount string
}

func (op *Payment) GetSourceAccount() string { return op.SourceAccount }

func (op *Payment) BuildXDR() (xdr.OperationBody, error) {
	dest, err := muxedAccountFromAddress(op.Destination)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	asset, err := op.Asset.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	stroops, err := amount.Parse(op.Amount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OpPayment,
		Payment: &xdr.PaymentOp{
			Destination: dest,
			Asset:       asset,
			Amount:      xdr.Int64(stroops),
		},
	}, nil
}

func buildAssetPath(path []Asset) ([]xdr.Asset, error) {
	out := make([]xdr.Asset, len(path))
	for i, a := range path {
		x, err := a.ToXDR()
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

// PathPaymentStrictReceive sends up to SendMax of SendAsset so that
// Destination receives exactly DestAmount of DestAsset.
type PathPaymentStrictReceive struct {
	SendAsset     Asset
	SendMax       string
	Destination   string
	DestAsset     Asset
	DestAmount    string
	Path          []Asset
	SourceAccount string
}

func (op *PathPaymentStrictReceive) GetSourceAccount() string { return op.SourceAccount }

func (op *PathPaymentStrictReceive) BuildXDR() (xdr.OperationBody, error) {
	send, err := op.SendAsset.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	sendMax, err := amount.Parse(op.SendMax)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	dest, err := muxedAccountFromAddress(op.Destination)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	destAsset, err := op.DestAsset.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	destAmount, err := amount.Parse(op.DestAmount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	path, err := buildAssetPath(op.Path)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OpPathPaymentStrictReceive,
		PathPaymentStrictReceive: &xdr.PathPaymentStrictReceiveOp{
			SendAsset:   send,
			SendMax:     xdr.Int64(sendMax),
			Destination: dest,
			DestAsset:   destAsset,
			DestAmount:  xdr.Int64(destAmount),
			Path:        path,
		},
	}, nil
}

// PathPaymentStrictSend sends exactly SendAmount of SendAsset so that
// Destination receives at least DestMin of DestAsset.
type PathPaymentStrictSend struct {
	SendAsset     Asset
	SendAmount    string
	Destination   string
	DestAsset     Asset
	DestMin       string
	Path          []Asset
	SourceAccount string
}

func (op *PathPaymentStrictSend) GetSourceAccount() string { return op.SourceAccount }

func (op *PathPaymentStrictSend) BuildXDR() (xdr.OperationBody, error) {
	send, err := op.SendAsset.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	sendAmount, err := amount.Parse(op.SendAmount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	dest, err := muxedAccountFromAddress(op.Destination)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	destAsset, err := op.DestAsset.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	destMin, err := amount.Parse(op.DestMin)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	path, err := buildAssetPath(op.Path)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OpPathPaymentStrictSend,
		PathPaymentStrictSend: &xdr.PathPaymentStrictSendOp{
			SendAsset:   send,
			SendAmount:  xdr.Int64(sendAmount),
			Destination: dest,
			DestAsset:   destAsset,
			DestMin:     xdr.Int64(destMin),
			Path:        path,
		},
	}, nil
}

func buildPrice(p amount.Price) xdr.Price {
	return xdr.Price{N: xdr.Int32(p.N), D: xdr.Int32(p.D)}
}

// ManageSellOffer creates, updates (OfferID != 0), or deletes
// (Amount == "0") a sell offer.
type ManageSellOffer struct {
	Selling       Asset
	Buying        Asset
	Amount        string
	Price         amount.Price
	OfferID       int64
	SourceAccount string
}

func (op *ManageSellOffer) GetSourceAccount() string { return op.SourceAccount }

func (op *ManageSellOffer) BuildXDR() (xdr.OperationBody, error) {
	selling, err := op.Selling.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	buying, err := op.Buying.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	stroops, err := amount.Parse(op.Amount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OpManageSellOffer,
		ManageSellOffer: &xdr.ManageSellOfferOp{
			Selling: selling,
			Buying:  buying,
			Amount:  xdr.Int64(stroops),
			Price:   buildPrice(op.Price),
			OfferId: xdr.Int64(op.OfferID),
		},
	}, nil
}

// ManageBuyOffer mirrors ManageSellOffer, quoting BuyAmount of Buying.
type ManageBuyOffer struct {
	Selling       Asset
	Buying        Asset
	BuyAmount     string
	Price         amount.Price
	OfferID       int64
	SourceAccount string
}

func (op *ManageBuyOffer) GetSourceAccount() string { return op.SourceAccount }

func (op *ManageBuyOffer) BuildXDR() (xdr.OperationBody, error) {
	selling, err := op.Selling.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	buying, err := op.Buying.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	stroops, err := amount.Parse(op.BuyAmount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OpManageBuyOffer,
		ManageBuyOffer: &xdr.ManageBuyOfferOp{
			Selling:   selling,
			Buying:    buying,
			BuyAmount: xdr.Int64(stroops),
			Price:     buildPrice(op.Price),
			OfferId:   xdr.Int64(op.OfferID),
		},
	}, nil
}

// CreatePassiveSellOffer is a ManageSellOffer variant that never
// crosses an offer at the same price it was created at.
type CreatePassiveSellOffer struct {
	Selling       Asset
	Buying        Asset
	Amount        string
	Price         amount.Price
	SourceAccount string
}

func (op *CreatePassiveSellOffer) GetSourceAccount() string { return op.SourceAccount }

func (op *CreatePassiveSellOffer) BuildXDR() (xdr.OperationBody, error) {
	selling, err := op.Selling.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	buying, err := op.Buying.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	stroops, err := amount.Parse(op.Amount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OpCreatePassiveSellOffer,
		CreatePassiveSellOffer: &xdr.CreatePassiveSellOfferOp{
			Selling: selling,
			Buying:  buying,
			Amount:  xdr.Int64(stroops),
			Price:   buildPrice(op.Price),
		},
	}, nil
}

// Signer names one additional key to add, update, or remove (Weight
// 0) from the source account's signer list.
type Signer struct {
	Address string
	Weight  uint32
}

func (s Signer) toXDR() (xdr.Signer, error) {
	_, payload, err := decodeAnyAddress(s.Address)
	if err != nil {
		return xdr.Signer{}, err
	}
	var ed xdr.Uint256
	copy(ed[:], payload[:32])
	return xdr.Signer{
		Key:    xdr.SignerKey{Type: xdr.SignerKeyTypeEd25519, Ed25519: &ed},
		Weight: xdr.Uint32(s.Weight),
	}, nil
}

// SetOptions carries every settable account-options field, each
// optional; a nil pointer leaves the corresponding ledger value
// unchanged.
type SetOptions struct {
	InflationDestination *string
	ClearFlags           *uint32
	SetFlags             *uint32
	MasterWeight         *uint32
	LowThreshold         *uint32
	MedThreshold         *uint32
	HighThreshold        *uint32
	HomeDomain           *string
	Signer               *Signer
	SourceAccount        string
}

func (op *SetOptions) GetSourceAccount() string { return op.SourceAccount }

func uint32Ptr(v *uint32) *xdr.Uint32 {
	if v == nil {
		return nil
	}
	x := xdr.Uint32(*v)
	return &x
}

func (op *SetOptions) BuildXDR() (xdr.OperationBody, error) {
	body := &xdr.SetOptionsOp{
		ClearFlags:    uint32Ptr(op.ClearFlags),
		SetFlags:      uint32Ptr(op.SetFlags),
		MasterWeight:  uint32Ptr(op.MasterWeight),
		LowThreshold:  uint32Ptr(op.LowThreshold),
		MedThreshold:  uint32Ptr(op.MedThreshold),
		HighThreshold: uint32Ptr(op.HighThreshold),
		HomeDomain:    op.HomeDomain,
	}
	if op.HomeDomain != nil && len(*op.HomeDomain) > 32 {
		return xdr.OperationBody{}, errs.New(errs.ErrHomeDomainTooLong, "home domain %q exceeds 32 bytes", *op.HomeDomain)
	}
	if op.InflationDestination != nil {
		dest, err := accountIDFromAddress(*op.InflationDestination)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		body.InflationDest = &dest
	}
	if op.Signer != nil {
		s, err := op.Signer.toXDR()
		if err != nil {
			return xdr.OperationBody{}, err
		}
		body.Signer = &s
	}
	return xdr.OperationBody{Type: xdr.OpSetOptions, SetOptions: body}, nil
}

// ChangeTrust establishes, updates, or removes (Limit == "0") a
// trustline to Line.
type ChangeTrust struct {
	Line          Asset
	Limit         string
	SourceAccount string
}

func (op *ChangeTrust) GetSourceAccount() string { return op.SourceAccount }

func (op *ChangeTrust) BuildXDR() (xdr.OperationBody, error) {
	line, err := op.Line.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	limit := op.Limit
	if limit == "" {
		limit = amount.String(amount.MaxStroops)
	}
	stroops, err := amount.Parse(limit)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type:        xdr.OpChangeTrust,
		ChangeTrust: &xdr.ChangeTrustOp{Line: line, Limit: xdr.Int64(stroops)},
	}, nil
}

// AllowTrust authorizes or deauthorizes Trustor's trustline in a
// credit asset identified by code alone (the issuer is the operation's
// source account). Authorize carries the CAP-0030 trust-line flag
// bitmask rather than a plain bool.
type AllowTrust struct {
	Trustor       string
	AssetCode     string
	Authorize     uint32
	SourceAccount string
}

func (op *AllowTrust) GetSourceAccount() string { return op.SourceAccount }

func (op *AllowTrust) BuildXDR() (xdr.OperationBody, error) {
	trustor, err := accountIDFromAddress(op.Trustor)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	if len(op.AssetCode) == 0 || len(op.AssetCode) > 12 {
		return xdr.OperationBody{}, errs.New(errs.ErrInvalidAssetCode, "asset code %q must be 1-12 characters", op.AssetCode)
	}
	var a xdr.AllowTrustAsset
	if len(op.AssetCode) <= 4 {
		var c xdr.AssetCode4
		copy(c[:], op.AssetCode)
		a = xdr.AllowTrustAsset{Type: xdr.AssetTypeCreditAlphanum4, Code4: &c}
	} else {
		var c xdr.AssetCode12
		copy(c[:], op.AssetCode)
		a = xdr.AllowTrustAsset{Type: xdr.AssetTypeCreditAlphanum12, Code12: &c}
	}
	return xdr.OperationBody{
		Type: xdr.OpAllowTrust,
		AllowTrust: &xdr.AllowTrustOp{
			Trustor:   trustor,
			Asset:     a,
			Authorize: xdr.Uint32(op.Authorize),
		},
	}, nil
}

// AccountMerge transfers the source account's remaining balance to
// Destination and deletes the source account.
type AccountMerge struct {
	Destination   string
	SourceAccount string
}

func (op *AccountMerge) GetSourceAccount() string { return op.SourceAccount }

func (op *AccountMerge) BuildXDR() (xdr.OperationBody, error) {
	dest, err := muxedAccountFromAddress(op.Destination)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{Type: xdr.OpAccountMerge, AccountMerge: &dest}, nil
}

// Inflation requests the (legacy, now inert on most networks)
// inflation vote.
type Inflation struct {
	SourceAccount string
}

func (op *Inflation) GetSourceAccount() string { return op.SourceAccount }
func (op *Inflation) BuildXDR() (xdr.OperationBody, error) {
	return xdr.OperationBody{Type: xdr.OpInflation}, nil
}

// ManageData sets (Value != nil) or clears a named data entry on the
// source account.
type ManageData struct {
	Name          string
	Value         []byte
	SourceAccount string
}

func (op *ManageData) GetSourceAccount() string { return op.SourceAccount }

func (op *ManageData) BuildXDR() (xdr.OperationBody, error) {
	if len(op.Name) > 64 {
		return xdr.OperationBody{}, errs.New(errs.ErrInvalidOperation, "data name %q exceeds 64 bytes", op.Name)
	}
	return xdr.OperationBody{
		Type:       xdr.OpManageData,
		ManageData: &xdr.ManageDataOp{DataName: op.Name, DataValue: op.Value},
	}, nil
}

// BumpSequence advances the source account's sequence number to BumpTo
// without consuming any other action.
type BumpSequence struct {
	BumpTo        int64
	SourceAccount string
}

func (op *BumpSequence) GetSourceAccount() string { return op.SourceAccount }
func (op *BumpSequence) BuildXDR() (xdr.OperationBody, error) {
	return xdr.OperationBody{
		Type:         xdr.OpBumpSequence,
		BumpSequence: &xdr.BumpSequenceOp{BumpTo: xdr.SequenceNumber(op.BumpTo)},
	}, nil
}

// Claimant names a destination and the predicate gating its claim of
// a CreateClaimableBalance escrow. A nil Predicate means unconditional.
type Claimant struct {
	Destination string
	Predicate   *xdr.ClaimPredicate
}

func (c Claimant) toXDR() (xdr.Claimant, error) {
	dest, err := accountIDFromAddress(c.Destination)
	if err != nil {
		return xdr.Claimant{}, err
	}
	pred := xdr.ClaimPredicate{Type: xdr.ClaimPredicateUnconditional}
	if c.Predicate != nil {
		pred = *c.Predicate
	}
	return xdr.Claimant{Type: xdr.ClaimantTypeV0, V0: &xdr.ClaimantV0{Destination: dest, Predicate: pred}}, nil
}

// CreateClaimableBalance escrows Amount of Asset, releasable to
// whichever Claimants' predicate is satisfied first.
type CreateClaimableBalance struct {
	Asset         Asset
	Amount        string
	Claimants     []Claimant
	SourceAccount string
}

func (op *CreateClaimableBalance) GetSourceAccount() string { return op.SourceAccount }

func (op *CreateClaimableBalance) BuildXDR() (xdr.OperationBody, error) {
	asset, err := op.Asset.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	stroops, err := amount.Parse(op.Amount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	claimants := make([]xdr.Claimant, len(op.Claimants))
	for i, c := range op.Claimants {
		x, err := c.toXDR()
		if err != nil {
			return xdr.OperationBody{}, err
		}
		claimants[i] = x
	}
	return xdr.OperationBody{
		Type: xdr.OpCreateClaimableBalance,
		CreateClaimableBalance: &xdr.CreateClaimableBalanceOp{
			Asset:     asset,
			Amount:    xdr.Int64(stroops),
			Claimants: claimants,
		},
	}, nil
}

func balanceIDFromHex(hexID string) (xdr.ClaimableBalanceId, error) {
	raw, err := hex.DecodeString(hexID)
	if err != nil {
		return xdr.ClaimableBalanceId{}, errs.New(errs.ErrInvalidXDR, "invalid claimable balance id %q: %v", hexID, err)
	}
	if len(raw) != 36 {
		return xdr.ClaimableBalanceId{}, errs.New(errs.ErrInvalidXDR, "claimable balance id must decode to 36 bytes (type+hash), got %d", len(raw))
	}
	var h xdr.Hash
	copy(h[:], raw[4:])
	return xdr.ClaimableBalanceId{Type: xdr.ClaimableBalanceIdTypeV0, V0: &h}, nil
}

func balanceIDToHex(id xdr.ClaimableBalanceId) string {
	out := make([]byte, 4+len(id.V0))
	copy(out[4:], id.V0[:])
	return hex.EncodeToString(out)
}

// ClaimClaimableBalance claims a pending balance (hex-encoded
// ClaimableBalanceId) on behalf of the source account.
type ClaimClaimableBalance struct {
	BalanceID     string
	SourceAccount string
}

func (op *ClaimClaimableBalance) GetSourceAccount() string { return op.SourceAccount }

func (op *ClaimClaimableBalance) BuildXDR() (xdr.OperationBody, error) {
	id, err := balanceIDFromHex(op.BalanceID)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type:                  xdr.OpClaimClaimableBalance,
		ClaimClaimableBalance: &xdr.ClaimClaimableBalanceOp{BalanceId: id},
	}, nil
}

// ClawbackClaimableBalance pulls back a not-yet-claimed balance.
type ClawbackClaimableBalance struct {
	BalanceID     string
	SourceAccount string
}

func (op *ClawbackClaimableBalance) GetSourceAccount() string { return op.SourceAccount }

func (op *ClawbackClaimableBalance) BuildXDR() (xdr.OperationBody, error) {
	id, err := balanceIDFromHex(op.BalanceID)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type:                     xdr.OpClawbackClaimableBalance,
		ClawbackClaimableBalance: &xdr.ClawbackClaimableBalanceOp{BalanceId: id},
	}, nil
}

// BeginSponsoringFutureReserves makes the source account pay the base
// reserve for every ledger entry SponsoredID creates, until a matching
// EndSponsoringFutureReserves appears later in the same transaction.
type BeginSponsoringFutureReserves struct {
	SponsoredID   string
	SourceAccount string
}

func (op *BeginSponsoringFutureReserves) GetSourceAccount() string { return op.SourceAccount }

func (op *BeginSponsoringFutureReserves) BuildXDR() (xdr.OperationBody, error) {
	id, err := accountIDFromAddress(op.SponsoredID)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type:                          xdr.OpBeginSponsoringFutureReserves,
		BeginSponsoringFutureReserves: &xdr.BeginSponsoringFutureReservesOp{SponsoredId: id},
	}, nil
}

// EndSponsoringFutureReserves closes out the sponsorship opened by a
// preceding BeginSponsoringFutureReserves in the same transaction.
type EndSponsoringFutureReserves struct {
	SourceAccount string
}

func (op *EndSponsoringFutureReserves) GetSourceAccount() string { return op.SourceAccount }
func (op *EndSponsoringFutureReserves) BuildXDR() (xdr.OperationBody, error) {
	return xdr.OperationBody{Type: xdr.OpEndSponsoringFutureReserves}, nil
}

// RevokeSponsorshipLedgerEntry hands off sponsorship of one ledger
// entry, identified by its pre-built LedgerKey.
type RevokeSponsorshipLedgerEntry struct {
	LedgerKey     xdr.LedgerKey
	SourceAccount string
}

func (op *RevokeSponsorshipLedgerEntry) GetSourceAccount() string { return op.SourceAccount }

func (op *RevokeSponsorshipLedgerEntry) BuildXDR() (xdr.OperationBody, error) {
	return xdr.OperationBody{
		Type: xdr.OpRevokeSponsorship,
		RevokeSponsorship: &xdr.RevokeSponsorshipOp{
			Type:      xdr.RevokeSponsorshipLedgerEntry,
			LedgerKey: &op.LedgerKey,
		},
	}, nil
}

// RevokeSponsorshipSigner hands off sponsorship of one account signer.
type RevokeSponsorshipSigner struct {
	AccountID     string
	SignerKey     xdr.SignerKey
	SourceAccount string
}

func (op *RevokeSponsorshipSigner) GetSourceAccount() string { return op.SourceAccount }

func (op *RevokeSponsorshipSigner) BuildXDR() (xdr.OperationBody, error) {
	account, err := accountIDFromAddress(op.AccountID)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OpRevokeSponsorship,
		RevokeSponsorship: &xdr.RevokeSponsorshipOp{
			Type:   xdr.RevokeSponsorshipSigner,
			Signer: &xdr.RevokeSponsorshipSignerKey{AccountId: account, SignerKey: op.SignerKey},
		},
	}, nil
}

// Clawback pulls Amount of Asset back from From into the issuer.
type Clawback struct {
	Asset         Asset
	From          string
	Amount        string
	SourceAccount string
}

func (op *Clawback) GetSourceAccount() string { return op.SourceAccount }

func (op *Clawback) BuildXDR() (xdr.OperationBody, error) {
	asset, err := op.Asset.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	from, err := muxedAccountFromAddress(op.From)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	stroops, err := amount.Parse(op.Amount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type:     xdr.OpClawback,
		Clawback: &xdr.ClawbackOp{Asset: asset, From: from, Amount: xdr.Int64(stroops)},
	}, nil
}

// SetTrustLineFlags sets and clears TrustLineFlags bits on Trustor's
// trustline in Asset.
type SetTrustLineFlags struct {
	Trustor       string
	Asset         Asset
	ClearFlags    uint32
	SetFlags      uint32
	SourceAccount string
}

func (op *SetTrustLineFlags) GetSourceAccount() string { return op.SourceAccount }

func (op *SetTrustLineFlags) BuildXDR() (xdr.OperationBody, error) {
	trustor, err := accountIDFromAddress(op.Trustor)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	asset, err := op.Asset.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OpSetTrustLineFlags,
		SetTrustLineFlags: &xdr.SetTrustLineFlagsOp{
			Trustor:    trustor,
			Asset:      asset,
			ClearFlags: xdr.Uint32(op.ClearFlags),
			SetFlags:   xdr.Uint32(op.SetFlags),
		},
	}, nil
}

// LiquidityPoolDeposit deposits up to MaxAmountA/MaxAmountB into a
// pool, bounded by an acceptable A/B price range.
type LiquidityPoolDeposit struct {
	LiquidityPoolID xdr.PoolId
	MaxAmountA      string
	MaxAmountB      string
	MinPrice        amount.Price
	MaxPrice        amount.Price
	SourceAccount   string
}

func (op *LiquidityPoolDeposit) GetSourceAccount() string { return op.SourceAccount }

func (op *LiquidityPoolDeposit) BuildXDR() (xdr.OperationBody, error) {
	maxA, err := amount.Parse(op.MaxAmountA)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	maxB, err := amount.Parse(op.MaxAmountB)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OpLiquidityPoolDeposit,
		LiquidityPoolDeposit: &xdr.LiquidityPoolDepositOp{
			LiquidityPoolId: op.LiquidityPoolID,
			MaxAmountA:      xdr.Int64(maxA),
			MaxAmountB:      xdr.Int64(maxB),
			MinPrice:        buildPrice(op.MinPrice),
			MaxPrice:        buildPrice(op.MaxPrice),
		},
	}, nil
}

// LiquidityPoolWithdraw redeems Amount of pool shares for at least
// MinAmountA/MinAmountB of the underlying reserves.
type LiquidityPoolWithdraw struct {
	LiquidityPoolID xdr.PoolId
	Amount          string
	MinAmountA      string
	MinAmountB      string
	SourceAccount   string
}

func (op *LiquidityPoolWithdraw) GetSourceAccount() string { return op.SourceAccount }

func (op *LiquidityPoolWithdraw) BuildXDR() (xdr.OperationBody, error) {
	stroops, err := amount.Parse(op.Amount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	minA, err := amount.Parse(op.MinAmountA)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	minB, err := amount.Parse(op.MinAmountB)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OpLiquidityPoolWithdraw,
		LiquidityPoolWithdraw: &xdr.LiquidityPoolWithdrawOp{
			LiquidityPoolId: op.LiquidityPoolID,
			Amount:          xdr.Int64(stroops),
			MinAmountA:      xdr.Int64(minA),
			MinAmountB:      xdr.Int64(minB),
		},
	}, nil
}

// InvokeHostFunction invokes, uploads, or creates a Soroban contract
// under the authorization entries in Auth.
type InvokeHostFunction struct {
	HostFunction  xdr.HostFunction
	Auth          []xdr.SorobanAuthorizationEntry
	SourceAccount string
}

func (op *InvokeHostFunction) GetSourceAccount() string { return op.SourceAccount }

func (op *InvokeHostFunction) BuildXDR() (xdr.OperationBody, error) {
	return xdr.OperationBody{
		Type: xdr.OpInvokeHostFunction,
		InvokeHostFunction: &xdr.InvokeHostFunctionOp{
			HostFunction: op.HostFunction,
			Auth:         op.Auth,
		},
	}, nil
}

// ExtendFootprintTtl extends the time-to-live of the transaction's
// read-only footprint entries to ExtendTo ledgers from the current one.
type ExtendFootprintTtl struct {
	ExtendTo      uint32
	SourceAccount string
}

func (op *ExtendFootprintTtl) GetSourceAccount() string { return op.SourceAccount }

func (op *ExtendFootprintTtl) BuildXDR() (xdr.OperationBody, error) {
	return xdr.OperationBody{
		Type:               xdr.OpExtendFootprintTtl,
		ExtendFootprintTtl: &xdr.ExtendFootprintTtlOp{ExtendTo: xdr.Uint32(op.ExtendTo)},
	}, nil
}

// RestoreFootprint restores archived entries named in the
// transaction's footprint.
type RestoreFootprint struct {
	SourceAccount string
}

func (op *RestoreFootprint) GetSourceAccount() string { return op.SourceAccount }
func (op *RestoreFootprint) BuildXDR() (xdr.OperationBody, error) {
	return xdr.OperationBody{Type: xdr.OpRestoreFootprint, RestoreFootprint: &xdr.RestoreFootprintOp{}}, nil
}

// operationFromXDR builds the idiomatic Operation wrapper a
// TransactionFromXDR caller receives back; for the common kinds it
// resolves to a typed builder populated from the wire form, and for
// the remainder falls back to RawOperation, which still round-trips.
func operationFromXDR(x xdr.Operation) (Operation, error) {
	var source string
	if x.SourceAccount != nil {
		addr, err := addressFromMuxedAccount(*x.SourceAccount)
		if err != nil {
			return nil, err
		}
		source = addr
	}
	switch x.Body.Type {
	case xdr.OpCreateAccount:
		dest, err := addressFromAccountID(x.Body.CreateAccount.Destination)
		if err != nil {
			return nil, err
		}
		return &CreateAccount{
			Destination:   dest,
			Amount:        amount.String(int64(x.Body.CreateAccount.StartingBalance)),
			SourceAccount: source,
		}, nil
	case xdr.OpPayment:
		dest, err := addressFromMuxedAccount(x.Body.Payment.Destination)
		if err != nil {
			return nil, err
		}
		asset, err := assetFromXDR(x.Body.Payment.Asset)
		if err != nil {
			return nil, err
		}
		return &Payment{
			Destination:   dest,
			Asset:         asset,
			Amount:        amount.String(int64(x.Body.Payment.Amount)),
			SourceAccount: source,
		}, nil
	case xdr.OpBumpSequence:
		return &BumpSequence{BumpTo: int64(x.Body.BumpSequence.BumpTo), SourceAccount: source}, nil
	case xdr.OpManageData:
		return &ManageData{Name: x.Body.ManageData.DataName, Value: x.Body.ManageData.DataValue, SourceAccount: source}, nil
	case xdr.OpAccountMerge:
		dest, err := addressFromMuxedAccount(*x.Body.AccountMerge)
		if err != nil {
			return nil, err
		}
		return &AccountMerge{Destination: dest, SourceAccount: source}, nil
	case xdr.OpInflation:
		return &Inflation{SourceAccount: source}, nil
	case xdr.OpEndSponsoringFutureReserves:
		return &EndSponsoringFutureReserves{SourceAccount: source}, nil
	default:
		return &RawOperation{Type: x.Body.Type, Body: x.Body, SourceAccount: source}, nil
	}
}

// RawOperation carries an already-built xdr.OperationBody verbatim,
// for operation kinds this package does not expose a dedicated
// builder for (or when decoding one from the wire).
type RawOperation struct {
	Type          xdr.OperationType
	Body          xdr.OperationBody
	SourceAccount string
}

func (op *RawOperation) GetSourceAccount() string              { return op.SourceAccount }
func (op *RawOperation) BuildXDR() (xdr.OperationBody, error) { return op.Body, nil }

func addressFromMuxedAccount(m xdr.MuxedAccount) (string, error) {
	switch m.Type {
	case xdr.KeyTypeEd25519:
		return strkey.EncodeAccountID(m.Ed25519[:])
	case xdr.KeyTypeMuxedEd25519:
		return strkey.EncodeMuxedAccount(m.Med25519.Ed25519[:], uint64(m.Med25519.Id))
	default:
		return "", errs.New(errs.ErrInvalidPublicKey, "unhandled MuxedAccount type %d", m.Type)
	}
}
