package txnbuild

import (
	"github.com/EXCCoin/stellarbase/errs"
	"github.com/EXCCoin/stellarbase/xdr"
)

// Account is anything that can stand in for a transaction's source
// account: an address plus the sequence number the network has
// recorded for it. Callers typically populate this from an indexer
// account-lookup response.
type Account interface {
	GetAccountID() string
	IncrementSequenceNumber() (int64, error)
}

// SimpleAccount is the straightforward Account implementation: an
// address and a sequence number the caller tracks itself.
type SimpleAccount struct {
	AccountID string
	Sequence  int64
}

// NewSimpleAccount builds a SimpleAccount from an address and its
// last known sequence number.
func NewSimpleAccount(accountID string, sequence int64) SimpleAccount {
	return SimpleAccount{AccountID: accountID, Sequence: sequence}
}

func (a *SimpleAccount) GetAccountID() string { return a.AccountID }

// IncrementSequenceNumber returns the next sequence number a
// transaction built from this account should use, and advances the
// local counter to match.
func (a *SimpleAccount) IncrementSequenceNumber() (int64, error) {
	a.Sequence++
	return a.Sequence, nil
}

func muxedAccountFromAddress(address string) (xdr.MuxedAccount, error) {
	kind, payload, err := decodeAnyAddress(address)
	if err != nil {
		return xdr.MuxedAccount{}, err
	}
	switch kind {
	case addressKindAccountID:
		var raw xdr.Uint256
		copy(raw[:], payload)
		return xdr.MuxedAccount{Type: xdr.KeyTypeEd25519, Ed25519: &raw}, nil
	case addressKindMuxedAccount:
		ed, id := payload[:32], payload[32:]
		var raw xdr.Uint256
		copy(raw[:], ed)
		var sub uint64
		for _, b := range id {
			sub = sub<<8 | uint64(b)
		}
		return xdr.MuxedAccount{
			Type: xdr.KeyTypeMuxedEd25519,
			Med25519: &xdr.MuxedAccountMed25519{
				Id:      xdr.Uint64(sub),
				Ed25519: raw,
			},
		}, nil
	default:
		return xdr.MuxedAccount{}, errs.New(errs.ErrInvalidPublicKey, "%q is not an account address or muxed account address", address)
	}
}

func accountIDFromAddress(address string) (xdr.AccountId, error) {
	mux, err := muxedAccountFromAddress(address)
	if err != nil {
		return xdr.AccountId{}, err
	}
	return mux.ToAccountId(), nil
}
