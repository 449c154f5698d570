package txnbuild

import (
	"github.com/EXCCoin/stellarbase/errs"
	"github.com/EXCCoin/stellarbase/strkey"
)

type addressKind int

const (
	addressKindUnknown addressKind = iota
	addressKindAccountID
	addressKindMuxedAccount
)

// decodeAnyAddress accepts either a plain 'G...' account address or an
// 'M...' muxed account address, the two shapes a transaction/operation
// source or destination field may take.
func decodeAnyAddress(address string) (addressKind, []byte, error) {
	v, payload, err := strkey.Decode(address)
	if err != nil {
		return addressKindUnknown, nil, err
	}
	switch v {
	case strkey.VersionByteAccountID:
		if len(payload) != 32 {
			return addressKindUnknown, nil, errs.New(errs.ErrInvalidPublicKey, "account id payload must be 32 bytes, got %d", len(payload))
		}
		return addressKindAccountID, payload, nil
	case strkey.VersionByteMuxedAccount:
		if len(payload) != 40 {
			return addressKindUnknown, nil, errs.New(errs.ErrInvalidPublicKey, "muxed account payload must be 40 bytes, got %d", len(payload))
		}
		return addressKindMuxedAccount, payload, nil
	default:
		return addressKindUnknown, nil, errs.New(errs.ErrInvalidStrKey, "not an account address: version byte %d", v)
	}
}
