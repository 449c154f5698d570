package txnbuild

import (
	"github.com/EXCCoin/stellarbase/errs"
	"github.com/EXCCoin/stellarbase/xdr"
)

// Memo is the optional free-form annotation a transaction may carry.
type Memo interface {
	ToXDR() (xdr.Memo, error)
}

// MemoNone carries no memo.
type MemoNone struct{}

func (MemoNone) ToXDR() (xdr.Memo, error) { return xdr.Memo{Type: xdr.MemoTypeNone}, nil }

// MemoText is a free-form UTF-8 string up to 28 bytes.
type MemoText string

func (m MemoText) ToXDR() (xdr.Memo, error) {
	s := string(m)
	if len(s) > 28 {
		return xdr.Memo{}, errs.New(errs.ErrInvalidMemoText, "memo text %q exceeds 28 bytes", s)
	}
	return xdr.Memo{Type: xdr.MemoTypeText, Text: &s}, nil
}

// MemoID is a 64-bit numeric identifier, typically routing a payment
// to a sub-account of a shared destination.
type MemoID uint64

func (m MemoID) ToXDR() (xdr.Memo, error) {
	id := xdr.Uint64(m)
	return xdr.Memo{Type: xdr.MemoTypeId, Id: &id}, nil
}

// MemoHash carries an opaque 32-byte hash, often a content hash of an
// off-chain document.
type MemoHash [32]byte

func (m MemoHash) ToXDR() (xdr.Memo, error) {
	h := xdr.Hash(m)
	return xdr.Memo{Type: xdr.MemoTypeHash, Hash: &h}, nil
}

// MemoReturn carries the hash of the transaction this one is refunding.
type MemoReturn [32]byte

func (m MemoReturn) ToXDR() (xdr.Memo, error) {
	h := xdr.Hash(m)
	return xdr.Memo{Type: xdr.MemoTypeReturn, Return: &h}, nil
}

// memoFromXDR reconstructs an idiomatic Memo from its wire form.
func memoFromXDR(x xdr.Memo) (Memo, error) {
	switch x.Type {
	case xdr.MemoTypeNone:
		return MemoNone{}, nil
	case xdr.MemoTypeText:
		return MemoText(*x.Text), nil
	case xdr.MemoTypeId:
		return MemoID(*x.Id), nil
	case xdr.MemoTypeHash:
		return MemoHash(*x.Hash), nil
	case xdr.MemoTypeReturn:
		return MemoReturn(*x.Return), nil
	default:
		return nil, errs.New(errs.ErrInvalidXDR, "unknown memo type %d", x.Type)
	}
}
