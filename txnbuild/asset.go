package txnbuild

import (
	"github.com/EXCCoin/stellarbase/errs"
	"github.com/EXCCoin/stellarbase/strkey"
	"github.com/EXCCoin/stellarbase/xdr"
)

// Asset is a payment/trustline/offer asset: either the native currency
// or a credit asset identified by code and issuer.
type Asset interface {
	ToXDR() (xdr.Asset, error)
	GetCode() string
	GetIssuer() string
	IsNative() bool
}

// NativeAsset is the network's native currency.
type NativeAsset struct{}

func (NativeAsset) ToXDR() (xdr.Asset, error) { return xdr.Asset{Type: xdr.AssetTypeNative}, nil }
func (NativeAsset) GetCode() string           { return "" }
func (NativeAsset) GetIssuer() string         { return "" }
func (NativeAsset) IsNative() bool            { return true }

// CreditAsset is an issued asset identified by a 1-12 character code
// and its issuer's address.
type CreditAsset struct {
	Code   string
	Issuer string
}

func (a CreditAsset) GetCode() string   { return a.Code }
func (a CreditAsset) GetIssuer() string { return a.Issuer }
func (a CreditAsset) IsNative() bool    { return false }

func (a CreditAsset) ToXDR() (xdr.Asset, error) {
	if len(a.Code) == 0 || len(a.Code) > 12 {
		return xdr.Asset{}, errs.New(errs.ErrInvalidAssetCode, "asset code %q must be 1-12 characters", a.Code)
	}
	issuer, err := accountIDFromAddress(a.Issuer)
	if err != nil {
		return xdr.Asset{}, err
	}
	if len(a.Code) <= 4 {
		var code xdr.AssetCode4
		copy(code[:], a.Code)
		return xdr.Asset{Type: xdr.AssetTypeCreditAlphanum4, AlphaNum4: &xdr.AssetAlphaNum4{AssetCode: code, Issuer: issuer}}, nil
	}
	var code xdr.AssetCode12
	copy(code[:], a.Code)
	return xdr.Asset{Type: xdr.AssetTypeCreditAlphanum12, AlphaNum12: &xdr.AssetAlphaNum12{AssetCode: code, Issuer: issuer}}, nil
}

// assetFromXDR reconstructs an idiomatic Asset from its wire form.
func assetFromXDR(x xdr.Asset) (Asset, error) {
	switch x.Type {
	case xdr.AssetTypeNative:
		return NativeAsset{}, nil
	case xdr.AssetTypeCreditAlphanum4:
		issuer, err := addressFromAccountID(x.AlphaNum4.Issuer)
		if err != nil {
			return nil, err
		}
		return CreditAsset{Code: trimCode(x.AlphaNum4.AssetCode[:]), Issuer: issuer}, nil
	case xdr.AssetTypeCreditAlphanum12:
		issuer, err := addressFromAccountID(x.AlphaNum12.Issuer)
		if err != nil {
			return nil, err
		}
		return CreditAsset{Code: trimCode(x.AlphaNum12.AssetCode[:]), Issuer: issuer}, nil
	default:
		return nil, errs.New(errs.ErrInvalidAssetCode, "unsupported asset type %d for this builder", x.Type)
	}
}

func trimCode(b []byte) string {
	i := len(b)
	for i > 0 && b[i-1] == 0 {
		i--
	}
	return string(b[:i])
}

func addressFromAccountID(a xdr.AccountId) (string, error) {
	if a.Ed25519 == nil {
		return "", errs.New(errs.ErrInvalidPublicKey, "account id has no ed25519 key")
	}
	return strkey.EncodeAccountID(a.Ed25519[:])
}
