package xdr

import "github.com/EXCCoin/stellarbase/errs"

// AssetType enumerates the Asset union's discriminants.
type AssetType int32

const (
	AssetTypeNative           AssetType = 0
	AssetTypeCreditAlphanum4  AssetType = 1
	AssetTypeCreditAlphanum12 AssetType = 2
	AssetTypePoolShare        AssetType = 3
)

func (t AssetType) EncodeTo(e *Encoder) error { return e.EncodeInt(int32(t)) }

func (t *AssetType) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	switch AssetType(v) {
	case AssetTypeNative, AssetTypeCreditAlphanum4, AssetTypeCreditAlphanum12, AssetTypePoolShare:
		*t = AssetType(v)
		return nil
	default:
		return errs.New(errs.ErrInvalidXDR, "unknown AssetType tag %d", v)
	}
}

// AssetCode4 is a fixed 4-byte, NUL-padded asset code.
type AssetCode4 [4]byte

func (c AssetCode4) EncodeTo(e *Encoder) error { return e.EncodeFixedOpaque(c[:]) }
func (c *AssetCode4) DecodeFrom(d *Decoder) error {
	b, err := d.DecodeFixedOpaque(4)
	if err != nil {
		return err
	}
	copy(c[:], b)
	return nil
}

// AssetCode12 is a fixed 12-byte, NUL-padded asset code.
type AssetCode12 [12]byte

func (c AssetCode12) EncodeTo(e *Encoder) error { return e.EncodeFixedOpaque(c[:]) }
func (c *AssetCode12) DecodeFrom(d *Decoder) error {
	b, err := d.DecodeFixedOpaque(12)
	if err != nil {
		return err
	}
	copy(c[:], b)
	return nil
}

// AssetAlphaNum4 carries a 1-4 character code plus its issuer.
type AssetAlphaNum4 struct {
	AssetCode AssetCode4
	Issuer    AccountId
}

func (a AssetAlphaNum4) EncodeTo(e *Encoder) error {
	if err := a.AssetCode.EncodeTo(e); err != nil {
		return err
	}
	return a.Issuer.EncodeTo(e)
}

func (a *AssetAlphaNum4) DecodeFrom(d *Decoder) error {
	if err := a.AssetCode.DecodeFrom(d); err != nil {
		return err
	}
	return a.Issuer.DecodeFrom(d)
}

// AssetAlphaNum12 carries a 5-12 character code plus its issuer.
type AssetAlphaNum12 struct {
	AssetCode AssetCode12
	Issuer    AccountId
}

func (a AssetAlphaNum12) EncodeTo(e *Encoder) error {
	if err := a.AssetCode.EncodeTo(e); err != nil {
		return err
	}
	return a.Issuer.EncodeTo(e)
}

func (a *AssetAlphaNum12) DecodeFrom(d *Decoder) error {
	if err := a.AssetCode.DecodeFrom(d); err != nil {
		return err
	}
	return a.Issuer.DecodeFrom(d)
}

// PoolId identifies a liquidity pool by the hash of its canonical
// parameters.
type PoolId Hash

func (p PoolId) EncodeTo(e *Encoder) error  { return Hash(p).EncodeTo(e) }
func (p *PoolId) DecodeFrom(d *Decoder) error { return (*Hash)(p).DecodeFrom(d) }

// Asset is a tagged union over the four asset kinds the network knows
// about: native, the two credit alphanumeric encodings, and pool
// shares. ChangeTrustOp.Line reuses this type, pool-share arm
// included, in place of a separate ChangeTrustAsset type; the
// liquidity-pool deposit and withdraw operations name their pool by
// PoolId directly rather than through this union.
type Asset struct {
	Type            AssetType
	AlphaNum4       *AssetAlphaNum4
	AlphaNum12      *AssetAlphaNum12
	LiquidityPoolId *PoolId
}

func (a Asset) EncodeTo(e *Encoder) error {
	if err := a.Type.EncodeTo(e); err != nil {
		return err
	}
	switch a.Type {
	case AssetTypeNative:
		return nil
	case AssetTypeCreditAlphanum4:
		return a.AlphaNum4.EncodeTo(e)
	case AssetTypeCreditAlphanum12:
		return a.AlphaNum12.EncodeTo(e)
	case AssetTypePoolShare:
		return a.LiquidityPoolId.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled AssetType %d", a.Type)
	}
}

func (a *Asset) DecodeFrom(d *Decoder) error {
	if err := a.Type.DecodeFrom(d); err != nil {
		return err
	}
	switch a.Type {
	case AssetTypeNative:
		return nil
	case AssetTypeCreditAlphanum4:
		var v AssetAlphaNum4
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		a.AlphaNum4 = &v
	case AssetTypeCreditAlphanum12:
		var v AssetAlphaNum12
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		a.AlphaNum12 = &v
	case AssetTypePoolShare:
		var v PoolId
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		a.LiquidityPoolId = &v
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled AssetType %d", a.Type)
	}
	return nil
}

// Price is a reduced numerator/denominator fraction.
type Price struct {
	N Int32
	D Int32
}

func (p Price) EncodeTo(e *Encoder) error {
	if err := p.N.EncodeTo(e); err != nil {
		return err
	}
	return p.D.EncodeTo(e)
}

func (p *Price) DecodeFrom(d *Decoder) error {
	if err := p.N.DecodeFrom(d); err != nil {
		return err
	}
	return p.D.DecodeFrom(d)
}
