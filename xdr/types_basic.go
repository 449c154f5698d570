package xdr

import "github.com/EXCCoin/stellarbase/errs"

// Hash is a fixed 32-byte opaque value (ledger hash, tx hash, asset
// pool id, pre-auth-tx id, hash-x, ...).
type Hash [32]byte

func (h Hash) EncodeTo(e *Encoder) error { return e.EncodeFixedOpaque(h[:]) }

func (h *Hash) DecodeFrom(d *Decoder) error {
	b, err := d.DecodeFixedOpaque(32)
	if err != nil {
		return err
	}
	copy(h[:], b)
	return nil
}

// Uint256 is a fixed 32-byte opaque value, used for ed25519 public keys.
type Uint256 [32]byte

func (u Uint256) EncodeTo(e *Encoder) error { return e.EncodeFixedOpaque(u[:]) }

func (u *Uint256) DecodeFrom(d *Decoder) error {
	b, err := d.DecodeFixedOpaque(32)
	if err != nil {
		return err
	}
	copy(u[:], b)
	return nil
}

// Int32, Uint32, Int64, Uint64, TimePoint, Duration and SequenceNumber
// are aliases over the scalar wire types; they exist as named types
// (rather than bare int32/uint32/...) purely to document wire intent,
// matching how the generated types of the source protocol definition
// name every scalar.
type (
	Int32          int32
	Uint32         uint32
	Int64          int64
	Uint64         uint64
	TimePoint      Uint64
	Duration       Uint64
	SequenceNumber Int64
)

func (v Int32) EncodeTo(e *Encoder) error  { return e.EncodeInt(int32(v)) }
func (v Uint32) EncodeTo(e *Encoder) error { return e.EncodeUint(uint32(v)) }
func (v Int64) EncodeTo(e *Encoder) error  { return e.EncodeInt64(int64(v)) }
func (v Uint64) EncodeTo(e *Encoder) error { return e.EncodeUint64(uint64(v)) }

func (v *Int32) DecodeFrom(d *Decoder) error {
	x, err := d.DecodeInt()
	*v = Int32(x)
	return err
}

func (v *Uint32) DecodeFrom(d *Decoder) error {
	x, err := d.DecodeUint()
	*v = Uint32(x)
	return err
}

func (v *Int64) DecodeFrom(d *Decoder) error {
	x, err := d.DecodeInt64()
	*v = Int64(x)
	return err
}

func (v *Uint64) DecodeFrom(d *Decoder) error {
	x, err := d.DecodeUint64()
	*v = Uint64(x)
	return err
}

// CryptoKeyType enumerates every signer-routing key kind, including the
// muxed-account variant that is not itself a SignerKey case.
type CryptoKeyType int32

const (
	KeyTypeEd25519             CryptoKeyType = 0
	KeyTypePreAuthTx           CryptoKeyType = 1
	KeyTypeHashX               CryptoKeyType = 2
	KeyTypeEd25519SignedPayload CryptoKeyType = 3
	KeyTypeMuxedEd25519        CryptoKeyType = 0x100
)

// PublicKeyType enumerates the PublicKey union's discriminants. Only
// ed25519 exists on the network today.
type PublicKeyType int32

const PublicKeyTypeEd25519 PublicKeyType = 0

func (t PublicKeyType) EncodeTo(e *Encoder) error { return e.EncodeInt(int32(t)) }

func (t *PublicKeyType) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	switch PublicKeyType(v) {
	case PublicKeyTypeEd25519:
		*t = PublicKeyType(v)
		return nil
	default:
		return errs.New(errs.ErrInvalidXDR, "unknown PublicKeyType tag %d", v)
	}
}

// PublicKey is a tagged union over the supported public key kinds.
type PublicKey struct {
	Type    PublicKeyType
	Ed25519 *Uint256
}

func NewPublicKeyEd25519(raw Uint256) PublicKey {
	return PublicKey{Type: PublicKeyTypeEd25519, Ed25519: &raw}
}

func (k PublicKey) EncodeTo(e *Encoder) error {
	if err := k.Type.EncodeTo(e); err != nil {
		return err
	}
	switch k.Type {
	case PublicKeyTypeEd25519:
		return k.Ed25519.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled PublicKeyType %d", k.Type)
	}
}

func (k *PublicKey) DecodeFrom(d *Decoder) error {
	if err := k.Type.DecodeFrom(d); err != nil {
		return err
	}
	switch k.Type {
	case PublicKeyTypeEd25519:
		var u Uint256
		if err := u.DecodeFrom(d); err != nil {
			return err
		}
		k.Ed25519 = &u
		return nil
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled PublicKeyType %d", k.Type)
	}
}

// AccountId is a PublicKey used in the account-identifier role.
type AccountId PublicKey

func (a AccountId) EncodeTo(e *Encoder) error { return PublicKey(a).EncodeTo(e) }
func (a *AccountId) DecodeFrom(d *Decoder) error {
	return (*PublicKey)(a).DecodeFrom(d)
}

// SignerKeyType enumerates the SignerKey union's discriminants.
type SignerKeyType int32

const (
	SignerKeyTypeEd25519             SignerKeyType = 0
	SignerKeyTypePreAuthTx           SignerKeyType = 1
	SignerKeyTypeHashX               SignerKeyType = 2
	SignerKeyTypeEd25519SignedPayload SignerKeyType = 3
)

func (t SignerKeyType) EncodeTo(e *Encoder) error { return e.EncodeInt(int32(t)) }

func (t *SignerKeyType) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	switch SignerKeyType(v) {
	case SignerKeyTypeEd25519, SignerKeyTypePreAuthTx, SignerKeyTypeHashX, SignerKeyTypeEd25519SignedPayload:
		*t = SignerKeyType(v)
		return nil
	default:
		return errs.New(errs.ErrInvalidXDR, "unknown SignerKeyType tag %d", v)
	}
}

// SignerKeyEd25519SignedPayload is the signed-payload signer key arm:
// an ed25519 public key plus a bounded payload.
type SignerKeyEd25519SignedPayload struct {
	Ed25519 Uint256
	Payload []byte // var opaque<64>
}

func (s SignerKeyEd25519SignedPayload) EncodeTo(e *Encoder) error {
	if err := s.Ed25519.EncodeTo(e); err != nil {
		return err
	}
	return e.EncodeVarOpaque(s.Payload, 64)
}

func (s *SignerKeyEd25519SignedPayload) DecodeFrom(d *Decoder) error {
	if err := s.Ed25519.DecodeFrom(d); err != nil {
		return err
	}
	b, err := d.DecodeVarOpaque(64)
	if err != nil {
		return err
	}
	s.Payload = b
	return nil
}

// SignerKey is a tagged union identifying a transaction signer.
type SignerKey struct {
	Type             SignerKeyType
	Ed25519          *Uint256
	PreAuthTx        *Hash
	HashX            *Hash
	Ed25519SignedPayload *SignerKeyEd25519SignedPayload
}

func (k SignerKey) EncodeTo(e *Encoder) error {
	if err := k.Type.EncodeTo(e); err != nil {
		return err
	}
	switch k.Type {
	case SignerKeyTypeEd25519:
		return k.Ed25519.EncodeTo(e)
	case SignerKeyTypePreAuthTx:
		return k.PreAuthTx.EncodeTo(e)
	case SignerKeyTypeHashX:
		return k.HashX.EncodeTo(e)
	case SignerKeyTypeEd25519SignedPayload:
		return k.Ed25519SignedPayload.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled SignerKeyType %d", k.Type)
	}
}

func (k *SignerKey) DecodeFrom(d *Decoder) error {
	if err := k.Type.DecodeFrom(d); err != nil {
		return err
	}
	switch k.Type {
	case SignerKeyTypeEd25519:
		var u Uint256
		if err := u.DecodeFrom(d); err != nil {
			return err
		}
		k.Ed25519 = &u
	case SignerKeyTypePreAuthTx:
		var h Hash
		if err := h.DecodeFrom(d); err != nil {
			return err
		}
		k.PreAuthTx = &h
	case SignerKeyTypeHashX:
		var h Hash
		if err := h.DecodeFrom(d); err != nil {
			return err
		}
		k.HashX = &h
	case SignerKeyTypeEd25519SignedPayload:
		var p SignerKeyEd25519SignedPayload
		if err := p.DecodeFrom(d); err != nil {
			return err
		}
		k.Ed25519SignedPayload = &p
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled SignerKeyType %d", k.Type)
	}
	return nil
}

// Signer pairs a SignerKey with its weight (1..255, carried in a u32).
type Signer struct {
	Key    SignerKey
	Weight Uint32
}

func (s Signer) EncodeTo(e *Encoder) error {
	if err := s.Key.EncodeTo(e); err != nil {
		return err
	}
	return s.Weight.EncodeTo(e)
}

func (s *Signer) DecodeFrom(d *Decoder) error {
	if err := s.Key.DecodeFrom(d); err != nil {
		return err
	}
	return s.Weight.DecodeFrom(d)
}

// ThresholdIndexes names the four threshold slots of an account entry.
type ThresholdIndexes int32

const (
	ThresholdMasterWeight ThresholdIndexes = 0
	ThresholdLow          ThresholdIndexes = 1
	ThresholdMed          ThresholdIndexes = 2
	ThresholdHigh         ThresholdIndexes = 3
)

// AccountFlags are the bit flags settable via SetOptions/AllowTrust.
type AccountFlags uint32

const (
	AuthRequiredFlag    AccountFlags = 0x1
	AuthRevocableFlag   AccountFlags = 0x2
	AuthImmutableFlag   AccountFlags = 0x4
	AuthClawbackEnabledFlag AccountFlags = 0x8
)

// TrustLineFlags are the bit flags settable via SetTrustLineFlags.
type TrustLineFlags uint32

const (
	AuthorizedFlag                     TrustLineFlags = 1
	AuthorizedToMaintainLiabilitiesFlag TrustLineFlags = 2
	TrustLineClawbackEnabledFlag       TrustLineFlags = 4
)
