package xdr

import "github.com/EXCCoin/stellarbase/errs"

// MuxedAccountMed25519 is the "med25519" muxed-account arm: a 64-bit
// sub-account id alongside the underlying ed25519 key.
type MuxedAccountMed25519 struct {
	Id      Uint64
	Ed25519 Uint256
}

func (m MuxedAccountMed25519) EncodeTo(e *Encoder) error {
	if err := m.Id.EncodeTo(e); err != nil {
		return err
	}
	return m.Ed25519.EncodeTo(e)
}

func (m *MuxedAccountMed25519) DecodeFrom(d *Decoder) error {
	if err := m.Id.DecodeFrom(d); err != nil {
		return err
	}
	return m.Ed25519.DecodeFrom(d)
}

// MuxedAccount is a tagged union over a plain ed25519 account id and a
// med25519 muxed account carrying a sub-id.
type MuxedAccount struct {
	Type    CryptoKeyType
	Ed25519 *Uint256
	Med25519 *MuxedAccountMed25519
}

func (m MuxedAccount) EncodeTo(e *Encoder) error {
	if err := Int32(m.Type).EncodeTo(e); err != nil {
		return err
	}
	switch m.Type {
	case KeyTypeEd25519:
		return m.Ed25519.EncodeTo(e)
	case KeyTypeMuxedEd25519:
		return m.Med25519.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled MuxedAccount type %d", m.Type)
	}
}

func (m *MuxedAccount) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	m.Type = CryptoKeyType(v)
	switch m.Type {
	case KeyTypeEd25519:
		var u Uint256
		if err := u.DecodeFrom(d); err != nil {
			return err
		}
		m.Ed25519 = &u
	case KeyTypeMuxedEd25519:
		var mm MuxedAccountMed25519
		if err := mm.DecodeFrom(d); err != nil {
			return err
		}
		m.Med25519 = &mm
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled MuxedAccount type %d", m.Type)
	}
	return nil
}

// ToAccountId extracts the plain account id form, dropping any sub-id.
// Used where the wire shape requires an AccountId (e.g. SignerKey-adjacent
// fields, CreateAccount destination).
func (m MuxedAccount) ToAccountId() AccountId {
	switch m.Type {
	case KeyTypeEd25519:
		return AccountId(NewPublicKeyEd25519(*m.Ed25519))
	case KeyTypeMuxedEd25519:
		return AccountId(NewPublicKeyEd25519(m.Med25519.Ed25519))
	default:
		return AccountId{}
	}
}
