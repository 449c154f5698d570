package xdr

import "github.com/EXCCoin/stellarbase/errs"

// MemoType enumerates the Memo union's discriminants.
type MemoType int32

const (
	MemoTypeNone   MemoType = 0
	MemoTypeText   MemoType = 1
	MemoTypeId     MemoType = 2
	MemoTypeHash   MemoType = 3
	MemoTypeReturn MemoType = 4
)

func (t MemoType) EncodeTo(e *Encoder) error { return e.EncodeInt(int32(t)) }

func (t *MemoType) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	switch MemoType(v) {
	case MemoTypeNone, MemoTypeText, MemoTypeId, MemoTypeHash, MemoTypeReturn:
		*t = MemoType(v)
		return nil
	default:
		return errs.New(errs.ErrInvalidXDR, "unknown MemoType tag %d", v)
	}
}

const maxMemoTextLen = 28

// Memo is a tagged union over the five memo kinds a transaction may
// carry.
type Memo struct {
	Type   MemoType
	Text   *string
	Id     *Uint64
	Hash   *Hash
	Return *Hash
}

func (m Memo) EncodeTo(e *Encoder) error {
	if err := m.Type.EncodeTo(e); err != nil {
		return err
	}
	switch m.Type {
	case MemoTypeNone:
		return nil
	case MemoTypeText:
		return e.EncodeString(*m.Text, maxMemoTextLen)
	case MemoTypeId:
		return m.Id.EncodeTo(e)
	case MemoTypeHash:
		return m.Hash.EncodeTo(e)
	case MemoTypeReturn:
		return m.Return.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled MemoType %d", m.Type)
	}
}

func (m *Memo) DecodeFrom(d *Decoder) error {
	if err := m.Type.DecodeFrom(d); err != nil {
		return err
	}
	switch m.Type {
	case MemoTypeNone:
		return nil
	case MemoTypeText:
		s, err := d.DecodeString(maxMemoTextLen)
		if err != nil {
			return err
		}
		m.Text = &s
	case MemoTypeId:
		var v Uint64
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		m.Id = &v
	case MemoTypeHash:
		var h Hash
		if err := h.DecodeFrom(d); err != nil {
			return err
		}
		m.Hash = &h
	case MemoTypeReturn:
		var h Hash
		if err := h.DecodeFrom(d); err != nil {
			return err
		}
		m.Return = &h
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled MemoType %d", m.Type)
	}
	return nil
}

// TimeBounds is the optional validity window of a transaction. A zero
// MaxTime means "no upper bound".
type TimeBounds struct {
	MinTime TimePoint
	MaxTime TimePoint
}

func (t TimeBounds) EncodeTo(e *Encoder) error {
	if err := Uint64(t.MinTime).EncodeTo(e); err != nil {
		return err
	}
	return Uint64(t.MaxTime).EncodeTo(e)
}

func (t *TimeBounds) DecodeFrom(d *Decoder) error {
	var lo, hi Uint64
	if err := lo.DecodeFrom(d); err != nil {
		return err
	}
	if err := hi.DecodeFrom(d); err != nil {
		return err
	}
	t.MinTime = TimePoint(lo)
	t.MaxTime = TimePoint(hi)
	return nil
}

// LedgerBounds mirrors TimeBounds for the ledger-sequence validity
// window extension (TransactionExt v1 preconditions).
type LedgerBounds struct {
	MinLedger Uint32
	MaxLedger Uint32
}

func (l LedgerBounds) EncodeTo(e *Encoder) error {
	if err := l.MinLedger.EncodeTo(e); err != nil {
		return err
	}
	return l.MaxLedger.EncodeTo(e)
}

func (l *LedgerBounds) DecodeFrom(d *Decoder) error {
	if err := l.MinLedger.DecodeFrom(d); err != nil {
		return err
	}
	return l.MaxLedger.DecodeFrom(d)
}
