package xdr

import "github.com/EXCCoin/stellarbase/errs"

const maxOperations = 100
const maxSignatures = 20
const maxExtraSigners = 2

// EnvelopeType tags which envelope/signature-payload shape follows.
type EnvelopeType int32

const (
	EnvelopeTypeTxV0      EnvelopeType = 0
	EnvelopeTypeTx        EnvelopeType = 2
	EnvelopeTypeTxFeeBump EnvelopeType = 5
)

func (t EnvelopeType) EncodeTo(e *Encoder) error { return e.EncodeInt(int32(t)) }

func (t *EnvelopeType) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	*t = EnvelopeType(v)
	return nil
}

// PreconditionsType enumerates Preconditions' discriminants.
type PreconditionsType int32

const (
	PreconditionsNone PreconditionsType = 0
	PreconditionsTime PreconditionsType = 1
	PreconditionsV2   PreconditionsType = 2
)

// PreconditionsV2 carries every precondition kind beyond a plain time
// bound: ledger bounds, a minimum source sequence number, minimum
// sequence age/gap, and up to two extra required signers.
type PreconditionsV2 struct {
	TimeBounds      *TimeBounds
	LedgerBounds    *LedgerBounds
	MinSeqNum       *SequenceNumber
	MinSeqAge       Duration
	MinSeqLedgerGap Uint32
	ExtraSigners    []SignerKey
}

func (p PreconditionsV2) EncodeTo(e *Encoder) error {
	if err := e.EncodeBool(p.TimeBounds != nil); err != nil {
		return err
	}
	if p.TimeBounds != nil {
		if err := p.TimeBounds.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := e.EncodeBool(p.LedgerBounds != nil); err != nil {
		return err
	}
	if p.LedgerBounds != nil {
		if err := p.LedgerBounds.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := e.EncodeBool(p.MinSeqNum != nil); err != nil {
		return err
	}
	if p.MinSeqNum != nil {
		if err := Int64(*p.MinSeqNum).EncodeTo(e); err != nil {
			return err
		}
	}
	if err := Uint64(p.MinSeqAge).EncodeTo(e); err != nil {
		return err
	}
	if err := p.MinSeqLedgerGap.EncodeTo(e); err != nil {
		return err
	}
	if uint32(len(p.ExtraSigners)) > maxExtraSigners {
		return errs.New(errs.ErrInvalidXDR, "%d extra signers exceeds bound %d", len(p.ExtraSigners), maxExtraSigners)
	}
	if err := e.EncodeUint(uint32(len(p.ExtraSigners))); err != nil {
		return err
	}
	for _, s := range p.ExtraSigners {
		if err := s.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (p *PreconditionsV2) DecodeFrom(d *Decoder) error {
	present, err := d.DecodeBool()
	if err != nil {
		return err
	}
	if present {
		var tb TimeBounds
		if err := tb.DecodeFrom(d); err != nil {
			return err
		}
		p.TimeBounds = &tb
	}
	present, err = d.DecodeBool()
	if err != nil {
		return err
	}
	if present {
		var lb LedgerBounds
		if err := lb.DecodeFrom(d); err != nil {
			return err
		}
		p.LedgerBounds = &lb
	}
	present, err = d.DecodeBool()
	if err != nil {
		return err
	}
	if present {
		var sn Int64
		if err := sn.DecodeFrom(d); err != nil {
			return err
		}
		seq := SequenceNumber(sn)
		p.MinSeqNum = &seq
	}
	var age Uint64
	if err := age.DecodeFrom(d); err != nil {
		return err
	}
	p.MinSeqAge = Duration(age)
	if err := p.MinSeqLedgerGap.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeArrayLen(maxExtraSigners)
	if err != nil {
		return err
	}
	signers := make([]SignerKey, n)
	for i := range signers {
		if err := signers[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	p.ExtraSigners = signers
	return nil
}

// Preconditions is a tagged union over "no preconditions", a bare
// time bound, and the full PreconditionsV2 set.
type Preconditions struct {
	Type       PreconditionsType
	TimeBounds *TimeBounds
	V2         *PreconditionsV2
}

func (p Preconditions) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(p.Type)); err != nil {
		return err
	}
	switch p.Type {
	case PreconditionsNone:
		return nil
	case PreconditionsTime:
		return p.TimeBounds.EncodeTo(e)
	case PreconditionsV2:
		return p.V2.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled PreconditionsType %d", p.Type)
	}
}

func (p *Preconditions) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	p.Type = PreconditionsType(v)
	switch p.Type {
	case PreconditionsNone:
		return nil
	case PreconditionsTime:
		var tb TimeBounds
		if err := tb.DecodeFrom(d); err != nil {
			return err
		}
		p.TimeBounds = &tb
		return nil
	case PreconditionsV2:
		var v2 PreconditionsV2
		if err := v2.DecodeFrom(d); err != nil {
			return err
		}
		p.V2 = &v2
		return nil
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled PreconditionsType %d", p.Type)
	}
}

func encodeOperations(e *Encoder, ops []Operation) error {
	if uint32(len(ops)) > maxOperations {
		return errs.New(errs.ErrInvalidXDR, "%d operations exceeds bound %d", len(ops), maxOperations)
	}
	if err := e.EncodeUint(uint32(len(ops))); err != nil {
		return err
	}
	for _, op := range ops {
		if err := op.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func decodeOperations(d *Decoder) ([]Operation, error) {
	n, err := d.DecodeArrayLen(maxOperations)
	if err != nil {
		return nil, err
	}
	ops := make([]Operation, n)
	for i := range ops {
		if err := ops[i].DecodeFrom(d); err != nil {
			return nil, err
		}
	}
	return ops, nil
}

func encodeSignatures(e *Encoder, sigs []DecoratedSignature) error {
	if uint32(len(sigs)) > maxSignatures {
		return errs.New(errs.ErrInvalidXDR, "%d signatures exceeds bound %d", len(sigs), maxSignatures)
	}
	if err := e.EncodeUint(uint32(len(sigs))); err != nil {
		return err
	}
	for _, s := range sigs {
		if err := s.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func decodeSignatures(d *Decoder) ([]DecoratedSignature, error) {
	n, err := d.DecodeArrayLen(maxSignatures)
	if err != nil {
		return nil, err
	}
	sigs := make([]DecoratedSignature, n)
	for i := range sigs {
		if err := sigs[i].DecodeFrom(d); err != nil {
			return nil, err
		}
	}
	return sigs, nil
}

// TransactionV0 is the legacy (pre-CAP-0015) transaction shape: a bare
// ed25519 source account, no preconditions beyond an optional time
// bound. Retained only so this module can decode old envelopes; new
// transactions are always built as Transaction/TransactionV1Envelope.
type TransactionV0 struct {
	SourceAccountEd25519 Uint256
	Fee                  Uint32
	SeqNum               SequenceNumber
	TimeBounds           *TimeBounds
	Memo                 Memo
	Operations           []Operation
	Ext                  ExtensionPoint
}

func (tx TransactionV0) EncodeTo(e *Encoder) error {
	if err := tx.SourceAccountEd25519.EncodeTo(e); err != nil {
		return err
	}
	if err := tx.Fee.EncodeTo(e); err != nil {
		return err
	}
	if err := Int64(tx.SeqNum).EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeBool(tx.TimeBounds != nil); err != nil {
		return err
	}
	if tx.TimeBounds != nil {
		if err := tx.TimeBounds.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := tx.Memo.EncodeTo(e); err != nil {
		return err
	}
	if err := encodeOperations(e, tx.Operations); err != nil {
		return err
	}
	return tx.Ext.EncodeTo(e)
}

func (tx *TransactionV0) DecodeFrom(d *Decoder) error {
	if err := tx.SourceAccountEd25519.DecodeFrom(d); err != nil {
		return err
	}
	if err := tx.Fee.DecodeFrom(d); err != nil {
		return err
	}
	var seq Int64
	if err := seq.DecodeFrom(d); err != nil {
		return err
	}
	tx.SeqNum = SequenceNumber(seq)
	present, err := d.DecodeBool()
	if err != nil {
		return err
	}
	if present {
		var tb TimeBounds
		if err := tb.DecodeFrom(d); err != nil {
			return err
		}
		tx.TimeBounds = &tb
	}
	if err := tx.Memo.DecodeFrom(d); err != nil {
		return err
	}
	ops, err := decodeOperations(d)
	if err != nil {
		return err
	}
	tx.Operations = ops
	return tx.Ext.DecodeFrom(d)
}

// TransactionV0Envelope pairs a legacy TransactionV0 with its
// signatures.
type TransactionV0Envelope struct {
	Tx         TransactionV0
	Signatures []DecoratedSignature
}

func (e2 TransactionV0Envelope) EncodeTo(e *Encoder) error {
	if err := e2.Tx.EncodeTo(e); err != nil {
		return err
	}
	return encodeSignatures(e, e2.Signatures)
}

func (e2 *TransactionV0Envelope) DecodeFrom(d *Decoder) error {
	if err := e2.Tx.DecodeFrom(d); err != nil {
		return err
	}
	sigs, err := decodeSignatures(d)
	if err != nil {
		return err
	}
	e2.Signatures = sigs
	return nil
}

// Transaction is the current (post-CAP-0015) transaction shape: a
// muxed source account and the full Preconditions union.
type Transaction struct {
	SourceAccount MuxedAccount
	Fee           Uint32
	SeqNum        SequenceNumber
	Cond          Preconditions
	Memo          Memo
	Operations    []Operation
	Ext           ExtensionPoint
}

func (tx Transaction) EncodeTo(e *Encoder) error {
	if err := tx.SourceAccount.EncodeTo(e); err != nil {
		return err
	}
	if err := tx.Fee.EncodeTo(e); err != nil {
		return err
	}
	if err := Int64(tx.SeqNum).EncodeTo(e); err != nil {
		return err
	}
	if err := tx.Cond.EncodeTo(e); err != nil {
		return err
	}
	if err := tx.Memo.EncodeTo(e); err != nil {
		return err
	}
	if err := encodeOperations(e, tx.Operations); err != nil {
		return err
	}
	return tx.Ext.EncodeTo(e)
}

func (tx *Transaction) DecodeFrom(d *Decoder) error {
	if err := tx.SourceAccount.DecodeFrom(d); err != nil {
		return err
	}
	if err := tx.Fee.DecodeFrom(d); err != nil {
		return err
	}
	var seq Int64
	if err := seq.DecodeFrom(d); err != nil {
		return err
	}
	tx.SeqNum = SequenceNumber(seq)
	if err := tx.Cond.DecodeFrom(d); err != nil {
		return err
	}
	if err := tx.Memo.DecodeFrom(d); err != nil {
		return err
	}
	ops, err := decodeOperations(d)
	if err != nil {
		return err
	}
	tx.Operations = ops
	return tx.Ext.DecodeFrom(d)
}

// TransactionV1Envelope pairs a Transaction with its signatures.
type TransactionV1Envelope struct {
	Tx         Transaction
	Signatures []DecoratedSignature
}

func (e2 TransactionV1Envelope) EncodeTo(e *Encoder) error {
	if err := e2.Tx.EncodeTo(e); err != nil {
		return err
	}
	return encodeSignatures(e, e2.Signatures)
}

func (e2 *TransactionV1Envelope) DecodeFrom(d *Decoder) error {
	if err := e2.Tx.DecodeFrom(d); err != nil {
		return err
	}
	sigs, err := decodeSignatures(d)
	if err != nil {
		return err
	}
	e2.Signatures = sigs
	return nil
}

// FeeBumpTransactionInnerTx wraps the inner transaction a fee-bump
// transaction pays for; only the V1 (current) shape is representable,
// matching the protocol's own restriction.
type FeeBumpTransactionInnerTx struct {
	Type EnvelopeType
	V1   *TransactionV1Envelope
}

func (tx FeeBumpTransactionInnerTx) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(tx.Type)); err != nil {
		return err
	}
	switch tx.Type {
	case EnvelopeTypeTx:
		return tx.V1.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled FeeBumpTransactionInnerTx type %d", tx.Type)
	}
}

func (tx *FeeBumpTransactionInnerTx) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	tx.Type = EnvelopeType(v)
	switch tx.Type {
	case EnvelopeTypeTx:
		var v1 TransactionV1Envelope
		if err := v1.DecodeFrom(d); err != nil {
			return err
		}
		tx.V1 = &v1
		return nil
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled FeeBumpTransactionInnerTx type %d", tx.Type)
	}
}

// FeeBumpTransaction raises an already-signed inner transaction's
// effective fee, paid from FeeSource, without altering the inner
// transaction's hash.
type FeeBumpTransaction struct {
	FeeSource MuxedAccount
	Fee       Int64
	InnerTx   FeeBumpTransactionInnerTx
	Ext       ExtensionPoint
}

func (tx FeeBumpTransaction) EncodeTo(e *Encoder) error {
	if err := tx.FeeSource.EncodeTo(e); err != nil {
		return err
	}
	if err := tx.Fee.EncodeTo(e); err != nil {
		return err
	}
	if err := tx.InnerTx.EncodeTo(e); err != nil {
		return err
	}
	return tx.Ext.EncodeTo(e)
}

func (tx *FeeBumpTransaction) DecodeFrom(d *Decoder) error {
	if err := tx.FeeSource.DecodeFrom(d); err != nil {
		return err
	}
	if err := tx.Fee.DecodeFrom(d); err != nil {
		return err
	}
	if err := tx.InnerTx.DecodeFrom(d); err != nil {
		return err
	}
	return tx.Ext.DecodeFrom(d)
}

// FeeBumpTransactionEnvelope pairs a FeeBumpTransaction with its own
// signatures (over the fee-bump's own hash, distinct from the inner
// transaction's signatures).
type FeeBumpTransactionEnvelope struct {
	Tx         FeeBumpTransaction
	Signatures []DecoratedSignature
}

func (e2 FeeBumpTransactionEnvelope) EncodeTo(e *Encoder) error {
	if err := e2.Tx.EncodeTo(e); err != nil {
		return err
	}
	return encodeSignatures(e, e2.Signatures)
}

func (e2 *FeeBumpTransactionEnvelope) DecodeFrom(d *Decoder) error {
	if err := e2.Tx.DecodeFrom(d); err != nil {
		return err
	}
	sigs, err := decodeSignatures(d)
	if err != nil {
		return err
	}
	e2.Signatures = sigs
	return nil
}

// TransactionEnvelope is a tagged union over every envelope shape the
// network accepts.
type TransactionEnvelope struct {
	Type    EnvelopeType
	V0      *TransactionV0Envelope
	V1      *TransactionV1Envelope
	FeeBump *FeeBumpTransactionEnvelope
}

func (e2 TransactionEnvelope) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(e2.Type)); err != nil {
		return err
	}
	switch e2.Type {
	case EnvelopeTypeTxV0:
		return e2.V0.EncodeTo(e)
	case EnvelopeTypeTx:
		return e2.V1.EncodeTo(e)
	case EnvelopeTypeTxFeeBump:
		return e2.FeeBump.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled EnvelopeType %d", e2.Type)
	}
}

func (e2 *TransactionEnvelope) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	e2.Type = EnvelopeType(v)
	switch e2.Type {
	case EnvelopeTypeTxV0:
		var v0 TransactionV0Envelope
		if err := v0.DecodeFrom(d); err != nil {
			return err
		}
		e2.V0 = &v0
		return nil
	case EnvelopeTypeTx:
		var v1 TransactionV1Envelope
		if err := v1.DecodeFrom(d); err != nil {
			return err
		}
		e2.V1 = &v1
		return nil
	case EnvelopeTypeTxFeeBump:
		var fb FeeBumpTransactionEnvelope
		if err := fb.DecodeFrom(d); err != nil {
			return err
		}
		e2.FeeBump = &fb
		return nil
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled EnvelopeType %d", e2.Type)
	}
}

// TransactionSignaturePayloadTaggedTransaction is the tagged union
// the signature payload wraps: either a current-shape Transaction
// (tag Tx) or a FeeBumpTransaction (tag TxFeeBump). A V0 envelope is
// always upgraded to a Transaction (with a plain ed25519 MuxedAccount)
// before it reaches this type, matching how the network itself hashes
// legacy envelopes.
type TransactionSignaturePayloadTaggedTransaction struct {
	Type    EnvelopeType
	Tx      *Transaction
	FeeBump *FeeBumpTransaction
}

func (t TransactionSignaturePayloadTaggedTransaction) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(t.Type)); err != nil {
		return err
	}
	switch t.Type {
	case EnvelopeTypeTx:
		return t.Tx.EncodeTo(e)
	case EnvelopeTypeTxFeeBump:
		return t.FeeBump.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled TaggedTransaction type %d", t.Type)
	}
}

func (t *TransactionSignaturePayloadTaggedTransaction) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	t.Type = EnvelopeType(v)
	switch t.Type {
	case EnvelopeTypeTx:
		var tx Transaction
		if err := tx.DecodeFrom(d); err != nil {
			return err
		}
		t.Tx = &tx
		return nil
	case EnvelopeTypeTxFeeBump:
		var fb FeeBumpTransaction
		if err := fb.DecodeFrom(d); err != nil {
			return err
		}
		t.FeeBump = &fb
		return nil
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled TaggedTransaction type %d", t.Type)
	}
}

// TransactionSignaturePayload is exactly what gets SHA-256 hashed to
// produce the value ed25519 signatures are computed over: the
// network id followed by the tagged transaction.
type TransactionSignaturePayload struct {
	NetworkId         Hash
	TaggedTransaction TransactionSignaturePayloadTaggedTransaction
}

func (p TransactionSignaturePayload) EncodeTo(e *Encoder) error {
	if err := p.NetworkId.EncodeTo(e); err != nil {
		return err
	}
	return p.TaggedTransaction.EncodeTo(e)
}

func (p *TransactionSignaturePayload) DecodeFrom(d *Decoder) error {
	if err := p.NetworkId.DecodeFrom(d); err != nil {
		return err
	}
	return p.TaggedTransaction.DecodeFrom(d)
}
