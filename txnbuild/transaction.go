package txnbuild

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/EXCCoin/stellarbase/errs"
	"github.com/EXCCoin/stellarbase/keypair"
	"github.com/EXCCoin/stellarbase/network"
	"github.com/EXCCoin/stellarbase/xdr"
)

// MinBaseFee is the network's minimum fee per operation, in stroops.
const MinBaseFee int64 = 100

const maxOperationsPerTransaction = 100

// TransactionParams is the input to NewTransaction.
type TransactionParams struct {
	SourceAccount        Account
	Operations           []Operation
	BaseFee              int64
	Memo                 Memo
	Timebounds           Timebounds
	LedgerBounds         *LedgerBounds
	MinSequenceNumber    *int64
	MinSequenceAge       int64
	MinSequenceLedgerGap uint32
	ExtraSigners         []xdr.SignerKey
	IncrementSequenceNum bool
}

// Transaction is a built, potentially signed TransactionV1 envelope,
// paired with the pieces needed to re-derive its signature base.
type Transaction struct {
	envelope      xdr.TransactionEnvelope
	networkID     xdr.Hash
	hasPassphrase bool
}

// NewTransaction assembles a Transaction from params, consuming one
// sequence number from params.SourceAccount when IncrementSequenceNum
// is set (the common case for anything that will be submitted).
func NewTransaction(params TransactionParams) (*Transaction, error) {
	if len(params.Operations) == 0 {
		return nil, errs.New(errs.ErrMissingOperations, "transaction must have at least one operation")
	}
	if len(params.Operations) > maxOperationsPerTransaction {
		return nil, errs.New(errs.ErrTooManyOperations, "%d operations exceeds bound %d", len(params.Operations), maxOperationsPerTransaction)
	}
	baseFee := params.BaseFee
	if baseFee < MinBaseFee {
		return nil, errs.New(errs.ErrTransactionFeeTooLow, "base fee %d is below the network minimum %d", baseFee, MinBaseFee)
	}
	totalFee := baseFee * int64(len(params.Operations))
	if totalFee/int64(len(params.Operations)) != baseFee || totalFee > int64(^uint32(0)) {
		return nil, errs.New(errs.ErrTransactionFeeOverflow, "fee of %d stroops across %d operations overflows a u32", baseFee, len(params.Operations))
	}

	source, err := muxedAccountFromAddress(params.SourceAccount.GetAccountID())
	if err != nil {
		return nil, err
	}

	seq := int64(0)
	if params.IncrementSequenceNum {
		seq, err = params.SourceAccount.IncrementSequenceNumber()
		if err != nil {
			return nil, err
		}
	}

	memo := params.Memo
	if memo == nil {
		memo = MemoNone{}
	}
	memoXDR, err := memo.ToXDR()
	if err != nil {
		return nil, err
	}

	ops := make([]xdr.Operation, len(params.Operations))
	for i, op := range params.Operations {
		x, err := operationFromBuilder(op)
		if err != nil {
			return nil, err
		}
		ops[i] = x
	}

	cond, err := buildPreconditions(params)
	if err != nil {
		return nil, err
	}

	tx := xdr.Transaction{
		SourceAccount: source,
		Fee:           xdr.Uint32(totalFee),
		SeqNum:        xdr.SequenceNumber(seq),
		Cond:          cond,
		Memo:          memoXDR,
		Operations:    ops,
	}

	return &Transaction{
		envelope: xdr.TransactionEnvelope{
			Type: xdr.EnvelopeTypeTx,
			V1:   &xdr.TransactionV1Envelope{Tx: tx},
		},
	}, nil
}

func buildPreconditions(params TransactionParams) (xdr.Preconditions, error) {
	tb, err := params.Timebounds.toXDR()
	if err != nil {
		return xdr.Preconditions{}, err
	}
	lb := (LedgerBounds{}).toXDR()
	if params.LedgerBounds != nil {
		lb = params.LedgerBounds.toXDR()
	}
	plain := lb == nil && params.MinSequenceNumber == nil && params.MinSequenceAge == 0 &&
		params.MinSequenceLedgerGap == 0 && len(params.ExtraSigners) == 0

	if plain {
		if tb == nil {
			return xdr.Preconditions{Type: xdr.PreconditionsNone}, nil
		}
		return xdr.Preconditions{Type: xdr.PreconditionsTime, TimeBounds: tb}, nil
	}

	v2 := &xdr.PreconditionsV2{
		TimeBounds:      tb,
		LedgerBounds:    lb,
		MinSeqAge:       xdr.Duration(params.MinSequenceAge),
		MinSeqLedgerGap: xdr.Uint32(params.MinSequenceLedgerGap),
		ExtraSigners:    params.ExtraSigners,
	}
	if params.MinSequenceNumber != nil {
		n := xdr.SequenceNumber(*params.MinSequenceNumber)
		v2.MinSeqNum = &n
	}
	return xdr.Preconditions{Type: xdr.PreconditionsV2, V2: v2}, nil
}

// signaturePayloadHash computes the network-tagged hash that ed25519
// signatures over this transaction are taken over.
func signaturePayloadHash(networkID xdr.Hash, tagged xdr.TransactionSignaturePayloadTaggedTransaction) (xdr.Hash, error) {
	payload := xdr.TransactionSignaturePayload{NetworkId: networkID, TaggedTransaction: tagged}
	b, err := xdr.Marshal(payload)
	if err != nil {
		return xdr.Hash{}, err
	}
	return sha256.Sum256(b), nil
}

// Hash returns the transaction hash ed25519 signatures are taken over,
// under the given network passphrase.
func (t *Transaction) Hash(passphrase string) (xdr.Hash, error) {
	networkID := network.ID(passphrase)
	tagged := xdr.TransactionSignaturePayloadTaggedTransaction{Type: xdr.EnvelopeTypeTx, Tx: &t.envelope.V1.Tx}
	return signaturePayloadHash(networkID, tagged)
}

// HashHex returns Hash hex-encoded.
func (t *Transaction) HashHex(passphrase string) (string, error) {
	h, err := t.Hash(passphrase)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(h[:]), nil
}

// Sign appends one DecoratedSignature per KeyPair, over the hash
// produced under passphrase, and returns the signed Transaction. The
// receiver is not mutated; the returned value carries the new
// signature list.
func (t *Transaction) Sign(passphrase string, kps ...*keypair.KeyPair) (*Transaction, error) {
	h, err := t.Hash(passphrase)
	if err != nil {
		return nil, err
	}
	out := *t
	out.envelope.V1 = &xdr.TransactionV1Envelope{
		Tx:         t.envelope.V1.Tx,
		Signatures: append([]xdr.DecoratedSignature(nil), t.envelope.V1.Signatures...),
	}
	for _, kp := range kps {
		sig, err := kp.Sign(h[:])
		if err != nil {
			return nil, err
		}
		hint := kp.Hint()
		log.Debugf("signed transaction with hint %x", hint)
		out.envelope.V1.Signatures = append(out.envelope.V1.Signatures, xdr.DecoratedSignature{
			Hint:      xdr.SignatureHint(hint),
			Signature: sig,
		})
	}
	return &out, nil
}

// SignWithSignatures returns a copy of the Transaction with the given
// already-built decorated signatures appended, for callers that
// collect signatures out of band (multisig coordination, HSM signers).
func (t *Transaction) SignWithSignatures(sigs ...xdr.DecoratedSignature) *Transaction {
	out := *t
	out.envelope.V1 = &xdr.TransactionV1Envelope{
		Tx:         t.envelope.V1.Tx,
		Signatures: append(append([]xdr.DecoratedSignature(nil), t.envelope.V1.Signatures...), sigs...),
	}
	return &out
}

// ToXDR returns the underlying envelope.
func (t *Transaction) ToXDR() xdr.TransactionEnvelope { return t.envelope }

// MarshalBinary returns the raw XDR encoding of the envelope.
func (t *Transaction) MarshalBinary() ([]byte, error) { return xdr.Marshal(t.envelope) }

// Base64 returns the standard-base64 encoding of the envelope's XDR.
func (t *Transaction) Base64() (string, error) { return xdr.MarshalBase64(t.envelope) }

// Signatures returns the envelope's current decorated signature list.
func (t *Transaction) Signatures() []xdr.DecoratedSignature { return t.envelope.V1.Signatures }

// SourceAccount returns the transaction source account's address.
func (t *Transaction) SourceAccount() (string, error) {
	return addressFromMuxedAccount(t.envelope.V1.Tx.SourceAccount)
}

// SequenceNumber returns the sequence number consumed by this
// transaction.
func (t *Transaction) SequenceNumber() int64 { return int64(t.envelope.V1.Tx.SeqNum) }

// BaseFee returns the per-operation fee this transaction was built
// with.
func (t *Transaction) BaseFee() int64 {
	n := len(t.envelope.V1.Tx.Operations)
	if n == 0 {
		return int64(t.envelope.V1.Tx.Fee)
	}
	return int64(t.envelope.V1.Tx.Fee) / int64(n)
}

// MaxFee returns the total fee this transaction is willing to pay.
func (t *Transaction) MaxFee() int64 { return int64(t.envelope.V1.Tx.Fee) }

// Operations decodes the envelope's operation list back into the
// idiomatic Operation interface.
func (t *Transaction) Operations() ([]Operation, error) {
	ops := make([]Operation, len(t.envelope.V1.Tx.Operations))
	for i, x := range t.envelope.V1.Tx.Operations {
		op, err := operationFromXDR(x)
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	return ops, nil
}

// Memo decodes the envelope's memo back into the idiomatic Memo
// interface.
func (t *Transaction) Memo() (Memo, error) { return memoFromXDR(t.envelope.V1.Tx.Memo) }

// Timebounds returns the transaction's time validity window.
func (t *Transaction) Timebounds() Timebounds {
	return timeboundsFromXDR(t.envelope.V1.Tx.Cond.TimeBounds)
}

// TransactionFromXDR decodes a base64 TransactionEnvelope and returns
// the Transaction or FeeBumpTransaction it contains.
func TransactionFromXDR(b64 string) (*GenericTransaction, error) {
	var env xdr.TransactionEnvelope
	if err := xdr.UnmarshalBase64(b64, &env); err != nil {
		return nil, err
	}
	return genericTransactionFromEnvelope(env)
}

// GenericTransaction discriminates a decoded envelope between a plain
// transaction and a fee-bump transaction; exactly one of Transaction
// or FeeBump is non-nil.
type GenericTransaction struct {
	Transaction *Transaction
	FeeBump     *FeeBumpTransaction
}

func genericTransactionFromEnvelope(env xdr.TransactionEnvelope) (*GenericTransaction, error) {
	switch env.Type {
	case xdr.EnvelopeTypeTx:
		return &GenericTransaction{Transaction: &Transaction{envelope: env}}, nil
	case xdr.EnvelopeTypeTxV0:
		upgraded := upgradeV0Envelope(env.V0)
		return &GenericTransaction{Transaction: &Transaction{envelope: upgraded}}, nil
	case xdr.EnvelopeTypeTxFeeBump:
		return &GenericTransaction{FeeBump: &FeeBumpTransaction{envelope: env}}, nil
	default:
		return nil, errs.New(errs.ErrInvalidXDR, "unhandled envelope type %d", env.Type)
	}
}

// upgradeV0Envelope reinterprets a legacy V0 envelope as a V1 one, the
// same normalization the network applies before hashing it, so Hash
// and Sign behave consistently regardless of which wire shape a
// transaction arrived in.
func upgradeV0Envelope(v0 *xdr.TransactionV0Envelope) xdr.TransactionEnvelope {
	ed := v0.Tx.SourceAccountEd25519
	return xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeTx,
		V1: &xdr.TransactionV1Envelope{
			Tx: xdr.Transaction{
				SourceAccount: xdr.MuxedAccount{Type: xdr.KeyTypeEd25519, Ed25519: &ed},
				Fee:           v0.Tx.Fee,
				SeqNum:        v0.Tx.SeqNum,
				Cond:          timeBoundsToPreconditions(v0.Tx.TimeBounds),
				Memo:          v0.Tx.Memo,
				Operations:    v0.Tx.Operations,
			},
			Signatures: v0.Signatures,
		},
	}
}

func timeBoundsToPreconditions(tb *xdr.TimeBounds) xdr.Preconditions {
	if tb == nil {
		return xdr.Preconditions{Type: xdr.PreconditionsNone}
	}
	return xdr.Preconditions{Type: xdr.PreconditionsTime, TimeBounds: tb}
}
