package txnbuild

import (
	"encoding/hex"

	"github.com/EXCCoin/stellarbase/errs"
	"github.com/EXCCoin/stellarbase/keypair"
	"github.com/EXCCoin/stellarbase/network"
	"github.com/EXCCoin/stellarbase/xdr"
)

// FeeBumpTransactionParams is the input to NewFeeBumpTransaction.
type FeeBumpTransactionParams struct {
	Inner      *Transaction
	FeeAccount string
	BaseFee    int64
}

// FeeBumpTransaction wraps an already-signed inner transaction with a
// new, higher fee paid by a separate account.
type FeeBumpTransaction struct {
	envelope xdr.TransactionEnvelope
}

// NewFeeBumpTransaction assembles a FeeBumpTransaction from params.
// BaseFee must exceed the inner transaction's own per-operation fee.
func NewFeeBumpTransaction(params FeeBumpTransactionParams) (*FeeBumpTransaction, error) {
	if params.Inner == nil || params.Inner.envelope.V1 == nil {
		return nil, errs.New(errs.ErrInvalidOperation, "fee bump requires a signed V1 inner transaction")
	}
	innerOps := len(params.Inner.envelope.V1.Tx.Operations)
	if params.BaseFee < MinBaseFee {
		return nil, errs.New(errs.ErrTransactionFeeTooLow, "base fee %d is below the network minimum %d", params.BaseFee, MinBaseFee)
	}
	if params.BaseFee <= params.Inner.BaseFee() {
		return nil, errs.New(errs.ErrTransactionFeeTooLow, "fee bump base fee %d does not exceed the inner transaction's own per-operation fee %d", params.BaseFee, params.Inner.BaseFee())
	}
	totalFee := params.BaseFee * int64(innerOps+1)

	feeSource, err := muxedAccountFromAddress(params.FeeAccount)
	if err != nil {
		return nil, err
	}

	return &FeeBumpTransaction{
		envelope: xdr.TransactionEnvelope{
			Type: xdr.EnvelopeTypeTxFeeBump,
			FeeBump: &xdr.FeeBumpTransactionEnvelope{
				Tx: xdr.FeeBumpTransaction{
					FeeSource: feeSource,
					Fee:       xdr.Int64(totalFee),
					InnerTx: xdr.FeeBumpTransactionInnerTx{
						Type: xdr.EnvelopeTypeTx,
						V1:   params.Inner.envelope.V1,
					},
				},
			},
		},
	}, nil
}

// Hash returns the fee-bump signature base hash under passphrase.
func (t *FeeBumpTransaction) Hash(passphrase string) (xdr.Hash, error) {
	networkID := network.ID(passphrase)
	tagged := xdr.TransactionSignaturePayloadTaggedTransaction{
		Type:    xdr.EnvelopeTypeTxFeeBump,
		FeeBump: &t.envelope.FeeBump.Tx,
	}
	return signaturePayloadHash(networkID, tagged)
}

// HashHex returns Hash hex-encoded.
func (t *FeeBumpTransaction) HashHex(passphrase string) (string, error) {
	h, err := t.Hash(passphrase)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(h[:]), nil
}

// Sign appends one DecoratedSignature per KeyPair, over the fee-bump
// hash, and returns the signed FeeBumpTransaction.
func (t *FeeBumpTransaction) Sign(passphrase string, kps ...*keypair.KeyPair) (*FeeBumpTransaction, error) {
	h, err := t.Hash(passphrase)
	if err != nil {
		return nil, err
	}
	out := *t
	out.envelope.FeeBump = &xdr.FeeBumpTransactionEnvelope{
		Tx:         t.envelope.FeeBump.Tx,
		Signatures: append([]xdr.DecoratedSignature(nil), t.envelope.FeeBump.Signatures...),
	}
	for _, kp := range kps {
		sig, err := kp.Sign(h[:])
		if err != nil {
			return nil, err
		}
		out.envelope.FeeBump.Signatures = append(out.envelope.FeeBump.Signatures, xdr.DecoratedSignature{
			Hint:      xdr.SignatureHint(kp.Hint()),
			Signature: sig,
		})
	}
	return &out, nil
}

// ToXDR returns the underlying envelope.
func (t *FeeBumpTransaction) ToXDR() xdr.TransactionEnvelope { return t.envelope }

// MarshalBinary returns the raw XDR encoding of the envelope.
func (t *FeeBumpTransaction) MarshalBinary() ([]byte, error) { return xdr.Marshal(t.envelope) }

// Base64 returns the standard-base64 encoding of the envelope's XDR.
func (t *FeeBumpTransaction) Base64() (string, error) { return xdr.MarshalBase64(t.envelope) }

// Signatures returns the fee-bump envelope's own signature list (the
// inner transaction's signatures are unaffected and retrieved via
// InnerTransaction().Signatures()).
func (t *FeeBumpTransaction) Signatures() []xdr.DecoratedSignature {
	return t.envelope.FeeBump.Signatures
}

// FeeAccount returns the address paying the bumped fee.
func (t *FeeBumpTransaction) FeeAccount() (string, error) {
	return addressFromMuxedAccount(t.envelope.FeeBump.Tx.FeeSource)
}

// BaseFee returns the per-operation fee (inner operations plus one
// for the fee-bump itself) this transaction was built with.
func (t *FeeBumpTransaction) BaseFee() int64 {
	n := len(t.envelope.FeeBump.Tx.InnerTx.V1.Tx.Operations) + 1
	return int64(t.envelope.FeeBump.Tx.Fee) / int64(n)
}

// MaxFee returns the total fee this transaction is willing to pay.
func (t *FeeBumpTransaction) MaxFee() int64 { return int64(t.envelope.FeeBump.Tx.Fee) }

// InnerTransaction returns the wrapped inner Transaction.
func (t *FeeBumpTransaction) InnerTransaction() *Transaction {
	return &Transaction{envelope: xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeTx,
		V1:   t.envelope.FeeBump.Tx.InnerTx.V1,
	}}
}
