package xdr

// Signature is the raw 64-byte ed25519 signature, variable-opaque on
// the wire with a generous bound (matches the protocol's <64> bound).
type Signature []byte

func (s Signature) EncodeTo(e *Encoder) error { return e.EncodeVarOpaque(s, 64) }

func (s *Signature) DecodeFrom(d *Decoder) error {
	b, err := d.DecodeVarOpaque(64)
	if err != nil {
		return err
	}
	*s = b
	return nil
}

// SignatureHint is the last 4 bytes of a signer's raw public key (or
// the XOR hint for signed-payload signers); routing information only.
type SignatureHint [4]byte

func (h SignatureHint) EncodeTo(e *Encoder) error { return e.EncodeFixedOpaque(h[:]) }

func (h *SignatureHint) DecodeFrom(d *Decoder) error {
	b, err := d.DecodeFixedOpaque(4)
	if err != nil {
		return err
	}
	copy(h[:], b)
	return nil
}

// DecoratedSignature pairs a signer hint with the signature it
// produced.
type DecoratedSignature struct {
	Hint      SignatureHint
	Signature Signature
}

func (s DecoratedSignature) EncodeTo(e *Encoder) error {
	if err := s.Hint.EncodeTo(e); err != nil {
		return err
	}
	return s.Signature.EncodeTo(e)
}

func (s *DecoratedSignature) DecodeFrom(d *Decoder) error {
	if err := s.Hint.DecodeFrom(d); err != nil {
		return err
	}
	return s.Signature.DecodeFrom(d)
}
