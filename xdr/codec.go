// Package xdr implements the External Data Representation (RFC 4506)
// codec used by the network protocol: big-endian fixed-width integers,
// length-prefixed variable opaque/arrays, nullable optionals, and
// tagged unions discriminated by a signed 32-bit case tag.
//
// The codec is monomorphic and allocation-light: Encoder/Decoder wrap
// an io.Writer/io.Reader directly, the same shape the protocol types
// in this package's other files build on (compare wire.BtcEncode/BtcDecode in the
// ancestor node codebase, generalized here by dropping the protocol
// version parameter XDR itself has no use for).
package xdr

import (
	"bytes"
	"encoding/base64"
	"io"

	"github.com/EXCCoin/stellarbase/errs"
)

// Encodable is implemented by every value type that has a wire
// representation.
type Encodable interface {
	EncodeTo(e *Encoder) error
}

// Decodable is implemented by every value type that can be populated
// from a wire representation.
type Decodable interface {
	DecodeFrom(d *Decoder) error
}

// Encoder appends the canonical big-endian encoding of primitive and
// composite XDR values to an underlying io.Writer.
type Encoder struct {
	w io.Writer
	// n counts bytes written, used by callers that need to know the
	// encoded length without a separate pass.
	n int64
}

// NewEncoder returns an Encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Written returns the number of bytes written so far.
func (e *Encoder) Written() int64 { return e.n }

func (e *Encoder) write(p []byte) error {
	n, err := e.w.Write(p)
	e.n += int64(n)
	return err
}

// EncodeInt writes a signed 32-bit big-endian integer.
func (e *Encoder) EncodeInt(v int32) error {
	return e.EncodeUint(uint32(v))
}

// EncodeUint writes an unsigned 32-bit big-endian integer.
func (e *Encoder) EncodeUint(v uint32) error {
	var b [4]byte
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
	return e.write(b[:])
}

// EncodeInt64 writes a signed 64-bit big-endian integer.
func (e *Encoder) EncodeInt64(v int64) error {
	return e.EncodeUint64(uint64(v))
}

// EncodeUint64 writes an unsigned 64-bit big-endian integer.
func (e *Encoder) EncodeUint64(v uint64) error {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> uint(56-8*i))
	}
	return e.write(b[:])
}

// EncodeBool writes an XDR bool, encoded as a 0/1 32-bit integer.
func (e *Encoder) EncodeBool(v bool) error {
	if v {
		return e.EncodeUint(1)
	}
	return e.EncodeUint(0)
}

func pad(n int) int {
	if r := n % 4; r != 0 {
		return 4 - r
	}
	return 0
}

var zeroPad [4]byte

// EncodeFixedOpaque writes exactly len(b) bytes followed by zero
// padding to the next multiple of 4. The caller is responsible for
// ensuring len(b) matches the type's declared fixed length.
func (e *Encoder) EncodeFixedOpaque(b []byte) error {
	if err := e.write(b); err != nil {
		return err
	}
	if p := pad(len(b)); p > 0 {
		return e.write(zeroPad[:p])
	}
	return nil
}

// EncodeVarOpaque writes a 4-byte length prefix, the bytes, and zero
// padding to a multiple of 4. maxLen is the type's declared bound; an
// oversize value is a programming error in the caller and is rejected.
func (e *Encoder) EncodeVarOpaque(b []byte, maxLen uint32) error {
	if uint32(len(b)) > maxLen {
		return errs.New(errs.ErrInvalidXDR, "variable opaque of %d bytes exceeds bound %d", len(b), maxLen)
	}
	if err := e.EncodeUint(uint32(len(b))); err != nil {
		return err
	}
	return e.EncodeFixedOpaque(b)
}

// EncodeString writes a variable string the same way as variable
// opaque data: length prefix, bytes, zero pad.
func (e *Encoder) EncodeString(s string, maxLen uint32) error {
	return e.EncodeVarOpaque([]byte(s), maxLen)
}

// Decoder consumes the canonical big-endian encoding of primitive and
// composite XDR values from an underlying io.Reader.
type Decoder struct {
	r io.Reader
	n int64
}

// NewDecoder returns a Decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Consumed returns the number of bytes read so far.
func (d *Decoder) Consumed() int64 { return d.n }

func (d *Decoder) readFull(p []byte) error {
	n, err := io.ReadFull(d.r, p)
	d.n += int64(n)
	if err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return errs.New(errs.ErrInvalidXDR, "short input: need %d more bytes", len(p)-n)
		}
		return err
	}
	return nil
}

// DecodeInt reads a signed 32-bit big-endian integer.
func (d *Decoder) DecodeInt() (int32, error) {
	v, err := d.DecodeUint()
	return int32(v), err
}

// DecodeUint reads an unsigned 32-bit big-endian integer.
func (d *Decoder) DecodeUint() (uint32, error) {
	var b [4]byte
	if err := d.readFull(b[:]); err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// DecodeInt64 reads a signed 64-bit big-endian integer.
func (d *Decoder) DecodeInt64() (int64, error) {
	v, err := d.DecodeUint64()
	return int64(v), err
}

// DecodeUint64 reads an unsigned 64-bit big-endian integer.
func (d *Decoder) DecodeUint64() (uint64, error) {
	var b [8]byte
	if err := d.readFull(b[:]); err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(b[i])
	}
	return v, nil
}

// DecodeBool reads an XDR bool, rejecting any value other than 0/1.
func (d *Decoder) DecodeBool() (bool, error) {
	v, err := d.DecodeUint()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errs.New(errs.ErrInvalidXDR, "invalid bool value %d", v)
	}
}

func (d *Decoder) skipPad(n int) error {
	p := pad(n)
	if p == 0 {
		return nil
	}
	var b [4]byte
	return d.readFull(b[:p])
}

// DecodeFixedOpaque reads exactly n bytes plus padding to a multiple
// of 4, and returns the n unpadded bytes.
func (d *Decoder) DecodeFixedOpaque(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := d.readFull(b); err != nil {
		return nil, err
	}
	if err := d.skipPad(n); err != nil {
		return nil, err
	}
	return b, nil
}

// DecodeVarOpaque reads a length-prefixed byte string, rejecting a
// declared length greater than maxLen.
func (d *Decoder) DecodeVarOpaque(maxLen uint32) ([]byte, error) {
	n, err := d.DecodeUint()
	if err != nil {
		return nil, err
	}
	if n > maxLen {
		return nil, errs.New(errs.ErrInvalidXDR, "variable opaque length %d exceeds bound %d", n, maxLen)
	}
	return d.DecodeFixedOpaque(int(n))
}

// DecodeString reads a length-prefixed string, rejecting a declared
// length greater than maxLen.
func (d *Decoder) DecodeString(maxLen uint32) (string, error) {
	b, err := d.DecodeVarOpaque(maxLen)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeArrayLen reads and validates a variable array/union-arm length
// prefix against maxLen.
func (d *Decoder) DecodeArrayLen(maxLen uint32) (uint32, error) {
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	if n > maxLen {
		return 0, errs.New(errs.ErrInvalidXDR, "array length %d exceeds bound %d", n, maxLen)
	}
	return n, nil
}

// Marshal encodes v to a freshly allocated naked byte slice (no
// top-level length frame; XDR embeds framing only in higher
// protocols per spec).
func Marshal(v Encodable) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := v.EncodeTo(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes v from data. Trailing bytes are ignored by design
// (callers that care pass an exact-length slice).
func Unmarshal(data []byte, v Decodable) error {
	d := NewDecoder(bytes.NewReader(data))
	return v.DecodeFrom(d)
}

// MarshalBase64 encodes v to XDR and then to standard padded base64,
// the convenience wrapping described by the protocol's external
// interfaces.
func MarshalBase64(v Encodable) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// UnmarshalBase64 decodes standard padded base64 and then XDR into v.
func UnmarshalBase64(s string, v Decodable) error {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return errs.New(errs.ErrInvalidBase64, "%v", err)
	}
	return Unmarshal(b, v)
}
