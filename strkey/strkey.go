// Package strkey implements the base32 "strkey" encoding used for
// every user-facing key and id in the network: account addresses,
// seeds, pre-auth-tx ids, hash-x signer ids, signed-payload signer
// keys, and muxed account addresses.
//
// The wire shape is: 1 version byte, a payload whose length depends on
// the version, and a 2-byte CRC16-CCITT checksum over the version byte
// and payload, the whole thing base32-encoded (RFC 4648, no padding).
package strkey

import (
	"encoding/base32"

	"github.com/EXCCoin/stellarbase/errs"
)

// VersionByte identifies the kind of value a strkey encodes.
type VersionByte byte

const (
	VersionByteAccountID        VersionByte = 6 << 3  // 'G...'
	VersionByteSeed              VersionByte = 18 << 3 // 'S...'
	VersionByteHashX             VersionByte = 23 << 3 // 'X...'
	VersionByteHashTx            VersionByte = 19 << 3 // 'T...' (pre-auth-tx)
	VersionByteSignedPayload     VersionByte = 15 << 3 // 'P...'
	VersionByteMuxedAccount      VersionByte = 12 << 3 // 'M...'
)

const checksumLen = 2

var b32Encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

func crc16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// Encode builds the strkey string for the given version and payload.
func Encode(version VersionByte, payload []byte) (string, error) {
	body := make([]byte, 0, 1+len(payload)+checksumLen)
	body = append(body, byte(version))
	body = append(body, payload...)
	sum := crc16(body)
	body = append(body, byte(sum), byte(sum>>8))
	return b32Encoding.EncodeToString(body), nil
}

// Decode validates and splits a strkey string, returning its version
// byte and payload (checksum stripped and verified).
func Decode(s string) (VersionByte, []byte, error) {
	if len(s) == 0 {
		return 0, nil, errs.New(errs.ErrInvalidStrKey, "empty strkey")
	}
	raw, err := b32Encoding.DecodeString(s)
	if err != nil {
		return 0, nil, errs.New(errs.ErrInvalidStrKey, "invalid base32: %v", err)
	}
	if len(raw) < 1+checksumLen {
		return 0, nil, errs.New(errs.ErrInvalidStrKey, "strkey too short")
	}
	body := raw[:len(raw)-checksumLen]
	wantSum := crc16(body)
	gotSum := uint16(raw[len(raw)-2]) | uint16(raw[len(raw)-1])<<8
	if wantSum != gotSum {
		return 0, nil, errs.New(errs.ErrInvalidStrKey, "checksum mismatch")
	}
	return VersionByte(body[0]), body[1:], nil
}

// EncodeAccountID encodes a 32-byte ed25519 public key as a 'G...' address.
func EncodeAccountID(raw []byte) (string, error) {
	if len(raw) != 32 {
		return "", errs.New(errs.ErrInvalidPublicKey, "account id must be 32 bytes, got %d", len(raw))
	}
	return Encode(VersionByteAccountID, raw)
}

// DecodeAccountID decodes a 'G...' address, returning its raw 32-byte
// ed25519 public key.
func DecodeAccountID(s string) ([]byte, error) {
	v, payload, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if v != VersionByteAccountID {
		return nil, errs.New(errs.ErrInvalidPublicKey, "not an account id: version byte %d", v)
	}
	if len(payload) != 32 {
		return nil, errs.New(errs.ErrInvalidPublicKey, "account id payload must be 32 bytes, got %d", len(payload))
	}
	return payload, nil
}

// EncodeSeed encodes a 32-byte ed25519 seed as an 'S...' secret key.
func EncodeSeed(raw []byte) (string, error) {
	if len(raw) != 32 {
		return "", errs.New(errs.ErrInvalidSeed, "seed must be 32 bytes, got %d", len(raw))
	}
	return Encode(VersionByteSeed, raw)
}

// DecodeSeed decodes an 'S...' secret key, returning its raw 32-byte seed.
func DecodeSeed(s string) ([]byte, error) {
	v, payload, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if v != VersionByteSeed {
		return nil, errs.New(errs.ErrInvalidSeed, "not a seed: version byte %d", v)
	}
	if len(payload) != 32 {
		return nil, errs.New(errs.ErrInvalidSeed, "seed payload must be 32 bytes, got %d", len(payload))
	}
	return payload, nil
}

// EncodeHashX encodes a 32-byte sha256 preimage hash as an 'X...' key.
func EncodeHashX(raw []byte) (string, error) {
	if len(raw) != 32 {
		return "", errs.New(errs.ErrInvalidHashX, "hash-x must be 32 bytes, got %d", len(raw))
	}
	return Encode(VersionByteHashX, raw)
}

// DecodeHashX decodes an 'X...' key, returning its raw 32-byte hash.
func DecodeHashX(s string) ([]byte, error) {
	v, payload, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if v != VersionByteHashX {
		return nil, errs.New(errs.ErrInvalidHashX, "not a hash-x key: version byte %d", v)
	}
	return payload, nil
}

// EncodePreAuthTx encodes a 32-byte transaction hash as a 'T...' key.
func EncodePreAuthTx(raw []byte) (string, error) {
	if len(raw) != 32 {
		return "", errs.New(errs.ErrInvalidPreAuthTx, "pre-auth-tx must be 32 bytes, got %d", len(raw))
	}
	return Encode(VersionByteHashTx, raw)
}

// DecodePreAuthTx decodes a 'T...' key, returning its raw 32-byte hash.
func DecodePreAuthTx(s string) ([]byte, error) {
	v, payload, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if v != VersionByteHashTx {
		return nil, errs.New(errs.ErrInvalidPreAuthTx, "not a pre-auth-tx key: version byte %d", v)
	}
	return payload, nil
}

// EncodeSignedPayload encodes an ed25519 public key plus a payload
// (<=64 bytes) as a 'P...' signed-payload signer key. The wire shape
// is: 32-byte key, 4-byte big-endian payload length, payload, zero
// padding to a multiple of 4.
func EncodeSignedPayload(ed25519 []byte, payload []byte) (string, error) {
	if len(ed25519) != 32 {
		return "", errs.New(errs.ErrInvalidSignedPayload, "key must be 32 bytes, got %d", len(ed25519))
	}
	if len(payload) > 64 {
		return "", errs.New(errs.ErrInvalidSignedPayload, "payload of %d bytes exceeds 64", len(payload))
	}
	body := make([]byte, 0, 32+4+len(payload)+3)
	body = append(body, ed25519...)
	n := len(payload)
	body = append(body, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	body = append(body, payload...)
	if r := len(payload) % 4; r != 0 {
		body = append(body, make([]byte, 4-r)...)
	}
	return Encode(VersionByteSignedPayload, body)
}

// DecodeSignedPayload decodes a 'P...' signed-payload key, returning
// the raw ed25519 public key and payload.
func DecodeSignedPayload(s string) (ed25519 []byte, payload []byte, err error) {
	v, body, err := Decode(s)
	if err != nil {
		return nil, nil, err
	}
	if v != VersionByteSignedPayload {
		return nil, nil, errs.New(errs.ErrInvalidSignedPayload, "not a signed-payload key: version byte %d", v)
	}
	if len(body) < 36 {
		return nil, nil, errs.New(errs.ErrInvalidSignedPayload, "signed-payload key too short")
	}
	ed := body[:32]
	n := int(body[32])<<24 | int(body[33])<<16 | int(body[34])<<8 | int(body[35])
	if n > 64 || len(body) < 36+n {
		return nil, nil, errs.New(errs.ErrInvalidSignedPayload, "invalid embedded payload length %d", n)
	}
	return ed, body[36 : 36+n], nil
}

// EncodeMuxedAccount encodes a 32-byte ed25519 key and 64-bit sub-id
// as an 'M...' muxed account address.
func EncodeMuxedAccount(ed25519 []byte, id uint64) (string, error) {
	if len(ed25519) != 32 {
		return "", errs.New(errs.ErrInvalidPublicKey, "muxed account key must be 32 bytes, got %d", len(ed25519))
	}
	body := make([]byte, 0, 40)
	body = append(body, ed25519...)
	for i := 7; i >= 0; i-- {
		body = append(body, byte(id>>(uint(i)*8)))
	}
	return Encode(VersionByteMuxedAccount, body)
}

// DecodeMuxedAccount decodes an 'M...' muxed account address.
func DecodeMuxedAccount(s string) (ed25519 []byte, id uint64, err error) {
	v, body, err := Decode(s)
	if err != nil {
		return nil, 0, err
	}
	if v != VersionByteMuxedAccount {
		return nil, 0, errs.New(errs.ErrInvalidPublicKey, "not a muxed account: version byte %d", v)
	}
	if len(body) != 40 {
		return nil, 0, errs.New(errs.ErrInvalidPublicKey, "muxed account payload must be 40 bytes, got %d", len(body))
	}
	var sub uint64
	for i := 0; i < 8; i++ {
		sub = sub<<8 | uint64(body[32+i])
	}
	return body[:32], sub, nil
}
