package strkey

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBytes(n int, fill byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = fill
	}
	return b
}

func TestEncodeDecodeAccountID(t *testing.T) {
	raw := mustBytes(32, 0x11)
	addr, err := EncodeAccountID(raw)
	require.NoError(t, err)
	assert.True(t, len(addr) > 0)
	assert.Equal(t, byte('G'), addr[0])

	got, err := DecodeAccountID(addr)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(raw, got))
}

func TestEncodeAccountIDRejectsWrongLength(t *testing.T) {
	_, err := EncodeAccountID(mustBytes(31, 1))
	require.Error(t, err)
}

func TestDecodeAccountIDRejectsWrongVersion(t *testing.T) {
	seed, err := EncodeSeed(mustBytes(32, 2))
	require.NoError(t, err)
	_, err = DecodeAccountID(seed)
	require.Error(t, err)
}

func TestDecodeRejectsBadChecksum(t *testing.T) {
	addr, err := EncodeAccountID(mustBytes(32, 3))
	require.NoError(t, err)
	tampered := []byte(addr)
	// Flip the last data character, leaving the checksum stale.
	if tampered[len(tampered)-5] == 'A' {
		tampered[len(tampered)-5] = 'B'
	} else {
		tampered[len(tampered)-5] = 'A'
	}
	_, _, err = Decode(string(tampered))
	require.Error(t, err)
}

func TestDecodeRejectsEmpty(t *testing.T) {
	_, _, err := Decode("")
	require.Error(t, err)
}

func TestEncodeDecodeSeed(t *testing.T) {
	raw := mustBytes(32, 0x22)
	seed, err := EncodeSeed(raw)
	require.NoError(t, err)
	assert.Equal(t, byte('S'), seed[0])

	got, err := DecodeSeed(seed)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(raw, got))
}

func TestEncodeDecodeMuxedAccount(t *testing.T) {
	raw := mustBytes(32, 0x33)
	addr, err := EncodeMuxedAccount(raw, 9223372036854775807)
	require.NoError(t, err)
	assert.Equal(t, byte('M'), addr[0])

	gotKey, gotID, err := DecodeMuxedAccount(addr)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(raw, gotKey))
	assert.Equal(t, uint64(9223372036854775807), gotID)
}

func TestEncodeDecodeSignedPayload(t *testing.T) {
	key := mustBytes(32, 0x44)
	payload := []byte("a nontrivial payload of bytes")
	s, err := EncodeSignedPayload(key, payload)
	require.NoError(t, err)
	assert.Equal(t, byte('P'), s[0])

	gotKey, gotPayload, err := DecodeSignedPayload(s)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(key, gotKey))
	assert.True(t, bytes.Equal(payload, gotPayload))
}

func TestEncodeSignedPayloadRejectsOversizePayload(t *testing.T) {
	_, err := EncodeSignedPayload(mustBytes(32, 1), mustBytes(65, 2))
	require.Error(t, err)
}

func TestEncodeDecodeHashXAndPreAuthTx(t *testing.T) {
	raw := mustBytes(32, 0x55)

	hx, err := EncodeHashX(raw)
	require.NoError(t, err)
	assert.Equal(t, byte('X'), hx[0])
	gotHx, err := DecodeHashX(hx)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(raw, gotHx))

	pa, err := EncodePreAuthTx(raw)
	require.NoError(t, err)
	assert.Equal(t, byte('T'), pa[0])
	gotPa, err := DecodePreAuthTx(pa)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(raw, gotPa))
}
