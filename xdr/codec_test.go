package xdr

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeUint(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	require.NoError(t, e.EncodeUint(0xdeadbeef))
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, buf.Bytes())

	d := NewDecoder(&buf)
	v, err := d.DecodeUint()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), v)
}

func TestEncodeDecodeInt64(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	require.NoError(t, e.EncodeInt64(-1))

	d := NewDecoder(&buf)
	v, err := d.DecodeInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v)
}

func TestEncodeDecodeBool(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	require.NoError(t, e.EncodeBool(true))
	require.NoError(t, e.EncodeBool(false))

	d := NewDecoder(&buf)
	v, err := d.DecodeBool()
	require.NoError(t, err)
	assert.True(t, v)
	v, err = d.DecodeBool()
	require.NoError(t, err)
	assert.False(t, v)
}

func TestDecodeBoolRejectsOtherValues(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	require.NoError(t, e.EncodeUint(2))

	d := NewDecoder(&buf)
	_, err := d.DecodeBool()
	require.Error(t, err)
}

func TestFixedOpaquePadding(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	require.NoError(t, e.EncodeFixedOpaque([]byte{1, 2, 3}))
	assert.Equal(t, []byte{1, 2, 3, 0}, buf.Bytes())

	d := NewDecoder(&buf)
	got, err := d.DecodeFixedOpaque(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}

func TestVarOpaqueRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	payload := []byte("hello")
	require.NoError(t, e.EncodeVarOpaque(payload, 64))

	d := NewDecoder(&buf)
	got, err := d.DecodeVarOpaque(64)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestVarOpaqueRejectsOverBound(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	err := e.EncodeVarOpaque(make([]byte, 10), 4)
	require.Error(t, err)
}

func TestDecodeVarOpaqueRejectsOverBound(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	require.NoError(t, e.EncodeVarOpaque(make([]byte, 10), 64))

	d := NewDecoder(&buf)
	_, err := d.DecodeVarOpaque(4)
	require.Error(t, err)
}

func TestStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	require.NoError(t, e.EncodeString("stellarbase", 28))

	d := NewDecoder(&buf)
	got, err := d.DecodeString(28)
	require.NoError(t, err)
	assert.Equal(t, "stellarbase", got)
}

func TestShortInputError(t *testing.T) {
	d := NewDecoder(bytes.NewReader([]byte{0, 0}))
	_, err := d.DecodeUint()
	require.Error(t, err)
}

type hashValue [32]byte

func (h hashValue) EncodeTo(e *Encoder) error { return e.EncodeFixedOpaque(h[:]) }
func (h *hashValue) DecodeFrom(d *Decoder) error {
	b, err := d.DecodeFixedOpaque(32)
	if err != nil {
		return err
	}
	copy(h[:], b)
	return nil
}

func TestMarshalUnmarshalBase64(t *testing.T) {
	var h hashValue
	for i := range h {
		h[i] = byte(i)
	}
	b64, err := MarshalBase64(h)
	require.NoError(t, err)

	var got hashValue
	require.NoError(t, UnmarshalBase64(b64, &got))
	if !assert.Equal(t, h, got) {
		t.Logf("want:\n%s\ngot:\n%s", spew.Sdump(h), spew.Sdump(got))
	}
}

func TestUnmarshalBase64RejectsInvalidBase64(t *testing.T) {
	var got hashValue
	err := UnmarshalBase64("not valid base64!!", &got)
	require.Error(t, err)
}
