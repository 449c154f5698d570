package txnbuild

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EXCCoin/stellarbase/xdr"
)

func TestMemoNoneRoundTrip(t *testing.T) {
	x, err := MemoNone{}.ToXDR()
	require.NoError(t, err)
	assert.Equal(t, xdr.MemoTypeNone, x.Type)

	got, err := memoFromXDR(x)
	require.NoError(t, err)
	assert.Equal(t, MemoNone{}, got)
}

func TestMemoTextRoundTrip(t *testing.T) {
	m := MemoText("hello world")
	x, err := m.ToXDR()
	require.NoError(t, err)

	got, err := memoFromXDR(x)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestMemoTextRejectsOverlong(t *testing.T) {
	_, err := MemoText(strings.Repeat("a", 29)).ToXDR()
	require.Error(t, err)
}

func TestMemoIDRoundTrip(t *testing.T) {
	m := MemoID(9223372036854775807)
	x, err := m.ToXDR()
	require.NoError(t, err)
	got, err := memoFromXDR(x)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestMemoHashRoundTrip(t *testing.T) {
	var m MemoHash
	for i := range m {
		m[i] = byte(i)
	}
	x, err := m.ToXDR()
	require.NoError(t, err)
	got, err := memoFromXDR(x)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestMemoReturnRoundTrip(t *testing.T) {
	var m MemoReturn
	for i := range m {
		m[i] = byte(31 - i)
	}
	x, err := m.ToXDR()
	require.NoError(t, err)
	got, err := memoFromXDR(x)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestMemoFromXDRRejectsUnknownType(t *testing.T) {
	_, err := memoFromXDR(xdr.Memo{Type: xdr.MemoType(99)})
	require.Error(t, err)
}
