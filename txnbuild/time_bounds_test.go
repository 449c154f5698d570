package txnbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroTimebondsEncodesToNilTimeBounds(t *testing.T) {
	x, err := Timebounds{}.toXDR()
	require.NoError(t, err)
	assert.Nil(t, x)
}

func TestTimeboundsRoundTrip(t *testing.T) {
	tb := NewTimebounds(100, 200)
	x, err := tb.toXDR()
	require.NoError(t, err)
	require.NotNil(t, x)
	assert.Equal(t, int64(100), int64(x.MinTime))
	assert.Equal(t, int64(200), int64(x.MaxTime))

	got := timeboundsFromXDR(x)
	assert.Equal(t, tb, got)
}

func TestTimeboundsRejectsMaxBeforeMin(t *testing.T) {
	_, err := NewTimebounds(200, 100).toXDR()
	require.Error(t, err)
}

func TestTimeboundsRejectsNegative(t *testing.T) {
	_, err := NewTimebounds(-1, 100).toXDR()
	require.Error(t, err)
}

func TestInfiniteTimeoutHasNoMaxTime(t *testing.T) {
	tb := NewInfiniteTimeout()
	assert.Equal(t, int64(0), tb.MaxTime)
}

func TestNewTimeoutIsInTheFuture(t *testing.T) {
	tb := NewTimeout(3600)
	assert.True(t, tb.MaxTime > 0)
}

func TestLedgerBoundsZeroValueIsNil(t *testing.T) {
	assert.Nil(t, LedgerBounds{}.toXDR())
}

func TestLedgerBoundsRoundTrip(t *testing.T) {
	lb := LedgerBounds{MinLedger: 5, MaxLedger: 10}
	x := lb.toXDR()
	require.NotNil(t, x)
	assert.Equal(t, uint32(5), uint32(x.MinLedger))
	assert.Equal(t, uint32(10), uint32(x.MaxLedger))
}
