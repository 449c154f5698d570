package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWholeNumber(t *testing.T) {
	v, err := Parse("100")
	require.NoError(t, err)
	assert.Equal(t, int64(100*scaleFactor), v)
}

func TestParseFractional(t *testing.T) {
	v, err := Parse("100.5")
	require.NoError(t, err)
	assert.Equal(t, int64(1005000000), v)
}

func TestParseFullPrecision(t *testing.T) {
	v, err := Parse("0.0000001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func TestParseRejectsNegative(t *testing.T) {
	_, err := Parse("-1")
	require.Error(t, err)
}

func TestParseRejectsEmpty(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
}

func TestParseRejectsTooManyFractionalDigits(t *testing.T) {
	_, err := Parse("1.12345678")
	require.Error(t, err)
}

func TestParseRejectsOverflow(t *testing.T) {
	_, err := Parse("99999999999999999999")
	require.Error(t, err)
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"100", "100.5", "0.0000001", "922337203685.4775807"} {
		v, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, String(v))
	}
}

func TestStringTrimsTrailingZeros(t *testing.T) {
	assert.Equal(t, "1.1", String(11000000))
	assert.Equal(t, "1", String(10000000))
}

func TestNewPriceReducesFraction(t *testing.T) {
	p, err := NewPrice(0.5)
	require.NoError(t, err)
	assert.Equal(t, int32(1), p.N)
	assert.Equal(t, int32(2), p.D)
}

func TestNewPriceRejectsNonPositive(t *testing.T) {
	_, err := NewPrice(0)
	require.Error(t, err)
	_, err = NewPrice(-1.5)
	require.Error(t, err)
}

func TestPriceFloat64(t *testing.T) {
	p := Price{N: 3, D: 2}
	assert.Equal(t, 1.5, p.Float64())
}
