package keypair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomKeyPairCanSignAndVerify(t *testing.T) {
	kp, err := Random()
	require.NoError(t, err)
	assert.True(t, kp.CanSign())

	msg := []byte("hello stellarbase")
	sig, err := kp.Sign(msg)
	require.NoError(t, err)
	assert.True(t, kp.Verify(msg, sig))
	assert.False(t, kp.Verify([]byte("tampered"), sig))
}

func TestParseRoundTripsAddress(t *testing.T) {
	kp, err := Random()
	require.NoError(t, err)

	parsed, err := Parse(kp.Address())
	require.NoError(t, err)
	assert.True(t, kp.Equal(parsed))
	assert.False(t, parsed.CanSign())
}

func TestParseRoundTripsSeed(t *testing.T) {
	kp, err := Random()
	require.NoError(t, err)
	seed, err := kp.Seed()
	require.NoError(t, err)

	parsed, err := Parse(seed)
	require.NoError(t, err)
	assert.True(t, kp.Equal(parsed))
	assert.True(t, parsed.CanSign())
}

func TestVerifyOnlyKeyPairCannotSign(t *testing.T) {
	kp, err := Random()
	require.NoError(t, err)
	verifyOnly, err := FromRawPublicKey(kp.PublicKey())
	require.NoError(t, err)

	_, err = verifyOnly.Sign([]byte("anything"))
	require.Error(t, err)
}

func TestSeedRequiresSignable(t *testing.T) {
	kp, err := Random()
	require.NoError(t, err)
	verifyOnly, err := FromRawPublicKey(kp.PublicKey())
	require.NoError(t, err)

	_, err = verifyOnly.Seed()
	require.Error(t, err)
}

func TestHintIsLastFourBytesOfPublicKey(t *testing.T) {
	kp, err := Random()
	require.NoError(t, err)
	pub := kp.PublicKey()
	hint := kp.Hint()
	assert.Equal(t, pub[28:32], hint[:])
}

func TestFromRawSeedRejectsWrongLength(t *testing.T) {
	_, err := FromRawSeed(make([]byte, 31))
	require.Error(t, err)
}
