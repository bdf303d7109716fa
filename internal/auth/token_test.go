package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) *TokenCodec {
	t.Helper()
	key, err := GenerateEncryptionKey()
	require.NoError(t, err)
	codec, err := NewTokenCodec("test-signing-key", key)
	require.NoError(t, err)
	return codec
}

func TestNewTokenCodecRejectsBadKeys(t *testing.T) {
	_, err := NewTokenCodec("", "")
	require.Error(t, err)

	_, err = NewTokenCodec("signing", "not-a-fernet-key")
	require.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	codec := newTestCodec(t)
	subject := TokenSubject{ID: "user-1", Email: "user@example.com"}

	token, exp, err := codec.Issue(subject, time.Hour, false)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	require.Equal(t, subject, claims.User)
	require.False(t, claims.Refresh)
	require.False(t, claims.ResendOnly)
	require.NotEmpty(t, claims.ID)
}

func TestTokenClassesCarryDistinctMarkers(t *testing.T) {
	codec := newTestCodec(t)
	subject := TokenSubject{ID: "user-1", Email: "user@example.com"}

	refreshToken, _, err := codec.Issue(subject, time.Hour, true)
	require.NoError(t, err)
	claims, err := codec.Decode(refreshToken)
	require.NoError(t, err)
	require.True(t, claims.Refresh)

	resendToken, _, err := codec.IssueResendOnly(subject, time.Minute)
	require.NoError(t, err)
	claims, err = codec.Decode(resendToken)
	require.NoError(t, err)
	require.False(t, claims.Refresh)
	require.True(t, claims.ResendOnly)
}

func TestTokenIDsAreUnique(t *testing.T) {
	codec := newTestCodec(t)
	subject := TokenSubject{ID: "user-1", Email: "user@example.com"}

	first, _, err := codec.Issue(subject, time.Hour, false)
	require.NoError(t, err)
	second, _, err := codec.Issue(subject, time.Hour, false)
	require.NoError(t, err)

	firstClaims, err := codec.Decode(first)
	require.NoError(t, err)
	secondClaims, err := codec.Decode(second)
	require.NoError(t, err)
	require.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestDecodeRejectsExpiredToken(t *testing.T) {
	codec := newTestCodec(t)
	token, _, err := codec.Issue(TokenSubject{ID: "user-1"}, -time.Second, false)
	require.NoError(t, err)

	_, err = codec.Decode(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeRejectsTamperedToken(t *testing.T) {
	codec := newTestCodec(t)
	token, _, err := codec.Issue(TokenSubject{ID: "user-1"}, time.Hour, false)
	require.NoError(t, err)

	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	_, err = codec.Decode(string(tampered))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	codec := newTestCodec(t)

	for _, input := range []string{"", "garbage", "eyJhbGciOiJIUzI1NiJ9.x.y"} {
		_, err := codec.Decode(input)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestDecodeRejectsForeignKeys(t *testing.T) {
	codec := newTestCodec(t)
	token, _, err := codec.Issue(TokenSubject{ID: "user-1"}, time.Hour, false)
	require.NoError(t, err)

	// Different encryption key entirely.
	other := newTestCodec(t)
	_, err = other.Decode(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Same encryption key, different signing key.
	encoded := codec.encryptionKey.Encode()
	wrongSigner, err := NewTokenCodec("other-signing-key", encoded)
	require.NoError(t, err)
	_, err = wrongSigner.Decode(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
