package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("s3cret", 42, "dean@rmu.ac.th", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseJWTRejects(t *testing.T) {
	token, err := GenerateJWT("s3cret", 1, "a@b.c", "student", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other")
	assert.True(t, errors.Is(err, ErrInvalidToken))

	expired, err := GenerateJWT("s3cret", 1, "a@b.c", "student", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired, "s3cret")
	assert.True(t, errors.Is(err, ErrInvalidToken))

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseJWT(none, "s3cret")
	assert.Error(t, err)

	_, err = ParseJWT(token, "")
	assert.Equal(t, ErrNoSecret, err)

	_, err = GenerateJWT("", 1, "a@b.c", "student", time.Hour)
	assert.Equal(t, ErrNoSecret, err)
}
