package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dev-MihirParmar/Enlighten/errors"
)

func TestEncodeDecoder_RoundTrip(t *testing.T) {
	ed := NewEncodeDecoder([]byte("test key"))

	token, err := ed.Encode(42)
	require.NoError(t, err, "encoding should not fail")
	require.NotEqual(t, "", token, "token should not be empty")

	userID, err := ed.Decode(token)
	require.NoError(t, err, "decoding should not fail")
	assert.Equal(t, 42, userID, "decoded user id should be the encoded one")
}

func TestEncodeDecoder_Expired(t *testing.T) {
	ed := NewEncodeDecoder([]byte("test key"))

	claims := Claims{
		UserID: 42,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Hour)),
			Issuer:    "enlighten",
		},
	}
	bearer, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test key"))
	require.NoError(t, err)

	_, err = ed.Decode(bearer)
	if assert.Error(t, err, "decoding an expired token should fail") {
		errors.AssertCode(t, err, 401)
	}
}

func TestEncodeDecoder_BadSignature(t *testing.T) {
	ed := NewEncodeDecoder([]byte("test key"))
	other := NewEncodeDecoder([]byte("other key"))

	token, err := other.Encode(42)
	require.NoError(t, err)

	_, err = ed.Decode(token)
	if assert.Error(t, err, "decoding a token signed with another key should fail") {
		errors.AssertCode(t, err, 401)
	}
}

func TestEncodeDecoder_Malformed(t *testing.T) {
	ed := NewEncodeDecoder([]byte("test key"))

	_, err := ed.Decode("not.a.token")
	if assert.Error(t, err, "decoding garbage should fail") {
		errors.AssertCode(t, err, 401)
	}
}
