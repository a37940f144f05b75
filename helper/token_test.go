package helper

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zacharvey88/teatime-collective-sub000/config"
	"github.com/zacharvey88/teatime-collective-sub000/model"
)

// verifyToken mirrors the route guard's key func.
func verifyToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
}

// The secret can land in the environment well after this package initialises
// (godotenv loads .env lazily). Tokens minted afterwards must still verify
// against the key the middleware reads.
func TestTokenRoundTripWithLateSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "late-loaded-secret")

	claim := model.TokenClaim{AccountId: 7, Username: "admin", Role: "ADMIN"}
	tokenString, err := GenerateAccessToken(claim)
	require.NoError(t, err)

	token, err := verifyToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, float64(7), claims["accountId"])
	assert.Equal(t, "ADMIN", claims["role"])
}

func TestParseTokenAcceptsOwnTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "parse-secret")

	claim := model.TokenClaim{AccountId: 1, Username: "admin", Role: "ADMIN"}
	tokenString, err := GenerateRefreshToken(claim)
	require.NoError(t, err)

	token, err := ParseToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	tokenString, err := GenerateAccessToken(model.TokenClaim{AccountId: 1, Username: "admin"})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ParseToken(tokenString)
	assert.Error(t, err)
}
