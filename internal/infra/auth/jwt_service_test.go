package auth

import (
	"testing"
	"time"

	"atlas/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

// signTestToken mimics what the external identity service produces.
func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestJWTService_ValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(testAccessSecret))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()
	tokenString := signTestToken(t, testAccessSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"type":  "access",
		"roles": []string{"user", "business"},
	})

	token, err := jwtService.ValidateToken(tokenString, testAccessSecret)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])
}

func TestJWTService_ValidateToken_DefaultSecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(testAccessSecret))
	require.NoError(t, err)

	tokenString := signTestToken(t, testAccessSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Minute).Unix(),
	})

	// Empty secret falls back to the configured access secret.
	token, err := jwtService.ValidateToken(tokenString, "")
	require.NoError(t, err)
	assert.True(t, token.Valid)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(testAccessSecret))
	require.NoError(t, err)

	tokenString := signTestToken(t, "a_completely_different_secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Minute).Unix(),
	})

	_, err = jwtService.ValidateToken(tokenString, testAccessSecret)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(testAccessSecret))
	require.NoError(t, err)

	tokenString := signTestToken(t, testAccessSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err = jwtService.ValidateToken(tokenString, testAccessSecret)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(testAccessSecret))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("clearly-not-a-jwt-token-format", testAccessSecret)
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
