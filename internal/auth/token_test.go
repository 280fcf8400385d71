package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/guardline/sos_guardian_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTVerifier_Verify_Success(t *testing.T) {
	// Подготовка
	verifier := NewJWTVerifier(testSecret)
	userID := uuid.New()
	token := signToken(t, testSecret, jwt.MapClaims{"id": userID.String()})

	// Действие
	parsedID, err := verifier.Verify(token)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestJWTVerifier_Verify_WrongSecret(t *testing.T) {
	// Подготовка
	verifier := NewJWTVerifier(testSecret)
	token := signToken(t, "other-secret", jwt.MapClaims{"id": uuid.New().String()})

	// Действие
	parsedID, err := verifier.Verify(token)

	// Проверки
	require.ErrorIs(t, err, models.ErrInvalidToken)
	assert.Equal(t, uuid.Nil, parsedID)
}

func TestJWTVerifier_Verify_Expired(t *testing.T) {
	// Подготовка
	verifier := NewJWTVerifier(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"id":  uuid.New().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	// Действие
	_, err := verifier.Verify(token)

	// Проверки: причина отказа не раскрывается
	require.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestJWTVerifier_Verify_MissingIDClaim(t *testing.T) {
	// Подготовка
	verifier := NewJWTVerifier(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "someone"})

	// Действие
	_, err := verifier.Verify(token)

	// Проверки
	require.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestJWTVerifier_Verify_MalformedIDClaim(t *testing.T) {
	// Подготовка
	verifier := NewJWTVerifier(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{"id": "not-a-uuid"})

	// Действие
	_, err := verifier.Verify(token)

	// Проверки
	require.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestJWTVerifier_Verify_Garbage(t *testing.T) {
	// Подготовка
	verifier := NewJWTVerifier(testSecret)

	// Действие
	_, err := verifier.Verify("definitely.not.a.jwt")

	// Проверки
	require.ErrorIs(t, err, models.ErrInvalidToken)
}
