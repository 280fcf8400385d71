package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/guardline/sos_guardian_system/internal/models"
)

//go:generate mockgen -source=token.go -destination=mocks/mock_token.go -package=mocks

// TokenVerifier проверяет bearer-токен и возвращает идентификатор пользователя.
// Выпуск токенов - вне системы, здесь они только проверяются.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// JWTVerifier - реализация TokenVerifier для HS256 JWT с клеймом "id"
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify разбирает и проверяет токен. Любая причина отказа сворачивается в
// models.ErrInvalidToken: детали не раскрываются неаутентифицированной стороне.
func (v *JWTVerifier) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return uuid.Nil, models.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, models.ErrInvalidToken
	}

	id, ok := claims["id"].(string)
	if !ok {
		return uuid.Nil, models.ErrInvalidToken
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, models.ErrInvalidToken
	}
	return userID, nil
}
