package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=authz.go -destination=mocks/mock_authz.go -package=mocks

// AuthzService определяет единственную примитивную проверку авторизации ядра:
// вызывающий - владелец или один из его опекунов
type AuthzService interface {
	IsAuthorized(ctx context.Context, callerID, ownerID uuid.UUID) (bool, error)
}

type authzService struct {
	users UserRepository
}

func NewAuthzService(users UserRepository) AuthzService {
	return &authzService{users: users}
}

// IsAuthorized возвращает true, если callerID совпадает с ownerID или числится
// в наборе опекунов владельца. Опекунство направленное и нетранзитивное.
// Состав опекунов читается заново при каждом вызове и не кешируется.
func (s *authzService) IsAuthorized(ctx context.Context, callerID, ownerID uuid.UUID) (bool, error) {
	if callerID == ownerID {
		return true, nil
	}

	isGuardian, err := s.users.IsGuardianOf(ctx, ownerID, callerID)
	if err != nil {
		return false, fmt.Errorf("authz: failed to check guardian membership: %w", err)
	}
	return isGuardian, nil
}
