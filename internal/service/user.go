package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/guardline/sos_guardian_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=user.go -destination=mocks/mock_user.go -package=mocks

// UserService определяет контракт управления профилем, опекунами и
// безопасными зонами. Опекуны и зоны - вложенные коллекции пользователя,
// изменяются только через этот слой.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, name, phone string) error
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, token string) error
	AddGuardian(ctx context.Context, userID uuid.UUID, guardian *models.Guardian) error
	RemoveGuardian(ctx context.Context, userID, guardianID uuid.UUID) error
	AddSafeZone(ctx context.Context, userID uuid.UUID, zone *models.SafeZone) error
	RemoveSafeZone(ctx context.Context, userID, zoneID uuid.UUID) error
}

type userService struct {
	users  UserRepository
	logger *logrus.Logger
}

func NewUserService(users UserRepository, logger *logrus.Logger) UserService {
	return &userService{users: users, logger: logger}
}

// GetProfile возвращает пользователя вместе с опекунами и безопасными зонами
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}

	if user.Guardians, err = s.users.GetGuardians(ctx, userID); err != nil {
		return nil, fmt.Errorf("service: could not get guardians: %w", err)
	}
	if user.SafeZones, err = s.users.GetSafeZones(ctx, userID); err != nil {
		return nil, fmt.Errorf("service: could not get safe zones: %w", err)
	}
	return user, nil
}

// UpdateProfile обновляет имя и телефон пользователя
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, name, phone string) error {
	if err := s.users.UpdateProfile(ctx, userID, name, phone); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.ErrUserNotFound
		}
		return fmt.Errorf("service: could not update profile: %w", err)
	}
	return nil
}

// UpdateFCMToken сохраняет push-адрес устройства пользователя
func (s *userService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, token string) error {
	if err := s.users.UpdateFCMToken(ctx, userID, token); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.ErrUserNotFound
		}
		return fmt.Errorf("service: could not update fcm token: %w", err)
	}
	return nil
}

// AddGuardian добавляет опекуна пользователю. Дубликаты по email или телефону
// отклоняются.
func (s *userService) AddGuardian(ctx context.Context, userID uuid.UUID, guardian *models.Guardian) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "AddGuardian",
		"user_id": userID,
	})

	existing, err := s.users.GetGuardians(ctx, userID)
	if err != nil {
		return fmt.Errorf("service: could not get guardians: %w", err)
	}
	for _, g := range existing {
		if g.Email == guardian.Email || g.Phone == guardian.Phone {
			return models.ErrGuardianAlreadyExists
		}
	}

	guardian.UserID = userID
	if err := s.users.AddGuardian(ctx, guardian); err != nil {
		log.WithError(err).Error("Failed to add guardian in repository")
		return fmt.Errorf("service: could not add guardian: %w", err)
	}

	log.WithField("guardian_id", guardian.ID).Info("Guardian added")
	return nil
}

// RemoveGuardian удаляет опекуна пользователя
func (s *userService) RemoveGuardian(ctx context.Context, userID, guardianID uuid.UUID) error {
	if err := s.users.RemoveGuardian(ctx, userID, guardianID); err != nil {
		if errors.Is(err, models.ErrGuardianNotFound) {
			return models.ErrGuardianNotFound
		}
		return fmt.Errorf("service: could not remove guardian: %w", err)
	}
	return nil
}

// AddSafeZone добавляет безопасную зону пользователю
func (s *userService) AddSafeZone(ctx context.Context, userID uuid.UUID, zone *models.SafeZone) error {
	zone.UserID = userID
	if err := s.users.AddSafeZone(ctx, zone); err != nil {
		return fmt.Errorf("service: could not add safe zone: %w", err)
	}
	return nil
}

// RemoveSafeZone удаляет безопасную зону пользователя
func (s *userService) RemoveSafeZone(ctx context.Context, userID, zoneID uuid.UUID) error {
	if err := s.users.RemoveSafeZone(ctx, userID, zoneID); err != nil {
		if errors.Is(err, models.ErrSafeZoneNotFound) {
			return models.ErrSafeZoneNotFound
		}
		return fmt.Errorf("service: could not remove safe zone: %w", err)
	}
	return nil
}
