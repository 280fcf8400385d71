package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/guardline/sos_guardian_system/internal/models"
	"github.com/guardline/sos_guardian_system/internal/service"
	"github.com/guardline/sos_guardian_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserService(t *testing.T) (service.UserService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return service.NewUserService(usersMock, logger), usersMock
}

func TestGetProfile_Success(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &models.User{ID: userID, Name: "Анна"}
	guardians := []*models.Guardian{{ID: uuid.New(), Name: "Опекун"}}
	zones := []*models.SafeZone{{ID: uuid.New(), Name: "Дом"}}

	// Ожидания
	usersMock.EXPECT().GetByID(ctx, userID).Return(user, nil).Times(1)
	usersMock.EXPECT().GetGuardians(ctx, userID).Return(guardians, nil).Times(1)
	usersMock.EXPECT().GetSafeZones(ctx, userID).Return(zones, nil).Times(1)

	// Действие
	profile, err := service.GetProfile(ctx, userID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, guardians, profile.Guardians)
	assert.Equal(t, zones, profile.SafeZones)
}

func TestGetProfile_NotFound(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Ожидания
	usersMock.EXPECT().GetByID(ctx, userID).Return(nil, models.ErrUserNotFound).Times(1)

	// Действие
	profile, err := service.GetProfile(ctx, userID)

	// Проверки
	require.ErrorIs(t, err, models.ErrUserNotFound)
	assert.Nil(t, profile)
}

func TestAddGuardian_Success(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	guardian := &models.Guardian{Name: "Новый опекун", Email: "new@example.com", Phone: "+79991234567"}

	// Ожидания
	usersMock.EXPECT().GetGuardians(ctx, userID).Return(nil, nil).Times(1)
	usersMock.EXPECT().
		AddGuardian(ctx, guardian).
		DoAndReturn(func(_ context.Context, g *models.Guardian) error {
			g.ID = uuid.New()
			return nil
		}).
		Times(1)

	// Действие
	err := service.AddGuardian(ctx, userID, guardian)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, userID, guardian.UserID)
	assert.NotEqual(t, uuid.Nil, guardian.ID)
}

func TestAddGuardian_DuplicateEmail(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := []*models.Guardian{{ID: uuid.New(), Email: "dup@example.com", Phone: "+79991111111"}}
	guardian := &models.Guardian{Name: "Дубль", Email: "dup@example.com", Phone: "+79992222222"}

	// Ожидания
	usersMock.EXPECT().GetGuardians(ctx, userID).Return(existing, nil).Times(1)
	usersMock.EXPECT().AddGuardian(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.AddGuardian(ctx, userID, guardian)

	// Проверки
	require.ErrorIs(t, err, models.ErrGuardianAlreadyExists)
}

func TestRemoveGuardian_NotFound(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	guardianID := uuid.New()

	// Ожидания
	usersMock.EXPECT().RemoveGuardian(ctx, userID, guardianID).Return(models.ErrGuardianNotFound).Times(1)

	// Действие
	err := service.RemoveGuardian(ctx, userID, guardianID)

	// Проверки
	require.ErrorIs(t, err, models.ErrGuardianNotFound)
}

func TestAddSafeZone_SetsOwner(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	zone := &models.SafeZone{
		Name:        "Школа",
		Coordinates: [][2]float64{{37.6, 55.7}, {37.61, 55.7}, {37.61, 55.71}, {37.6, 55.7}},
	}

	// Ожидания
	usersMock.EXPECT().AddSafeZone(ctx, zone).Return(nil).Times(1)

	// Действие
	err := service.AddSafeZone(ctx, userID, zone)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, userID, zone.UserID)
}
