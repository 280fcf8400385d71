package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/guardline/sos_guardian_system/internal/service"
	"github.com/guardline/sos_guardian_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthzService(t *testing.T) (service.AuthzService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)
	return service.NewAuthzService(usersMock), usersMock
}

func TestIsAuthorized_Owner(t *testing.T) {
	// Подготовка
	service, usersMock := newTestAuthzService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	// Ожидания: владелец авторизован без обращения к бд
	usersMock.EXPECT().IsGuardianOf(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	authorized, err := service.IsAuthorized(ctx, ownerID, ownerID)

	// Проверки
	require.NoError(t, err)
	assert.True(t, authorized)
}

func TestIsAuthorized_Guardian(t *testing.T) {
	// Подготовка
	service, usersMock := newTestAuthzService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	callerID := uuid.New()

	// Ожидания
	usersMock.EXPECT().IsGuardianOf(ctx, ownerID, callerID).Return(true, nil).Times(1)

	// Действие
	authorized, err := service.IsAuthorized(ctx, callerID, ownerID)

	// Проверки
	require.NoError(t, err)
	assert.True(t, authorized)
}

func TestIsAuthorized_Stranger(t *testing.T) {
	// Подготовка
	service, usersMock := newTestAuthzService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	callerID := uuid.New()

	// Ожидания
	usersMock.EXPECT().IsGuardianOf(ctx, ownerID, callerID).Return(false, nil).Times(1)

	// Действие
	authorized, err := service.IsAuthorized(ctx, callerID, ownerID)

	// Проверки
	require.NoError(t, err)
	assert.False(t, authorized)
}

func TestIsAuthorized_NotTransitive(t *testing.T) {
	// Подготовка: обратное направление опекунства не дает доступа
	service, usersMock := newTestAuthzService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	callerID := uuid.New()

	// Ожидания: проверяется членство вызывающего в наборе владельца, не наоборот
	usersMock.EXPECT().IsGuardianOf(ctx, ownerID, callerID).Return(false, nil).Times(1)

	// Действие
	authorized, err := service.IsAuthorized(ctx, callerID, ownerID)

	// Проверки
	require.NoError(t, err)
	assert.False(t, authorized)
}

func TestIsAuthorized_RepositoryError(t *testing.T) {
	// Подготовка
	service, usersMock := newTestAuthzService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	callerID := uuid.New()
	dbError := fmt.Errorf("соединение потеряно")

	// Ожидания
	usersMock.EXPECT().IsGuardianOf(ctx, ownerID, callerID).Return(false, dbError).Times(1)

	// Действие
	authorized, err := service.IsAuthorized(ctx, callerID, ownerID)

	// Проверки
	require.Error(t, err)
	assert.False(t, authorized)
	assert.ErrorContains(t, err, "failed to check guardian membership")
}
