package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	auth_mocks "github.com/guardline/sos_guardian_system/internal/auth/mocks"
	"github.com/guardline/sos_guardian_system/internal/models"
	"github.com/guardline/sos_guardian_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает Handler с мокированными сервисами и роутером.
// Все запросы с заголовком Bearer test-token проходят как testUserID.
func newTestHandler(t *testing.T) (*mocks.MockIncidentService, *mocks.MockUserService, *gin.Engine, uuid.UUID) {
	ctrl := gomock.NewController(t)
	incidentsMock := mocks.NewMockIncidentService(ctrl)
	usersMock := mocks.NewMockUserService(ctrl)
	verifierMock := auth_mocks.NewMockTokenVerifier(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	userID := uuid.New()
	verifierMock.EXPECT().Verify("test-token").Return(userID, nil).AnyTimes()
	verifierMock.EXPECT().Verify(gomock.Not("test-token")).Return(uuid.Nil, models.ErrInvalidToken).AnyTimes()

	handler := NewHandler(incidentsMock, usersMock, logger)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, JWTAuthMiddleware(verifierMock, logger))

	return incidentsMock, usersMock, router, userID
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer test-token")
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	incidentsMock, _, router, _ := newTestHandler(t)
	incidentsMock.EXPECT().ListOwnIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest("GET", "/api/v1/incidents/user", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authorization token required")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	_, _, router, _ := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents/user", nil, map[string]string{"Authorization": "Bearer stale-token"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAddGuardian_Success(t *testing.T) {
	_, usersMock, router, userID := newTestHandler(t)
	guardianID := uuid.New()
	reqBody := AddGuardianRequest{
		Name:  "Мама",
		Email: "mom@example.com",
		Phone: "+79991234567",
	}

	usersMock.EXPECT().
		AddGuardian(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, guardian *models.Guardian) error {
			guardian.ID = guardianID
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/users/guardians", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp GuardianResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, guardianID, resp.ID)
	assert.Equal(t, reqBody.Name, resp.Name)
}

func TestAddGuardian_ValidationError(t *testing.T) {
	_, usersMock, router, _ := newTestHandler(t)
	usersMock.EXPECT().AddGuardian(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	// Телефон не в формате E.164
	bodyBytes, _ := json.Marshal(AddGuardianRequest{Name: "Мама", Email: "mom@example.com", Phone: "12345"})
	w := makeRequest(router, "POST", "/api/v1/users/guardians", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddGuardian_Duplicate(t *testing.T) {
	_, usersMock, router, userID := newTestHandler(t)

	usersMock.EXPECT().
		AddGuardian(gomock.Any(), userID, gomock.Any()).
		Return(models.ErrGuardianAlreadyExists).
		Times(1)

	bodyBytes, _ := json.Marshal(AddGuardianRequest{Name: "Мама", Email: "mom@example.com", Phone: "+79991234567"})
	w := makeRequest(router, "POST", "/api/v1/users/guardians", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "guardian already exists")
}

func TestRemoveGuardian_NotFound(t *testing.T) {
	_, usersMock, router, userID := newTestHandler(t)
	guardianID := uuid.New()

	usersMock.EXPECT().
		RemoveGuardian(gomock.Any(), userID, guardianID).
		Return(models.ErrGuardianNotFound).
		Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/users/guardians/"+guardianID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveGuardian_InvalidID(t *testing.T) {
	_, usersMock, router, _ := newTestHandler(t)
	usersMock.EXPECT().RemoveGuardian(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/v1/users/guardians/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddSafeZone_OpenPolygon(t *testing.T) {
	_, usersMock, router, _ := newTestHandler(t)
	usersMock.EXPECT().AddSafeZone(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Кольцо не замкнуто
	bodyBytes, _ := json.Marshal(AddSafeZoneRequest{
		Name:        "Дом",
		Coordinates: [][2]float64{{37.6, 55.7}, {37.61, 55.7}, {37.61, 55.71}, {37.6, 55.71}},
	})
	w := makeRequest(router, "POST", "/api/v1/users/safe-zones", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "polygon must be closed")
}

func TestAddSafeZone_Success(t *testing.T) {
	_, usersMock, router, userID := newTestHandler(t)
	zoneID := uuid.New()

	usersMock.EXPECT().
		AddSafeZone(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, zone *models.SafeZone) error {
			zone.ID = zoneID
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(AddSafeZoneRequest{
		Name:        "Дом",
		Coordinates: [][2]float64{{37.6, 55.7}, {37.61, 55.7}, {37.61, 55.71}, {37.6, 55.7}},
	})
	w := makeRequest(router, "POST", "/api/v1/users/safe-zones", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SafeZoneResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, zoneID, resp.ID)
}

func TestGetProfile_Success(t *testing.T) {
	_, usersMock, router, userID := newTestHandler(t)
	user := &models.User{
		ID:    userID,
		Name:  "Анна",
		Email: "anna@example.com",
		Guardians: []*models.Guardian{
			{ID: uuid.New(), Name: "Мама", FCMToken: "secret-token"},
		},
	}

	usersMock.EXPECT().GetProfile(gomock.Any(), userID).Return(user, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/users/profile", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.ID)
	require.Len(t, resp.Guardians, 1)
	// Push-адрес опекуна наружу не отдается
	assert.NotContains(t, w.Body.String(), "secret-token")
}

func TestUpdateFCMToken_Success(t *testing.T) {
	_, usersMock, router, userID := newTestHandler(t)

	usersMock.EXPECT().UpdateFCMToken(gomock.Any(), userID, "new-device-token").Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(UpdateFCMTokenRequest{Token: "new-device-token"})
	w := makeRequest(router, "PUT", "/api/v1/users/fcm-token", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListOwnIncidents_Success(t *testing.T) {
	incidentsMock, _, router, userID := newTestHandler(t)
	expected := []*models.Incident{
		{ID: uuid.New(), OwnerID: userID, Status: models.IncidentStatusActive, StartTime: time.Now()},
	}

	incidentsMock.EXPECT().
		ListOwnIncidents(gomock.Any(), userID, models.IncidentStatusActive, 2, 5).
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/user?status=active&page=2&pageSize=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, expected[0].ID, resp[0].ID)
}

func TestListGuardedIncidents_DefaultPagination(t *testing.T) {
	incidentsMock, _, router, userID := newTestHandler(t)

	incidentsMock.EXPECT().
		ListGuardedIncidents(gomock.Any(), userID, "", 1, 10).
		Return([]*models.Incident{}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/guardian", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetIncident_Forbidden(t *testing.T) {
	incidentsMock, _, router, userID := newTestHandler(t)
	incidentID := uuid.New()

	incidentsMock.EXPECT().
		GetIncidentDetails(gomock.Any(), incidentID, userID).
		Return(nil, models.ErrUnauthorized).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/"+incidentID.String(), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetIncident_NotFound(t *testing.T) {
	incidentsMock, _, router, userID := newTestHandler(t)
	incidentID := uuid.New()

	incidentsMock.EXPECT().
		GetIncidentDetails(gomock.Any(), incidentID, userID).
		Return(nil, models.ErrIncidentNotFound).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/"+incidentID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetIncident_Success(t *testing.T) {
	incidentsMock, _, router, userID := newTestHandler(t)
	incidentID := uuid.New()
	incident := &models.Incident{
		ID:        incidentID,
		OwnerID:   userID,
		Status:    models.IncidentStatusActive,
		StartTime: time.Now(),
		LocationHistory: []*models.LocationPoint{
			{Longitude: 37.62, Latitude: 55.75, Timestamp: time.Now()},
		},
	}

	incidentsMock.EXPECT().
		GetIncidentDetails(gomock.Any(), incidentID, userID).
		Return(incident, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/"+incidentID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp IncidentDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, incidentID, resp.ID)
	require.Len(t, resp.LocationHistory, 1)
	assert.InDelta(t, 37.62, resp.LocationHistory[0].Longitude, 0.0001)
}

func TestGetLocationHistory_Success(t *testing.T) {
	incidentsMock, _, router, userID := newTestHandler(t)
	incidentID := uuid.New()
	history := []*models.LocationPoint{
		{Longitude: 37.62, Latitude: 55.75},
		{Longitude: 37.63, Latitude: 55.76},
	}

	incidentsMock.EXPECT().
		GetLocationHistory(gomock.Any(), incidentID, userID).
		Return(history, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/"+incidentID.String()+"/location-history", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*LocationPointResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestAddNote_Success(t *testing.T) {
	incidentsMock, _, router, userID := newTestHandler(t)
	incidentID := uuid.New()
	note := &models.IncidentNote{
		ID:         42,
		IncidentID: incidentID,
		AuthorID:   userID,
		Content:    "видел ее у метро",
		CreatedAt:  time.Now(),
	}

	incidentsMock.EXPECT().
		AddNote(gomock.Any(), incidentID, userID, "видел ее у метро").
		Return(note, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(AddNoteRequest{Content: "видел ее у метро"})
	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/notes", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp NoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, userID, resp.AuthorID)
}

func TestAddNote_EmptyContent(t *testing.T) {
	incidentsMock, _, router, _ := newTestHandler(t)
	incidentID := uuid.New()
	incidentsMock.EXPECT().AddNote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(AddNoteRequest{Content: ""})
	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/notes", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, router, _ := newTestHandler(t)

	// Health-check не требует токена
	req := httptest.NewRequest("GET", "/api/v1/system/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
