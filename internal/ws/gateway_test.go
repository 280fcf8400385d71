package ws

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	auth_mocks "github.com/guardline/sos_guardian_system/internal/auth/mocks"
	"github.com/guardline/sos_guardian_system/internal/config"
	"github.com/guardline/sos_guardian_system/internal/models"
	push_mocks "github.com/guardline/sos_guardian_system/internal/push/mocks"
	"github.com/guardline/sos_guardian_system/internal/service"
	"github.com/guardline/sos_guardian_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type gatewayFixture struct {
	server    *httptest.Server
	incidents *mocks.MockIncidentService
	queue     *push_mocks.MockQueuePublisher
	verifier  *auth_mocks.MockTokenVerifier
	registry  *Registry
}

func newGatewayFixture(t *testing.T) *gatewayFixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	incidentsMock := mocks.NewMockIncidentService(ctrl)
	queueMock := push_mocks.NewMockQueuePublisher(ctrl)
	verifierMock := auth_mocks.NewMockTokenVerifier(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{WSWriteTimeout: 5 * time.Second}
	registry := NewRegistry(logger)
	gateway := NewGateway(incidentsMock, registry, queueMock, verifierMock, logger, cfg)

	router := gin.New()
	router.GET("/ws", gateway.Handle)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &gatewayFixture{
		server:    server,
		incidents: incidentsMock,
		queue:     queueMock,
		verifier:  verifierMock,
		registry:  registry,
	}
}

// dial подключается к тестовому шлюзу с токеном в query-параметре
func (f *gatewayFixture) dial(t *testing.T, token string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func TestGateway_RejectsMissingToken(t *testing.T) {
	// Подготовка
	fixture := newGatewayFixture(t)
	fixture.verifier.EXPECT().Verify(gomock.Any()).Times(0)

	// Действие: подключение без токена отклоняется до апгрейда
	url := "ws" + strings.TrimPrefix(fixture.server.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)

	// Проверки
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, conn)
}

func TestGateway_RejectsInvalidToken(t *testing.T) {
	// Подготовка
	fixture := newGatewayFixture(t)
	fixture.verifier.EXPECT().Verify("bad-token").Return(uuid.Nil, models.ErrInvalidToken).Times(1)

	// Действие
	url := "ws" + strings.TrimPrefix(fixture.server.URL, "http") + "/ws?token=bad-token"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)

	// Проверки: ни одно событие не обрабатывается
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, conn)
}

func TestGateway_SOSTrigger_Confirmed(t *testing.T) {
	// Подготовка
	fixture := newGatewayFixture(t)
	userID := uuid.New()
	incidentID := uuid.New()
	fixture.verifier.EXPECT().Verify("token").Return(userID, nil).Times(1)

	result := &service.SOSResult{
		Incident: &models.Incident{ID: incidentID, OwnerID: userID, Status: models.IncidentStatusActive},
		Owner:    &models.User{ID: userID, Name: "Анна"},
	}
	fixture.incidents.EXPECT().TriggerSOS(gomock.Any(), userID).Return(result, nil).Times(1)

	conn := fixture.dial(t, "token")

	// Действие
	require.NoError(t, conn.WriteJSON(Event{Event: EventSOSTrigger}))

	// Проверки: подтверждение уходит вызывающему сразу
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, EventSOSConfirmed, event.Event)

	var payload SOSConfirmedPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, incidentID, payload.IncidentID)
}

func TestGateway_SOSTrigger_DuplicateActive(t *testing.T) {
	// Подготовка
	fixture := newGatewayFixture(t)
	userID := uuid.New()
	fixture.verifier.EXPECT().Verify("token").Return(userID, nil).Times(1)
	fixture.incidents.EXPECT().
		TriggerSOS(gomock.Any(), userID).
		Return(nil, models.ErrActiveIncidentExists).
		Times(1)

	conn := fixture.dial(t, "token")

	// Действие
	require.NoError(t, conn.WriteJSON(Event{Event: EventSOSTrigger}))

	// Проверки
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, EventSOSError, event.Event)

	var payload ErrorPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "Active incident already exists", payload.Message)
}

func TestGateway_LocationUpdate_NoActiveIncidentIsSilent(t *testing.T) {
	// Подготовка
	fixture := newGatewayFixture(t)
	userID := uuid.New()
	incidentID := uuid.New()
	fixture.verifier.EXPECT().Verify("token").Return(userID, nil).Times(1)

	// Нет активного инцидента - обновление проглатывается без ответа
	fixture.incidents.EXPECT().
		AppendLocation(gomock.Any(), userID, gomock.Any()).
		Return(nil, nil).
		Times(1)

	// Последующий триггер подтверждает, что location_update ничего не отправил
	fixture.incidents.EXPECT().
		TriggerSOS(gomock.Any(), userID).
		Return(&service.SOSResult{
			Incident: &models.Incident{ID: incidentID, OwnerID: userID},
			Owner:    &models.User{ID: userID},
		}, nil).
		Times(1)

	conn := fixture.dial(t, "token")

	// Действие
	require.NoError(t, conn.WriteJSON(NewEvent(EventLocationUpdate, LocationUpdateRequest{
		Coordinates: [2]float64{37.62, 55.75},
	})))
	require.NoError(t, conn.WriteJSON(Event{Event: EventSOSTrigger}))

	// Проверки: первым ответом приходит подтверждение триггера
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, EventSOSConfirmed, event.Event)
}

func TestGateway_LocationUpdate_InvalidPayload(t *testing.T) {
	// Подготовка
	fixture := newGatewayFixture(t)
	userID := uuid.New()
	fixture.verifier.EXPECT().Verify("token").Return(userID, nil).Times(1)
	fixture.incidents.EXPECT().AppendLocation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	conn := fixture.dial(t, "token")

	// Действие
	require.NoError(t, conn.WriteJSON(Event{Event: EventLocationUpdate, Payload: json.RawMessage(`"not an object"`)}))

	// Проверки
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, EventLocationError, event.Event)

	var payload ErrorPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "Invalid location payload", payload.Message)
}

func TestGateway_ResolveSOS_Confirmed(t *testing.T) {
	// Подготовка
	fixture := newGatewayFixture(t)
	userID := uuid.New()
	ownerID := uuid.New()
	incidentID := uuid.New()
	resolvedAt := time.Now().UTC().Truncate(time.Second)
	fixture.verifier.EXPECT().Verify("token").Return(userID, nil).Times(1)

	endTime := resolvedAt
	result := &service.SOSResult{
		Incident: &models.Incident{
			ID:      incidentID,
			OwnerID: ownerID,
			Status:  models.IncidentStatusResolved,
			EndTime: &endTime,
			Resolution: &models.Resolution{
				ResolvedBy: userID,
				ResolvedAt: resolvedAt,
				Notes:      "нашлась",
			},
		},
		Owner: &models.User{ID: ownerID},
	}
	fixture.incidents.EXPECT().
		Resolve(gomock.Any(), incidentID, userID, "нашлась", false).
		Return(result, nil).
		Times(1)

	conn := fixture.dial(t, "token")

	// Действие
	require.NoError(t, conn.WriteJSON(NewEvent(EventResolveSOS, ResolveSOSRequest{
		IncidentID: incidentID,
		Notes:      "нашлась",
	})))

	// Проверки
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, EventResolveConfirm, event.Event)

	var payload SOSResolvedPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, incidentID, payload.IncidentID)
	assert.Equal(t, userID, payload.ResolvedBy)
	assert.Equal(t, "нашлась", payload.Notes)
}

func TestGateway_ResolveSOS_Unauthorized(t *testing.T) {
	// Подготовка
	fixture := newGatewayFixture(t)
	userID := uuid.New()
	incidentID := uuid.New()
	fixture.verifier.EXPECT().Verify("token").Return(userID, nil).Times(1)
	fixture.incidents.EXPECT().
		Resolve(gomock.Any(), incidentID, userID, "", false).
		Return(nil, models.ErrUnauthorized).
		Times(1)

	conn := fixture.dial(t, "token")

	// Действие
	require.NoError(t, conn.WriteJSON(NewEvent(EventResolveSOS, ResolveSOSRequest{IncidentID: incidentID})))

	// Проверки: об отказе узнает только вызывающий
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, EventResolveError, event.Event)

	var payload ErrorPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "Unauthorized", payload.Message)
}

func TestGateway_UnregistersChannelOnDisconnect(t *testing.T) {
	// Подготовка
	fixture := newGatewayFixture(t)
	userID := uuid.New()
	fixture.verifier.EXPECT().Verify("token").Return(userID, nil).Times(1)

	conn := fixture.dial(t, "token")

	require.Eventually(t, func() bool {
		return fixture.registry.ChannelCount(userID) == 1
	}, time.Second, 10*time.Millisecond)

	// Действие
	conn.Close()

	// Проверки: канал уходит из реестра после разрыва
	require.Eventually(t, func() bool {
		return fixture.registry.ChannelCount(userID) == 0
	}, time.Second, 10*time.Millisecond)
}
