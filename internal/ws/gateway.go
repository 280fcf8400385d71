package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/guardline/sos_guardian_system/internal/auth"
	"github.com/guardline/sos_guardian_system/internal/config"
	"github.com/guardline/sos_guardian_system/internal/models"
	"github.com/guardline/sos_guardian_system/internal/push"
	"github.com/guardline/sos_guardian_system/internal/service"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// wsChannel оборачивает websocket-соединение в Channel.
// gorilla/websocket допускает только одного конкурентного писателя, поэтому
// запись сериализована мьютексом.
type wsChannel struct {
	conn         *websocket.Conn
	writeMu      sync.Mutex
	writeTimeout time.Duration
}

func (c *wsChannel) Send(event Event) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
		return err
	}
	return c.conn.WriteJSON(event)
}

// Gateway терминирует входящие подключения: аутентифицирует их один раз при
// подключении, регистрирует канал в реестре, десериализует входящие события и
// вызывает жизненный цикл инцидентов, рассылая результаты через реестр и
// push-очередь
type Gateway struct {
	incidents service.IncidentService
	registry  *Registry
	queue     push.QueuePublisher
	verifier  auth.TokenVerifier
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewGateway(incidents service.IncidentService, registry *Registry, queue push.QueuePublisher, verifier auth.TokenVerifier, logger *logrus.Logger, cfg *config.Config) *Gateway {
	return &Gateway{
		incidents: incidents,
		registry:  registry,
		queue:     queue,
		verifier:  verifier,
		logger:    logger,
		cfg:       cfg,
	}
}

// Handle - gin-хэндлер живого подключения. Невалидный токен отклоняет
// подключение еще до апгрейда, ни одно событие не обрабатывается.
func (g *Gateway) Handle(c *gin.Context) {
	token := extractToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	userID, err := g.verifier.Verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		g.logger.WithError(err).Error("Failed to upgrade websocket connection")
		return
	}

	log := g.logger.WithField("user_id", userID)
	log.Info("Websocket client connected")

	ch := &wsChannel{conn: conn, writeTimeout: g.cfg.WSWriteTimeout}
	g.registry.Register(userID, ch)
	defer func() {
		// Закрытие канала не отменяет уже запущенные мутации, оно лишь
		// прекращает дальнейшую доставку на этот канал
		g.registry.Unregister(ch)
		conn.Close()
		log.Info("Websocket client disconnected")
	}()

	for {
		var event Event
		if err := conn.ReadJSON(&event); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Debug("Websocket read failed")
			}
			return
		}

		ctx := c.Request.Context()
		switch event.Event {
		case EventSOSTrigger:
			g.handleSOSTrigger(ctx, userID, ch)
		case EventLocationUpdate:
			g.handleLocationUpdate(ctx, userID, ch, event.Payload)
		case EventResolveSOS:
			g.handleResolveSOS(ctx, userID, ch, event.Payload)
		default:
			log.WithField("event", event.Event).Warn("Unknown event type")
		}
	}
}

// handleSOSTrigger создает инцидент и оповещает опекунов. Подтверждение уходит
// вызывающему сразу, рассылка опекунам его не задерживает. При отказе рассылки
// опекунам не происходит, ошибку получает только вызывающий.
func (g *Gateway) handleSOSTrigger(ctx context.Context, userID uuid.UUID, ch Channel) {
	log := g.logger.WithFields(logrus.Fields{"handler": "sos_trigger", "user_id": userID})

	result, err := g.incidents.TriggerSOS(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrActiveIncidentExists) {
			g.send(ch, NewEvent(EventSOSError, ErrorPayload{Message: "Active incident already exists"}))
			return
		}
		log.WithError(err).Error("SOS trigger failed")
		g.send(ch, NewEvent(EventSOSError, ErrorPayload{Message: "Failed to process SOS alert"}))
		return
	}

	g.send(ch, NewEvent(EventSOSConfirmed, SOSConfirmedPayload{IncidentID: result.Incident.ID}))

	alert := NewEvent(EventSOSAlert, SOSAlertPayload{
		IncidentID: result.Incident.ID,
		OwnerID:    result.Owner.ID,
		OwnerName:  result.Owner.Name,
		StartTime:  result.Incident.StartTime,
	})
	go func() {
		for _, guardian := range result.Guardians {
			g.registry.SendToIdentity(guardian.ID, alert)
		}
	}()
}

// handleLocationUpdate добавляет точку в историю активного инцидента и
// транслирует ее опекунам. Отсутствие активного инцидента - тихий no-op.
func (g *Gateway) handleLocationUpdate(ctx context.Context, userID uuid.UUID, ch Channel, payload json.RawMessage) {
	log := g.logger.WithFields(logrus.Fields{"handler": "location_update", "user_id": userID})

	var req LocationUpdateRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		g.send(ch, NewEvent(EventLocationError, ErrorPayload{Message: "Invalid location payload"}))
		return
	}

	point := &models.LocationPoint{
		Longitude: req.Coordinates[0],
		Latitude:  req.Coordinates[1],
		Speed:     req.Speed,
		Accuracy:  req.Accuracy,
	}

	result, err := g.incidents.AppendLocation(ctx, userID, point)
	if err != nil {
		log.WithError(err).Error("Location update failed")
		g.send(ch, NewEvent(EventLocationError, ErrorPayload{Message: "Failed to update location"}))
		return
	}
	if result == nil {
		return
	}

	broadcast := NewEvent(EventLocationUpdate, LocationBroadcastPayload{
		IncidentID: result.Incident.ID,
		OwnerID:    userID,
		Location: Location{
			Coordinates: req.Coordinates,
			Speed:       req.Speed,
			Accuracy:    req.Accuracy,
			Timestamp:   point.Timestamp,
		},
	})

	guardians := result.Guardians
	go func() {
		tokens := make([]string, 0, len(guardians))
		for _, guardian := range guardians {
			g.registry.SendToIdentity(guardian.ID, broadcast)
			if guardian.FCMToken != "" {
				tokens = append(tokens, guardian.FCMToken)
			}
		}

		// Фоновое data-only обновление для опекунов без открытого канала,
		// best-effort через очередь
		job := push.QueuedPush{
			Tokens: tokens,
			Payload: push.Payload{
				Data: map[string]string{
					"type":        "location_update",
					"incident_id": result.Incident.ID.String(),
					"owner_id":    userID.String(),
					"longitude":   formatFloat(req.Coordinates[0]),
					"latitude":    formatFloat(req.Coordinates[1]),
					"timestamp":   point.Timestamp.Format(time.RFC3339),
				},
			},
		}
		if err := g.queue.Publish(context.WithoutCancel(ctx), job); err != nil {
			log.WithError(err).Warn("Failed to queue location push")
		}
	}()
}

// handleResolveSOS разрешает инцидент и оповещает владельца и всех опекунов.
// Ошибки авторизации и состояния видит только вызывающий.
func (g *Gateway) handleResolveSOS(ctx context.Context, userID uuid.UUID, ch Channel, payload json.RawMessage) {
	log := g.logger.WithFields(logrus.Fields{"handler": "resolve_sos", "user_id": userID})

	var req ResolveSOSRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		g.send(ch, NewEvent(EventResolveError, ErrorPayload{Message: "Invalid resolve payload"}))
		return
	}

	result, err := g.incidents.Resolve(ctx, req.IncidentID, userID, req.Notes, req.FalseAlarm)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrIncidentNotFound):
			g.send(ch, NewEvent(EventResolveError, ErrorPayload{Message: "Incident not found"}))
		case errors.Is(err, models.ErrUnauthorized):
			g.send(ch, NewEvent(EventResolveError, ErrorPayload{Message: "Unauthorized"}))
		case errors.Is(err, models.ErrIncidentAlreadyClosed):
			g.send(ch, NewEvent(EventResolveError, ErrorPayload{Message: "Incident already resolved"}))
		default:
			log.WithError(err).Error("Resolve failed")
			g.send(ch, NewEvent(EventResolveError, ErrorPayload{Message: "Failed to resolve SOS"}))
		}
		return
	}

	payloadOut := SOSResolvedPayload{
		IncidentID: result.Incident.ID,
		ResolvedBy: result.Incident.Resolution.ResolvedBy,
		ResolvedAt: result.Incident.Resolution.ResolvedAt,
		Notes:      result.Incident.Resolution.Notes,
		FalseAlarm: req.FalseAlarm,
	}
	resolved := NewEvent(EventSOSResolved, payloadOut)

	g.send(ch, NewEvent(EventResolveConfirm, payloadOut))

	go func() {
		g.registry.SendToIdentity(result.Owner.ID, resolved)
		for _, guardian := range result.Guardians {
			g.registry.SendToIdentity(guardian.ID, resolved)
		}
	}()
}

func (g *Gateway) send(ch Channel, event Event) {
	if err := ch.Send(event); err != nil {
		g.logger.WithError(err).Warn("Failed to write event to caller channel")
	}
}

// extractToken достает bearer-токен из заголовка Authorization или query-параметра token
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
