package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guardline/sos_guardian_system/internal/config"
	"github.com/guardline/sos_guardian_system/internal/models"
	"github.com/guardline/sos_guardian_system/internal/push"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	GetActiveByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Incident, error)
	AppendLocationPoint(ctx context.Context, incidentID uuid.UUID, point *models.LocationPoint) error
	GetLocationHistory(ctx context.Context, incidentID uuid.UUID) ([]*models.LocationPoint, error)
	SaveNotifications(ctx context.Context, incidentID uuid.UUID, notifications []*models.Notification) error
	GetNotifications(ctx context.Context, incidentID uuid.UUID) ([]*models.Notification, error)
	SetResolution(ctx context.Context, incidentID uuid.UUID, status string, resolution *models.Resolution) error
	AddNote(ctx context.Context, note *models.IncidentNote) error
	GetNotes(ctx context.Context, incidentID uuid.UUID) ([]*models.IncidentNote, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, status string, page, pageSize int) ([]*models.Incident, error)
	ListByGuardian(ctx context.Context, guardianID uuid.UUID, status string, page, pageSize int) ([]*models.Incident, error)
	GetActiveIncidentFromCache(ctx context.Context, ownerID uuid.UUID) (*models.Incident, error)
	SetActiveIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateActiveIncidentCache(ctx context.Context, ownerID uuid.UUID) error
}

// UserRepository определяет контракт для работы с бд пользователей и опекунов
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetGuardians(ctx context.Context, userID uuid.UUID) ([]*models.Guardian, error)
	IsGuardianOf(ctx context.Context, ownerID, callerID uuid.UUID) (bool, error)
	AddGuardian(ctx context.Context, guardian *models.Guardian) error
	RemoveGuardian(ctx context.Context, userID, guardianID uuid.UUID) error
	GetSafeZones(ctx context.Context, userID uuid.UUID) ([]*models.SafeZone, error)
	AddSafeZone(ctx context.Context, zone *models.SafeZone) error
	RemoveSafeZone(ctx context.Context, userID, zoneID uuid.UUID) error
	UpdateProfile(ctx context.Context, userID uuid.UUID, name, phone string) error
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, token string) error
	UpdateLastKnownLocation(ctx context.Context, userID uuid.UUID, point *models.LocationPoint) error
}

// SOSResult - результат мутации инцидента вместе с данными, нужными шлюзу для
// рассылки: владелец и его опекуны на момент операции
type SOSResult struct {
	Incident  *models.Incident
	Owner     *models.User
	Guardians []*models.Guardian
}

// IncidentService определяет контракт жизненного цикла инцидента
type IncidentService interface {
	TriggerSOS(ctx context.Context, ownerID uuid.UUID) (*SOSResult, error)
	AppendLocation(ctx context.Context, ownerID uuid.UUID, point *models.LocationPoint) (*SOSResult, error)
	Resolve(ctx context.Context, incidentID, callerID uuid.UUID, notes string, falseAlarm bool) (*SOSResult, error)
	AddNote(ctx context.Context, incidentID, callerID uuid.UUID, content string) (*models.IncidentNote, error)
	GetIncidentDetails(ctx context.Context, incidentID, callerID uuid.UUID) (*models.Incident, error)
	GetLocationHistory(ctx context.Context, incidentID, callerID uuid.UUID) ([]*models.LocationPoint, error)
	ListOwnIncidents(ctx context.Context, callerID uuid.UUID, status string, page, pageSize int) ([]*models.Incident, error)
	ListGuardedIncidents(ctx context.Context, callerID uuid.UUID, status string, page, pageSize int) ([]*models.Incident, error)
}

type incidentService struct {
	repo       IncidentRepository
	users      UserRepository
	authz      AuthzService
	dispatcher push.Dispatcher
	logger     *logrus.Logger
	cfg        *config.Config
	locks      ownerLocks
}

func NewIncidentService(repo IncidentRepository, users UserRepository, authz AuthzService, dispatcher push.Dispatcher, logger *logrus.Logger, cfg *config.Config) IncidentService {
	return &incidentService{
		repo:       repo,
		users:      users,
		authz:      authz,
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// TriggerSOS создает новый активный инцидент и синхронно уведомляет опекунов
// владельца. Если активный инцидент уже существует, возвращает
// models.ErrActiveIncidentExists. Сбой доставки уведомления не проваливает
// создание инцидента: результат фиксируется в записи уведомления.
func (s *incidentService) TriggerSOS(ctx context.Context, ownerID uuid.UUID) (*SOSResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "TriggerSOS",
		"owner_id": ownerID,
	})
	log.Info("Triggering SOS incident")

	incident := &models.Incident{
		OwnerID:   ownerID,
		Status:    models.IncidentStatusActive,
		StartTime: time.Now().UTC(),
	}

	unlock := s.locks.lock(ownerID)
	err := s.repo.Create(ctx, incident)
	if err == nil {
		if cacheErr := s.repo.SetActiveIncidentCache(ctx, incident); cacheErr != nil {
			log.WithError(cacheErr).Warn("Failed to cache active incident")
		}
	}
	unlock()

	if err != nil {
		if errors.Is(err, models.ErrActiveIncidentExists) {
			log.Warn("Active incident already exists for owner")
			return nil, models.ErrActiveIncidentExists
		}
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		log.WithError(err).Error("Failed to load incident owner")
		return nil, fmt.Errorf("service: could not load owner: %w", err)
	}

	guardians, err := s.users.GetGuardians(ctx, ownerID)
	if err != nil {
		log.WithError(err).Error("Failed to load guardians")
		return nil, fmt.Errorf("service: could not load guardians: %w", err)
	}

	// Отправка push-уведомлений идет вне блокировки владельца: зависший
	// провайдер не должен держать секцию мутаций инцидента
	incident.Notifications = s.notifyGuardians(ctx, incident, owner, guardians)

	unlock = s.locks.lock(ownerID)
	saveErr := s.repo.SaveNotifications(ctx, incident.ID, incident.Notifications)
	unlock()
	if saveErr != nil {
		log.WithError(saveErr).Error("Failed to save notification records")
	}

	log.WithField("incident_id", incident.ID).Info("SOS incident created")
	return &SOSResult{Incident: incident, Owner: owner, Guardians: guardians}, nil
}

// notifyGuardians рассылает SOS-уведомления опекунам независимо друг от друга
// и агрегирует результаты. Сбой одного адреса не блокирует остальные; опекун
// без push-адреса получает запись со статусом failed.
func (s *incidentService) notifyGuardians(ctx context.Context, incident *models.Incident, owner *models.User, guardians []*models.Guardian) []*models.Notification {
	notifications := make([]*models.Notification, len(guardians))

	payload := push.Payload{
		Title: "SOS Alert!",
		Body:  fmt.Sprintf("%s has triggered an SOS alert!", owner.Name),
		Data: map[string]string{
			"type":        "sos_alert",
			"incident_id": incident.ID.String(),
			"owner_id":    owner.ID.String(),
			"owner_name":  owner.Name,
			"timestamp":   incident.StartTime.Format(time.RFC3339),
		},
		HighPriority: true,
	}

	var wg sync.WaitGroup
	for i, guardian := range guardians {
		notification := &models.Notification{
			IncidentID: incident.ID,
			GuardianID: guardian.ID,
			SentAt:     time.Now().UTC(),
		}
		notifications[i] = notification

		if guardian.FCMToken == "" {
			notification.Status = models.NotificationStatusFailed
			notification.ErrorMessage = "guardian has no push address"
			continue
		}

		wg.Add(1)
		go func(token string, n *models.Notification) {
			defer wg.Done()

			sendCtx, cancel := context.WithTimeout(ctx, s.cfg.PushSendTimeout)
			defer cancel()

			result := s.dispatcher.Send(sendCtx, token, payload)
			if result.Success {
				n.Status = models.NotificationStatusSent
				n.ProviderMessageID = result.ProviderMessageID
			} else {
				n.Status = models.NotificationStatusFailed
				n.ErrorMessage = result.ErrorMessage
			}
		}(guardian.FCMToken, notification)
	}
	wg.Wait()

	return notifications
}

// AppendLocation добавляет точку в историю активного инцидента владельца.
// Последнее известное местоположение владельца обновляется всегда, независимо
// от наличия инцидента. Если активного инцидента нет, возвращает (nil, nil) -
// это не ошибка.
func (s *incidentService) AppendLocation(ctx context.Context, ownerID uuid.UUID, point *models.LocationPoint) (*SOSResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "AppendLocation",
		"owner_id": ownerID,
	})

	if err := s.users.UpdateLastKnownLocation(ctx, ownerID, point); err != nil {
		log.WithError(err).Warn("Failed to update last known location")
	}

	unlock := s.locks.lock(ownerID)
	incident, err := s.activeIncident(ctx, ownerID)
	if err != nil {
		unlock()
		log.WithError(err).Error("Failed to look up active incident")
		return nil, fmt.Errorf("service: could not look up active incident: %w", err)
	}
	if incident == nil {
		unlock()
		log.Debug("No active incident, location update ignored")
		return nil, nil
	}

	appendErr := s.repo.AppendLocationPoint(ctx, incident.ID, point)
	unlock()
	if appendErr != nil {
		log.WithError(appendErr).Error("Failed to append location point")
		return nil, fmt.Errorf("service: could not append location point: %w", appendErr)
	}

	guardians, err := s.users.GetGuardians(ctx, ownerID)
	if err != nil {
		log.WithError(err).Error("Failed to load guardians")
		return nil, fmt.Errorf("service: could not load guardians: %w", err)
	}

	return &SOSResult{Incident: incident, Guardians: guardians}, nil
}

// activeIncident ищет активный инцидент владельца, сначала в кеше, затем в бд.
// Вызывается только под блокировкой владельца.
func (s *incidentService) activeIncident(ctx context.Context, ownerID uuid.UUID) (*models.Incident, error) {
	cached, err := s.repo.GetActiveIncidentFromCache(ctx, ownerID)
	if err != nil {
		s.logger.WithError(err).Warn("Active incident cache lookup failed")
	} else if cached != nil {
		return cached, nil
	}

	incident, err := s.repo.GetActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if incident != nil {
		if cacheErr := s.repo.SetActiveIncidentCache(ctx, incident); cacheErr != nil {
			s.logger.WithError(cacheErr).Warn("Failed to cache active incident")
		}
	}
	return incident, nil
}

// Resolve переводит инцидент в терминальный статус. Разрешить инцидент может
// только владелец или его опекун; повторное разрешение возвращает
// models.ErrIncidentAlreadyClosed и не меняет первоначальное resolution.
func (s *incidentService) Resolve(ctx context.Context, incidentID, callerID uuid.UUID, notes string, falseAlarm bool) (*SOSResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "Resolve",
		"incident_id": incidentID,
		"caller_id":   callerID,
	})
	log.Info("Resolving incident")

	// Первый запрос только определяет владельца, состояние перечитывается под
	// блокировкой
	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			return nil, models.ErrIncidentNotFound
		}
		log.WithError(err).Error("Failed to get incident")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	authorized, err := s.authz.IsAuthorized(ctx, callerID, incident.OwnerID)
	if err != nil {
		log.WithError(err).Error("Authorization check failed")
		return nil, fmt.Errorf("service: authorization check failed: %w", err)
	}
	if !authorized {
		log.Warn("Caller is not authorized to resolve incident")
		return nil, models.ErrUnauthorized
	}

	status := models.IncidentStatusResolved
	if falseAlarm {
		status = models.IncidentStatusFalseAlarm
	}
	resolution := &models.Resolution{
		ResolvedBy: callerID,
		ResolvedAt: time.Now().UTC(),
		Notes:      notes,
	}

	unlock := s.locks.lock(incident.OwnerID)
	incident, err = s.repo.GetByID(ctx, incidentID)
	if err == nil {
		if incident.IsTerminal() {
			err = models.ErrIncidentAlreadyClosed
		} else {
			err = s.repo.SetResolution(ctx, incidentID, status, resolution)
		}
	}
	if err == nil {
		if cacheErr := s.repo.InvalidateActiveIncidentCache(ctx, incident.OwnerID); cacheErr != nil {
			log.WithError(cacheErr).Warn("Failed to invalidate active incident cache")
		}
	}
	unlock()

	if err != nil {
		switch {
		case errors.Is(err, models.ErrIncidentNotFound):
			return nil, models.ErrIncidentNotFound
		case errors.Is(err, models.ErrIncidentAlreadyClosed):
			log.Warn("Incident is already closed")
			return nil, models.ErrIncidentAlreadyClosed
		default:
			log.WithError(err).Error("Failed to resolve incident in repository")
			return nil, fmt.Errorf("service: could not resolve incident: %w", err)
		}
	}

	endTime := resolution.ResolvedAt
	incident.Status = status
	incident.EndTime = &endTime
	incident.Resolution = resolution

	owner, err := s.users.GetByID(ctx, incident.OwnerID)
	if err != nil {
		log.WithError(err).Error("Failed to load incident owner")
		return nil, fmt.Errorf("service: could not load owner: %w", err)
	}

	guardians, err := s.users.GetGuardians(ctx, incident.OwnerID)
	if err != nil {
		log.WithError(err).Error("Failed to load guardians")
		return nil, fmt.Errorf("service: could not load guardians: %w", err)
	}

	log.WithField("status", status).Info("Incident resolved")
	return &SOSResult{Incident: incident, Owner: owner, Guardians: guardians}, nil
}

// AddNote добавляет заметку к инциденту. Заметки разрешены и после разрешения
// инцидента и не участвуют в быстром пути оповещений.
func (s *incidentService) AddNote(ctx context.Context, incidentID, callerID uuid.UUID, content string) (*models.IncidentNote, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AddNote",
		"incident_id": incidentID,
	})

	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			return nil, models.ErrIncidentNotFound
		}
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	authorized, err := s.authz.IsAuthorized(ctx, callerID, incident.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("service: authorization check failed: %w", err)
	}
	if !authorized {
		return nil, models.ErrUnauthorized
	}

	note := &models.IncidentNote{
		IncidentID: incidentID,
		AuthorID:   callerID,
		Content:    content,
	}
	if err := s.repo.AddNote(ctx, note); err != nil {
		log.WithError(err).Error("Failed to add note")
		return nil, fmt.Errorf("service: could not add note: %w", err)
	}

	log.Info("Note added to incident")
	return note, nil
}

// GetIncidentDetails возвращает инцидент с историей, уведомлениями и заметками
func (s *incidentService) GetIncidentDetails(ctx context.Context, incidentID, callerID uuid.UUID) (*models.Incident, error) {
	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			return nil, models.ErrIncidentNotFound
		}
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	authorized, err := s.authz.IsAuthorized(ctx, callerID, incident.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("service: authorization check failed: %w", err)
	}
	if !authorized {
		return nil, models.ErrUnauthorized
	}

	if incident.LocationHistory, err = s.repo.GetLocationHistory(ctx, incidentID); err != nil {
		return nil, fmt.Errorf("service: could not get location history: %w", err)
	}
	if incident.Notifications, err = s.repo.GetNotifications(ctx, incidentID); err != nil {
		return nil, fmt.Errorf("service: could not get notifications: %w", err)
	}
	if incident.Notes, err = s.repo.GetNotes(ctx, incidentID); err != nil {
		return nil, fmt.Errorf("service: could not get notes: %w", err)
	}
	return incident, nil
}

// GetLocationHistory возвращает историю местоположений инцидента
func (s *incidentService) GetLocationHistory(ctx context.Context, incidentID, callerID uuid.UUID) ([]*models.LocationPoint, error) {
	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			return nil, models.ErrIncidentNotFound
		}
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	authorized, err := s.authz.IsAuthorized(ctx, callerID, incident.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("service: authorization check failed: %w", err)
	}
	if !authorized {
		return nil, models.ErrUnauthorized
	}

	history, err := s.repo.GetLocationHistory(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get location history: %w", err)
	}
	return history, nil
}

// ListOwnIncidents возвращает инциденты вызывающего с пагинацией
func (s *incidentService) ListOwnIncidents(ctx context.Context, callerID uuid.UUID, status string, page, pageSize int) ([]*models.Incident, error) {
	page, pageSize = normalizePagination(page, pageSize)

	incidents, err := s.repo.ListByOwner(ctx, callerID, status, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

// ListGuardedIncidents возвращает инциденты пользователей, опекуном которых
// является вызывающий
func (s *incidentService) ListGuardedIncidents(ctx context.Context, callerID uuid.UUID, status string, page, pageSize int) ([]*models.Incident, error) {
	page, pageSize = normalizePagination(page, pageSize)

	incidents, err := s.repo.ListByGuardian(ctx, callerID, status, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list guarded incidents: %w", err)
	}
	return incidents, nil
}

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
