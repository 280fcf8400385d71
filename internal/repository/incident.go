package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guardline/sos_guardian_system/internal/models"
	"github.com/guardline/sos_guardian_system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Частичный уникальный индекс (owner_id) WHERE status='active' превращает
// гонку "проверить-затем-вставить" в атомарную операцию на стороне БД
const activeIncidentIndexName = "incidents_owner_active_idx"

const pgUniqueViolation = "23505"

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает новую запись об инциденте в бд.
// Если у владельца уже есть активный инцидент, возвращает models.ErrActiveIncidentExists.
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (owner_id, status, start_time)
		VALUES ($1, $2, $3) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.OwnerID,
		incident.Status,
		incident.StartTime,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == activeIncidentIndexName {
			return models.ErrActiveIncidentExists
		}
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID вместе с данными о разрешении
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	incident := &models.Incident{}
	var resolvedBy *uuid.UUID
	var resolvedAt *time.Time
	var resolutionNotes *string

	query := `
		SELECT
			id,
			owner_id,
			status,
			start_time,
			end_time,
			resolved_by,
			resolved_at,
			resolution_notes,
			created_at,
			updated_at
		FROM incidents
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&incident.ID,
		&incident.OwnerID,
		&incident.Status,
		&incident.StartTime,
		&incident.EndTime,
		&resolvedBy,
		&resolvedAt,
		&resolutionNotes,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrIncidentNotFound
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}

	if resolvedBy != nil && resolvedAt != nil {
		incident.Resolution = &models.Resolution{
			ResolvedBy: *resolvedBy,
			ResolvedAt: *resolvedAt,
		}
		if resolutionNotes != nil {
			incident.Resolution.Notes = *resolutionNotes
		}
	}
	return incident, nil
}

// GetActiveByOwner возвращает активный инцидент владельца или nil, если его нет
func (r *IncidentRepository) GetActiveByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Incident, error) {
	incident := &models.Incident{}
	query := `
		SELECT id, owner_id, status, start_time, end_time, created_at, updated_at
		FROM incidents
		WHERE owner_id = $1 AND status = 'active';
	`
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&incident.ID,
		&incident.OwnerID,
		&incident.Status,
		&incident.StartTime,
		&incident.EndTime,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active incident: %w", err)
	}
	return incident, nil
}

// AppendLocationPoint добавляет точку в историю местоположений инцидента.
// Порядок истории задается порядком вставки (bigserial id), а не таймштампом клиента.
func (r *IncidentRepository) AppendLocationPoint(ctx context.Context, incidentID uuid.UUID, point *models.LocationPoint) error {
	query := `
		INSERT INTO incident_locations (incident_id, location, speed, accuracy)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5) RETURNING recorded_at;
	`
	err := r.db.QueryRow(ctx, query,
		incidentID,
		point.Longitude,
		point.Latitude,
		point.Speed,
		point.Accuracy,
	).Scan(&point.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to append location point: %w", err)
	}
	return nil
}

// GetLocationHistory возвращает историю местоположений инцидента в порядке добавления
func (r *IncidentRepository) GetLocationHistory(ctx context.Context, incidentID uuid.UUID) ([]*models.LocationPoint, error) {
	query := `
		SELECT
			ST_X(location::geometry) as longitude,
			ST_Y(location::geometry) as latitude,
			speed,
			accuracy,
			recorded_at
		FROM incident_locations
		WHERE incident_id = $1
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get location history: %w", err)
	}
	defer rows.Close()

	points := make([]*models.LocationPoint, 0)
	for rows.Next() {
		point := &models.LocationPoint{}
		if err := rows.Scan(&point.Longitude, &point.Latitude, &point.Speed, &point.Accuracy, &point.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan location point row: %w", err)
		}
		points = append(points, point)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error location history iteration: %w", err)
	}
	return points, nil
}

// SaveNotifications сохраняет записи об уведомлениях опекунов одним батчем
func (r *IncidentRepository) SaveNotifications(ctx context.Context, incidentID uuid.UUID, notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO incident_notifications (incident_id, guardian_id, status, sent_at, provider_message_id, error_message)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, n := range notifications {
		batch.Queue(query, incidentID, n.GuardianID, n.Status, n.SentAt, n.ProviderMessageID, n.ErrorMessage)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range notifications {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save notification: %w", err)
		}
	}
	return nil
}

// GetNotifications возвращает записи об уведомлениях инцидента
func (r *IncidentRepository) GetNotifications(ctx context.Context, incidentID uuid.UUID) ([]*models.Notification, error) {
	query := `
		SELECT id, incident_id, guardian_id, status, sent_at, delivered_at, viewed_at, provider_message_id, error_message
		FROM incident_notifications
		WHERE incident_id = $1
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]*models.Notification, 0)
	for rows.Next() {
		n := &models.Notification{}
		err := rows.Scan(
			&n.ID,
			&n.IncidentID,
			&n.GuardianID,
			&n.Status,
			&n.SentAt,
			&n.DeliveredAt,
			&n.ViewedAt,
			&n.ProviderMessageID,
			&n.ErrorMessage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error notifications iteration: %w", err)
	}
	return notifications, nil
}

// SetResolution переводит активный инцидент в терминальный статус.
// Условие status='active' гарантирует, что повторное разрешение не перезапишет
// первое: при нуле затронутых строк возвращается models.ErrIncidentAlreadyClosed.
func (r *IncidentRepository) SetResolution(ctx context.Context, incidentID uuid.UUID, status string, resolution *models.Resolution) error {
	query := `
		UPDATE incidents SET
			status = $1,
			end_time = $2,
			resolved_by = $3,
			resolved_at = $4,
			resolution_notes = $5,
			updated_at = NOW()
		WHERE id = $6 AND status = 'active';
	`
	cmdTag, err := r.db.Exec(ctx, query,
		status,
		resolution.ResolvedAt,
		resolution.ResolvedBy,
		resolution.ResolvedAt,
		resolution.Notes,
		incidentID,
	)
	if err != nil {
		return fmt.Errorf("failed to resolve incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return models.ErrIncidentAlreadyClosed
	}
	return nil
}

// AddNote добавляет заметку к инциденту независимо от его статуса
func (r *IncidentRepository) AddNote(ctx context.Context, note *models.IncidentNote) error {
	query := `
		INSERT INTO incident_notes (incident_id, author_id, content)
		VALUES ($1, $2, $3) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, note.IncidentID, note.AuthorID, note.Content).Scan(&note.ID, &note.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add incident note: %w", err)
	}
	return nil
}

// GetNotes возвращает заметки инцидента в порядке добавления
func (r *IncidentRepository) GetNotes(ctx context.Context, incidentID uuid.UUID) ([]*models.IncidentNote, error) {
	query := `
		SELECT id, incident_id, author_id, content, created_at
		FROM incident_notes
		WHERE incident_id = $1
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get incident notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*models.IncidentNote, 0)
	for rows.Next() {
		note := &models.IncidentNote{}
		if err := rows.Scan(&note.ID, &note.IncidentID, &note.AuthorID, &note.Content, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan incident note row: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error incident notes iteration: %w", err)
	}
	return notes, nil
}

// ListByOwner возвращает инциденты владельца с пагинацией и фильтром по статусу
func (r *IncidentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, status string, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT id, owner_id, status, start_time, end_time, created_at, updated_at
		FROM incidents
		WHERE owner_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY start_time DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.db.Query(ctx, query, ownerID, status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents by owner: %w", err)
	}
	defer rows.Close()

	return scanIncidentRows(rows)
}

// ListByGuardian возвращает инциденты всех пользователей, у которых вызывающий
// числится опекуном
func (r *IncidentRepository) ListByGuardian(ctx context.Context, guardianID uuid.UUID, status string, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT i.id, i.owner_id, i.status, i.start_time, i.end_time, i.created_at, i.updated_at
		FROM incidents i
		WHERE EXISTS (
			SELECT 1 FROM guardians g
			WHERE g.user_id = i.owner_id AND g.id = $1
		)
		AND ($2 = '' OR i.status = $2)
		ORDER BY i.start_time DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.db.Query(ctx, query, guardianID, status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents by guardian: %w", err)
	}
	defer rows.Close()

	return scanIncidentRows(rows)
}

func scanIncidentRows(rows pgx.Rows) ([]*models.Incident, error) {
	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		err := rows.Scan(
			&incident.ID,
			&incident.OwnerID,
			&incident.Status,
			&incident.StartTime,
			&incident.EndTime,
			&incident.CreatedAt,
			&incident.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// GetActiveIncidentFromCache пытается получить активный инцидент владельца из Redis
func (r *IncidentRepository) GetActiveIncidentFromCache(ctx context.Context, ownerID uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("active_incident:%s", ownerID.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal active incident from cache: %w", err)
	}
	return incident, nil
}

// SetActiveIncidentCache сохраняет активный инцидент владельца в Redis
func (r *IncidentRepository) SetActiveIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("active_incident:%s", incident.OwnerID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal active incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set active incident in cache: %w", err)
	}
	return nil
}

// InvalidateActiveIncidentCache удаляет активный инцидент владельца из Redis кэша
func (r *IncidentRepository) InvalidateActiveIncidentCache(ctx context.Context, ownerID uuid.UUID) error {
	key := fmt.Sprintf("active_incident:%s", ownerID.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate active incident cache: %w", err)
	}
	return nil
}
