package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guardline/sos_guardian_system/internal/models"
	"github.com/guardline/sos_guardian_system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

// GetByID возвращает пользователя с последним известным местоположением
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := &models.User{}
	var lon, lat *float64
	var locAt *time.Time

	query := `
		SELECT
			id,
			name,
			email,
			phone,
			COALESCE(fcm_token, ''),
			ST_X(last_location::geometry) as longitude,
			ST_Y(last_location::geometry) as latitude,
			last_location_at,
			created_at,
			updated_at
		FROM users
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.FCMToken,
		&lon,
		&lat,
		&locAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	if lon != nil && lat != nil && locAt != nil {
		user.LastKnownLocation = &models.LocationPoint{
			Longitude: *lon,
			Latitude:  *lat,
			Timestamp: *locAt,
		}
	}
	return user, nil
}

// GetGuardians возвращает набор опекунов пользователя.
// Читается заново при каждом вызове: состав опекунов меняется между вызовами,
// кешировать его для проверок авторизации нельзя.
func (r *UserRepository) GetGuardians(ctx context.Context, userID uuid.UUID) ([]*models.Guardian, error) {
	query := `
		SELECT id, user_id, name, email, phone, COALESCE(fcm_token, '')
		FROM guardians
		WHERE user_id = $1
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guardians: %w", err)
	}
	defer rows.Close()

	guardians := make([]*models.Guardian, 0)
	for rows.Next() {
		g := &models.Guardian{}
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.Email, &g.Phone, &g.FCMToken); err != nil {
			return nil, fmt.Errorf("failed to scan guardian row: %w", err)
		}
		guardians = append(guardians, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error guardians iteration: %w", err)
	}
	return guardians, nil
}

// IsGuardianOf проверяет по сохраненному идентификатору, числится ли caller
// опекуном owner
func (r *UserRepository) IsGuardianOf(ctx context.Context, ownerID, callerID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM guardians WHERE user_id = $1 AND id = $2
		);
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, ownerID, callerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check guardian membership: %w", err)
	}
	return exists, nil
}

// AddGuardian добавляет опекуна пользователю
func (r *UserRepository) AddGuardian(ctx context.Context, guardian *models.Guardian) error {
	query := `
		INSERT INTO guardians (id, user_id, name, email, phone, fcm_token)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''));
	`
	if guardian.ID == uuid.Nil {
		guardian.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, query,
		guardian.ID,
		guardian.UserID,
		guardian.Name,
		guardian.Email,
		guardian.Phone,
		guardian.FCMToken,
	)
	if err != nil {
		return fmt.Errorf("failed to add guardian: %w", err)
	}
	return nil
}

// RemoveGuardian удаляет опекуна пользователя
func (r *UserRepository) RemoveGuardian(ctx context.Context, userID, guardianID uuid.UUID) error {
	query := `DELETE FROM guardians WHERE user_id = $1 AND id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, userID, guardianID)
	if err != nil {
		return fmt.Errorf("failed to remove guardian: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrGuardianNotFound
	}
	return nil
}

// GetSafeZones возвращает безопасные зоны пользователя
func (r *UserRepository) GetSafeZones(ctx context.Context, userID uuid.UUID) ([]*models.SafeZone, error) {
	query := `
		SELECT id, user_id, name, ST_AsText(area::geometry)
		FROM safe_zones
		WHERE user_id = $1
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get safe zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.SafeZone, 0)
	for rows.Next() {
		zone := &models.SafeZone{}
		var wkt string
		if err := rows.Scan(&zone.ID, &zone.UserID, &zone.Name, &wkt); err != nil {
			return nil, fmt.Errorf("failed to scan safe zone row: %w", err)
		}
		zone.Coordinates = parsePolygonWKT(wkt)
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error safe zones iteration: %w", err)
	}
	return zones, nil
}

// AddSafeZone добавляет безопасную зону пользователю
func (r *UserRepository) AddSafeZone(ctx context.Context, zone *models.SafeZone) error {
	query := `
		INSERT INTO safe_zones (user_id, name, area)
		VALUES ($1, $2, ST_GeogFromText($3)) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query, zone.UserID, zone.Name, polygonWKT(zone.Coordinates)).Scan(&zone.ID)
	if err != nil {
		return fmt.Errorf("failed to add safe zone: %w", err)
	}
	return nil
}

// RemoveSafeZone удаляет безопасную зону пользователя
func (r *UserRepository) RemoveSafeZone(ctx context.Context, userID, zoneID uuid.UUID) error {
	query := `DELETE FROM safe_zones WHERE user_id = $1 AND id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, userID, zoneID)
	if err != nil {
		return fmt.Errorf("failed to remove safe zone: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrSafeZoneNotFound
	}
	return nil
}

// UpdateProfile обновляет имя и телефон пользователя
func (r *UserRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, name, phone string) error {
	query := `
		UPDATE users SET
			name = COALESCE(NULLIF($1, ''), name),
			phone = COALESCE(NULLIF($2, ''), phone),
			updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, name, phone, userID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// UpdateFCMToken сохраняет push-адрес устройства пользователя
func (r *UserRepository) UpdateFCMToken(ctx context.Context, userID uuid.UUID, token string) error {
	query := `UPDATE users SET fcm_token = $1, updated_at = NOW() WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, token, userID)
	if err != nil {
		return fmt.Errorf("failed to update fcm token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// UpdateLastKnownLocation обновляет последнее известное местоположение пользователя
func (r *UserRepository) UpdateLastKnownLocation(ctx context.Context, userID uuid.UUID, point *models.LocationPoint) error {
	query := `
		UPDATE users SET
			last_location = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			last_location_at = NOW(),
			updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, point.Longitude, point.Latitude, userID)
	if err != nil {
		return fmt.Errorf("failed to update last known location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// polygonWKT собирает WKT-представление полигона из внешнего кольца
func polygonWKT(ring [][2]float64) string {
	parts := make([]string, 0, len(ring))
	for _, p := range ring {
		parts = append(parts, fmt.Sprintf("%g %g", p[0], p[1]))
	}
	return fmt.Sprintf("SRID=4326;POLYGON((%s))", strings.Join(parts, ", "))
}

// parsePolygonWKT разбирает внешнее кольцо из WKT вида POLYGON((x y, x y, ...))
func parsePolygonWKT(wkt string) [][2]float64 {
	start := strings.Index(wkt, "((")
	end := strings.Index(wkt, "))")
	if start == -1 || end == -1 || end <= start {
		return nil
	}
	ring := make([][2]float64, 0)
	for _, pair := range strings.Split(wkt[start+2:end], ",") {
		var x, y float64
		if _, err := fmt.Sscanf(strings.TrimSpace(pair), "%f %f", &x, &y); err != nil {
			return nil
		}
		ring = append(ring, [2]float64{x, y})
	}
	return ring
}
