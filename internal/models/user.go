package models

import (
	"time"

	"github.com/google/uuid"
)

// User представляет пользователя системы, за которым могут следить опекуны
type User struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	FCMToken  string      `json:"fcm_token,omitempty"`
	Guardians []*Guardian `json:"guardians,omitempty"`
	SafeZones []*SafeZone `json:"safe_zones,omitempty"`
	// Последнее известное местоположение обновляется при каждом location_update,
	// независимо от наличия активного инцидента
	LastKnownLocation *LocationPoint `json:"last_known_location,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// Guardian - доверенный контакт пользователя. Это запись-связь внутри
// пользователя, а не самостоятельный аккаунт: если опекун зарегистрирован в
// системе, ID записи совпадает с ID его пользователя.
type Guardian struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	FCMToken string    `json:"fcm_token,omitempty"`
}

// SafeZone - безопасная зона пользователя (замкнутый полигон)
type SafeZone struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	// Координаты внешнего кольца полигона, [longitude, latitude],
	// первая и последняя точки совпадают
	Coordinates [][2]float64 `json:"coordinates"`
}

// LocationPoint - одна точка местоположения
type LocationPoint struct {
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`
	Speed     float64   `json:"speed"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}
