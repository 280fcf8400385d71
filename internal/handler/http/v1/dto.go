package v1

import (
	"time"

	"github.com/google/uuid"
)

// AddGuardianRequest DTO для добавления опекуна
// @Description DTO для добавления опекуна
type AddGuardianRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,e164"`
	FCMToken string `json:"fcm_token,omitempty"`
}

// GuardianResponse DTO опекуна
// @Description DTO опекуна
type GuardianResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

// AddSafeZoneRequest DTO для добавления безопасной зоны
// @Description DTO для добавления безопасной зоны
type AddSafeZoneRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
	// Внешнее кольцо полигона, [longitude, latitude], замкнутое
	Coordinates [][2]float64 `json:"coordinates" validate:"required,min=4"`
}

// SafeZoneResponse DTO безопасной зоны
// @Description DTO безопасной зоны
type SafeZoneResponse struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// UpdateProfileRequest DTO для обновления профиля
// @Description DTO для обновления профиля
type UpdateProfileRequest struct {
	Name  string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Phone string `json:"phone,omitempty" validate:"omitempty,e164"`
}

// UpdateFCMTokenRequest DTO для обновления push-адреса устройства
// @Description DTO для обновления push-адреса устройства
type UpdateFCMTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// ProfileResponse DTO профиля пользователя
// @Description DTO профиля пользователя
type ProfileResponse struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone"`
	Guardians []*GuardianResponse `json:"guardians"`
	SafeZones []*SafeZoneResponse `json:"safe_zones"`
}

// IncidentResponse DTO инцидента в списках
// @Description DTO инцидента
type IncidentResponse struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"owner_id"`
	Status    string     `json:"status"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}

// IncidentDetailsResponse DTO инцидента с историей, уведомлениями и заметками
// @Description DTO инцидента с историей, уведомлениями и заметками
type IncidentDetailsResponse struct {
	IncidentResponse
	LocationHistory []*LocationPointResponse `json:"location_history"`
	Notifications   []*NotificationResponse  `json:"notifications"`
	Notes           []*NoteResponse          `json:"notes"`
	Resolution      *ResolutionResponse      `json:"resolution,omitempty"`
}

// LocationPointResponse DTO точки местоположения
// @Description DTO точки местоположения
type LocationPointResponse struct {
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`
	Speed     float64   `json:"speed"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationResponse DTO записи об уведомлении опекуна
// @Description DTO записи об уведомлении опекуна
type NotificationResponse struct {
	GuardianID   uuid.UUID  `json:"guardian_id"`
	Status       string     `json:"status"`
	SentAt       time.Time  `json:"sent_at"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
	ViewedAt     *time.Time `json:"viewed_at,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
}

// ResolutionResponse DTO данных о разрешении инцидента
// @Description DTO данных о разрешении инцидента
type ResolutionResponse struct {
	ResolvedBy uuid.UUID `json:"resolved_by"`
	ResolvedAt time.Time `json:"resolved_at"`
	Notes      string    `json:"notes,omitempty"`
}

// AddNoteRequest DTO для добавления заметки к инциденту
// @Description DTO для добавления заметки к инциденту
type AddNoteRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

// NoteResponse DTO заметки инцидента
// @Description DTO заметки инцидента
type NoteResponse struct {
	ID        int64     `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
