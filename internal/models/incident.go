package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы инцидента. Переходы монотонны: active -> resolved | false_alarm,
// выхода из терминального статуса нет.
const (
	IncidentStatusActive     = "active"
	IncidentStatusResolved   = "resolved"
	IncidentStatusFalseAlarm = "false_alarm"
)

// Статусы уведомления опекуна
const (
	NotificationStatusSent      = "sent"
	NotificationStatusDelivered = "delivered"
	NotificationStatusViewed    = "viewed"
	NotificationStatusFailed    = "failed"
)

// Incident представляет один эпизод SOS от триггера до разрешения
type Incident struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"owner_id"`
	Status    string     `json:"status"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	// История местоположений упорядочена по порядку поступления и только растет,
	// пока инцидент активен
	LocationHistory []*LocationPoint `json:"location_history,omitempty"`
	// Набор уведомлений фиксируется в момент создания инцидента: опекуны,
	// добавленные позже, задним числом не уведомляются
	Notifications []*Notification `json:"notifications,omitempty"`
	Resolution    *Resolution     `json:"resolution,omitempty"`
	Notes         []*IncidentNote `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsTerminal сообщает, находится ли инцидент в терминальном статусе
func (i *Incident) IsTerminal() bool {
	return i.Status == IncidentStatusResolved || i.Status == IncidentStatusFalseAlarm
}

// Notification - запись об отправке push-уведомления опекуну при создании инцидента
type Notification struct {
	ID          int64      `json:"id"`
	IncidentID  uuid.UUID  `json:"incident_id"`
	GuardianID  uuid.UUID  `json:"guardian_id"`
	Status      string     `json:"status"`
	SentAt      time.Time  `json:"sent_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	ViewedAt    *time.Time `json:"viewed_at,omitempty"`
	// Идентификатор сообщения у провайдера либо текст ошибки доставки
	ProviderMessageID string `json:"provider_message_id,omitempty"`
	ErrorMessage      string `json:"error_message,omitempty"`
}

// Resolution - данные о разрешении инцидента, заполняются ровно один раз
type Resolution struct {
	ResolvedBy uuid.UUID `json:"resolved_by"`
	ResolvedAt time.Time `json:"resolved_at"`
	Notes      string    `json:"notes,omitempty"`
}

// IncidentNote - свободная заметка к инциденту, может добавляться и после
// разрешения
type IncidentNote struct {
	ID         int64     `json:"id"`
	IncidentID uuid.UUID `json:"incident_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
