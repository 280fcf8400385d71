package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Имена входящих событий
const (
	EventSOSTrigger     = "sos_trigger"
	EventLocationUpdate = "location_update"
	EventResolveSOS     = "resolve_sos"
)

// Имена исходящих событий
const (
	EventSOSConfirmed   = "sos_confirmed"
	EventSOSAlert       = "sos_alert"
	EventSOSError       = "sos_error"
	EventSOSResolved    = "sos_resolved"
	EventResolveConfirm = "resolve_confirmed"
	EventResolveError   = "resolve_error"
	EventLocationError  = "location_error"
)

// Event - конверт события на проводе, в обе стороны.
// Доставка at-most-once, протокола повторов/подтверждений на этом уровне нет.
type Event struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewEvent собирает конверт с сериализованной полезной нагрузкой
func NewEvent(name string, payload any) Event {
	raw, _ := json.Marshal(payload)
	return Event{Event: name, Payload: raw}
}

// LocationUpdateRequest - входящий location_update
type LocationUpdateRequest struct {
	// [longitude, latitude]
	Coordinates [2]float64 `json:"coordinates"`
	Speed       float64    `json:"speed"`
	Accuracy    float64    `json:"accuracy"`
}

// ResolveSOSRequest - входящий resolve_sos
type ResolveSOSRequest struct {
	IncidentID uuid.UUID `json:"incident_id"`
	Notes      string    `json:"notes"`
	FalseAlarm bool      `json:"false_alarm"`
}

// SOSConfirmedPayload - подтверждение создания инцидента вызывающему
type SOSConfirmedPayload struct {
	IncidentID uuid.UUID `json:"incident_id"`
}

// SOSAlertPayload - оповещение опекуна о новом инциденте
type SOSAlertPayload struct {
	IncidentID uuid.UUID `json:"incident_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OwnerName  string    `json:"owner_name"`
	StartTime  time.Time `json:"start_time"`
}

// LocationBroadcastPayload - трансляция точки местоположения опекунам
type LocationBroadcastPayload struct {
	IncidentID uuid.UUID `json:"incident_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Location   Location  `json:"location"`
}

// Location - точка в нотации протокола
type Location struct {
	Coordinates [2]float64 `json:"coordinates"`
	Speed       float64    `json:"speed"`
	Accuracy    float64    `json:"accuracy"`
	Timestamp   time.Time  `json:"timestamp"`
}

// SOSResolvedPayload - оповещение о разрешении инцидента
type SOSResolvedPayload struct {
	IncidentID uuid.UUID `json:"incident_id"`
	ResolvedBy uuid.UUID `json:"resolved_by"`
	ResolvedAt time.Time `json:"resolved_at"`
	Notes      string    `json:"notes,omitempty"`
	FalseAlarm bool      `json:"false_alarm,omitempty"`
}

// ErrorPayload - ошибка, адресованная только вызывающему
type ErrorPayload struct {
	Message string `json:"message"`
}
