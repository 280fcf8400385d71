package v1

import "github.com/guardline/sos_guardian_system/internal/models"

// ModelToGuardianResponse преобразует доменную модель опекуна в DTO.
// Push-адрес наружу не отдается.
func ModelToGuardianResponse(model *models.Guardian) *GuardianResponse {
	return &GuardianResponse{
		ID:    model.ID,
		Name:  model.Name,
		Email: model.Email,
		Phone: model.Phone,
	}
}

// ModelToSafeZoneResponse преобразует доменную модель зоны в DTO
func ModelToSafeZoneResponse(model *models.SafeZone) *SafeZoneResponse {
	return &SafeZoneResponse{
		ID:          model.ID,
		Name:        model.Name,
		Coordinates: model.Coordinates,
	}
}

// ModelToProfileResponse преобразует пользователя с вложенными коллекциями в DTO
func ModelToProfileResponse(model *models.User) *ProfileResponse {
	resp := &ProfileResponse{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Phone:     model.Phone,
		Guardians: make([]*GuardianResponse, len(model.Guardians)),
		SafeZones: make([]*SafeZoneResponse, len(model.SafeZones)),
	}
	for i, g := range model.Guardians {
		resp.Guardians[i] = ModelToGuardianResponse(g)
	}
	for i, z := range model.SafeZones {
		resp.SafeZones[i] = ModelToSafeZoneResponse(z)
	}
	return resp
}

// ModelToIncidentResponse преобразует доменную модель инцидента в DTO
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:        model.ID,
		OwnerID:   model.OwnerID,
		Status:    model.Status,
		StartTime: model.StartTime,
		EndTime:   model.EndTime,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = ModelToIncidentResponse(incident)
	}
	return responses
}

// ModelToIncidentDetailsResponse преобразует инцидент с историей в DTO
func ModelToIncidentDetailsResponse(model *models.Incident) *IncidentDetailsResponse {
	resp := &IncidentDetailsResponse{
		IncidentResponse: *ModelToIncidentResponse(model),
		LocationHistory:  ModelsToLocationPointResponses(model.LocationHistory),
		Notifications:    make([]*NotificationResponse, len(model.Notifications)),
		Notes:            make([]*NoteResponse, len(model.Notes)),
	}
	for i, n := range model.Notifications {
		resp.Notifications[i] = &NotificationResponse{
			GuardianID:   n.GuardianID,
			Status:       n.Status,
			SentAt:       n.SentAt,
			DeliveredAt:  n.DeliveredAt,
			ViewedAt:     n.ViewedAt,
			ErrorMessage: n.ErrorMessage,
		}
	}
	for i, note := range model.Notes {
		resp.Notes[i] = ModelToNoteResponse(note)
	}
	if model.Resolution != nil {
		resp.Resolution = &ResolutionResponse{
			ResolvedBy: model.Resolution.ResolvedBy,
			ResolvedAt: model.Resolution.ResolvedAt,
			Notes:      model.Resolution.Notes,
		}
	}
	return resp
}

// ModelsToLocationPointResponses преобразует историю местоположений в DTO
func ModelsToLocationPointResponses(points []*models.LocationPoint) []*LocationPointResponse {
	responses := make([]*LocationPointResponse, len(points))
	for i, p := range points {
		responses[i] = &LocationPointResponse{
			Longitude: p.Longitude,
			Latitude:  p.Latitude,
			Speed:     p.Speed,
			Accuracy:  p.Accuracy,
			Timestamp: p.Timestamp,
		}
	}
	return responses
}

// ModelToNoteResponse преобразует заметку инцидента в DTO
func ModelToNoteResponse(model *models.IncidentNote) *NoteResponse {
	return &NoteResponse{
		ID:        model.ID,
		AuthorID:  model.AuthorID,
		Content:   model.Content,
		CreatedAt: model.CreatedAt,
	}
}
