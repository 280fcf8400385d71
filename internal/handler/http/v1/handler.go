package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/guardline/sos_guardian_system/internal/models"
	"github.com/guardline/sos_guardian_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	userService     service.UserService
	logger          *logrus.Logger
	validate        *validator.Validate
}

func NewHandler(incidentService service.IncidentService, userService service.UserService, logger *logrus.Logger) *Handler {
	return &Handler{
		incidentService: incidentService,
		userService:     userService,
		logger:          logger,
		validate:        validator.New(),
	}
}

// @Summary Add a guardian
// @Description Add a trusted contact to the authenticated user's guardian set.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param guardian body AddGuardianRequest true "Guardian creation request"
// @Success 201 {object} GuardianResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Guardian already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/guardians [post]
func (h *Handler) addGuardian(c *gin.Context) {
	var input AddGuardianRequest
	log := h.logger.WithField("method", "addGuardian")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guardian := &models.Guardian{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		FCMToken: input.FCMToken,
	}
	if err := h.userService.AddGuardian(c.Request.Context(), callerID(c), guardian); err != nil {
		if errors.Is(err, models.ErrGuardianAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "guardian already exists"})
			return
		}
		log.WithError(err).Error("Failed to add guardian in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToGuardianResponse(guardian))
}

// @Summary Remove a guardian
// @Description Remove a guardian from the authenticated user's guardian set.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guardian ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid guardian ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Guardian not found"
// @Router /users/guardians/{id} [delete]
func (h *Handler) removeGuardian(c *gin.Context) {
	guardianID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid guardian ID"})
		return
	}
	log := h.logger.WithField("method", "removeGuardian").WithField("guardian_id", guardianID)

	if err := h.userService.RemoveGuardian(c.Request.Context(), callerID(c), guardianID); err != nil {
		if errors.Is(err, models.ErrGuardianNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "guardian not found"})
			return
		}
		log.WithError(err).Error("Failed to remove guardian in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add a safe zone
// @Description Add a safe zone polygon to the authenticated user.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param zone body AddSafeZoneRequest true "Safe zone creation request"
// @Success 201 {object} SafeZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/safe-zones [post]
func (h *Handler) addSafeZone(c *gin.Context) {
	var input AddSafeZoneRequest
	log := h.logger.WithField("method", "addSafeZone")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Полигон должен быть замкнут
	first, last := input.Coordinates[0], input.Coordinates[len(input.Coordinates)-1]
	if first != last {
		c.JSON(http.StatusBadRequest, gin.H{"error": "polygon must be closed"})
		return
	}

	zone := &models.SafeZone{
		Name:        input.Name,
		Coordinates: input.Coordinates,
	}
	if err := h.userService.AddSafeZone(c.Request.Context(), callerID(c), zone); err != nil {
		log.WithError(err).Error("Failed to add safe zone in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToSafeZoneResponse(zone))
}

// @Summary Remove a safe zone
// @Description Remove a safe zone from the authenticated user.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "Safe zone ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid safe zone ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Safe zone not found"
// @Router /users/safe-zones/{id} [delete]
func (h *Handler) removeSafeZone(c *gin.Context) {
	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid safe zone ID"})
		return
	}
	log := h.logger.WithField("method", "removeSafeZone").WithField("zone_id", zoneID)

	if err := h.userService.RemoveSafeZone(c.Request.Context(), callerID(c), zoneID); err != nil {
		if errors.Is(err, models.ErrSafeZoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "safe zone not found"})
			return
		}
		log.WithError(err).Error("Failed to remove safe zone in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get own profile
// @Description Get the authenticated user's profile with guardians and safe zones.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/profile [get]
func (h *Handler) getProfile(c *gin.Context) {
	log := h.logger.WithField("method", "getProfile")

	user, err := h.userService.GetProfile(c.Request.Context(), callerID(c))
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.WithError(err).Error("Failed to get profile from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(user))
}

// @Summary Update own profile
// @Description Update the authenticated user's name and phone.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpdateProfileRequest true "Profile update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /users/profile [put]
func (h *Handler) updateProfile(c *gin.Context) {
	var input UpdateProfileRequest
	log := h.logger.WithField("method", "updateProfile")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), callerID(c), input.Name, input.Phone); err != nil {
		log.WithError(err).Error("Failed to update profile in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Update device push token
// @Description Store the push delivery address of the authenticated user's device.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param token body UpdateFCMTokenRequest true "FCM token update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /users/fcm-token [put]
func (h *Handler) updateFCMToken(c *gin.Context) {
	var input UpdateFCMTokenRequest
	log := h.logger.WithField("method", "updateFCMToken")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.UpdateFCMToken(c.Request.Context(), callerID(c), input.Token); err != nil {
		log.WithError(err).Error("Failed to update fcm token in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary List own incidents
// @Description Get a paginated list of the authenticated user's incidents.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(active, resolved, false_alarm)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/user [get]
func (h *Handler) listOwnIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listOwnIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	status := c.Query("status")

	incidents, err := h.incidentService.ListOwnIncidents(c.Request.Context(), callerID(c), status, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary List guarded incidents
// @Description Get a paginated list of incidents of users guarded by the caller.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(active, resolved, false_alarm)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/guardian [get]
func (h *Handler) listGuardedIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listGuardedIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	status := c.Query("status")

	incidents, err := h.incidentService.ListGuardedIncidents(c.Request.Context(), callerID(c), status, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list guarded incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident details
// @Description Get a single incident with location history, notifications and notes. Caller must be the owner or a guardian of the owner.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentDetailsResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not authorized to view this incident"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("incident_id", incidentID)

	incident, err := h.incidentService.GetIncidentDetails(c.Request.Context(), incidentID, callerID(c))
	if err != nil {
		h.renderIncidentError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentDetailsResponse(incident))
}

// @Summary Get incident location history
// @Description Get the ordered location history of an incident. Caller must be the owner or a guardian of the owner.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} LocationPointResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not authorized to view this incident"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/location-history [get]
func (h *Handler) getLocationHistory(c *gin.Context) {
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getLocationHistory").WithField("incident_id", incidentID)

	history, err := h.incidentService.GetLocationHistory(c.Request.Context(), incidentID, callerID(c))
	if err != nil {
		h.renderIncidentError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToLocationPointResponses(history))
}

// @Summary Add a note to an incident
// @Description Append a free-form note to an incident, regardless of its status. Caller must be the owner or a guardian of the owner.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param note body AddNoteRequest true "Note creation request"
// @Success 201 {object} NoteResponse
// @Failure 400 {object} map[string]string "Invalid request body or incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not authorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/notes [post]
func (h *Handler) addNote(c *gin.Context) {
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "addNote").WithField("incident_id", incidentID)

	var input AddNoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.incidentService.AddNote(c.Request.Context(), incidentID, callerID(c), input.Content)
	if err != nil {
		h.renderIncidentError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToNoteResponse(note))
}

// renderIncidentError переводит доменные ошибки чтения инцидента в HTTP-коды
func (h *Handler) renderIncidentError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrIncidentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	case errors.Is(err, models.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized to view this incident"})
	default:
		log.WithError(err).Error("Incident request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
