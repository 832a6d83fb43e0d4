package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/turfs", h.ListTurfs)
	rg.GET("/turfs/:id", h.GetTurf)
	rg.GET("/turfs/:id/slots", h.ListSlots)
	rg.GET("/turfs/:id/availability", h.GetAvailability)
}

func (h *Handler) RegisterOwnerRoutes(rg *gin.RouterGroup) {
	rg.POST("/turfs", h.CreateTurf)
	rg.GET("/owner/turfs", h.ListOwnerTurfs)
	rg.PATCH("/turfs/:id", h.UpdateTurf)
	rg.DELETE("/turfs/:id", h.DeleteTurf)
	rg.POST("/turfs/:id/slots", h.AddSlot)
	rg.PATCH("/slots/:id", h.SetSlotActive)
	rg.DELETE("/slots/:id", h.DeleteSlot)
}

func (h *Handler) CreateTurf(c *gin.Context) {
	var req CreateTurfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	out, err := h.service.CreateTurf(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.respondError(c, err, "Failed to create turf")
		return
	}
	response.Success(c, http.StatusCreated, out)
}

func (h *Handler) ListTurfs(c *gin.Context) {
	out, err := h.service.ListTurfs(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list turfs")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"turfs": out})
}

func (h *Handler) ListOwnerTurfs(c *gin.Context) {
	out, err := h.service.ListOwnerTurfs(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list turfs")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"turfs": out})
}

func (h *Handler) GetTurf(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid turf id")
		return
	}

	out, err := h.service.GetTurf(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to load turf")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) UpdateTurf(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid turf id")
		return
	}

	var req UpdateTurfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	out, err := h.service.UpdateTurf(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		h.respondError(c, err, "Failed to update turf")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) DeleteTurf(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid turf id")
		return
	}

	if err := h.service.DeleteTurf(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		h.respondError(c, err, "Failed to delete turf")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) AddSlot(c *gin.Context) {
	turfID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid turf id")
		return
	}

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	slot, err := h.service.AddSlot(c.Request.Context(), turfID, c.GetInt64("user_id"), req)
	if err != nil {
		h.respondError(c, err, "Failed to add slot")
		return
	}
	response.Success(c, http.StatusCreated, slot)
}

func (h *Handler) ListSlots(c *gin.Context) {
	turfID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid turf id")
		return
	}

	activeOnly := c.DefaultQuery("active", "true") != "false"
	slots, err := h.service.ListSlots(c.Request.Context(), turfID, activeOnly)
	if err != nil {
		h.respondError(c, err, "Failed to list slots")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) SetSlotActive(c *gin.Context) {
	slotID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid slot id")
		return
	}

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetSlotActive(c.Request.Context(), slotID, c.GetInt64("user_id"), *req.IsActive); err != nil {
		h.respondError(c, err, "Failed to update slot")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"is_active": *req.IsActive})
}

func (h *Handler) DeleteSlot(c *gin.Context) {
	slotID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid slot id")
		return
	}

	if err := h.service.DeleteSlot(c.Request.Context(), slotID, c.GetInt64("user_id")); err != nil {
		h.respondError(c, err, "Failed to delete slot")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) GetAvailability(c *gin.Context) {
	turfID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid turf id")
		return
	}

	date := c.Query("date")
	out, err := h.service.GetAvailability(c.Request.Context(), turfID, date)
	if err != nil {
		h.respondError(c, err, "Failed to load availability")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this turf")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Turf or slot not found")
	case ErrSlotWindowTaken:
		response.Error(c, http.StatusConflict, "SLOT_EXISTS", "This time window is already registered")
	case ErrSlotInUse:
		response.Error(c, http.StatusConflict, "SLOT_IN_USE", "Slot has upcoming bookings")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
