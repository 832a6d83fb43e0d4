package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListMyBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
}

func (h *Handler) RegisterOwnerRoutes(rg *gin.RouterGroup) {
	rg.GET("/owner/bookings/pending", h.ListPendingRequests)
	rg.GET("/owner/bookings/summary", h.OwnerSummary)
	rg.POST("/bookings/:id/approve", h.ApproveBooking)
	rg.POST("/bookings/:id/reject", h.RejectBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	out, err := h.service.CreateBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.respondError(c, err, "Failed to create booking")
		return
	}
	response.Success(c, http.StatusCreated, out)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	actorRole := domain.UserRole(c.GetString("role"))

	out, err := h.service.GetBooking(c.Request.Context(), id, c.GetInt64("user_id"), actorRole)
	if err != nil {
		h.respondError(c, err, "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	out, err := h.service.ListMyBookings(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": out})
}

// ApproveBooking answers 200 even when the approval collapses into an
// automatic rejection; the payload says which way it went.
func (h *Handler) ApproveBooking(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	out, err := h.service.Approve(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.respondError(c, err, "Failed to approve booking")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) RejectBooking(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	out, err := h.service.Reject(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.respondError(c, err, "Failed to reject booking")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	out, err := h.service.Cancel(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.respondError(c, err, "Failed to cancel booking")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) ListPendingRequests(c *gin.Context) {
	out, err := h.service.ListPendingRequests(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list requests")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": out})
}

func (h *Handler) OwnerSummary(c *gin.Context) {
	out, err := h.service.OwnerSummary(c.Request.Context(), c.GetInt64("user_id"), c.Query("filter"), c.Query("from"), c.Query("to"))
	if err != nil {
		h.respondError(c, err, "Failed to build summary")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation, ErrPastDate, ErrSlotMismatch:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case ErrSlotInactive:
		response.Error(c, http.StatusConflict, "SLOT_INACTIVE", "Slot is not open for booking")
	case ErrSlotTaken:
		response.Error(c, http.StatusConflict, "SLOT_TAKEN", "Slot already has a confirmed booking for that date")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You cannot act on this booking")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case ErrInvalidTransition:
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Booking is not in the required state")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
