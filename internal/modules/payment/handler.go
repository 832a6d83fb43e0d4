package payment

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/session", h.CreateSession)
	rg.POST("/payments/verify", h.Verify)
	rg.POST("/payments/failure", h.ReportFailure)
	rg.GET("/bookings/:id/payment", h.GetByBooking)
}

func (h *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	out, err := h.service.CreateSession(c.Request.Context(), c.GetInt64("user_id"), req.BookingID)
	if err != nil {
		h.respondError(c, err, "Failed to create payment session")
		return
	}
	response.Success(c, http.StatusCreated, out)
}

func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	out, err := h.service.Verify(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.respondError(c, err, "Failed to verify payment")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) ReportFailure(c *gin.Context) {
	var req FailureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ReportFailure(c.Request.Context(), c.GetInt64("user_id"), req); err != nil {
		h.respondError(c, err, "Failed to record payment failure")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"recorded": true})
}

func (h *Handler) GetByBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	out, err := h.service.GetByBooking(c.Request.Context(), c.GetInt64("user_id"), bookingID)
	if err != nil {
		h.respondError(c, err, "Failed to load payment")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You cannot act on this payment")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking or payment not found")
	case ErrAlreadyPaid:
		response.Error(c, http.StatusConflict, "ALREADY_PAID", "Booking has already been paid")
	case ErrInvalidState:
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Booking is not awaiting payment")
	case ErrSignature:
		response.Error(c, http.StatusBadRequest, "SIGNATURE_INVALID", "Payment signature verification failed")
	case ErrGateway:
		response.Error(c, http.StatusPaymentRequired, "GATEWAY_ERROR", "Payment gateway rejected the order")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
