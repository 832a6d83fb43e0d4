package feedback

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
	rg.GET("/turfs/:id/feedback", h.TurfSummary)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/turfs/:id/feedback", h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	turfID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid turf id")
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
		return
	}

	out, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), turfID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, out)
}

func (h *Handler) TurfSummary(c *gin.Context) {
	turfID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid turf id")
		return
	}

	out, err := h.service.TurfSummary(c.Request.Context(), turfID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid feedback")
	case ErrNotEligible:
		response.Error(c, http.StatusForbidden, "NOT_ELIGIBLE", "Complete a booking on this turf before rating it")
	case ErrAlreadyRated:
		response.Error(c, http.StatusConflict, "ALREADY_RATED", "You already rated this turf")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Turf not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Feedback operation failed")
	}
}
