package pricing

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
	rg.GET("/turfs/:id/pricing", h.Get)
}

func (h *Handler) RegisterOwnerRoutes(rg *gin.RouterGroup) {
	rg.PUT("/turfs/:id/pricing", h.Update)
}

func (h *Handler) Get(c *gin.Context) {
	turfID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid turf id")
		return
	}

	out, err := h.service.Get(c.Request.Context(), turfID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Update(c *gin.Context) {
	turfID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid turf id")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	out, err := h.service.Update(c.Request.Context(), turfID, c.GetInt64("user_id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid pricing values")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this turf")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Turf not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Pricing operation failed")
	}
}
