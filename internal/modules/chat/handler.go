package chat

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	chatGroup := rg.Group("/chat")
	{
		chatGroup.GET("/ws", h.WebSocket)
		chatGroup.GET("/bookings/:id/messages", h.ListBookingMessages)
		chatGroup.POST("/bookings/:id/messages", h.SendBookingMessage)
		chatGroup.GET("/turfs/:id/messages", h.ListTurfMessages)
		chatGroup.POST("/turfs/:id/messages", h.SendTurfMessage)
	}
}

// WebSocket upgrades the connection and parks it in the hub until the client
// goes away. Incoming frames are only read to detect the close.
func (h *Handler) WebSocket(c *gin.Context) {
	userID := c.GetInt64("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("chat: websocket upgrade failed for user %d: %v", userID, err)
		return
	}

	h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) SendBookingMessage(c *gin.Context) {
	bookingID, ok := h.pathID(c)
	if !ok {
		return
	}

	var req SendBookingMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.SendBookingMessage(c.Request.Context(), bookingID, c.GetInt64("user_id"), req.Message)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, m)
}

func (h *Handler) ListBookingMessages(c *gin.Context) {
	bookingID, ok := h.pathID(c)
	if !ok {
		return
	}

	rows, err := h.service.ListBookingMessages(c.Request.Context(), bookingID, c.GetInt64("user_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"messages": rows})
}

func (h *Handler) SendTurfMessage(c *gin.Context) {
	turfID, ok := h.pathID(c)
	if !ok {
		return
	}

	var req SendTurfMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.SendTurfMessage(c.Request.Context(), turfID, c.GetInt64("user_id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, m)
}

func (h *Handler) ListTurfMessages(c *gin.Context) {
	turfID, ok := h.pathID(c)
	if !ok {
		return
	}

	rows, err := h.service.ListTurfMessages(c.Request.Context(), turfID, c.GetInt64("user_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"messages": rows})
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message cannot be empty")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not part of this conversation")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Conversation not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Chat operation failed")
	}
}
