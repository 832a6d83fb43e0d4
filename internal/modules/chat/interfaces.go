package chat

import (
	"context"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/repository"
)

type ChatRepository interface {
	SaveBookingMessage(ctx context.Context, m *domain.ChatMessage) error
	ListBookingMessages(ctx context.Context, bookingID int64) ([]domain.ChatMessage, error)
	SaveTurfMessage(ctx context.Context, m *domain.TurfChatMessage) error
	ListTurfMessages(ctx context.Context, turfID, viewerID int64) ([]domain.TurfChatMessage, error)
}

// BookingReader resolves the two parties of a booking conversation.
type BookingReader interface {
	GetDetails(ctx context.Context, bookingID int64) (*repository.BookingDetails, error)
}

type TurfReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
}
