package chat

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

type Service struct {
	repo     ChatRepository
	bookings BookingReader
	turfs    TurfReader
	hub      *Hub
}

func NewService(repo ChatRepository, bookings BookingReader, turfs TurfReader, hub *Hub) *Service {
	return &Service{repo: repo, bookings: bookings, turfs: turfs, hub: hub}
}

// SendBookingMessage posts into the private player/owner conversation of a
// booking. Only those two may write or read.
func (s *Service) SendBookingMessage(ctx context.Context, bookingID, senderID int64, text string) (*domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrValidation
	}

	details, err := s.bookings.GetDetails(ctx, bookingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var receiverID int64
	switch senderID {
	case details.UserID:
		receiverID = details.OwnerID
	case details.OwnerID:
		receiverID = details.UserID
	default:
		return nil, ErrForbidden
	}

	m := &domain.ChatMessage{
		BookingID:  bookingID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    text,
	}
	if err := s.repo.SaveBookingMessage(ctx, m); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.SendToUser(receiverID, WSEvent{
			Type:      "booking_message",
			BookingID: bookingID,
			SenderID:  senderID,
			Message:   text,
			SentAt:    m.CreatedAt.Format(time.RFC3339),
		})
	}
	return m, nil
}

func (s *Service) ListBookingMessages(ctx context.Context, bookingID, viewerID int64) ([]domain.ChatMessage, error) {
	details, err := s.bookings.GetDetails(ctx, bookingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if viewerID != details.UserID && viewerID != details.OwnerID {
		return nil, ErrForbidden
	}
	return s.repo.ListBookingMessages(ctx, bookingID)
}

// SendTurfMessage posts into the turf room. Anyone may message the owner;
// the owner replies to a specific user by setting the receiver.
func (s *Service) SendTurfMessage(ctx context.Context, turfID, senderID int64, req SendTurfMessageRequest) (*domain.TurfChatMessage, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, ErrValidation
	}

	turf, err := s.turfs.GetByID(ctx, turfID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	receiver := req.ReceiverID
	if senderID != turf.OwnerID {
		// Non-owners always address the owner.
		receiver = &turf.OwnerID
	} else if receiver == nil {
		return nil, ErrValidation
	}

	m := &domain.TurfChatMessage{
		TurfID:     turfID,
		SenderID:   senderID,
		ReceiverID: receiver,
		Message:    text,
	}
	if err := s.repo.SaveTurfMessage(ctx, m); err != nil {
		return nil, err
	}

	if s.hub != nil && receiver != nil {
		s.hub.SendToUser(*receiver, WSEvent{
			Type:     "turf_message",
			TurfID:   turfID,
			SenderID: senderID,
			Message:  text,
			SentAt:   m.CreatedAt.Format(time.RFC3339),
		})
	}
	return m, nil
}

func (s *Service) ListTurfMessages(ctx context.Context, turfID, viewerID int64) ([]domain.TurfChatMessage, error) {
	if _, err := s.turfs.GetByID(ctx, turfID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.repo.ListTurfMessages(ctx, turfID, viewerID)
}
