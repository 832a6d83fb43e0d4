package notification

import (
	"context"
	"fmt"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByRecipient(ctx context.Context, recipientID int64, unreadOnly bool) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, recipientID int64) (int64, error)
	MarkRead(ctx context.Context, id, recipientID int64) (bool, error)
	MarkAllRead(ctx context.Context, recipientID int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) NotifyBookingRequested(ctx context.Context, ownerID, playerID, bookingID int64, turfName string) error {
	return s.repo.Create(ctx, &domain.Notification{
		RecipientID: ownerID,
		SenderID:    &playerID,
		Type:        domain.NotifBookingRequest,
		Message:     fmt.Sprintf("New booking request for %s", turfName),
		BookingID:   &bookingID,
	})
}

func (s *Service) NotifyBookingApproved(ctx context.Context, playerID, bookingID int64, turfName string, advance float64) error {
	return s.repo.Create(ctx, &domain.Notification{
		RecipientID: playerID,
		Type:        domain.NotifBookingUpdate,
		Message:     fmt.Sprintf("Booking for %s approved. Pay %.2f within 5 minutes to confirm.", turfName, advance),
		BookingID:   &bookingID,
	})
}

func (s *Service) NotifyBookingRejected(ctx context.Context, playerID, bookingID int64, turfName, reason string) error {
	return s.repo.Create(ctx, &domain.Notification{
		RecipientID: playerID,
		Type:        domain.NotifBookingUpdate,
		Message:     fmt.Sprintf("Booking for %s was rejected: %s", turfName, reason),
		BookingID:   &bookingID,
	})
}

func (s *Service) NotifyBookingConfirmed(ctx context.Context, playerID, bookingID int64, turfName string) error {
	return s.repo.Create(ctx, &domain.Notification{
		RecipientID: playerID,
		Type:        domain.NotifBookingUpdate,
		Message:     fmt.Sprintf("Booking for %s is confirmed", turfName),
		BookingID:   &bookingID,
	})
}

func (s *Service) NotifyBookingCancelled(ctx context.Context, ownerID, playerID, bookingID int64, turfName string) error {
	return s.repo.Create(ctx, &domain.Notification{
		RecipientID: ownerID,
		SenderID:    &playerID,
		Type:        domain.NotifBookingUpdate,
		Message:     fmt.Sprintf("A booking request for %s was cancelled", turfName),
		BookingID:   &bookingID,
	})
}

func (s *Service) List(ctx context.Context, recipientID int64, unreadOnly bool) ([]domain.Notification, error) {
	return s.repo.ListByRecipient(ctx, recipientID, unreadOnly)
}

func (s *Service) UnreadCount(ctx context.Context, recipientID int64) (int64, error) {
	return s.repo.UnreadCount(ctx, recipientID)
}

func (s *Service) MarkRead(ctx context.Context, id, recipientID int64) (bool, error) {
	return s.repo.MarkRead(ctx, id, recipientID)
}

func (s *Service) MarkAllRead(ctx context.Context, recipientID int64) error {
	return s.repo.MarkAllRead(ctx, recipientID)
}
