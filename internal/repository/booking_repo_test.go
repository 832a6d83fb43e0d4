package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

func seedBooking(t *testing.T, db *gorm.DB, status domain.BookingStatus, payment domain.PaymentStatus) *domain.Booking {
	t.Helper()
	slotID := int64(3)
	b := &domain.Booking{
		UserID:        7,
		TurfID:        10,
		SlotID:        &slotID,
		Date:          domain.DateOnly(time.Now().AddDate(0, 0, 2)),
		StartTime:     "18:00",
		EndTime:       "19:00",
		DurationHours: 1,
		TotalPrice:    1000,
		BookingStatus: status,
		PaymentStatus: payment,
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return b
}

func reloadBooking(t *testing.T, db *gorm.DB, id int64) *domain.Booking {
	t.Helper()
	var b domain.Booking
	if err := db.First(&b, id).Error; err != nil {
		t.Fatalf("reload booking %d: %v", id, err)
	}
	return &b
}

func TestApprove_TransitionsOnlyFromPending(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := seedBooking(t, db, domain.BookingPending, domain.PaymentPending)
	approvedAt := time.Now().UTC()

	ok, err := repo.Approve(ctx, b.ID, approvedAt)
	assert.NoError(t, err)
	assert.True(t, ok)

	got := reloadBooking(t, db, b.ID)
	assert.Equal(t, domain.BookingConfirmAfterPayment, got.BookingStatus)
	assert.NotNil(t, got.ApprovedAt)

	// A second approval loses the state condition.
	ok, err = repo.Approve(ctx, b.ID, time.Now().UTC())
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestExpiryWinsOverLateFinalize(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := seedBooking(t, db, domain.BookingConfirmAfterPayment, domain.PaymentPending)

	ok, err := repo.ExpireIfUnpaid(ctx, b.ID)
	assert.NoError(t, err)
	assert.True(t, ok)

	// The payment landed too late: the finalize must be refused.
	ok, err = repo.FinalizeSuccess(ctx, b.ID)
	assert.NoError(t, err)
	assert.False(t, ok)

	got := reloadBooking(t, db, b.ID)
	assert.Equal(t, domain.BookingRejected, got.BookingStatus)
	assert.NotEqual(t, domain.PaymentPaid, got.PaymentStatus)
}

func TestFinalizeWinsOverLateExpiry(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := seedBooking(t, db, domain.BookingConfirmAfterPayment, domain.PaymentPending)

	ok, err := repo.FinalizeSuccess(ctx, b.ID)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExpireIfUnpaid(ctx, b.ID)
	assert.NoError(t, err)
	assert.False(t, ok)

	got := reloadBooking(t, db, b.ID)
	assert.Equal(t, domain.BookingConfirmed, got.BookingStatus)
	assert.Equal(t, domain.PaymentPaid, got.PaymentStatus)
}

func TestHasConfirmedConflict_OnlyConfirmedBlocks(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	pending := seedBooking(t, db, domain.BookingPending, domain.PaymentPending)

	conflict, err := repo.HasConfirmedConflict(ctx, pending.TurfID, pending.SlotID, pending.Date, 0)
	assert.NoError(t, err)
	assert.False(t, conflict)

	confirmed := seedBooking(t, db, domain.BookingConfirmed, domain.PaymentPaid)

	conflict, err = repo.HasConfirmedConflict(ctx, confirmed.TurfID, confirmed.SlotID, confirmed.Date, 0)
	assert.NoError(t, err)
	assert.True(t, conflict)

	// A booking never conflicts with itself.
	conflict, err = repo.HasConfirmedConflict(ctx, confirmed.TurfID, confirmed.SlotID, confirmed.Date, confirmed.ID)
	assert.NoError(t, err)
	assert.False(t, conflict)
}

func TestCancelIfNotConfirmed_ConfirmedStays(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := seedBooking(t, db, domain.BookingConfirmed, domain.PaymentPaid)

	ok, err := repo.CancelIfNotConfirmed(ctx, b.ID)
	assert.NoError(t, err)
	assert.False(t, ok)

	got := reloadBooking(t, db, b.ID)
	assert.Equal(t, domain.BookingConfirmed, got.BookingStatus)
}

func TestExpireIfUnpaid_PaidBookingSurvives(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := seedBooking(t, db, domain.BookingConfirmAfterPayment, domain.PaymentPaid)

	ok, err := repo.ExpireIfUnpaid(ctx, b.ID)
	assert.NoError(t, err)
	assert.False(t, ok)
}
