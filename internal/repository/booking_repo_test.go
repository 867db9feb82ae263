package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"beautystudio/internal/database"
	"beautystudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testBooking(token string) *domain.Booking {
	start, _ := domain.ParseBusinessDate("2025-03-04")
	return &domain.Booking{
		ClientName:              "Wanjiru K.",
		ClientEmail:             "wanjiru@example.com",
		ServiceID:               1,
		Date:                    "2025-03-04",
		SlotTime:                "14:00",
		StartAt:                 start.Add(14 * time.Hour),
		FinalPrice:              3000,
		Status:                  domain.BookingPending,
		CancellationPolicyHours: 48,
		ManageToken:             token,
	}
}

func TestBookingRepository_NoDoubleBooking(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	first := testBooking("token-1")
	require.NoError(t, repo.Create(ctx, first))

	// Same date and slot: the partial unique index rejects it.
	second := testBooking("token-2")
	err := repo.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err, "idx_no_double_booking"))

	// A cancelled row frees the slot for rebooking.
	require.NoError(t, repo.CancelWithReason(ctx, first.ID, "client request"))
	third := testBooking("token-3")
	assert.NoError(t, repo.Create(ctx, third))
}

func TestBookingRepository_TakenSlotsExcludesCancelled(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b1 := testBooking("token-1")
	require.NoError(t, repo.Create(ctx, b1))

	b2 := testBooking("token-2")
	b2.SlotTime = "16:00"
	require.NoError(t, repo.Create(ctx, b2))
	require.NoError(t, repo.CancelWithReason(ctx, b2.ID, "no show"))

	taken, err := repo.TakenSlots(ctx, "2025-03-04")
	require.NoError(t, err)
	assert.Equal(t, []string{"14:00"}, taken)
}

func TestBookingRepository_AppendPayment(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := testBooking("token-1")
	require.NoError(t, repo.Create(ctx, b))

	updated, err := repo.AppendPayment(ctx, b.ID, &domain.Payment{
		Amount:                1500,
		Method:                "mpesa",
		ProviderCorrelationID: "ws_CO_001",
		ProviderReceiptID:     "TH27AAA",
		AppliedAt:             time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1500.0, updated.Deposit)
	assert.False(t, updated.PaidInFull)
	// First applied payment confirms a pending booking.
	assert.Equal(t, domain.BookingConfirmed, updated.Status)
	assert.Len(t, updated.Payments, 1)

	// Second payment covers the remainder.
	updated, err = repo.AppendPayment(ctx, b.ID, &domain.Payment{
		Amount:                1500,
		Method:                "mpesa",
		ProviderCorrelationID: "ws_CO_002",
		AppliedAt:             time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, 3000.0, updated.Deposit)
	assert.True(t, updated.PaidInFull)
	assert.Len(t, updated.Payments, 2)
}

func TestBookingRepository_AppendPayment_DuplicateCorrelationID(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := testBooking("token-1")
	require.NoError(t, repo.Create(ctx, b))

	_, err := repo.AppendPayment(ctx, b.ID, &domain.Payment{
		Amount:                1500,
		ProviderCorrelationID: "ws_CO_001",
		AppliedAt:             time.Now().UTC(),
	})
	require.NoError(t, err)

	// Redelivered callback: same correlation id must not apply twice.
	_, err = repo.AppendPayment(ctx, b.ID, &domain.Payment{
		Amount:                1500,
		ProviderCorrelationID: "ws_CO_001",
		AppliedAt:             time.Now().UTC(),
	})
	assert.ErrorIs(t, err, ErrDuplicatePayment)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, got.Deposit)
	assert.Len(t, got.Payments, 1)
}

func TestBookingRepository_FindByCorrelationID(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := testBooking("token-1")
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.SetCheckoutRequest(ctx, b.ID, "ws_CO_777"))

	got, err := repo.FindByCorrelationID(ctx, "ws_CO_777")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = repo.FindByCorrelationID(ctx, "ws_CO_unknown")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
