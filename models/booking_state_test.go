package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/constants"
	apperrors "stayhub/errors"
)

func TestValidateStatusTransition(t *testing.T) {
	valid := [][2]int{
		{constants.BookingStatusPending, constants.BookingStatusConfirmed},
		{constants.BookingStatusPending, constants.BookingStatusCancelled},
		{constants.BookingStatusPending, constants.BookingStatusNoShow},
		{constants.BookingStatusConfirmed, constants.BookingStatusCheckedIn},
		{constants.BookingStatusConfirmed, constants.BookingStatusCancelled},
		{constants.BookingStatusConfirmed, constants.BookingStatusNoShow},
		{constants.BookingStatusCheckedIn, constants.BookingStatusCheckedOut},
	}
	for _, tc := range valid {
		assert.NoError(t, ValidateStatusTransition(tc[0], tc[1]),
			"%s -> %s phải hợp lệ", BookingStatusName(tc[0]), BookingStatusName(tc[1]))
	}

	invalid := [][2]int{
		{constants.BookingStatusPending, constants.BookingStatusCheckedIn},
		{constants.BookingStatusCheckedOut, constants.BookingStatusConfirmed},
		{constants.BookingStatusCancelled, constants.BookingStatusPending},
		{constants.BookingStatusNoShow, constants.BookingStatusConfirmed},
		{constants.BookingStatusCheckedIn, constants.BookingStatusCancelled},
	}
	for _, tc := range invalid {
		assert.Error(t, ValidateStatusTransition(tc[0], tc[1]),
			"%s -> %s phải bị chặn", BookingStatusName(tc[0]), BookingStatusName(tc[1]))
	}

	assert.Error(t, ValidateStatusTransition(99, constants.BookingStatusConfirmed))

	// Lỗi chuyển trạng thái phải mang mã để tầng HTTP trả 400 thay vì 500
	var appErr *apperrors.AppError
	err := ValidateStatusTransition(constants.BookingStatusCheckedOut, constants.BookingStatusConfirmed)
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeInvalidStatus, appErr.Code)
}

func TestReleasedStatuses(t *testing.T) {
	released := ReleasedStatuses()
	assert.ElementsMatch(t, []int{constants.BookingStatusCancelled, constants.BookingStatusNoShow}, released)

	// Hai danh sách phủ kín mọi trạng thái, không trùng nhau
	holding := HoldingStatuses()
	assert.Len(t, append(holding, released...), 6)
	for _, h := range holding {
		assert.NotContains(t, released, h)
	}
}

func TestBookingStatusName(t *testing.T) {
	assert.Equal(t, "pending", BookingStatusName(constants.BookingStatusPending))
	assert.Equal(t, "no_show", BookingStatusName(constants.BookingStatusNoShow))
	assert.Equal(t, "unknown(42)", BookingStatusName(42))
}

func TestBookingNightsAndUnitNames(t *testing.T) {
	booking := Booking{
		Unit:         "101",
		CheckInDate:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 3, booking.Nights())
	assert.Equal(t, []string{"101"}, booking.UnitNames())

	booking.Details = []BookingDetail{{Unit: "101"}, {Unit: "102"}}
	assert.Equal(t, []string{"101", "102"}, booking.UnitNames())
}

func TestPromotionCoversDate(t *testing.T) {
	p := Promotion{
		StartDate: time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC),
	}
	require.True(t, p.CoversDate(time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)))
	require.True(t, p.CoversDate(time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC)))
	require.False(t, p.CoversDate(time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)))
}

func TestPromotionValidateStatus(t *testing.T) {
	p := Promotion{Status: 1}
	assert.NoError(t, p.ValidateStatus())

	p.Status = -1
	var appErr *apperrors.AppError
	assert.ErrorAs(t, p.ValidateStatus(), &appErr)
	assert.Equal(t, apperrors.ErrCodeInvalidStatus, appErr.Code)
}
