package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"

	"stayhub/constants"
	apperrors "stayhub/errors"
	"stayhub/models"
)

func TestBookingInputNormalize(t *testing.T) {
	input := BookingInput{}
	input.normalize()

	assert.Equal(t, 1, input.Quantity)
	assert.Equal(t, constants.DefaultCheckInTime, input.CheckInTime)
	assert.Equal(t, constants.DefaultCheckOutTime, input.CheckOutTime)
	assert.Equal(t, constants.BookingSourceWebsite, input.Source)

	input = BookingInput{Quantity: 3, CheckInTime: "15:00", Source: constants.BookingSourceAssistant}
	input.normalize()
	assert.Equal(t, 3, input.Quantity)
	assert.Equal(t, "15:00", input.CheckInTime)
	assert.Equal(t, constants.BookingSourceAssistant, input.Source)
}

func TestPatchedInputKeepsUnsetFields(t *testing.T) {
	booking := &models.Booking{
		RoomTypeID:   5,
		CheckInDate:  d(2025, time.June, 1),
		CheckOutDate: d(2025, time.June, 3),
		CheckInTime:  "14:00",
		CheckOutTime: "12:00",
		Quantity:     2,
		NumGuests:    4,
		GuestName:    "Nguyễn Văn A",
		GuestPhone:   "0901234567",
		Source:       constants.BookingSourceWebsite,
	}

	newOut := d(2025, time.June, 5)
	newGuests := 3
	input := patchedInput(booking, BookingPatch{
		CheckOutDate: &newOut,
		NumGuests:    &newGuests,
	})

	assert.Equal(t, uint(5), input.RoomTypeID)
	assert.Equal(t, d(2025, time.June, 1), input.CheckInDate)
	assert.Equal(t, newOut, input.CheckOutDate)
	assert.Equal(t, 3, input.NumGuests)
	assert.Equal(t, 2, input.Quantity)
	assert.Equal(t, "Nguyễn Văn A", input.GuestName)
}

func TestNeedsReallocation(t *testing.T) {
	booking := &models.Booking{
		RoomTypeID:   5,
		Unit:         "101",
		CheckInDate:  d(2025, time.June, 1),
		CheckOutDate: d(2025, time.June, 3),
		Quantity:     1,
	}

	name := "Trần Thị B"
	assert.False(t, needsReallocation(booking, BookingPatch{GuestName: &name}))

	sameOut := d(2025, time.June, 3)
	assert.False(t, needsReallocation(booking, BookingPatch{CheckOutDate: &sameOut}))

	newOut := d(2025, time.June, 6)
	assert.True(t, needsReallocation(booking, BookingPatch{CheckOutDate: &newOut}))

	newQty := 2
	assert.True(t, needsReallocation(booking, BookingPatch{Quantity: &newQty}))

	sameUnit := "101"
	assert.False(t, needsReallocation(booking, BookingPatch{RequestedUnit: &sameUnit}))

	otherUnit := "102"
	assert.True(t, needsReallocation(booking, BookingPatch{RequestedUnit: &otherUnit}))

	otherType := uint(9)
	assert.True(t, needsReallocation(booking, BookingPatch{RoomTypeID: &otherType}))
}

func TestWrapAllocationError(t *testing.T) {
	err := wrapAllocationError(&apperrors.InsufficientInventoryError{Requested: 2, Available: 1})
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeInsufficientInventory, appErr.Code)

	var invErr *apperrors.InsufficientInventoryError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, 1, invErr.Available)

	err = wrapAllocationError(&apperrors.UnitUnavailableError{Unit: "101", Reason: "đã có khách"})
	appErr = apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeUnitUnavailable, appErr.Code)
}

func TestMapWriteError(t *testing.T) {
	err := mapWriteError(gorm.ErrDuplicatedKey)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeAllocationConflict, appErr.Code)

	other := gorm.ErrInvalidData
	assert.Equal(t, other, mapWriteError(other))
}

func TestWithoutUnit(t *testing.T) {
	assert.Equal(t, []string{"101", "103"}, withoutUnit([]string{"101", "102", "103"}, "102"))
	assert.Equal(t, []string{"101"}, withoutUnit([]string{"101"}, "999"))
}
