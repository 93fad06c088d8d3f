package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/constants"
	"stayhub/dto"
)

func TestAssistantBookingInputForwardsQuantityAndUnit(t *testing.T) {
	req := dto.AssistantBookingRequest{
		RoomTypeName:  "deluxe",
		Quantity:      2,
		RequestedUnit: "D3",
		NumGuests:     4,
		GuestName:     "Nguyen Van A",
		GuestPhone:    "0912345678",
		GuestEmail:    "a@example.com",
	}
	checkIn := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)

	input := assistantBookingInput(&req, 5, checkIn, checkOut)

	assert.Equal(t, uint(5), input.RoomTypeID)
	assert.Equal(t, checkIn, input.CheckInDate)
	assert.Equal(t, checkOut, input.CheckOutDate)
	assert.Equal(t, 2, input.Quantity)
	assert.Equal(t, "D3", input.RequestedUnit)
	assert.Equal(t, 4, input.NumGuests)
	assert.Equal(t, "Nguyen Van A", input.GuestName)
	assert.Equal(t, "0912345678", input.GuestPhone)
	assert.Equal(t, "a@example.com", input.GuestEmail)
	assert.Equal(t, constants.BookingSourceAssistant, input.Source)
}

func TestAssistantBookingInputOmittedQuantity(t *testing.T) {
	req := dto.AssistantBookingRequest{RoomTypeName: "deluxe", NumGuests: 2}
	input := assistantBookingInput(&req, 1, time.Now(), time.Now().AddDate(0, 0, 1))

	// Engine tự đưa về 1 phòng khi khách không nêu số lượng
	assert.Equal(t, 0, input.Quantity)
	assert.Equal(t, "", input.RequestedUnit)
}
