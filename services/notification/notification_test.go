package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/models"
)

func TestBookingMessageBuilder(t *testing.T) {
	booking := &models.Booking{
		ID:            12,
		GuestName:     "Nguyễn Văn A",
		GuestPhone:    "0901234567",
		Unit:          "101",
		CheckInDate:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:  time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
		TotalPrice:    500000,
		OriginalPrice: 550000,
		Details: []models.BookingDetail{
			{Unit: "101"}, {Unit: "102"},
		},
	}

	msg := NewBookingMessageBuilder(booking, "Booking mới").Build()

	assert.Contains(t, msg, "Booking mới")
	assert.Contains(t, msg, "#12")
	assert.Contains(t, msg, "Nguyễn Văn A")
	assert.Contains(t, msg, "101, 102")
	assert.Contains(t, msg, "01/06/2025 → 03/06/2025")
	assert.Contains(t, msg, "tổng 500000")
	assert.Contains(t, msg, "(khuyến mãi -50000)")
}

func TestBookingMessageBuilderNoPromo(t *testing.T) {
	booking := &models.Booking{
		ID:            3,
		GuestName:     "Trần Thị B",
		Unit:          "201",
		CheckInDate:   time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:  time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC),
		TotalPrice:    300000,
		OriginalPrice: 300000,
	}

	msg := NewBookingMessageBuilder(booking, "Booking mới").Build()
	assert.NotContains(t, msg, "khuyến mãi")
}
