package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/models"
)

func TestDetectUnitConflictSameDayTurnover(t *testing.T) {
	existing := []models.Booking{
		{
			ID:           7,
			CheckInDate:  d(2025, time.June, 1),
			CheckOutDate: d(2025, time.June, 3),
			CheckInTime:  "14:00",
			CheckOutTime: "12:00",
		},
	}

	// Khách mới nhận 14:00 cùng ngày khách cũ trả 12:00: không xung đột
	result := detectUnitConflict(existing, d(2025, time.June, 3), d(2025, time.June, 5), "14:00", "12:00")
	assert.False(t, result.Conflict)

	// Khách mới muốn nhận 10:00 khi khách cũ 12:00 mới trả
	result = detectUnitConflict(existing, d(2025, time.June, 3), d(2025, time.June, 5), "10:00", "12:00")
	assert.True(t, result.Conflict)
	assert.Equal(t, uint(7), result.BookingID)
}

func TestDetectUnitConflictNextGuestArrivesOnCheckOutDay(t *testing.T) {
	existing := []models.Booking{
		{
			ID:           9,
			CheckInDate:  d(2025, time.June, 5),
			CheckOutDate: d(2025, time.June, 8),
			CheckInTime:  "14:00",
			CheckOutTime: "12:00",
		},
	}

	// Khách mới trả 12:00 đúng ngày khách kế tiếp nhận 14:00: không xung đột
	result := detectUnitConflict(existing, d(2025, time.June, 3), d(2025, time.June, 5), "14:00", "12:00")
	assert.False(t, result.Conflict)

	// Khách mới muốn trả 16:00 khi khách kế tiếp nhận 14:00
	result = detectUnitConflict(existing, d(2025, time.June, 3), d(2025, time.June, 5), "14:00", "16:00")
	assert.True(t, result.Conflict)
	assert.Equal(t, uint(9), result.BookingID)
}

func TestDetectUnitConflictDateOverlap(t *testing.T) {
	existing := []models.Booking{
		{
			ID:           3,
			CheckInDate:  d(2025, time.June, 1),
			CheckOutDate: d(2025, time.June, 10),
		},
	}

	result := detectUnitConflict(existing, d(2025, time.June, 5), d(2025, time.June, 7), "", "")
	assert.True(t, result.Conflict)

	// Kỳ lưu trú nằm hoàn toàn trước hoặc sau: không xung đột
	result = detectUnitConflict(existing, d(2025, time.May, 20), d(2025, time.May, 25), "", "")
	assert.False(t, result.Conflict)

	result = detectUnitConflict(existing, d(2025, time.June, 11), d(2025, time.June, 13), "", "")
	assert.False(t, result.Conflict)
}

func TestDetectUnitConflictDefaultTimes(t *testing.T) {
	existing := []models.Booking{
		{
			ID:           4,
			CheckInDate:  d(2025, time.June, 1),
			CheckOutDate: d(2025, time.June, 3),
		},
	}

	// Không ghi giờ thì dùng mặc định 14:00/12:00, bàn giao cùng ngày vẫn hợp lệ
	result := detectUnitConflict(existing, d(2025, time.June, 3), d(2025, time.June, 5), "", "")
	assert.False(t, result.Conflict)
}

func TestClockMinutes(t *testing.T) {
	assert.Equal(t, 14*60, clockMinutes("14:00", "12:00"))
	assert.Equal(t, 9*60+30, clockMinutes("09:30", "12:00"))
	// Sai định dạng rơi về giờ mặc định
	assert.Equal(t, 12*60, clockMinutes("trưa", "12:00"))
	assert.Equal(t, 12*60, clockMinutes("", "12:00"))
}
