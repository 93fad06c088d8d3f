package services

import (
	"time"

	"stayhub/models"
)

// NightlyBasePrice trả về giá một đêm theo bảng giá của hạng phòng:
// giá theo thứ trong tuần nếu có, không thì giá cơ bản.
func NightlyBasePrice(roomType *models.RoomType, date time.Time) int {
	var override *int
	switch date.Weekday() {
	case time.Sunday:
		override = roomType.SundayPrice
	case time.Monday:
		override = roomType.MondayPrice
	case time.Tuesday:
		override = roomType.TuesdayPrice
	case time.Wednesday:
		override = roomType.WednesdayPrice
	case time.Thursday:
		override = roomType.ThursdayPrice
	case time.Friday:
		override = roomType.FridayPrice
	case time.Saturday:
		override = roomType.SaturdayPrice
	}
	if override != nil {
		return *override
	}
	return roomType.Price
}
