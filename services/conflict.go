package services

import (
	"strings"
	"time"

	"stayhub/constants"
	"stayhub/models"

	"gorm.io/gorm"
)

// UnitConflict là kết quả kiểm tra xung đột cho một phòng cụ thể
type UnitConflict struct {
	Conflict  bool   `json:"conflict"`
	Reason    string `json:"reason,omitempty"`
	BookingID uint   `json:"bookingId,omitempty"`
}

// unitConflict kiểm tra một phòng cụ thể tại thời điểm ghi. Khác với
// availableUnits (coi mọi trùng ngày là bận), hàm này cho phép trả và nhận
// phòng trong cùng một ngày nếu giờ không chồng lên nhau:
//  1. booking cũ trả phòng đúng ngày nhận mới: xung đột khi giờ nhận mới
//     sớm hơn giờ trả của booking cũ
//  2. booking cũ nhận phòng đúng ngày trả mới: xung đột khi giờ trả mới
//     muộn hơn giờ nhận của booking cũ
//  3. còn lại: trùng khoảng ngày là xung đột
func unitConflict(db *gorm.DB, roomType *models.RoomType, unit string, checkIn, checkOut time.Time, checkInTime, checkOutTime string, excludeBookingID uint) (UnitConflict, error) {
	var existing []models.Booking
	if err := db.
		Where("room_type_id = ?", roomType.ID).
		Where("status NOT IN ?", models.ReleasedStatuses()).
		Where("id <> ?", excludeBookingID).
		Where("check_in_date <= ? AND check_out_date >= ?", checkOut, checkIn).
		Where("unit = ? OR EXISTS (SELECT 1 FROM booking_details WHERE booking_details.booking_id = bookings.id AND booking_details.unit = ?)", unit, unit).
		Find(&existing).Error; err != nil {
		return UnitConflict{}, err
	}

	return detectUnitConflict(existing, checkIn, checkOut, checkInTime, checkOutTime), nil
}

func detectUnitConflict(existing []models.Booking, checkIn, checkOut time.Time, checkInTime, checkOutTime string) UnitConflict {
	newIn := clockMinutes(checkInTime, constants.DefaultCheckInTime)
	newOut := clockMinutes(checkOutTime, constants.DefaultCheckOutTime)

	for _, b := range existing {
		// Khách cũ trả phòng đúng ngày khách mới nhận
		if b.CheckOutDate.Equal(checkIn) {
			if newIn < clockMinutes(b.CheckOutTime, constants.DefaultCheckOutTime) {
				return UnitConflict{
					Conflict:  true,
					Reason:    "khách trước chưa trả phòng vào giờ nhận phòng mới",
					BookingID: b.ID,
				}
			}
			continue
		}

		// Khách cũ nhận phòng đúng ngày khách mới trả
		if b.CheckInDate.Equal(checkOut) {
			if newOut > clockMinutes(b.CheckInTime, constants.DefaultCheckInTime) {
				return UnitConflict{
					Conflict:  true,
					Reason:    "khách kế tiếp đã nhận phòng trước giờ trả phòng mới",
					BookingID: b.ID,
				}
			}
			continue
		}

		if checkIn.Before(b.CheckOutDate) && checkOut.After(b.CheckInDate) {
			return UnitConflict{
				Conflict:  true,
				Reason:    "phòng đã được đặt trong khoảng thời gian này",
				BookingID: b.ID,
			}
		}
	}
	return UnitConflict{}
}

// clockMinutes đổi chuỗi "HH:MM" sang số phút trong ngày, sai định dạng thì
// dùng giờ mặc định
func clockMinutes(s, fallback string) int {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		t, err = time.Parse("15:04", fallback)
		if err != nil {
			return 0
		}
	}
	return t.Hour()*60 + t.Minute()
}
