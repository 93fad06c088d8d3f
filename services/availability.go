package services

import (
	"time"

	"stayhub/models"

	"gorm.io/gorm"
)

// availableUnits trả về các phòng còn trống của hạng phòng trong [checkIn, checkOut),
// theo đúng thứ tự khai báo của hạng phòng. Loại trừ:
//   - phòng bị chặn bởi bản ghi ngày không khả dụng (bản ghi không ghi phòng
//     cụ thể thì chặn cả hạng phòng trong đêm đó)
//   - phòng đã có trong chi tiết booking còn giữ phòng
//   - phòng ghi ở trường Unit kiểu cũ của booking còn giữ phòng (booking chưa
//     được chuyển sang mô hình chi tiết, bỏ kiểm tra này là phòng cũ biến mất
//     khỏi mắt allocator)
//
// excludeBookingID dùng khi kiểm tra lại lúc sửa booking, 0 là không loại trừ.
func availableUnits(db *gorm.DB, roomType *models.RoomType, checkIn, checkOut time.Time, excludeBookingID uint) ([]string, error) {
	var blocks []models.UnavailableDate
	if err := blockedDatesQuery(db, roomType.ID, checkIn, checkOut).Find(&blocks).Error; err != nil {
		return nil, err
	}

	var taken []string
	if err := takenUnitsQuery(db, roomType.ID, checkIn, checkOut, excludeBookingID).
		Pluck("booking_details.unit", &taken).Error; err != nil {
		return nil, err
	}

	var legacy []string
	if err := legacyUnitsQuery(db, roomType.ID, checkIn, checkOut, excludeBookingID).
		Pluck("unit", &legacy).Error; err != nil {
		return nil, err
	}

	return subtractUnits(roomType.UnitList(), blocks, append(taken, legacy...)), nil
}

// blockedDatesQuery chọn các bản ghi ngày không khả dụng rơi vào các đêm của kỳ lưu trú
func blockedDatesQuery(db *gorm.DB, roomTypeID uint, checkIn, checkOut time.Time) *gorm.DB {
	return db.Model(&models.UnavailableDate{}).
		Where("room_type_id = ? AND date >= ? AND date < ?", roomTypeID, checkIn, checkOut)
}

// takenUnitsQuery chọn các dòng chi tiết đang giữ phòng của hạng phòng và trùng
// khoảng ngày nửa mở với kỳ lưu trú, bỏ qua booking đang được sửa
func takenUnitsQuery(db *gorm.DB, roomTypeID uint, checkIn, checkOut time.Time, excludeBookingID uint) *gorm.DB {
	return db.Model(&models.BookingDetail{}).
		Joins("JOIN bookings ON bookings.id = booking_details.booking_id").
		Where("booking_details.room_type_id = ?", roomTypeID).
		Where("bookings.status NOT IN ?", models.ReleasedStatuses()).
		Where("bookings.check_in_date < ? AND bookings.check_out_date > ?", checkOut, checkIn).
		Where("bookings.id <> ?", excludeBookingID)
}

// legacyUnitsQuery chọn các booking kiểu cũ còn giữ phòng ghi thẳng ở trường Unit
func legacyUnitsQuery(db *gorm.DB, roomTypeID uint, checkIn, checkOut time.Time, excludeBookingID uint) *gorm.DB {
	return db.Model(&models.Booking{}).
		Where("room_type_id = ? AND unit <> ''", roomTypeID).
		Where("status NOT IN ?", models.ReleasedStatuses()).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Where("id <> ?", excludeBookingID)
}

// subtractUnits loại các phòng bị chặn hoặc đã có khách khỏi danh sách đầy đủ,
// giữ nguyên thứ tự ban đầu
func subtractUnits(all []string, blocks []models.UnavailableDate, taken []string) []string {
	removed := make(map[string]bool)
	for _, b := range blocks {
		if b.Unit == nil {
			// Cả hạng phòng bị chặn trong ít nhất một đêm của kỳ lưu trú
			return []string{}
		}
		removed[*b.Unit] = true
	}
	for _, u := range taken {
		removed[u] = true
	}

	free := make([]string, 0, len(all))
	for _, u := range all {
		if !removed[u] {
			free = append(free, u)
		}
	}
	return free
}
