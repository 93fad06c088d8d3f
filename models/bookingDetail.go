package models

import "time"

// BookingDetail là một phòng vật lý mà booking chiếm giữ, kèm giá cả kỳ lưu trú
// của phòng đó chốt tại thời điểm đặt. Một booking không được giữ cùng một
// phòng hai lần, ràng buộc duy nhất bên dưới chặn điều đó ngay khi ghi.
type BookingDetail struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	BookingID  uint      `json:"bookingId" gorm:"index;uniqueIndex:idx_booking_detail_unit"`
	RoomTypeID uint      `json:"roomTypeId" gorm:"index"`
	Unit       string    `json:"unit" gorm:"index;uniqueIndex:idx_booking_detail_unit"`
	StayPrice  int       `json:"stayPrice"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
