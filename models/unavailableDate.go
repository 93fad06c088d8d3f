package models

import "time"

// UnavailableDate chặn một phòng (hoặc cả hạng phòng nếu Unit nil) trong một ngày
type UnavailableDate struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	RoomTypeID uint      `json:"roomTypeId" gorm:"index"`
	Unit       *string   `json:"unit"` // nil: chặn toàn bộ hạng phòng trong ngày đó
	Date       time.Time `json:"date" gorm:"type:date;index"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
