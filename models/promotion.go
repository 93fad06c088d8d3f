package models

import (
	"fmt"
	"time"

	apperrors "stayhub/errors"
)

// Promotion là chương trình khuyến mãi theo hạng phòng.
// PromoPrice và DiscountPercent loại trừ lẫn nhau; nếu có cả hai thì PromoPrice thắng.
type Promotion struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	RoomTypeID      uint      `json:"roomTypeId" gorm:"index"`
	Name            string    `json:"name"`
	PromoPrice      *int      `json:"promoPrice"`      // Giá cố định mỗi đêm
	DiscountPercent *int      `json:"discountPercent"` // Phần trăm giảm trên giá đêm
	StartDate       time.Time `json:"startDate" gorm:"type:date"` // Hiệu lực [startDate, endDate], bao gồm cả hai đầu
	EndDate         time.Time `json:"endDate" gorm:"type:date"`
	Priority        int       `json:"priority"`  // Cao hơn thắng khi trùng ngày
	MinNights       int       `json:"minNights"` // 0 là không ràng buộc
	Status          int       `json:"status" gorm:"default:1"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// CoversDate kiểm tra ngày có nằm trong khoảng hiệu lực không
func (p *Promotion) CoversDate(date time.Time) bool {
	return !date.Before(p.StartDate) && !date.After(p.EndDate)
}

func (p *Promotion) ValidateStatus() error {
	if p.Status < 0 || p.Status > 1 {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidStatus,
			fmt.Sprintf("Trạng thái %d không hợp lệ, chỉ nhận 0 hoặc 1", p.Status), nil)
	}
	return nil
}
