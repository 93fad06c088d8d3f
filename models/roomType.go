package models

import (
	"encoding/json"
	"fmt"
	"time"

	apperrors "stayhub/errors"
)

// RoomType là một hạng phòng gồm nhiều phòng vật lý (unit), ví dụ "Deluxe" với các phòng D1..D5
type RoomType struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Units       json.RawMessage `json:"units" gorm:"type:json"` // Danh sách mã phòng, ví dụ ["A1","A2"]
	Allotment   int             `json:"allotment"`
	Price       int             `json:"price"` // Giá cơ bản mỗi đêm
	MaxGuests   int             `json:"maxGuests"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img" gorm:"type:json"`

	// Giá theo thứ trong tuần, nil thì dùng giá cơ bản
	SundayPrice    *int `json:"sundayPrice"`
	MondayPrice    *int `json:"mondayPrice"`
	TuesdayPrice   *int `json:"tuesdayPrice"`
	WednesdayPrice *int `json:"wednesdayPrice"`
	ThursdayPrice  *int `json:"thursdayPrice"`
	FridayPrice    *int `json:"fridayPrice"`
	SaturdayPrice  *int `json:"saturdayPrice"`

	// Khuyến mãi đơn lẻ kiểu cũ, giữ lại cho dữ liệu chưa chuyển sang bảng promotions
	PromoPrice     *int       `json:"promoPrice"`
	PromoStartDate *time.Time `json:"promoStartDate" gorm:"type:date"`
	PromoEndDate   *time.Time `json:"promoEndDate" gorm:"type:date"`

	Status    int       `json:"status" gorm:"default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Promotions []Promotion `json:"promotions,omitempty" gorm:"foreignKey:RoomTypeID"`
}

// UnitList giải mã danh sách mã phòng từ JSON, giữ nguyên thứ tự khai báo
func (r *RoomType) UnitList() []string {
	if len(r.Units) == 0 {
		return []string{}
	}
	var units []string
	if err := json.Unmarshal(r.Units, &units); err != nil {
		return []string{}
	}
	return units
}

// HasUnit kiểm tra mã phòng có thuộc hạng phòng này không
func (r *RoomType) HasUnit(unit string) bool {
	for _, u := range r.UnitList() {
		if u == unit {
			return true
		}
	}
	return false
}

func (r *RoomType) ValidateStatus() error {
	if r.Status < 0 || r.Status > 1 {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidStatus,
			fmt.Sprintf("Trạng thái %d không hợp lệ, chỉ nhận 0 hoặc 1", r.Status), nil)
	}
	return nil
}
