package dto

import (
	"encoding/json"
	"time"
)

// CreateRoomTypeRequest là DTO cho request tạo hạng phòng
type CreateRoomTypeRequest struct {
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	Price          int             `json:"price" binding:"required"`
	MaxGuests      int             `json:"maxGuests" binding:"required"`
	Units          json.RawMessage `json:"units" binding:"required"`
	SundayPrice    *int            `json:"sundayPrice,omitempty"`
	MondayPrice    *int            `json:"mondayPrice,omitempty"`
	TuesdayPrice   *int            `json:"tuesdayPrice,omitempty"`
	WednesdayPrice *int            `json:"wednesdayPrice,omitempty"`
	ThursdayPrice  *int            `json:"thursdayPrice,omitempty"`
	FridayPrice    *int            `json:"fridayPrice,omitempty"`
	SaturdayPrice  *int            `json:"saturdayPrice,omitempty"`
	Avatar         string          `json:"avatar"`
	Img            json.RawMessage `json:"img"`
	Status         int             `json:"status"`
}

// UpdateRoomTypeRequest dùng chung shape với create, id lấy từ path
type UpdateRoomTypeRequest = CreateRoomTypeRequest

// RoomTypeSummary là DTO rút gọn nhúng trong response khác
type RoomTypeSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	MaxGuests int    `json:"maxGuests"`
	Avatar    string `json:"avatar"`
}

type RoomTypeResponse struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          int             `json:"price"`
	MaxGuests      int             `json:"maxGuests"`
	Units          []string        `json:"units"`
	Allotment      int             `json:"allotment"`
	SundayPrice    *int            `json:"sundayPrice,omitempty"`
	MondayPrice    *int            `json:"mondayPrice,omitempty"`
	TuesdayPrice   *int            `json:"tuesdayPrice,omitempty"`
	WednesdayPrice *int            `json:"wednesdayPrice,omitempty"`
	ThursdayPrice  *int            `json:"thursdayPrice,omitempty"`
	FridayPrice    *int            `json:"fridayPrice,omitempty"`
	SaturdayPrice  *int            `json:"saturdayPrice,omitempty"`
	Avatar         string          `json:"avatar"`
	Img            json.RawMessage `json:"img"`
	Status         int             `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// AvailabilityResponse là DTO cho truy vấn phòng trống theo khoảng ngày
type AvailabilityResponse struct {
	RoomTypeID   uint     `json:"roomTypeId"`
	CheckInDate  string   `json:"checkInDate"`
	CheckOutDate string   `json:"checkOutDate"`
	Available    int      `json:"available"`
	Units        []string `json:"units"`
}

// UnitCheckResponse là DTO cho kiểm tra một phòng cụ thể
type UnitCheckResponse struct {
	Unit         string   `json:"unit"`
	Available    bool     `json:"available"`
	Reason       string   `json:"reason,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// CreateUnavailableDateRequest là DTO cho request chặn phòng
type CreateUnavailableDateRequest struct {
	RoomTypeID uint    `json:"roomTypeId" binding:"required"`
	Unit       *string `json:"unit,omitempty"`
	FromDate   string  `json:"fromDate" binding:"required"`
	ToDate     string  `json:"toDate" binding:"required"`
	Reason     string  `json:"reason"`
}

type UnavailableDateResponse struct {
	ID         uint    `json:"id"`
	RoomTypeID uint    `json:"roomTypeId"`
	Unit       *string `json:"unit,omitempty"`
	Date       string  `json:"date"`
	Reason     string  `json:"reason"`
}
