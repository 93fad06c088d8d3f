package dto

import "time"

// CreateBookingRequest là DTO cho request tạo booking, ngày theo định dạng 02/01/2006
type CreateBookingRequest struct {
	RoomTypeID    uint   `json:"roomTypeId" binding:"required"`
	CheckInDate   string `json:"checkInDate" binding:"required"`
	CheckOutDate  string `json:"checkOutDate" binding:"required"`
	CheckInTime   string `json:"checkInTime,omitempty"`
	CheckOutTime  string `json:"checkOutTime,omitempty"`
	Quantity      int    `json:"quantity,omitempty"`
	NumGuests     int    `json:"numGuests" binding:"required"`
	RequestedUnit string `json:"requestedUnit,omitempty"`
	GuestName     string `json:"guestName" binding:"required"`
	GuestEmail    string `json:"guestEmail,omitempty"`
	GuestPhone    string `json:"guestPhone" binding:"required"`
	Source        string `json:"source,omitempty"`
}

// UpdateBookingRequest cập nhật từng phần, trường nil giữ nguyên giá trị cũ
type UpdateBookingRequest struct {
	CheckInDate   *string `json:"checkInDate,omitempty"`
	CheckOutDate  *string `json:"checkOutDate,omitempty"`
	CheckInTime   *string `json:"checkInTime,omitempty"`
	CheckOutTime  *string `json:"checkOutTime,omitempty"`
	Quantity      *int    `json:"quantity,omitempty"`
	NumGuests     *int    `json:"numGuests,omitempty"`
	RequestedUnit *string `json:"requestedUnit,omitempty"`
	GuestName     *string `json:"guestName,omitempty"`
	GuestEmail    *string `json:"guestEmail,omitempty"`
	GuestPhone    *string `json:"guestPhone,omitempty"`
}

// UpdateBookingStatusRequest là DTO cho request chuyển trạng thái booking
type UpdateBookingStatusRequest struct {
	Status int `json:"status" binding:"required"`
}

type BookingResponse struct {
	ID           uint             `json:"id"`
	RoomType     RoomTypeSummary  `json:"roomType"`
	Units        []string         `json:"units"`
	CheckInDate  string           `json:"checkInDate"`
	CheckOutDate string           `json:"checkOutDate"`
	CheckInTime  string           `json:"checkInTime"`
	CheckOutTime string           `json:"checkOutTime"`
	Nights       int              `json:"nights"`
	Quantity     int              `json:"quantity"`
	NumGuests    int              `json:"numGuests"`
	GuestName    string           `json:"guestName"`
	GuestEmail   string           `json:"guestEmail"`
	GuestPhone   string           `json:"guestPhone"`
	Status       int              `json:"status"`
	StatusName   string           `json:"statusName"`
	Payment      PaymentSummary   `json:"payment"`
	TotalPrice   int              `json:"totalPrice"`
	OriginalPrice int             `json:"originalPrice"`
	Savings      int              `json:"savings"`
	Source       string           `json:"source"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

type PaymentSummary struct {
	Status     int    `json:"status"`
	PaymentRef string `json:"paymentRef,omitempty"`
	PaidAmount int    `json:"paidAmount"`
}

// QuoteRequest là DTO cho request báo giá, không giữ chỗ
type QuoteRequest struct {
	RoomTypeID   uint   `json:"roomTypeId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Quantity     int    `json:"quantity,omitempty"`
}

type QuoteResponse struct {
	RoomTypeID     uint `json:"roomTypeId"`
	Nights         int  `json:"nights"`
	Quantity       int  `json:"quantity"`
	TotalPrice     int  `json:"totalPrice"`
	OriginalPrice  int  `json:"originalPrice"`
	Savings        int  `json:"savings"`
	PromoNights    int  `json:"promoNights"`
	PerUnitTotal   int  `json:"perUnitTotal"`
	PerUnitNightly int  `json:"perUnitNightly"`
}

// PaymentCallbackRequest là DTO cho callback từ cổng thanh toán
type PaymentCallbackRequest struct {
	PaymentRef string `json:"paymentRef" binding:"required"`
	Amount     int    `json:"amount"`
	Status     string `json:"status" binding:"required,oneof=paid failed expired"`
}

// AssistantBookingRequest là DTO cho đặt phòng qua trợ lý, tên hạng phòng dạng tự do
type AssistantBookingRequest struct {
	RoomTypeName  string `json:"roomTypeName" binding:"required"`
	CheckInDate   string `json:"checkInDate" binding:"required"`
	CheckOutDate  string `json:"checkOutDate" binding:"required"`
	Quantity      int    `json:"quantity"`
	RequestedUnit string `json:"requestedUnit,omitempty"`
	NumGuests     int    `json:"numGuests" binding:"required"`
	GuestName     string `json:"guestName" binding:"required"`
	GuestPhone    string `json:"guestPhone" binding:"required"`
	GuestEmail    string `json:"guestEmail,omitempty"`
}
