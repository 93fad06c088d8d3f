package dto

import "time"

// CreatePromotionRequest là DTO cho request tạo khuyến mãi, ngày theo định dạng 02/01/2006
type CreatePromotionRequest struct {
	RoomTypeID      uint   `json:"roomTypeId" binding:"required"`
	Name            string `json:"name" binding:"required"`
	PromoPrice      *int   `json:"promoPrice,omitempty"`
	DiscountPercent *int   `json:"discountPercent,omitempty"`
	StartDate       string `json:"startDate" binding:"required"`
	EndDate         string `json:"endDate" binding:"required"`
	Priority        int    `json:"priority"`
	MinNights       int    `json:"minNights"`
	Status          int    `json:"status"`
}

type PromotionResponse struct {
	ID              uint      `json:"id"`
	RoomTypeID      uint      `json:"roomTypeId"`
	Name            string    `json:"name"`
	PromoPrice      *int      `json:"promoPrice,omitempty"`
	DiscountPercent *int      `json:"discountPercent,omitempty"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	Priority        int       `json:"priority"`
	MinNights       int       `json:"minNights"`
	Status          int       `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
