package services

import (
	"time"

	apperrors "stayhub/errors"
	"stayhub/models"
)

// StayQuote là kết quả tính giá cho một kỳ lưu trú.
// OriginalTotal và Savings tính trên giá theo thứ trong tuần, không phải giá cơ bản.
type StayQuote struct {
	Nights         int `json:"nights"`
	Quantity       int `json:"quantity"`
	Total          int `json:"total"`
	OriginalTotal  int `json:"originalTotal"`
	Savings        int `json:"savings"`
	PromoNights    int `json:"promoNights"`
	PerUnitTotal   int `json:"perUnitTotal"`
	// PerUnitNightly là giá đêm bình quân một phòng, làm tròn xuống, chỉ để
	// hiển thị. Chi tiết booking lưu PerUnitTotal nên tổng các dòng luôn
	// khớp Total dù giá từng đêm lệch nhau.
	PerUnitNightly int `json:"perUnitNightly"`
}

// quoteStay đi qua từng đêm trong [checkIn, checkOut), áp bảng giá và khuyến mãi
// cho mỗi đêm rồi cộng dồn. Khuyến mãi tính trên một phòng, nhân số lượng ở cuối.
func quoteStay(roomType *models.RoomType, promos []models.Promotion, checkIn, checkOut time.Time, quantity int) (*StayQuote, error) {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights <= 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange,
			"Ngày trả phòng phải sau ngày nhận phòng", apperrors.ErrInvalidDateRange)
	}
	if quantity <= 0 {
		quantity = 1
	}

	quote := &StayQuote{Nights: nights, Quantity: quantity}
	perUnit := 0
	perUnitOriginal := 0

	for date := checkIn; date.Before(checkOut); date = date.AddDate(0, 0, 1) {
		base := NightlyBasePrice(roomType, date)
		effective := base

		if p := pickPromotion(promos, date, nights); p != nil {
			effective = effectivePromoPrice(base, p)
			quote.PromoNights++
		} else if legacy, ok := legacyPromoPrice(roomType, date); ok {
			effective = legacy
			quote.PromoNights++
		}

		perUnit += effective
		perUnitOriginal += base
	}

	quote.PerUnitTotal = perUnit
	quote.PerUnitNightly = perUnit / nights
	quote.Total = perUnit * quantity
	quote.OriginalTotal = perUnitOriginal * quantity
	quote.Savings = quote.OriginalTotal - quote.Total
	return quote, nil
}
