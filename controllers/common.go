package controllers

import (
	"time"

	"stayhub/dto"
	"stayhub/models"
)

var layout = "02/01/2006"

// parseDate đọc ngày theo định dạng hiển thị chung của hệ thống
func parseDate(dateStr string) (time.Time, error) {
	return time.Parse(layout, dateStr)
}

func toRoomTypeSummary(rt *models.RoomType) dto.RoomTypeSummary {
	return dto.RoomTypeSummary{
		ID:        rt.ID,
		Name:      rt.Name,
		Price:     rt.Price,
		MaxGuests: rt.MaxGuests,
		Avatar:    rt.Avatar,
	}
}

func toBookingResponse(b *models.Booking) dto.BookingResponse {
	savings := 0
	if b.OriginalPrice > b.TotalPrice {
		savings = b.OriginalPrice - b.TotalPrice
	}
	return dto.BookingResponse{
		ID:            b.ID,
		RoomType:      toRoomTypeSummary(&b.RoomType),
		Units:         b.UnitNames(),
		CheckInDate:   b.CheckInDate.Format(layout),
		CheckOutDate:  b.CheckOutDate.Format(layout),
		CheckInTime:   b.CheckInTime,
		CheckOutTime:  b.CheckOutTime,
		Nights:        b.Nights(),
		Quantity:      b.Quantity,
		NumGuests:     b.NumGuests,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		GuestPhone:    b.GuestPhone,
		Status:        b.Status,
		StatusName:    models.BookingStatusName(b.Status),
		Payment: dto.PaymentSummary{
			Status:     b.PaymentStatus,
			PaymentRef: b.PaymentRef,
			PaidAmount: int(b.PaidAmount),
		},
		TotalPrice:    b.TotalPrice,
		OriginalPrice: b.OriginalPrice,
		Savings:       savings,
		Source:        b.Source,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func toRoomTypeResponse(rt *models.RoomType) dto.RoomTypeResponse {
	return dto.RoomTypeResponse{
		ID:             rt.ID,
		Name:           rt.Name,
		Description:    rt.Description,
		Price:          rt.Price,
		MaxGuests:      rt.MaxGuests,
		Units:          rt.UnitList(),
		Allotment:      rt.Allotment,
		SundayPrice:    rt.SundayPrice,
		MondayPrice:    rt.MondayPrice,
		TuesdayPrice:   rt.TuesdayPrice,
		WednesdayPrice: rt.WednesdayPrice,
		ThursdayPrice:  rt.ThursdayPrice,
		FridayPrice:    rt.FridayPrice,
		SaturdayPrice:  rt.SaturdayPrice,
		Avatar:         rt.Avatar,
		Img:            rt.Img,
		Status:         rt.Status,
		CreatedAt:      rt.CreatedAt,
		UpdatedAt:      rt.UpdatedAt,
	}
}
