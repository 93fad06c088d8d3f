package validator

import (
	"encoding/json"
	"regexp"
	"time"

	"stayhub/errors"
	"stayhub/models"
)

// ValidateRoomType kiểm tra hạng phòng trước khi ghi
func ValidateRoomType(roomType *models.RoomType) error {
	if roomType.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên hạng phòng không được để trống", nil)
	}

	if roomType.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá cơ bản phải lớn hơn 0", nil)
	}

	if roomType.MaxGuests <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số khách tối đa phải lớn hơn 0", nil)
	}

	var units []string
	if len(roomType.Units) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Danh sách phòng không được để trống", nil)
	}
	if err := json.Unmarshal(roomType.Units, &units); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng danh sách phòng không hợp lệ", err)
	}
	if len(units) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Danh sách phòng không được để trống", nil)
	}

	seen := make(map[string]bool)
	for _, unit := range units {
		if unit == "" {
			return errors.NewAppError(errors.ErrCodeValidation, "Mã phòng không được để trống", nil)
		}
		if seen[unit] {
			return errors.NewAppError(errors.ErrCodeValidation, "Mã phòng bị trùng: "+unit, nil)
		}
		seen[unit] = true
	}

	if roomType.Allotment != 0 && roomType.Allotment != len(units) {
		return errors.NewAppError(errors.ErrCodeValidation, "Allotment không khớp số phòng khai báo", nil)
	}

	for _, p := range []*int{
		roomType.SundayPrice, roomType.MondayPrice, roomType.TuesdayPrice,
		roomType.WednesdayPrice, roomType.ThursdayPrice, roomType.FridayPrice,
		roomType.SaturdayPrice,
	} {
		if p != nil && *p <= 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "Giá theo thứ phải lớn hơn 0", nil)
		}
	}

	return roomType.ValidateStatus()
}

// ValidatePromotion kiểm tra khuyến mãi trước khi ghi
func ValidatePromotion(promo *models.Promotion) error {
	if promo.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khuyến mãi không được để trống", nil)
	}

	if promo.RoomTypeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Khuyến mãi phải thuộc một hạng phòng", nil)
	}

	if promo.PromoPrice == nil && promo.DiscountPercent == nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Khuyến mãi phải có giá cố định hoặc phần trăm giảm", nil)
	}

	if promo.PromoPrice != nil && *promo.PromoPrice <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá khuyến mãi phải lớn hơn 0", nil)
	}

	if promo.DiscountPercent != nil && (*promo.DiscountPercent <= 0 || *promo.DiscountPercent > 100) {
		return errors.NewAppError(errors.ErrCodeValidation, "Phần trăm giảm phải trong khoảng 1-100", nil)
	}

	if promo.EndDate.Before(promo.StartDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày kết thúc phải từ ngày bắt đầu trở đi", nil)
	}

	if promo.MinNights < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số đêm tối thiểu không được âm", nil)
	}

	return promo.ValidateStatus()
}

// ValidateBookingDates kiểm tra khoảng ngày và giờ nhận/trả phòng
func ValidateBookingDates(checkIn, checkOut time.Time, checkInTime, checkOutTime string) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày nhận và trả phòng không được để trống", nil)
	}

	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange,
			"Ngày trả phòng phải sau ngày nhận phòng", errors.ErrInvalidDateRange)
	}

	if checkInTime != "" && !isValidClock(checkInTime) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ nhận phòng không hợp lệ, dùng định dạng HH:MM", nil)
	}

	if checkOutTime != "" && !isValidClock(checkOutTime) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ trả phòng không hợp lệ, dùng định dạng HH:MM", nil)
	}

	return nil
}

// ValidateGuestInfo kiểm tra thông tin khách của booking
func ValidateGuestInfo(name, email, phone string) error {
	if name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}

	if phone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if email != "" && !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	return nil
}

// ValidateUnavailableDate kiểm tra bản ghi chặn phòng
func ValidateUnavailableDate(record *models.UnavailableDate) error {
	if record.RoomTypeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Bản ghi chặn phòng phải thuộc một hạng phòng", nil)
	}
	if record.Date.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày chặn không được để trống", nil)
	}
	if record.Unit != nil && *record.Unit == "" {
		return errors.NewAppError(errors.ErrCodeValidation, "Mã phòng chặn không được là chuỗi rỗng, bỏ trống để chặn cả hạng phòng", nil)
	}
	return nil
}

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func isValidPhone(phone string) bool {
	re := regexp.MustCompile(`^(0|\+84)[0-9]{9,10}$`)
	return re.MatchString(phone)
}

func isValidClock(clock string) bool {
	if _, err := time.Parse("15:04", clock); err != nil {
		return false
	}
	return true
}
