package validator

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/errors"
	"stayhub/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int {
	return &v
}

func validRoomType() *models.RoomType {
	return &models.RoomType{
		Name:      "Deluxe King",
		Price:     300000,
		MaxGuests: 2,
		Units:     json.RawMessage(`["101","102","103"]`),
		Status:    1,
	}
}

func TestValidateRoomType(t *testing.T) {
	require.NoError(t, ValidateRoomType(validRoomType()))

	rt := validRoomType()
	rt.Name = ""
	assert.Error(t, ValidateRoomType(rt))

	rt = validRoomType()
	rt.Price = 0
	assert.Error(t, ValidateRoomType(rt))

	rt = validRoomType()
	rt.Units = json.RawMessage(`[]`)
	assert.Error(t, ValidateRoomType(rt))

	rt = validRoomType()
	rt.Units = json.RawMessage(`["101","101"]`)
	assert.Error(t, ValidateRoomType(rt))

	rt = validRoomType()
	rt.Units = json.RawMessage(`không phải json`)
	assert.Error(t, ValidateRoomType(rt))

	rt = validRoomType()
	rt.Allotment = 5
	assert.Error(t, ValidateRoomType(rt))

	rt = validRoomType()
	rt.MondayPrice = intPtr(-1)
	assert.Error(t, ValidateRoomType(rt))
}

func TestValidatePromotion(t *testing.T) {
	promo := &models.Promotion{
		RoomTypeID: 1,
		Name:       "Hè rực rỡ",
		PromoPrice: intPtr(200000),
		StartDate:  date(2025, time.June, 1),
		EndDate:    date(2025, time.June, 30),
		Status:     1,
	}
	require.NoError(t, ValidatePromotion(promo))

	// Không có giá cố định lẫn phần trăm
	bad := *promo
	bad.PromoPrice = nil
	assert.Error(t, ValidatePromotion(&bad))

	bad = *promo
	bad.PromoPrice = nil
	bad.DiscountPercent = intPtr(101)
	assert.Error(t, ValidatePromotion(&bad))

	bad = *promo
	bad.PromoPrice = nil
	bad.DiscountPercent = intPtr(15)
	require.NoError(t, ValidatePromotion(&bad))

	bad = *promo
	bad.EndDate = date(2025, time.May, 1)
	err := ValidatePromotion(&bad)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidDateRange, appErr.Code)

	// Một ngày duy nhất vẫn hợp lệ
	oneDay := *promo
	oneDay.EndDate = oneDay.StartDate
	require.NoError(t, ValidatePromotion(&oneDay))
}

func TestValidateBookingDates(t *testing.T) {
	require.NoError(t, ValidateBookingDates(date(2025, time.June, 1), date(2025, time.June, 3), "14:00", "12:00"))
	require.NoError(t, ValidateBookingDates(date(2025, time.June, 1), date(2025, time.June, 3), "", ""))

	err := ValidateBookingDates(date(2025, time.June, 3), date(2025, time.June, 3), "", "")
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidDateRange, appErr.Code)

	assert.Error(t, ValidateBookingDates(date(2025, time.June, 1), date(2025, time.June, 3), "25:00", ""))
	assert.Error(t, ValidateBookingDates(date(2025, time.June, 1), date(2025, time.June, 3), "", "chiều"))
}

func TestValidateGuestInfo(t *testing.T) {
	require.NoError(t, ValidateGuestInfo("Nguyễn Văn A", "a@example.com", "0901234567"))
	require.NoError(t, ValidateGuestInfo("Nguyễn Văn A", "", "+84901234567"))

	assert.Error(t, ValidateGuestInfo("", "a@example.com", "0901234567"))
	assert.Error(t, ValidateGuestInfo("Nguyễn Văn A", "a@example.com", ""))
	assert.Error(t, ValidateGuestInfo("Nguyễn Văn A", "a@example.com", "12345"))
	assert.Error(t, ValidateGuestInfo("Nguyễn Văn A", "không phải email", "0901234567"))
}

func TestValidateUnavailableDate(t *testing.T) {
	unit := "101"
	require.NoError(t, ValidateUnavailableDate(&models.UnavailableDate{
		RoomTypeID: 1,
		Unit:       &unit,
		Date:       date(2025, time.June, 1),
	}))

	// Unit nil nghĩa là chặn cả hạng phòng
	require.NoError(t, ValidateUnavailableDate(&models.UnavailableDate{
		RoomTypeID: 1,
		Date:       date(2025, time.June, 1),
	}))

	assert.Error(t, ValidateUnavailableDate(&models.UnavailableDate{Date: date(2025, time.June, 1)}))
	assert.Error(t, ValidateUnavailableDate(&models.UnavailableDate{RoomTypeID: 1}))

	empty := ""
	assert.Error(t, ValidateUnavailableDate(&models.UnavailableDate{
		RoomTypeID: 1,
		Unit:       &empty,
		Date:       date(2025, time.June, 1),
	}))
}
