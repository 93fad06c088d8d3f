package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/models"
)

func TestNightlyBasePriceWeekdayOverride(t *testing.T) {
	roomType := &models.RoomType{
		Price:         300000,
		FridayPrice:   intPtr(400000),
		SaturdayPrice: intPtr(450000),
	}

	// 06/06/2025 là thứ sáu, 07/06 thứ bảy, 09/06 thứ hai
	assert.Equal(t, 400000, NightlyBasePrice(roomType, d(2025, time.June, 6)))
	assert.Equal(t, 450000, NightlyBasePrice(roomType, d(2025, time.June, 7)))
	assert.Equal(t, 300000, NightlyBasePrice(roomType, d(2025, time.June, 9)))
}

func TestNightlyBasePriceNoOverrides(t *testing.T) {
	roomType := &models.RoomType{Price: 150000}
	for i := 0; i < 7; i++ {
		assert.Equal(t, 150000, NightlyBasePrice(roomType, d(2025, time.June, 1+i)))
	}
}
