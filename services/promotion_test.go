package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/models"
)

func TestPickPromotionFiltersInactiveAndOutOfRange(t *testing.T) {
	promos := []models.Promotion{
		{ID: 1, PromoPrice: intPtr(100), StartDate: d(2025, time.June, 1), EndDate: d(2025, time.June, 10), Status: 0},
		{ID: 2, PromoPrice: intPtr(200), StartDate: d(2025, time.June, 20), EndDate: d(2025, time.June, 30), Status: 1},
	}

	assert.Nil(t, pickPromotion(promos, d(2025, time.June, 5), 1))

	p := pickPromotion(promos, d(2025, time.June, 20), 1)
	require.NotNil(t, p)
	assert.Equal(t, uint(2), p.ID)
}

func TestPickPromotionInclusiveRange(t *testing.T) {
	promos := []models.Promotion{
		{ID: 1, PromoPrice: intPtr(100), StartDate: d(2025, time.June, 5), EndDate: d(2025, time.June, 7), Status: 1},
	}

	assert.Nil(t, pickPromotion(promos, d(2025, time.June, 4), 1))
	assert.NotNil(t, pickPromotion(promos, d(2025, time.June, 5), 1))
	assert.NotNil(t, pickPromotion(promos, d(2025, time.June, 7), 1))
	assert.Nil(t, pickPromotion(promos, d(2025, time.June, 8), 1))
}

func TestPickPromotionMinNights(t *testing.T) {
	promos := []models.Promotion{
		{ID: 1, PromoPrice: intPtr(100), StartDate: d(2025, time.June, 1), EndDate: d(2025, time.June, 30), MinNights: 3, Status: 1},
	}

	assert.Nil(t, pickPromotion(promos, d(2025, time.June, 5), 2))
	assert.NotNil(t, pickPromotion(promos, d(2025, time.June, 5), 3))
}

func TestPickPromotionTieBreak(t *testing.T) {
	base := d(2025, time.June, 1)
	end := d(2025, time.June, 30)

	// Priority cao hơn thắng
	promos := []models.Promotion{
		{ID: 1, Priority: 1, PromoPrice: intPtr(100), StartDate: base, EndDate: end, Status: 1},
		{ID: 2, Priority: 5, PromoPrice: intPtr(200), StartDate: base, EndDate: end, Status: 1},
	}
	p := pickPromotion(promos, d(2025, time.June, 5), 1)
	require.NotNil(t, p)
	assert.Equal(t, uint(2), p.ID)

	// Bằng priority thì bản ghi tạo sau thắng
	older := time.Date(2025, time.May, 1, 8, 0, 0, 0, time.UTC)
	newer := time.Date(2025, time.May, 2, 8, 0, 0, 0, time.UTC)
	promos = []models.Promotion{
		{ID: 1, PromoPrice: intPtr(100), StartDate: base, EndDate: end, Status: 1, CreatedAt: newer},
		{ID: 2, PromoPrice: intPtr(200), StartDate: base, EndDate: end, Status: 1, CreatedAt: older},
	}
	p = pickPromotion(promos, d(2025, time.June, 5), 1)
	require.NotNil(t, p)
	assert.Equal(t, uint(1), p.ID)

	// Cùng created_at thì ID lớn hơn thắng, kết quả luôn xác định
	promos = []models.Promotion{
		{ID: 1, PromoPrice: intPtr(100), StartDate: base, EndDate: end, Status: 1, CreatedAt: older},
		{ID: 2, PromoPrice: intPtr(200), StartDate: base, EndDate: end, Status: 1, CreatedAt: older},
	}
	p = pickPromotion(promos, d(2025, time.June, 5), 1)
	require.NotNil(t, p)
	assert.Equal(t, uint(2), p.ID)
}

func TestEffectivePromoPrice(t *testing.T) {
	// Giá cố định thắng phần trăm khi có cả hai
	p := &models.Promotion{PromoPrice: intPtr(180000), DiscountPercent: intPtr(50)}
	assert.Equal(t, 180000, effectivePromoPrice(300000, p))

	p = &models.Promotion{DiscountPercent: intPtr(15)}
	assert.Equal(t, 255000, effectivePromoPrice(300000, p))

	// Phần trăm làm tròn về đơn vị gần nhất
	p = &models.Promotion{DiscountPercent: intPtr(33)}
	assert.Equal(t, 67, effectivePromoPrice(100, p))

	// Không khai báo gì thì giữ nguyên giá gốc
	p = &models.Promotion{}
	assert.Equal(t, 300000, effectivePromoPrice(300000, p))
}

func TestLegacyPromoPrice(t *testing.T) {
	start := d(2025, time.June, 1)
	end := d(2025, time.June, 10)
	roomType := &models.RoomType{
		Price:          300000,
		PromoPrice:     intPtr(250000),
		PromoStartDate: &start,
		PromoEndDate:   &end,
	}

	price, ok := legacyPromoPrice(roomType, d(2025, time.June, 10))
	assert.True(t, ok)
	assert.Equal(t, 250000, price)

	_, ok = legacyPromoPrice(roomType, d(2025, time.June, 11))
	assert.False(t, ok)

	_, ok = legacyPromoPrice(&models.RoomType{Price: 300000}, d(2025, time.June, 5))
	assert.False(t, ok)
}
