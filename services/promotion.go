package services

import (
	"math"
	"time"

	"stayhub/constants"
	"stayhub/models"
)

// pickPromotion chọn khuyến mãi áp dụng cho một đêm: đang hoạt động, phủ ngày,
// đạt số đêm tối thiểu. Khi trùng ngày thì priority cao hơn thắng; bằng priority
// thì bản ghi tạo sau thắng, cuối cùng so theo ID để kết quả luôn xác định.
func pickPromotion(promos []models.Promotion, date time.Time, nights int) *models.Promotion {
	var best *models.Promotion
	for i := range promos {
		p := &promos[i]
		if p.Status != constants.PromotionStatusActive {
			continue
		}
		if !p.CoversDate(date) {
			continue
		}
		if p.MinNights > 0 && nights < p.MinNights {
			continue
		}
		if best == nil || promoBeats(p, best) {
			best = p
		}
	}
	return best
}

func promoBeats(a, b *models.Promotion) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// effectivePromoPrice tính giá đêm sau khuyến mãi. Giá cố định thắng phần trăm
// nếu khai báo cả hai; phần trăm làm tròn về đơn vị tiền gần nhất.
func effectivePromoPrice(base int, p *models.Promotion) int {
	if p.PromoPrice != nil {
		return *p.PromoPrice
	}
	if p.DiscountPercent != nil {
		return int(math.Round(float64(base) * (1 - float64(*p.DiscountPercent)/100)))
	}
	return base
}

// legacyPromoPrice là đường dự phòng cho khuyến mãi đơn lẻ khai báo ngay trên
// hạng phòng (dữ liệu cũ chưa chuyển sang bảng promotions). Cùng phép thử
// khoảng ngày bao gồm hai đầu như bảng promotions.
func legacyPromoPrice(roomType *models.RoomType, date time.Time) (int, bool) {
	if roomType.PromoPrice == nil || roomType.PromoStartDate == nil || roomType.PromoEndDate == nil {
		return 0, false
	}
	if date.Before(*roomType.PromoStartDate) || date.After(*roomType.PromoEndDate) {
		return 0, false
	}
	return *roomType.PromoPrice, true
}
