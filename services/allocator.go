package services

import (
	apperrors "stayhub/errors"
)

// pickUnits chọn phòng từ danh sách phòng trống. Nếu khách chỉ định phòng thì
// phòng đó phải tồn tại và còn trống, các phòng còn thiếu lấy tiếp theo thứ tự;
// không chỉ định thì lấy quantity phòng đầu tiên. Kết quả luôn xác định với
// cùng dữ liệu vào.
func pickUnits(all, free []string, quantity int, requested string) ([]string, error) {
	if quantity <= 0 {
		quantity = 1
	}

	if requested != "" {
		if !containsUnit(all, requested) {
			return nil, &apperrors.UnitUnavailableError{
				Unit:         requested,
				Reason:       "không thuộc hạng phòng này",
				Alternatives: free,
			}
		}
		if !containsUnit(free, requested) {
			return nil, &apperrors.UnitUnavailableError{
				Unit:         requested,
				Reason:       "đã có khách trong khoảng thời gian này",
				Alternatives: free,
			}
		}
		if len(free) < quantity {
			return nil, &apperrors.InsufficientInventoryError{Requested: quantity, Available: len(free)}
		}
		units := []string{requested}
		for _, u := range free {
			if len(units) == quantity {
				break
			}
			if u != requested {
				units = append(units, u)
			}
		}
		return units, nil
	}

	if len(free) < quantity {
		return nil, &apperrors.InsufficientInventoryError{Requested: quantity, Available: len(free)}
	}
	return append([]string(nil), free[:quantity]...), nil
}

func containsUnit(units []string, unit string) bool {
	for _, u := range units {
		if u == unit {
			return true
		}
	}
	return false
}
