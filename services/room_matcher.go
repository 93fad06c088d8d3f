package services

import (
	"fmt"
	"strings"

	apperrors "stayhub/errors"
	"stayhub/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// RoomTypeMatcher dò tên hạng phòng từ chuỗi tự do của trợ lý hoặc chatbot.
// Engine chỉ nhận ID đã resolve, mọi sự mơ hồ dừng lại ở đây.
type RoomTypeMatcher struct {
	roomTypes []models.RoomType
	names     []string
	cm        *closestmatch.ClosestMatch
}

// NewRoomTypeMatcher nạp các hạng phòng đang hoạt động và dựng matcher
func NewRoomTypeMatcher(db *gorm.DB) (*RoomTypeMatcher, error) {
	var roomTypes []models.RoomType
	if err := db.Where("status = ?", 1).Find(&roomTypes).Error; err != nil {
		return nil, err
	}

	names := make([]string, 0, len(roomTypes))
	for _, rt := range roomTypes {
		names = append(names, normalizeRoomName(rt.Name))
	}

	return &RoomTypeMatcher{
		roomTypes: roomTypes,
		names:     names,
		cm:        closestmatch.New(names, []int{2, 3}),
	}, nil
}

// Resolve tìm hạng phòng theo tên tự do. Tên không khớp đủ rõ hoặc khớp với
// nhiều hạng phòng ngang nhau thì trả lỗi thay vì đoán.
func (m *RoomTypeMatcher) Resolve(query string) (*models.RoomType, error) {
	normalized := normalizeRoomName(query)
	if normalized == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomTypeNotFound,
			"Tên hạng phòng không được để trống", apperrors.ErrRoomTypeNotFound)
	}

	// Khớp chính xác trước, không cần dò mờ
	for i, name := range m.names {
		if name == normalized {
			return &m.roomTypes[i], nil
		}
	}

	best, second := -1.0, -1.0
	bestIdx := -1
	for i, name := range m.names {
		s := nameSimilarity(normalized, name)
		if s > best {
			second = best
			best = s
			bestIdx = i
		} else if s > second {
			second = s
		}
	}

	if bestIdx < 0 || best < 0.6 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomTypeNotFound,
			fmt.Sprintf("Không tìm thấy hạng phòng nào khớp với %q", query),
			apperrors.ErrRoomTypeNotFound)
	}
	if best-second < 0.1 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomTypeNotFound,
			fmt.Sprintf("Tên %q khớp với nhiều hạng phòng, vui lòng ghi rõ hơn", query),
			apperrors.ErrRoomTypeNotFound)
	}
	return &m.roomTypes[bestIdx], nil
}

// Suggest trả về tên gần nhất, dùng cho thông báo lỗi của trợ lý
func (m *RoomTypeMatcher) Suggest(query string) string {
	return m.cm.Closest(normalizeRoomName(query))
}

// Hàm chuẩn hóa chuỗi
func normalizeRoomName(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tính độ tương đồng giữa hai chuỗi
func nameSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}
