package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGormConfigTranslatesDriverErrors(t *testing.T) {
	// Thiếu cờ này thì lỗi trùng khoá của driver không bao giờ thành
	// gorm.ErrDuplicatedKey và tranh chấp gán phòng không được báo đúng
	assert.True(t, gormConfig().TranslateError)
}
