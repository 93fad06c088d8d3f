package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRoomName(t *testing.T) {
	assert.Equal(t, "phong doi cao cap", normalizeRoomName("  Phòng Đôi Cao Cấp "))
	assert.Equal(t, "deluxe king", normalizeRoomName("Deluxe King"))
	assert.Equal(t, "", normalizeRoomName("   "))
}

func TestNameSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, nameSimilarity("deluxe", "deluxe"))
	assert.Equal(t, 1.0, nameSimilarity("", ""))

	// Sai một ký tự trên chuỗi dài vẫn phải rất giống
	s := nameSimilarity("phong doi cao cap", "phong doi cao caq")
	assert.Greater(t, s, 0.9)

	// Hai tên khác hẳn nhau thì điểm thấp
	s = nameSimilarity("deluxe king", "bungalow")
	assert.Less(t, s, 0.5)
}
