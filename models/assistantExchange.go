package models

import "time"

// AssistantExchange là một lượt đặt phòng qua kênh trợ lý, lưu để đối soát
type AssistantExchange struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SessionID string    `json:"sessionId" gorm:"index"`
	Query     string    `json:"query"`
	BookingID uint      `json:"bookingId" gorm:"index"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
