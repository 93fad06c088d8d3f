package models

import "time"

type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Email       string    `json:"email" gorm:"uniqueIndex"`
	Password    string    `json:"-"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        int       `json:"role"` // 0: khách, 1: super admin, 2: admin, 3: lễ tân
	Status      int       `json:"status" gorm:"default:1"`
	Avatar      string    `json:"avatar"`
	IsVerified  bool      `json:"isVerified"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
