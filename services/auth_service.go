package services

import (
	"context"
	"os"
	"time"

	"stayhub/errors"
	"stayhub/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

var secretKey = []byte(os.Getenv("JWT_SECRET"))

// UserInfo là phần thông tin user nhúng trong claims
type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// GenerateToken tạo access token cho user
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword so khớp mật khẩu với bản băm
func CheckPassword(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu không đúng", errors.ErrInvalidPassword)
	}
	return nil
}

// VerifyGoogleIDToken xác minh tokenId nhận từ Google Sign-In
func VerifyGoogleIDToken(tokenID string) (*idtoken.Payload, error) {
	payload, err := idtoken.Validate(context.Background(), tokenID, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token Google không hợp lệ", err)
	}
	return payload, nil
}

// CreateGoogleUser tạo tài khoản mới từ thông tin Google
func CreateGoogleUser(db *gorm.DB, name, email, avatar string) (models.User, error) {
	user := models.User{
		Name:       name,
		Email:      email,
		Avatar:     avatar,
		Role:       0,
		Status:     1,
		IsVerified: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}
