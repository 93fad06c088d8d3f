package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Booking status
const (
	BookingStatusPending    = 0
	BookingStatusConfirmed  = 1
	BookingStatusCheckedIn  = 2
	BookingStatusCheckedOut = 3
	BookingStatusCancelled  = 4
	BookingStatusNoShow     = 5
)

// Promotion status
const (
	PromotionStatusInactive = 0
	PromotionStatusActive   = 1
)

// Payment status
const (
	PaymentStatusPending = 0
	PaymentStatusPaid    = 1
	PaymentStatusFailed  = 2
	PaymentStatusExpired = 3
)

// Booking source
const (
	BookingSourceWebsite   = "website"
	BookingSourceAdmin     = "admin"
	BookingSourceAssistant = "assistant"
)

// Giờ nhận / trả phòng mặc định
const (
	DefaultCheckInTime  = "14:00"
	DefaultCheckOutTime = "12:00"
)

// User role
const (
	RoleAdmin        = 1
	RoleManager      = 2
	RoleReceptionist = 3
)
