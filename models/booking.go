package models

import (
	"time"
)

// Booking là một lượt đặt phòng. Unit là phòng chính (trường kiểu cũ, luôn bằng
// phòng đầu tiên được gán); danh sách đầy đủ nằm trong Details.
type Booking struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	RoomTypeID uint     `json:"roomTypeId" gorm:"index"`
	RoomType   RoomType `json:"roomType" gorm:"foreignKey:RoomTypeID"`
	UserID     *uint    `json:"userId"`
	User       *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`

	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`
	NumGuests  int    `json:"numGuests"`

	Unit         string    `json:"unit"`
	Quantity     int       `json:"quantity"` // Số phòng của booking, bằng số dòng Details
	CheckInDate  time.Time `json:"checkInDate" gorm:"type:date;index"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"type:date;index"`
	CheckInTime  string    `json:"checkInTime" gorm:"default:14:00"`
	CheckOutTime string    `json:"checkOutTime" gorm:"default:12:00"`

	Status        int     `json:"status"`
	PaymentStatus int     `json:"paymentStatus"`
	PaymentRef    string  `json:"paymentRef" gorm:"index"` // Mã đơn phía cổng thanh toán
	PaidAmount    float64 `json:"paidAmount"`
	TotalPrice    int     `json:"totalPrice"`
	OriginalPrice int     `json:"originalPrice"` // Tổng trước khuyến mãi, theo giá ngày trong tuần
	Source        string  `json:"source"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Details []BookingDetail `json:"details,omitempty" gorm:"foreignKey:BookingID"`
}

// Nights trả về số đêm của booking
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// UnitNames trả về danh sách phòng đã gán, phòng chính đứng đầu
func (b *Booking) UnitNames() []string {
	if len(b.Details) == 0 {
		if b.Unit == "" {
			return []string{}
		}
		return []string{b.Unit}
	}
	units := make([]string, 0, len(b.Details))
	for _, d := range b.Details {
		units = append(units, d.Unit)
	}
	return units
}
