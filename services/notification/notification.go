package notification

import (
	"fmt"
	"strings"

	"stayhub/models"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

// MelodyService đẩy thông báo booking tới các dashboard admin đang mở websocket
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// BookingMessageBuilder dựng nội dung thông báo phẳng cho một booking:
// khách, phòng, ngày, tổng tiền và phần tiết kiệm nếu có khuyến mãi
type BookingMessageBuilder struct {
	booking *models.Booking
	event   string
}

func NewBookingMessageBuilder(booking *models.Booking, event string) *BookingMessageBuilder {
	return &BookingMessageBuilder{
		booking: booking,
		event:   event,
	}
}

func (b *BookingMessageBuilder) Build() string {
	bk := b.booking
	msg := fmt.Sprintf("🔔 %s: #%d - %s (%s), phòng %s, %s → %s, tổng %d",
		b.event,
		bk.ID,
		bk.GuestName,
		bk.GuestPhone,
		strings.Join(bk.UnitNames(), ", "),
		bk.CheckInDate.Format("02/01/2006"),
		bk.CheckOutDate.Format("02/01/2006"),
		bk.TotalPrice,
	)
	if saved := bk.OriginalPrice - bk.TotalPrice; saved > 0 {
		msg += fmt.Sprintf(" (khuyến mãi -%d)", saved)
	}
	return msg
}
