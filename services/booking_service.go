package services

import (
	"errors"
	"fmt"
	"time"

	"stayhub/constants"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/services/logger"
	"stayhub/services/notification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingEngine gom toàn bộ logic phòng trống, gán phòng, tính giá và ghi
// booking về một chỗ. Mọi nơi đặt phòng (web, admin, trợ lý, callback thanh
// toán) đều đi qua engine này thay vì tự kiểm tra lấy.
type BookingEngine struct {
	db       *gorm.DB
	logger   logger.Logger
	notifier notification.Service
	now      func() time.Time
}

type BookingEngineOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Notifier notification.Service
	Now      func() time.Time // để test, mặc định time.Now
}

func NewBookingEngine(opts BookingEngineOptions) *BookingEngine {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &BookingEngine{
		db:       opts.DB,
		logger:   opts.Logger,
		notifier: opts.Notifier,
		now:      opts.Now,
	}
}

// BookingInput là yêu cầu đặt phòng đã chuẩn hoá: hạng phòng phải là ID đã
// resolve, không nhận tên tự do (việc dò tên mờ là trách nhiệm của tầng gọi)
type BookingInput struct {
	RoomTypeID    uint
	CheckInDate   time.Time
	CheckOutDate  time.Time
	CheckInTime   string
	CheckOutTime  string
	Quantity      int
	RequestedUnit string
	NumGuests     int
	GuestName     string
	GuestEmail    string
	GuestPhone    string
	Source        string
	UserID        *uint
}

func (in *BookingInput) normalize() {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	if in.CheckInTime == "" {
		in.CheckInTime = constants.DefaultCheckInTime
	}
	if in.CheckOutTime == "" {
		in.CheckOutTime = constants.DefaultCheckOutTime
	}
	if in.Source == "" {
		in.Source = constants.BookingSourceWebsite
	}
}

// BookingPatch là các thay đổi cho booking có sẵn, trường nil giữ nguyên
type BookingPatch struct {
	RoomTypeID    *uint
	CheckInDate   *time.Time
	CheckOutDate  *time.Time
	CheckInTime   *string
	CheckOutTime  *string
	Quantity      *int
	RequestedUnit *string
	NumGuests     *int
	GuestName     *string
	GuestEmail    *string
	GuestPhone    *string
}

// AvailableUnits trả về danh sách phòng trống của một hạng phòng
func (e *BookingEngine) AvailableUnits(roomTypeID uint, checkIn, checkOut time.Time, excludeBookingID uint) ([]string, error) {
	roomType, err := e.findRoomType(e.db, roomTypeID, false)
	if err != nil {
		return nil, err
	}
	return availableUnits(e.db, roomType, checkIn, checkOut, excludeBookingID)
}

// QuoteStay tính giá cho một kỳ lưu trú, chưa ghi gì vào DB
func (e *BookingEngine) QuoteStay(roomTypeID uint, checkIn, checkOut time.Time, quantity int) (*StayQuote, error) {
	roomType, err := e.findRoomType(e.db, roomTypeID, false)
	if err != nil {
		return nil, err
	}
	promos, err := loadPromotions(e.db, roomType.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return quoteStay(roomType, promos, checkIn, checkOut, quantity)
}

// CheckUnit kiểm tra một phòng cụ thể theo quy tắc trả/nhận cùng ngày
func (e *BookingEngine) CheckUnit(roomTypeID uint, unit string, checkIn, checkOut time.Time, checkInTime, checkOutTime string, excludeBookingID uint) (UnitConflict, error) {
	roomType, err := e.findRoomType(e.db, roomTypeID, false)
	if err != nil {
		return UnitConflict{}, err
	}
	if !roomType.HasUnit(unit) {
		return UnitConflict{}, apperrors.NewAppError(apperrors.ErrCodeUnitUnavailable,
			fmt.Sprintf("Phòng %s không thuộc hạng phòng %s", unit, roomType.Name), nil)
	}
	return unitConflict(e.db, roomType, unit, checkIn, checkOut, checkInTime, checkOutTime, excludeBookingID)
}

// CreateBooking kiểm tra lại phòng trống, gán phòng, tính giá và ghi booking
// cùng các dòng chi tiết trong một transaction duy nhất. Bản ghi hạng phòng
// được khoá FOR UPDATE nên hai yêu cầu tranh phòng cuối cùng không thể cùng
// vượt qua bước kiểm tra.
func (e *BookingEngine) CreateBooking(input BookingInput) (*models.Booking, error) {
	input.normalize()
	if !input.CheckOutDate.After(input.CheckInDate) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange,
			"Ngày trả phòng phải sau ngày nhận phòng", apperrors.ErrInvalidDateRange)
	}

	var booking *models.Booking
	err := e.db.Transaction(func(tx *gorm.DB) error {
		roomType, err := e.findRoomType(tx, input.RoomTypeID, true)
		if err != nil {
			return err
		}

		if roomType.MaxGuests > 0 && input.NumGuests > roomType.MaxGuests*input.Quantity {
			return apperrors.NewAppError(apperrors.ErrCodeGuestCountExceeded,
				fmt.Sprintf("Hạng phòng %s tối đa %d khách cho %d phòng",
					roomType.Name, roomType.MaxGuests*input.Quantity, input.Quantity),
				apperrors.ErrGuestCountExceeded)
		}

		units, err := e.allocate(tx, roomType, input, 0)
		if err != nil {
			return err
		}

		promos, err := loadPromotions(tx, roomType.ID, input.CheckInDate, input.CheckOutDate)
		if err != nil {
			return err
		}
		quote, err := quoteStay(roomType, promos, input.CheckInDate, input.CheckOutDate, input.Quantity)
		if err != nil {
			return err
		}

		booking = &models.Booking{
			RoomTypeID:    roomType.ID,
			UserID:        input.UserID,
			GuestName:     input.GuestName,
			GuestEmail:    input.GuestEmail,
			GuestPhone:    input.GuestPhone,
			NumGuests:     input.NumGuests,
			Unit:          units[0],
			Quantity:      input.Quantity,
			CheckInDate:   input.CheckInDate,
			CheckOutDate:  input.CheckOutDate,
			CheckInTime:   input.CheckInTime,
			CheckOutTime:  input.CheckOutTime,
			Status:        constants.BookingStatusPending,
			PaymentStatus: constants.PaymentStatusPending,
			TotalPrice:    quote.Total,
			OriginalPrice: quote.OriginalTotal,
			Source:        input.Source,
			CreatedAt:     e.now(),
			UpdatedAt:     e.now(),
		}
		if err := tx.Create(booking).Error; err != nil {
			return mapWriteError(err)
		}

		details := make([]models.BookingDetail, 0, len(units))
		for _, u := range units {
			details = append(details, models.BookingDetail{
				BookingID:  booking.ID,
				RoomTypeID: roomType.ID,
				Unit:       u,
				StayPrice:  quote.PerUnitTotal,
			})
		}
		if err := tx.Create(&details).Error; err != nil {
			return mapWriteError(err)
		}
		booking.Details = details
		booking.RoomType = *roomType
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.notifyBooking(booking, "Đặt phòng mới")
	return booking, nil
}

// UpdateBooking sửa booking có sẵn. Khi thay đổi ngày, hạng phòng, số lượng
// hay phòng chỉ định thì kiểm tra lại phòng trống (loại trừ chính booking này),
// tính lại giá và đồng bộ các dòng chi tiết theo kiểu diff: xoá dòng thừa,
// cập nhật dòng giữ lại, thêm dòng mới — không xoá sạch rồi ghi lại.
func (e *BookingEngine) UpdateBooking(id uint, patch BookingPatch) (*models.Booking, error) {
	var booking models.Booking
	err := e.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Details").First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Không tìm thấy booking", apperrors.ErrBookingNotFound)
			}
			return err
		}

		input := patchedInput(&booking, patch)
		if !input.CheckOutDate.After(input.CheckInDate) {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange,
				"Ngày trả phòng phải sau ngày nhận phòng", apperrors.ErrInvalidDateRange)
		}

		roomType, err := e.findRoomType(tx, input.RoomTypeID, true)
		if err != nil {
			return err
		}
		if roomType.MaxGuests > 0 && input.NumGuests > roomType.MaxGuests*input.Quantity {
			return apperrors.NewAppError(apperrors.ErrCodeGuestCountExceeded,
				fmt.Sprintf("Hạng phòng %s tối đa %d khách cho %d phòng",
					roomType.Name, roomType.MaxGuests*input.Quantity, input.Quantity),
				apperrors.ErrGuestCountExceeded)
		}

		if needsReallocation(&booking, patch) {
			units, err := e.allocate(tx, roomType, input, booking.ID)
			if err != nil {
				return err
			}
			promos, err := loadPromotions(tx, roomType.ID, input.CheckInDate, input.CheckOutDate)
			if err != nil {
				return err
			}
			quote, err := quoteStay(roomType, promos, input.CheckInDate, input.CheckOutDate, input.Quantity)
			if err != nil {
				return err
			}
			if err := syncDetails(tx, &booking, roomType.ID, units, quote.PerUnitTotal); err != nil {
				return err
			}
			booking.Unit = units[0]
			booking.TotalPrice = quote.Total
			booking.OriginalPrice = quote.OriginalTotal
		}

		booking.RoomTypeID = input.RoomTypeID
		booking.CheckInDate = input.CheckInDate
		booking.CheckOutDate = input.CheckOutDate
		booking.CheckInTime = input.CheckInTime
		booking.CheckOutTime = input.CheckOutTime
		booking.Quantity = input.Quantity
		booking.NumGuests = input.NumGuests
		booking.GuestName = input.GuestName
		booking.GuestEmail = input.GuestEmail
		booking.GuestPhone = input.GuestPhone
		booking.UpdatedAt = e.now()

		if err := tx.Save(&booking).Error; err != nil {
			return mapWriteError(err)
		}
		booking.RoomType = *roomType
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.notifyBooking(&booking, "Đổi lịch đặt phòng")
	return &booking, nil
}

// ChangeBookingStatus chuyển trạng thái theo đúng vòng đời:
// pending -> confirmed -> checked_in -> checked_out; cancelled và no_show
// chỉ đi từ pending hoặc confirmed
func (e *BookingEngine) ChangeBookingStatus(id uint, newStatus int) (*models.Booking, error) {
	var booking models.Booking
	if err := e.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Không tìm thấy booking", apperrors.ErrBookingNotFound)
		}
		return nil, err
	}

	if err := models.ValidateStatusTransition(booking.Status, newStatus); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "Chuyển trạng thái không hợp lệ", err)
	}

	booking.Status = newStatus
	booking.UpdatedAt = e.now()
	if err := e.db.Save(&booking).Error; err != nil {
		return nil, err
	}

	e.notifyBooking(&booking, fmt.Sprintf("Booking chuyển sang %s", models.BookingStatusName(newStatus)))
	return &booking, nil
}

// GetBooking trả về booking kèm hạng phòng và chi tiết phòng đã gán
func (e *BookingEngine) GetBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := e.db.Preload("RoomType").Preload("Details").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Không tìm thấy booking", apperrors.ErrBookingNotFound)
		}
		return nil, err
	}
	return &booking, nil
}

// SetPaymentRef gắn mã đơn phía cổng thanh toán vào booking trước khi gửi đi
func (e *BookingEngine) SetPaymentRef(id uint, ref string) error {
	res := e.db.Model(&models.Booking{}).Where("id = ?", id).Update("payment_ref", ref)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Không tìm thấy booking", apperrors.ErrBookingNotFound)
	}
	return nil
}

// HandlePaymentCallback cập nhật kết quả thanh toán theo mã đơn của cổng
// thanh toán. Chữ ký callback phải được tầng gọi xác thực trước khi vào đây.
func (e *BookingEngine) HandlePaymentCallback(ref string, paymentStatus int, amount float64) (*models.Booking, error) {
	var booking models.Booking
	if err := e.db.Where("payment_ref = ?", ref).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDBNotFound,
				"Không tìm thấy booking cho mã thanh toán", apperrors.ErrPaymentRefUnknown)
		}
		return nil, err
	}

	booking.PaymentStatus = paymentStatus
	if paymentStatus == constants.PaymentStatusPaid {
		booking.PaidAmount = amount
		if booking.Status == constants.BookingStatusPending {
			booking.Status = constants.BookingStatusConfirmed
		}
	}
	booking.UpdatedAt = e.now()
	if err := e.db.Save(&booking).Error; err != nil {
		return nil, err
	}

	if paymentStatus == constants.PaymentStatusPaid {
		e.notifyBooking(&booking, "Thanh toán thành công")
	}
	return &booking, nil
}

// SweepNoShows đánh dấu no_show các booking pending chưa thanh toán mà ngày
// nhận phòng đã qua; phòng của chúng tự quay về quỹ phòng trống nhờ bộ lọc
// trạng thái trong availableUnits
func (e *BookingEngine) SweepNoShows() (int, error) {
	now := e.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	res := e.db.Model(&models.Booking{}).
		Where("status = ? AND payment_status <> ? AND check_in_date < ?",
			constants.BookingStatusPending, constants.PaymentStatusPaid, today).
		Updates(map[string]interface{}{
			"status":     constants.BookingStatusNoShow,
			"updated_at": now,
		})
	return int(res.RowsAffected), res.Error
}

// ExpirePromotions tắt các khuyến mãi đã qua ngày kết thúc. Bảng giá vẫn kiểm
// tra khoảng ngày lúc tính tiền, job này chỉ dọn trạng thái cho trang quản trị
func (e *BookingEngine) ExpirePromotions(before time.Time) (int, error) {
	day := time.Date(before.Year(), before.Month(), before.Day(), 0, 0, 0, 0, before.Location())
	res := e.db.Model(&models.Promotion{}).
		Where("status = ? AND end_date < ?", constants.PromotionStatusActive, day).
		Update("status", constants.PromotionStatusInactive)
	return int(res.RowsAffected), res.Error
}

// allocate chạy Availability rồi Allocator rồi kiểm tra xung đột từng phòng
func (e *BookingEngine) allocate(tx *gorm.DB, roomType *models.RoomType, input BookingInput, excludeBookingID uint) ([]string, error) {
	free, err := availableUnits(tx, roomType, input.CheckInDate, input.CheckOutDate, excludeBookingID)
	if err != nil {
		return nil, err
	}

	units, err := pickUnits(roomType.UnitList(), free, input.Quantity, input.RequestedUnit)
	if err != nil {
		return nil, wrapAllocationError(err)
	}

	for _, u := range units {
		conflict, err := unitConflict(tx, roomType, u, input.CheckInDate, input.CheckOutDate,
			input.CheckInTime, input.CheckOutTime, excludeBookingID)
		if err != nil {
			return nil, err
		}
		if conflict.Conflict {
			unitErr := &apperrors.UnitUnavailableError{
				Unit:         u,
				Reason:       conflict.Reason,
				Alternatives: withoutUnit(free, u),
			}
			return nil, apperrors.NewAppError(apperrors.ErrCodeUnitUnavailable, unitErr.Error(), unitErr)
		}
	}
	return units, nil
}

func (e *BookingEngine) findRoomType(tx *gorm.DB, id uint, forUpdate bool) (*models.RoomType, error) {
	var roomType models.RoomType
	q := tx
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&roomType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeRoomTypeNotFound,
				"Không tìm thấy hạng phòng", apperrors.ErrRoomTypeNotFound)
		}
		return nil, err
	}
	return &roomType, nil
}

func (e *BookingEngine) notifyBooking(booking *models.Booking, event string) {
	if e.notifier == nil || booking == nil {
		return
	}
	msg := notification.NewBookingMessageBuilder(booking, event).Build()
	if err := e.notifier.SendMessage(msg); err != nil {
		// Thông báo lỗi không làm hỏng booking đã ghi
		e.logger.Error("Gửi thông báo booking %d thất bại: %v", booking.ID, err)
	}
}

func loadPromotions(db *gorm.DB, roomTypeID uint, checkIn, checkOut time.Time) ([]models.Promotion, error) {
	var promos []models.Promotion
	err := db.
		Where("room_type_id = ? AND status = ?", roomTypeID, constants.PromotionStatusActive).
		Where("start_date < ? AND end_date >= ?", checkOut, checkIn).
		Find(&promos).Error
	return promos, err
}

// syncDetails đưa các dòng chi tiết về đúng danh sách phòng mới, ghi lại giá
// cả kỳ lưu trú cho từng phòng để tổng các dòng luôn khớp TotalPrice
func syncDetails(tx *gorm.DB, booking *models.Booking, roomTypeID uint, units []string, stayPrice int) error {
	desired := make(map[string]bool, len(units))
	for _, u := range units {
		desired[u] = true
	}

	kept := make([]models.BookingDetail, 0, len(units))
	for _, d := range booking.Details {
		if desired[d.Unit] && d.RoomTypeID == roomTypeID {
			d.StayPrice = stayPrice
			if err := tx.Save(&d).Error; err != nil {
				return err
			}
			kept = append(kept, d)
			delete(desired, d.Unit)
		} else {
			if err := tx.Delete(&models.BookingDetail{}, d.ID).Error; err != nil {
				return err
			}
		}
	}

	for _, u := range units {
		if !desired[u] {
			continue
		}
		d := models.BookingDetail{
			BookingID:  booking.ID,
			RoomTypeID: roomTypeID,
			Unit:       u,
			StayPrice:  stayPrice,
		}
		if err := tx.Create(&d).Error; err != nil {
			return err
		}
		kept = append(kept, d)
	}

	booking.Details = kept
	return nil
}

func patchedInput(booking *models.Booking, patch BookingPatch) BookingInput {
	input := BookingInput{
		RoomTypeID:   booking.RoomTypeID,
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		CheckInTime:  booking.CheckInTime,
		CheckOutTime: booking.CheckOutTime,
		Quantity:     booking.Quantity,
		NumGuests:    booking.NumGuests,
		GuestName:    booking.GuestName,
		GuestEmail:   booking.GuestEmail,
		GuestPhone:   booking.GuestPhone,
		Source:       booking.Source,
		UserID:       booking.UserID,
	}
	if patch.RoomTypeID != nil {
		input.RoomTypeID = *patch.RoomTypeID
	}
	if patch.CheckInDate != nil {
		input.CheckInDate = *patch.CheckInDate
	}
	if patch.CheckOutDate != nil {
		input.CheckOutDate = *patch.CheckOutDate
	}
	if patch.CheckInTime != nil {
		input.CheckInTime = *patch.CheckInTime
	}
	if patch.CheckOutTime != nil {
		input.CheckOutTime = *patch.CheckOutTime
	}
	if patch.Quantity != nil {
		input.Quantity = *patch.Quantity
	}
	if patch.RequestedUnit != nil {
		input.RequestedUnit = *patch.RequestedUnit
	}
	if patch.NumGuests != nil {
		input.NumGuests = *patch.NumGuests
	}
	if patch.GuestName != nil {
		input.GuestName = *patch.GuestName
	}
	if patch.GuestEmail != nil {
		input.GuestEmail = *patch.GuestEmail
	}
	if patch.GuestPhone != nil {
		input.GuestPhone = *patch.GuestPhone
	}
	input.normalize()
	return input
}

func needsReallocation(booking *models.Booking, patch BookingPatch) bool {
	if patch.RoomTypeID != nil && *patch.RoomTypeID != booking.RoomTypeID {
		return true
	}
	if patch.CheckInDate != nil && !patch.CheckInDate.Equal(booking.CheckInDate) {
		return true
	}
	if patch.CheckOutDate != nil && !patch.CheckOutDate.Equal(booking.CheckOutDate) {
		return true
	}
	if patch.Quantity != nil && *patch.Quantity != booking.Quantity {
		return true
	}
	if patch.RequestedUnit != nil && *patch.RequestedUnit != booking.Unit {
		return true
	}
	return false
}

// wrapAllocationError bọc lỗi của allocator vào AppError, giữ lỗi gốc để tầng
// gọi đọc được số phòng còn lại hoặc danh sách phòng thay thế
func wrapAllocationError(err error) error {
	var insufficient *apperrors.InsufficientInventoryError
	if errors.As(err, &insufficient) {
		return apperrors.NewAppError(apperrors.ErrCodeInsufficientInventory, insufficient.Error(), insufficient)
	}
	var unavailable *apperrors.UnitUnavailableError
	if errors.As(err, &unavailable) {
		return apperrors.NewAppError(apperrors.ErrCodeUnitUnavailable, unavailable.Error(), unavailable)
	}
	return err
}

// mapWriteError đổi lỗi trùng khoá khi ghi thành lỗi tranh chấp gán phòng để
// tầng gọi báo khách thử lại
func mapWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewAppError(apperrors.ErrCodeAllocationConflict,
			"Phòng vừa được khách khác đặt, vui lòng thử lại", apperrors.ErrAllocationConflict)
	}
	return err
}

func withoutUnit(units []string, unit string) []string {
	out := make([]string, 0, len(units))
	for _, u := range units {
		if u != unit {
			out = append(out, u)
		}
	}
	return out
}
