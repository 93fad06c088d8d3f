package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"
)

var bookingCacheKey = "bookings:all"

type BookingController struct {
	db     *gorm.DB
	redis  *redis.Client
	engine *services.BookingEngine
}

func NewBookingController(db *gorm.DB, redisCli *redis.Client, engine *services.BookingEngine) *BookingController {
	return &BookingController{db: db, redis: redisCli, engine: engine}
}

// bookingInputFromRequest chuyển DTO sang input của engine, ngày parse tại biên
func bookingInputFromRequest(req dto.CreateBookingRequest) (services.BookingInput, error) {
	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		return services.BookingInput{}, fmt.Errorf("checkInDate: %w", err)
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		return services.BookingInput{}, fmt.Errorf("checkOutDate: %w", err)
	}
	return services.BookingInput{
		RoomTypeID:    req.RoomTypeID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		CheckInTime:   req.CheckInTime,
		CheckOutTime:  req.CheckOutTime,
		Quantity:      req.Quantity,
		RequestedUnit: req.RequestedUnit,
		NumGuests:     req.NumGuests,
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		GuestPhone:    req.GuestPhone,
		Source:        req.Source,
	}, nil
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	input, err := bookingInputFromRequest(req)
	if err != nil {
		response.BadRequest(c, "Ngày không hợp lệ, vui lòng sử dụng định dạng dd/mm/yyyy")
		return
	}

	if err := validator.ValidateBookingDates(input.CheckInDate, input.CheckOutDate, input.CheckInTime, input.CheckOutTime); err != nil {
		response.FromAppError(c, err)
		return
	}
	if err := validator.ValidateGuestInfo(input.GuestName, input.GuestEmail, input.GuestPhone); err != nil {
		response.FromAppError(c, err)
		return
	}

	if userID, exists := c.Get("userID"); exists {
		if id, ok := userID.(uint); ok {
			input.UserID = &id
		}
	}

	booking, err := ctrl.engine.CreateBooking(input)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	ctrl.invalidateCache()

	resp := toBookingResponse(booking)
	response.Success(c, resp)
}

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	page := 0
	limit := 10
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed >= 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	statusFilter := c.Query("status")
	roomTypeFilter := c.Query("roomTypeId")
	phoneFilter := c.Query("guestPhone")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

	var bookings []models.Booking

	// Danh sách đầy đủ không filter cache được, filter lọc trên bản cache
	cached := statusFilter == "" && roomTypeFilter == "" && phoneFilter == "" &&
		fromDateStr == "" && toDateStr == ""
	if cached {
		if err := services.GetFromRedis(config.Ctx, ctrl.redis, bookingCacheKey, &bookings); err == nil && len(bookings) > 0 {
			paginateBookings(c, bookings, page, limit)
			return
		}
	}

	tx := ctrl.db.Model(&models.Booking{}).Preload("RoomType").Preload("Details")
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}
	if roomTypeFilter != "" {
		tx = tx.Where("room_type_id = ?", roomTypeFilter)
	}
	if phoneFilter != "" {
		tx = tx.Where("guest_phone = ?", phoneFilter)
	}
	if fromDateStr != "" {
		fromDate, err := parseDate(fromDateStr)
		if err != nil {
			response.BadRequest(c, "Sai định dạng fromDate")
			return
		}
		tx = tx.Where("check_out_date > ?", fromDate)
	}
	if toDateStr != "" {
		toDate, err := parseDate(toDateStr)
		if err != nil {
			response.BadRequest(c, "Sai định dạng toDate")
			return
		}
		tx = tx.Where("check_in_date < ?", toDate)
	}

	if err := tx.Order("created_at desc").Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	if cached {
		if err := services.SetToRedis(config.Ctx, ctrl.redis, bookingCacheKey, bookings, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu bookings vào Redis: %v", err)
		}
	}

	paginateBookings(c, bookings, page, limit)
}

func paginateBookings(c *gin.Context, bookings []models.Booking, page, limit int) {
	total := len(bookings)
	start := page * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	responses := make([]dto.BookingResponse, 0, end-start)
	for i := start; i < end; i++ {
		responses = append(responses, toBookingResponse(&bookings[i]))
	}

	response.SuccessWithPagination(c, responses, page, limit, total)
}

func (ctrl *BookingController) GetBookingDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var booking models.Booking
	if err := ctrl.db.Preload("RoomType").Preload("Details").First(&booking, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toBookingResponse(&booking))
}

// GetBookingsByGuest trả về lịch sử đặt phòng theo số điện thoại khách
func (ctrl *BookingController) GetBookingsByGuest(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		response.BadRequest(c, "phone là bắt buộc")
		return
	}

	var bookings []models.Booking
	if err := ctrl.db.Preload("RoomType").Preload("Details").
		Where("guest_phone = ?", phone).
		Order("check_in_date desc").Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, toBookingResponse(&bookings[i]))
	}
	response.SuccessWithTotal(c, responses, len(responses))
}

func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	patch, err := bookingPatchFromRequest(req)
	if err != nil {
		response.BadRequest(c, "Ngày không hợp lệ, vui lòng sử dụng định dạng dd/mm/yyyy")
		return
	}

	booking, err := ctrl.engine.UpdateBooking(uint(id), patch)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	ctrl.invalidateCache()
	response.Success(c, toBookingResponse(booking))
}

func bookingPatchFromRequest(req dto.UpdateBookingRequest) (services.BookingPatch, error) {
	patch := services.BookingPatch{
		CheckInTime:   req.CheckInTime,
		CheckOutTime:  req.CheckOutTime,
		Quantity:      req.Quantity,
		RequestedUnit: req.RequestedUnit,
		NumGuests:     req.NumGuests,
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		GuestPhone:    req.GuestPhone,
	}
	if req.CheckInDate != nil {
		checkIn, err := parseDate(*req.CheckInDate)
		if err != nil {
			return patch, err
		}
		patch.CheckInDate = &checkIn
	}
	if req.CheckOutDate != nil {
		checkOut, err := parseDate(*req.CheckOutDate)
		if err != nil {
			return patch, err
		}
		patch.CheckOutDate = &checkOut
	}
	return patch, nil
}

func (ctrl *BookingController) ChangeBookingStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctrl.engine.ChangeBookingStatus(uint(id), req.Status)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	ctrl.invalidateCache()
	response.Success(c, toBookingResponse(booking))
}

// CancelBooking là đường tắt chuyển trạng thái sang huỷ
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	booking, err := ctrl.engine.ChangeBookingStatus(uint(id), constants.BookingStatusCancelled)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	ctrl.invalidateCache()
	response.Success(c, toBookingResponse(booking))
}

// GetQuote báo giá cho một kỳ lưu trú, không giữ chỗ
func (ctrl *BookingController) GetQuote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		response.BadRequest(c, "Sai định dạng checkInDate")
		return
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "Sai định dạng checkOutDate")
		return
	}

	quote, err := ctrl.engine.QuoteStay(req.RoomTypeID, checkIn, checkOut, req.Quantity)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, dto.QuoteResponse{
		RoomTypeID:     req.RoomTypeID,
		Nights:         quote.Nights,
		Quantity:       quote.Quantity,
		TotalPrice:     quote.Total,
		OriginalPrice:  quote.OriginalTotal,
		Savings:        quote.Savings,
		PromoNights:    quote.PromoNights,
		PerUnitTotal:   quote.PerUnitTotal,
		PerUnitNightly: quote.PerUnitNightly,
	})
}

func (ctrl *BookingController) invalidateCache() {
	if ctrl.redis == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, ctrl.redis, bookingCacheKey); err != nil {
		log.Printf("Lỗi khi xoá cache bookings: %v", err)
	}
	if err := services.DeleteKeysByPattern(config.Ctx, ctrl.redis, "availability:*"); err != nil {
		log.Printf("Lỗi khi xoá cache availability: %v", err)
	}
}
