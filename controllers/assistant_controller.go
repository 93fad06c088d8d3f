package controllers

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"
)

// AssistantController nhận yêu cầu đặt phòng với tên hạng phòng dạng tự do
// (từ kênh chat), dò tên mờ rồi chuyển cho engine
type AssistantController struct {
	db     *gorm.DB
	engine *services.BookingEngine
}

func NewAssistantController(db *gorm.DB, engine *services.BookingEngine) *AssistantController {
	return &AssistantController{db: db, engine: engine}
}

// ResolveRoomType dò tên hạng phòng dạng tự do, trả về gợi ý nếu không chắc
func (ctrl *AssistantController) ResolveRoomType(c *gin.Context) {
	var req struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "query không hợp lệ")
		return
	}

	matcher, err := services.NewRoomTypeMatcher(ctrl.db)
	if err != nil {
		response.ServerError(c)
		return
	}

	roomType, err := matcher.Resolve(req.Query)
	if err != nil {
		suggestion := matcher.Suggest(req.Query)
		mess := "Không tìm thấy hạng phòng phù hợp"
		if suggestion != "" {
			mess = fmt.Sprintf("Không tìm thấy hạng phòng phù hợp, có phải bạn muốn tìm %q?", suggestion)
		}
		response.BadRequest(c, mess)
		return
	}

	response.Success(c, toRoomTypeSummary(roomType))
}

// CreateBooking đặt phòng qua trợ lý: resolve tên trước, rồi đi cùng một đường
// với booking thường
func (ctrl *AssistantController) CreateBooking(c *gin.Context) {
	var req dto.AssistantBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	matcher, err := services.NewRoomTypeMatcher(ctrl.db)
	if err != nil {
		response.ServerError(c)
		return
	}

	roomType, err := matcher.Resolve(req.RoomTypeName)
	if err != nil {
		if stderrors.Is(err, errors.ErrRoomTypeNotFound) {
			suggestion := matcher.Suggest(req.RoomTypeName)
			if suggestion != "" {
				response.BadRequest(c, fmt.Sprintf("Không tìm thấy hạng phòng %q, có phải bạn muốn tìm %q?", req.RoomTypeName, suggestion))
				return
			}
		}
		response.FromAppError(c, err)
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

	if err := validator.ValidateBookingDates(checkIn, checkOut, "", ""); err != nil {
		response.FromAppError(c, err)
		return
	}
	if err := validator.ValidateGuestInfo(req.GuestName, req.GuestEmail, req.GuestPhone); err != nil {
		response.FromAppError(c, err)
		return
	}

	booking, err := ctrl.engine.CreateBooking(assistantBookingInput(&req, roomType.ID, checkIn, checkOut))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	if sessionId, exists := c.Get("sessionId"); exists {
		saveAssistantExchange(ctrl.db, sessionId.(string), req.RoomTypeName, booking)
	}

	response.Success(c, toBookingResponse(booking))
}

// assistantBookingInput chuyển yêu cầu qua trợ lý thành input chuẩn của engine,
// giữ nguyên số lượng phòng và phòng chỉ định nếu khách có nêu
func assistantBookingInput(req *dto.AssistantBookingRequest, roomTypeID uint, checkIn, checkOut time.Time) services.BookingInput {
	return services.BookingInput{
		RoomTypeID:    roomTypeID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Quantity:      req.Quantity,
		RequestedUnit: req.RequestedUnit,
		NumGuests:     req.NumGuests,
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		GuestPhone:    req.GuestPhone,
		Source:        constants.BookingSourceAssistant,
	}
}

// saveAssistantExchange lưu lại lượt trao đổi để đối soát hội thoại sau này
func saveAssistantExchange(db *gorm.DB, sessionId, query string, booking *models.Booking) {
	record := models.AssistantExchange{
		SessionID: sessionId,
		Query:     query,
		BookingID: booking.ID,
	}
	_ = db.Create(&record).Error
}
