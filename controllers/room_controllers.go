package controllers

import (
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"
)

var roomTypeCacheKey = "roomTypes:all"

func GetAllRoomTypes(c *gin.Context) {
	page := 0
	limit := 10
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed >= 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}
	nameFilter := c.Query("name")
	statusFilter := c.Query("status")

	var roomTypes []models.RoomType

	rdb, err := config.ConnectRedis()
	if err == nil && nameFilter == "" && statusFilter == "" {
		if err := services.GetFromRedis(config.Ctx, rdb, roomTypeCacheKey, &roomTypes); err == nil && len(roomTypes) > 0 {
			paginateRoomTypes(c, roomTypes, page, limit)
			return
		}
	}

	tx := config.DB.Model(&models.RoomType{})
	if nameFilter != "" {
		decodedName, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("name ILIKE ?", "%"+decodedName+"%")
	}
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}

	if err := tx.Order("updated_at desc").Find(&roomTypes).Error; err != nil {
		response.ServerError(c)
		return
	}

	if rdb != nil && nameFilter == "" && statusFilter == "" {
		if err := services.SetToRedis(config.Ctx, rdb, roomTypeCacheKey, roomTypes, 60*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu roomTypes vào Redis: %v", err)
		}
	}

	paginateRoomTypes(c, roomTypes, page, limit)
}

func paginateRoomTypes(c *gin.Context, roomTypes []models.RoomType, page, limit int) {
	total := len(roomTypes)
	start := page * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	responses := make([]dto.RoomTypeResponse, 0, end-start)
	for i := start; i < end; i++ {
		responses = append(responses, toRoomTypeResponse(&roomTypes[i]))
	}
	response.SuccessWithPagination(c, responses, page, limit, total)
}

func GetRoomTypeDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var roomType models.RoomType
	if err := config.DB.Preload("Promotions").First(&roomType, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toRoomTypeResponse(&roomType))
}

func CreateRoomType(c *gin.Context) {
	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	roomType := models.RoomType{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		MaxGuests:      req.MaxGuests,
		Units:          req.Units,
		SundayPrice:    req.SundayPrice,
		MondayPrice:    req.MondayPrice,
		TuesdayPrice:   req.TuesdayPrice,
		WednesdayPrice: req.WednesdayPrice,
		ThursdayPrice:  req.ThursdayPrice,
		FridayPrice:    req.FridayPrice,
		SaturdayPrice:  req.SaturdayPrice,
		Avatar:         req.Avatar,
		Img:            req.Img,
		Status:         req.Status,
	}
	roomType.Allotment = len(roomType.UnitList())

	if err := validator.ValidateRoomType(&roomType); err != nil {
		response.FromAppError(c, err)
		return
	}

	if err := config.DB.Create(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomTypeCache()
	response.Success(c, toRoomTypeResponse(&roomType))
}

func UpdateRoomType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	roomType.Name = req.Name
	roomType.Description = req.Description
	roomType.Price = req.Price
	roomType.MaxGuests = req.MaxGuests
	roomType.Units = req.Units
	roomType.SundayPrice = req.SundayPrice
	roomType.MondayPrice = req.MondayPrice
	roomType.TuesdayPrice = req.TuesdayPrice
	roomType.WednesdayPrice = req.WednesdayPrice
	roomType.ThursdayPrice = req.ThursdayPrice
	roomType.FridayPrice = req.FridayPrice
	roomType.SaturdayPrice = req.SaturdayPrice
	roomType.Avatar = req.Avatar
	roomType.Img = req.Img
	roomType.Status = req.Status
	roomType.Allotment = len(roomType.UnitList())

	if err := validator.ValidateRoomType(&roomType); err != nil {
		response.FromAppError(c, err)
		return
	}

	if err := config.DB.Save(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomTypeCache()
	response.Success(c, toRoomTypeResponse(&roomType))
}

func ChangeRoomTypeStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req struct {
		Status int `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	roomType.Status = req.Status
	if err := roomType.ValidateStatus(); err != nil {
		response.FromAppError(c, err)
		return
	}

	if err := config.DB.Model(&roomType).Update("status", req.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomTypeCache()
	response.Success(c, toRoomTypeResponse(&roomType))
}

// GetAvailability trả về số phòng trống và danh sách phòng cho một khoảng ngày
func GetAvailability(engine *services.BookingEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomTypeID, err := strconv.Atoi(c.Query("roomTypeId"))
		if err != nil || roomTypeID <= 0 {
			response.BadRequest(c, "roomTypeId là bắt buộc")
			return
		}
		fromDate, err := parseDate(c.Query("fromDate"))
		if err != nil {
			response.BadRequest(c, "Sai định dạng fromDate")
			return
		}
		toDate, err := parseDate(c.Query("toDate"))
		if err != nil {
			response.BadRequest(c, "Sai định dạng toDate")
			return
		}
		if !toDate.After(fromDate) {
			response.BadRequest(c, "toDate phải sau fromDate")
			return
		}

		cacheKey := fmt.Sprintf("availability:%d:%s:%s", roomTypeID,
			fromDate.Format("20060102"), toDate.Format("20060102"))

		var resp dto.AvailabilityResponse
		rdb, rdbErr := config.ConnectRedis()
		if rdbErr == nil {
			if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &resp); err == nil && resp.RoomTypeID != 0 {
				response.Success(c, resp)
				return
			}
		}

		units, err := engine.AvailableUnits(uint(roomTypeID), fromDate, toDate, 0)
		if err != nil {
			response.FromAppError(c, err)
			return
		}

		resp = dto.AvailabilityResponse{
			RoomTypeID:   uint(roomTypeID),
			CheckInDate:  fromDate.Format(layout),
			CheckOutDate: toDate.Format(layout),
			Available:    len(units),
			Units:        units,
		}

		if rdbErr == nil {
			if err := services.SetToRedis(config.Ctx, rdb, cacheKey, resp, 5*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu availability vào Redis: %v", err)
			}
		}

		response.Success(c, resp)
	}
}

// CheckUnit kiểm tra một phòng cụ thể có nhận được khoảng ngày yêu cầu không
func CheckUnit(engine *services.BookingEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomTypeID, err := strconv.Atoi(c.Query("roomTypeId"))
		if err != nil || roomTypeID <= 0 {
			response.BadRequest(c, "roomTypeId là bắt buộc")
			return
		}
		unit := c.Query("unit")
		if unit == "" {
			response.BadRequest(c, "unit là bắt buộc")
			return
		}
		checkIn, err := parseDate(c.Query("fromDate"))
		if err != nil {
			response.BadRequest(c, "Sai định dạng fromDate")
			return
		}
		checkOut, err := parseDate(c.Query("toDate"))
		if err != nil {
			response.BadRequest(c, "Sai định dạng toDate")
			return
		}

		conflict, err := engine.CheckUnit(uint(roomTypeID), unit, checkIn, checkOut,
			c.Query("checkInTime"), c.Query("checkOutTime"), 0)
		if err != nil {
			response.FromAppError(c, err)
			return
		}

		resp := dto.UnitCheckResponse{
			Unit:      unit,
			Available: !conflict.Conflict,
			Reason:    conflict.Reason,
		}
		if conflict.Conflict {
			if units, err := engine.AvailableUnits(uint(roomTypeID), checkIn, checkOut, 0); err == nil {
				resp.Alternatives = units
			}
		}
		response.Success(c, resp)
	}
}

// CreateUnavailableDates chặn một phòng (hoặc cả hạng phòng) trong một khoảng ngày
func CreateUnavailableDates(c *gin.Context) {
	var req dto.CreateUnavailableDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	fromDate, err := parseDate(req.FromDate)
	if err != nil {
		response.BadRequest(c, "Sai định dạng fromDate")
		return
	}
	toDate, err := parseDate(req.ToDate)
	if err != nil {
		response.BadRequest(c, "Sai định dạng toDate")
		return
	}
	if toDate.Before(fromDate) {
		response.BadRequest(c, "toDate phải từ fromDate trở đi")
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, req.RoomTypeID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if req.Unit != nil && !roomType.HasUnit(*req.Unit) {
		response.BadRequest(c, "Phòng không thuộc hạng phòng này")
		return
	}

	// Một bản ghi cho mỗi đêm bị chặn, cả hai đầu đều tính
	var records []models.UnavailableDate
	for day := fromDate; !day.After(toDate); day = day.AddDate(0, 0, 1) {
		record := models.UnavailableDate{
			RoomTypeID: req.RoomTypeID,
			Unit:       req.Unit,
			Date:       day,
			Reason:     req.Reason,
		}
		if err := validator.ValidateUnavailableDate(&record); err != nil {
			response.FromAppError(c, err)
			return
		}
		records = append(records, record)
	}

	if err := config.DB.Create(&records).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAvailabilityCache()
	responses := make([]dto.UnavailableDateResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toUnavailableDateResponse(&r))
	}
	response.SuccessWithTotal(c, responses, len(responses))
}

func GetUnavailableDates(c *gin.Context) {
	roomTypeID, err := strconv.Atoi(c.Query("roomTypeId"))
	if err != nil || roomTypeID <= 0 {
		response.BadRequest(c, "roomTypeId là bắt buộc")
		return
	}

	tx := config.DB.Where("room_type_id = ?", roomTypeID)
	if fromDateStr := c.Query("fromDate"); fromDateStr != "" {
		fromDate, err := parseDate(fromDateStr)
		if err != nil {
			response.BadRequest(c, "Sai định dạng fromDate")
			return
		}
		tx = tx.Where("date >= ?", fromDate)
	}

	var records []models.UnavailableDate
	if err := tx.Order("date asc").Find(&records).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.UnavailableDateResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toUnavailableDateResponse(&records[i]))
	}
	response.SuccessWithTotal(c, responses, len(responses))
}

func DeleteUnavailableDate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := config.DB.Delete(&models.UnavailableDate{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAvailabilityCache()
	response.Success(c, nil)
}

func toUnavailableDateResponse(r *models.UnavailableDate) dto.UnavailableDateResponse {
	return dto.UnavailableDateResponse{
		ID:         r.ID,
		RoomTypeID: r.RoomTypeID,
		Unit:       r.Unit,
		Date:       r.Date.Format(layout),
		Reason:     r.Reason,
	}
}

func invalidateRoomTypeCache() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, roomTypeCacheKey)
	invalidateAvailabilityCache()
}

func invalidateAvailabilityCache() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	if err := services.DeleteKeysByPattern(config.Ctx, rdb, "availability:*"); err != nil {
		log.Printf("Lỗi khi xoá cache availability: %v", err)
	}
}
