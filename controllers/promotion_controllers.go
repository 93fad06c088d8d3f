package controllers

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/validator"
)

func GetPromotions(c *gin.Context) {
	page := 0
	limit := 10
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed >= 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	tx := config.DB.Model(&models.Promotion{})
	if nameFilter := c.Query("name"); nameFilter != "" {
		decodedName, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("name ILIKE ?", "%"+decodedName+"%")
	}
	if statusFilter := c.Query("status"); statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}
	if roomTypeFilter := c.Query("roomTypeId"); roomTypeFilter != "" {
		tx = tx.Where("room_type_id = ?", roomTypeFilter)
	}
	if activeOnStr := c.Query("activeOn"); activeOnStr != "" {
		activeOn, err := parseDate(activeOnStr)
		if err != nil {
			response.BadRequest(c, "Sai định dạng activeOn")
			return
		}
		tx = tx.Where("start_date <= ? AND end_date >= ?", activeOn, activeOn)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var promotions []models.Promotion
	if err := tx.Order("priority desc, updated_at desc").
		Offset(page * limit).Limit(limit).Find(&promotions).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.PromotionResponse, 0, len(promotions))
	for i := range promotions {
		responses = append(responses, toPromotionResponse(&promotions[i]))
	}
	response.SuccessWithPagination(c, responses, page, limit, int(total))
}

func GetPromotionDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var promotion models.Promotion
	if err := config.DB.First(&promotion, id).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, toPromotionResponse(&promotion))
}

func CreatePromotion(c *gin.Context) {
	var req dto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	promotion, err := promotionFromRequest(req)
	if err != nil {
		response.BadRequest(c, "Ngày không hợp lệ, vui lòng sử dụng định dạng dd/mm/yyyy")
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, req.RoomTypeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := validator.ValidatePromotion(promotion); err != nil {
		response.FromAppError(c, err)
		return
	}

	if err := config.DB.Create(promotion).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAvailabilityCache()
	response.Success(c, toPromotionResponse(promotion))
}

func UpdatePromotion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var existing models.Promotion
	if err := config.DB.First(&existing, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	updated, err := promotionFromRequest(req)
	if err != nil {
		response.BadRequest(c, "Ngày không hợp lệ, vui lòng sử dụng định dạng dd/mm/yyyy")
		return
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := validator.ValidatePromotion(updated); err != nil {
		response.FromAppError(c, err)
		return
	}

	if err := config.DB.Save(updated).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAvailabilityCache()
	response.Success(c, toPromotionResponse(updated))
}

func ChangePromotionStatus(c *gin.Context) {
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

	var promotion models.Promotion
	if err := config.DB.First(&promotion, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	promotion.Status = req.Status
	if err := promotion.ValidateStatus(); err != nil {
		response.FromAppError(c, err)
		return
	}

	if err := config.DB.Model(&promotion).Update("status", req.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAvailabilityCache()
	response.Success(c, toPromotionResponse(&promotion))
}

func DeletePromotion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := config.DB.Delete(&models.Promotion{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAvailabilityCache()
	response.Success(c, nil)
}

func promotionFromRequest(req dto.CreatePromotionRequest) (*models.Promotion, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	return &models.Promotion{
		RoomTypeID:      req.RoomTypeID,
		Name:            req.Name,
		PromoPrice:      req.PromoPrice,
		DiscountPercent: req.DiscountPercent,
		StartDate:       startDate,
		EndDate:         endDate,
		Priority:        req.Priority,
		MinNights:       req.MinNights,
		Status:          req.Status,
	}, nil
}

func toPromotionResponse(p *models.Promotion) dto.PromotionResponse {
	return dto.PromotionResponse{
		ID:              p.ID,
		RoomTypeID:      p.RoomTypeID,
		Name:            p.Name,
		PromoPrice:      p.PromoPrice,
		DiscountPercent: p.DiscountPercent,
		StartDate:       p.StartDate.Format(layout),
		EndDate:         p.EndDate.Format(layout),
		Priority:        p.Priority,
		MinNights:       p.MinNights,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
