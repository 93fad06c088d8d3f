package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/response"
	"stayhub/services"
)

type PaymentController struct {
	engine *services.BookingEngine
}

func NewPaymentController(engine *services.BookingEngine) *PaymentController {
	return &PaymentController{engine: engine}
}

// InitPayment gán mã thanh toán cho booking và trả về link QR chuyển khoản
func (ctrl *PaymentController) InitPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	booking, err := ctrl.engine.GetBooking(uint(id))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	paymentRef := uuid.NewString()
	if err := ctrl.engine.SetPaymentRef(booking.ID, paymentRef); err != nil {
		response.FromAppError(c, err)
		return
	}

	qrCodeURL := fmt.Sprintf(
		"https://img.vietqr.io/image/SACOMBANK-060915374450-compact.jpg?amount=%d&addInfo=%s",
		booking.TotalPrice, paymentRef,
	)

	response.Success(c, gin.H{
		"bookingId":  booking.ID,
		"paymentRef": paymentRef,
		"amount":     booking.TotalPrice,
		"qrCodeUrl":  qrCodeURL,
	})
}

// PaymentCallback là webhook từ cổng thanh toán, đối chiếu theo paymentRef
func (ctrl *PaymentController) PaymentCallback(c *gin.Context) {
	var req dto.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctrl.engine.HandlePaymentCallback(req.PaymentRef, callbackPaymentStatus(req.Status), float64(req.Amount))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, toBookingResponse(booking))
}

// callbackPaymentStatus đổi trạng thái chữ của cổng thanh toán sang mã nội bộ
func callbackPaymentStatus(status string) int {
	switch status {
	case "paid":
		return constants.PaymentStatusPaid
	case "expired":
		return constants.PaymentStatusExpired
	default:
		return constants.PaymentStatusFailed
	}
}
