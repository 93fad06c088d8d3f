package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"

	"stayhub/constants"
	"stayhub/controllers"
	middlewares "stayhub/middleware"
	"stayhub/services"
	"stayhub/services/logger"
	"stayhub/services/notification"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) *services.BookingEngine {

	engine := services.NewBookingEngine(services.BookingEngineOptions{
		DB:       db,
		Logger:   logger.NewDefaultLogger(logger.InfoLevel),
		Notifier: notification.NewMelodyService(m),
	})

	bookingController := controllers.NewBookingController(db, redisCli, engine)
	paymentController := controllers.NewPaymentController(engine)
	assistantController := controllers.NewAssistantController(db, engine)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)

	v1.GET("/roomTypes", controllers.GetAllRoomTypes)
	v1.GET("/roomTypes/:id", controllers.GetRoomTypeDetail)
	v1.POST("/roomTypes", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleManager), controllers.CreateRoomType)
	v1.PUT("/roomTypes/:id", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleManager), controllers.UpdateRoomType)
	v1.PUT("/roomTypes/:id/status", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleManager), controllers.ChangeRoomTypeStatus)

	v1.GET("/availability", controllers.GetAvailability(engine))
	v1.GET("/checkUnit", controllers.CheckUnit(engine))
	v1.POST("/unavailableDates", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleManager, constants.RoleReceptionist), controllers.CreateUnavailableDates)
	v1.GET("/unavailableDates", controllers.GetUnavailableDates)
	v1.DELETE("/unavailableDates/:id", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleManager), controllers.DeleteUnavailableDate)

	v1.GET("/promotions", controllers.GetPromotions)
	v1.GET("/promotions/:id", controllers.GetPromotionDetail)
	v1.POST("/promotions", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleManager), controllers.CreatePromotion)
	v1.PUT("/promotions/:id", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleManager), controllers.UpdatePromotion)
	v1.PUT("/promotions/:id/status", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleManager), controllers.ChangePromotionStatus)
	v1.DELETE("/promotions/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeletePromotion)

	v1.POST("/quote", bookingController.GetQuote)
	v1.POST("/bookings", bookingController.CreateBooking)
	v1.GET("/bookings", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleManager, constants.RoleReceptionist), bookingController.GetBookings)
	v1.GET("/bookings/:id", bookingController.GetBookingDetail)
	v1.PUT("/bookings/:id", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleManager, constants.RoleReceptionist), bookingController.UpdateBooking)
	v1.PUT("/bookings/:id/status", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleManager, constants.RoleReceptionist), bookingController.ChangeBookingStatus)
	v1.PUT("/bookings/:id/cancel", bookingController.CancelBooking)
	v1.GET("/bookingHistory", bookingController.GetBookingsByGuest)

	v1.POST("/bookings/:id/pay", paymentController.InitPayment)
	v1.POST("/paymentCallback", paymentController.PaymentCallback)

	assistant := v1.Group("/assistant", middlewares.SessionMiddleware())
	assistant.POST("/resolveRoomType", assistantController.ResolveRoomType)
	assistant.POST("/bookings", assistantController.CreateBooking)

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "roomTypes"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})

	return engine
}
