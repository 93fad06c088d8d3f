package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// NoShowSweeper định nghĩa interface cho việc quét booking quá hạn nhận phòng
type NoShowSweeper interface {
	SweepNoShows() (int, error)
}

// PromotionExpirer định nghĩa interface cho việc tắt khuyến mãi đã hết hạn
type PromotionExpirer interface {
	ExpirePromotions(before time.Time) (int, error)
}

var (
	noShowSweeper    NoShowSweeper
	promotionExpirer PromotionExpirer
)

// SetNoShowSweeper thiết lập implementation cho NoShowSweeper
func SetNoShowSweeper(sweeper NoShowSweeper) {
	noShowSweeper = sweeper
}

// SetPromotionExpirer thiết lập implementation cho PromotionExpirer
func SetPromotionExpirer(expirer PromotionExpirer) {
	promotionExpirer = expirer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Quét no-show lúc 0h05 mỗi ngày, sau khi đã qua ngày nhận phòng
	_, err := c.AddFunc("5 0 * * *", func() {
		if noShowSweeper == nil {
			log.Printf("Lỗi: NoShowSweeper chưa được thiết lập")
			return
		}
		count, err := noShowSweeper.SweepNoShows()
		if err != nil {
			log.Printf("Lỗi khi quét booking no-show: %v", err)
			return
		}
		log.Printf("Đã chuyển %d booking quá hạn sang no-show", count)
		if count > 0 && m != nil {
			message := fmt.Sprintf("Hệ thống vừa chuyển %d booking quá hạn nhận phòng sang no-show", count)
			if err := m.Broadcast([]byte(message)); err != nil {
				log.Printf("Lỗi khi broadcast thông báo no-show: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	// Tắt khuyến mãi đã qua ngày kết thúc lúc 0h15 mỗi ngày
	_, err = c.AddFunc("15 0 * * *", func() {
		if promotionExpirer == nil {
			log.Printf("Lỗi: PromotionExpirer chưa được thiết lập")
			return
		}
		count, err := promotionExpirer.ExpirePromotions(time.Now())
		if err != nil {
			log.Printf("Lỗi khi tắt khuyến mãi hết hạn: %v", err)
			return
		}
		if count > 0 {
			log.Printf("Đã tắt %d khuyến mãi hết hạn", count)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
