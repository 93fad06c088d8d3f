package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"stayhub/constants"
	"stayhub/models"
)

// dryRunDB dựng phiên gorm chỉ sinh SQL, không cần kết nối database
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("mở phiên dry-run thất bại: %v", err)
	}
	return db
}

func TestTakenUnitsQueryExcludesEditedBooking(t *testing.T) {
	var units []string
	tx := takenUnitsQuery(dryRunDB(t), 1, d(2025, time.June, 1), d(2025, time.June, 3), 7).
		Pluck("booking_details.unit", &units)
	assert.NoError(t, tx.Error)

	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, "bookings.id <> ?")
	assert.Contains(t, tx.Statement.Vars, uint(7))
}

func TestTakenUnitsQuerySkipsReleasedBookings(t *testing.T) {
	var units []string
	tx := takenUnitsQuery(dryRunDB(t), 1, d(2025, time.June, 1), d(2025, time.June, 3), 0).
		Pluck("booking_details.unit", &units)
	assert.NoError(t, tx.Error)

	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, "bookings.status NOT IN")
	assert.Contains(t, tx.Statement.Vars, constants.BookingStatusCancelled)
	assert.Contains(t, tx.Statement.Vars, constants.BookingStatusNoShow)
}

func TestTakenUnitsQueryHalfOpenOverlap(t *testing.T) {
	checkIn := d(2025, time.June, 1)
	checkOut := d(2025, time.June, 3)
	var units []string
	tx := takenUnitsQuery(dryRunDB(t), 1, checkIn, checkOut, 0).
		Pluck("booking_details.unit", &units)
	assert.NoError(t, tx.Error)

	// Khoảng nửa mở: booking trả phòng đúng ngày nhận phòng không bị tính trùng
	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, "bookings.check_in_date < ? AND bookings.check_out_date > ?")
	assert.Contains(t, tx.Statement.Vars, checkOut)
	assert.Contains(t, tx.Statement.Vars, checkIn)
}

func TestLegacyUnitsQueryHidesRecordedUnit(t *testing.T) {
	var units []string
	tx := legacyUnitsQuery(dryRunDB(t), 1, d(2025, time.June, 1), d(2025, time.June, 3), 9).
		Pluck("unit", &units)
	assert.NoError(t, tx.Error)

	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, "unit <> ''")
	assert.Contains(t, sql, "status NOT IN")
	assert.Contains(t, sql, "id <> ?")
	assert.Contains(t, tx.Statement.Vars, uint(9))
	assert.Contains(t, tx.Statement.Vars, constants.BookingStatusCancelled)
	assert.Contains(t, tx.Statement.Vars, constants.BookingStatusNoShow)
}

func TestBlockedDatesQueryCoversStayNights(t *testing.T) {
	checkIn := d(2025, time.June, 1)
	checkOut := d(2025, time.June, 3)
	var blocks []models.UnavailableDate
	tx := blockedDatesQuery(dryRunDB(t), 1, checkIn, checkOut).Find(&blocks)
	assert.NoError(t, tx.Error)

	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, "date >= ? AND date < ?")
	assert.Contains(t, tx.Statement.Vars, checkIn)
	assert.Contains(t, tx.Statement.Vars, checkOut)
}
