package models

import (
	"fmt"

	"stayhub/constants"
	apperrors "stayhub/errors"
)

// Các chuyển trạng thái hợp lệ của booking:
// pending -> confirmed -> checked_in -> checked_out
// cancelled và no_show chỉ đi từ pending hoặc confirmed.
var bookingTransitions = map[int][]int{
	constants.BookingStatusPending: {
		constants.BookingStatusConfirmed,
		constants.BookingStatusCancelled,
		constants.BookingStatusNoShow,
	},
	constants.BookingStatusConfirmed: {
		constants.BookingStatusCheckedIn,
		constants.BookingStatusCancelled,
		constants.BookingStatusNoShow,
	},
	constants.BookingStatusCheckedIn: {
		constants.BookingStatusCheckedOut,
	},
	// checked_out, cancelled, no_show là trạng thái cuối
	constants.BookingStatusCheckedOut: {},
	constants.BookingStatusCancelled:  {},
	constants.BookingStatusNoShow:     {},
}

var bookingStatusNames = map[int]string{
	constants.BookingStatusPending:    "pending",
	constants.BookingStatusConfirmed:  "confirmed",
	constants.BookingStatusCheckedIn:  "checked_in",
	constants.BookingStatusCheckedOut: "checked_out",
	constants.BookingStatusCancelled:  "cancelled",
	constants.BookingStatusNoShow:     "no_show",
}

// BookingStatusName trả về tên trạng thái, dùng cho log và thông báo
func BookingStatusName(status int) string {
	if name, ok := bookingStatusNames[status]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", status)
}

// ValidateStatusTransition kiểm tra chuyển trạng thái from -> to có hợp lệ không
func ValidateStatusTransition(from, to int) error {
	allowed, ok := bookingTransitions[from]
	if !ok {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidStatus,
			fmt.Sprintf("Trạng thái booking %d không hợp lệ", from), nil)
	}
	for _, s := range allowed {
		if s == to {
			return nil
		}
	}
	return apperrors.NewAppError(apperrors.ErrCodeInvalidStatus,
		fmt.Sprintf("Không thể chuyển booking từ %s sang %s",
			BookingStatusName(from), BookingStatusName(to)), nil)
}

// HoldingStatuses là các trạng thái còn giữ phòng; cancelled và no_show
// không còn tính vào phòng trống.
func HoldingStatuses() []int {
	return []int{
		constants.BookingStatusPending,
		constants.BookingStatusConfirmed,
		constants.BookingStatusCheckedIn,
		constants.BookingStatusCheckedOut,
	}
}

// ReleasedStatuses là các trạng thái đã trả phòng về quỹ phòng trống
func ReleasedStatuses() []int {
	return []int{
		constants.BookingStatusCancelled,
		constants.BookingStatusNoShow,
	}
}
