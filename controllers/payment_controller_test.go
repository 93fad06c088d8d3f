package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stayhub/constants"
)

func TestCallbackPaymentStatus(t *testing.T) {
	assert.Equal(t, constants.PaymentStatusPaid, callbackPaymentStatus("paid"))
	assert.Equal(t, constants.PaymentStatusExpired, callbackPaymentStatus("expired"))
	assert.Equal(t, constants.PaymentStatusFailed, callbackPaymentStatus("failed"))
}
