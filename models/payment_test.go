package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayment_PublicDropsInternalFields(t *testing.T) {
	appID := "stripe"
	p := Payment{
		ID:            1,
		UID:           "uid-1",
		AppID:         &appID,
		BookingID:     2,
		Amount:        100,
		Fee:           3,
		Currency:      "usd",
		Success:       true,
		Data:          []byte(`{"secret":true}`),
		ExternalID:    "pi_123",
		PaymentOption: PaymentHold,
	}

	assert.Equal(t, PaymentPublic{
		ID:            1,
		Amount:        100,
		Success:       true,
		Fee:           3,
		PaymentOption: PaymentHold,
		Currency:      "usd",
		BookingID:     2,
	}, p.Public())
}
