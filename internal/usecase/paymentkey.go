package usecase

import (
	"math/rand"
)

const paymentKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// PaymentKeyLength is the size of the reference a payer quotes when
// making a mobile-money transfer.
const PaymentKeyLength = 8

// GeneratePaymentKey draws a human-readable reconciliation reference.
// Keys are not checked for uniqueness; staff match them against
// transfer statements by hand, and a collision is resolved there.
func GeneratePaymentKey() string {
	key := make([]byte, PaymentKeyLength)
	for i := range key {
		key[i] = paymentKeyAlphabet[rand.Intn(len(paymentKeyAlphabet))]
	}
	return string(key)
}
