package entity

import (
	"time"
)

const (
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// Activation is manual: a fresh account is pending, the seller reports
// the mobile-money transfer (submitted), then staff reconcile it and
// flip the account to verified.
const (
	ActivationPending   = "pending"
	ActivationSubmitted = "submitted"
	ActivationVerified  = "verified"
)

type Seller struct {
	ID          string    `json:"id" firestore:"id"`
	ShopName    string    `json:"shop_name" firestore:"shopName"`
	ContactName string    `json:"contact_name" firestore:"contactName"`
	Email       string    `json:"email" firestore:"email"`
	Phone       string    `json:"phone" firestore:"phone"`
	WhatsApp    string    `json:"whatsapp" firestore:"whatsapp"`
	City        string    `json:"city" firestore:"city"`
	BirthDate   time.Time `json:"birth_date,omitempty" firestore:"birthDate,omitempty"`
	Role        string    `json:"role" firestore:"role"`

	Plan             string `json:"plan" firestore:"plan"`
	ActivationStatus string `json:"activation_status" firestore:"activationStatus"`
	PaymentKey       string `json:"payment_key,omitempty" firestore:"paymentKey,omitempty"`
	PaymentPhone     string `json:"payment_phone,omitempty" firestore:"paymentPhone,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (s *Seller) Verified() bool {
	return s.ActivationStatus == ActivationVerified
}
