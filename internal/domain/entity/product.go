package entity

import (
	"time"
)

type ProductImage struct {
	ID           string `json:"id" firestore:"id"`
	URL          string `json:"url" firestore:"url"`
	DisplayOrder int    `json:"display_order" firestore:"displayOrder"`
}

// PendingBoost is a boost quote awaiting payment reconciliation. It is
// written when the seller picks an option and cleared when an admin
// confirms the payment and the boost goes live.
type PendingBoost struct {
	Option       string    `json:"option" firestore:"option"`
	Price        int64     `json:"price" firestore:"price"`
	BoostEnd     time.Time `json:"boost_end" firestore:"boostEnd"`
	PaymentKey   string    `json:"payment_key" firestore:"paymentKey"`
	PaymentPhone string    `json:"payment_phone,omitempty" firestore:"paymentPhone,omitempty"`
	Status       string    `json:"status" firestore:"status"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
}

const (
	BoostStatusQuoted    = "quoted"
	BoostStatusSubmitted = "submitted"
)

type Product struct {
	ID          string         `json:"id" firestore:"id"`
	SellerID    string         `json:"seller_id" firestore:"sellerId"`
	Name        string         `json:"name" firestore:"name"`
	Category    string         `json:"category" firestore:"category"`
	City        string         `json:"city" firestore:"city"`
	Price       int64          `json:"price" firestore:"price"`
	Description string         `json:"description" firestore:"description"`
	Images      []ProductImage `json:"images" firestore:"images"`
	Views       int            `json:"views" firestore:"views"`

	// BoostOption/BoostEnd describe the currently active boost, if any.
	// A product never stores a "boosted" flag; Boosted is derived from
	// BoostEnd so an elapsed window stops ranking without any sweep.
	BoostOption  string        `json:"boost_option,omitempty" firestore:"boostOption,omitempty"`
	BoostEnd     *time.Time    `json:"boost_end,omitempty" firestore:"boostEnd,omitempty"`
	PendingBoost *PendingBoost `json:"pending_boost,omitempty" firestore:"pendingBoost,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Boosted reports whether the product's boost window covers now.
func (p *Product) Boosted(now time.Time) bool {
	return p.BoostEnd != nil && p.BoostEnd.After(now)
}
