package entity

import (
	"time"
)

// Request is a product submission awaiting moderation. It carries the
// product shape minus boost fields, plus submitter contact details for
// public submissions that are not tied to a seller account.
type Request struct {
	ID          string         `json:"id" firestore:"id"`
	SellerID    string         `json:"seller_id,omitempty" firestore:"sellerId,omitempty"`
	Name        string         `json:"name" firestore:"name"`
	Category    string         `json:"category" firestore:"category"`
	City        string         `json:"city" firestore:"city"`
	Price       int64          `json:"price" firestore:"price"`
	Description string         `json:"description" firestore:"description"`
	Images      []ProductImage `json:"images" firestore:"images"`

	SubmitterName     string `json:"submitter_name,omitempty" firestore:"submitterName,omitempty"`
	SubmitterPhone    string `json:"submitter_phone,omitempty" firestore:"submitterPhone,omitempty"`
	SubmitterWhatsApp string `json:"submitter_whatsapp,omitempty" firestore:"submitterWhatsapp,omitempty"`
	PaymentKey        string `json:"payment_key,omitempty" firestore:"paymentKey,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// ToProduct maps an approved request onto a product row. The product
// keeps the request's ID so a retried approval lands on the same
// document instead of duplicating it.
func (r *Request) ToProduct(now time.Time) *Product {
	return &Product{
		ID:          r.ID,
		SellerID:    r.SellerID,
		Name:        r.Name,
		Category:    r.Category,
		City:        r.City,
		Price:       r.Price,
		Description: r.Description,
		Images:      r.Images,
		Views:       0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
