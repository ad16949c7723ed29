package repository

import (
	"context"

	"sombateka/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// List returns every product matching the field filter, newest
	// first. Boosted-first ranking and pagination happen in the
	// catalog use case because boostedness is derived from boostEnd
	// at read time and cannot be expressed as a stored-field order.
	List(ctx context.Context, filter map[string]interface{}) ([]*entity.Product, error)
	ListBySellerID(ctx context.Context, sellerID string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	// CountPendingBoosts counts products whose boost payment has been
	// declared but not yet reconciled by staff.
	CountPendingBoosts(ctx context.Context) (int64, error)
}
