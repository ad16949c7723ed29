package repository

import (
	"context"

	"sombateka/internal/domain/entity"
)

type RequestRepository interface {
	Create(ctx context.Context, request *entity.Request) error
	GetByID(ctx context.Context, id string) (*entity.Request, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Request, int64, error)
	Delete(ctx context.Context, id string) error
	// Promote copies the request into the products collection and
	// deletes it, atomically. The product document reuses the request
	// ID, so promoting the same request twice cannot duplicate it.
	Promote(ctx context.Context, id string) (*entity.Product, error)
	Count(ctx context.Context) (int64, error)
}
