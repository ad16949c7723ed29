package usecase

import (
	"context"

	"sombateka/internal/domain/entity"
	"sombateka/internal/domain/repository"
	"sombateka/pkg/errors"
)

// ProductUseCase covers a seller managing their own published
// listings. New listings go through RequestUseCase and moderation.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

func (uc *ProductUseCase) ListMyProducts(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	return uc.productRepo.ListBySellerID(ctx, sellerID)
}

func (uc *ProductUseCase) DeleteMyProduct(ctx context.Context, sellerID, productID string) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	if product.SellerID != sellerID {
		return errors.Forbidden("You don't have permission to delete this product", nil)
	}

	return uc.productRepo.Delete(ctx, productID)
}
