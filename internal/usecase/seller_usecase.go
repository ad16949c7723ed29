package usecase

import (
	"context"
	"time"

	"sombateka/internal/domain/entity"
	"sombateka/internal/domain/repository"
	"sombateka/pkg/errors"
)

type SellerUseCase struct {
	sellerRepo repository.SellerRepository
}

func NewSellerUseCase(sellerRepo repository.SellerRepository) *SellerUseCase {
	return &SellerUseCase{
		sellerRepo: sellerRepo,
	}
}

type UpdateProfileInput struct {
	ShopName    string
	ContactName string
	Phone       string
	WhatsApp    string
	City        string
	BirthDate   time.Time
}

func (uc *SellerUseCase) GetProfile(ctx context.Context, sellerID string) (*entity.Seller, error) {
	return uc.sellerRepo.GetByID(ctx, sellerID)
}

func (uc *SellerUseCase) UpdateProfile(ctx context.Context, sellerID string, input UpdateProfileInput) (*entity.Seller, error) {
	seller, err := uc.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	seller.ShopName = input.ShopName
	seller.ContactName = input.ContactName
	seller.Phone = input.Phone
	seller.WhatsApp = input.WhatsApp
	seller.City = input.City
	if !input.BirthDate.IsZero() {
		seller.BirthDate = input.BirthDate
	}

	if err := uc.sellerRepo.Update(ctx, seller); err != nil {
		return nil, err
	}

	return seller, nil
}

// ConfirmActivationPayment records the seller's declaration that the
// subscription fee was transferred from the given phone. The account
// stays locked until staff verify the transfer.
func (uc *SellerUseCase) ConfirmActivationPayment(ctx context.Context, sellerID, paymentPhone string) (*entity.Seller, error) {
	seller, err := uc.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	if seller.ActivationStatus == entity.ActivationVerified {
		return nil, errors.BadRequest("Account is already activated", nil)
	}

	seller.PaymentPhone = paymentPhone
	seller.ActivationStatus = entity.ActivationSubmitted

	if err := uc.sellerRepo.Update(ctx, seller); err != nil {
		return nil, err
	}

	return seller, nil
}
