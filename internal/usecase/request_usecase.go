package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sombateka/internal/domain/entity"
	"sombateka/internal/domain/repository"
	"sombateka/pkg/errors"
)

type RequestUseCase struct {
	requestRepo repository.RequestRepository
	sellerRepo  repository.SellerRepository
}

func NewRequestUseCase(requestRepo repository.RequestRepository, sellerRepo repository.SellerRepository) *RequestUseCase {
	return &RequestUseCase{
		requestRepo: requestRepo,
		sellerRepo:  sellerRepo,
	}
}

type SubmitRequestInput struct {
	Name        string
	Category    string
	City        string
	Price       int64
	Description string
	Images      []string

	SubmitterName     string
	SubmitterPhone    string
	SubmitterWhatsApp string
}

const maxProductImages = 3

func buildImages(urls []string) []entity.ProductImage {
	images := make([]entity.ProductImage, 0, len(urls))
	for i, url := range urls {
		images = append(images, entity.ProductImage{
			ID:           uuid.New().String(),
			URL:          url,
			DisplayOrder: i,
		})
	}
	return images
}

// Submit handles the public submission endpoint: anyone can propose a
// listing, which waits in the moderation queue. A payment key is
// issued so the listing fee can be reconciled by hand.
func (uc *RequestUseCase) Submit(ctx context.Context, input SubmitRequestInput) (*entity.Request, error) {
	if len(input.Images) > maxProductImages {
		return nil, errors.BadRequest("A product can have at most 3 images", nil)
	}

	request := &entity.Request{
		Name:              input.Name,
		Category:          input.Category,
		City:              input.City,
		Price:             input.Price,
		Description:       input.Description,
		Images:            buildImages(input.Images),
		SubmitterName:     input.SubmitterName,
		SubmitterPhone:    input.SubmitterPhone,
		SubmitterWhatsApp: input.SubmitterWhatsApp,
		PaymentKey:        GeneratePaymentKey(),
		CreatedAt:         time.Now(),
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// SubmitAsSeller queues a listing for an authenticated, activated
// seller. Contact details come from the seller profile.
func (uc *RequestUseCase) SubmitAsSeller(ctx context.Context, sellerID string, input SubmitRequestInput) (*entity.Request, error) {
	if len(input.Images) > maxProductImages {
		return nil, errors.BadRequest("A product can have at most 3 images", nil)
	}

	seller, err := uc.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	if !seller.Verified() {
		return nil, errors.Forbidden("Account must be activated before listing products", nil)
	}

	request := &entity.Request{
		SellerID:          sellerID,
		Name:              input.Name,
		Category:          input.Category,
		City:              input.City,
		Price:             input.Price,
		Description:       input.Description,
		Images:            buildImages(input.Images),
		SubmitterName:     seller.ContactName,
		SubmitterPhone:    seller.Phone,
		SubmitterWhatsApp: seller.WhatsApp,
		CreatedAt:         time.Now(),
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}
