package usecase

import (
	"context"
	"time"

	"sombateka/internal/domain/entity"
	"sombateka/internal/domain/repository"
	"sombateka/pkg/errors"
)

// BoostOption is one of the fixed promotion windows a seller can buy.
// Month options add calendar months; the two-week option adds days.
type BoostOption struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Price  int64  `json:"price"`
	Days   int    `json:"-"`
	Months int    `json:"-"`
}

var boostOptions = []BoostOption{
	{Code: "2w", Label: "2 semaines", Price: 200, Days: 14},
	{Code: "1m", Label: "1 mois", Price: 500, Months: 1},
	{Code: "3m", Label: "3 mois", Price: 1000, Months: 3},
	{Code: "5m", Label: "5 mois", Price: 4000, Months: 5},
}

// EndFrom computes the boost end for a window starting at now.
func (o BoostOption) EndFrom(now time.Time) time.Time {
	if o.Days > 0 {
		return now.AddDate(0, 0, o.Days)
	}
	return now.AddDate(0, o.Months, 0)
}

func BoostOptions() []BoostOption {
	options := make([]BoostOption, len(boostOptions))
	copy(options, boostOptions)
	return options
}

func boostOptionByCode(code string) (BoostOption, bool) {
	for _, option := range boostOptions {
		if option.Code == code {
			return option, true
		}
	}
	return BoostOption{}, false
}

type BoostUseCase struct {
	productRepo repository.ProductRepository
	now         func() time.Time
}

func NewBoostUseCase(productRepo repository.ProductRepository) *BoostUseCase {
	return &BoostUseCase{
		productRepo: productRepo,
		now:         time.Now,
	}
}

// BoostQuote is returned when a seller picks an option: the fixed
// price, the prospective end, and the payment key to quote with the
// mobile-money transfer.
type BoostQuote struct {
	ProductID  string    `json:"product_id"`
	Option     string    `json:"option"`
	Label      string    `json:"label"`
	Price      int64     `json:"price"`
	BoostEnd   time.Time `json:"boost_end"`
	PaymentKey string    `json:"payment_key"`
}

// SelectOption stores a pending boost quote on the product. Nothing
// ranks until an admin confirms the payment.
func (uc *BoostUseCase) SelectOption(ctx context.Context, sellerID, productID, optionCode string) (*BoostQuote, error) {
	option, ok := boostOptionByCode(optionCode)
	if !ok {
		return nil, errors.BadRequest("Unknown boost option", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.SellerID != sellerID {
		return nil, errors.Forbidden("You don't have permission to boost this product", nil)
	}

	now := uc.now()
	pending := &entity.PendingBoost{
		Option:     option.Code,
		Price:      option.Price,
		BoostEnd:   option.EndFrom(now),
		PaymentKey: GeneratePaymentKey(),
		Status:     entity.BoostStatusQuoted,
		CreatedAt:  now,
	}

	product.PendingBoost = pending
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return &BoostQuote{
		ProductID:  product.ID,
		Option:     option.Code,
		Label:      option.Label,
		Price:      option.Price,
		BoostEnd:   pending.BoostEnd,
		PaymentKey: pending.PaymentKey,
	}, nil
}

// ConfirmPayment records the seller's "payment effectué" declaration.
// The quote moves to submitted and waits for staff reconciliation; the
// declaration alone never activates the boost.
func (uc *BoostUseCase) ConfirmPayment(ctx context.Context, sellerID, productID, paymentPhone string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.SellerID != sellerID {
		return nil, errors.Forbidden("You don't have permission to boost this product", nil)
	}

	if product.PendingBoost == nil {
		return nil, errors.BadRequest("No boost option selected for this product", nil)
	}

	product.PendingBoost.PaymentPhone = paymentPhone
	product.PendingBoost.Status = entity.BoostStatusSubmitted

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Activate is the admin-side confirmation: the boost window opens at
// confirmation time and the pending quote is cleared.
func (uc *BoostUseCase) Activate(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.PendingBoost == nil {
		return nil, errors.BadRequest("No pending boost payment for this product", nil)
	}

	option, ok := boostOptionByCode(product.PendingBoost.Option)
	if !ok {
		return nil, errors.Internal("Pending boost references an unknown option", nil)
	}

	end := option.EndFrom(uc.now())
	product.BoostOption = option.Code
	product.BoostEnd = &end
	product.PendingBoost = nil

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}
