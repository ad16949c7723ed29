package usecase

import (
	"context"

	"sombateka/internal/domain/entity"
	"sombateka/internal/domain/repository"
	"sombateka/pkg/errors"
	"sombateka/pkg/logger"
)

type AdminUseCase struct {
	requestRepo  repository.RequestRepository
	productRepo  repository.ProductRepository
	sellerRepo   repository.SellerRepository
	firebaseAuth FirebaseAuthClient
}

func NewAdminUseCase(
	requestRepo repository.RequestRepository,
	productRepo repository.ProductRepository,
	sellerRepo repository.SellerRepository,
	firebaseAuth FirebaseAuthClient,
) *AdminUseCase {
	return &AdminUseCase{
		requestRepo:  requestRepo,
		productRepo:  productRepo,
		sellerRepo:   sellerRepo,
		firebaseAuth: firebaseAuth,
	}
}

func (uc *AdminUseCase) ListRequests(ctx context.Context, limit, offset int) ([]*entity.Request, int64, error) {
	return uc.requestRepo.List(ctx, limit, offset)
}

// ApproveRequest publishes a pending submission. The copy-and-delete
// runs in one backend transaction and the product keeps the request
// ID, so approving twice surfaces a conflict instead of a duplicate.
func (uc *AdminUseCase) ApproveRequest(ctx context.Context, requestID string) (*entity.Product, error) {
	return uc.requestRepo.Promote(ctx, requestID)
}

func (uc *AdminUseCase) RejectRequest(ctx context.Context, requestID string) error {
	if _, err := uc.requestRepo.GetByID(ctx, requestID); err != nil {
		return err
	}
	return uc.requestRepo.Delete(ctx, requestID)
}

func (uc *AdminUseCase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx, nil)
}

func (uc *AdminUseCase) DeleteProduct(ctx context.Context, productID string) error {
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return err
	}
	return uc.productRepo.Delete(ctx, productID)
}

func (uc *AdminUseCase) ListSellers(ctx context.Context, limit, offset int) ([]*entity.Seller, int64, error) {
	return uc.sellerRepo.List(ctx, limit, offset)
}

// DeleteSeller removes the seller document, their listings, and the
// auth identity. Listing deletions are best-effort; an orphaned
// product can still be removed through product moderation.
func (uc *AdminUseCase) DeleteSeller(ctx context.Context, sellerID string) error {
	seller, err := uc.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return err
	}

	products, err := uc.productRepo.ListBySellerID(ctx, sellerID)
	if err != nil {
		return err
	}
	for _, product := range products {
		if err := uc.productRepo.Delete(ctx, product.ID); err != nil {
			logger.Warn("Failed to delete product %s of seller %s: %v", product.ID, sellerID, err)
		}
	}

	if err := uc.sellerRepo.Delete(ctx, seller.ID); err != nil {
		return err
	}

	if err := uc.firebaseAuth.DeleteUser(ctx, sellerID); err != nil {
		logger.Warn("Failed to delete auth user %s: %v", sellerID, err)
	}

	return nil
}

// VerifySellerPayment is the manual reconciliation step: staff have
// matched the mobile-money transfer against the seller's payment key
// and the account becomes active.
func (uc *AdminUseCase) VerifySellerPayment(ctx context.Context, sellerID string) (*entity.Seller, error) {
	seller, err := uc.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	if seller.ActivationStatus != entity.ActivationSubmitted {
		return nil, errors.BadRequest("Seller has no submitted payment to verify", nil)
	}

	seller.ActivationStatus = entity.ActivationVerified

	if err := uc.sellerRepo.Update(ctx, seller); err != nil {
		return nil, err
	}

	return seller, nil
}

type DashboardStats struct {
	Sellers         int64 `json:"sellers"`
	Products        int64 `json:"products"`
	PendingRequests int64 `json:"pending_requests"`
	// PendingPayments counts declared mobile-money transfers awaiting
	// staff reconciliation: submitted activations plus submitted
	// boost payments.
	PendingPayments int64 `json:"pending_payments"`
}

func (uc *AdminUseCase) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	sellers, err := uc.sellerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	products, err := uc.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := uc.requestRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	submittedActivations, err := uc.sellerRepo.CountByActivationStatus(ctx, entity.ActivationSubmitted)
	if err != nil {
		return nil, err
	}

	submittedBoosts, err := uc.productRepo.CountPendingBoosts(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Sellers:         sellers,
		Products:        products,
		PendingRequests: requests,
		PendingPayments: submittedActivations + submittedBoosts,
	}, nil
}
