package usecase

import (
	"context"
	"time"

	"sombateka/internal/domain/entity"
	"sombateka/internal/domain/repository"
	"sombateka/pkg/errors"
	"sombateka/pkg/logger"
)

type AuthUseCase struct {
	sellerRepo   repository.SellerRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(sellerRepo repository.SellerRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		sellerRepo:   sellerRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	ShopName    string
	ContactName string
	Phone       string
	WhatsApp    string
	City        string
	BirthDate   time.Time
	Plan        string
}

type AuthResult struct {
	Seller *entity.Seller
	Token  string
}

// Register creates the Firebase Auth identity and the seller document.
// The account starts pending: the seller must transfer the first
// subscription fee, quoting the issued payment key, before staff
// verify it.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if _, ok := subscriptionPlanByCode(input.Plan); !ok {
		return nil, errors.BadRequest("Unknown subscription plan", nil)
	}

	existingSeller, err := uc.sellerRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, errors.Internal("Failed to check for existing seller", err)
	}
	if existingSeller != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.ShopName)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	seller := &entity.Seller{
		ID:               uid,
		ShopName:         input.ShopName,
		ContactName:      input.ContactName,
		Email:            input.Email,
		Phone:            input.Phone,
		WhatsApp:         input.WhatsApp,
		City:             input.City,
		BirthDate:        input.BirthDate,
		Role:             entity.RoleSeller,
		Plan:             input.Plan,
		ActivationStatus: entity.ActivationPending,
		PaymentKey:       GeneratePaymentKey(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.sellerRepo.Create(ctx, seller); err != nil {
		if delErr := uc.firebaseAuth.DeleteUser(ctx, uid); delErr != nil {
			logger.Error("Failed to clean up auth user %s after seller create failure: %v", uid, delErr)
		}
		return nil, errors.Internal("Failed to create seller record", err)
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		Seller: seller,
		Token:  token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	seller, err := uc.sellerRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("Seller", err)
	}

	return &AuthResult{
		Seller: seller,
		Token:  token,
	}, nil
}

func (uc *AuthUseCase) GetSellerByID(ctx context.Context, id string) (*entity.Seller, error) {
	seller, err := uc.sellerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Seller", err)
	}
	return seller, nil
}

// SendPasswordReset always reports success to the caller so the
// endpoint cannot be used to probe which emails are registered.
func (uc *AuthUseCase) SendPasswordReset(ctx context.Context, email string) error {
	if err := uc.firebaseAuth.SendPasswordResetEmail(email); err != nil {
		logger.Warn("Password reset email for %s failed: %v", email, err)
	}
	return nil
}

func (uc *AuthUseCase) UpdatePassword(ctx context.Context, uid, newPassword string) error {
	if err := uc.firebaseAuth.UpdateUserPassword(ctx, uid, newPassword); err != nil {
		return errors.Internal("Failed to update password", err)
	}
	return nil
}

// Logout is client-side for bearer ID tokens; the server has nothing
// to revoke.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	return nil
}
