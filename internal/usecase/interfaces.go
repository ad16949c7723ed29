package usecase

import "context"

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
	SendPasswordResetEmail(email string) error
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
}
