package usecase

import "context"

// LoginInput carries seller credentials.
type LoginInput struct {
	Email    string
	Password string
}

// SessionUsecase defines the interface for seller sign-in.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
