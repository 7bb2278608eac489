package usecase

import (
	"context"

	"go-jobmarket-backend/internal/domain"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(profileRepo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

// ResolveActor turns an authenticated user id into the Actor used by every
// downstream usecase. Called once per request by the auth middleware.
func (uc *profileUsecase) ResolveActor(ctx context.Context, userID string) (*domain.Actor, error) {
	return uc.profileRepo.ResolveActor(ctx, userID)
}
