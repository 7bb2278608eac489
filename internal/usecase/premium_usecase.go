package usecase

import (
	"context"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
)

type premiumUsecase struct {
	profileRepo domain.ProfileRepository
}

// NewPremiumUsecase creates a new premium usecase
func NewPremiumUsecase(profileRepo domain.ProfileRepository) domain.PremiumUsecase {
	return &premiumUsecase{profileRepo: profileRepo}
}

// Toggle flips the premium flag on whichever profile kind the actor owns.
// Turning it on stamps premium_since; turning it off clears it. Both happen
// in one atomic update in the repository.
func (uc *premiumUsecase) Toggle(ctx context.Context, actor *domain.Actor) (*domain.PremiumStatus, error) {
	switch actor.Kind {
	case domain.ActorJobSeeker:
		status, err := uc.profileRepo.TogglePremiumJobSeeker(ctx, actor.JobSeeker.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return status, nil
	case domain.ActorEmployer:
		status, err := uc.profileRepo.TogglePremiumEmployer(ctx, actor.Employer.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return status, nil
	default:
		return nil, apperror.NotFound("No profile found for this user")
	}
}

// Status is the read-only view of the premium flag.
func (uc *premiumUsecase) Status(ctx context.Context, actor *domain.Actor) (*domain.PremiumStatus, error) {
	switch actor.Kind {
	case domain.ActorJobSeeker:
		return &domain.PremiumStatus{
			IsPremium:    actor.JobSeeker.IsPremium,
			UserType:     domain.ActorJobSeeker,
			PremiumSince: actor.JobSeeker.PremiumSince,
		}, nil
	case domain.ActorEmployer:
		return &domain.PremiumStatus{
			IsPremium:    actor.Employer.IsPremium,
			UserType:     domain.ActorEmployer,
			PremiumSince: actor.Employer.PremiumSince,
		}, nil
	default:
		return nil, apperror.NotFound("No profile found for this user")
	}
}
