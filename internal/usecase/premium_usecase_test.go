package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/internal/usecase"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPremiumToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("Should flip the job seeker flag and stamp the start time", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewPremiumUsecase(profileRepo)

		since := time.Now()
		profileRepo.On("TogglePremiumJobSeeker", ctx, int64(5)).Return(&domain.PremiumStatus{
			IsPremium: true, UserType: domain.ActorJobSeeker, PremiumSince: &since,
		}, nil)

		status, err := uc.Toggle(ctx, jobSeekerActor("u1", 5))
		require.NoError(t, err)
		assert.True(t, status.IsPremium)
		assert.Equal(t, domain.ActorJobSeeker, status.UserType)
		require.NotNil(t, status.PremiumSince)
		profileRepo.AssertNotCalled(t, "TogglePremiumEmployer")
	})

	t.Run("Should clear the start time when toggling off", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewPremiumUsecase(profileRepo)

		profileRepo.On("TogglePremiumEmployer", ctx, int64(7)).Return(&domain.PremiumStatus{
			IsPremium: false, UserType: domain.ActorEmployer, PremiumSince: nil,
		}, nil)

		status, err := uc.Toggle(ctx, employerActor("u2", 7))
		require.NoError(t, err)
		assert.False(t, status.IsPremium)
		assert.Nil(t, status.PremiumSince)
	})

	t.Run("Should fail when the user has neither profile", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewPremiumUsecase(profileRepo)

		_, err := uc.Toggle(ctx, noProfileActor("u3"))
		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		assert.Contains(t, err.Error(), "No profile found")
	})
}

func TestPremiumStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should read the flag from the resolved profile", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewPremiumUsecase(profileRepo)

		since := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
		actor := jobSeekerActor("u1", 5)
		actor.JobSeeker.IsPremium = true
		actor.JobSeeker.PremiumSince = &since

		status, err := uc.Status(ctx, actor)
		require.NoError(t, err)
		assert.True(t, status.IsPremium)
		assert.Equal(t, &since, status.PremiumSince)
		profileRepo.AssertNotCalled(t, "ResolveActor")
	})

	t.Run("Should fail without a profile", func(t *testing.T) {
		uc := usecase.NewPremiumUsecase(new(MockProfileRepo))

		_, err := uc.Status(ctx, noProfileActor("u3"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "No profile found")
	})
}
