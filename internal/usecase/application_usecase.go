package usecase

import (
	"context"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobPostRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobPostRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// Submit creates an application with status "received". The duplicate check
// lives in the repository's unique constraint; this method never pre-reads
// for existence, so racing submissions cannot both succeed.
func (uc *applicationUsecase) Submit(ctx context.Context, actor *domain.Actor, jobID int64, cvURL, coverLetterURL string) (*domain.JobApplication, error) {
	if actor.Kind != domain.ActorJobSeeker {
		return nil, apperror.Forbidden("You must have a job seeker profile to apply for a job")
	}

	exists, err := uc.jobRepo.Exists(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !exists {
		return nil, apperror.NotFound("Job post not found")
	}

	app := &domain.JobApplication{
		JobID:       jobID,
		CandidateID: actor.JobSeeker.ID,
		Status:      domain.ApplicationStatusReceived,
	}
	if cvURL != "" {
		app.CvURL = &cvURL
	}
	if coverLetterURL != "" {
		app.CoverLetterURL = &coverLetterURL
	}

	// Repository maps the unique-constraint violation to Conflict.
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListMine returns the caller's own applications.
func (uc *applicationUsecase) ListMine(ctx context.Context, actor *domain.Actor) ([]domain.JobApplication, error) {
	if actor.Kind != domain.ActorJobSeeker {
		return nil, apperror.Forbidden("You do not have permission to view job applications")
	}
	return uc.applicationRepo.GetByCandidateID(ctx, actor.JobSeeker.ID)
}

// ListByJob returns all applications for a job the acting employer owns,
// premium candidates first.
func (uc *applicationUsecase) ListByJob(ctx context.Context, actor *domain.Actor, jobID int64) ([]domain.JobApplication, error) {
	if actor.Kind != domain.ActorEmployer {
		return nil, apperror.Forbidden("You don't have an employer profile")
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job post not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.EmployerID != actor.Employer.ID {
		return nil, apperror.Forbidden("You do not have permission to view applications for this job")
	}

	return uc.applicationRepo.GetByJobID(ctx, jobID)
}

// UpdateStatus sets one of the four labels. No transition graph is enforced;
// any label may follow any label.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, actor *domain.Actor, applicationID int64, status string) (*domain.JobApplication, error) {
	if actor.Kind != domain.ActorEmployer {
		return nil, apperror.Forbidden("Employer profile not found")
	}
	if !domain.ValidApplicationStatus(status) {
		return nil, apperror.BadRequest("Invalid status. Must be one of: received, in_progress, accepted, rejected")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	if app.EmployerID != actor.Employer.ID {
		return nil, apperror.Forbidden("You do not have permission to update this application")
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, err
	}

	return uc.applicationRepo.GetByID(ctx, applicationID)
}

// Get returns one application to either of its parties.
func (uc *applicationUsecase) Get(ctx context.Context, actor *domain.Actor, applicationID int64) (*domain.JobApplication, error) {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	if !isParty(actor, app) {
		return nil, apperror.Forbidden("You are not a party to this application")
	}
	return app, nil
}

// History returns the status audit trail, newest first.
func (uc *applicationUsecase) History(ctx context.Context, actor *domain.Actor, applicationID int64) ([]domain.StatusHistoryEntry, error) {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	if !isParty(actor, app) {
		return nil, apperror.Forbidden("You are not a party to this application")
	}
	return uc.applicationRepo.GetStatusHistory(ctx, applicationID)
}

// isParty reports whether the actor is the application's candidate or the
// employer of its job.
func isParty(actor *domain.Actor, app *domain.JobApplication) bool {
	return actor.UserID == app.CandidateUserID || actor.UserID == app.EmployerUserID
}
