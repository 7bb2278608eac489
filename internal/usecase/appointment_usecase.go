package usecase

import (
	"context"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type appointmentUsecase struct {
	appointmentRepo domain.AppointmentRepository
	applicationRepo domain.ApplicationRepository
	validate        *validator.Validate
}

// NewAppointmentUsecase creates a new appointment usecase
func NewAppointmentUsecase(
	appointmentRepo domain.AppointmentRepository,
	applicationRepo domain.ApplicationRepository,
	validate *validator.Validate,
) domain.AppointmentUsecase {
	return &appointmentUsecase{
		appointmentRepo: appointmentRepo,
		applicationRepo: applicationRepo,
		validate:        validate,
	}
}

// Create lets an employer schedule an appointment against one of their
// applications. The job seeker on the appointment is always derived from the
// application's candidate, never taken from the caller.
func (uc *appointmentUsecase) Create(ctx context.Context, actor *domain.Actor, in domain.CreateAppointmentInput) (*domain.Appointment, error) {
	if actor.Kind != domain.ActorEmployer {
		return nil, apperror.NotFound("Employer profile not found")
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest("job_application, appointment_time and description are required")
	}

	app, err := uc.applicationRepo.GetByID(ctx, in.ApplicationID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job application not found")
		}
		return nil, apperror.Internal(err)
	}
	if app.EmployerID != actor.Employer.ID {
		return nil, apperror.Forbidden("You can only create appointments for your own job applications")
	}

	appt := &domain.Appointment{
		EmployerID:      actor.Employer.ID,
		JobSeekerID:     app.CandidateID,
		ApplicationID:   in.ApplicationID,
		AppointmentTime: in.AppointmentTime,
		Description:     in.Description,
		Status:          domain.AppointmentStatusPending,
	}
	if err := uc.appointmentRepo.Create(ctx, appt); err != nil {
		return nil, apperror.Internal(err)
	}
	return appt, nil
}

// Respond records the job seeker's answer with the server clock. A later
// response overwrites an earlier one; pending is not enforced as a
// precondition, matching the modeled workflow.
func (uc *appointmentUsecase) Respond(ctx context.Context, actor *domain.Actor, appointmentID int64, status, message string) (*domain.Appointment, error) {
	if actor.Kind != domain.ActorJobSeeker {
		return nil, apperror.NotFound("Job seeker profile not found")
	}
	if status != domain.AppointmentStatusAccepted && status != domain.AppointmentStatusRejected {
		return nil, apperror.BadRequest("Status must be either 'accepted' or 'rejected'")
	}
	if message == "" {
		return nil, apperror.BadRequest("Response message is required")
	}

	appt, err := uc.appointmentRepo.Respond(ctx, appointmentID, actor.JobSeeker.ID, status, message)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Appointment not found or you don't have permission to modify it")
		}
		return nil, apperror.Internal(err)
	}
	return appt, nil
}

// ListForUser returns the employer view when the actor has an employer
// profile, the job-seeker view when they have that one, and NotFound when
// they have neither.
func (uc *appointmentUsecase) ListForUser(ctx context.Context, actor *domain.Actor) ([]domain.Appointment, error) {
	switch actor.Kind {
	case domain.ActorEmployer:
		return uc.appointmentRepo.GetByEmployerID(ctx, actor.Employer.ID)
	case domain.ActorJobSeeker:
		return uc.appointmentRepo.GetByJobSeekerID(ctx, actor.JobSeeker.ID)
	default:
		return nil, apperror.NotFound("No profile found for this user")
	}
}
