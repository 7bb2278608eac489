package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestApplicationLifecycleFlow walks one application from submission to an
// accepted appointment, with every usecase sharing the same mocked stores.
func TestApplicationLifecycleFlow(t *testing.T) {
	ctx := context.Background()

	appRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobPostRepo)
	msgRepo := new(MockMessageRepo)
	convRepo := new(MockConversationRepo)
	apptRepo := new(MockAppointmentRepo)

	appUC := usecase.NewApplicationUsecase(appRepo, jobRepo)
	convUC := usecase.NewConversationUsecase(msgRepo, convRepo, appRepo, testPlaceholderAvatar)
	apptUC := usecase.NewAppointmentUsecase(apptRepo, appRepo, validator.New())

	seeker := jobSeekerActor("u1", 5)
	employer := employerActor("u2", 7)

	// The application as the store sees it after creation.
	stored := &domain.JobApplication{
		ID: 1, JobID: 10, CandidateID: 5,
		Status:          domain.ApplicationStatusReceived,
		CandidateUserID: "u1", EmployerID: 7, EmployerUserID: "u2",
	}

	// Candidate applies.
	jobRepo.On("Exists", ctx, int64(10)).Return(true, nil)
	appRepo.On("Create", ctx, mock.AnythingOfType("*domain.JobApplication")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.JobApplication).ID = 1
		}).Return(nil).Once()

	app, err := appUC.Submit(ctx, seeker, 10, "/cv.pdf", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), app.ID)

	appRepo.On("GetByID", ctx, int64(1)).Return(stored, nil)

	// Candidate opens the conversation; the application id is the thread id.
	msgRepo.On("CreateOpener", ctx, int64(1), "u1", "u2").Return(true, nil).Once()
	convID, err := convUC.Start(ctx, seeker, 1)
	require.NoError(t, err)
	assert.Equal(t, app.ID, convID)

	// Both parties exchange messages in the thread.
	msgRepo.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Return(nil)
	sent, err := convUC.Send(ctx, seeker, 1, "", "Looking forward to hearing from you")
	require.NoError(t, err)
	assert.Equal(t, "u2", sent.ReceiverUserID)

	reply, err := convUC.Send(ctx, employer, 1, "", "Let's schedule an interview")
	require.NoError(t, err)
	assert.Equal(t, "u1", reply.ReceiverUserID)

	// Employer moves the application forward.
	appRepo.On("UpdateStatus", ctx, int64(1), domain.ApplicationStatusInProgress).
		Run(func(mock.Arguments) { stored.Status = domain.ApplicationStatusInProgress }).
		Return(nil).Once()
	updated, err := appUC.UpdateStatus(ctx, employer, 1, domain.ApplicationStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusInProgress, updated.Status)

	// Employer schedules, the candidate accepts.
	apptRepo.On("Create", ctx, mock.AnythingOfType("*domain.Appointment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Appointment).ID = 3
		}).Return(nil).Once()
	appt, err := apptUC.Create(ctx, employer, domain.CreateAppointmentInput{
		ApplicationID:   1,
		AppointmentTime: time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		Description:     "On-site interview",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), appt.JobSeekerID)

	answer := "See you there"
	now := time.Now()
	apptRepo.On("Respond", ctx, int64(3), int64(5), domain.AppointmentStatusAccepted, answer).
		Return(&domain.Appointment{
			ID: 3, JobSeekerID: 5,
			Status:                   domain.AppointmentStatusAccepted,
			JobSeekerResponseMessage: &answer,
			JobSeekerResponseDate:    &now,
		}, nil).Once()
	answered, err := apptUC.Respond(ctx, seeker, 3, domain.AppointmentStatusAccepted, answer)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusAccepted, answered.Status)

	// Employer closes the loop.
	appRepo.On("UpdateStatus", ctx, int64(1), domain.ApplicationStatusAccepted).
		Run(func(mock.Arguments) { stored.Status = domain.ApplicationStatusAccepted }).
		Return(nil).Once()
	final, err := appUC.UpdateStatus(ctx, employer, 1, domain.ApplicationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusAccepted, final.Status)

	// The audit trail saw every write.
	appRepo.On("GetStatusHistory", ctx, int64(1)).Return([]domain.StatusHistoryEntry{
		{ID: 3, ApplicationID: 1, Status: domain.ApplicationStatusAccepted},
		{ID: 2, ApplicationID: 1, Status: domain.ApplicationStatusInProgress},
		{ID: 1, ApplicationID: 1, Status: domain.ApplicationStatusReceived},
	}, nil)
	trail, err := appUC.History(ctx, seeker, 1)
	require.NoError(t, err)
	require.Len(t, trail, 3)
	assert.Equal(t, domain.ApplicationStatusReceived, trail[2].Status)

	appRepo.AssertExpectations(t)
	apptRepo.AssertExpectations(t)
	msgRepo.AssertExpectations(t)
}
