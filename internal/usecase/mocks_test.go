package usecase_test

import (
	"context"

	"go-jobmarket-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.JobApplication, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) GetByCandidateID(ctx context.Context, candidateID int64) ([]domain.JobApplication, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockApplicationRepo) GetStatusHistory(ctx context.Context, applicationID int64) ([]domain.StatusHistoryEntry, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusHistoryEntry), args.Error(1)
}

type MockJobPostRepo struct {
	mock.Mock
}

func (m *MockJobPostRepo) GetByID(ctx context.Context, id int64) (*domain.JobPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPost), args.Error(1)
}

func (m *MockJobPostRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) CreateOpener(ctx context.Context, applicationID int64, senderUserID, receiverUserID string) (bool, error) {
	args := m.Called(ctx, applicationID, senderUserID, receiverUserID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockMessageRepo) GetByApplicationID(ctx context.Context, applicationID int64) ([]domain.Message, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

type MockConversationRepo struct {
	mock.Mock
}

func (m *MockConversationRepo) ListForUser(ctx context.Context, userID string) ([]domain.ConversationSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConversationSummary), args.Error(1)
}

type MockAppointmentRepo struct {
	mock.Mock
}

func (m *MockAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) error {
	return m.Called(ctx, appt).Error(0)
}

func (m *MockAppointmentRepo) GetByEmployerID(ctx context.Context, employerID int64) ([]domain.Appointment, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepo) GetByJobSeekerID(ctx context.Context, jobSeekerID int64) ([]domain.Appointment, error) {
	args := m.Called(ctx, jobSeekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepo) Respond(ctx context.Context, id, jobSeekerID int64, status, message string) (*domain.Appointment, error) {
	args := m.Called(ctx, id, jobSeekerID, status, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

type MockFavoriteRepo struct {
	mock.Mock
}

func (m *MockFavoriteRepo) Toggle(ctx context.Context, jobSeekerID, jobPostID int64) (domain.FavoriteState, error) {
	args := m.Called(ctx, jobSeekerID, jobPostID)
	return args.Get(0).(domain.FavoriteState), args.Error(1)
}

func (m *MockFavoriteRepo) Exists(ctx context.Context, jobSeekerID, jobPostID int64) (bool, error) {
	args := m.Called(ctx, jobSeekerID, jobPostID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepo) ExistsBulk(ctx context.Context, jobSeekerID int64, jobPostIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, jobSeekerID, jobPostIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) ResolveActor(ctx context.Context, userID string) (*domain.Actor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockProfileRepo) TogglePremiumJobSeeker(ctx context.Context, profileID int64) (*domain.PremiumStatus, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PremiumStatus), args.Error(1)
}

func (m *MockProfileRepo) TogglePremiumEmployer(ctx context.Context, profileID int64) (*domain.PremiumStatus, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PremiumStatus), args.Error(1)
}

// Test fixtures

func jobSeekerActor(userID string, profileID int64) *domain.Actor {
	return &domain.Actor{
		UserID:   userID,
		Username: "seeker",
		Kind:     domain.ActorJobSeeker,
		JobSeeker: &domain.JobSeekerProfile{
			ID:        profileID,
			UserID:    userID,
			FirstName: "Jane",
			LastName:  "Doe",
		},
	}
}

func employerActor(userID string, profileID int64) *domain.Actor {
	return &domain.Actor{
		UserID:   userID,
		Username: "employer",
		Kind:     domain.ActorEmployer,
		Employer: &domain.EmployerProfile{
			ID:          profileID,
			UserID:      userID,
			CompanyName: "Acme",
		},
	}
}

func noProfileActor(userID string) *domain.Actor {
	return &domain.Actor{UserID: userID, Username: "nobody", Kind: domain.ActorNone}
}
