package mocks

import (
	"context"

	"github.com/strategize/pathway/pkg/models"
	"github.com/strategize/pathway/pkg/persistence"
	"github.com/stretchr/testify/mock"
)

// MockSessionRepository is a mock implementation of persistence.SessionRepository interface.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) Save(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)

	return args.Error(0)
}

func (m *MockSessionRepository) List(ctx context.Context, opts persistence.ListSessionsOptions) ([]*models.Session, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*models.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockScoringRepository is a mock implementation of persistence.ScoringRepository interface.
type MockScoringRepository struct {
	mock.Mock
}

func (m *MockScoringRepository) Save(ctx context.Context, scoring *models.PriorityScoring) error {
	args := m.Called(ctx, scoring)

	return args.Error(0)
}

func (m *MockScoringRepository) ListBySession(ctx context.Context, sessionID string) ([]*models.PriorityScoring, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*models.PriorityScoring), args.Error(1)
}

// MockPersistence is a mock implementation of persistence.Persistence interface.
type MockPersistence struct {
	mock.Mock

	sessionRepo *MockSessionRepository
	scoringRepo *MockScoringRepository
}

// NewMockPersistence creates a new MockPersistence with all mock repositories.
func NewMockPersistence() *MockPersistence {
	return &MockPersistence{
		sessionRepo: &MockSessionRepository{},
		scoringRepo: &MockScoringRepository{},
	}
}

// GetMockSessionRepository returns the underlying mock session repository for setting up expectations.
func (m *MockPersistence) GetMockSessionRepository() *MockSessionRepository {
	return m.sessionRepo
}

// GetMockScoringRepository returns the underlying mock scoring repository for setting up expectations.
func (m *MockPersistence) GetMockScoringRepository() *MockScoringRepository {
	return m.scoringRepo
}

func (m *MockPersistence) SessionRepository() persistence.SessionRepository {
	return m.sessionRepo
}

func (m *MockPersistence) ScoringRepository() persistence.ScoringRepository {
	return m.scoringRepo
}

func (m *MockPersistence) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

func (m *MockPersistence) Close(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}
