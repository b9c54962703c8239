package orchestrator

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/strategize/pathway/pkg/events"
	"github.com/strategize/pathway/pkg/health"
	"github.com/strategize/pathway/pkg/mocks"
	"github.com/strategize/pathway/pkg/models"
	"github.com/strategize/pathway/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMockedOrchestrator(t *testing.T, persist *mocks.MockPersistence, bus *mocks.MockEventBus) *Orchestrator {
	t.Helper()

	pathwayRouter, err := router.NewRouter()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewOrchestrator(logger, pathwayRouter, persist, bus, &stubGenerator{text: "text"}, health.Static(true), nil)
}

func TestCreateSession_PublishesEvent(t *testing.T) {
	persist := mocks.NewMockPersistence()
	bus := &mocks.MockEventBus{}

	persist.GetMockSessionRepository().On("Save", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)
	bus.On("Publish", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(nil)

	o := newMockedOrchestrator(t, persist, bus)

	session, err := o.CreateSession(t.Context(), CreateSessionRequest{
		UserID:      "user-1",
		WorkspaceID: "ws-1",
		Pathway:     models.PathwayBusinessModelProblem,
	})
	require.NoError(t, err)

	bus.AssertNumberOfCalls(t, "Publish", 1)

	call := bus.Calls[0]
	assert.Equal(t, session.ID, call.Arguments.String(1))

	created, ok := call.Arguments.Get(2).(events.SessionCreated)
	require.True(t, ok)
	assert.Equal(t, events.SessionCreatedEvent, created.GetType())
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, models.PathwayBusinessModelProblem, created.Pathway)

	persist.GetMockSessionRepository().AssertExpectations(t)
}

func TestCreateSession_SaveFailureNoEvent(t *testing.T) {
	persist := mocks.NewMockPersistence()
	bus := &mocks.MockEventBus{}

	persist.GetMockSessionRepository().On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	o := newMockedOrchestrator(t, persist, bus)

	_, err := o.CreateSession(t.Context(), CreateSessionRequest{
		UserID:      "user-1",
		WorkspaceID: "ws-1",
		Pathway:     models.PathwayBusinessModelProblem,
	})
	require.Error(t, err)
	assert.False(t, IsValidationError(err))
	assert.False(t, IsNotFoundError(err))

	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}
