package commands_test

import (
	"context"
	"errors"
	"testing"

	"inspection/internal/core/application/usecases/commands"
	"inspection/internal/core/domain/model/job"
	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/core/ports"
	"inspection/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockJobRepository) Get(ctx context.Context, id kernel.ID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

type MockJobUoW struct{ mock.Mock }

func (m *MockJobUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockJobUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockJobUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockJobUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

func TestCreateJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	description := "Annual boiler check in unit 4B"
	cmd, err := commands.NewCreateJobCommand("Boiler inspection", &description)
	require.NoError(t, err)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*job.Job")).
		Run(func(args mock.Arguments) {
			aggregate := args.Get(1).(*job.Job)
			id, err := kernel.NewID(42)
			require.NoError(t, err)
			require.NoError(t, aggregate.AttachID(id))
		}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateJobCommandHandler(factory)
	view, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(42), view.ID)
	assert.Equal(t, "Boiler inspection", view.Title)
	require.NotNil(t, view.Description)
	assert.Equal(t, description, *view.Description)
	assert.Equal(t, "OPEN", view.Status)
	assert.Contains(t, view.CreatedAt, "+00:00")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateJobCommandHandler_Handle_BlankTitle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateJobCommand("   ", nil)
	require.NoError(t, err)

	handler := commands.NewCreateJobCommandHandler(new(MockJobUoWFactory))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateJobCommandHandler_Handle_ValidationError(t *testing.T) {
	handler := commands.NewCreateJobCommandHandler(new(MockJobUoWFactory))

	_, err := handler.Handle(t.Context(), commands.CreateJobCommand{})

	require.Error(t, err)
}

func TestCreateJobCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateJobCommand("Boiler inspection", nil)
	require.NoError(t, err)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*job.Job")).
		Return(errors.New("add error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateJobCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
