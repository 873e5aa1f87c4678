package commands_test

import (
	"testing"

	"inspection/internal/core/application/usecases/commands"
	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteAssignmentCommand_ValidInput(t *testing.T) {
	assessment := "No issues found"
	completedAt := "2025-03-15T17:30:00"

	cmd, err := commands.NewCompleteAssignmentCommand(mustID(t, 77), mustID(t, 3), &completedAt, &assessment)

	require.NoError(t, err)
	require.NotNil(t, cmd.AssignmentID())
	assert.Equal(t, int64(77), cmd.AssignmentID().Value())
	assert.Nil(t, cmd.JobID())
	assert.Equal(t, int64(3), cmd.InspectorID().Value())
	assert.Equal(t, &completedAt, cmd.CompletedAt())
	assert.Equal(t, &assessment, cmd.Assessment())
	assert.NoError(t, cmd.Validate())
}

func TestNewCompleteAssignmentCommandByJob_ValidInput(t *testing.T) {
	cmd, err := commands.NewCompleteAssignmentCommandByJob(mustID(t, 10), mustID(t, 3), nil, nil)

	require.NoError(t, err)
	require.NotNil(t, cmd.JobID())
	assert.Equal(t, int64(10), cmd.JobID().Value())
	assert.Nil(t, cmd.AssignmentID())
	assert.Nil(t, cmd.CompletedAt())
	assert.Nil(t, cmd.Assessment())
}

func TestNewCompleteAssignmentCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewCompleteAssignmentCommand(kernel.ID{}, mustID(t, 3), nil, nil)
	require.Error(t, err)

	_, err = commands.NewCompleteAssignmentCommand(mustID(t, 77), kernel.ID{}, nil, nil)
	require.Error(t, err)

	_, err = commands.NewCompleteAssignmentCommandByJob(kernel.ID{}, mustID(t, 3), nil, nil)
	require.Error(t, err)
}

func TestCompleteAssignmentCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CompleteAssignmentCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
