package job_test

import (
	"strings"
	"testing"
	"time"

	"inspection/internal/core/domain/model/job"
	"inspection/internal/core/domain/model/kernel"
	"inspection/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func TestNewJob(t *testing.T) {
	t.Run("should create open job with valid title", func(t *testing.T) {
		description := "Initial inspection of the site"

		j, err := job.NewJob("Site Inspection A", &description)

		require.NoError(t, err)
		require.NoError(t, j.Validate())
		assert.Equal(t, "Site Inspection A", j.Title())
		assert.Equal(t, &description, j.Description())
		assert.Equal(t, job.Open, j.Status())
		assert.Nil(t, j.AssignmentID())
		assert.False(t, j.ID().IsAssigned())
		assert.Equal(t, time.UTC, j.CreatedAt().Location())
		assert.WithinDuration(t, time.Now().UTC(), j.CreatedAt(), time.Minute)
	})

	t.Run("should allow nil description", func(t *testing.T) {
		j, err := job.NewJob("Equipment Audit", nil)

		require.NoError(t, err)
		assert.Nil(t, j.Description())
	})

	t.Run("should fail with blank title", func(t *testing.T) {
		for _, title := range []string{"", "   "} {
			j, err := job.NewJob(title, nil)

			require.Error(t, err)
			assert.Nil(t, j)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("should fail with title longer than 255 characters", func(t *testing.T) {
		j, err := job.NewJob(strings.Repeat("x", 256), nil)

		require.Error(t, err)
		assert.Nil(t, j)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept title of exactly 255 characters", func(t *testing.T) {
		j, err := job.NewJob(strings.Repeat("x", 255), nil)

		require.NoError(t, err)
		assert.Len(t, j.Title(), 255)
	})
}

func TestRestoreJob(t *testing.T) {
	createdAt := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("should restore open job without assignment", func(t *testing.T) {
		j, err := job.RestoreJob(mustID(t, 1), "Site Inspection A", nil, job.Open, nil, createdAt)

		require.NoError(t, err)
		require.NoError(t, j.Validate())
		assert.Equal(t, int64(1), j.ID().Value())
		assert.Equal(t, createdAt, j.CreatedAt())
	})

	t.Run("should restore assigned job with assignment", func(t *testing.T) {
		assignmentID := mustID(t, 7)

		j, err := job.RestoreJob(mustID(t, 1), "Site Inspection A", nil, job.Assigned, &assignmentID, createdAt)

		require.NoError(t, err)
		require.NotNil(t, j.AssignmentID())
		assert.True(t, j.AssignmentID().IsEqual(assignmentID))
	})

	t.Run("should reject open job carrying an assignment", func(t *testing.T) {
		assignmentID := mustID(t, 7)

		_, err := job.RestoreJob(mustID(t, 1), "Site Inspection A", nil, job.Open, &assignmentID, createdAt)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject assigned job without assignment", func(t *testing.T) {
		_, err := job.RestoreJob(mustID(t, 1), "Site Inspection A", nil, job.Assigned, nil, createdAt)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unassigned identifier", func(t *testing.T) {
		var zero kernel.ID

		_, err := job.RestoreJob(zero, "Site Inspection A", nil, job.Open, nil, createdAt)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestJob_Validate(t *testing.T) {
	t.Run("should fail validation for nil job", func(t *testing.T) {
		var j *job.Job

		err := j.Validate()

		require.Error(t, err)
		assert.Equal(t, job.ErrJobIsNotConstructed, err)
	})

	t.Run("should fail validation for zero-value job", func(t *testing.T) {
		j := &job.Job{}

		err := j.Validate()

		require.Error(t, err)
		assert.Equal(t, job.ErrJobIsNotConstructed, err)
	})
}

func TestJob_AttachID(t *testing.T) {
	t.Run("should attach identifier once", func(t *testing.T) {
		j, err := job.NewJob("Site Inspection A", nil)
		require.NoError(t, err)

		require.NoError(t, j.AttachID(mustID(t, 5)))
		assert.Equal(t, int64(5), j.ID().Value())
	})

	t.Run("should reject a second attachment", func(t *testing.T) {
		j, err := job.NewJob("Site Inspection A", nil)
		require.NoError(t, err)
		require.NoError(t, j.AttachID(mustID(t, 5)))

		err = j.AttachID(mustID(t, 6))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, int64(5), j.ID().Value())
	})
}

func TestJob_Assign(t *testing.T) {
	t.Run("should assign an open job", func(t *testing.T) {
		j, err := job.NewJob("Site Inspection A", nil)
		require.NoError(t, err)
		assignmentID := mustID(t, 10)

		err = j.Assign(assignmentID)

		require.NoError(t, err)
		assert.Equal(t, job.Assigned, j.Status())
		require.NotNil(t, j.AssignmentID())
		assert.True(t, j.AssignmentID().IsEqual(assignmentID))
	})

	t.Run("should reject assigning twice", func(t *testing.T) {
		j, err := job.NewJob("Site Inspection A", nil)
		require.NoError(t, err)
		require.NoError(t, j.Assign(mustID(t, 10)))

		err = j.Assign(mustID(t, 11))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, job.Assigned, j.Status())
		assert.Equal(t, int64(10), j.AssignmentID().Value())
	})

	t.Run("should reject assigning a completed job", func(t *testing.T) {
		j, err := job.NewJob("Site Inspection A", nil)
		require.NoError(t, err)
		require.NoError(t, j.Assign(mustID(t, 10)))
		require.NoError(t, j.Complete())

		err = j.Assign(mustID(t, 11))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, job.Completed, j.Status())
	})

	t.Run("should reject unassigned assignment identifier", func(t *testing.T) {
		j, err := job.NewJob("Site Inspection A", nil)
		require.NoError(t, err)
		var zero kernel.ID

		err = j.Assign(zero)

		require.Error(t, err)
		assert.Equal(t, job.Open, j.Status())
	})
}

func TestJob_Complete(t *testing.T) {
	t.Run("should complete an assigned job", func(t *testing.T) {
		j, err := job.NewJob("Site Inspection A", nil)
		require.NoError(t, err)
		require.NoError(t, j.Assign(mustID(t, 10)))

		err = j.Complete()

		require.NoError(t, err)
		assert.Equal(t, job.Completed, j.Status())
	})

	t.Run("should reject completing an open job", func(t *testing.T) {
		j, err := job.NewJob("Site Inspection A", nil)
		require.NoError(t, err)

		err = j.Complete()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, job.Open, j.Status())
	})

	t.Run("should reject completing twice", func(t *testing.T) {
		j, err := job.NewJob("Site Inspection A", nil)
		require.NoError(t, err)
		require.NoError(t, j.Assign(mustID(t, 10)))
		require.NoError(t, j.Complete())

		err = j.Complete()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}
