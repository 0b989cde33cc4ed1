package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
	"github.com/ignatzorin/ats-backend/internal/models"
	"github.com/ignatzorin/ats-backend/internal/pkg/apperror"
)

func TestInterviewRepository_Complete(t *testing.T) {
	t.Run("повторное решение даёт ALREADY_COMPLETED", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewInterviewRepository(db)

		outcome := valueobject.InterviewOutcomeHired
		interview := &models.Interview{
			ID:      uuid.New(),
			Status:  valueobject.InterviewStatusCompleted,
			Outcome: &outcome,
		}
		candidate := &models.Candidate{ID: uuid.New(), Status: valueobject.CandidateStatusHired}

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE interviews")).
			WithArgs(interview.ID, interview.Status, interview.Outcome, nil).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))
		mock.ExpectRollback()

		err := repo.Complete(context.Background(), interview, candidate)

		assert.True(t, apperror.IsCode(err, apperror.ErrCodeAlreadyCompleted))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("сбой хранилища не маскируется под бизнес-ошибку", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewInterviewRepository(db)

		outcome := valueobject.InterviewOutcomeRejected
		interview := &models.Interview{
			ID:      uuid.New(),
			Status:  valueobject.InterviewStatusCompleted,
			Outcome: &outcome,
		}
		candidate := &models.Candidate{ID: uuid.New(), Status: valueobject.CandidateStatusRejected}

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE interviews")).
			WithArgs(interview.ID, interview.Status, interview.Outcome, nil).
			WillReturnError(errors.New("connection reset by peer"))
		mock.ExpectRollback()

		err := repo.Complete(context.Background(), interview, candidate)

		require.Error(t, err)
		assert.False(t, apperror.IsCode(err, apperror.ErrCodeAlreadyCompleted))
		assert.Contains(t, err.Error(), "connection reset by peer")
	})
}

func TestInterviewRepository_Cancel(t *testing.T) {
	cancelQuery := regexp.QuoteMeta(`
		UPDATE interviews
		SET status = 'CANCELLED', updated_at = NOW()
		WHERE id = $1 AND status = 'SCHEDULED'
		RETURNING updated_at
	`)

	t.Run("повторная отмена даёт ALREADY_COMPLETED", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewInterviewRepository(db)

		interview := &models.Interview{ID: uuid.New()}
		mock.ExpectQuery(cancelQuery).
			WithArgs(interview.ID).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

		err := repo.Cancel(context.Background(), interview)

		assert.True(t, apperror.IsCode(err, apperror.ErrCodeAlreadyCompleted))
	})

	t.Run("сбой хранилища не маскируется под бизнес-ошибку", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewInterviewRepository(db)

		interview := &models.Interview{ID: uuid.New()}
		mock.ExpectQuery(cancelQuery).
			WithArgs(interview.ID).
			WillReturnError(errors.New("driver: bad connection"))

		err := repo.Cancel(context.Background(), interview)

		require.Error(t, err)
		assert.False(t, apperror.IsCode(err, apperror.ErrCodeAlreadyCompleted))
	})

	t.Run("успешная отмена", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewInterviewRepository(db)

		interview := &models.Interview{ID: uuid.New()}
		mock.ExpectQuery(cancelQuery).
			WithArgs(interview.ID).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))

		require.NoError(t, repo.Cancel(context.Background(), interview))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
