package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Agora/internal/core/votes"
)

func TestVoteRepo_Replace(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		score     int
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name:  "upvote upserts",
			score: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO post_likes .* ON CONFLICT \(post_id, user_id\)\s+DO UPDATE SET score = EXCLUDED.score`).
					WithArgs(10, 2, 1).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:  "downvote upserts",
			score: -1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO post_likes`).
					WithArgs(10, 2, -1).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:  "zero deletes",
			score: 0,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM post_likes WHERE post_id = \$1 AND user_id = \$2`).
					WithArgs(10, 2).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:  "out of range deletes",
			score: 3,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM post_likes`).
					WithArgs(10, 2).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name:  "missing post",
			score: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO post_likes`).
					WithArgs(10, 2, 1).
					WillReturnError(fkViolation)
			},
			wantErr: votes.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			tt.setupMock(mock)

			err := NewVoteRepository(db).Replace(ctx, 10, 2, tt.score)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVoteRepo_ReplaceDatabaseError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectExec(`DELETE FROM post_likes`).WillReturnError(errors.New("connection reset"))

	err := NewVoteRepository(db).Replace(context.Background(), 1, 1, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear vote")
}

func TestVoteRepo_Get(t *testing.T) {
	ctx := context.Background()
	cols := []string{"id", "post_id", "user_id", "score", "published"}

	t.Run("found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT id, post_id, user_id, score, published\s+FROM post_likes`).
			WithArgs(10, 2).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(5, 10, 2, -1, testTime))

		vote, err := NewVoteRepository(db).Get(ctx, 10, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, vote.ID)
		assert.Equal(t, -1, vote.Score)
		assert.Equal(t, testTime, vote.Published)
	})

	t.Run("absent", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`FROM post_likes`).
			WithArgs(10, 2).
			WillReturnRows(sqlmock.NewRows(cols))

		_, err := NewVoteRepository(db).Get(ctx, 10, 2)
		assert.ErrorIs(t, err, votes.ErrVoteNotFound)
	})
}
