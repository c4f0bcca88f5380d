package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Agora/internal/core/users"
)

var userViewCols = []string{
	"id", "name", "avatar", "admin", "banned", "published",
	"number_of_posts", "post_score", "number_of_comments", "comment_score",
}

func TestUserRepo_GetView(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`FROM users u WHERE u.id = \$1`).
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows(userViewCols).AddRow(2, "bob", nil, false, true, testTime, 3, 10, 4, -2))

		user, err := NewUserRepository(db).GetView(ctx, 2)
		require.NoError(t, err)
		assert.True(t, user.Banned)
		assert.Equal(t, -2, user.CommentScore)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`FROM users u WHERE u.id = \$1`).WillReturnRows(sqlmock.NewRows(userViewCols))

		_, err := NewUserRepository(db).GetView(ctx, 2)
		assert.ErrorIs(t, err, users.ErrUserNotFound)
	})
}

func TestUserRepo_ListAdmins(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery(`FROM users u WHERE u.admin ORDER BY u.id`).
		WillReturnRows(sqlmock.NewRows(userViewCols).
			AddRow(1, "root", nil, true, false, testTime, 0, 0, 0, 0).
			AddRow(4, "dave", "https://img.example/d.png", true, false, testTime, 2, 5, 0, 0))

	admins, err := NewUserRepository(db).ListAdmins(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "https://img.example/d.png", *admins[1].Avatar)
}

func TestUserRepo_GetSiteCreatorID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT creator_id FROM site`).
			WillReturnRows(sqlmock.NewRows([]string{"creator_id"}).AddRow(1))

		id, err := NewUserRepository(db).GetSiteCreatorID(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, id)
	})

	t.Run("no site", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT creator_id FROM site`).
			WillReturnRows(sqlmock.NewRows([]string{"creator_id"}))

		_, err := NewUserRepository(db).GetSiteCreatorID(ctx)
		assert.ErrorIs(t, err, users.ErrSiteNotFound)
	})
}
