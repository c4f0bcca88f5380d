package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Agora/internal/core/posts"
	"Agora/internal/core/votes"
	"Agora/internal/db/migrations"
)

// setupTestDB connects to TEST_DATABASE_URL and runs the embedded migrations.
// Tests using it are skipped when the variable is unset.
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err, "Failed to connect to test database")

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db.DB, "."), "Failed to run migrations")

	t.Cleanup(func() {
		_, _ = db.Exec(`TRUNCATE users, site, communities RESTART IDENTITY CASCADE`)
		_ = db.Close()
	})
	return db
}

// seedCommunity creates a user and a community, returning their ids
func seedCommunity(t *testing.T, db *sqlx.DB) (userID, communityID int) {
	t.Helper()
	require.NoError(t, db.Get(&userID, `INSERT INTO users (name) VALUES ('alice') RETURNING id`))
	require.NoError(t, db.Get(&communityID,
		`INSERT INTO communities (name, title, creator_id) VALUES ('golang', 'Go', $1) RETURNING id`, userID))
	return userID, communityID
}

func TestIntegration_VoteLedger(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	userID, communityID := seedCommunity(t, db)

	post, err := NewPostRepository(db).Create(ctx, &posts.PostForm{Name: "Hello", CreatorID: userID, CommunityID: communityID})
	require.NoError(t, err)

	repo := NewVoteRepository(db)
	countRows := func() int {
		var n int
		require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM post_likes WHERE post_id = $1 AND user_id = $2`, post.ID, userID))
		return n
	}

	require.NoError(t, repo.Replace(ctx, post.ID, userID, votes.Upvote))
	require.NoError(t, repo.Replace(ctx, post.ID, userID, votes.Downvote))
	assert.Equal(t, 1, countRows())

	vote, err := repo.Get(ctx, post.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, votes.Downvote, vote.Score)

	view, err := NewPostRepository(db).GetView(ctx, post.ID, &userID)
	require.NoError(t, err)
	assert.Equal(t, -1, view.Score)
	assert.Equal(t, -1, view.MyVote)

	require.NoError(t, repo.Replace(ctx, post.ID, userID, 0))
	assert.Equal(t, 0, countRows())

	assert.ErrorIs(t, repo.Replace(ctx, post.ID+1000, userID, votes.Upvote), votes.ErrPostNotFound)
}

func TestIntegration_SaveLedger(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	userID, communityID := seedCommunity(t, db)

	post, err := NewPostRepository(db).Create(ctx, &posts.PostForm{Name: "Hello", CreatorID: userID, CommunityID: communityID})
	require.NoError(t, err)

	repo := NewSaveRepository(db)
	require.NoError(t, repo.Set(ctx, post.ID, userID, true))
	require.NoError(t, repo.Set(ctx, post.ID, userID, true))

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM post_saved WHERE post_id = $1`, post.ID))
	assert.Equal(t, 1, n)

	require.NoError(t, repo.Set(ctx, post.ID, userID, false))
	require.NoError(t, repo.Set(ctx, post.ID, userID, false))
	view, err := NewPostRepository(db).GetView(ctx, post.ID, &userID)
	require.NoError(t, err)
	assert.False(t, view.Saved)
}

func TestIntegration_ListHidesRemoved(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	userID, communityID := seedCommunity(t, db)
	repo := NewPostRepository(db)

	visible, err := repo.Create(ctx, &posts.PostForm{Name: "visible", CreatorID: userID, CommunityID: communityID})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &posts.PostForm{Name: "removed", CreatorID: userID, CommunityID: communityID, Removed: true})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &posts.PostForm{Name: "nsfw", CreatorID: userID, CommunityID: communityID, NSFW: true})
	require.NoError(t, err)

	for _, sort := range []posts.SortType{posts.SortHot, posts.SortNew, posts.SortTopDay, posts.SortTopAll} {
		list, err := repo.List(ctx, posts.ListFilter{Type: posts.ListingAll, Sort: sort})
		require.NoError(t, err, sort)
		require.Len(t, list, 1, sort)
		assert.Equal(t, visible.ID, list[0].ID)
	}
}
