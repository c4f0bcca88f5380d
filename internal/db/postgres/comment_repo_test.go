package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepo_ListForPost(t *testing.T) {
	db, mock := setupMockDB(t)
	cols := []string{
		"id", "creator_id", "post_id", "parent_id", "content",
		"removed", "deleted", "published", "updated",
		"creator_name", "community_id", "score", "upvotes", "downvotes", "my_vote", "saved",
	}
	mock.ExpectQuery(`WHERE c.post_id = \$1 ORDER BY c.published DESC, c.id DESC LIMIT \$3`).
		WithArgs(7, 2, 9999).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(11, 3, 7, 10, "reply", false, false, testTime, nil, "carol", 5, 2, 2, 0, 1, false).
			AddRow(10, 1, 7, nil, "top", false, false, testTime.Add(-1), nil, "alice", 5, 0, 1, 1, 0, true))

	list, err := NewCommentRepository(db).ListForPost(context.Background(), 7, intPtr(2), 9999)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 10, *list[0].ParentID)
	assert.Nil(t, list[1].ParentID)
	assert.Equal(t, 1, list[0].MyVote)
	assert.True(t, list[1].Saved)
}
