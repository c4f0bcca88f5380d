package postgres

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// setupMockDB wraps sqlmock in a postgres-flavoured sqlx handle so Rebind emits $n
func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = sqlxDB.Close()
	})

	return sqlxDB, mock
}

var testTime = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

var fkViolation = &pq.Error{Code: codeForeignKeyViolation, Message: "insert or update violates foreign key constraint"}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
