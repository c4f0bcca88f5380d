package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres SQLSTATE codes the repositories react to
const (
	codeForeignKeyViolation = "23503"
)

func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

// isForeignKeyViolation checks for a missing referenced row
func isForeignKeyViolation(err error) bool {
	return pqCode(err) == codeForeignKeyViolation
}
