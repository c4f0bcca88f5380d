package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestPQErrorCodes(t *testing.T) {
	unique := &pq.Error{Code: "23505"}
	wrapped := fmt.Errorf("insert: %w", fkViolation)

	assert.False(t, isForeignKeyViolation(unique))
	assert.True(t, isForeignKeyViolation(wrapped))
	assert.False(t, isForeignKeyViolation(errors.New("foreign key")))
	assert.False(t, isForeignKeyViolation(nil))
}
