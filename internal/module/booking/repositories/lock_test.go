package repositories

import (
	goerrors "errors"
	"testing"

	apperrors "autocare-service/internal/pkg/errors"

	"github.com/go-redsync/redsync/v4"
	"github.com/stretchr/testify/assert"
)

func TestLockContention(t *testing.T) {
	assert.True(t, lockContention(redsync.ErrFailed))
	assert.True(t, lockContention(&redsync.ErrTaken{Nodes: []int{0}}))
	assert.False(t, lockContention(goerrors.New("redis: connection pool timeout")))
	assert.False(t, lockContention(goerrors.New("dial tcp: connection refused")))
}

func TestLockErr(t *testing.T) {
	t.Run("contention reports the slot as booked", func(t *testing.T) {
		err := lockErr(redsync.ErrFailed, "2026-09-07", "08:00-10:00")
		assert.Equal(t, 409, apperrors.HTTPCode(err))
	})

	t.Run("backend outage is not a conflict", func(t *testing.T) {
		err := lockErr(goerrors.New("redis: connection pool timeout"), "2026-09-07", "08:00-10:00")
		assert.Equal(t, 500, apperrors.HTTPCode(err))
	})
}
