package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunGuard(t *testing.T) {
	t.Run("single run acquires and releases", func(t *testing.T) {
		g := &runGuard{}
		assert.True(t, g.tryAcquire())
		assert.False(t, g.release())
		assert.True(t, g.tryAcquire())
	})

	t.Run("concurrent callers collapse into one rerun", func(t *testing.T) {
		g := &runGuard{}
		assert.True(t, g.tryAcquire())
		assert.False(t, g.tryAcquire())
		assert.False(t, g.tryAcquire())
		assert.False(t, g.tryAcquire())

		// one rerun for all collapsed callers
		assert.True(t, g.release())
		assert.False(t, g.release())
	})

	t.Run("rerun requested during the rerun runs again", func(t *testing.T) {
		g := &runGuard{}
		assert.True(t, g.tryAcquire())
		assert.False(t, g.tryAcquire())
		assert.True(t, g.release())
		assert.False(t, g.tryAcquire())
		assert.True(t, g.release())
		assert.False(t, g.release())
	})
}
