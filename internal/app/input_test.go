package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForwardKeys(t *testing.T) {
	assert.True(t, forwardKeys(false, false))
	assert.True(t, forwardKeys(false, true))
	// height prompt open: undo and redo chords still reach the router
	assert.True(t, forwardKeys(true, true))
	assert.False(t, forwardKeys(true, false))
}
