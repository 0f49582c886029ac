package cart

import (
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// matches runs a glob against a key the way Redis KEYS does for patterns
// without character classes.
func matches(t *testing.T, pattern, key string) bool {
	t.Helper()
	ok, err := path.Match(pattern, key)
	require.NoError(t, err)
	return ok
}

func TestClearPatternCoversOwnSessionKeys(t *testing.T) {
	pattern := clearPattern("s1")

	assert.True(t, matches(t, pattern, orderListKey("s1")))
	assert.True(t, matches(t, pattern, itemKey("s1", "2", 9.5)))

	// The metadata hash has no trailing segment; Clear deletes it by name.
	assert.False(t, matches(t, pattern, cartKey("s1")))
}

func TestClearPatternDoesNotCrossSessions(t *testing.T) {
	pattern := clearPattern("s1")

	assert.False(t, matches(t, pattern, cartKey("s12")))
	assert.False(t, matches(t, pattern, orderListKey("s12")))
	assert.False(t, matches(t, pattern, itemKey("s12", "2", 9.5)))
}

func TestItemPatternScopedToSession(t *testing.T) {
	pattern := itemPattern("s1")

	assert.True(t, matches(t, pattern, itemKey("s1", "2", 9.5)))
	assert.False(t, matches(t, pattern, itemKey("s12", "2", 9.5)))
	assert.False(t, matches(t, pattern, orderListKey("s1")))
}
