package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	assert.True(t, strings.HasPrefix(ObjectKey("image/webp"), "uploads/"))
	assert.True(t, strings.HasSuffix(ObjectKey("image/webp"), ".webp"))
	assert.True(t, strings.HasSuffix(ObjectKey("image/jpeg"), ".jpg"))
	assert.True(t, strings.HasSuffix(ObjectKey("application/pdf"), ".bin"))
	assert.NotEqual(t, ObjectKey("image/png"), ObjectKey("image/png"))
}

func TestKeyFromURL(t *testing.T) {
	key, err := KeyFromURL("https://media.example/", "https://media.example/uploads/a.webp")
	require.NoError(t, err)
	assert.Equal(t, "uploads/a.webp", key)

	for _, bad := range []string{
		"https://other.example/uploads/a.webp",
		"https://media.example/",
		"https://media.example/uploads/../secrets",
	} {
		_, err := KeyFromURL("https://media.example", bad)
		assert.ErrorIs(t, err, ErrInvalidFileURL, bad)
	}
}
