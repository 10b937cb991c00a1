package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	c.Set("content:faq", "a", 0)
	c.Set("content:video", "b", time.Hour)
	c.Set("product:id:1", "c", time.Hour)

	v, ok := c.Get("content:faq")
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	c.DeletePrefix("content:")
	_, ok = c.Get("content:video")
	assert.False(t, ok)
	_, ok = c.Get("product:id:1")
	assert.True(t, ok)

	c.Delete("product:id:1")
	_, ok = c.Get("product:id:1")
	assert.False(t, ok)

	c.Set("x", 1, time.Hour)
	c.Flush()
	_, ok = c.Get("x")
	assert.False(t, ok)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	c.Set("short", 1, time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	_, ok := c.Get("short")
	assert.False(t, ok)
}
