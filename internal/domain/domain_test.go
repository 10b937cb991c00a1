package domain

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentBlock_IsCurrentlyActive(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name  string
		block ContentBlock
		want  bool
	}{
		{name: "inactive", block: ContentBlock{IsActive: false}, want: false},
		{name: "unscheduled", block: ContentBlock{IsActive: true}, want: true},
		{name: "not started", block: ContentBlock{IsActive: true, StartAt: &future}, want: false},
		{name: "ended", block: ContentBlock{IsActive: true, EndAt: &past}, want: false},
		{name: "in window", block: ContentBlock{IsActive: true, StartAt: &past, EndAt: &future}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.block.IsCurrentlyActive(now))
		})
	}
}

func TestRawJSON_RoundTrip(t *testing.T) {
	block := ContentBlock{SectionKey: "faq", Content: RawJSON(`{"title":"FAQ"}`)}

	data, err := json.Marshal(block)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"content":{"title":"FAQ"}`)

	var decoded ContentBlock
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.JSONEq(t, `{"title":"FAQ"}`, string(decoded.Content))
}

func TestUserFromContext(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)

	_, ok = UserFromContext(ContextWithUser(context.Background(), &User{}))
	assert.False(t, ok, "blank identity is treated as missing")

	user, ok := UserFromContext(ContextWithUser(context.Background(), &User{ID: "u1", Role: RoleAdmin}))
	require.True(t, ok)
	assert.True(t, user.IsAdmin())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 20, 41)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 0, NewPagination(1, 0, 10).TotalPages)
}

func TestDefaultSection(t *testing.T) {
	faq, ok := DefaultSection(SectionFAQ)
	require.True(t, ok)
	assert.NotEmpty(t, faq.(FAQSection).Items)

	_, ok = DefaultSection("hero")
	assert.False(t, ok)
}
