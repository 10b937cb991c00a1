package domain

import (
	"context"
	"errors"
	"time"
)

// ContentBlock is a stored marketing section (FAQ, video, banners).
// Content holds the section JSON as written by admins.
type ContentBlock struct {
	ID         string     `json:"id"`
	SectionKey string     `json:"sectionKey"`
	Content    RawJSON    `json:"content"`
	IsActive   bool       `json:"isActive"`
	StartAt    *time.Time `json:"startAt,omitempty"`
	EndAt      *time.Time `json:"endAt,omitempty"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// IsCurrentlyActive returns true if the content block is active and within its schedule.
func (c *ContentBlock) IsCurrentlyActive(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.StartAt != nil && now.Before(*c.StartAt) {
		return false
	}
	if c.EndAt != nil && now.After(*c.EndAt) {
		return false
	}
	return true
}

// Known section keys with a typed shape.
const (
	SectionFAQ   = "faq"
	SectionVideo = "video"
)

type FAQItem struct {
	Question string `json:"question" validate:"required,max=300"`
	Answer   string `json:"answer" validate:"required,max=2000"`
}

type FAQSection struct {
	Title    string    `json:"title" validate:"required,max=200"`
	Subtitle string    `json:"subtitle" validate:"max=300"`
	Image    string    `json:"image" validate:"omitempty,max=500"`
	ImageAlt string    `json:"imageAlt" validate:"max=300"`
	CTALabel string    `json:"ctaLabel" validate:"max=100"`
	Items    []FAQItem `json:"items" validate:"required,min=1,dive"`
}

type VideoSection struct {
	Heading    string `json:"heading" validate:"required,max=200"`
	Subheading string `json:"subheading" validate:"max=500"`
	EmbedURL   string `json:"embedUrl" validate:"required,url"`
	Title      string `json:"title" validate:"max=300"`
}

var ErrContentNotFound = errors.New("content not found")

type ContentRepository interface {
	GetByKey(ctx context.Context, key string) (*ContentBlock, error)
	Upsert(ctx context.Context, key string, content []byte) (*ContentBlock, error)
	ListKeys(ctx context.Context) ([]string, error)
}
