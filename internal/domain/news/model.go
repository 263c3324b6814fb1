package news

import (
	"fmt"
	"strings"
	"time"
)

const (
	MaxTitleLength   = 200
	MaxSummaryLength = 300
)

// Article is an editorial news item.
type Article struct {
	ID            string
	Title         string
	Summary       string
	Body          string
	AuthorID      string
	Tags          []string
	CoverImageURL string
	Published     bool
	PublishedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (a Article) Validate() error {
	title := strings.TrimSpace(a.Title)
	if title == "" {
		return fmt.Errorf("article title is required")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("article title must be at most %d characters, got %d", MaxTitleLength, len(title))
	}
	if len(a.Summary) > MaxSummaryLength {
		return fmt.Errorf("article summary must be at most %d characters, got %d", MaxSummaryLength, len(a.Summary))
	}
	if strings.TrimSpace(a.Body) == "" {
		return fmt.Errorf("article body is required")
	}
	if strings.TrimSpace(a.AuthorID) == "" {
		return fmt.Errorf("article author id is required")
	}

	return nil
}
