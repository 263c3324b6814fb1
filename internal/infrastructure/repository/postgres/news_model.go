package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/goalzone-ng/goalzone-api/internal/domain/news"
)

type newsTableModel struct {
	ID            int64          `db:"id"`
	PublicID      string         `db:"public_id"`
	Title         string         `db:"title"`
	Summary       string         `db:"summary"`
	Body          string         `db:"body"`
	AuthorID      string         `db:"author_public_id"`
	Tags          pq.StringArray `db:"tags"`
	CoverImageURL string         `db:"cover_image_url"`
	Published     bool           `db:"published"`
	PublishedAt   sql.NullTime   `db:"published_at"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (row newsTableModel) toDomain() news.Article {
	item := news.Article{
		ID:            row.PublicID,
		Title:         row.Title,
		Summary:       row.Summary,
		Body:          row.Body,
		AuthorID:      row.AuthorID,
		Tags:          append([]string(nil), row.Tags...),
		CoverImageURL: row.CoverImageURL,
		Published:     row.Published,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}

	if row.PublishedAt.Valid {
		publishedAt := row.PublishedAt.Time
		item.PublishedAt = &publishedAt
	}

	return item
}
