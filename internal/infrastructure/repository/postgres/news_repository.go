package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/goalzone-ng/goalzone-api/internal/domain/news"
	qb "github.com/goalzone-ng/goalzone-api/internal/platform/querybuilder"
)

type NewsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) ListPublished(ctx context.Context, page news.Page) ([]news.Article, error) {
	query, args, err := qb.Select("*").From("news_articles").
		Where(qb.Eq("published", true)).
		OrderBy("created_at DESC", "id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list published articles query: %w", err)
	}

	return r.selectArticles(ctx, query, args, "list published articles")
}

func (r *NewsRepository) ListAll(ctx context.Context, page news.Page) ([]news.Article, error) {
	query, args, err := qb.Select("*").From("news_articles").
		OrderBy("created_at DESC", "id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list articles query: %w", err)
	}

	return r.selectArticles(ctx, query, args, "list articles")
}

func (r *NewsRepository) selectArticles(ctx context.Context, query string, args []any, op string) ([]news.Article, error) {
	var rows []newsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]news.Article, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *NewsRepository) GetByID(ctx context.Context, articleID string) (news.Article, bool, error) {
	query, args, err := qb.Select("*").From("news_articles").
		Where(qb.Eq("public_id", articleID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return news.Article{}, false, fmt.Errorf("build get article query: %w", err)
	}

	var row newsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return news.Article{}, false, nil
		}
		return news.Article{}, false, fmt.Errorf("get article %s: %w", articleID, err)
	}

	return row.toDomain(), true, nil
}

func (r *NewsRepository) Create(ctx context.Context, item news.Article) (news.Article, error) {
	query, args, err := qb.InsertInto("news_articles").
		Columns(
			"public_id", "title", "summary", "body", "author_public_id",
			"tags", "cover_image_url", "published", "published_at",
			"created_at", "updated_at",
		).
		Values(
			item.ID, item.Title, item.Summary, item.Body, item.AuthorID,
			pq.StringArray(item.Tags), item.CoverImageURL, item.Published, nullTime(item.PublishedAt),
			item.CreatedAt, item.UpdatedAt,
		).
		ToSQL()
	if err != nil {
		return news.Article{}, fmt.Errorf("build insert article query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return news.Article{}, fmt.Errorf("insert article %s: %w", item.ID, err)
	}

	return item, nil
}

func (r *NewsRepository) Update(ctx context.Context, item news.Article) (news.Article, error) {
	query, args, err := qb.Update("news_articles").
		Set("title", item.Title).
		Set("summary", item.Summary).
		Set("body", item.Body).
		Set("tags", pq.StringArray(item.Tags)).
		Set("cover_image_url", item.CoverImageURL).
		Set("published", item.Published).
		Set("published_at", nullTime(item.PublishedAt)).
		Set("updated_at", item.UpdatedAt).
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return news.Article{}, fmt.Errorf("build update article query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return news.Article{}, fmt.Errorf("update article %s: %w", item.ID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return news.Article{}, fmt.Errorf("update article %s: no row matched", item.ID)
	}

	return item, nil
}

func (r *NewsRepository) Unpublish(ctx context.Context, articleID string) error {
	query, args, err := qb.Update("news_articles").
		Set("published", false).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", articleID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build unpublish article query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unpublish article %s: %w", articleID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("unpublish article %s: no row matched", articleID)
	}

	return nil
}
