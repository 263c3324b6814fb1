package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goalzone-ng/goalzone-api/internal/domain/news"
	"github.com/goalzone-ng/goalzone-api/internal/domain/user"
	idgen "github.com/goalzone-ng/goalzone-api/internal/platform/id"
)

const (
	defaultNewsPageSize = 20
	maxNewsPageSize     = 100
)

type NewsService struct {
	newsRepo news.Repository
	ids      idgen.Generator
	now      func() time.Time
}

func NewNewsService(newsRepo news.Repository, ids idgen.Generator) *NewsService {
	return &NewsService{
		newsRepo: newsRepo,
		ids:      ids,
		now:      time.Now,
	}
}

// ListPublished returns published articles for the public site, newest
// first.
func (s *NewsService) ListPublished(ctx context.Context, page news.Page) ([]news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.ListPublished")
	defer span.End()

	page = clampPage(page)
	items, err := s.newsRepo.ListPublished(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}

	return items, nil
}

// ListAll returns every article including drafts, for the admin dashboard.
func (s *NewsService) ListAll(ctx context.Context, page news.Page) ([]news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.ListAll")
	defer span.End()

	page = clampPage(page)
	items, err := s.newsRepo.ListAll(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list all articles: %w", err)
	}

	return items, nil
}

func (s *NewsService) GetArticleByID(ctx context.Context, articleID string) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.GetArticleByID")
	defer span.End()

	return s.getArticle(ctx, articleID)
}

func (s *NewsService) CreateArticle(ctx context.Context, author user.Principal, item news.Article) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.CreateArticle")
	defer span.End()

	if !author.CanPublish() {
		return news.Article{}, fmt.Errorf("%w: role %s cannot publish", ErrUnauthorized, author.Role)
	}

	item.AuthorID = author.UserID
	if err := item.Validate(); err != nil {
		return news.Article{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return news.Article{}, fmt.Errorf("generate article id: %w", err)
	}

	now := s.now()
	item.ID = newID
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.Published {
		publishedAt := now
		item.PublishedAt = &publishedAt
	}

	created, err := s.newsRepo.Create(ctx, item)
	if err != nil {
		return news.Article{}, fmt.Errorf("create article: %w", err)
	}

	return created, nil
}

func (s *NewsService) UpdateArticle(ctx context.Context, editor user.Principal, item news.Article) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.UpdateArticle")
	defer span.End()

	if !editor.CanPublish() {
		return news.Article{}, fmt.Errorf("%w: role %s cannot publish", ErrUnauthorized, editor.Role)
	}

	existing, err := s.getArticle(ctx, item.ID)
	if err != nil {
		return news.Article{}, err
	}

	item.AuthorID = existing.AuthorID
	if err := item.Validate(); err != nil {
		return news.Article{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now()
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = now
	item.PublishedAt = existing.PublishedAt
	if item.Published && existing.PublishedAt == nil {
		publishedAt := now
		item.PublishedAt = &publishedAt
	}

	updated, err := s.newsRepo.Update(ctx, item)
	if err != nil {
		return news.Article{}, fmt.Errorf("update article: %w", err)
	}

	return updated, nil
}

// UnpublishArticle pulls an article from the public site without deleting
// the record.
func (s *NewsService) UnpublishArticle(ctx context.Context, editor user.Principal, articleID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.UnpublishArticle")
	defer span.End()

	if !editor.CanPublish() {
		return fmt.Errorf("%w: role %s cannot publish", ErrUnauthorized, editor.Role)
	}

	if _, err := s.getArticle(ctx, articleID); err != nil {
		return err
	}

	if err := s.newsRepo.Unpublish(ctx, articleID); err != nil {
		return fmt.Errorf("unpublish article: %w", err)
	}

	return nil
}

func (s *NewsService) getArticle(ctx context.Context, articleID string) (news.Article, error) {
	articleID = strings.TrimSpace(articleID)
	if articleID == "" {
		return news.Article{}, fmt.Errorf("%w: article id is required", ErrInvalidInput)
	}

	item, exists, err := s.newsRepo.GetByID(ctx, articleID)
	if err != nil {
		return news.Article{}, fmt.Errorf("get article by id: %w", err)
	}
	if !exists {
		return news.Article{}, fmt.Errorf("%w: article=%s", ErrNotFound, articleID)
	}

	return item, nil
}

func clampPage(page news.Page) news.Page {
	if page.Limit <= 0 {
		page.Limit = defaultNewsPageSize
	}
	if page.Limit > maxNewsPageSize {
		page.Limit = maxNewsPageSize
	}
	if page.Offset < 0 {
		page.Offset = 0
	}

	return page
}
