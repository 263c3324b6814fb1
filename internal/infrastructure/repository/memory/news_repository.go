package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goalzone-ng/goalzone-api/internal/domain/news"
)

type NewsRepository struct {
	mu       sync.RWMutex
	articles map[string]news.Article
}

func NewNewsRepository(articles []news.Article) *NewsRepository {
	byID := make(map[string]news.Article, len(articles))
	for _, item := range articles {
		byID[item.ID] = item
	}

	return &NewsRepository{articles: byID}
}

func (r *NewsRepository) ListPublished(_ context.Context, page news.Page) ([]news.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]news.Article, 0, len(r.articles))
	for _, item := range r.articles {
		if item.Published {
			out = append(out, item)
		}
	}

	return paginateArticles(out, page), nil
}

func (r *NewsRepository) ListAll(_ context.Context, page news.Page) ([]news.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]news.Article, 0, len(r.articles))
	for _, item := range r.articles {
		out = append(out, item)
	}

	return paginateArticles(out, page), nil
}

func (r *NewsRepository) GetByID(_ context.Context, articleID string) (news.Article, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.articles[articleID]
	return item, ok, nil
}

func (r *NewsRepository) Create(_ context.Context, item news.Article) (news.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.articles[item.ID]; exists {
		return news.Article{}, fmt.Errorf("article %s already exists", item.ID)
	}
	r.articles[item.ID] = item

	return item, nil
}

func (r *NewsRepository) Update(_ context.Context, item news.Article) (news.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.articles[item.ID]; !exists {
		return news.Article{}, fmt.Errorf("article %s does not exist", item.ID)
	}
	r.articles[item.ID] = item

	return item, nil
}

func (r *NewsRepository) Unpublish(_ context.Context, articleID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.articles[articleID]
	if !exists {
		return fmt.Errorf("article %s does not exist", articleID)
	}
	item.Published = false
	r.articles[articleID] = item

	return nil
}

func paginateArticles(items []news.Article, page news.Page) []news.Article {
	sort.Slice(items, func(a, b int) bool {
		return items[a].CreatedAt.After(items[b].CreatedAt)
	})

	if page.Offset >= len(items) {
		return []news.Article{}
	}
	items = items[page.Offset:]
	if page.Limit > 0 && page.Limit < len(items) {
		items = items[:page.Limit]
	}

	return items
}
