package news

import "context"

// Page bounds a listing request.
type Page struct {
	Limit  int
	Offset int
}

// Repository describes article persistence needs from use cases.
type Repository interface {
	ListPublished(ctx context.Context, page Page) ([]Article, error)
	ListAll(ctx context.Context, page Page) ([]Article, error)
	GetByID(ctx context.Context, articleID string) (Article, bool, error)
	Create(ctx context.Context, item Article) (Article, error)
	Update(ctx context.Context, item Article) (Article, error)
	Unpublish(ctx context.Context, articleID string) error
}
