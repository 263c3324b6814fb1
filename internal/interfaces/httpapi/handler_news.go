package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goalzone-ng/goalzone-api/internal/domain/news"
	"github.com/goalzone-ng/goalzone-api/internal/usecase"
)

func (h *Handler) ListPublishedNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPublishedNews")
	defer span.End()

	page, err := pageFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	key := fmt.Sprintf("news:published:limit=%d:offset=%d", page.Limit, page.Offset)
	payload, err := h.cached(ctx, key, func(ctx context.Context) (any, error) {
		articles, err := h.newsService.ListPublished(ctx, page)
		if err != nil {
			return nil, err
		}

		items := make([]newsDTO, 0, len(articles))
		for _, a := range articles {
			items = append(items, newsToDTO(a))
		}
		return items, nil
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list published news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) GetNewsArticle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNewsArticle")
	defer span.End()

	articleID := r.PathValue("articleID")
	payload, err := h.cached(ctx, "news:item:"+articleID, func(ctx context.Context) (any, error) {
		item, err := h.newsService.GetArticleByID(ctx, articleID)
		if err != nil {
			return nil, err
		}
		return newsToDTO(item), nil
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get article failed", "article_id", articleID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

// ListAllNews serves the admin dashboard and includes drafts, so it skips
// the public cache.
func (h *Handler) ListAllNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllNews")
	defer span.End()

	page, err := pageFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	articles, err := h.newsService.ListAll(ctx, page)
	if err != nil {
		h.logger.WarnContext(ctx, "list all news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]newsDTO, 0, len(articles))
	for _, a := range articles {
		items = append(items, newsToDTO(a))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateNewsArticle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateNewsArticle")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req newsUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.newsService.CreateArticle(ctx, principal, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "create article failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, "news:")

	writeSuccess(ctx, w, http.StatusCreated, newsToDTO(created))
}

func (h *Handler) UpdateNewsArticle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateNewsArticle")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req newsUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item := req.toDomain()
	item.ID = r.PathValue("articleID")
	updated, err := h.newsService.UpdateArticle(ctx, principal, item)
	if err != nil {
		h.logger.WarnContext(ctx, "update article failed", "article_id", item.ID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, "news:")

	writeSuccess(ctx, w, http.StatusOK, newsToDTO(updated))
}

func (h *Handler) UnpublishNewsArticle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnpublishNewsArticle")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	articleID := r.PathValue("articleID")
	if err := h.newsService.UnpublishArticle(ctx, principal, articleID); err != nil {
		h.logger.WarnContext(ctx, "unpublish article failed", "article_id", articleID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, "news:")

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "unpublished"})
}

func pageFromQuery(r *http.Request) (news.Page, error) {
	query := r.URL.Query()
	var page news.Page

	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return news.Page{}, fmt.Errorf("%w: limit must be a non-negative integer", usecase.ErrInvalidInput)
		}
		page.Limit = limit
	}
	if raw := strings.TrimSpace(query.Get("offset")); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return news.Page{}, fmt.Errorf("%w: offset must be a non-negative integer", usecase.ErrInvalidInput)
		}
		page.Offset = offset
	}

	return page, nil
}
