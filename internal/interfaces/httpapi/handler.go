package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/goalzone-ng/goalzone-api/internal/platform/cache"
	"github.com/goalzone-ng/goalzone-api/internal/platform/logging"
	"github.com/goalzone-ng/goalzone-api/internal/usecase"
)

type Handler struct {
	teamService      *usecase.TeamService
	playerService    *usecase.PlayerService
	matchService     *usecase.MatchService
	newsService      *usecase.NewsService
	standingsService *usecase.StandingsService
	contactService   *usecase.ContactService
	cache            *cache.Store
	logger           *logging.Logger
	validator        *validator.Validate
	now              func() time.Time
}

func NewHandler(
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	newsService *usecase.NewsService,
	standingsService *usecase.StandingsService,
	contactService *usecase.ContactService,
	store *cache.Store,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:      teamService,
		playerService:    playerService,
		matchService:     matchService,
		newsService:      newsService,
		standingsService: standingsService,
		contactService:   contactService,
		cache:            store,
		logger:           logger,
		validator:        validator.New(),
		now:              time.Now,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// cached serves public reads through the TTL store when one is configured.
func (h *Handler) cached(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if h.cache == nil {
		return loader(ctx)
	}

	return h.cache.GetOrLoad(ctx, key, loader)
}

func (h *Handler) invalidate(ctx context.Context, prefixes ...string) {
	if h.cache == nil {
		return
	}
	for _, prefix := range prefixes {
		h.cache.DeletePrefix(ctx, prefix)
	}
}
