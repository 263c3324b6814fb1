package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goalzone-ng/goalzone-api/internal/domain/match"
	"github.com/goalzone-ng/goalzone-api/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	filter, err := matchFilterFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	payload, err := h.cached(ctx, "matches:list:"+r.URL.RawQuery, func(ctx context.Context) (any, error) {
		matches, err := h.matchService.ListMatches(ctx, filter)
		if err != nil {
			return nil, err
		}

		items := make([]matchDTO, 0, len(matches))
		for _, m := range matches {
			items = append(items, matchToDTO(m))
		}
		return items, nil
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	payload, err := h.cached(ctx, "matches:item:"+matchID, func(ctx context.Context) (any, error) {
		item, err := h.matchService.GetMatchByID(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return matchToDTO(item), nil
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req matchUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.CreateMatch(ctx, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, "matches:")

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	var req matchUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item := req.toDomain()
	item.ID = r.PathValue("matchID")
	updated, err := h.matchService.UpdateMatch(ctx, item)
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", item.ID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, "matches:")

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

// RecordMatchResult finalizes a fixture. Team season counters and player
// career counters all move as a consequence, so the related caches are
// flushed on success.
func (h *Handler) RecordMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchResult")
	defer span.End()

	matchID := r.PathValue("matchID")
	var req matchResultRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	completed, err := h.matchService.RecordResult(ctx, matchID, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "record match result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, "matches:", "teams:", "players:", "standings:")

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(completed))
}

func matchFilterFromQuery(r *http.Request) (match.Filter, error) {
	query := r.URL.Query()
	filter := match.Filter{
		Status: match.Status(strings.TrimSpace(query.Get("status"))),
		TeamID: strings.TrimSpace(query.Get("teamId")),
	}

	if raw := strings.TrimSpace(query.Get("matchday")); raw != "" {
		matchday, err := strconv.Atoi(raw)
		if err != nil || matchday < 1 {
			return match.Filter{}, fmt.Errorf("%w: matchday must be a positive integer", usecase.ErrInvalidInput)
		}
		filter.Matchday = matchday
	}
	if raw := strings.TrimSpace(query.Get("from")); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return match.Filter{}, fmt.Errorf("%w: from must be an RFC3339 timestamp", usecase.ErrInvalidInput)
		}
		filter.From = from
	}
	if raw := strings.TrimSpace(query.Get("to")); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return match.Filter{}, fmt.Errorf("%w: to must be an RFC3339 timestamp", usecase.ErrInvalidInput)
		}
		filter.To = to
	}

	return filter, nil
}
