package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goalzone-ng/goalzone-api/internal/domain/player"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	onlyActive := true
	if raw := strings.TrimSpace(r.URL.Query().Get("includeInactive")); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err == nil && include {
			onlyActive = false
		}
	}

	payload, err := h.cached(ctx, "players:list:active="+strconv.FormatBool(onlyActive), func(ctx context.Context) (any, error) {
		return h.playerService.ListPlayers(ctx, onlyActive)
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	players, ok := payload.([]player.Player)
	if !ok {
		writeError(ctx, w, fmt.Errorf("unexpected cached payload for player list"))
		return
	}

	// Age is clock-derived, so the DTO mapping stays outside the cache.
	now := h.now()
	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p, now))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	payload, err := h.cached(ctx, "players:item:"+playerID, func(ctx context.Context) (any, error) {
		return h.playerService.GetPlayerByID(ctx, playerID)
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	item, ok := payload.(player.Player)
	if !ok {
		writeError(ctx, w, fmt.Errorf("unexpected cached payload for player %s", playerID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item, h.now()))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req playerUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.CreatePlayer(ctx, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, "players:", "teams:")

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created, h.now()))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	var req playerUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item := req.toDomain()
	item.ID = r.PathValue("playerID")
	updated, err := h.playerService.UpdatePlayer(ctx, item)
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", item.ID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, "players:", "teams:")

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated, h.now()))
}

func (h *Handler) DeactivatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeactivatePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	if err := h.playerService.DeactivatePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "deactivate player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, "players:", "teams:")

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deactivated"})
}
