package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goalzone-ng/goalzone-api/internal/domain/player"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	onlyActive := true
	if raw := strings.TrimSpace(r.URL.Query().Get("includeInactive")); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err == nil && include {
			onlyActive = false
		}
	}

	payload, err := h.cached(ctx, "teams:list:active="+strconv.FormatBool(onlyActive), func(ctx context.Context) (any, error) {
		teams, err := h.teamService.ListTeams(ctx, onlyActive)
		if err != nil {
			return nil, err
		}

		items := make([]teamDTO, 0, len(teams))
		for _, t := range teams {
			items = append(items, teamToDTO(t))
		}
		return items, nil
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	payload, err := h.cached(ctx, "teams:item:"+teamID, func(ctx context.Context) (any, error) {
		item, err := h.teamService.GetTeamByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return teamToDTO(item), nil
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

// GetTeamSquad lists the team's players. The squad is derived from player
// ownership, not stored on the team.
func (h *Handler) GetTeamSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSquad")
	defer span.End()

	teamID := r.PathValue("teamID")
	payload, err := h.cached(ctx, "teams:squad:"+teamID, func(ctx context.Context) (any, error) {
		return h.teamService.GetSquad(ctx, teamID)
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get squad failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	squad, ok := payload.([]player.Player)
	if !ok {
		writeError(ctx, w, fmt.Errorf("unexpected cached payload for squad of team %s", teamID))
		return
	}

	// Age is clock-derived, so the DTO mapping stays outside the cache.
	now := h.now()
	items := make([]playerDTO, 0, len(squad))
	for _, p := range squad {
		items = append(items, playerToDTO(p, now))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStats")
	defer span.End()

	teamID := r.PathValue("teamID")
	payload, err := h.cached(ctx, "teams:stats:"+teamID, func(ctx context.Context) (any, error) {
		item, err := h.teamService.GetTeamByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return seasonRecordToDTO(item.Stats), nil
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get team stats failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	payload, err := h.cached(ctx, "standings:table", func(ctx context.Context) (any, error) {
		rows, err := h.standingsService.Table(ctx)
		if err != nil {
			return nil, err
		}

		items := make([]standingRowDTO, 0, len(rows))
		for _, row := range rows {
			items = append(items, standingRowToDTO(row))
		}
		return items, nil
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req teamUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.CreateTeam(ctx, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, "teams:", "standings:")

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	var req teamUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item := req.toDomain()
	item.ID = r.PathValue("teamID")
	updated, err := h.teamService.UpdateTeam(ctx, item)
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", item.ID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, "teams:", "standings:")

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(updated))
}

func (h *Handler) DeactivateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeactivateTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	if err := h.teamService.DeactivateTeam(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "deactivate team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.invalidate(ctx, "teams:", "standings:")

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deactivated"})
}
