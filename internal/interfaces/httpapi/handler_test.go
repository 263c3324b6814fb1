package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/goalzone-ng/goalzone-api/internal/domain/player"
	"github.com/goalzone-ng/goalzone-api/internal/domain/team"
	"github.com/goalzone-ng/goalzone-api/internal/domain/user"
	"github.com/goalzone-ng/goalzone-api/internal/infrastructure/repository/memory"
	"github.com/goalzone-ng/goalzone-api/internal/platform/cache"
	idgen "github.com/goalzone-ng/goalzone-api/internal/platform/id"
	"github.com/goalzone-ng/goalzone-api/internal/platform/logging"
	"github.com/goalzone-ng/goalzone-api/internal/usecase"
)

type stubVerifier struct {
	principal user.Principal
	err       error
}

func (v stubVerifier) VerifyAccessToken(_ context.Context, _ string) (user.Principal, error) {
	return v.principal, v.err
}

type okMailer struct{}

func (okMailer) SendContactMessage(context.Context, usecase.ContactMessage) error { return nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	newsRepo := memory.NewNewsRepository(memory.SeedArticles())

	ids := idgen.NewRandomGenerator()
	logger := logging.NewNop()

	handler := NewHandler(
		usecase.NewTeamService(teamRepo, playerRepo, ids),
		usecase.NewPlayerService(teamRepo, playerRepo, ids),
		usecase.NewMatchService(matchRepo, teamRepo, playerRepo, ids, logger),
		usecase.NewNewsService(newsRepo, ids),
		usecase.NewStandingsService(teamRepo, 2),
		usecase.NewContactService(okMailer{}, logger),
		cache.NewStore(0),
		logger,
	)

	verifier := stubVerifier{principal: user.Principal{UserID: "user-admin", Email: "admin@example.com", Role: user.RoleAdmin}}

	return NewRouter(handler, verifier, logger, []string{"*"})
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer test-token")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v (body=%s)", err, rec.Body.String())
	}

	return body["data"]
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/healthz", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_ListTeams(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/teams", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	items, ok := decodeData(t, rec).([]any)
	if !ok {
		t.Fatalf("expected data array, got %T", decodeData(t, rec))
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 seeded teams, got %d", len(items))
	}
}

func TestRouter_GetPlayer_DerivedFields(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/players/player-eny-09", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	item, ok := decodeData(t, rec).(map[string]any)
	if !ok {
		t.Fatalf("expected data object")
	}
	if got, _ := item["fullName"].(string); got != "Emeka Obiora" {
		t.Fatalf("expected derived fullName, got %v", item["fullName"])
	}
	if _, ok := item["age"]; !ok {
		t.Fatalf("expected derived age field")
	}
}

func TestRouter_CachedPlayerAgeTracksClock(t *testing.T) {
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-x", Name: "Team X", ShortName: "TMX", State: team.StateLagos, IsActive: true},
	})
	playerRepo := memory.NewPlayerRepository([]player.Player{
		{
			ID: "ply-x", TeamID: "team-x", FirstName: "Ngozi", LastName: "Udo",
			JerseyNumber: 11, Position: player.PositionLeftWinger, Nationality: "Nigeria",
			DateOfBirth: time.Date(2000, time.March, 15, 0, 0, 0, 0, time.UTC), IsActive: true,
		},
	})
	matchRepo := memory.NewMatchRepository(nil)
	newsRepo := memory.NewNewsRepository(nil)

	ids := idgen.NewRandomGenerator()
	logger := logging.NewNop()

	handler := NewHandler(
		usecase.NewTeamService(teamRepo, playerRepo, ids),
		usecase.NewPlayerService(teamRepo, playerRepo, ids),
		usecase.NewMatchService(matchRepo, teamRepo, playerRepo, ids, logger),
		usecase.NewNewsService(newsRepo, ids),
		usecase.NewStandingsService(teamRepo, 2),
		usecase.NewContactService(okMailer{}, logger),
		cache.NewStore(time.Minute),
		logger,
	)
	handler.now = func() time.Time { return time.Date(2024, time.March, 14, 12, 0, 0, 0, time.UTC) }
	router := NewRouter(handler, stubVerifier{}, logger, []string{"*"})

	ageOf := func(rec *httptest.ResponseRecorder) float64 {
		t.Helper()
		item, ok := decodeData(t, rec).(map[string]any)
		if !ok {
			t.Fatalf("expected data object, body=%s", rec.Body.String())
		}
		age, ok := item["age"].(float64)
		if !ok {
			t.Fatalf("expected age field, got %v", item["age"])
		}
		return age
	}

	rec := doRequest(t, router, http.MethodGet, "/v1/players/ply-x", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("first read: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := ageOf(rec); got != 23 {
		t.Fatalf("day before birthday: expected age 23, got %v", got)
	}

	// The cache is warm now; the derived age must still follow the clock.
	handler.now = func() time.Time { return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC) }
	rec = doRequest(t, router, http.MethodGet, "/v1/players/ply-x", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("second read: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := ageOf(rec); got != 24 {
		t.Fatalf("on birthday: expected age 24, got %v", got)
	}
}

func TestRouter_AdminRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/admin/teams", `{"name":"X","shortName":"X","state":"Lagos"}`, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestRouter_CreateTeam(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"name":"Abia Warriors","shortName":"ABW","state":"Abia","foundedYear":2001}`
	rec := doRequest(t, router, http.MethodPost, "/v1/admin/teams", payload, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	item, ok := decodeData(t, rec).(map[string]any)
	if !ok {
		t.Fatalf("expected data object")
	}
	if got, _ := item["id"].(string); got == "" {
		t.Fatalf("expected generated team id")
	}
	stats, ok := item["stats"].(map[string]any)
	if !ok {
		t.Fatalf("expected stats object")
	}
	if got, _ := stats["matchesPlayed"].(float64); got != 0 {
		t.Fatalf("new team must start with zero matches, got %v", stats["matchesPlayed"])
	}
}

func TestRouter_CreateTeam_UnknownField(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"name":"X","shortName":"XX","state":"Lagos","points":30}`
	rec := doRequest(t, router, http.MethodPost, "/v1/admin/teams", payload, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_RecordResult_MovesStandings(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"homeScore":2,"awayScore":0,"appearances":[{"playerId":"player-eny-09","goals":2,"minutesPlayed":90}]}`
	rec := doRequest(t, router, http.MethodPost, "/v1/admin/matches/match-0001/result", payload, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("record result: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// A second submission must be rejected.
	rec = doRequest(t, router, http.MethodPost, "/v1/admin/matches/match-0001/result", payload, true)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate result, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/standings", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("standings: expected 200, got %d", rec.Code)
	}
	rows, ok := decodeData(t, rec).([]any)
	if !ok || len(rows) == 0 {
		t.Fatalf("expected standings rows")
	}
	top, _ := rows[0].(map[string]any)
	if got, _ := top["teamId"].(string); got != memory.TeamIDEnyimba {
		t.Fatalf("expected Enyimba on top, got %v", top["teamId"])
	}
	if got, _ := top["points"].(float64); got != 3 {
		t.Fatalf("expected 3 points, got %v", top["points"])
	}
	if got, _ := top["goalDifference"].(float64); got != 2 {
		t.Fatalf("expected goal difference 2, got %v", top["goalDifference"])
	}

	// The scorer's career counters moved with the result.
	rec = doRequest(t, router, http.MethodGet, "/v1/players/player-eny-09", "", false)
	item, _ := decodeData(t, rec).(map[string]any)
	stats, _ := item["stats"].(map[string]any)
	if got, _ := stats["goals"].(float64); got != 2 {
		t.Fatalf("expected 2 career goals, got %v", stats["goals"])
	}
}

func TestRouter_TeamSquad(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/teams/"+memory.TeamIDEnyimba+"/squad", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	items, ok := decodeData(t, rec).([]any)
	if !ok {
		t.Fatalf("expected data array")
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 seeded Enyimba players, got %d", len(items))
	}
}

func TestRouter_SubmitContact(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"name":"Ada","email":"ada@example.com","subject":"Tickets","body":"How much?"}`
	rec := doRequest(t, router, http.MethodPost, "/v1/contact", payload, false)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_GetTeam_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/teams/team-ghost", "", false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
