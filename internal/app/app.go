package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/goalzone-ng/goalzone-api/internal/config"
	"github.com/goalzone-ng/goalzone-api/internal/domain/match"
	"github.com/goalzone-ng/goalzone-api/internal/domain/news"
	"github.com/goalzone-ng/goalzone-api/internal/domain/player"
	"github.com/goalzone-ng/goalzone-api/internal/domain/team"
	"github.com/goalzone-ng/goalzone-api/internal/infrastructure/account/gatekeeper"
	"github.com/goalzone-ng/goalzone-api/internal/infrastructure/mail"
	"github.com/goalzone-ng/goalzone-api/internal/infrastructure/repository/memory"
	"github.com/goalzone-ng/goalzone-api/internal/infrastructure/repository/postgres"
	"github.com/goalzone-ng/goalzone-api/internal/interfaces/httpapi"
	"github.com/goalzone-ng/goalzone-api/internal/platform/cache"
	idgen "github.com/goalzone-ng/goalzone-api/internal/platform/id"
	"github.com/goalzone-ng/goalzone-api/internal/platform/logging"
	"github.com/goalzone-ng/goalzone-api/internal/platform/resilience"
	"github.com/goalzone-ng/goalzone-api/internal/usecase"

	_ "github.com/lib/pq"
)

type repositories struct {
	teams   team.Repository
	players player.Repository
	matches match.Repository
	news    news.Repository
}

// NewHTTPServer assembles the full service. The returned cleanup closes
// resources the server holds open, such as the database pool.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ids := idgen.NewRandomGenerator()
	teamSvc := usecase.NewTeamService(repos.teams, repos.players, ids)
	playerSvc := usecase.NewPlayerService(repos.teams, repos.players, ids)
	matchSvc := usecase.NewMatchService(repos.matches, repos.teams, repos.players, ids, logger)
	newsSvc := usecase.NewNewsService(repos.news, ids)
	standingsSvc := usecase.NewStandingsService(repos.teams, cfg.StandingsWorkers)
	contactSvc := usecase.NewContactService(buildMailer(cfg, logger), logger)

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	verifier := gatekeeper.NewClient(gatekeeper.ClientConfig{
		BaseURL:        cfg.GatekeeperBaseURL,
		IntrospectPath: cfg.GatekeeperIntrospectPath,
		Timeout:        cfg.GatekeeperTimeout,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.GatekeeperCircuitEnabled,
			FailureThreshold: cfg.GatekeeperCircuitFailureCount,
			OpenTimeout:      cfg.GatekeeperCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.GatekeeperCircuitHalfOpenMax,
		},
	})

	handler := httpapi.NewHandler(teamSvc, playerSvc, matchSvc, newsSvc, standingsSvc, contactSvc, store, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

// buildRepositories wires Postgres-backed repositories when DB_URL is set
// and falls back to seeded in-memory ones otherwise.
func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	if cfg.DBURL == "" {
		logger.Info("database not configured, using in-memory repositories")

		return repositories{
			teams:   memory.NewTeamRepository(memory.SeedTeams()),
			players: memory.NewPlayerRepository(memory.SeedPlayers()),
			matches: memory.NewMatchRepository(memory.SeedMatches()),
			news:    memory.NewNewsRepository(memory.SeedArticles()),
		}, func() error { return nil }, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("open database: %w", err)
	}

	logger.Info("database connected", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		teams:   postgres.NewTeamRepository(db),
		players: postgres.NewPlayerRepository(db),
		matches: postgres.NewMatchRepository(db),
		news:    postgres.NewNewsRepository(db),
	}, db.Close, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)

	return db, nil
}

func buildMailer(cfg config.Config, logger *logging.Logger) usecase.Mailer {
	if !cfg.MailConfigured() {
		logger.Info("smtp not configured, contact messages will only be logged")
		return mail.NewLogSink(logger)
	}

	relay, err := mail.NewSMTPRelay(mail.SMTPRelayConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.ContactMailFrom,
		To:       cfg.ContactMailTo,
		Timeout:  cfg.SMTPTimeout,
		Logger:   logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SMTPCircuitEnabled,
			FailureThreshold: cfg.SMTPCircuitFailureCount,
			OpenTimeout:      cfg.SMTPCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SMTPCircuitHalfOpenMax,
		},
	})
	if err != nil {
		logger.Warn("smtp relay misconfigured, contact messages will only be logged", "error", err)
		return mail.NewLogSink(logger)
	}

	return relay
}
