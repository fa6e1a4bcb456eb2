package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"detectia-backend/internal/analyses"
	googleauth "detectia-backend/internal/auth"
	"detectia-backend/internal/documents"
	"detectia-backend/internal/providers"
	"detectia-backend/internal/providers/openai"
	"detectia-backend/internal/providers/originality"
	"detectia-backend/internal/providers/winston"
	"detectia-backend/internal/shared/config"
	"detectia-backend/internal/shared/server"
	"detectia-backend/internal/shared/storage/db"
	"detectia-backend/internal/shared/storage/object"
	localstore "detectia-backend/internal/shared/storage/object/local"
	"detectia-backend/internal/shared/telemetry"
	"detectia-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	Providers []providers.Provider

	DocumentsRepo documents.Repo
	AnalysesRepo  analyses.Repo
	UsersRepo     users.Repo

	DocumentsService *documents.Service
	AnalysesService  *analyses.Service
	UsersService     *users.Service

	DocumentsHandler *documents.Handler
	AnalysisHandler  *analyses.Handler
	UsersHandler     *users.Handler
	GoogleAuth       *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  localstore.New(cfg.LocalStoreDir),
	}

	app.Providers, err = buildProviders(cfg)
	if err != nil {
		return nil, err
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		AnalysisHandler: app.AnalysisHandler,
		DocumentHandler: app.DocumentsHandler,
		UserHandler:     app.UsersHandler,
		GoogleAuth:      app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

// buildProviders configures one detection client per credentialed provider.
// Missing credentials simply leave that provider out.
func buildProviders(cfg config.Config) ([]providers.Provider, error) {
	var out []providers.Provider

	if strings.TrimSpace(cfg.OriginalityAPIKey) != "" {
		client, err := originality.New(cfg.OriginalityAPIURL, cfg.OriginalityAPIKey)
		if err != nil {
			return nil, err
		}
		out = append(out, client)
	}
	if strings.TrimSpace(cfg.WinstonAPIKey) != "" {
		client, err := winston.New(cfg.WinstonAPIURL, cfg.WinstonAPIKey)
		if err != nil {
			return nil, err
		}
		out = append(out, client)
	}
	if strings.TrimSpace(cfg.OpenAIAPIKey) != "" {
		client, err := openai.New(cfg.OpenAIAPIURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			return nil, err
		}
		out = append(out, client)
	}

	names := make([]string, 0, len(out))
	for _, p := range out {
		names = append(names, p.Name())
	}
	telemetry.Info("bootstrap.providers", map[string]any{"active": names})
	return out, nil
}

func buildServices(app *App) {
	var docRepo documents.Repo
	var analysisRepo analyses.Repo
	var userRepo users.Repo

	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		analysisRepo = &analyses.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		analysisRepo = analyses.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	docSvc := &documents.Service{Store: app.Store, Repo: docRepo}
	analysisSvc := &analyses.Service{
		Repo:      analysisRepo,
		Providers: app.Providers,
		Timeout:   time.Duration(app.Config.ProviderTimeoutSeconds) * time.Second,
	}
	userSvc := users.NewService(userRepo)

	app.DocumentsRepo = docRepo
	app.AnalysesRepo = analysisRepo
	app.UsersRepo = userRepo
	app.DocumentsService = docSvc
	app.AnalysesService = analysisSvc
	app.UsersService = userSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.AnalysisHandler = analyses.NewHandler(analysisSvc, docRepo)
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
