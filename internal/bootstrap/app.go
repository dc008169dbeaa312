package bootstrap

import (
	"context"
	"database/sql"
	"log"

	"cvforge/internal/llm"
	"cvforge/internal/llm/groq"
	"cvforge/internal/resumes"
	"cvforge/internal/shared/config"
	"cvforge/internal/shared/storage/db"
	"cvforge/internal/shared/storage/object"
	localstore "cvforge/internal/shared/storage/object/local"
	"cvforge/resume/render"
)

// App holds shared dependencies built from configuration.
type App struct {
	Config         config.Config
	DB             *sql.DB
	Store          object.ObjectStore
	Extractor      llm.Extractor
	Converter      render.Converter
	ResumesRepo    resumes.Repo
	ResumesService *resumes.Service
	ResumesHandler *resumes.Handler
}

// Build prepares shared dependencies without wiring routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	store := localstore.New(cfg.LocalStoreDir)

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else if err := db.RunMigrations(ctx, conn); err != nil {
			log.Printf("failed to run migrations, falling back to memory: %v", err)
			conn.Close()
		} else {
			sqlDB = conn
		}
	}

	var repo resumes.Repo
	if sqlDB != nil {
		repo = &resumes.PGRepo{DB: sqlDB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	var extractor llm.Extractor = llm.PlaceholderClient{}
	if cfg.GroqAPIKey != "" {
		client, err := groq.NewClient(cfg.GroqAPIKey, cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		extractor = client
	} else {
		log.Printf("GROQ_API_KEY not set, uploads will fail until configured")
	}

	converter := &render.LibreOfficeConverter{
		Binary:  cfg.SofficePath,
		Timeout: cfg.ConvertTimeout,
	}

	svc := resumes.NewService(repo, store, extractor, converter)

	return &App{
		Config:         cfg,
		DB:             sqlDB,
		Store:          store,
		Extractor:      extractor,
		Converter:      converter,
		ResumesRepo:    repo,
		ResumesService: svc,
		ResumesHandler: resumes.NewHandler(svc, store),
	}, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
}
