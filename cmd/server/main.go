package main

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/nordlex/legal-analyzer/internal/api"
	"github.com/nordlex/legal-analyzer/internal/auth"
	"github.com/nordlex/legal-analyzer/internal/config"
	"github.com/nordlex/legal-analyzer/internal/contradiction"
	"github.com/nordlex/legal-analyzer/internal/embeddings"
	"github.com/nordlex/legal-analyzer/internal/langid"
	"github.com/nordlex/legal-analyzer/internal/lexicon"
	"github.com/nordlex/legal-analyzer/internal/nlp"
	"github.com/nordlex/legal-analyzer/internal/statement"
	"github.com/nordlex/legal-analyzer/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		logger.Error("failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := buildLexicon(cfg.Lexicon.Path)
	if err != nil {
		logger.Error("failed to build lexicon", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var opts []embeddings.ClientOption
	if cfg.Embeddings.BaseURL != "" {
		opts = append(opts, embeddings.WithBaseURL(cfg.Embeddings.BaseURL))
	}
	if cfg.Embeddings.Model != "" {
		opts = append(opts, embeddings.WithModel(cfg.Embeddings.Model))
	}
	client := embeddings.NewClient(cfg.Embeddings.APIKey, opts...)

	cache, err := embeddings.NewLRUCache(cfg.Embeddings.CacheSize)
	if err != nil {
		logger.Error("failed to build embedding cache", slog.String("error", err.Error()))
		os.Exit(1)
	}
	embedder := embeddings.NewCachedClient(client, cache)

	extractor := statement.NewExtractor(
		langid.NewIdentifier(),
		nil,
		nlp.NewMarkerAnalyzer(store),
		embedder,
	)

	engine := contradiction.NewEngine(store, cfg.Analysis.Calibration)
	detection := contradiction.NewService(engine, contradiction.ServiceConfig{
		MinSimilarity: cfg.Analysis.MinSimilarity,
		MaxPairs:      cfg.Analysis.MaxPairs,
	})

	authService := auth.NewJWTService(auth.Config{
		SecretKey:        cfg.Auth.SecretKey,
		TokenDuration:    cfg.Auth.TokenDuration,
		ClientID:         cfg.Auth.ClientID,
		ClientSecretHash: cfg.Auth.ClientSecretHash,
	})

	server := api.NewServer(api.ServerConfig{
		Logger:      logger,
		AuthService: authService,
		Extractor:   extractor,
		Engine:      engine,
		Detection:   detection,
		Documents:   storage.NewPostgresDocumentRepository(db),
		Statements:  storage.NewPostgresStatementRepository(db),
		Findings:    storage.NewPostgresFindingRepository(db),
	})

	if err := server.Run(cfg.Server.Addr); err != nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func buildLexicon(path string) (*lexicon.Store, error) {
	if path == "" {
		return lexicon.NewStore(nil)
	}
	cfg, err := lexicon.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return lexicon.NewStore(cfg)
}
