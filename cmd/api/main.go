package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/srinivas0721/InterviewBot/internal/ai"
	"github.com/srinivas0721/InterviewBot/internal/auth"
	"github.com/srinivas0721/InterviewBot/internal/cache"
	"github.com/srinivas0721/InterviewBot/internal/config"
	"github.com/srinivas0721/InterviewBot/internal/database"
	"github.com/srinivas0721/InterviewBot/internal/handler"
	"github.com/srinivas0721/InterviewBot/internal/interview"
	"github.com/srinivas0721/InterviewBot/internal/logger"
	"github.com/srinivas0721/InterviewBot/internal/repository"
)

type application struct {
	DB         *pgxpool.Pool
	Redis      *redis.Client
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg := config.MustLoad()

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded: %s", cfg)

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns, cfg.DB.MaxConnLifetime)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(ctx, rdb); err != nil {
		// the cache is optional; everything falls through to postgres
		sugar.Warnf("redis unavailable, running without cache: %v", err)
		rdb = nil
	}

	aiClient, err := ai.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model,
		cfg.Gemini.GenerateTimeout, cfg.Gemini.EvaluateTimeout, log)
	if err != nil {
		sugar.Fatal(err)
	}
	sugar.Infow("gemini client ready", "model", aiClient.Model())

	repo := repository.NewRepository(pool)
	engine := interview.NewEngine(repo, aiClient, log)

	app := &application{
		DB:         pool,
		Redis:      rdb,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler: &handler.Handler{
			Logger:         log,
			Repo:           repo,
			Engine:         engine,
			AI:             aiClient,
			Cache:          cache.New(rdb, cfg.Redis.StatsTTL),
			TokenMaker:     auth.NewJWTMaker(cfg.JWT.Secret),
			AccessTokenTTL: cfg.JWT.AccessTokenTTL,
			ShareBaseURL:   cfg.GetShareBaseURL(),
		},
	}

	if err := app.serve(ctx); err != nil {
		sugar.Fatal(err)
	}
}
