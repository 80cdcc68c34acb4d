package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Priyadharshini-2004-S/Interview-Agent/internal/analytics"
	"github.com/Priyadharshini-2004-S/Interview-Agent/internal/interview"
	"github.com/Priyadharshini-2004-S/Interview-Agent/internal/questionbank"
	"github.com/Priyadharshini-2004-S/Interview-Agent/internal/retriever"
	"github.com/Priyadharshini-2004-S/Interview-Agent/internal/session"
	"github.com/Priyadharshini-2004-S/Interview-Agent/pkg/config"
	"github.com/Priyadharshini-2004-S/Interview-Agent/pkg/health"
	"github.com/Priyadharshini-2004-S/Interview-Agent/pkg/kafka"
	"github.com/Priyadharshini-2004-S/Interview-Agent/pkg/logger"
	"github.com/Priyadharshini-2004-S/Interview-Agent/pkg/metrics"
	"github.com/Priyadharshini-2004-S/Interview-Agent/pkg/postgres"
	pkgredis "github.com/Priyadharshini-2004-S/Interview-Agent/pkg/redis"
)

func main() {
	configPath := flag.String("config", "configs/development.yaml", "path to config file")
	flag.Parse()

	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting interview service", "port", cfg.Server.Port, "data_source", cfg.Data.Source)

	questions, corpus, err := loadDatasets(cfg)
	if err != nil {
		slog.Error("failed to load datasets", "error", err)
		os.Exit(1)
	}
	slog.Info("datasets loaded", "questions", len(questions), "reference_answers", len(corpus))

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	bank := questionbank.New(questions, rng)

	var redisClient *pkgredis.Client
	if cfg.Session.Backend == "redis" || cfg.Retrieval.CacheEnabled {
		redisClient, err = pkgredis.NewClient(cfg.Redis)
		if err != nil {
			slog.Warn("redis unavailable, falling back to in-memory only", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	var ret retriever.Retriever = retriever.NewLexical(corpus, cfg.Retrieval.MinRatio)
	if cfg.Retrieval.CacheEnabled && redisClient != nil {
		ret = retriever.NewCached(ret, redisClient, cfg.Redis.CacheTTL.Std(), m)
		slog.Info("match cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL.Std())
	}

	var store session.Store
	if cfg.Session.Backend == "redis" && redisClient != nil {
		store = session.NewRedisStore(redisClient, cfg.Session.TTL.Std())
		slog.Info("session store: redis", "ttl", cfg.Session.TTL.Std())
	} else {
		store = session.NewMemoryStore()
		slog.Info("session store: memory")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var collector *analytics.Collector
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka, cfg.Kafka.Topics.AnalyticsEvents)
		defer producer.Close()
		collector = analytics.NewCollector(producer, 10000)
		collector.Start(ctx)
		defer collector.Close()
		slog.Info("analytics collector started", "topic", cfg.Kafka.Topics.AnalyticsEvents)
	}

	checker := health.NewChecker()
	checker.Register("question_bank", func(ctx context.Context) health.ComponentHealth {
		if bank.Size() > 0 && len(corpus) > 0 {
			return health.ComponentHealth{
				Status:  health.StatusUp,
				Message: fmt.Sprintf("%d questions, %d reference answers", bank.Size(), len(corpus)),
			}
		}
		return health.ComponentHealth{Status: health.StatusDown, Message: "datasets empty"}
	})
	checker.Register("redis", func(ctx context.Context) health.ComponentHealth {
		if redisClient == nil {
			return health.ComponentHealth{Status: health.StatusDegraded, Message: "not configured"}
		}
		if err := redisClient.Ping(ctx); err != nil {
			return health.ComponentHealth{Status: health.StatusDegraded, Message: err.Error()}
		}
		return health.ComponentHealth{Status: health.StatusUp}
	})

	var shutdownMetrics func(context.Context) error
	if cfg.Metrics.Enabled {
		shutdownMetrics = metrics.StartServer(cfg.Metrics.Port)
	}

	service := interview.NewService(
		bank, ret, store, collector, m,
		cfg.Interview.DefaultQuestions, cfg.Interview.MaxQuestions,
	)
	handler := interview.NewHandler(service)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      interview.NewRouter(handler, checker, m, cfg.Server.WriteTimeout.Std()),
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
		if shutdownMetrics != nil {
			if err := shutdownMetrics(shutdownCtx); err != nil {
				slog.Error("metrics server shutdown error", "error", err)
			}
		}
	}()

	slog.Info("interview service listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("interview service stopped")
}

// loadDatasets reads the question list and reference corpus from the
// configured source.
func loadDatasets(cfg *config.Config) ([]questionbank.Question, []questionbank.QAPair, error) {
	if cfg.Data.Source == "postgres" {
		db, err := postgres.New(cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		questions, err := questionbank.LoadQuestionsPostgres(ctx, db)
		if err != nil {
			return nil, nil, err
		}
		corpus, err := questionbank.LoadQAPairsPostgres(ctx, db)
		if err != nil {
			return nil, nil, err
		}
		return questions, corpus, nil
	}

	questions, err := questionbank.LoadQuestionsFile(cfg.Data.QuestionsFile)
	if err != nil {
		return nil, nil, err
	}
	corpus, err := questionbank.LoadQAPairsFile(cfg.Data.AnswersFile)
	if err != nil {
		return nil, nil, err
	}
	return questions, corpus, nil
}
