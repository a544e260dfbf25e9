// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_vocab_galaxy/internal/client"
	"go_vocab_galaxy/internal/config"
	"go_vocab_galaxy/internal/dictionary"
	"go_vocab_galaxy/internal/handlers"
	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"
	"go_vocab_galaxy/internal/repository"
	"go_vocab_galaxy/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 1. DB接続 (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if config.Cfg.Database.AutoMigrate {
		if err := repository.Migrate(context.Background(), db, logger); err != nil {
			slog.Error("Error applying migrations", slog.Any("error", err))
			os.Exit(1)
		}
	}

	// 2. 外部クライアント
	deepl := client.NewDeepLClient(config.Cfg.Translation.DeepLURL, config.Cfg.Translation.DeepLAPIKey, config.Cfg.Translation.Timeout)
	if config.Cfg.Translation.DeepLAPIKey == "" {
		slog.Warn("DeepL API key is empty; API stage will fail")
	}
	dict := dictionary.NewReader(config.Cfg.Dictionary.Path)

	// インターフェースに型付き nil を入れないこと
	var llm service.LLMClient
	anthropicClient, err := client.NewAnthropicClient(client.AnthropicConfig{
		APIKey:      config.Cfg.LLM.APIKey,
		BaseURL:     config.Cfg.LLM.BaseURL,
		Model:       config.Cfg.LLM.Model,
		MaxTokens:   int64(config.Cfg.LLM.MaxTokens),
		Temperature: config.Cfg.LLM.Temperature,
		Timeout:     config.Cfg.LLM.Timeout,
	})
	if err != nil {
		slog.Warn("LLM client disabled", slog.Any("error", err))
	} else {
		llm = anthropicClient
	}

	var stt service.SpeechClient
	whisper, err := client.NewWhisperClient(client.WhisperConfig{
		APIKey:   config.Cfg.Speech.APIKey,
		BaseURL:  config.Cfg.Speech.BaseURL,
		Model:    config.Cfg.Speech.Model,
		Language: config.Cfg.Speech.Language,
		Timeout:  config.Cfg.Speech.Timeout,
	})
	if err != nil {
		slog.Warn("Speech client disabled; recognition returns empty text", slog.Any("error", err))
	} else {
		stt = whisper
	}

	// 3. Dependency Injection
	lexRepo := repository.NewGormLexiconRepository()
	transRepo := repository.NewGormTranslationRepository()
	grammarRepo := repository.NewGormGrammarRepository()
	statsRepo := repository.NewGormStatsRepository()
	usageRepo := repository.NewGormUsageRepository()
	mediaRepo := repository.NewGormMediaRepository()

	var rateGate *service.QuotaGate
	if config.Cfg.Translation.RateLimit > 0 {
		rateGate = service.NewQuotaGate(db, usageRepo, model.UsageTranslation,
			config.Cfg.Translation.RateLimit, service.Rolling(config.Cfg.Translation.RateWindow))
	}

	translationService := service.NewTranslationService(db, transRepo, lexRepo, grammarRepo, statsRepo, dict, deepl,
		service.TranslationServiceOptions{
			RateGate:       rateGate,
			PersistTimeout: config.Cfg.Translation.PersistTimeout,
			ResolveTimeout: config.Cfg.Translation.ResolveTimeout,
		})
	classificationService := service.NewClassificationService(db, usageRepo, llm, config.Cfg.LLM.MonthlyQuota, config.Cfg.LLM.RetryBackoff)
	lexiconService := service.NewLexiconService(db, lexRepo, transRepo, grammarRepo)
	grammarService := service.NewGrammarService(db, lexRepo, grammarRepo)
	mediaService := service.NewMediaService(db, mediaRepo)
	speechService := service.NewSpeechService(stt)

	api := &handlers.API{
		Translation:    handlers.NewTranslationHandler(translationService, logger),
		Classification: handlers.NewClassificationHandler(classificationService, logger, !config.Cfg.Auth.Enabled),
		Lexicon:        handlers.NewLexiconHandler(lexiconService, logger),
		Grammar:        handlers.NewGrammarHandler(grammarService, logger),
		Media:          handlers.NewMediaHandler(mediaService, logger),
		Speech:         handlers.NewSpeechHandler(speechService, logger),
	}

	// 4. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.Cfg.Server.RequestTimeout))

	r.Route("/api/v1", func(r chi.Router) {
		if config.Cfg.Auth.Enabled {
			slog.Info("Applying JWT authentication middleware")
			r.Use(middleware.JWTAuthMiddleware(config.Cfg.JWT.SecretKey))
		} else {
			slog.Warn("Auth disabled: trusting X-User-ID header (development only)")
			r.Use(middleware.DevUserContextMiddleware)
		}
		api.Mount(r)
	})

	r.Get("/health", handlers.HealthHandler(sqlDB, logger))

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: config.Cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は設定のログレベルと APP_ENV に従って slog ロガーを作ります。
// dev では tint、それ以外は JSON。
func newLogger(tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}
