package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"mojocode_server/api"
	"mojocode_server/config"
	"mojocode_server/internal/ai"
	handlers "mojocode_server/internal/api"
	"mojocode_server/internal/auth"
	"mojocode_server/internal/metrics"
	"mojocode_server/internal/pipeline"
	"mojocode_server/internal/plancache"
	"mojocode_server/internal/projects"
	"mojocode_server/internal/store"
	"mojocode_server/internal/workspace"
)

func main() {
	// --- Load .env file ---
	// Must run before viper reads the environment.
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Tracing ---
	if !cfg.IsProduction() {
		shutdownTracing, err := setupTracing()
		if err != nil {
			log.Printf("WARN: tracing disabled: %v", err)
		} else {
			defer shutdownTracing()
		}
	}

	// --- Dependency Initialization ---

	// Project store
	var gateway store.Gateway
	if cfg.DatabaseURL != "" {
		db, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Could not connect to postgres: %v", err)
		}
		defer db.Close()

		pg := store.NewPostgres(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatalf("Could not ensure database schema: %v", err)
		}
		log.Println("Info: postgres connection established")
		gateway = pg
	} else {
		log.Println("WARN: DATABASE_URL is not set, projects are kept in memory and lost on restart.")
		gateway = store.NewMemory()
	}

	// Pending plans
	var plans plancache.Cache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to redis at %s: %v", cfg.RedisAddr, err)
		}
		log.Printf("Info: redis connection established at %s", cfg.RedisAddr)
		plans = plancache.NewRedis(rdb, cfg.PlanTTL)
	} else {
		log.Println("Info: REDIS_ADDR is not set, pending plans are kept in memory.")
		plans = plancache.NewMemory(cfg.PlanTTL)
	}

	generationMetrics, err := metrics.NewGenerationMetrics()
	if err != nil {
		log.Fatalf("Could not create generation metrics: %v", err)
	}

	aiGenerator := ai.NewGenerator(cfg.OpenAIKey, cfg.OpenAIBaseURL, ai.Models{
		Planning: cfg.PlanningModel,
		Coding:   cfg.CodingModel,
	}).WithMetrics(generationMetrics)

	projectService := projects.NewService(gateway)
	workspaces := workspace.NewRegistry(cfg.DiscardStaleGenerations)
	generationPipeline := pipeline.New(aiGenerator, projectService, plans, workspaces).WithMetrics(generationMetrics)

	var requireAuth gin.HandlerFunc = rejectAll
	if cfg.AuthJWTSecret != "" {
		verifier, err := auth.NewVerifier(cfg.AuthJWTSecret, cfg.AuthIssuer)
		if err != nil {
			log.Fatalf("Could not create token verifier: %v", err)
		}
		requireAuth = auth.RequireAuth(verifier)
	}

	apiHandler := handlers.NewAPIHandler(generationPipeline, projectService, aiGenerator)

	// --- Start API Server ---
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AddAllowHeaders("Authorization")
	corsConfig.AddExposeHeaders("Content-Disposition")
	router.Use(cors.New(corsConfig))

	api.RegisterRoutes(router, apiHandler, requireAuth)

	// No WriteTimeout: a generation can take minutes.
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	shutdownCtx, serverCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer serverCancel()

	cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Application exiting.")
}

// setupTracing installs a tracer provider that pretty-prints spans to stdout.
func setupTracing() (func(), error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("WARN: tracer provider shutdown: %v", err)
		}
	}, nil
}

// rejectAll stands in for RequireAuth when no auth secret is configured.
func rejectAll(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication is not configured"})
}
