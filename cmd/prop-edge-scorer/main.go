package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/internal/alertstate"
	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/internal/consumer"
	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/internal/handlers"
	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/internal/processor"
	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/internal/publisher"
	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/internal/scoring"
	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	fmt.Println("=== Fortuna Prop Edge Scorer v0 ===")

	// Load configuration
	config := loadConfig()

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisURL,
		Password: config.RedisPassword,
		DB:       0,
	})

	// Ping Redis
	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fmt.Printf("❌ Failed to connect to Redis: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✓ Connected to Redis")

	// Initialize components
	registry := prometheus.NewRegistry()
	metrics := processor.NewMetrics(registry)

	streamConsumer := consumer.NewStreamConsumer(redisClient, config.ConsumerID, config.GroupName)
	streamPublisher := publisher.NewStreamPublisher(redisClient)
	alertTracker := alertstate.NewTracker(redisClient, config.AlertStateTTLMinutes)
	engine := scoring.NewEngine()

	proc := processor.NewProcessor(streamConsumer, engine, streamPublisher, alertTracker, metrics)

	// Setup HTTP API
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:3001"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	handler := handlers.NewHandler(config.MaxBatchSize)
	r.Get("/health", handler.HealthCheck)
	r.Post("/api/v1/score", handler.Score)
	r.Post("/api/v1/pace-score", handler.PaceScore)
	r.Post("/api/v1/score/batch", handler.ScoreBatch)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	procCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start processing each configured sport stream
	errChan := make(chan error, len(config.Sports))
	for _, sport := range config.Sports {
		go func(s models.Sport) {
			errChan <- proc.Start(procCtx, s)
		}(sport)
	}

	// Start HTTP server
	go func() {
		fmt.Printf("✓ HTTP API listening on port %d\n", config.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("❌ Server error: %v\n", err)
			os.Exit(1)
		}
	}()

	fmt.Println("✓ Prop Edge Scorer started - monitoring live stat updates")
	fmt.Printf("  Consumer ID: %s\n", config.ConsumerID)
	fmt.Printf("  Group Name: %s\n", config.GroupName)
	fmt.Printf("  Sports: %v\n", config.Sports)
	fmt.Printf("  Alert state TTL: %dm\n", config.AlertStateTTLMinutes)

	// Wait for shutdown signal or error
	select {
	case sig := <-sigChan:
		fmt.Printf("\n⚠️  Received signal: %v\n", sig)
		cancel()
	case err := <-errChan:
		if err != nil {
			fmt.Printf("❌ Processor error: %v\n", err)
			os.Exit(1)
		}
	}

	// Graceful shutdown
	fmt.Println("🛑 Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Printf("⚠️  Server shutdown error: %v\n", err)
	}

	if err := redisClient.Close(); err != nil {
		fmt.Printf("⚠️  Error closing Redis: %v\n", err)
	}

	fmt.Println("✓ Shutdown complete")
}

// Config holds prop edge scorer configuration
type Config struct {
	RedisURL             string
	RedisPassword        string
	ConsumerID           string
	GroupName            string
	Port                 int
	Sports               []models.Sport
	AlertStateTTLMinutes int
	MaxBatchSize         int
}

// loadConfig loads configuration from environment variables
func loadConfig() Config {
	return Config{
		RedisURL:             getEnv("REDIS_URL", "localhost:6380"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		ConsumerID:           getEnv("EDGE_SCORER_CONSUMER_ID", "prop-edge-scorer-1"),
		GroupName:            getEnv("EDGE_SCORER_GROUP_NAME", "prop-edge-scorers"),
		Port:                 getEnvInt("EDGE_SCORER_PORT", 8086),
		Sports:               getEnvSports("EDGE_SCORER_SPORTS", []models.Sport{models.SportBasketball, models.SportFootball}),
		AlertStateTTLMinutes: getEnvInt("ALERT_STATE_TTL_MINUTES", 360),
		MaxBatchSize:         getEnvInt("MAX_BATCH_SIZE", 500),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvSports(key string, defaultValue []models.Sport) []models.Sport {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var sports []models.Sport
	for _, s := range strings.Split(value, ",") {
		sports = append(sports, models.Sport(strings.TrimSpace(s)))
	}
	return sports
}
