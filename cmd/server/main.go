package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/debatewise/arbiter/internal/common/clock"
	"github.com/debatewise/arbiter/internal/common/uuid"
	"github.com/debatewise/arbiter/internal/events"
	"github.com/debatewise/arbiter/internal/handlers/httpapi"
	"github.com/debatewise/arbiter/internal/oracle"
	argumentRepo "github.com/debatewise/arbiter/internal/repositories/argument"
	sessionRepo "github.com/debatewise/arbiter/internal/repositories/session"
	verdictRepo "github.com/debatewise/arbiter/internal/repositories/verdict"
	arbiterService "github.com/debatewise/arbiter/internal/services/arbiter"
	debateService "github.com/debatewise/arbiter/internal/services/debate"
	"github.com/debatewise/arbiter/internal/storage/images"
)

func main() {
	// Load .env if present; real deployments set the environment
	// directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	arguments, err := argumentRepo.NewRedis(&argumentRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create argument repository: %v", err)
	}

	verdicts, err := verdictRepo.NewRedis(&verdictRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create verdict repository: %v", err)
	}

	// Initialize common dependencies
	systemClock := clock.New()
	uuidGenerator := uuid.New()

	// Initialize oracle client
	apiKey := getEnv("ORACLE_API_KEY", "")
	if apiKey == "" {
		log.Fatal("ORACLE_API_KEY environment variable is required")
	}

	oracleClient, err := oracle.NewClient(&oracle.Config{
		APIKey:   apiKey,
		Endpoint: getEnv("ORACLE_ENDPOINT", ""),
		Model:    getEnv("ORACLE_MODEL", ""),
	})
	if err != nil {
		log.Fatalf("Failed to create oracle client: %v", err)
	}

	// Initialize event registry
	registry := events.NewRegistry()

	// Initialize image store
	imageStore, err := images.NewDisk(&images.DiskConfig{
		Directory:     getEnv("IMAGE_DIR", "./images"),
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create image store: %v", err)
	}

	// Initialize arbiter service
	arbiterSvc, err := arbiterService.New(&arbiterService.Config{
		SessionRepo:   sessions,
		ArgumentRepo:  arguments,
		VerdictRepo:   verdicts,
		Oracle:        oracleClient,
		Publisher:     registry,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create arbiter service: %v", err)
	}

	// Initialize debate service
	debateSvc, err := debateService.New(&debateService.Config{
		SessionRepo:   sessions,
		ArgumentRepo:  arguments,
		VerdictRepo:   verdicts,
		Arbiter:       arbiterSvc,
		Publisher:     registry,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create debate service: %v", err)
	}

	// Initialize HTTP handler
	handler, err := httpapi.New(&httpapi.Config{
		DebateService: debateSvc,
		ImageStore:    imageStore,
		Registry:      registry,
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP handler: %v", err)
	}

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Static("/images", getEnv("IMAGE_DIR", "./images"))

	handler.Register(app)

	addr := ":" + getEnv("PORT", "8000")
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server listening on %s", addr)

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := app.Shutdown(); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
