package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fisiotrack/fisiotrack/internal/api"
	"github.com/fisiotrack/fisiotrack/internal/db"
	"github.com/fisiotrack/fisiotrack/internal/legacy"
	"github.com/fisiotrack/fisiotrack/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	dbPath := getEnv("DB_PATH", filepath.Join("data", "fisiotrack.db"))
	port := getEnv("PORT", "8080")
	legacyDir := getEnv("LEGACY_DATA_DIR", filepath.Join("data", "legacy"))
	cookieSecure := getEnv("COOKIE_SECURE", "false") == "true"

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	result, err := legacy.Import(legacy.NewStore(legacyDir), database)
	if err != nil {
		log.Fatalf("legacy import failed: %v", err)
	}
	if result.Outcome == legacy.OutcomeMigrated {
		log.Printf("legacy import done: %d patients, %d pain records, %d assessments, %d responses",
			result.Patients, result.PainRecords, result.Assessments, result.Responses)
	}

	repos := db.NewRepositories(database)
	setup := services.NewSetupService(repos.Users, repos.Exercises)
	if err := setup.EnsureExerciseCatalog(); err != nil {
		log.Fatalf("exercise catalog init failed: %v", err)
	}

	adminEmail := getEnv("ADMIN_EMAIL", "fisio@fisiotrack.com")
	created, err := setup.EnsureTherapist(getEnv("ADMIN_NAME", "Fisioterapeuta"), adminEmail, os.Getenv("ADMIN_PASSWORD"))
	if errors.Is(err, services.ErrTherapistPasswordRequired) {
		log.Fatal("no therapist account exists yet: set ADMIN_PASSWORD for the first start")
	}
	if err != nil {
		log.Fatalf("therapist setup failed: %v", err)
	}
	if created {
		log.Printf("created therapist account %s", adminEmail)
	}

	handler := api.NewHandler(database, secretKey, cookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "FisioTrack",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("FisioTrack listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if secret == "change_me_in_production" {
		return "", errors.New("SECRET_KEY uses an insecure placeholder")
	}
	if len(secret) < 32 {
		return "", errors.New("SECRET_KEY must be at least 32 characters")
	}
	return secret, nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
