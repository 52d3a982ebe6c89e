package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sukrititalwar/rewear/internal/api"
	"github.com/sukrititalwar/rewear/internal/db"
	"github.com/sukrititalwar/rewear/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: rewear <init|serve|seed>")
		os.Exit(1)
	}

	// Optional .env; absence is fine.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	switch os.Args[1] {
	case "init":
		cmdInit(os.Args[2:], log)
	case "serve":
		cmdServe(os.Args[2:], log)
	case "seed":
		cmdSeed(os.Args[2:], log)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\nUsage: rewear <init|serve|seed>\n", os.Args[1])
		os.Exit(1)
	}
}

// envOr reads an environment variable with a fallback, so flags can
// default from the environment.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func cmdInit(args []string, log *zap.SugaredLogger) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	dbPath := fs.String("db", envOr("REWEAR_DB", "rewear.sqlite3"), "path to SQLite database file")
	fs.Parse(args)

	if _, err := os.Stat(*dbPath); err == nil {
		fmt.Fprintf(os.Stderr, "Error: database file %s already exists\n", *dbPath)
		os.Exit(1)
	}

	database, password, err := initDatabase(*dbPath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	database.Close()

	printAdminCredentials(*dbPath, password)
}

func cmdServe(args []string, log *zap.SugaredLogger) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	dbPath := fs.String("db", envOr("REWEAR_DB", "rewear.sqlite3"), "path to SQLite database file")
	addr := fs.String("addr", envOr("REWEAR_ADDR", ":8080"), "listen address")
	jwtSecret := fs.String("jwt-secret", os.Getenv("REWEAR_JWT_SECRET"), "JWT signing key (auto-generated if empty)")
	fs.Parse(args)

	if *jwtSecret == "" {
		secret, err := generatePassword(32)
		if err != nil {
			log.Fatalw("failed to generate JWT secret", "error", err)
		}
		*jwtSecret = secret
		log.Infow("JWT secret auto-generated, tokens will be invalidated on restart")
	}

	// Auto-init on first run.
	if _, err := os.Stat(*dbPath); os.IsNotExist(err) {
		database, password, err := initDatabase(*dbPath, log)
		if err != nil {
			log.Fatalw("failed to initialize database", "error", err)
		}
		database.Close()
		printAdminCredentials(*dbPath, password)
	}

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatalw("failed to open database", "path", *dbPath, "error", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatalw("failed to migrate database", "error", err)
	}

	s := store.New(database, log, store.Config{})
	handler := api.NewRouter(s, *jwtSecret, log)

	srv := &http.Server{
		Addr:         *addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Infow("server listening", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server error", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Infow("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warnw("shutdown error", "error", err)
	}
}

// initDatabase creates a new database, runs migrations, and creates the
// admin account with a generated password.
func initDatabase(path string, log *zap.SugaredLogger) (*sql.DB, string, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening database: %w", err)
	}

	fail := func(err error) (*sql.DB, string, error) {
		database.Close()
		os.Remove(path)
		return nil, "", err
	}

	if err := db.Migrate(database); err != nil {
		return fail(fmt.Errorf("running migrations: %w", err))
	}

	password, err := generatePassword(16)
	if err != nil {
		return fail(fmt.Errorf("generating password: %w", err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fail(fmt.Errorf("hashing password: %w", err))
	}

	s := store.New(database, log, store.Config{})
	if _, err := s.CreateUser(context.Background(), "admin", "admin@rewear.local", string(hash), "admin"); err != nil {
		return fail(fmt.Errorf("creating admin user: %w", err))
	}

	return database, password, nil
}

func printAdminCredentials(dbPath, password string) {
	fmt.Printf("Database created: %s\n", dbPath)
	fmt.Println("Schema initialized.")
	fmt.Println()
	fmt.Println("Admin account created:")
	fmt.Println("  Email:    admin@rewear.local")
	fmt.Printf("  Password: %s\n", password)
	fmt.Println()
	fmt.Println("Save this password — it cannot be recovered.")
}

// generatePassword creates a random password of the given length.
func generatePassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%&*"
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		result[i] = charset[n.Int64()]
	}
	return string(result), nil
}
