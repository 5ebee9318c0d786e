package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"example/storefront/internal/logger"
	"example/storefront/internal/server"
	"example/storefront/internal/storage"
	"example/storefront/internal/store"
)

func main() {
	// Initialize logger
	logger.InitLoggerDev()
	defer logger.Sync()

	logger.Log.Info("Starting storefront state server")

	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Log.Warnw("No .env file found, using existing environment variables", "error", err)
	}

	// Pick the backing store from the environment
	backend, err := newBackend()
	if err != nil {
		logger.Log.Fatalw("Failed to initialize storage backend", "error", err)
	}

	st := store.New(backend, os.Getenv("STORE_KEY"))
	srv := server.New(st)

	// Set up HTTP routes
	http.HandleFunc("/ws", srv.HandleWebSocket)
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Storefront State Server\nConnect to ws://localhost:%s/ws\n", port())
	})

	// Start server
	logger.Log.Infow("WebSocket server starting", "port", port(), "endpoint", "/ws")
	if err := http.ListenAndServe(":"+port(), nil); err != nil {
		logger.Log.Fatalw("Server error", "error", err)
	}
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}

// newBackend selects the key-value medium: Redis when REDIS_ADDR is set,
// MySQL when MYSQL_DSN is set, otherwise a process-local in-memory map
// that loses everything on exit.
func newBackend() (storage.Backend, error) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return storage.NewRedis(addr, os.Getenv("REDIS_PASSWORD"), 0)
	}

	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %v", err)
		}
		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("failed to ping database: %v", err)
		}
		logger.Log.Infow("Database connection established", "driver", "mysql")
		return storage.NewSQL(db)
	}

	logger.Log.Warn("No REDIS_ADDR or MYSQL_DSN set, state will not survive restarts")
	return storage.NewMemory(), nil
}
