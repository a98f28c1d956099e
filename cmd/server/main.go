package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	_ "modernc.org/sqlite"

	emailPkg "datao/internal/adapters/email"
	web "datao/internal/adapters/http"
	"datao/internal/adapters/storage"
	clientStore "datao/internal/adapters/storage/client"
	leadStore "datao/internal/adapters/storage/lead"
	salesStore "datao/internal/adapters/storage/sales"
	seasonStore "datao/internal/adapters/storage/season"
	"datao/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("DATAO_DB", "datao.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Slow-query instrumentation for the lead store
	timedDB := storage.NewTimedDB(db)

	// Generate the demo datasets once at startup. DATAO_SEED pins the RNG
	// for reproducible demos; without it every restart gets fresh data.
	var seed int64
	if v := os.Getenv("DATAO_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatalf("DATAO_SEED must be an integer: %v", err)
		}
		seed = n
	}
	demo := orchestrators.ExecuteSeedDemo(orchestrators.SeedDemoInput{Seed: seed})

	clients, err := clientStore.NewDemoStore()
	if err != nil {
		log.Fatalf("failed to build client directory: %v", err)
	}

	stores := &web.Stores{
		ClientStore: clients,
		LeadStore:   leadStore.NewSQLiteStore(timedDB),
		SeasonStore: seasonStore.NewMemoryStore(demo.Bookings),
		SalesStore:  salesStore.NewMemoryStore(demo.Sales),
	}

	// Configure email sender
	resendKey := os.Getenv("DATAO_RESEND_KEY")
	emailFrom := envOrDefault("DATAO_RESEND_FROM", "Datao <noreply@datao.mx>")
	notifyTo := envOrDefault("DATAO_NOTIFY_TO", "hola@datao.mx")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), notifyTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), notifyTo)
		if os.Getenv("DATAO_ENV") == "production" {
			log.Println("WARNING: DATAO_RESEND_KEY is not set, lead notifications are DISABLED in production")
		} else {
			log.Println("Email sender configured (noop; set DATAO_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux("static", stores)

	addr := envOrDefault("DATAO_ADDR", ":8080")
	log.Printf("Datao %s starting on %s (env=%s)", version, addr, envOrDefault("DATAO_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
