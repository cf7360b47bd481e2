// Command reconcile recomputes user point aggregates from the
// contribution ledger. Run it periodically (cron) to repair any drift
// between the ledger and the denormalized account counters.
//
// Usage:
//
//	reconcile
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	contributionrepo "github.com/dexai-ro/dexai-backend/internal/adapter/postgres/contribution"
	useraccountrepo "github.com/dexai-ro/dexai-backend/internal/adapter/postgres/useraccount"
	"github.com/dexai-ro/dexai-backend/internal/app"
	"github.com/dexai-ro/dexai-backend/internal/config"
	"github.com/dexai-ro/dexai-backend/internal/service/points"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	logger := app.NewLogger(config.LogConfig{Level: "info", Format: "text"})

	svc := points.NewService(
		logger,
		contributionrepo.New(pool),
		useraccountrepo.New(pool),
		nil, // reconciliation writes one row at a time, no transaction needed
		config.DiscoveryConfig{},
	)

	count, err := svc.Reconcile(ctx)
	if err != nil {
		log.Fatalf("reconcile: %v", err)
	}

	fmt.Printf("Reconciled %d user accounts.\n", count)
}
