// reconcile-batch runs one reconciliation batch from a JSON manifest without
// going through the gRPC surface. With --inmem it uses an in-memory SQLite
// database seeded from --docs, which makes it a dry-run harness for batch
// naming questions ("what would this upload match?").
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/simdocs-io/report-reconciler/constants"
	"github.com/simdocs-io/report-reconciler/gen/ent"
	"github.com/simdocs-io/report-reconciler/internal/batch"
	"github.com/simdocs-io/report-reconciler/internal/common"
	"github.com/simdocs-io/report-reconciler/internal/match"
	"github.com/simdocs-io/report-reconciler/internal/notify"
	"github.com/simdocs-io/report-reconciler/internal/reconcile"
	"github.com/simdocs-io/report-reconciler/internal/repository"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		manifestPath = flag.String("manifest", "", "path to the batch manifest JSON (required)")
		inmem        = flag.Bool("inmem", false, "use an in-memory SQLite database")
		docsPath     = flag.String("docs", "", "with --inmem: JSON array of awaiting document filenames to seed")
	)
	flag.Parse()

	if *manifestPath == "" {
		printError("Error: --manifest is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	ctx := context.Background()

	m, err := batch.Load(*manifestPath)
	if err != nil {
		printError("Error: loading manifest: %v\n", err)
		os.Exit(1)
	}

	entc, cleanup, err := openClient(ctx, cfg, *inmem, logger)
	if err != nil {
		printError("Error: opening database: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if *inmem && *docsPath != "" {
		if err := seedDocuments(ctx, entc, *docsPath); err != nil {
			printError("Error: seeding documents: %v\n", err)
			os.Exit(1)
		}
	}

	docs := repository.NewDocumentRepository(entc, logger)
	unmatched := repository.NewUnmatchedRepository(entc, logger)
	svc := reconcile.NewService(docs, unmatched, &notify.LogNotifier{Logger: logger}, cfg.Batch.ApplyTimeout, logger)

	res, err := svc.ReconcileBatch(ctx, m.Reports)
	if err != nil {
		printError("Error: reconcile: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		printError("Error: encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

// openClient connects either the configured Postgres or an in-memory SQLite
// database with the schema migrated.
func openClient(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, func(), error) {
	if !inmem {
		entc, pool, err := repository.Open(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		return entc, func() { repository.Close(entc, pool, logger) }, nil
	}

	db, err := sql.Open("sqlite", "file:reconcile?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, nil, err
	}
	entc := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := entc.Schema.Create(ctx); err != nil {
		_ = entc.Close()
		return nil, nil, err
	}
	return entc, func() { _ = entc.Close() }, nil
}

// seedDocuments creates awaiting documents under a throwaway customer so a
// dry run has an index to match against.
func seedDocuments(ctx context.Context, entc *ent.Client, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return fmt.Errorf("docs file must be a JSON array of filenames: %w", err)
	}

	cust, err := entc.Customer.Create().
		SetName("dry-run").
		SetEmail(fmt.Sprintf("dry-run+%s@local", uuid.NewString())).
		Save(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		_, err := entc.Document.Create().
			SetCustomerID(cust.ID).
			SetFilename(name).
			SetDocKey(match.DocumentKey(name)).
			SetStatus(string(constants.DocStatusAwaiting)).
			Save(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}
